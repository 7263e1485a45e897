package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"binwatch"
)

// fakeStore is a minimal stub satisfying repository.ReadingStore, shared by
// the service tests in this package.
type fakeStore struct {
	// captured inputs
	appended  []binwatch.Reading
	lastLimit int
	lastDays  int
	lastBin   string

	// configured outputs
	recentResp  []binwatch.Reading
	inRangeResp []binwatch.Reading
	byBinResp   []binwatch.Reading
	err         error
}

func (f *fakeStore) Append(ctx context.Context, r binwatch.Reading) (binwatch.Reading, error) {
	if f.err != nil {
		return binwatch.Reading{}, f.err
	}
	r.ID = fmt.Sprintf("gen-%d", len(f.appended)+1)
	r.Timestamp = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	f.appended = append(f.appended, r)
	return r, nil
}

func (f *fakeStore) Recent(ctx context.Context, limit int) ([]binwatch.Reading, error) {
	f.lastLimit = limit
	return f.recentResp, f.err
}

func (f *fakeStore) InRange(ctx context.Context, days int) ([]binwatch.Reading, error) {
	f.lastDays = days
	return f.inRangeResp, f.err
}

func (f *fakeStore) ByBin(ctx context.Context, binID string) ([]binwatch.Reading, error) {
	f.lastBin = binID
	return f.byBinResp, f.err
}

func Test_validateNewReading(t *testing.T) {
	t.Parallel()

	valid := NewReading{BinID: "bin-a", WeightKg: 1.2, MoistureRaw: 300, WasteTag: binwatch.TagPlastic}

	cases := []struct {
		name    string
		mutate  func(*NewReading)
		wantErr bool
		wantMsg string
	}{
		{name: "valid", mutate: func(*NewReading) {}},
		{name: "zero weight and moisture ok", mutate: func(r *NewReading) {
			r.WeightKg = 0
			r.MoistureRaw = 0
		}},
		{name: "missing binId", mutate: func(r *NewReading) { r.BinID = "  " }, wantErr: true, wantMsg: "binId"},
		{name: "negative weight", mutate: func(r *NewReading) { r.WeightKg = -0.1 }, wantErr: true, wantMsg: "weightKg"},
		{name: "negative moisture", mutate: func(r *NewReading) { r.MoistureRaw = -1 }, wantErr: true, wantMsg: "moistureRaw"},
		{name: "unknown tag", mutate: func(r *NewReading) { r.WasteTag = "uranium" }, wantErr: true, wantMsg: "wasteTag"},
		{name: "empty tag", mutate: func(r *NewReading) { r.WasteTag = "" }, wantErr: true, wantMsg: "wasteTag"},
		{name: "uppercase tag rejected", mutate: func(r *NewReading) { r.WasteTag = "Organic" }, wantErr: true, wantMsg: "wasteTag"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := valid
			tc.mutate(&in)
			err := validateNewReading(in)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidReading) {
				t.Fatalf("expected ErrInvalidReading, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q should mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestReadingsService_Append(t *testing.T) {
	t.Parallel()

	t.Run("valid reading reaches the store", func(t *testing.T) {
		t.Parallel()
		st := &fakeStore{}
		svc := NewReadingsService(st)

		got, err := svc.Append(context.Background(), NewReading{
			BinID: " bin-a ", WeightKg: 2.5, MoistureRaw: 610, WasteTag: binwatch.TagOrganic,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" || got.Timestamp.IsZero() {
			t.Fatalf("store should assign id and timestamp: %+v", got)
		}
		if len(st.appended) != 1 {
			t.Fatalf("store appends = %d; want 1", len(st.appended))
		}
		if st.appended[0].BinID != "bin-a" {
			t.Fatalf("binId not trimmed: %q", st.appended[0].BinID)
		}
	})

	t.Run("invalid reading never reaches the store", func(t *testing.T) {
		t.Parallel()
		st := &fakeStore{}
		svc := NewReadingsService(st)

		_, err := svc.Append(context.Background(), NewReading{BinID: "bin-a", WasteTag: "mud"})
		if !errors.Is(err, ErrInvalidReading) {
			t.Fatalf("expected ErrInvalidReading, got %v", err)
		}
		if len(st.appended) != 0 {
			t.Fatalf("store must not be called on validation failure")
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Parallel()
		st := &fakeStore{err: errors.New("disk full")}
		svc := NewReadingsService(st)

		_, err := svc.Append(context.Background(), NewReading{
			BinID: "bin-a", WeightKg: 1, MoistureRaw: 1, WasteTag: binwatch.TagGlass,
		})
		if !errors.Is(err, st.err) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestReadingsService_Recent_LimitDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want int }{
		{0, 50}, {-5, 50}, {10, 10}, {50, 50}, {51, 50}, {999, 50},
	}
	for _, c := range cases {
		st := &fakeStore{}
		svc := NewReadingsService(st)
		if _, err := svc.Recent(context.Background(), c.in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.lastLimit != c.want {
			t.Fatalf("Recent(%d): store limit = %d; want %d", c.in, st.lastLimit, c.want)
		}
	}
}
