package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"binwatch"

	"github.com/google/uuid"
)

// document is the on-disk layout: the full reading list under one key.
type document struct {
	Readings []binwatch.Reading `json:"readings"`
}

// FileStore keeps all readings in memory and mirrors every append to a
// single JSON document on disk. Appends hold the write lock for the whole
// append+persist step; reads take a snapshot under the read lock.
type FileStore struct {
	path string

	mu       sync.RWMutex
	readings []binwatch.Reading

	now func() time.Time // injectable for deterministic tests
}

var _ ReadingStore = (*FileStore)(nil)

// OpenFileStore loads the JSON document at path, creating an empty store
// when the file does not exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, now: time.Now}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("read store %q: %w", path, err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse store %q: %w", path, err)
	}
	s.readings = doc.Readings
	return s, nil
}

// Append assigns id and timestamp, adds the reading and rewrites the file.
// Field validation is the service layer's job; the store only persists.
func (s *FileStore) Append(ctx context.Context, r binwatch.Reading) (binwatch.Reading, error) {
	if err := ctx.Err(); err != nil {
		return binwatch.Reading{}, err
	}

	r.ID = uuid.NewString()
	r.Timestamp = s.now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.readings = append(s.readings, r)
	if err := s.persistLocked(); err != nil {
		s.readings = s.readings[:len(s.readings)-1]
		return binwatch.Reading{}, err
	}
	return r, nil
}

// Recent returns up to limit readings, newest first.
func (s *FileStore) Recent(ctx context.Context, limit int) ([]binwatch.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.readings) {
		limit = len(s.readings)
	}
	out := make([]binwatch.Reading, 0, limit)
	for i := len(s.readings) - 1; i >= len(s.readings)-limit; i-- {
		out = append(out, s.readings[i])
	}
	return out, nil
}

// InRange returns readings whose timestamp falls within the trailing days
// calendar days (inclusive of today), in append order.
func (s *FileStore) InRange(ctx context.Context, days int) ([]binwatch.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}
	cutoff := startOfDayUTC(s.now()).AddDate(0, 0, -(days - 1))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]binwatch.Reading, 0, len(s.readings))
	for _, r := range s.readings {
		if !r.Timestamp.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out, nil
}

// ByBin returns all readings for the given bin, in append order.
func (s *FileStore) ByBin(ctx context.Context, binID string) ([]binwatch.Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]binwatch.Reading, 0, 16)
	for _, r := range s.readings {
		if r.BinID == binID {
			out = append(out, r)
		}
	}
	return out, nil
}

// persistLocked rewrites the document atomically: temp file in the same
// directory, then rename over the target. Caller holds the write lock.
func (s *FileStore) persistLocked() error {
	data, err := json.MarshalIndent(document{Readings: s.readings}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".binwatch-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace store %q: %w", s.path, err)
	}
	return nil
}

// startOfDayUTC truncates t to midnight UTC.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
