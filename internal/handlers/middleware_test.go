package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"binwatch"
	"binwatch/internal/service"
)

func TestBearerAuthMiddleware(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "no token part", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", parseErr: errors.New("expired"), wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseID: 7, parseErr: tc.parseErr}
			an := &mockAnalytics{rankResp: binwatch.Ranking{}}
			r := newTestRouter(&service.Service{Authorization: auth, Analytics: an})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/top", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tc.wantStatus {
				t.Fatalf("status=%d; want %d (body=%s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.wantStatus == http.StatusOK && auth.lastParseToken != "good" {
				t.Fatalf("token passed to ParseToken = %q", auth.lastParseToken)
			}
		})
	}
}
