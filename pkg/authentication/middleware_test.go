// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/tracing"
)

func newTestMiddleware(t *testing.T) (*Middleware, *TokenIssuer) {
	t.Helper()

	issuer := newTestIssuer(t, strings.Repeat("s", 32), 30*time.Minute)
	mdw := NewMiddleware(
		issuer,
		tracing.NewTracer(tracing.NewNoopConfig()),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return mdw, issuer
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	mdw, issuer := newTestMiddleware(t)

	token, err := issuer.Issue(context.Background(), "admin-1", "a@x.com", "org-1", "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var gotClaims *Claims
	handler := mdw.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotClaims == nil || gotClaims.Email != "a@x.com" {
		t.Errorf("expected claims in context, got %+v", gotClaims)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	mdw, _ := newTestMiddleware(t)

	handler := mdw.Authenticate()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}
