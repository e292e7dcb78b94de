// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
)

func newTestResolver(t *testing.T, adminEmails []string) (*Resolver, string) {
	t.Helper()

	token, err := newTestIssuer(testSecret, time.Hour).IssueToken(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}

	r := NewResolver(newTestVerifier(testSecret), adminEmails, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return r, token
}

func TestResolver_Resolve(t *testing.T) {
	adminEmails := []string{"Legacy@Example.com"}

	testCases := []struct {
		name             string
		header           func(token string) string
		bodyToken        func(token string) string
		email            string
		expectedStrategy string
		expectedEmail    string
		expectedErr      error
	}{
		{
			name:             "bearer header wins",
			header:           func(token string) string { return "Bearer " + token },
			bodyToken:        func(token string) string { return token },
			email:            "legacy@example.com",
			expectedStrategy: StrategyBearer,
			expectedEmail:    "admin@example.com",
		},
		{
			name:             "body token used when header absent",
			header:           func(string) string { return "" },
			bodyToken:        func(token string) string { return token },
			expectedStrategy: StrategyBodyToken,
			expectedEmail:    "admin@example.com",
		},
		{
			name:             "invalid bearer falls through to body token",
			header:           func(string) string { return "Bearer garbage" },
			bodyToken:        func(token string) string { return token },
			expectedStrategy: StrategyBodyToken,
			expectedEmail:    "admin@example.com",
		},
		{
			name:             "legacy email matches case-insensitively",
			header:           func(string) string { return "" },
			bodyToken:        func(string) string { return "" },
			email:            "LEGACY@example.COM",
			expectedStrategy: StrategyLegacyEmail,
			expectedEmail:    "legacy@example.com",
		},
		{
			name:      "invalid tokens and unknown email are rejected",
			header:    func(string) string { return "Bearer garbage" },
			bodyToken: func(string) string { return "also-garbage" },
			email:     "someone@example.com",

			expectedErr: ErrUnauthorized,
		},
		{
			name:        "no credentials at all",
			header:      func(string) string { return "" },
			bodyToken:   func(string) string { return "" },
			expectedErr: ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, token := newTestResolver(t, adminEmails)

			actor, err := r.Resolve(context.Background(), tc.header(token), tc.bodyToken(token), tc.email)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if actor.Strategy != tc.expectedStrategy {
				t.Errorf("expected strategy %q, got %q", tc.expectedStrategy, actor.Strategy)
			}
			if actor.Email != tc.expectedEmail {
				t.Errorf("expected email %q, got %q", tc.expectedEmail, actor.Email)
			}
		})
	}
}
