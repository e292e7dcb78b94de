// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
)

const testSecret = "test-secret"

func newTestVerifier(secret string) *HMACVerifier {
	return NewHMACVerifier(secret, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func newTestIssuer(secret string, lifetime time.Duration) *HMACIssuer {
	return NewHMACIssuer(secret, lifetime, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestHMACVerifier_VerifyToken(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		secret      string
		token       func(t *testing.T) string
		expectedErr error
	}{
		{
			name:   "valid admin token",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{
					"email": "admin@example.com",
					"role":  "admin",
					"iat":   now.Unix(),
					"exp":   now.Add(time.Hour).Unix(),
				})
			},
		},
		{
			name:   "empty secret rejects every token",
			secret: "",
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{
					"email": "admin@example.com",
					"role":  "admin",
					"exp":   now.Add(time.Hour).Unix(),
				})
			},
			expectedErr: ErrVerifierDisabled,
		},
		{
			name:   "malformed token",
			secret: testSecret,
			token: func(t *testing.T) string {
				return "not-a-token"
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:   "wrong signing secret",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, "other-secret", jwt.MapClaims{
					"email": "admin@example.com",
					"role":  "admin",
					"exp":   now.Add(time.Hour).Unix(),
				})
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:   "tampered payload",
			secret: testSecret,
			token: func(t *testing.T) string {
				token := signToken(t, testSecret, jwt.MapClaims{
					"email": "admin@example.com",
					"role":  "admin",
					"exp":   now.Add(time.Hour).Unix(),
				})
				return token[:len(token)-4] + "AAAA"
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name:   "expired token",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{
					"email": "admin@example.com",
					"role":  "admin",
					"exp":   now.Add(-time.Minute).Unix(),
				})
			},
			expectedErr: ErrTokenExpired,
		},
		{
			name:   "non-admin role",
			secret: testSecret,
			token: func(t *testing.T) string {
				return signToken(t, testSecret, jwt.MapClaims{
					"email": "user@example.com",
					"role":  "member",
					"exp":   now.Add(time.Hour).Unix(),
				})
			},
			expectedErr: ErrNotAdmin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := newTestVerifier(tc.secret)

			claims, err := v.VerifyToken(context.Background(), tc.token(t))
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if claims.Email != "admin@example.com" {
				t.Errorf("expected email admin@example.com, got %q", claims.Email)
			}
			if claims.Role != "admin" {
				t.Errorf("expected role admin, got %q", claims.Role)
			}
		})
	}
}

func TestHMACIssuer_RoundTrip(t *testing.T) {
	issuer := newTestIssuer(testSecret, time.Hour)

	token, err := issuer.IssueToken(context.Background(), "ops@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := newTestVerifier(testSecret).VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Email != "ops@example.com" {
		t.Errorf("expected email ops@example.com, got %q", claims.Email)
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		t.Errorf("expected expiry in the future, got %d", claims.ExpiresAt)
	}
}

func TestHMACIssuer_NoSecret(t *testing.T) {
	issuer := newTestIssuer("", time.Hour)

	if _, err := issuer.IssueToken(context.Background(), "ops@example.com"); !errors.Is(err, ErrVerifierDisabled) {
		t.Fatalf("expected ErrVerifierDisabled, got %v", err)
	}
}
