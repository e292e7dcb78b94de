// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package ratelimit -destination ./mock_counters.go -source=./interfaces.go

const (
	testIdentifier = "203.0.113.7"
	testAction     = "validate"
)

func newTestLimiter(counters CounterStoreInterface, maxAttempts int, window time.Duration) *Limiter {
	return NewLimiter(counters, maxAttempts, window, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestLimiter_Check(t *testing.T) {
	now := time.Now().UTC()
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		setupMocks      func(*MockCounterStoreInterface)
		expectedAllowed bool
		retryAfterMin   int
	}{
		{
			name: "first attempt creates counter and allows",
			setupMocks: func(m *MockCounterStoreInterface) {
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(nil, storage.ErrNotFound)
				m.EXPECT().CreateRateLimitCounter(gomock.Any(), testIdentifier, testAction, gomock.Any()).Return(nil)
			},
			expectedAllowed: true,
		},
		{
			name: "attempt inside window increments and allows",
			setupMocks: func(m *MockCounterStoreInterface) {
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(&types.RateLimitCounter{
					Identifier:     testIdentifier,
					ActionType:     testAction,
					Attempts:       2,
					FirstAttemptAt: now.Add(-time.Minute),
				}, nil)
				m.EXPECT().IncrementRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(nil)
			},
			expectedAllowed: true,
		},
		{
			name: "exceeding the limit locks the identifier",
			setupMocks: func(m *MockCounterStoreInterface) {
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(&types.RateLimitCounter{
					Identifier:     testIdentifier,
					ActionType:     testAction,
					Attempts:       5,
					FirstAttemptAt: now.Add(-time.Minute),
				}, nil)
				m.EXPECT().LockRateLimitCounter(gomock.Any(), testIdentifier, testAction, gomock.Any()).Return(nil)
			},
			expectedAllowed: false,
			retryAfterMin:   1,
		},
		{
			name: "active lock denies with remaining wait",
			setupMocks: func(m *MockCounterStoreInterface) {
				lockedUntil := now.Add(10 * time.Minute)
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(&types.RateLimitCounter{
					Identifier:     testIdentifier,
					ActionType:     testAction,
					Attempts:       6,
					FirstAttemptAt: now.Add(-5 * time.Minute),
					LockedUntil:    &lockedUntil,
				}, nil)
			},
			expectedAllowed: false,
			retryAfterMin:   1,
		},
		{
			name: "expired lock falls through to window check",
			setupMocks: func(m *MockCounterStoreInterface) {
				lockedUntil := now.Add(-time.Minute)
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(&types.RateLimitCounter{
					Identifier:     testIdentifier,
					ActionType:     testAction,
					Attempts:       6,
					FirstAttemptAt: now.Add(-20 * time.Minute),
					LockedUntil:    &lockedUntil,
				}, nil)
				m.EXPECT().ResetRateLimitCounter(gomock.Any(), testIdentifier, testAction, gomock.Any()).Return(nil)
			},
			expectedAllowed: true,
		},
		{
			name: "expired window resets and allows",
			setupMocks: func(m *MockCounterStoreInterface) {
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(&types.RateLimitCounter{
					Identifier:     testIdentifier,
					ActionType:     testAction,
					Attempts:       5,
					FirstAttemptAt: now.Add(-16 * time.Minute),
				}, nil)
				m.EXPECT().ResetRateLimitCounter(gomock.Any(), testIdentifier, testAction, gomock.Any()).Return(nil)
			},
			expectedAllowed: true,
		},
		{
			name: "storage read failure allows the request",
			setupMocks: func(m *MockCounterStoreInterface) {
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(nil, dbErr)
			},
			expectedAllowed: true,
		},
		{
			name: "increment failure still allows the request",
			setupMocks: func(m *MockCounterStoreInterface) {
				m.EXPECT().GetRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(&types.RateLimitCounter{
					Identifier:     testIdentifier,
					ActionType:     testAction,
					Attempts:       1,
					FirstAttemptAt: now.Add(-time.Minute),
				}, nil)
				m.EXPECT().IncrementRateLimitCounter(gomock.Any(), testIdentifier, testAction).Return(dbErr)
			},
			expectedAllowed: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCounters := NewMockCounterStoreInterface(ctrl)
			tc.setupMocks(mockCounters)

			l := newTestLimiter(mockCounters, 5, 15*time.Minute)

			decision, err := l.Check(context.Background(), testIdentifier, testAction)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if decision.Allowed != tc.expectedAllowed {
				t.Errorf("expected allowed=%v, got %v", tc.expectedAllowed, decision.Allowed)
			}
			if !tc.expectedAllowed && decision.RetryAfter < tc.retryAfterMin {
				t.Errorf("expected retry-after of at least %d seconds, got %d", tc.retryAfterMin, decision.RetryAfter)
			}
			if tc.expectedAllowed && decision.RetryAfter != 0 {
				t.Errorf("expected no retry-after on allowed decision, got %d", decision.RetryAfter)
			}
		})
	}
}
