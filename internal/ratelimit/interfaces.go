// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"time"

	"github.com/canonical/license-service/internal/types"
)

type CounterStoreInterface interface {
	GetRateLimitCounter(ctx context.Context, identifier, action string) (*types.RateLimitCounter, error)
	CreateRateLimitCounter(ctx context.Context, identifier, action string, now time.Time) error
	ResetRateLimitCounter(ctx context.Context, identifier, action string, now time.Time) error
	IncrementRateLimitCounter(ctx context.Context, identifier, action string) error
	LockRateLimitCounter(ctx context.Context, identifier, action string, until time.Time) error
}
