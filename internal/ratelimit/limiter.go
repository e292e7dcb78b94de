// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package ratelimit throttles repeated attempts per caller identifier using
// database-backed counters, so limits hold across service replicas.
package ratelimit

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/tracing"
)

// Decision is the outcome of a rate limit check. When Allowed is false,
// RetryAfter holds the whole seconds the caller must wait.
type Decision struct {
	Allowed    bool
	RetryAfter int
}

var allow = Decision{Allowed: true}

type Limiter struct {
	counters CounterStoreInterface

	maxAttempts int
	window      time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewLimiter(counters CounterStoreInterface, maxAttempts int, window time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Limiter {
	l := new(Limiter)
	l.counters = counters
	l.maxAttempts = maxAttempts
	l.window = window
	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger
	return l
}

// Check consumes one attempt for the identifier and decides whether the call
// may proceed. Storage failures allow the call through: the limiter protects
// against brute force, it must not turn a database hiccup into an outage.
func (l *Limiter) Check(ctx context.Context, identifier, action string) (Decision, error) {
	ctx, span := l.tracer.Start(ctx, "ratelimit.Limiter.Check")
	defer span.End()

	now := time.Now().UTC()

	counter, err := l.counters.GetRateLimitCounter(ctx, identifier, action)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if err := l.counters.CreateRateLimitCounter(ctx, identifier, action, now); err != nil {
				l.logger.Warnf("failed to create rate limit counter for %s: %v", identifier, err)
			}
			return allow, nil
		}
		l.logger.Warnf("rate limit lookup failed for %s, allowing request: %v", identifier, err)
		return allow, nil
	}

	if counter.LockedUntil != nil && now.Before(*counter.LockedUntil) {
		l.logger.Security().RateLimitExceeded(identifier, action)
		return Decision{RetryAfter: secondsUntil(now, *counter.LockedUntil)}, nil
	}

	if now.Sub(counter.FirstAttemptAt) >= l.window {
		if err := l.counters.ResetRateLimitCounter(ctx, identifier, action, now); err != nil {
			l.logger.Warnf("failed to reset rate limit counter for %s: %v", identifier, err)
		}
		return allow, nil
	}

	if counter.Attempts+1 > l.maxAttempts {
		until := counter.FirstAttemptAt.Add(l.window)
		if err := l.counters.LockRateLimitCounter(ctx, identifier, action, until); err != nil {
			l.logger.Warnf("failed to lock rate limit counter for %s: %v", identifier, err)
		}
		l.logger.Security().RateLimitExceeded(identifier, action)
		return Decision{RetryAfter: secondsUntil(now, until)}, nil
	}

	if err := l.counters.IncrementRateLimitCounter(ctx, identifier, action); err != nil {
		l.logger.Warnf("failed to increment rate limit counter for %s: %v", identifier, err)
	}

	return allow, nil
}

func secondsUntil(now, until time.Time) int {
	return int(math.Ceil(until.Sub(now).Seconds()))
}
