// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/license-service/internal/types"
)

func (s *Storage) GetRateLimitCounter(ctx context.Context, identifier, action string) (*types.RateLimitCounter, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRateLimitCounter")
	defer span.End()

	var c types.RateLimitCounter
	err := s.db.Statement(ctx).
		Select("id", "identifier", "action_type", "attempts", "first_attempt_at", "last_attempt_at", "locked_until").
		From("rate_limits").
		Where(sq.Eq{"identifier": identifier, "action_type": action}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Identifier, &c.ActionType, &c.Attempts, &c.FirstAttemptAt, &c.LastAttemptAt, &c.LockedUntil)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rate limit counter: %w", err)
	}

	return &c, nil
}

func (s *Storage) CreateRateLimitCounter(ctx context.Context, identifier, action string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRateLimitCounter")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate counter ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("rate_limits").
		Columns("id", "identifier", "action_type", "attempts", "first_attempt_at", "last_attempt_at", "locked_until").
		Values(id.String(), identifier, action, 1, now, now, nil).
		Suffix("ON CONFLICT (identifier, action_type) DO UPDATE SET attempts = 1, first_attempt_at = EXCLUDED.first_attempt_at, last_attempt_at = EXCLUDED.last_attempt_at, locked_until = NULL").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to create rate limit counter: %w", err)
	}
	return nil
}

// ResetRateLimitCounter starts a fresh window with a single attempt.
func (s *Storage) ResetRateLimitCounter(ctx context.Context, identifier, action string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ResetRateLimitCounter")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("rate_limits").
		Set("attempts", 1).
		Set("first_attempt_at", now).
		Set("last_attempt_at", now).
		Set("locked_until", nil).
		Where(sq.Eq{"identifier": identifier, "action_type": action}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to reset rate limit counter: %w", err)
	}
	return nil
}

func (s *Storage) IncrementRateLimitCounter(ctx context.Context, identifier, action string) error {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementRateLimitCounter")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("rate_limits").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_attempt_at", sq.Expr("NOW()")).
		Where(sq.Eq{"identifier": identifier, "action_type": action}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	return nil
}

func (s *Storage) LockRateLimitCounter(ctx context.Context, identifier, action string, until time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockRateLimitCounter")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("rate_limits").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("last_attempt_at", sq.Expr("NOW()")).
		Set("locked_until", until).
		Where(sq.Eq{"identifier": identifier, "action_type": action}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to lock rate limit counter: %w", err)
	}
	return nil
}
