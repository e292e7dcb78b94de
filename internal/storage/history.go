// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/license-service/internal/types"
)

func (s *Storage) AppendAuditEntry(ctx context.Context, entry *types.AuditEntry) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendAuditEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate audit entry ID: %w", err)
	}

	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_logs").
		Columns("id", "actor_email", "action", "target_type", "target_id", "details", "ip_address", "created_at").
		Values(id.String(), entry.ActorEmail, entry.Action, entry.TargetType, entry.TargetID, raw, entry.IPAddress, sq.Expr("NOW()")).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (s *Storage) ListAuditEntries(ctx context.Context, targetID string, limit uint64) ([]*types.AuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAuditEntries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "actor_email", "action", "target_type", "target_id", "details", "ip_address", "created_at").
		From("audit_logs").
		OrderBy("created_at DESC").
		Limit(limit)

	if targetID != "" {
		query = query.Where(sq.Eq{"target_id": targetID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.AuditEntry
	for rows.Next() {
		var (
			e   types.AuditEntry
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.ActorEmail, &e.Action, &e.TargetType, &e.TargetID, &raw, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Details); err != nil {
				return nil, fmt.Errorf("failed to decode audit details: %w", err)
			}
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", err)
	}

	return entries, nil
}

func (s *Storage) AppendLoginEntry(ctx context.Context, entry *types.LoginEntry) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendLoginEntry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate login entry ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("login_history").
		Columns("id", "email", "license_id", "ip_address", "user_agent", "device_type", "success", "created_at").
		Values(id.String(), entry.Email, entry.LicenseID, entry.IPAddress, entry.UserAgent, entry.DeviceType, entry.Success, sq.Expr("NOW()")).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to append login entry: %w", err)
	}
	return nil
}

func (s *Storage) ListLoginEntries(ctx context.Context, email string, limit uint64) ([]*types.LoginEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLoginEntries")
	defer span.End()

	var pred sq.Eq
	if email != "" {
		pred = sq.Eq{"email": email}
	}
	return s.listLoginEntries(ctx, pred, limit)
}

func (s *Storage) ListLoginEntriesByLicense(ctx context.Context, licenseID string, limit uint64) ([]*types.LoginEntry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLoginEntriesByLicense")
	defer span.End()

	return s.listLoginEntries(ctx, sq.Eq{"license_id": licenseID}, limit)
}

func (s *Storage) listLoginEntries(ctx context.Context, pred sq.Eq, limit uint64) ([]*types.LoginEntry, error) {
	query := s.db.Statement(ctx).
		Select("id", "email", "license_id", "ip_address", "user_agent", "device_type", "success", "created_at").
		From("login_history").
		OrderBy("created_at DESC").
		Limit(limit)

	if pred != nil {
		query = query.Where(pred)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list login entries: %w", err)
	}
	defer rows.Close()

	var entries []*types.LoginEntry
	for rows.Next() {
		var e types.LoginEntry
		if err := rows.Scan(&e.ID, &e.Email, &e.LicenseID, &e.IPAddress, &e.UserAgent, &e.DeviceType, &e.Success, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan login entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating login rows: %w", err)
	}

	return entries, nil
}
