// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/license-service/internal/types"
)

func (s *Storage) GetFeatureSet(ctx context.Context, licenseID string) (*types.FeatureSet, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetFeatureSet")
	defer span.End()

	var (
		f   types.FeatureSet
		raw []byte
	)
	err := s.db.Statement(ctx).
		Select("id", "license_id", "flags", "updated_at").
		From("license_features").
		Where(sq.Eq{"license_id": licenseID}).
		QueryRowContext(ctx).
		Scan(&f.ID, &f.LicenseID, &raw, &f.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature set: %w", err)
	}

	if err := json.Unmarshal(raw, &f.Flags); err != nil {
		return nil, fmt.Errorf("failed to decode feature flags: %w", err)
	}

	return &f, nil
}

// UpsertFeatureSet merges the given flags into the single per-license row,
// creating it when absent. Flags not present in the input are preserved.
func (s *Storage) UpsertFeatureSet(ctx context.Context, licenseID string, flags map[string]bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertFeatureSet")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate feature set ID: %w", err)
	}

	raw, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("failed to encode feature flags: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("license_features").
		Columns("id", "license_id", "flags", "updated_at").
		Values(id.String(), licenseID, raw, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (license_id) DO UPDATE SET flags = license_features.flags || EXCLUDED.flags, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "license does not exist")
		}
		return fmt.Errorf("failed to upsert feature set: %w", err)
	}

	return nil
}

func (s *Storage) ListUserOverrides(ctx context.Context, membershipID string) ([]*types.UserFeatureOverride, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserOverrides")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("membership_id", "feature_key", "enabled").
		From("user_feature_overrides").
		Where(sq.Eq{"membership_id": membershipID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list user overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*types.UserFeatureOverride
	for rows.Next() {
		var o types.UserFeatureOverride
		if err := rows.Scan(&o.MembershipID, &o.FeatureKey, &o.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan user override: %w", err)
		}
		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating override rows: %w", err)
	}

	return overrides, nil
}

func (s *Storage) ListAddons(ctx context.Context, licenseID string, activeOnly bool) ([]*types.Addon, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAddons")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "license_id", "addon_id", "addon_name", "is_active", "activated_at", "deactivated_at").
		From("license_addons").
		Where(sq.Eq{"license_id": licenseID})

	if activeOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addons: %w", err)
	}
	defer rows.Close()

	var addons []*types.Addon
	for rows.Next() {
		var a types.Addon
		if err := rows.Scan(&a.ID, &a.LicenseID, &a.AddonID, &a.AddonName, &a.IsActive, &a.ActivatedAt, &a.DeactivatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan addon: %w", err)
		}
		addons = append(addons, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating addon rows: %w", err)
	}

	return addons, nil
}

func (s *Storage) DeactivateAddons(ctx context.Context, licenseID string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateAddons")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("license_addons").
		Set("is_active", false).
		Set("deactivated_at", now).
		Where(sq.Eq{"license_id": licenseID, "is_active": true}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate addons: %w", err)
	}
	return nil
}

func (s *Storage) UpsertAddon(ctx context.Context, licenseID, addonID string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertAddon")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate addon ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("license_addons").
		Columns("id", "license_id", "addon_id", "addon_name", "is_active", "activated_at", "deactivated_at").
		Values(id.String(), licenseID, addonID, addonID, true, now, nil).
		Suffix("ON CONFLICT (license_id, addon_id) DO UPDATE SET is_active = true, activated_at = EXCLUDED.activated_at, deactivated_at = NULL").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "license does not exist")
		}
		return fmt.Errorf("failed to upsert addon: %w", err)
	}

	return nil
}
