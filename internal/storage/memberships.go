// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/license-service/internal/types"
)

const membershipColumns = "id, license_id, identity_id, email, role, display_name, " +
	"is_active, invited_at, accepted_at, last_activity_at, created_at"

func scanMembership(row sq.RowScanner) (*types.Membership, error) {
	var m types.Membership
	err := row.Scan(
		&m.ID, &m.LicenseID, &m.IdentityID, &m.Email, &m.Role, &m.DisplayName,
		&m.IsActive, &m.InvitedAt, &m.AcceptedAt, &m.LastActivityAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("company_users").
		Columns("id", "license_id", "identity_id", "email", "role", "display_name",
			"is_active", "invited_at", "accepted_at").
		Values(id.String(), m.LicenseID, m.IdentityID, m.Email, m.Role, m.DisplayName,
			m.IsActive, m.InvitedAt, m.AcceptedAt).
		Suffix("RETURNING " + membershipColumns).
		QueryRowContext(ctx)

	created, err := scanMembership(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "membership already exists for this email")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "license does not exist")
		}
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return created, nil
}

func (s *Storage) GetMembership(ctx context.Context, licenseID, email string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"license_id": licenseID, "email": email})
}

func (s *Storage) GetMembershipByIdentity(ctx context.Context, licenseID, identityID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByIdentity")
	defer span.End()

	return s.getMembership(ctx, sq.Eq{"license_id": licenseID, "identity_id": identityID})
}

func (s *Storage) getMembership(ctx context.Context, pred sq.Eq) (*types.Membership, error) {
	row := s.db.Statement(ctx).
		Select(membershipColumns).
		From("company_users").
		Where(pred).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

// AttachIdentity binds an identity to a membership that has none yet. The
// identity_id IS NULL guard makes this a single atomic conditional update, so
// two concurrent first logins cannot both win or overwrite an existing link.
// Returns false when the row was already linked (or does not exist).
func (s *Storage) AttachIdentity(ctx context.Context, membershipID, identityID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AttachIdentity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("company_users").
		Set("identity_id", identityID).
		Set("accepted_at", sq.Expr("COALESCE(accepted_at, NOW())")).
		Where(sq.Eq{"id": membershipID}).
		Where("identity_id IS NULL").
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to attach identity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows == 1, nil
}

func (s *Storage) HasOwner(ctx context.Context, licenseID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasOwner")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("company_users").
		Where(sq.Eq{"license_id": licenseID, "role": types.RoleOwner}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check for owner: %w", err)
	}

	return count > 0, nil
}

func (s *Storage) ListMembers(ctx context.Context, licenseID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns).
		From("company_users").
		Where(sq.Eq{"license_id": licenseID}).
		OrderBy("role", "created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

func (s *Storage) CountMembers(ctx context.Context, licenseID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMembers")
	defer span.End()

	return s.countMembers(ctx, sq.Eq{"license_id": licenseID})
}

func (s *Storage) CountActiveMembers(ctx context.Context, licenseID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveMembers")
	defer span.End()

	return s.countMembers(ctx, sq.Eq{"license_id": licenseID, "is_active": true})
}

func (s *Storage) countMembers(ctx context.Context, pred sq.Eq) (int64, error) {
	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("company_users").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

func (s *Storage) ReassignMembers(ctx context.Context, fromLicenseID, toLicenseID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReassignMembers")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("company_users").
		Set("license_id", toLicenseID).
		Where(sq.Eq{"license_id": fromLicenseID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to reassign members: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
