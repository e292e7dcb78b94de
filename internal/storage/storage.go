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

	"github.com/canonical/license-service/internal/db"
	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const licenseColumns = "id, license_code, email, is_active, plan_type, " +
	"first_name, last_name, company_name, siren, company_status, employee_count, " +
	"address, city, postal_code, " +
	"max_drivers, max_clients, max_daily_charges, max_monthly_charges, max_yearly_charges, max_users, " +
	"show_user_info, show_company_info, show_address_info, show_license_info, " +
	"notes, activated_at, last_used_at, created_at"

// licenseFields are the columns admin partial updates may touch.
var licenseFields = map[string]bool{
	"email":               true,
	"plan_type":           true,
	"first_name":          true,
	"last_name":           true,
	"company_name":        true,
	"siren":               true,
	"company_status":      true,
	"employee_count":      true,
	"address":             true,
	"city":                true,
	"postal_code":         true,
	"max_drivers":         true,
	"max_clients":         true,
	"max_daily_charges":   true,
	"max_monthly_charges": true,
	"max_yearly_charges":  true,
	"max_users":           true,
	"show_user_info":      true,
	"show_company_info":   true,
	"show_address_info":   true,
	"show_license_info":   true,
	"notes":               true,
}

// IsUpdatableLicenseColumn reports whether admin partial updates may write
// the column.
func IsUpdatableLicenseColumn(column string) bool {
	return licenseFields[column]
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanLicense(row sq.RowScanner) (*types.License, error) {
	var l types.License
	err := row.Scan(
		&l.ID, &l.Code, &l.OwnerEmail, &l.IsActive, &l.PlanType,
		&l.FirstName, &l.LastName, &l.CompanyName, &l.Siren, &l.CompanyStatus, &l.EmployeeCount,
		&l.Address, &l.City, &l.PostalCode,
		&l.MaxDrivers, &l.MaxClients, &l.MaxDailyCharges, &l.MaxMonthlyCharges, &l.MaxYearlyCharges, &l.MaxUsers,
		&l.ShowUserInfo, &l.ShowCompanyInfo, &l.ShowAddressInfo, &l.ShowLicenseInfo,
		&l.Notes, &l.ActivatedAt, &l.LastUsedAt, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Storage) CreateLicense(ctx context.Context, l *types.License) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLicense")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate license ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("licenses").
		Columns("id", "license_code", "email", "is_active", "plan_type",
			"first_name", "last_name", "company_name", "siren", "company_status", "employee_count",
			"address", "city", "postal_code", "max_users").
		Values(id.String(), l.Code, l.OwnerEmail, l.IsActive, l.PlanType,
			l.FirstName, l.LastName, l.CompanyName, l.Siren, l.CompanyStatus, l.EmployeeCount,
			l.Address, l.City, l.PostalCode, l.MaxUsers).
		Suffix("RETURNING " + licenseColumns).
		QueryRowContext(ctx)

	created, err := scanLicense(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "license code already exists")
		}
		return nil, fmt.Errorf("failed to insert license: %w", err)
	}

	return created, nil
}

func (s *Storage) GetLicenseByID(ctx context.Context, id string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLicenseByID")
	defer span.End()

	return s.getLicense(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetLicenseByCode(ctx context.Context, code string) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLicenseByCode")
	defer span.End()

	return s.getLicense(ctx, sq.Eq{"license_code": code})
}

func (s *Storage) getLicense(ctx context.Context, pred sq.Eq) (*types.License, error) {
	row := s.db.Statement(ctx).
		Select(licenseColumns).
		From("licenses").
		Where(pred).
		QueryRowContext(ctx)

	l, err := scanLicense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}

	return l, nil
}

func (s *Storage) ListLicenses(ctx context.Context) ([]*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLicenses")
	defer span.End()

	return s.listLicenses(ctx, func(q sq.SelectBuilder) sq.SelectBuilder {
		return q.OrderBy("created_at DESC")
	})
}

func (s *Storage) ListLicensesWithSiren(ctx context.Context) ([]*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLicensesWithSiren")
	defer span.End()

	return s.listLicenses(ctx, func(q sq.SelectBuilder) sq.SelectBuilder {
		return q.
			Where(sq.NotEq{"siren": nil}).
			Where(sq.NotEq{"siren": ""}).
			OrderBy("siren", "created_at")
	})
}

func (s *Storage) listLicenses(ctx context.Context, refine func(sq.SelectBuilder) sq.SelectBuilder) ([]*types.License, error) {
	query := refine(
		s.db.Statement(ctx).
			Select(licenseColumns).
			From("licenses"),
	)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	defer rows.Close()

	var licenses []*types.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan license: %w", err)
		}
		licenses = append(licenses, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating license rows: %w", err)
	}

	return licenses, nil
}

// UpdateLicense applies a partial update. Unknown columns are rejected rather
// than silently dropped.
func (s *Storage) UpdateLicense(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLicense")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	for col := range fields {
		if !licenseFields[col] {
			return fmt.Errorf("column %q is not updatable", col)
		}
	}

	res, err := s.db.Statement(ctx).
		Update("licenses").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update license: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteLicense(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLicense")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("licenses").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetLicenseStatus(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetLicenseStatus")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("licenses").
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set license status: %w", err)
	}
	return nil
}

func (s *Storage) SetLicensePlan(ctx context.Context, id, plan string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetLicensePlan")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("licenses").
		Set("plan_type", plan).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set license plan: %w", err)
	}
	return nil
}

// TouchLicenseUsage stamps last_used_at and sets activated_at on first use only.
func (s *Storage) TouchLicenseUsage(ctx context.Context, id string, now time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchLicenseUsage")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("licenses").
		Set("last_used_at", now).
		Set("activated_at", sq.Expr("COALESCE(activated_at, ?)", now)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to touch license usage: %w", err)
	}
	return nil
}

func (s *Storage) DeactivateLicenseWithNote(ctx context.Context, id, note string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateLicenseWithNote")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("licenses").
		Set("is_active", false).
		Set("notes", note).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to deactivate license: %w", err)
	}
	return nil
}
