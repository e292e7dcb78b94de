// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/license-service/internal/types"
)

// RecordTables lists the business record tables attached to a license, in the
// order they are processed during a company merge.
var RecordTables = []string{
	"saved_tours",
	"trips",
	"clients",
	"quotes",
	"user_vehicles",
	"user_drivers",
	"user_charges",
	"user_trailers",
}

var recordTableSet = func() map[string]bool {
	m := make(map[string]bool, len(RecordTables))
	for _, t := range RecordTables {
		m[t] = true
	}
	return m
}()

func (s *Storage) countRecords(ctx context.Context, pred sq.Eq) (types.RecordCounts, error) {
	var counts types.RecordCounts

	targets := map[string]*int64{
		"saved_tours":   &counts.Tours,
		"trips":         &counts.Trips,
		"clients":       &counts.Clients,
		"quotes":        &counts.Quotes,
		"user_vehicles": &counts.Vehicles,
		"user_drivers":  &counts.Drivers,
		"user_charges":  &counts.Charges,
		"user_trailers": &counts.Trailers,
	}

	for table, dest := range targets {
		err := s.db.Statement(ctx).
			Select("COUNT(*)").
			From(table).
			Where(pred).
			QueryRowContext(ctx).
			Scan(dest)
		if err != nil {
			return types.RecordCounts{}, fmt.Errorf("failed to count %s: %w", table, err)
		}
	}

	return counts, nil
}

func (s *Storage) CountRecordsByLicense(ctx context.Context, licenseID string) (types.RecordCounts, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountRecordsByLicense")
	defer span.End()

	return s.countRecords(ctx, sq.Eq{"license_id": licenseID})
}

func (s *Storage) CountRecordsByIdentity(ctx context.Context, identityID string) (types.RecordCounts, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountRecordsByIdentity")
	defer span.End()

	return s.countRecords(ctx, sq.Eq{"identity_id": identityID})
}

func (s *Storage) sumTripMetrics(ctx context.Context, pred sq.Eq) (float64, float64, error) {
	var revenue, distance float64
	err := s.db.Statement(ctx).
		Select("COALESCE(SUM(revenue), 0)", "COALESCE(SUM(distance_km), 0)").
		From("trips").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&revenue, &distance)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to sum trip metrics: %w", err)
	}
	return revenue, distance, nil
}

func (s *Storage) SumTripMetricsByLicense(ctx context.Context, licenseID string) (float64, float64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SumTripMetricsByLicense")
	defer span.End()

	return s.sumTripMetrics(ctx, sq.Eq{"license_id": licenseID})
}

func (s *Storage) SumTripMetricsByIdentity(ctx context.Context, identityID string) (float64, float64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SumTripMetricsByIdentity")
	defer span.End()

	return s.sumTripMetrics(ctx, sq.Eq{"identity_id": identityID})
}

func (s *Storage) ListOwnedRecords(ctx context.Context, table, identityID string) ([]*types.OwnedRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOwnedRecords")
	defer span.End()

	if !recordTableSet[table] {
		return nil, fmt.Errorf("unknown record table %q", table)
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "license_id", "identity_id", "name", "payload", "created_at").
		From(table).
		Where(sq.Eq{"identity_id": identityID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", table, err)
	}
	defer rows.Close()

	var records []*types.OwnedRecord
	for rows.Next() {
		var (
			r   types.OwnedRecord
			raw []byte
		)
		if err := rows.Scan(&r.ID, &r.LicenseID, &r.IdentityID, &r.Name, &raw, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &r.Payload); err != nil {
				return nil, fmt.Errorf("failed to decode record payload: %w", err)
			}
		}
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return records, nil
}

// ReassignRecords moves every row of the given table from one license to
// another and reports how many rows moved. The table name must be one of
// RecordTables.
func (s *Storage) ReassignRecords(ctx context.Context, table, fromLicenseID, toLicenseID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReassignRecords")
	defer span.End()

	if !recordTableSet[table] {
		return 0, fmt.Errorf("unknown record table %q", table)
	}

	res, err := s.db.Statement(ctx).
		Update(table).
		Set("license_id", toLicenseID).
		Where(sq.Eq{"license_id": fromLicenseID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to reassign %s records: %w", table, err)
	}

	moved, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return moved, nil
}
