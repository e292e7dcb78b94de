// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/license-service/internal/types"
)

type StorageInterface interface {
	// Licenses
	CreateLicense(ctx context.Context, l *types.License) (*types.License, error)
	GetLicenseByID(ctx context.Context, id string) (*types.License, error)
	GetLicenseByCode(ctx context.Context, code string) (*types.License, error)
	ListLicenses(ctx context.Context) ([]*types.License, error)
	ListLicensesWithSiren(ctx context.Context) ([]*types.License, error)
	UpdateLicense(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteLicense(ctx context.Context, id string) error
	SetLicenseStatus(ctx context.Context, id string, active bool) error
	SetLicensePlan(ctx context.Context, id, plan string) error
	TouchLicenseUsage(ctx context.Context, id string, now time.Time) error
	DeactivateLicenseWithNote(ctx context.Context, id, note string) error

	// Memberships
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, licenseID, email string) (*types.Membership, error)
	GetMembershipByIdentity(ctx context.Context, licenseID, identityID string) (*types.Membership, error)
	AttachIdentity(ctx context.Context, membershipID, identityID string) (bool, error)
	HasOwner(ctx context.Context, licenseID string) (bool, error)
	ListMembers(ctx context.Context, licenseID string) ([]*types.Membership, error)
	CountMembers(ctx context.Context, licenseID string) (int64, error)
	CountActiveMembers(ctx context.Context, licenseID string) (int64, error)
	ReassignMembers(ctx context.Context, fromLicenseID, toLicenseID string) (int64, error)

	// Feature flags and overrides
	GetFeatureSet(ctx context.Context, licenseID string) (*types.FeatureSet, error)
	UpsertFeatureSet(ctx context.Context, licenseID string, flags map[string]bool) error
	ListUserOverrides(ctx context.Context, membershipID string) ([]*types.UserFeatureOverride, error)

	// Addons
	ListAddons(ctx context.Context, licenseID string, activeOnly bool) ([]*types.Addon, error)
	DeactivateAddons(ctx context.Context, licenseID string, now time.Time) error
	UpsertAddon(ctx context.Context, licenseID, addonID string, now time.Time) error

	// Rate limiting
	GetRateLimitCounter(ctx context.Context, identifier, actionType string) (*types.RateLimitCounter, error)
	CreateRateLimitCounter(ctx context.Context, identifier, actionType string, now time.Time) error
	ResetRateLimitCounter(ctx context.Context, identifier, actionType string, now time.Time) error
	IncrementRateLimitCounter(ctx context.Context, identifier, actionType string) error
	LockRateLimitCounter(ctx context.Context, identifier, actionType string, until time.Time) error

	// Audit and login history
	AppendAuditEntry(ctx context.Context, e *types.AuditEntry) error
	ListAuditEntries(ctx context.Context, targetID string, limit uint64) ([]*types.AuditEntry, error)
	AppendLoginEntry(ctx context.Context, e *types.LoginEntry) error
	ListLoginEntries(ctx context.Context, email string, limit uint64) ([]*types.LoginEntry, error)
	ListLoginEntriesByLicense(ctx context.Context, licenseID string, limit uint64) ([]*types.LoginEntry, error)

	// Business records
	CountRecordsByLicense(ctx context.Context, licenseID string) (types.RecordCounts, error)
	CountRecordsByIdentity(ctx context.Context, identityID string) (types.RecordCounts, error)
	SumTripMetricsByLicense(ctx context.Context, licenseID string) (revenue, distance float64, err error)
	SumTripMetricsByIdentity(ctx context.Context, identityID string) (revenue, distance float64, err error)
	ListOwnedRecords(ctx context.Context, table, identityID string) ([]*types.OwnedRecord, error)
	ReassignRecords(ctx context.Context, table, fromLicenseID, toLicenseID string) (int64, error)
}
