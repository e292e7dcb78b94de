// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"time"

	"github.com/canonical/license-service/internal/ratelimit"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

// RequestMeta carries the transport-level facts the service needs for rate
// limiting and history: caller address, user agent, admin credentials.
type RequestMeta struct {
	IPAddress           string
	UserAgent           string
	AuthorizationHeader string
}

type ServiceInterface interface {
	Validate(ctx context.Context, cmd *ValidateCommand, meta *RequestMeta) (*ValidateResult, error)
	Check(ctx context.Context, cmd *CheckCommand, meta *RequestMeta) (*CheckResult, error)
	GetAddons(ctx context.Context, cmd *GetAddonsCommand) (*AddonsResult, error)
	UpdateAddons(ctx context.Context, cmd *UpdateAddonsCommand) (*AddonsResult, error)
	SyncCompany(ctx context.Context, cmd *SyncCompanyCommand) (*SyncCompanyResult, error)
	IssueToken(ctx context.Context, cmd *IssueTokenCommand, meta *RequestMeta) (string, error)

	ListAll(ctx context.Context) ([]*types.LicenseDetails, error)
	CreateLicense(ctx context.Context, cmd *CreateLicenseCommand, actor *authentication.Actor, meta *RequestMeta) (*types.License, error)
	UpdateLicense(ctx context.Context, cmd *UpdateLicenseCommand, actor *authentication.Actor, meta *RequestMeta) error
	DeleteLicense(ctx context.Context, cmd *DeleteLicenseCommand, actor *authentication.Actor, meta *RequestMeta) error
	UpdatePlan(ctx context.Context, cmd *UpdatePlanCommand, actor *authentication.Actor, meta *RequestMeta) error
	UpdateLimits(ctx context.Context, cmd *UpdateLimitsCommand, actor *authentication.Actor, meta *RequestMeta) error
	UpdateFeatures(ctx context.Context, cmd *UpdateFeaturesCommand, actor *authentication.Actor, meta *RequestMeta) error
	UpdateVisibility(ctx context.Context, cmd *UpdateVisibilityCommand, actor *authentication.Actor, meta *RequestMeta) error
	ToggleStatus(ctx context.Context, cmd *ToggleStatusCommand, actor *authentication.Actor, meta *RequestMeta) (bool, error)
	AdminGetAddons(ctx context.Context, cmd *AdminGetAddonsCommand) (*AddonsResult, error)
	AdminUpdateAddons(ctx context.Context, cmd *AdminUpdateAddonsCommand, actor *authentication.Actor, meta *RequestMeta) (*AddonsResult, error)
	GetCompanyData(ctx context.Context, cmd *GetCompanyDataCommand) (*CompanyData, error)
	GetUserStats(ctx context.Context, cmd *GetUserStatsCommand) (*UserStats, error)
	GetUserDetails(ctx context.Context, cmd *GetUserDetailsCommand) (*UserDetails, error)
	GetLoginHistory(ctx context.Context, cmd *GetLoginHistoryCommand) ([]*types.LoginEntry, error)
	GetAuditLogs(ctx context.Context, cmd *GetAuditLogsCommand) ([]*types.AuditEntry, error)

	MergeCompanies(ctx context.Context, cmd *MergeCompaniesCommand, actor *authentication.Actor, meta *RequestMeta) (*MergeReport, error)
	DetectDuplicates(ctx context.Context) ([]*types.DuplicateGroup, error)
}

type StorageInterface interface {
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

	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, licenseID, email string) (*types.Membership, error)
	GetMembershipByIdentity(ctx context.Context, licenseID, identityID string) (*types.Membership, error)
	AttachIdentity(ctx context.Context, membershipID, identityID string) (bool, error)
	HasOwner(ctx context.Context, licenseID string) (bool, error)
	ListMembers(ctx context.Context, licenseID string) ([]*types.Membership, error)
	CountMembers(ctx context.Context, licenseID string) (int64, error)
	CountActiveMembers(ctx context.Context, licenseID string) (int64, error)
	ReassignMembers(ctx context.Context, fromLicenseID, toLicenseID string) (int64, error)

	GetFeatureSet(ctx context.Context, licenseID string) (*types.FeatureSet, error)
	UpsertFeatureSet(ctx context.Context, licenseID string, flags map[string]bool) error
	ListUserOverrides(ctx context.Context, membershipID string) ([]*types.UserFeatureOverride, error)

	ListAddons(ctx context.Context, licenseID string, activeOnly bool) ([]*types.Addon, error)
	DeactivateAddons(ctx context.Context, licenseID string, now time.Time) error
	UpsertAddon(ctx context.Context, licenseID, addonID string, now time.Time) error

	AppendAuditEntry(ctx context.Context, e *types.AuditEntry) error
	ListAuditEntries(ctx context.Context, targetID string, limit uint64) ([]*types.AuditEntry, error)
	AppendLoginEntry(ctx context.Context, e *types.LoginEntry) error
	ListLoginEntries(ctx context.Context, email string, limit uint64) ([]*types.LoginEntry, error)
	ListLoginEntriesByLicense(ctx context.Context, licenseID string, limit uint64) ([]*types.LoginEntry, error)

	CountRecordsByLicense(ctx context.Context, licenseID string) (types.RecordCounts, error)
	CountRecordsByIdentity(ctx context.Context, identityID string) (types.RecordCounts, error)
	SumTripMetricsByLicense(ctx context.Context, licenseID string) (revenue, distance float64, err error)
	SumTripMetricsByIdentity(ctx context.Context, identityID string) (revenue, distance float64, err error)
	ListOwnedRecords(ctx context.Context, table, identityID string) ([]*types.OwnedRecord, error)
	ReassignRecords(ctx context.Context, table, fromLicenseID, toLicenseID string) (int64, error)
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	UpdatePassword(ctx context.Context, identityID, password string) error
	SignIn(ctx context.Context, email, password string) (string, string, error)
	GetIdentityIDBySession(ctx context.Context, sessionToken string) (string, error)
}

type LimiterInterface interface {
	Check(ctx context.Context, identifier, action string) (ratelimit.Decision, error)
}

type ResolverInterface interface {
	Resolve(ctx context.Context, authorizationHeader, bodyToken, email string) (*authentication.Actor, error)
}

type IssuerInterface interface {
	IssueToken(ctx context.Context, email string) (string, error)
}

// TxRunner runs fn inside one database transaction; the merge engine uses it
// to keep each source migration atomic.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
