// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"time"

	"github.com/canonical/license-service/internal/types"
)

// Request is the single JSON envelope accepted by the endpoint. Which fields
// matter depends on the action; DecodeCommand picks them apart.
type Request struct {
	Action string `json:"action"`

	LicenseCode string `json:"licenseCode"`
	Email       string `json:"email"`

	// Admin credentials, per the resolver's fallback order.
	AdminToken string `json:"adminToken"`
	Secret     string `json:"secret"`

	LicenseID        string                 `json:"licenseId"`
	TargetLicenseID  string                 `json:"targetLicenseId"`
	SourceLicenseIDs []string               `json:"sourceLicenseIds"`
	Updates          map[string]interface{} `json:"updates"`
	Plan             string                 `json:"plan"`
	Limits           *LimitUpdate           `json:"limits"`
	Features         map[string]bool        `json:"features"`
	Visibility       *VisibilityUpdate      `json:"visibility"`
	Addons           []string               `json:"addons"`
	OwnerEmail       string                 `json:"ownerEmail"`
	CompanyName      string                 `json:"companyName"`
	InviteEmail      string                 `json:"inviteEmail"`
	IdentityID       string                 `json:"identityId"`
	UserEmail        string                 `json:"userEmail"`
	Limit            uint64                 `json:"limit"`
}

type LimitUpdate struct {
	MaxDrivers        *int `json:"maxDrivers"`
	MaxClients        *int `json:"maxClients"`
	MaxDailyCharges   *int `json:"maxDailyCharges"`
	MaxMonthlyCharges *int `json:"maxMonthlyCharges"`
	MaxYearlyCharges  *int `json:"maxYearlyCharges"`
	MaxUsers          *int `json:"maxUsers"`
}

type VisibilityUpdate struct {
	ShowUserInfo    *bool `json:"showUserInfo"`
	ShowCompanyInfo *bool `json:"showCompanyInfo"`
	ShowAddressInfo *bool `json:"showAddressInfo"`
	ShowLicenseInfo *bool `json:"showLicenseInfo"`
}

// LicenseData is the caller-facing projection of a license. Fields hidden by
// the visibility flags are omitted rather than zeroed.
type LicenseData struct {
	ID          string `json:"id"`
	LicenseCode string `json:"licenseCode"`
	Email       string `json:"email"`
	Plan        string `json:"plan"`
	IsActive    bool   `json:"isActive"`

	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`

	CompanyName   *string `json:"companyName,omitempty"`
	Siren         *string `json:"siren,omitempty"`
	CompanyStatus *string `json:"companyStatus,omitempty"`
	EmployeeCount *int    `json:"employeeCount,omitempty"`

	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`

	MaxDrivers        *int `json:"maxDrivers,omitempty"`
	MaxClients        *int `json:"maxClients,omitempty"`
	MaxDailyCharges   *int `json:"maxDailyCharges,omitempty"`
	MaxMonthlyCharges *int `json:"maxMonthlyCharges,omitempty"`
	MaxYearlyCharges  *int `json:"maxYearlyCharges,omitempty"`
	MaxUsers          *int `json:"maxUsers,omitempty"`

	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty"`
}

// Session is the best-effort identity session attached to a validate response.
type Session struct {
	IdentityID string `json:"identityId"`
	Token      string `json:"token,omitempty"`
}

type ValidateResult struct {
	Valid                bool            `json:"valid"`
	Role                 string          `json:"role,omitempty"`
	License              *LicenseData    `json:"license,omitempty"`
	CustomFeatures       map[string]bool `json:"customFeatures,omitempty"`
	UserFeatureOverrides map[string]bool `json:"userFeatureOverrides,omitempty"`
	Session              *Session        `json:"session,omitempty"`
	Message              string          `json:"message,omitempty"`
}

type CheckResult struct {
	Valid                bool            `json:"valid"`
	Reason               string          `json:"reason,omitempty"`
	License              *LicenseData    `json:"license,omitempty"`
	CustomFeatures       map[string]bool `json:"customFeatures,omitempty"`
	UserFeatureOverrides map[string]bool `json:"userFeatureOverrides,omitempty"`
}

type AddonsResult struct {
	Success bool     `json:"success"`
	Addons  []string `json:"addons"`
}

type SyncCompanyResult struct {
	Success     bool    `json:"success"`
	CompanyName *string `json:"companyName"`
	Plan        string  `json:"plan"`
	MemberCount int64   `json:"memberCount"`
}

type CompanyData struct {
	License      *LicenseData         `json:"license"`
	Features     map[string]bool      `json:"features"`
	Members      []*types.MemberStats `json:"members"`
	Totals       *types.CompanyTotals `json:"totals"`
	RecentLogins []*types.LoginEntry  `json:"recentLogins"`
}

type UserStats struct {
	Email         string             `json:"email"`
	Counts        types.RecordCounts `json:"counts"`
	TotalRevenue  float64            `json:"totalRevenue"`
	TotalDistance float64            `json:"totalDistance"`
}

type UserDetails struct {
	Membership *types.Membership               `json:"membership"`
	Overrides  []*types.UserFeatureOverride    `json:"overrides"`
	Records    map[string][]*types.OwnedRecord `json:"records"`
}

type MergeReport struct {
	TargetLicenseID string               `json:"targetLicenseId"`
	Sources         []*SourceMergeReport `json:"sources"`
}

// SourceMergeReport records per-table progress for one merged source, so a
// partially failed merge is diagnosable and resumable.
type SourceMergeReport struct {
	SourceLicenseID string           `json:"sourceLicenseId"`
	MembersMoved    int64            `json:"membersMoved"`
	RecordsMoved    map[string]int64 `json:"recordsMoved"`
	Completed       bool             `json:"completed"`
	Error           string           `json:"error,omitempty"`
}
