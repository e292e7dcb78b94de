// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

const (
	PlanStart      = "start"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// License is the tenant record. Code is unique and never reassigned; a license
// stays resolvable by code even after it is merged away (soft-deactivated).
type License struct {
	ID         string `db:"id"`
	Code       string `db:"license_code"`
	OwnerEmail string `db:"email"`
	IsActive   bool   `db:"is_active"`
	PlanType   string `db:"plan_type"`

	FirstName     *string `db:"first_name"`
	LastName      *string `db:"last_name"`
	CompanyName   *string `db:"company_name"`
	Siren         *string `db:"siren"`
	CompanyStatus *string `db:"company_status"`
	EmployeeCount *int    `db:"employee_count"`
	Address       *string `db:"address"`
	City          *string `db:"city"`
	PostalCode    *string `db:"postal_code"`

	MaxDrivers        *int `db:"max_drivers"`
	MaxClients        *int `db:"max_clients"`
	MaxDailyCharges   *int `db:"max_daily_charges"`
	MaxMonthlyCharges *int `db:"max_monthly_charges"`
	MaxYearlyCharges  *int `db:"max_yearly_charges"`
	MaxUsers          *int `db:"max_users"`

	ShowUserInfo    bool `db:"show_user_info"`
	ShowCompanyInfo bool `db:"show_company_info"`
	ShowAddressInfo bool `db:"show_address_info"`
	ShowLicenseInfo bool `db:"show_license_info"`

	Notes       *string    `db:"notes"`
	ActivatedAt *time.Time `db:"activated_at"`
	LastUsedAt  *time.Time `db:"last_used_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Membership links one identity to one license. IdentityID starts empty for
// admin-invited members and is attached exactly once on first sign-in.
type Membership struct {
	ID             string     `db:"id"`
	LicenseID      string     `db:"license_id"`
	IdentityID     *string    `db:"identity_id"`
	Email          string     `db:"email"`
	Role           string     `db:"role"`
	DisplayName    *string    `db:"display_name"`
	IsActive       bool       `db:"is_active"`
	InvitedAt      *time.Time `db:"invited_at"`
	AcceptedAt     *time.Time `db:"accepted_at"`
	LastActivityAt *time.Time `db:"last_activity_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

// FeatureSet holds the per-license feature flags, at most one row per license.
type FeatureSet struct {
	ID        string          `db:"id"`
	LicenseID string          `db:"license_id"`
	Flags     map[string]bool `db:"flags"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// UserFeatureOverride flips one feature flag for one member.
type UserFeatureOverride struct {
	MembershipID string `db:"membership_id"`
	FeatureKey   string `db:"feature_key"`
	Enabled      bool   `db:"enabled"`
}

type Addon struct {
	ID            string     `db:"id"`
	LicenseID     string     `db:"license_id"`
	AddonID       string     `db:"addon_id"`
	AddonName     string     `db:"addon_name"`
	IsActive      bool       `db:"is_active"`
	ActivatedAt   time.Time  `db:"activated_at"`
	DeactivatedAt *time.Time `db:"deactivated_at"`
}

// RateLimitCounter tracks validation attempts per (identifier, action) pair.
// Attempts outside the window are void; a locked counter denies everything
// until LockedUntil passes.
type RateLimitCounter struct {
	ID             string     `db:"id"`
	Identifier     string     `db:"identifier"`
	ActionType     string     `db:"action_type"`
	Attempts       int        `db:"attempts"`
	FirstAttemptAt time.Time  `db:"first_attempt_at"`
	LastAttemptAt  time.Time  `db:"last_attempt_at"`
	LockedUntil    *time.Time `db:"locked_until"`
}

// AuditEntry is append-only; storage exposes no update or delete for it.
type AuditEntry struct {
	ID         string                 `db:"id"`
	ActorEmail string                 `db:"actor_email"`
	Action     string                 `db:"action"`
	TargetType *string                `db:"target_type"`
	TargetID   *string                `db:"target_id"`
	Details    map[string]interface{} `db:"details"`
	IPAddress  string                 `db:"ip_address"`
	CreatedAt  time.Time              `db:"created_at"`
}

// LoginEntry is append-only.
type LoginEntry struct {
	ID         string    `db:"id"`
	Email      string    `db:"email"`
	LicenseID  string    `db:"license_id"`
	IPAddress  string    `db:"ip_address"`
	UserAgent  string    `db:"user_agent"`
	DeviceType string    `db:"device_type"`
	Success    bool      `db:"success"`
	CreatedAt  time.Time `db:"created_at"`
}

// AdminClaims is the transient claim set of a verified admin token. It is
// never persisted.
type AdminClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp"`
}

// OwnedRecord is one row of a business record table (tours, trips, clients,
// quotes, vehicles, drivers, charges, trailers). The domain payload is opaque
// to this service; only ownership and the billing metrics matter here.
type OwnedRecord struct {
	ID         string                 `db:"id"`
	LicenseID  string                 `db:"license_id"`
	IdentityID *string                `db:"identity_id"`
	Name       string                 `db:"name"`
	Payload    map[string]interface{} `db:"payload"`
	CreatedAt  time.Time              `db:"created_at"`
}

// RecordCounts are per-owner counts over the business record tables.
type RecordCounts struct {
	Tours    int64 `json:"tours"`
	Trips    int64 `json:"trips"`
	Clients  int64 `json:"clients"`
	Quotes   int64 `json:"quotes"`
	Vehicles int64 `json:"vehicles"`
	Drivers  int64 `json:"drivers"`
	Charges  int64 `json:"charges"`
	Trailers int64 `json:"trailers"`
}

type MemberStats struct {
	MembershipID   string       `json:"membership_id"`
	IdentityID     *string      `json:"identity_id"`
	Email          string       `json:"email"`
	DisplayName    *string      `json:"display_name"`
	Role           string       `json:"role"`
	Counts         RecordCounts `json:"counts"`
	TotalRevenue   float64      `json:"total_revenue"`
	TotalDistance  float64      `json:"total_distance"`
	LastActivityAt *time.Time   `json:"last_activity_at"`
	AcceptedAt     *time.Time   `json:"accepted_at"`
}

type CompanyTotals struct {
	Counts   RecordCounts `json:"counts"`
	Revenue  float64      `json:"revenue"`
	Distance float64      `json:"distance"`
}

// LicenseDetails decorates a license with its feature row and member count for
// admin listings.
type LicenseDetails struct {
	License     *License    `json:"license"`
	Features    *FeatureSet `json:"features"`
	MemberCount int64       `json:"member_count"`
}

// DuplicateGroup is a set of licenses sharing one normalized registration id.
type DuplicateGroup struct {
	Siren    string            `json:"siren"`
	Licenses []*LicenseDetails `json:"licenses"`
}
