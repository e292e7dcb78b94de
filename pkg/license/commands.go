// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Command is the decoded, validated form of one request. Each action maps to
// one variant; the handler switches over the variants so an unhandled action
// cannot slip through silently.
type Command interface {
	Name() string
	// RequiresAdmin reports whether the authorization resolver must accept
	// the request before this command runs.
	RequiresAdmin() bool
}

type userCommand struct{ name string }

func (c userCommand) Name() string        { return c.name }
func (c userCommand) RequiresAdmin() bool { return false }

type adminCommand struct{ name string }

func (c adminCommand) Name() string        { return c.name }
func (c adminCommand) RequiresAdmin() bool { return true }

// End-user commands.

type ValidateCommand struct {
	userCommand
	Code  string
	Email string
}

type CheckCommand struct {
	userCommand
	Code  string
	Email string
}

type GetAddonsCommand struct {
	userCommand
	Code  string
	Email string
}

type UpdateAddonsCommand struct {
	userCommand
	Code   string
	Email  string
	Addons []string
}

type SyncCompanyCommand struct {
	userCommand
	Code  string
	Email string
}

// Admin commands.

type ListAllCommand struct{ adminCommand }

type CreateLicenseCommand struct {
	adminCommand
	OwnerEmail  string
	CompanyName string
	Plan        string
	// InviteEmail, when set, pre-invites a member on the new license.
	InviteEmail string
}

type UpdateLicenseCommand struct {
	adminCommand
	LicenseID string
	Updates   map[string]interface{}
}

type DeleteLicenseCommand struct {
	adminCommand
	LicenseID string
}

type UpdatePlanCommand struct {
	adminCommand
	LicenseID string
	Plan      string
}

type UpdateLimitsCommand struct {
	adminCommand
	LicenseID string
	Limits    *LimitUpdate
}

type UpdateFeaturesCommand struct {
	adminCommand
	LicenseID string
	Features  map[string]bool
}

type UpdateVisibilityCommand struct {
	adminCommand
	LicenseID  string
	Visibility *VisibilityUpdate
}

type ToggleStatusCommand struct {
	adminCommand
	LicenseID string
}

type MergeCompaniesCommand struct {
	adminCommand
	TargetLicenseID  string
	SourceLicenseIDs []string
}

type DetectDuplicatesCommand struct{ adminCommand }

type AdminGetAddonsCommand struct {
	adminCommand
	LicenseID string
}

type AdminUpdateAddonsCommand struct {
	adminCommand
	LicenseID string
	Addons    []string
}

type GetCompanyDataCommand struct {
	adminCommand
	LicenseID string
}

type GetUserStatsCommand struct {
	adminCommand
	LicenseID string
	UserEmail string
}

type GetUserDetailsCommand struct {
	adminCommand
	LicenseID string
	UserEmail string
}

type GetLoginHistoryCommand struct {
	adminCommand
	UserEmail string
	Limit     uint64
}

type GetAuditLogsCommand struct {
	adminCommand
	TargetID string
	Limit    uint64
}

// IssueTokenCommand bootstraps admin access: it is authorized by the shared
// secret it carries, not by an existing token, and is rate-limited instead.
type IssueTokenCommand struct {
	userCommand
	Email  string
	Secret string
}

const defaultHistoryLimit = 100

// NormalizeCode uppercases a license code and strips surrounding whitespace.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeEmail lowercases an email and strips surrounding whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DecodeCommand turns a raw request into a typed command, normalizing codes
// and emails and rejecting requests whose required fields are missing. An
// empty action means validate, which the oldest clients rely on.
func DecodeCommand(req *Request) (Command, error) {
	code := NormalizeCode(req.LicenseCode)
	email := NormalizeEmail(req.Email)

	requireCredentials := func() error {
		if code == "" || email == "" {
			return fmt.Errorf("%w: licenseCode and email are required", ErrBadRequest)
		}
		return nil
	}
	requireLicenseID := func() error {
		if req.LicenseID == "" {
			return fmt.Errorf("%w: licenseId is required", ErrBadRequest)
		}
		return nil
	}

	action := req.Action
	if action == "" {
		action = "validate"
	}

	switch action {
	case "validate":
		if err := requireCredentials(); err != nil {
			return nil, err
		}
		return &ValidateCommand{userCommand{"validate"}, code, email}, nil
	case "check":
		if err := requireCredentials(); err != nil {
			return nil, err
		}
		return &CheckCommand{userCommand{"check"}, code, email}, nil
	case "get-addons":
		if err := requireCredentials(); err != nil {
			return nil, err
		}
		return &GetAddonsCommand{userCommand{"get-addons"}, code, email}, nil
	case "update-addons":
		if err := requireCredentials(); err != nil {
			return nil, err
		}
		return &UpdateAddonsCommand{userCommand{"update-addons"}, code, email, req.Addons}, nil
	case "sync-company":
		if err := requireCredentials(); err != nil {
			return nil, err
		}
		return &SyncCompanyCommand{userCommand{"sync-company"}, code, email}, nil

	case "list-all":
		return &ListAllCommand{adminCommand{"list-all"}}, nil
	case "create-license":
		owner := NormalizeEmail(req.OwnerEmail)
		if owner == "" {
			return nil, fmt.Errorf("%w: ownerEmail is required", ErrBadRequest)
		}
		if err := validate.Var(owner, "email"); err != nil {
			return nil, fmt.Errorf("%w: ownerEmail is not a valid email", ErrBadRequest)
		}
		invite := NormalizeEmail(req.InviteEmail)
		if invite != "" {
			if err := validate.Var(invite, "email"); err != nil {
				return nil, fmt.Errorf("%w: inviteEmail is not a valid email", ErrBadRequest)
			}
		}
		return &CreateLicenseCommand{
			adminCommand: adminCommand{"create-license"},
			OwnerEmail:   owner,
			CompanyName:  strings.TrimSpace(req.CompanyName),
			Plan:         req.Plan,
			InviteEmail:  invite,
		}, nil
	case "update-license":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		if len(req.Updates) == 0 {
			return nil, fmt.Errorf("%w: updates are required", ErrBadRequest)
		}
		return &UpdateLicenseCommand{adminCommand{"update-license"}, req.LicenseID, req.Updates}, nil
	case "delete-license":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		return &DeleteLicenseCommand{adminCommand{"delete-license"}, req.LicenseID}, nil
	case "update-plan":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		if !validPlan(req.Plan) {
			return nil, fmt.Errorf("%w: unknown plan %q", ErrBadRequest, req.Plan)
		}
		return &UpdatePlanCommand{adminCommand{"update-plan"}, req.LicenseID, req.Plan}, nil
	case "update-limits":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		if req.Limits == nil {
			return nil, fmt.Errorf("%w: limits are required", ErrBadRequest)
		}
		return &UpdateLimitsCommand{adminCommand{"update-limits"}, req.LicenseID, req.Limits}, nil
	case "update-features":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		if len(req.Features) == 0 {
			return nil, fmt.Errorf("%w: features are required", ErrBadRequest)
		}
		return &UpdateFeaturesCommand{adminCommand{"update-features"}, req.LicenseID, req.Features}, nil
	case "update-visibility":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		if req.Visibility == nil {
			return nil, fmt.Errorf("%w: visibility flags are required", ErrBadRequest)
		}
		return &UpdateVisibilityCommand{adminCommand{"update-visibility"}, req.LicenseID, req.Visibility}, nil
	case "toggle-status":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		return &ToggleStatusCommand{adminCommand{"toggle-status"}, req.LicenseID}, nil
	case "merge-companies":
		if req.TargetLicenseID == "" || len(req.SourceLicenseIDs) == 0 {
			return nil, fmt.Errorf("%w: targetLicenseId and sourceLicenseIds are required", ErrBadRequest)
		}
		for _, src := range req.SourceLicenseIDs {
			if src == req.TargetLicenseID {
				return nil, fmt.Errorf("%w: a license cannot be merged into itself", ErrBadRequest)
			}
		}
		return &MergeCompaniesCommand{adminCommand{"merge-companies"}, req.TargetLicenseID, req.SourceLicenseIDs}, nil
	case "detect-duplicates":
		return &DetectDuplicatesCommand{adminCommand{"detect-duplicates"}}, nil
	case "admin-get-addons":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		return &AdminGetAddonsCommand{adminCommand{"admin-get-addons"}, req.LicenseID}, nil
	case "admin-update-addons":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		return &AdminUpdateAddonsCommand{adminCommand{"admin-update-addons"}, req.LicenseID, req.Addons}, nil
	case "get-company-data":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		return &GetCompanyDataCommand{adminCommand{"get-company-data"}, req.LicenseID}, nil
	case "get-user-stats":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		userEmail := NormalizeEmail(req.UserEmail)
		if userEmail == "" {
			return nil, fmt.Errorf("%w: userEmail is required", ErrBadRequest)
		}
		return &GetUserStatsCommand{adminCommand{"get-user-stats"}, req.LicenseID, userEmail}, nil
	case "get-user-details":
		if err := requireLicenseID(); err != nil {
			return nil, err
		}
		userEmail := NormalizeEmail(req.UserEmail)
		if userEmail == "" {
			return nil, fmt.Errorf("%w: userEmail is required", ErrBadRequest)
		}
		return &GetUserDetailsCommand{adminCommand{"get-user-details"}, req.LicenseID, userEmail}, nil
	case "get-login-history":
		return &GetLoginHistoryCommand{adminCommand{"get-login-history"}, NormalizeEmail(req.UserEmail), limitOrDefault(req.Limit)}, nil
	case "get-audit-logs":
		return &GetAuditLogsCommand{adminCommand{"get-audit-logs"}, req.LicenseID, limitOrDefault(req.Limit)}, nil
	case "issue-token":
		email := NormalizeEmail(req.Email)
		if email == "" || req.Secret == "" {
			return nil, fmt.Errorf("%w: email and secret are required", ErrBadRequest)
		}
		return &IssueTokenCommand{userCommand{"issue-token"}, email, req.Secret}, nil
	}

	return nil, fmt.Errorf("%w: unknown action %q", ErrBadRequest, req.Action)
}

func validPlan(plan string) bool {
	switch plan {
	case "start", "pro", "enterprise":
		return true
	}
	return false
}

func limitOrDefault(limit uint64) uint64 {
	if limit == 0 || limit > 1000 {
		return defaultHistoryLimit
	}
	return limit
}
