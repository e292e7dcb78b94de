// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

const actionValidate = "validate"

type Service struct {
	storage  StorageInterface
	kratos   KratosClientInterface
	limiter  LimiterInterface
	issuer   IssuerInterface
	recorder RecorderInterface
	tx       TxRunner

	adminSecret   string
	sandboxPrefix string
	sandboxMarker string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Config carries the non-dependency knobs of the service.
type Config struct {
	AdminSecret   string
	SandboxPrefix string
	SandboxMarker string
}

func NewService(
	storage StorageInterface,
	kratos KratosClientInterface,
	limiter LimiterInterface,
	issuer IssuerInterface,
	recorder RecorderInterface,
	tx TxRunner,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:       storage,
		kratos:        kratos,
		limiter:       limiter,
		issuer:        issuer,
		recorder:      recorder,
		tx:            tx,
		adminSecret:   cfg.AdminSecret,
		sandboxPrefix: cfg.SandboxPrefix,
		sandboxMarker: cfg.SandboxMarker,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// isSandbox reports whether the pair belongs to the demo environment, which
// is exempt from rate limiting.
func (s *Service) isSandbox(code, email string) bool {
	if s.sandboxPrefix != "" && strings.HasPrefix(code, s.sandboxPrefix) {
		return true
	}
	return s.sandboxMarker != "" && strings.Contains(email, s.sandboxMarker)
}

// resolveLicense decides the caller's relationship to the license behind a
// code. The three failures are distinct on purpose (see errors.go). The
// returned membership is nil for an owner who has not signed in yet.
func (s *Service) resolveLicense(ctx context.Context, code, email string) (*types.License, string, *types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.resolveLicense")
	defer span.End()

	lic, err := s.storage.GetLicenseByCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", nil, ErrLicenseNotFound
		}
		return nil, "", nil, err
	}

	// Entitlement is decided before the active check, so a stranger probing
	// a deactivated license learns nothing beyond "not entitled".
	if email == NormalizeEmail(lic.OwnerEmail) {
		membership, err := s.storage.GetMembership(ctx, lic.ID, email)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, "", nil, err
		}
		if !lic.IsActive {
			return nil, "", nil, ErrInactive
		}
		return lic, types.RoleOwner, membership, nil
	}

	membership, err := s.storage.GetMembership(ctx, lic.ID, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", nil, ErrNotEntitled
		}
		return nil, "", nil, err
	}
	if !lic.IsActive || !membership.IsActive {
		return nil, "", nil, ErrInactive
	}

	return lic, membership.Role, membership, nil
}

// Validate is the full credential check: rate limit, resolve, best-effort
// session bootstrap, membership link, usage stamps, history.
func (s *Service) Validate(ctx context.Context, cmd *ValidateCommand, meta *RequestMeta) (*ValidateResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.Validate")
	defer span.End()

	sandbox := s.isSandbox(cmd.Code, cmd.Email)
	if !sandbox {
		decision, err := s.limiter.Check(ctx, meta.IPAddress, actionValidate)
		if err != nil {
			return nil, err
		}
		if !decision.Allowed {
			return nil, &RateLimitedError{RetryAfter: decision.RetryAfter}
		}
	}

	lic, role, membership, err := s.resolveLicense(ctx, cmd.Code, cmd.Email)
	if err != nil {
		s.recorder.Login(ctx, cmd.Email, "", meta, false)
		return nil, err
	}

	if err := s.storage.TouchLicenseUsage(ctx, lic.ID, time.Now().UTC()); err != nil {
		s.logger.Warnf("failed to stamp license usage for %s: %v", lic.ID, err)
	}

	// The license code doubles as the password.
	session := s.bootstrapSession(ctx, cmd.Email, cmd.Code)

	if session != nil {
		linked, err := s.linkMembership(ctx, lic, cmd.Email, session.IdentityID)
		if err != nil {
			s.logger.Errorf("failed to link membership for %s on %s: %v", cmd.Email, lic.ID, err)
		} else if linked != nil {
			membership = linked
			role = linked.Role
		}
	}

	features := s.featureFlags(ctx, lic.ID)

	var overrides map[string]bool
	if membership != nil {
		overrides = s.userOverrides(ctx, membership.ID)
	}

	s.recorder.Login(ctx, cmd.Email, lic.ID, meta, true)

	return &ValidateResult{
		Valid:                true,
		Role:                 role,
		License:              licenseData(lic),
		CustomFeatures:       features,
		UserFeatureOverrides: overrides,
		Session:              session,
	}, nil
}

// Check is the lightweight re-check: no rate limit, no session bootstrap, no
// login history. Resolution failures come back as a valid:false result, not
// an error, so long-lived clients can poll it cheaply.
func (s *Service) Check(ctx context.Context, cmd *CheckCommand, meta *RequestMeta) (*CheckResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.Check")
	defer span.End()

	lic, _, membership, err := s.resolveLicense(ctx, cmd.Code, cmd.Email)
	if err != nil {
		if errors.Is(err, ErrLicenseNotFound) || errors.Is(err, ErrNotEntitled) || errors.Is(err, ErrInactive) {
			return &CheckResult{Valid: false, Reason: err.Error()}, nil
		}
		return nil, err
	}

	if err := s.storage.TouchLicenseUsage(ctx, lic.ID, time.Now().UTC()); err != nil {
		s.logger.Warnf("failed to stamp license usage for %s: %v", lic.ID, err)
	}

	features := s.featureFlags(ctx, lic.ID)

	// Overrides are personal. Knowing a (code, email) pair is not enough to
	// read them: the caller must hold a session for that member's identity.
	var overrides map[string]bool
	if membership != nil && s.sessionMatchesMembership(ctx, membership, meta) {
		overrides = s.userOverrides(ctx, membership.ID)
	}

	return &CheckResult{
		Valid:                true,
		License:              licenseData(lic),
		CustomFeatures:       features,
		UserFeatureOverrides: overrides,
	}, nil
}

// sessionMatchesMembership reports whether the request carries a bearer
// session token for the identity attached to the membership.
func (s *Service) sessionMatchesMembership(ctx context.Context, membership *types.Membership, meta *RequestMeta) bool {
	if meta == nil || membership.IdentityID == nil {
		return false
	}
	token, ok := authentication.BearerToken(meta.AuthorizationHeader)
	if !ok {
		return false
	}
	identityID, err := s.kratos.GetIdentityIDBySession(ctx, token)
	if err != nil {
		s.logger.Debugf("failed to resolve session for override lookup: %v", err)
		return false
	}
	return identityID == *membership.IdentityID
}

func (s *Service) GetAddons(ctx context.Context, cmd *GetAddonsCommand) (*AddonsResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetAddons")
	defer span.End()

	lic, _, _, err := s.resolveLicense(ctx, cmd.Code, cmd.Email)
	if err != nil {
		return nil, err
	}

	addons, err := s.storage.ListAddons(ctx, lic.ID, true)
	if err != nil {
		return nil, err
	}

	return &AddonsResult{Success: true, Addons: addonIDs(addons)}, nil
}

// UpdateAddons replaces the active addon set wholesale: everything active is
// switched off, then the requested set is switched back on.
func (s *Service) UpdateAddons(ctx context.Context, cmd *UpdateAddonsCommand) (*AddonsResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdateAddons")
	defer span.End()

	lic, _, _, err := s.resolveLicense(ctx, cmd.Code, cmd.Email)
	if err != nil {
		return nil, err
	}

	if err := s.replaceAddons(ctx, lic.ID, cmd.Addons); err != nil {
		return nil, err
	}

	return &AddonsResult{Success: true, Addons: cmd.Addons}, nil
}

func (s *Service) replaceAddons(ctx context.Context, licenseID string, addons []string) error {
	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		if err := s.storage.DeactivateAddons(ctx, licenseID, now); err != nil {
			return err
		}
		for _, addon := range addons {
			if err := s.storage.UpsertAddon(ctx, licenseID, addon, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) SyncCompany(ctx context.Context, cmd *SyncCompanyCommand) (*SyncCompanyResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.SyncCompany")
	defer span.End()

	lic, _, _, err := s.resolveLicense(ctx, cmd.Code, cmd.Email)
	if err != nil {
		return nil, err
	}

	if err := s.storage.TouchLicenseUsage(ctx, lic.ID, time.Now().UTC()); err != nil {
		s.logger.Warnf("failed to stamp license usage for %s: %v", lic.ID, err)
	}

	count, err := s.storage.CountActiveMembers(ctx, lic.ID)
	if err != nil {
		return nil, err
	}

	return &SyncCompanyResult{
		Success:     true,
		CompanyName: lic.CompanyName,
		Plan:        lic.PlanType,
		MemberCount: count,
	}, nil
}

// IssueToken exchanges the shared admin secret for a signed admin token. It
// is the bootstrap of the admin trust chain and therefore rate-limited like
// a credential check.
func (s *Service) IssueToken(ctx context.Context, cmd *IssueTokenCommand, meta *RequestMeta) (string, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.IssueToken")
	defer span.End()

	decision, err := s.limiter.Check(ctx, meta.IPAddress, "issue-token")
	if err != nil {
		return "", err
	}
	if !decision.Allowed {
		return "", &RateLimitedError{RetryAfter: decision.RetryAfter}
	}

	if s.adminSecret == "" {
		return "", ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(cmd.Secret), []byte(s.adminSecret)) != 1 {
		s.logger.Security().AuthnFailure(cmd.Email, "admin secret mismatch")
		return "", ErrUnauthorized
	}

	token, err := s.issuer.IssueToken(ctx, cmd.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue admin token: %w", err)
	}

	s.logger.Security().AuthnSuccess(cmd.Email, "admin secret")

	return token, nil
}

func (s *Service) featureFlags(ctx context.Context, licenseID string) map[string]bool {
	set, err := s.storage.GetFeatureSet(ctx, licenseID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("failed to load feature set for %s: %v", licenseID, err)
		}
		return map[string]bool{}
	}
	return set.Flags
}

func (s *Service) userOverrides(ctx context.Context, membershipID string) map[string]bool {
	rows, err := s.storage.ListUserOverrides(ctx, membershipID)
	if err != nil {
		s.logger.Warnf("failed to load user overrides for %s: %v", membershipID, err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	overrides := make(map[string]bool, len(rows))
	for _, row := range rows {
		overrides[row.FeatureKey] = row.Enabled
	}
	return overrides
}

// licenseData projects a license for callers, honoring its visibility flags.
func licenseData(lic *types.License) *LicenseData {
	data := &LicenseData{
		ID:                lic.ID,
		LicenseCode:       lic.Code,
		Email:             lic.OwnerEmail,
		Plan:              lic.PlanType,
		IsActive:          lic.IsActive,
		MaxDrivers:        lic.MaxDrivers,
		MaxClients:        lic.MaxClients,
		MaxDailyCharges:   lic.MaxDailyCharges,
		MaxMonthlyCharges: lic.MaxMonthlyCharges,
		MaxYearlyCharges:  lic.MaxYearlyCharges,
		MaxUsers:          lic.MaxUsers,
	}

	if lic.ShowUserInfo {
		data.FirstName = lic.FirstName
		data.LastName = lic.LastName
	}
	if lic.ShowCompanyInfo {
		data.CompanyName = lic.CompanyName
		data.Siren = lic.Siren
		data.CompanyStatus = lic.CompanyStatus
		data.EmployeeCount = lic.EmployeeCount
	}
	if lic.ShowAddressInfo {
		data.Address = lic.Address
		data.City = lic.City
		data.PostalCode = lic.PostalCode
	}
	if lic.ShowLicenseInfo {
		data.ActivatedAt = lic.ActivatedAt
		data.LastUsedAt = lic.LastUsedAt
	}

	return data
}

func addonIDs(addons []*types.Addon) []string {
	ids := make([]string, len(addons))
	for i, a := range addons {
		ids[i] = a.AddonID
	}
	return ids
}
