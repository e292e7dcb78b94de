// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

// Ambiguous characters (0/O, 1/I) are excluded so codes survive being read
// over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeGroups        = 4
	codeGroupLen      = 4
	maxCodeRetries    = 5
	readConcurrency   = 8
	recentLoginsLimit = 20
)

func (s *Service) ListAll(ctx context.Context) ([]*types.LicenseDetails, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.ListAll")
	defer span.End()

	licenses, err := s.storage.ListLicenses(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*types.LicenseDetails, len(licenses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, lic := range licenses {
		g.Go(func() error {
			d, err := s.licenseDetails(gctx, lic)
			if err != nil {
				return err
			}
			details[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *Service) licenseDetails(ctx context.Context, lic *types.License) (*types.LicenseDetails, error) {
	features, err := s.storage.GetFeatureSet(ctx, lic.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	count, err := s.storage.CountMembers(ctx, lic.ID)
	if err != nil {
		return nil, err
	}

	return &types.LicenseDetails{
		License:     lic,
		Features:    features,
		MemberCount: count,
	}, nil
}

func (s *Service) CreateLicense(ctx context.Context, cmd *CreateLicenseCommand, actor *authentication.Actor, meta *RequestMeta) (*types.License, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.CreateLicense")
	defer span.End()

	plan := cmd.Plan
	if plan == "" {
		plan = types.PlanStart
	}

	var companyName *string
	if cmd.CompanyName != "" {
		companyName = &cmd.CompanyName
	}

	var created *types.License
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, err
		}

		created, err = s.storage.CreateLicense(ctx, &types.License{
			Code:            code,
			OwnerEmail:      cmd.OwnerEmail,
			IsActive:        true,
			PlanType:        plan,
			CompanyName:     companyName,
			ShowUserInfo:    true,
			ShowCompanyInfo: true,
			ShowAddressInfo: true,
			ShowLicenseInfo: true,
		})
		if err == nil {
			break
		}
		if !storage.IsDuplicateKeyError(err) {
			return nil, err
		}
		created = nil
	}
	if created == nil {
		return nil, fmt.Errorf("failed to generate a unique license code after %d attempts", maxCodeRetries)
	}

	if cmd.InviteEmail != "" && cmd.InviteEmail != cmd.OwnerEmail {
		now := time.Now().UTC()
		_, err := s.storage.CreateMembership(ctx, &types.Membership{
			LicenseID: created.ID,
			Email:     cmd.InviteEmail,
			Role:      types.RoleMember,
			IsActive:  true,
			InvitedAt: &now,
		})
		if err != nil {
			s.logger.Errorf("failed to pre-invite %s on %s: %v", cmd.InviteEmail, created.ID, err)
		}
	}

	s.recorder.Audit(ctx, actor, "create-license", "license", created.ID, map[string]interface{}{
		"licenseCode": created.Code,
		"ownerEmail":  created.OwnerEmail,
		"plan":        created.PlanType,
	}, meta)

	return created, nil
}

// updateFieldColumns maps the request's field names to license columns. Keys
// outside this map are rejected before they reach storage.
var updateFieldColumns = map[string]string{
	"email":         "email",
	"firstName":     "first_name",
	"lastName":      "last_name",
	"companyName":   "company_name",
	"siren":         "siren",
	"companyStatus": "company_status",
	"employeeCount": "employee_count",
	"address":       "address",
	"city":          "city",
	"postalCode":    "postal_code",
	"notes":         "notes",
}

func (s *Service) UpdateLicense(ctx context.Context, cmd *UpdateLicenseCommand, actor *authentication.Actor, meta *RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdateLicense")
	defer span.End()

	fields := make(map[string]interface{}, len(cmd.Updates))
	for key, value := range cmd.Updates {
		column, ok := updateFieldColumns[key]
		if !ok {
			return fmt.Errorf("%w: unknown field %q", ErrBadRequest, key)
		}
		fields[column] = value
	}

	if err := s.storage.UpdateLicense(ctx, cmd.LicenseID, fields); err != nil {
		return err
	}

	s.recorder.Audit(ctx, actor, "update-license", "license", cmd.LicenseID, map[string]interface{}{
		"updates": cmd.Updates,
	}, meta)

	return nil
}

func (s *Service) DeleteLicense(ctx context.Context, cmd *DeleteLicenseCommand, actor *authentication.Actor, meta *RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.DeleteLicense")
	defer span.End()

	if err := s.storage.DeleteLicense(ctx, cmd.LicenseID); err != nil {
		return err
	}

	s.recorder.Audit(ctx, actor, "delete-license", "license", cmd.LicenseID, nil, meta)
	return nil
}

func (s *Service) UpdatePlan(ctx context.Context, cmd *UpdatePlanCommand, actor *authentication.Actor, meta *RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdatePlan")
	defer span.End()

	if err := s.storage.SetLicensePlan(ctx, cmd.LicenseID, cmd.Plan); err != nil {
		return err
	}

	s.recorder.Audit(ctx, actor, "update-plan", "license", cmd.LicenseID, map[string]interface{}{
		"plan": cmd.Plan,
	}, meta)

	return nil
}

func (s *Service) UpdateLimits(ctx context.Context, cmd *UpdateLimitsCommand, actor *authentication.Actor, meta *RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdateLimits")
	defer span.End()

	fields := map[string]interface{}{}
	if cmd.Limits.MaxDrivers != nil {
		fields["max_drivers"] = *cmd.Limits.MaxDrivers
	}
	if cmd.Limits.MaxClients != nil {
		fields["max_clients"] = *cmd.Limits.MaxClients
	}
	if cmd.Limits.MaxDailyCharges != nil {
		fields["max_daily_charges"] = *cmd.Limits.MaxDailyCharges
	}
	if cmd.Limits.MaxMonthlyCharges != nil {
		fields["max_monthly_charges"] = *cmd.Limits.MaxMonthlyCharges
	}
	if cmd.Limits.MaxYearlyCharges != nil {
		fields["max_yearly_charges"] = *cmd.Limits.MaxYearlyCharges
	}
	if cmd.Limits.MaxUsers != nil {
		fields["max_users"] = *cmd.Limits.MaxUsers
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no limit fields provided", ErrBadRequest)
	}

	if err := s.storage.UpdateLicense(ctx, cmd.LicenseID, fields); err != nil {
		return err
	}

	s.recorder.Audit(ctx, actor, "update-limits", "license", cmd.LicenseID, map[string]interface{}{
		"limits": cmd.Limits,
	}, meta)

	return nil
}

func (s *Service) UpdateFeatures(ctx context.Context, cmd *UpdateFeaturesCommand, actor *authentication.Actor, meta *RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdateFeatures")
	defer span.End()

	if err := s.storage.UpsertFeatureSet(ctx, cmd.LicenseID, cmd.Features); err != nil {
		return err
	}

	s.recorder.Audit(ctx, actor, "update-features", "license", cmd.LicenseID, map[string]interface{}{
		"features": cmd.Features,
	}, meta)

	return nil
}

func (s *Service) UpdateVisibility(ctx context.Context, cmd *UpdateVisibilityCommand, actor *authentication.Actor, meta *RequestMeta) error {
	ctx, span := s.tracer.Start(ctx, "license.Service.UpdateVisibility")
	defer span.End()

	fields := map[string]interface{}{}
	if cmd.Visibility.ShowUserInfo != nil {
		fields["show_user_info"] = *cmd.Visibility.ShowUserInfo
	}
	if cmd.Visibility.ShowCompanyInfo != nil {
		fields["show_company_info"] = *cmd.Visibility.ShowCompanyInfo
	}
	if cmd.Visibility.ShowAddressInfo != nil {
		fields["show_address_info"] = *cmd.Visibility.ShowAddressInfo
	}
	if cmd.Visibility.ShowLicenseInfo != nil {
		fields["show_license_info"] = *cmd.Visibility.ShowLicenseInfo
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no visibility flags provided", ErrBadRequest)
	}

	if err := s.storage.UpdateLicense(ctx, cmd.LicenseID, fields); err != nil {
		return err
	}

	s.recorder.Audit(ctx, actor, "update-visibility", "license", cmd.LicenseID, map[string]interface{}{
		"visibility": cmd.Visibility,
	}, meta)

	return nil
}

// ToggleStatus flips the active flag and returns the new state.
func (s *Service) ToggleStatus(ctx context.Context, cmd *ToggleStatusCommand, actor *authentication.Actor, meta *RequestMeta) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.ToggleStatus")
	defer span.End()

	lic, err := s.storage.GetLicenseByID(ctx, cmd.LicenseID)
	if err != nil {
		return false, err
	}

	newState := !lic.IsActive
	if err := s.storage.SetLicenseStatus(ctx, cmd.LicenseID, newState); err != nil {
		return false, err
	}

	s.recorder.Audit(ctx, actor, "toggle-status", "license", cmd.LicenseID, map[string]interface{}{
		"isActive": newState,
	}, meta)

	return newState, nil
}

func (s *Service) AdminGetAddons(ctx context.Context, cmd *AdminGetAddonsCommand) (*AddonsResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.AdminGetAddons")
	defer span.End()

	addons, err := s.storage.ListAddons(ctx, cmd.LicenseID, true)
	if err != nil {
		return nil, err
	}

	return &AddonsResult{Success: true, Addons: addonIDs(addons)}, nil
}

func (s *Service) AdminUpdateAddons(ctx context.Context, cmd *AdminUpdateAddonsCommand, actor *authentication.Actor, meta *RequestMeta) (*AddonsResult, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.AdminUpdateAddons")
	defer span.End()

	if err := s.replaceAddons(ctx, cmd.LicenseID, cmd.Addons); err != nil {
		return nil, err
	}

	s.recorder.Audit(ctx, actor, "admin-update-addons", "license", cmd.LicenseID, map[string]interface{}{
		"addons": cmd.Addons,
	}, meta)

	return &AddonsResult{Success: true, Addons: cmd.Addons}, nil
}

// GetCompanyData aggregates everything the admin console shows about one
// company. Per-member statistics are independent reads, so they fan out
// concurrently.
func (s *Service) GetCompanyData(ctx context.Context, cmd *GetCompanyDataCommand) (*CompanyData, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetCompanyData")
	defer span.End()

	lic, err := s.storage.GetLicenseByID(ctx, cmd.LicenseID)
	if err != nil {
		return nil, err
	}

	members, err := s.storage.ListMembers(ctx, lic.ID)
	if err != nil {
		return nil, err
	}

	stats := make([]*types.MemberStats, len(members))
	var totals types.CompanyTotals
	var logins []*types.LoginEntry

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, member := range members {
		g.Go(func() error {
			ms, err := s.memberStats(gctx, member)
			if err != nil {
				return err
			}
			stats[i] = ms
			return nil
		})
	}
	g.Go(func() error {
		counts, err := s.storage.CountRecordsByLicense(gctx, lic.ID)
		if err != nil {
			return err
		}
		revenue, distance, err := s.storage.SumTripMetricsByLicense(gctx, lic.ID)
		if err != nil {
			return err
		}
		totals = types.CompanyTotals{Counts: counts, Revenue: revenue, Distance: distance}
		return nil
	})
	g.Go(func() error {
		var err error
		logins, err = s.storage.ListLoginEntriesByLicense(gctx, lic.ID, recentLoginsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CompanyData{
		License:      licenseData(lic),
		Features:     s.featureFlags(ctx, lic.ID),
		Members:      stats,
		Totals:       &totals,
		RecentLogins: logins,
	}, nil
}

func (s *Service) memberStats(ctx context.Context, member *types.Membership) (*types.MemberStats, error) {
	ms := &types.MemberStats{
		MembershipID:   member.ID,
		IdentityID:     member.IdentityID,
		Email:          member.Email,
		DisplayName:    member.DisplayName,
		Role:           member.Role,
		LastActivityAt: member.LastActivityAt,
		AcceptedAt:     member.AcceptedAt,
	}

	// Invited members with no identity yet own no records.
	if member.IdentityID == nil {
		return ms, nil
	}

	counts, err := s.storage.CountRecordsByIdentity(ctx, *member.IdentityID)
	if err != nil {
		return nil, err
	}
	revenue, distance, err := s.storage.SumTripMetricsByIdentity(ctx, *member.IdentityID)
	if err != nil {
		return nil, err
	}

	ms.Counts = counts
	ms.TotalRevenue = revenue
	ms.TotalDistance = distance
	return ms, nil
}

func (s *Service) GetUserStats(ctx context.Context, cmd *GetUserStatsCommand) (*UserStats, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetUserStats")
	defer span.End()

	member, err := s.storage.GetMembership(ctx, cmd.LicenseID, cmd.UserEmail)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{Email: member.Email}
	if member.IdentityID == nil {
		return stats, nil
	}

	stats.Counts, err = s.storage.CountRecordsByIdentity(ctx, *member.IdentityID)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue, stats.TotalDistance, err = s.storage.SumTripMetricsByIdentity(ctx, *member.IdentityID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Service) GetUserDetails(ctx context.Context, cmd *GetUserDetailsCommand) (*UserDetails, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetUserDetails")
	defer span.End()

	member, err := s.storage.GetMembership(ctx, cmd.LicenseID, cmd.UserEmail)
	if err != nil {
		return nil, err
	}

	overrides, err := s.storage.ListUserOverrides(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	details := &UserDetails{
		Membership: member,
		Overrides:  overrides,
	}

	if member.IdentityID == nil {
		return details, nil
	}

	records := make(map[string][]*types.OwnedRecord, len(storage.RecordTables))
	perTable := make([][]*types.OwnedRecord, len(storage.RecordTables))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, table := range storage.RecordTables {
		g.Go(func() error {
			rows, err := s.storage.ListOwnedRecords(gctx, table, *member.IdentityID)
			if err != nil {
				return err
			}
			perTable[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, table := range storage.RecordTables {
		records[table] = perTable[i]
	}

	details.Records = records
	return details, nil
}

func (s *Service) GetLoginHistory(ctx context.Context, cmd *GetLoginHistoryCommand) ([]*types.LoginEntry, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetLoginHistory")
	defer span.End()

	return s.storage.ListLoginEntries(ctx, cmd.UserEmail, cmd.Limit)
}

func (s *Service) GetAuditLogs(ctx context.Context, cmd *GetAuditLogsCommand) ([]*types.AuditEntry, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.GetAuditLogs")
	defer span.End()

	return s.storage.ListAuditEntries(ctx, cmd.TargetID, cmd.Limit)
}

func generateCode() (string, error) {
	buf := make([]byte, codeGroups*codeGroupLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate license code: %w", err)
	}

	code := make([]byte, 0, codeGroups*codeGroupLen+codeGroups-1)
	for i, b := range buf {
		if i > 0 && i%codeGroupLen == 0 {
			code = append(code, '-')
		}
		code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
	}
	return string(code), nil
}
