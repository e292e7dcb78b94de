// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

var adminActor = &authentication.Actor{Email: "admin@example.com", Strategy: authentication.StrategyBearer}

func TestServiceCreateLicenseRetriesOnCodeCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	meta := &RequestMeta{IPAddress: "203.0.113.7"}

	first := m.storage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
	m.storage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
		func(ctx context.Context, lic *types.License) (*types.License, error) {
			if lic.PlanType != types.PlanStart {
				t.Errorf("expected the default plan, got %q", lic.PlanType)
			}
			if !lic.ShowUserInfo || !lic.ShowCompanyInfo || !lic.ShowAddressInfo || !lic.ShowLicenseInfo {
				t.Error("expected all visibility flags on for a new license")
			}
			created := *lic
			created.ID = "lic-new"
			return &created, nil
		},
	)
	m.recorder.EXPECT().Audit(gomock.Any(), adminActor, "create-license", "license", "lic-new", gomock.Any(), meta)

	created, err := s.CreateLicense(context.Background(), &CreateLicenseCommand{
		OwnerEmail: "owner@example.com",
	}, adminActor, meta)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.ID != "lic-new" {
		t.Errorf("expected lic-new, got %q", created.ID)
	}
}

func TestServiceCreateLicensePreInvitesMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})

	m.storage.EXPECT().CreateLicense(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, lic *types.License) (*types.License, error) {
			created := *lic
			created.ID = "lic-new"
			return &created, nil
		},
	)
	m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, mem *types.Membership) (*types.Membership, error) {
			if mem.Email != "invited@example.com" {
				t.Errorf("expected the invited email, got %q", mem.Email)
			}
			if mem.IdentityID != nil {
				t.Error("expected no identity on a pre-invited membership")
			}
			if mem.InvitedAt == nil {
				t.Error("expected InvitedAt to be stamped")
			}
			return mem, nil
		},
	)
	m.recorder.EXPECT().Audit(gomock.Any(), adminActor, "create-license", "license", "lic-new", gomock.Any(), gomock.Any())

	_, err := s.CreateLicense(context.Background(), &CreateLicenseCommand{
		OwnerEmail:  "owner@example.com",
		InviteEmail: "invited@example.com",
	}, adminActor, &RequestMeta{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceUpdateLicense(t *testing.T) {
	tests := []struct {
		name            string
		updates         map[string]interface{}
		expectedColumns map[string]interface{}
		expectedErr     error
	}{
		{
			name:            "MapsFieldNamesToColumns",
			updates:         map[string]interface{}{"firstName": "Ada", "postalCode": "69001"},
			expectedColumns: map[string]interface{}{"first_name": "Ada", "postal_code": "69001"},
		},
		{
			name:            "MapsNotes",
			updates:         map[string]interface{}{"notes": "renewal pending"},
			expectedColumns: map[string]interface{}{"notes": "renewal pending"},
		},
		{
			name:        "RejectsUnknownField",
			updates:     map[string]interface{}{"planType": "enterprise"},
			expectedErr: ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, Config{})

			if test.expectedErr == nil {
				m.storage.EXPECT().UpdateLicense(gomock.Any(), "lic-1", test.expectedColumns).Return(nil)
				m.recorder.EXPECT().Audit(gomock.Any(), adminActor, "update-license", "license", "lic-1", gomock.Any(), gomock.Any())
			}

			err := s.UpdateLicense(context.Background(), &UpdateLicenseCommand{
				LicenseID: "lic-1",
				Updates:   test.updates,
			}, adminActor, &RequestMeta{})
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

// Every column the admin update paths can emit must be accepted by the
// storage allowlist, or the update fails at runtime for a field the API
// advertises.
func TestUpdateColumnsAreUpdatable(t *testing.T) {
	columns := make([]string, 0, len(updateFieldColumns))
	for _, column := range updateFieldColumns {
		columns = append(columns, column)
	}
	columns = append(columns,
		"max_drivers", "max_clients", "max_daily_charges", "max_monthly_charges", "max_yearly_charges", "max_users",
		"show_user_info", "show_company_info", "show_address_info", "show_license_info",
	)

	for _, column := range columns {
		if !storage.IsUpdatableLicenseColumn(column) {
			t.Errorf("column %q is emitted by an admin update but rejected by storage", column)
		}
	}
}

func TestServiceUpdateLimits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	five := 5

	m.storage.EXPECT().UpdateLicense(gomock.Any(), "lic-1", map[string]interface{}{"max_drivers": 5}).Return(nil)
	m.recorder.EXPECT().Audit(gomock.Any(), adminActor, "update-limits", "license", "lic-1", gomock.Any(), gomock.Any())

	err := s.UpdateLimits(context.Background(), &UpdateLimitsCommand{
		LicenseID: "lic-1",
		Limits:    &LimitUpdate{MaxDrivers: &five},
	}, adminActor, &RequestMeta{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = s.UpdateLimits(context.Background(), &UpdateLimitsCommand{
		LicenseID: "lic-1",
		Limits:    &LimitUpdate{},
	}, adminActor, &RequestMeta{})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected %v for an empty limit set, got %v", ErrBadRequest, err)
	}
}

func TestServiceToggleStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	lic := activeLicense()

	m.storage.EXPECT().GetLicenseByID(gomock.Any(), lic.ID).Return(lic, nil)
	m.storage.EXPECT().SetLicenseStatus(gomock.Any(), lic.ID, false).Return(nil)
	m.recorder.EXPECT().Audit(gomock.Any(), adminActor, "toggle-status", "license", lic.ID, gomock.Any(), gomock.Any())

	active, err := s.ToggleStatus(context.Background(), &ToggleStatusCommand{LicenseID: lic.ID}, adminActor, &RequestMeta{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if active {
		t.Error("expected the license to be switched off")
	}
}

func TestServiceGetCompanyData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	lic := activeLicense()
	identityID := "identity-1"

	members := []*types.Membership{
		memberRow(&identityID),
		{ID: "mem-2", LicenseID: lic.ID, Email: "invited@example.com", Role: types.RoleMember, IsActive: true},
	}

	m.storage.EXPECT().GetLicenseByID(gomock.Any(), lic.ID).Return(lic, nil)
	m.storage.EXPECT().ListMembers(gomock.Any(), lic.ID).Return(members, nil)
	m.storage.EXPECT().CountRecordsByIdentity(gomock.Any(), identityID).Return(types.RecordCounts{Trips: 12}, nil)
	m.storage.EXPECT().SumTripMetricsByIdentity(gomock.Any(), identityID).Return(1500.0, 820.5, nil)
	m.storage.EXPECT().CountRecordsByLicense(gomock.Any(), lic.ID).Return(types.RecordCounts{Trips: 30, Clients: 9}, nil)
	m.storage.EXPECT().SumTripMetricsByLicense(gomock.Any(), lic.ID).Return(4200.0, 1900.0, nil)
	m.storage.EXPECT().ListLoginEntriesByLicense(gomock.Any(), lic.ID, uint64(recentLoginsLimit)).Return([]*types.LoginEntry{{Email: "member@example.com"}}, nil)
	m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(&types.FeatureSet{Flags: map[string]bool{"geo": true}}, nil)

	data, err := s.GetCompanyData(context.Background(), &GetCompanyDataCommand{LicenseID: lic.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(data.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(data.Members))
	}
	if data.Members[0].Counts.Trips != 12 {
		t.Errorf("expected 12 trips for the first member, got %d", data.Members[0].Counts.Trips)
	}
	if data.Members[1].TotalRevenue != 0 {
		t.Error("expected zero stats for the invited member")
	}
	if data.Totals.Revenue != 4200.0 {
		t.Errorf("expected total revenue 4200, got %f", data.Totals.Revenue)
	}
	if len(data.RecentLogins) != 1 {
		t.Errorf("expected 1 recent login, got %d", len(data.RecentLogins))
	}
	if !data.Features["geo"] {
		t.Error("expected the geo flag to be on")
	}
}

func TestServiceGetUserStatsInvitedMemberHasNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})

	m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "invited@example.com").Return(&types.Membership{
		ID:        "mem-2",
		LicenseID: "lic-1",
		Email:     "invited@example.com",
		Role:      types.RoleMember,
	}, nil)

	stats, err := s.GetUserStats(context.Background(), &GetUserStatsCommand{LicenseID: "lic-1", UserEmail: "invited@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Counts.Trips != 0 || stats.TotalRevenue != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestServiceGetUserDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	identityID := "identity-1"
	member := memberRow(&identityID)

	m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", member.Email).Return(member, nil)
	m.storage.EXPECT().ListUserOverrides(gomock.Any(), member.ID).Return(nil, nil)
	for _, table := range storage.RecordTables {
		m.storage.EXPECT().ListOwnedRecords(gomock.Any(), table, identityID).Return([]*types.OwnedRecord{{ID: table + "-1"}}, nil)
	}

	details, err := s.GetUserDetails(context.Background(), &GetUserDetailsCommand{LicenseID: "lic-1", UserEmail: member.Email})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(details.Records) != len(storage.RecordTables) {
		t.Fatalf("expected records for %d tables, got %d", len(storage.RecordTables), len(details.Records))
	}
	if len(details.Records["trips"]) != 1 {
		t.Errorf("expected 1 trip record, got %d", len(details.Records["trips"]))
	}
}

func TestGenerateCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match the expected format", code)
		}
		seen[code] = true
	}
	if len(seen) < 50 {
		t.Errorf("expected 50 distinct codes, got %d", len(seen))
	}
}
