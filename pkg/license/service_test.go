// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/license-service/internal/kratos"
	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/ratelimit"
	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package license -destination ./mock_license.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package license -destination ./mock_recorder.go -source=./recorder.go

type serviceMocks struct {
	storage  *MockStorageInterface
	kratos   *MockKratosClientInterface
	limiter  *MockLimiterInterface
	issuer   *MockIssuerInterface
	recorder *MockRecorderInterface
	tx       *MockTxRunner
}

func newTestService(ctrl *gomock.Controller, cfg Config) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		limiter:  NewMockLimiterInterface(ctrl),
		issuer:   NewMockIssuerInterface(ctrl),
		recorder: NewMockRecorderInterface(ctrl),
		tx:       NewMockTxRunner(ctrl),
	}
	s := NewService(
		m.storage,
		m.kratos,
		m.limiter,
		m.issuer,
		m.recorder,
		m.tx,
		cfg,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return s, m
}

func activeLicense() *types.License {
	return &types.License{
		ID:           "lic-1",
		Code:         "AAAA-BBBB-CCCC-DDDD",
		OwnerEmail:   "owner@example.com",
		IsActive:     true,
		PlanType:     types.PlanPro,
		ShowUserInfo: true,
	}
}

func memberRow(identityID *string) *types.Membership {
	return &types.Membership{
		ID:         "mem-1",
		LicenseID:  "lic-1",
		IdentityID: identityID,
		Email:      "member@example.com",
		Role:       types.RoleMember,
		IsActive:   true,
	}
}

func TestServiceValidateOwnerFirstSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	ctx := context.Background()
	meta := &RequestMeta{IPAddress: "203.0.113.7"}
	lic := activeLicense()
	identityID := "identity-1"

	m.limiter.EXPECT().Check(gomock.Any(), "203.0.113.7", "validate").Return(ratelimit.Decision{Allowed: true}, nil)
	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "owner@example.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().TouchLicenseUsage(gomock.Any(), lic.ID, gomock.Any()).Return(nil)

	m.kratos.EXPECT().SignIn(gomock.Any(), "owner@example.com", lic.Code).Return(identityID, "sess-token", nil)

	m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), lic.ID, identityID).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "owner@example.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().HasOwner(gomock.Any(), lic.ID).Return(false, nil)
	m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, mem *types.Membership) (*types.Membership, error) {
			if mem.Role != types.RoleOwner {
				t.Errorf("expected owner role, got %q", mem.Role)
			}
			if mem.IdentityID == nil || *mem.IdentityID != identityID {
				t.Errorf("expected identity %q to be attached", identityID)
			}
			created := *mem
			created.ID = "mem-owner"
			return &created, nil
		},
	)

	m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(&types.FeatureSet{Flags: map[string]bool{"export": true}}, nil)
	m.storage.EXPECT().ListUserOverrides(gomock.Any(), "mem-owner").Return(nil, nil)
	m.recorder.EXPECT().Login(gomock.Any(), "owner@example.com", lic.ID, meta, true)

	result, err := s.Validate(ctx, &ValidateCommand{Code: lic.Code, Email: "owner@example.com"}, meta)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Valid {
		t.Fatal("expected a valid result")
	}
	if result.Role != types.RoleOwner {
		t.Errorf("expected role %q, got %q", types.RoleOwner, result.Role)
	}
	if result.Session == nil || result.Session.Token != "sess-token" {
		t.Errorf("expected session token, got %+v", result.Session)
	}
	if !result.CustomFeatures["export"] {
		t.Error("expected the export flag to be on")
	}
}

func TestServiceValidateFailures(t *testing.T) {
	identityID := "identity-2"

	tests := []struct {
		name        string
		setupMocks  func(m *serviceMocks)
		expectedErr error
	}{
		{
			name: "UnknownCode",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLicenseByCode(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrLicenseNotFound,
		},
		{
			name: "DeactivatedLicense",
			setupMocks: func(m *serviceMocks) {
				lic := activeLicense()
				lic.IsActive = false
				m.storage.EXPECT().GetLicenseByCode(gomock.Any(), gomock.Any()).Return(lic, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", gomock.Any()).Return(memberRow(&identityID), nil)
			},
			expectedErr: ErrInactive,
		},
		{
			// A stranger probing a deactivated license must not learn that it
			// is deactivated.
			name: "DeactivatedLicenseStranger",
			setupMocks: func(m *serviceMocks) {
				lic := activeLicense()
				lic.IsActive = false
				m.storage.EXPECT().GetLicenseByCode(gomock.Any(), gomock.Any()).Return(lic, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotEntitled,
		},
		{
			name: "StrangerEmail",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLicenseByCode(gomock.Any(), gomock.Any()).Return(activeLicense(), nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotEntitled,
		},
		{
			name: "DeactivatedMembership",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetLicenseByCode(gomock.Any(), gomock.Any()).Return(activeLicense(), nil)
				row := memberRow(&identityID)
				row.IsActive = false
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", gomock.Any()).Return(row, nil)
			},
			expectedErr: ErrInactive,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, Config{})
			meta := &RequestMeta{IPAddress: "203.0.113.7"}

			m.limiter.EXPECT().Check(gomock.Any(), "203.0.113.7", "validate").Return(ratelimit.Decision{Allowed: true}, nil)
			test.setupMocks(m)
			m.recorder.EXPECT().Login(gomock.Any(), "member@example.com", "", meta, false)

			_, err := s.Validate(context.Background(), &ValidateCommand{Code: "AAAA-BBBB-CCCC-DDDD", Email: "member@example.com"}, meta)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestServiceValidateRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	meta := &RequestMeta{IPAddress: "203.0.113.7"}

	m.limiter.EXPECT().Check(gomock.Any(), "203.0.113.7", "validate").Return(ratelimit.Decision{Allowed: false, RetryAfter: 120}, nil)

	_, err := s.Validate(context.Background(), &ValidateCommand{Code: "AAAA-BBBB-CCCC-DDDD", Email: "member@example.com"}, meta)

	var rateLimited *RateLimitedError
	if !errors.As(err, &rateLimited) {
		t.Fatalf("expected a rate limited error, got %v", err)
	}
	if rateLimited.RetryAfter != 120 {
		t.Errorf("expected retry after 120, got %d", rateLimited.RetryAfter)
	}
}

// memoryCounterStore backs a real limiter in tests so the attempt arithmetic
// is exercised end to end instead of being scripted per call.
type memoryCounterStore struct {
	counters map[string]*types.RateLimitCounter
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{counters: make(map[string]*types.RateLimitCounter)}
}

func (s *memoryCounterStore) GetRateLimitCounter(_ context.Context, identifier, action string) (*types.RateLimitCounter, error) {
	counter, ok := s.counters[identifier+"/"+action]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *counter
	return &copied, nil
}

func (s *memoryCounterStore) CreateRateLimitCounter(_ context.Context, identifier, action string, now time.Time) error {
	s.counters[identifier+"/"+action] = &types.RateLimitCounter{
		Identifier:     identifier,
		ActionType:     action,
		Attempts:       1,
		FirstAttemptAt: now,
		LastAttemptAt:  now,
	}
	return nil
}

func (s *memoryCounterStore) ResetRateLimitCounter(_ context.Context, identifier, action string, now time.Time) error {
	counter := s.counters[identifier+"/"+action]
	counter.Attempts = 1
	counter.FirstAttemptAt = now
	counter.LastAttemptAt = now
	counter.LockedUntil = nil
	return nil
}

func (s *memoryCounterStore) IncrementRateLimitCounter(_ context.Context, identifier, action string) error {
	counter := s.counters[identifier+"/"+action]
	counter.Attempts++
	counter.LastAttemptAt = time.Now().UTC()
	return nil
}

func (s *memoryCounterStore) LockRateLimitCounter(_ context.Context, identifier, action string, until time.Time) error {
	s.counters[identifier+"/"+action].LockedUntil = &until
	return nil
}

// A successful validation spends an attempt like any other call; it must not
// reset the caller's counter. Five attempts in the window, one of them a
// success, and the sixth is denied.
func TestServiceValidateSuccessDoesNotResetRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		issuer:   NewMockIssuerInterface(ctrl),
		recorder: NewMockRecorderInterface(ctrl),
		tx:       NewMockTxRunner(ctrl),
	}
	limiter := ratelimit.NewLimiter(newMemoryCounterStore(), 5, 15*time.Minute,
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	s := NewService(
		m.storage,
		m.kratos,
		limiter,
		m.issuer,
		m.recorder,
		m.tx,
		Config{},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	ctx := context.Background()
	meta := &RequestMeta{IPAddress: "203.0.113.7"}
	lic := activeLicense()
	identityID := "identity-2"

	// Four wrong codes burn four attempts.
	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), "XXXX-XXXX-XXXX-XXXX").Return(nil, storage.ErrNotFound).Times(4)
	m.recorder.EXPECT().Login(gomock.Any(), "member@example.com", "", meta, false).Times(4)
	for i := 0; i < 4; i++ {
		if _, err := s.Validate(ctx, &ValidateCommand{Code: "XXXX-XXXX-XXXX-XXXX", Email: "member@example.com"}, meta); !errors.Is(err, ErrLicenseNotFound) {
			t.Fatalf("attempt %d: expected %v, got %v", i+1, ErrLicenseNotFound, err)
		}
	}

	// The fifth attempt succeeds.
	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "member@example.com").Return(memberRow(&identityID), nil)
	m.storage.EXPECT().TouchLicenseUsage(gomock.Any(), lic.ID, gomock.Any()).Return(nil)
	m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", lic.Code).Return(identityID, "tok", nil)
	m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), lic.ID, identityID).Return(memberRow(&identityID), nil)
	m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().ListUserOverrides(gomock.Any(), "mem-1").Return(nil, nil)
	m.recorder.EXPECT().Login(gomock.Any(), "member@example.com", lic.ID, meta, true)

	if _, err := s.Validate(ctx, &ValidateCommand{Code: lic.Code, Email: "member@example.com"}, meta); err != nil {
		t.Fatalf("expected the fifth attempt to succeed, got %v", err)
	}

	// The sixth call never reaches storage.
	_, err := s.Validate(ctx, &ValidateCommand{Code: lic.Code, Email: "member@example.com"}, meta)
	var rateLimited *RateLimitedError
	if !errors.As(err, &rateLimited) {
		t.Fatalf("expected a rate limited error on the sixth attempt, got %v", err)
	}
	if rateLimited.RetryAfter <= 0 {
		t.Errorf("expected a positive retry-after, got %d", rateLimited.RetryAfter)
	}
}

func TestServiceValidateSandboxSkipsRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{SandboxPrefix: "DEMO"})
	meta := &RequestMeta{IPAddress: "203.0.113.7"}
	lic := activeLicense()
	lic.Code = "DEMO-0000-0000-0000"
	identityID := "identity-9"

	// No limiter expectations: a sandbox code must not consume attempts.
	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "member@example.com").Return(memberRow(&identityID), nil)
	m.storage.EXPECT().TouchLicenseUsage(gomock.Any(), lic.ID, gomock.Any()).Return(nil)
	m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", lic.Code).Return(identityID, "tok", nil)
	m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), lic.ID, identityID).Return(memberRow(&identityID), nil)
	m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().ListUserOverrides(gomock.Any(), "mem-1").Return([]*types.UserFeatureOverride{
		{MembershipID: "mem-1", FeatureKey: "export", Enabled: false},
	}, nil)
	m.recorder.EXPECT().Login(gomock.Any(), "member@example.com", lic.ID, meta, true)

	result, err := s.Validate(context.Background(), &ValidateCommand{Code: lic.Code, Email: "member@example.com"}, meta)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if enabled, ok := result.UserFeatureOverrides["export"]; !ok || enabled {
		t.Errorf("expected export to be overridden off, got %v", result.UserFeatureOverrides)
	}
}

func TestServiceCheckResolutionFailureIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})

	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	result, err := s.Check(context.Background(), &CheckCommand{Code: "AAAA-BBBB-CCCC-DDDD", Email: "member@example.com"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Valid {
		t.Fatal("expected an invalid result")
	}
	if result.Reason == "" {
		t.Error("expected a reason on the invalid result")
	}
}

func TestServiceCheckSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	lic := activeLicense()
	identityID := "identity-3"

	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "member@example.com").Return(memberRow(&identityID), nil)
	m.storage.EXPECT().TouchLicenseUsage(gomock.Any(), lic.ID, gomock.Any()).Return(nil)
	m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(&types.FeatureSet{Flags: map[string]bool{}}, nil)

	result, err := s.Check(context.Background(), &CheckCommand{Code: lic.Code, Email: "member@example.com"}, &RequestMeta{IPAddress: "203.0.113.7"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Valid {
		t.Fatal("expected a valid result")
	}
	if result.License == nil || result.License.ID != lic.ID {
		t.Errorf("expected license %q in result, got %+v", lic.ID, result.License)
	}
	if result.UserFeatureOverrides != nil {
		t.Errorf("expected no overrides without a session, got %v", result.UserFeatureOverrides)
	}
}

func TestServiceCheckOverridesRequireMatchingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identityID := "identity-3"

	tests := []struct {
		name          string
		meta          *RequestMeta
		setupMocks    func(m *serviceMocks)
		wantOverrides bool
	}{
		{
			name: "MatchingSession",
			meta: &RequestMeta{AuthorizationHeader: "Bearer session-tok"},
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().GetIdentityIDBySession(gomock.Any(), "session-tok").Return(identityID, nil)
				m.storage.EXPECT().ListUserOverrides(gomock.Any(), "mem-1").Return([]*types.UserFeatureOverride{
					{MembershipID: "mem-1", FeatureKey: "export", Enabled: false},
				}, nil)
			},
			wantOverrides: true,
		},
		{
			name: "ForeignSession",
			meta: &RequestMeta{AuthorizationHeader: "Bearer session-tok"},
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().GetIdentityIDBySession(gomock.Any(), "session-tok").Return("identity-other", nil)
			},
		},
		{
			name: "InvalidSession",
			meta: &RequestMeta{AuthorizationHeader: "Bearer session-tok"},
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().GetIdentityIDBySession(gomock.Any(), "session-tok").Return("", errors.New("expired"))
			},
		},
		{
			name:       "NoAuthorizationHeader",
			meta:       &RequestMeta{IPAddress: "203.0.113.7"},
			setupMocks: func(m *serviceMocks) {},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newTestService(ctrl, Config{})
			lic := activeLicense()

			m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
			m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "member@example.com").Return(memberRow(&identityID), nil)
			m.storage.EXPECT().TouchLicenseUsage(gomock.Any(), lic.ID, gomock.Any()).Return(nil)
			m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(nil, storage.ErrNotFound)
			test.setupMocks(m)

			result, err := s.Check(context.Background(), &CheckCommand{Code: lic.Code, Email: "member@example.com"}, test.meta)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !result.Valid {
				t.Fatal("expected a valid result")
			}
			if test.wantOverrides {
				if enabled, ok := result.UserFeatureOverrides["export"]; !ok || enabled {
					t.Errorf("expected export to be overridden off, got %v", result.UserFeatureOverrides)
				}
			} else if result.UserFeatureOverrides != nil {
				t.Errorf("expected no overrides, got %v", result.UserFeatureOverrides)
			}
		})
	}
}

func TestServiceUpdateAddonsReplacesSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	lic := activeLicense()

	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "owner@example.com").Return(nil, storage.ErrNotFound)
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	m.storage.EXPECT().DeactivateAddons(gomock.Any(), lic.ID, gomock.Any()).Return(nil)
	m.storage.EXPECT().UpsertAddon(gomock.Any(), lic.ID, "geo", gomock.Any()).Return(nil)
	m.storage.EXPECT().UpsertAddon(gomock.Any(), lic.ID, "export", gomock.Any()).Return(nil)

	result, err := s.UpdateAddons(context.Background(), &UpdateAddonsCommand{
		Code:   lic.Code,
		Email:  "owner@example.com",
		Addons: []string{"geo", "export"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Addons) != 2 {
		t.Errorf("expected 2 addons, got %v", result.Addons)
	}
}

func TestServiceSyncCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	lic := activeLicense()
	name := "Acme Transport"
	lic.CompanyName = &name

	m.storage.EXPECT().GetLicenseByCode(gomock.Any(), lic.Code).Return(lic, nil)
	m.storage.EXPECT().GetMembership(gomock.Any(), lic.ID, "owner@example.com").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().TouchLicenseUsage(gomock.Any(), lic.ID, gomock.Any()).Return(nil)
	m.storage.EXPECT().CountActiveMembers(gomock.Any(), lic.ID).Return(int64(4), nil)

	result, err := s.SyncCompany(context.Background(), &SyncCompanyCommand{Code: lic.Code, Email: "owner@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.MemberCount != 4 {
		t.Errorf("expected 4 members, got %d", result.MemberCount)
	}
	if result.CompanyName == nil || *result.CompanyName != name {
		t.Errorf("expected company name %q, got %v", name, result.CompanyName)
	}
}

func TestServiceIssueToken(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		adminSecret string
		setupMocks  func(m *serviceMocks)
		expectedErr error
	}{
		{
			name:        "Success",
			secret:      "s3cret",
			adminSecret: "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.limiter.EXPECT().Check(gomock.Any(), "203.0.113.7", "issue-token").Return(ratelimit.Decision{Allowed: true}, nil)
				m.issuer.EXPECT().IssueToken(gomock.Any(), "admin@example.com").Return("signed-token", nil)
			},
		},
		{
			name:        "WrongSecret",
			secret:      "guess",
			adminSecret: "s3cret",
			setupMocks: func(m *serviceMocks) {
				m.limiter.EXPECT().Check(gomock.Any(), "203.0.113.7", "issue-token").Return(ratelimit.Decision{Allowed: true}, nil)
			},
			expectedErr: ErrUnauthorized,
		},
		{
			name:        "IssuanceDisabled",
			secret:      "anything",
			adminSecret: "",
			setupMocks: func(m *serviceMocks) {
				m.limiter.EXPECT().Check(gomock.Any(), "203.0.113.7", "issue-token").Return(ratelimit.Decision{Allowed: true}, nil)
			},
			expectedErr: ErrUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, Config{AdminSecret: test.adminSecret})
			test.setupMocks(m)

			token, err := s.IssueToken(
				context.Background(),
				&IssueTokenCommand{Email: "admin@example.com", Secret: test.secret},
				&RequestMeta{IPAddress: "203.0.113.7"},
			)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
			if test.expectedErr == nil && token != "signed-token" {
				t.Errorf("expected the issued token, got %q", token)
			}
		})
	}
}

func TestServiceBootstrapSession(t *testing.T) {
	signInErr := fmt.Errorf("invalid credentials")

	tests := []struct {
		name       string
		setupMocks func(m *serviceMocks)
		expected   *Session
	}{
		{
			name: "ExistingIdentitySignsIn",
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("id-1", "tok-1", nil)
			},
			expected: &Session{IdentityID: "id-1", Token: "tok-1"},
		},
		{
			name: "FreshIdentityIsProvisioned",
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("", "", signInErr)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "member@example.com", "CODE").Return("id-2", nil)
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("id-2", "tok-2", nil)
			},
			expected: &Session{IdentityID: "id-2", Token: "tok-2"},
		},
		{
			name: "RotatedCodeRepairsPassword",
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("", "", signInErr)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "member@example.com", "CODE").Return("", kratos.ErrIdentityExists)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "member@example.com").Return("id-3", nil)
				m.kratos.EXPECT().UpdatePassword(gomock.Any(), "id-3", "CODE").Return(nil)
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("id-3", "tok-3", nil)
			},
			expected: &Session{IdentityID: "id-3", Token: "tok-3"},
		},
		{
			name: "RetrySignInFailureStillYieldsIdentity",
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("", "", signInErr)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "member@example.com", "CODE").Return("id-4", nil)
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("", "", signInErr)
			},
			expected: &Session{IdentityID: "id-4"},
		},
		{
			name: "UnrecoverableProvisioningFailure",
			setupMocks: func(m *serviceMocks) {
				m.kratos.EXPECT().SignIn(gomock.Any(), "member@example.com", "CODE").Return("", "", signInErr)
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), "member@example.com", "CODE").Return("", fmt.Errorf("kratos is down"))
			},
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, Config{})
			test.setupMocks(m)

			session := s.bootstrapSession(context.Background(), "member@example.com", "CODE")
			switch {
			case test.expected == nil:
				if session != nil {
					t.Fatalf("expected no session, got %+v", session)
				}
			case session == nil:
				t.Fatal("expected a session, got nil")
			case *session != *test.expected:
				t.Errorf("expected %+v, got %+v", *test.expected, *session)
			}
		})
	}
}

func TestServiceLinkMembership(t *testing.T) {
	identityID := "identity-7"
	otherID := "identity-8"

	tests := []struct {
		name         string
		setupMocks   func(m *serviceMocks)
		expectedID   string
		expectedRole string
	}{
		{
			name: "AlreadyLinkedIsANoOp",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), "lic-1", identityID).Return(memberRow(&identityID), nil)
			},
			expectedID:   "mem-1",
			expectedRole: types.RoleMember,
		},
		{
			name: "ClaimedRowIsNeverRelinked",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), "lic-1", identityID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "member@example.com").Return(memberRow(&otherID), nil)
			},
			expectedID:   "mem-1",
			expectedRole: types.RoleMember,
		},
		{
			name: "InvitedRowGetsAttached",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), "lic-1", identityID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "member@example.com").Return(memberRow(nil), nil)
				m.storage.EXPECT().AttachIdentity(gomock.Any(), "mem-1", identityID).Return(true, nil)
			},
			expectedID:   "mem-1",
			expectedRole: types.RoleMember,
		},
		{
			name: "LostAttachRaceRereads",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), "lic-1", identityID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "member@example.com").Return(memberRow(nil), nil)
				m.storage.EXPECT().AttachIdentity(gomock.Any(), "mem-1", identityID).Return(false, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "member@example.com").Return(memberRow(&otherID), nil)
			},
			expectedID:   "mem-1",
			expectedRole: types.RoleMember,
		},
		{
			name: "ConcurrentInsertConverges",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), "lic-1", identityID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "member@example.com").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "member@example.com").Return(memberRow(&otherID), nil)
			},
			expectedID:   "mem-1",
			expectedRole: types.RoleMember,
		},
		{
			name: "OwnerEmailOnOwnedLicenseJoinsAsMember",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByIdentity(gomock.Any(), "lic-1", identityID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetMembership(gomock.Any(), "lic-1", "owner@example.com").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().HasOwner(gomock.Any(), "lic-1").Return(true, nil)
				m.storage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, mem *types.Membership) (*types.Membership, error) {
						created := *mem
						created.ID = "mem-2"
						return &created, nil
					},
				)
			},
			expectedID:   "mem-2",
			expectedRole: types.RoleMember,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl, Config{})
			test.setupMocks(m)

			email := "member@example.com"
			if test.name == "OwnerEmailOnOwnedLicenseJoinsAsMember" {
				email = "owner@example.com"
			}

			membership, err := s.linkMembership(context.Background(), activeLicense(), email, identityID)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if membership.ID != test.expectedID {
				t.Errorf("expected membership %q, got %q", test.expectedID, membership.ID)
			}
			if membership.Role != test.expectedRole {
				t.Errorf("expected role %q, got %q", test.expectedRole, membership.Role)
			}
		})
	}
}

func TestLicenseDataHonorsVisibility(t *testing.T) {
	first := "Ada"
	company := "Acme Transport"
	city := "Lyon"
	now := time.Now().UTC()

	lic := activeLicense()
	lic.FirstName = &first
	lic.CompanyName = &company
	lic.City = &city
	lic.ActivatedAt = &now
	lic.ShowUserInfo = true
	lic.ShowCompanyInfo = false
	lic.ShowAddressInfo = false
	lic.ShowLicenseInfo = true

	data := licenseData(lic)

	if data.FirstName == nil || *data.FirstName != first {
		t.Error("expected user info to be visible")
	}
	if data.CompanyName != nil {
		t.Error("expected company info to be hidden")
	}
	if data.City != nil {
		t.Error("expected address info to be hidden")
	}
	if data.ActivatedAt == nil {
		t.Error("expected license info to be visible")
	}
}
