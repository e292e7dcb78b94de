// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"errors"
	"testing"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name          string
		req           *Request
		expectedName  string
		expectedAdmin bool
		expectedErr   error
	}{
		{
			name:         "EmptyActionDefaultsToValidate",
			req:          &Request{LicenseCode: "abcd-efgh", Email: "User@Example.COM"},
			expectedName: "validate",
		},
		{
			name:        "ValidateWithoutCredentials",
			req:         &Request{Action: "validate"},
			expectedErr: ErrBadRequest,
		},
		{
			name:         "Check",
			req:          &Request{Action: "check", LicenseCode: "abcd", Email: "u@example.com"},
			expectedName: "check",
		},
		{
			name:         "UpdateAddons",
			req:          &Request{Action: "update-addons", LicenseCode: "abcd", Email: "u@example.com", Addons: []string{"geo"}},
			expectedName: "update-addons",
		},
		{
			name:          "ListAll",
			req:           &Request{Action: "list-all"},
			expectedName:  "list-all",
			expectedAdmin: true,
		},
		{
			name:        "CreateLicenseWithoutOwner",
			req:         &Request{Action: "create-license"},
			expectedErr: ErrBadRequest,
		},
		{
			name:        "CreateLicenseInvalidOwnerEmail",
			req:         &Request{Action: "create-license", OwnerEmail: "not-an-email"},
			expectedErr: ErrBadRequest,
		},
		{
			name:          "CreateLicense",
			req:           &Request{Action: "create-license", OwnerEmail: "Owner@Example.com", Plan: "pro"},
			expectedName:  "create-license",
			expectedAdmin: true,
		},
		{
			name:        "UpdateLicenseWithoutID",
			req:         &Request{Action: "update-license", Updates: map[string]interface{}{"city": "Lyon"}},
			expectedErr: ErrBadRequest,
		},
		{
			name:        "UpdatePlanUnknownPlan",
			req:         &Request{Action: "update-plan", LicenseID: "lic-1", Plan: "platinum"},
			expectedErr: ErrBadRequest,
		},
		{
			name:          "UpdatePlan",
			req:           &Request{Action: "update-plan", LicenseID: "lic-1", Plan: "enterprise"},
			expectedName:  "update-plan",
			expectedAdmin: true,
		},
		{
			name:        "SelfMergeRejected",
			req:         &Request{Action: "merge-companies", TargetLicenseID: "lic-1", SourceLicenseIDs: []string{"lic-2", "lic-1"}},
			expectedErr: ErrBadRequest,
		},
		{
			name:          "MergeCompanies",
			req:           &Request{Action: "merge-companies", TargetLicenseID: "lic-1", SourceLicenseIDs: []string{"lic-2"}},
			expectedName:  "merge-companies",
			expectedAdmin: true,
		},
		{
			name:        "GetUserStatsWithoutEmail",
			req:         &Request{Action: "get-user-stats", LicenseID: "lic-1"},
			expectedErr: ErrBadRequest,
		},
		{
			name:          "GetLoginHistory",
			req:           &Request{Action: "get-login-history", UserEmail: "u@example.com"},
			expectedName:  "get-login-history",
			expectedAdmin: true,
		},
		{
			name:         "IssueTokenIsNotAnAdminCommand",
			req:          &Request{Action: "issue-token", Email: "admin@example.com", Secret: "s3cret"},
			expectedName: "issue-token",
		},
		{
			name:        "IssueTokenWithoutSecret",
			req:         &Request{Action: "issue-token", Email: "admin@example.com"},
			expectedErr: ErrBadRequest,
		},
		{
			name:        "UnknownAction",
			req:         &Request{Action: "drop-tables"},
			expectedErr: ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmd, err := DecodeCommand(test.req)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cmd.Name() != test.expectedName {
				t.Errorf("expected command %q, got %q", test.expectedName, cmd.Name())
			}
			if cmd.RequiresAdmin() != test.expectedAdmin {
				t.Errorf("expected RequiresAdmin=%v for %q", test.expectedAdmin, cmd.Name())
			}
		})
	}
}

func TestDecodeCommandNormalizesCredentials(t *testing.T) {
	cmd, err := DecodeCommand(&Request{LicenseCode: "  abcd-efgh ", Email: " User@Example.COM "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	validate, ok := cmd.(*ValidateCommand)
	if !ok {
		t.Fatalf("expected a validate command, got %T", cmd)
	}
	if validate.Code != "ABCD-EFGH" {
		t.Errorf("expected the code to be uppercased and trimmed, got %q", validate.Code)
	}
	if validate.Email != "user@example.com" {
		t.Errorf("expected the email to be lowercased and trimmed, got %q", validate.Email)
	}
}

func TestLimitOrDefault(t *testing.T) {
	tests := []struct {
		in       uint64
		expected uint64
	}{
		{0, defaultHistoryLimit},
		{50, 50},
		{1000, 1000},
		{5000, defaultHistoryLimit},
	}

	for _, test := range tests {
		if got := limitOrDefault(test.in); got != test.expected {
			t.Errorf("limitOrDefault(%d) = %d, expected %d", test.in, got, test.expected)
		}
	}
}
