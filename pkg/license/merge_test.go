// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

func sourceLicense(id string) *types.License {
	return &types.License{
		ID:         id,
		Code:       "SRC-" + strings.ToUpper(id),
		OwnerEmail: id + "@example.com",
		IsActive:   true,
		PlanType:   types.PlanStart,
	}
}

func passthroughTx(m *serviceMocks) *gomock.Call {
	return m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestServiceMergeCompanies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	actor := &authentication.Actor{Email: "admin@example.com"}
	meta := &RequestMeta{IPAddress: "203.0.113.7"}
	target := activeLicense()

	m.storage.EXPECT().GetLicenseByID(gomock.Any(), target.ID).Return(target, nil)

	passthroughTx(m)
	m.storage.EXPECT().GetLicenseByID(gomock.Any(), "src-1").Return(sourceLicense("src-1"), nil)
	m.storage.EXPECT().ReassignMembers(gomock.Any(), "src-1", target.ID).Return(int64(3), nil)
	for _, table := range storage.RecordTables {
		m.storage.EXPECT().ReassignRecords(gomock.Any(), table, "src-1", target.ID).Return(int64(1), nil)
	}
	m.storage.EXPECT().DeactivateLicenseWithNote(gomock.Any(), "src-1", gomock.Any()).DoAndReturn(
		func(ctx context.Context, id, note string) error {
			if !strings.Contains(note, target.Code) {
				t.Errorf("expected the note to reference the target code, got %q", note)
			}
			return nil
		},
	)

	m.recorder.EXPECT().Audit(gomock.Any(), actor, "merge-companies", "license", target.ID, gomock.Any(), meta)

	report, err := s.MergeCompanies(context.Background(), &MergeCompaniesCommand{
		TargetLicenseID:  target.ID,
		SourceLicenseIDs: []string{"src-1"},
	}, actor, meta)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(report.Sources) != 1 {
		t.Fatalf("expected 1 source report, got %d", len(report.Sources))
	}
	src := report.Sources[0]
	if !src.Completed {
		t.Fatalf("expected the source merge to complete, got error %q", src.Error)
	}
	if src.MembersMoved != 3 {
		t.Errorf("expected 3 members moved, got %d", src.MembersMoved)
	}
	if len(src.RecordsMoved) != len(storage.RecordTables) {
		t.Errorf("expected counters for %d tables, got %d", len(storage.RecordTables), len(src.RecordsMoved))
	}
}

func TestServiceMergeCompaniesOneSourceFailsOthersSurvive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})
	target := activeLicense()

	m.storage.EXPECT().GetLicenseByID(gomock.Any(), target.ID).Return(target, nil)

	// First source fails mid-flight; its transaction returns the error.
	passthroughTx(m)
	m.storage.EXPECT().GetLicenseByID(gomock.Any(), "src-1").Return(sourceLicense("src-1"), nil)
	m.storage.EXPECT().ReassignMembers(gomock.Any(), "src-1", target.ID).Return(int64(0), fmt.Errorf("connection reset"))

	// Second source completes.
	passthroughTx(m)
	m.storage.EXPECT().GetLicenseByID(gomock.Any(), "src-2").Return(sourceLicense("src-2"), nil)
	m.storage.EXPECT().ReassignMembers(gomock.Any(), "src-2", target.ID).Return(int64(1), nil)
	for _, table := range storage.RecordTables {
		m.storage.EXPECT().ReassignRecords(gomock.Any(), table, "src-2", target.ID).Return(int64(0), nil)
	}
	m.storage.EXPECT().DeactivateLicenseWithNote(gomock.Any(), "src-2", gomock.Any()).Return(nil)

	m.recorder.EXPECT().Audit(gomock.Any(), nil, "merge-companies", "license", target.ID, gomock.Any(), gomock.Any())

	report, err := s.MergeCompanies(context.Background(), &MergeCompaniesCommand{
		TargetLicenseID:  target.ID,
		SourceLicenseIDs: []string{"src-1", "src-2"},
	}, nil, &RequestMeta{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Sources[0].Completed {
		t.Error("expected the first source merge to fail")
	}
	if report.Sources[0].Error == "" {
		t.Error("expected an error message on the failed source")
	}
	if !report.Sources[1].Completed {
		t.Error("expected the second source merge to complete")
	}
}

func TestServiceDetectDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl, Config{})

	siren1 := "123 456 789"
	siren1b := "123456789"
	siren2 := "987654321"
	a := sourceLicense("lic-a")
	a.Siren = &siren1
	b := sourceLicense("lic-b")
	b.Siren = &siren1b
	c := sourceLicense("lic-c")
	c.Siren = &siren2

	m.storage.EXPECT().ListLicensesWithSiren(gomock.Any()).Return([]*types.License{a, b, c}, nil)
	for _, lic := range []*types.License{a, b} {
		m.storage.EXPECT().GetFeatureSet(gomock.Any(), lic.ID).Return(nil, storage.ErrNotFound)
		m.storage.EXPECT().CountMembers(gomock.Any(), lic.ID).Return(int64(1), nil)
	}

	groups, err := s.DetectDuplicates(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 duplicate group, got %d", len(groups))
	}
	if groups[0].Siren != "123456789" {
		t.Errorf("expected normalized siren 123456789, got %q", groups[0].Siren)
	}
	if len(groups[0].Licenses) != 2 {
		t.Errorf("expected 2 licenses in the group, got %d", len(groups[0].Licenses))
	}
}

func TestNormalizeSiren(t *testing.T) {
	spaced := " 123 456\t789 "
	if got := normalizeSiren(&spaced); got != "123456789" {
		t.Errorf("expected 123456789, got %q", got)
	}
	if got := normalizeSiren(nil); got != "" {
		t.Errorf("expected empty string for nil siren, got %q", got)
	}
}
