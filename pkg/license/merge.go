// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

// MergeCompanies migrates each source license into the target. Sources are
// processed sequentially, each inside its own transaction, so one failed
// source rolls back completely without undoing sources already merged. The
// per-table counters in the report make a partial run diagnosable.
func (s *Service) MergeCompanies(ctx context.Context, cmd *MergeCompaniesCommand, actor *authentication.Actor, meta *RequestMeta) (*MergeReport, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.MergeCompanies")
	defer span.End()

	target, err := s.storage.GetLicenseByID(ctx, cmd.TargetLicenseID)
	if err != nil {
		return nil, err
	}

	report := &MergeReport{TargetLicenseID: target.ID}

	for _, sourceID := range cmd.SourceLicenseIDs {
		sourceReport := s.mergeSource(ctx, target, sourceID)
		report.Sources = append(report.Sources, sourceReport)
	}

	s.recorder.Audit(ctx, actor, "merge-companies", "license", target.ID, map[string]interface{}{
		"targetCode": target.Code,
		"sources":    cmd.SourceLicenseIDs,
		"report":     report,
	}, meta)

	return report, nil
}

func (s *Service) mergeSource(ctx context.Context, target *types.License, sourceID string) *SourceMergeReport {
	report := &SourceMergeReport{
		SourceLicenseID: sourceID,
		RecordsMoved:    make(map[string]int64, len(storage.RecordTables)),
	}

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		source, err := s.storage.GetLicenseByID(ctx, sourceID)
		if err != nil {
			return err
		}

		moved, err := s.storage.ReassignMembers(ctx, source.ID, target.ID)
		if err != nil {
			return fmt.Errorf("failed to move members: %w", err)
		}
		report.MembersMoved = moved

		for _, table := range storage.RecordTables {
			n, err := s.storage.ReassignRecords(ctx, table, source.ID, target.ID)
			if err != nil {
				return fmt.Errorf("failed to move %s: %w", table, err)
			}
			report.RecordsMoved[table] = n
		}

		// The source stays resolvable by its code as a dead alias.
		note := fmt.Sprintf("merged into %s at %s", target.Code, time.Now().UTC().Format(time.RFC3339))
		if err := s.storage.DeactivateLicenseWithNote(ctx, source.ID, note); err != nil {
			return fmt.Errorf("failed to deactivate source: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Errorf("merge of %s into %s failed: %v", sourceID, target.ID, err)
		report.Error = err.Error()
		return report
	}

	report.Completed = true
	return report
}

// DetectDuplicates groups licenses by their whitespace-normalized SIREN.
// Matching is exact: fuzzy company-name heuristics produce too many false
// merge candidates to be worth surfacing.
func (s *Service) DetectDuplicates(ctx context.Context) ([]*types.DuplicateGroup, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.DetectDuplicates")
	defer span.End()

	licenses, err := s.storage.ListLicensesWithSiren(ctx)
	if err != nil {
		return nil, err
	}

	bySiren := make(map[string][]*types.License)
	var order []string
	for _, lic := range licenses {
		siren := normalizeSiren(lic.Siren)
		if siren == "" {
			continue
		}
		if _, seen := bySiren[siren]; !seen {
			order = append(order, siren)
		}
		bySiren[siren] = append(bySiren[siren], lic)
	}

	var groups []*types.DuplicateGroup
	for _, siren := range order {
		group := bySiren[siren]
		if len(group) < 2 {
			continue
		}

		details := make([]*types.LicenseDetails, 0, len(group))
		for _, lic := range group {
			d, err := s.licenseDetails(ctx, lic)
			if err != nil {
				return nil, err
			}
			details = append(details, d)
		}

		groups = append(groups, &types.DuplicateGroup{Siren: siren, Licenses: details})
	}

	return groups, nil
}

func normalizeSiren(siren *string) string {
	if siren == nil {
		return ""
	}
	return strings.Join(strings.Fields(*siren), "")
}
