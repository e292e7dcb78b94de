// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/types"
)

// linkMembership idempotently binds an identity to a membership row on the
// license. Once bound, the identity-to-membership link is permanent; the
// attach step is a single conditional update in storage, so two concurrent
// first sign-ins for the same invited email cannot both claim the row.
func (s *Service) linkMembership(ctx context.Context, lic *types.License, email, identityID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "license.Service.linkMembership")
	defer span.End()

	if existing, err := s.storage.GetMembershipByIdentity(ctx, lic.ID, identityID); err == nil {
		return existing, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	membership, err := s.storage.GetMembership(ctx, lic.ID, email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if membership != nil {
		if membership.IdentityID != nil {
			// Row is claimed by another identity; never re-link.
			return membership, nil
		}
		attached, err := s.storage.AttachIdentity(ctx, membership.ID, identityID)
		if err != nil {
			return nil, err
		}
		if !attached {
			// Lost the race to a concurrent first sign-in. Re-read to
			// report whatever won.
			return s.storage.GetMembership(ctx, lic.ID, email)
		}
		membership.IdentityID = &identityID
		return membership, nil
	}

	role, err := s.roleForNewMember(ctx, lic, email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.storage.CreateMembership(ctx, &types.Membership{
		LicenseID:  lic.ID,
		IdentityID: &identityID,
		Email:      email,
		Role:       role,
		IsActive:   true,
		AcceptedAt: &now,
	})
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			// Concurrent insert for the same email; the other writer's
			// row is the membership now.
			return s.storage.GetMembership(ctx, lic.ID, email)
		}
		return nil, err
	}

	return created, nil
}

// roleForNewMember grants owner only to the license's owner email, and only
// while no owner membership exists yet.
func (s *Service) roleForNewMember(ctx context.Context, lic *types.License, email string) (string, error) {
	if email != NormalizeEmail(lic.OwnerEmail) {
		return types.RoleMember, nil
	}

	hasOwner, err := s.storage.HasOwner(ctx, lic.ID)
	if err != nil {
		return "", err
	}
	if hasOwner {
		return types.RoleMember, nil
	}
	return types.RoleOwner, nil
}
