// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"errors"

	"github.com/canonical/license-service/internal/kratos"
)

// bootstrapSession lazily provisions the identity behind an email, with the
// license code acting as the password. It never fails validation: any
// unrecoverable outcome returns nil and the caller carries on without a
// session.
//
// The chain is sign-in, then create, then repair. Creation conflicts are
// handled through the identity provider's own uniqueness guarantee, so two
// concurrent first sign-ins for the same email converge on one identity.
func (s *Service) bootstrapSession(ctx context.Context, email, code string) *Session {
	ctx, span := s.tracer.Start(ctx, "license.Service.bootstrapSession")
	defer span.End()

	identityID, token, err := s.kratos.SignIn(ctx, email, code)
	if err == nil {
		return &Session{IdentityID: identityID, Token: token}
	}
	s.logger.Debugf("initial sign-in failed for %s: %v", email, err)

	identityID, err = s.kratos.CreateIdentity(ctx, email, code)
	if err == nil {
		return s.signInAfterProvisioning(ctx, email, code, identityID)
	}

	if !errors.Is(err, kratos.ErrIdentityExists) {
		s.logger.Warnf("failed to provision identity for %s: %v", email, err)
		return nil
	}

	// The identity predates this code: most likely the code was rotated
	// after the password was set. Force the password to the current code
	// and retry once.
	identityID, err = s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil || identityID == "" {
		s.logger.Warnf("failed to look up existing identity for %s: %v", email, err)
		return nil
	}

	if err := s.kratos.UpdatePassword(ctx, identityID, code); err != nil {
		s.logger.Warnf("failed to update password for identity %s: %v", identityID, err)
		return nil
	}

	return s.signInAfterProvisioning(ctx, email, code, identityID)
}

// signInAfterProvisioning trades fresh credentials for a session token. The
// identity already exists at this point, so even a failed sign-in still
// yields a usable identity reference.
func (s *Service) signInAfterProvisioning(ctx context.Context, email, code, identityID string) *Session {
	id, token, err := s.kratos.SignIn(ctx, email, code)
	if err != nil {
		s.logger.Warnf("post-provisioning sign-in failed for %s: %v", email, err)
		return &Session{IdentityID: identityID}
	}
	return &Session{IdentityID: id, Token: token}
}
