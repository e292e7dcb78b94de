// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/license-service/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw token string and validates its claims.
	// Returns the admin claims if the token is valid, otherwise an error.
	VerifyToken(ctx context.Context, rawToken string) (*types.AdminClaims, error)
}

type TokenIssuerInterface interface {
	// IssueToken mints a signed admin token for the given email.
	IssueToken(ctx context.Context, email string) (string, error)
}
