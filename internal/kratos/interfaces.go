// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	ory "github.com/ory/client-go"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, password string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	UpdatePassword(ctx context.Context, identityID, password string) error
	SignIn(ctx context.Context, email, password string) (string, string, error)
	GetIdentityIDBySession(ctx context.Context, sessionToken string) (string, error)
}
