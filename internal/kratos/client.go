// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
)

// ErrIdentityExists is returned when creating an identity whose email is
// already registered.
var ErrIdentityExists = errors.New("identity already exists")

type Client struct {
	admin   *ory.APIClient
	public  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL, kratosPublicURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	adminConf := ory.NewConfiguration()
	adminConf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}

	publicConf := ory.NewConfiguration()
	publicConf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}

	return &Client{
		admin:   ory.NewAPIClient(adminConf),
		public:  ory.NewAPIClient(publicConf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// List identities with credentials_identifier filter (email)
	// This is the standard way to search by email in Kratos Admin API
	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	// TODO: remove
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil // Not found
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	// Assuming uniqueness of email
	return ids[0].Id, nil
}

// CreateIdentity registers a new identity with a password credential and a
// pre-verified email address, so the account is usable without a confirmation
// round-trip. Returns ErrIdentityExists on email conflicts.
func (c *Client) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	body := ory.CreateIdentityBody{
		SchemaId: "default",
		Traits: map[string]interface{}{
			"email": email,
		},
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
		VerifiableAddresses: []ory.VerifiableIdentityAddress{
			{Value: email, Via: "email", Verified: true, Status: "completed"},
		},
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return "", ErrIdentityExists
		}
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

// UpdatePassword replaces the password credential of an existing identity,
// keeping its traits intact.
func (c *Client) UpdatePassword(ctx context.Context, identityID, password string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.UpdatePassword")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, identityID).Execute()
	if err != nil {
		return fmt.Errorf("failed to get identity: %w", err)
	}

	body, err := passwordUpdateBody(identity, password)
	if err != nil {
		return err
	}

	if _, _, err := c.admin.IdentityAPI.UpdateIdentity(ctx, identityID).UpdateIdentityBody(body).Execute(); err != nil {
		return fmt.Errorf("failed to update identity: %w", err)
	}

	return nil
}

// passwordUpdateBody builds the full-identity update that swaps the password
// credential while keeping traits and the active state.
func passwordUpdateBody(identity *ory.Identity, password string) (ory.UpdateIdentityBody, error) {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return ory.UpdateIdentityBody{}, fmt.Errorf("unexpected traits shape for identity %s", identity.Id)
	}

	return ory.UpdateIdentityBody{
		SchemaId: identity.SchemaId,
		Traits:   traits,
		State:    "active",
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
	}, nil
}

// SignIn performs a native password login through the public self-service API
// and returns the identity ID and session token.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.SignIn")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowBody{
		UpdateLoginFlowWithPasswordMethod: &ory.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: email,
			Password:   password,
		},
	}

	login, _, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(body).
		Execute()
	if err != nil {
		return "", "", fmt.Errorf("login failed: %w", err)
	}

	token := ""
	if login.SessionToken != nil {
		token = *login.SessionToken
	}

	identityID, err := sessionIdentityID(&login.Session)
	if err != nil {
		return "", "", err
	}

	return identityID, token, nil
}

// GetIdentityIDBySession resolves a session token to its identity ID through
// the public whoami endpoint. An invalid or expired token is an error.
func (c *Client) GetIdentityIDBySession(ctx context.Context, sessionToken string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDBySession")
	defer span.End()

	session, _, err := c.public.FrontendAPI.ToSession(ctx).XSessionToken(sessionToken).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}

	return sessionIdentityID(session)
}

// sessionIdentityID guards the optional identity on a session. The generated
// client leaves it nil when the server omits it.
func sessionIdentityID(session *ory.Session) (string, error) {
	if session == nil || session.Identity == nil {
		return "", errors.New("session carries no identity")
	}
	return session.Identity.Id, nil
}
