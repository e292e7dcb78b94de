// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
)

var ErrUnauthorized = errors.New("no valid admin credential presented")

const (
	StrategyBearer      = "bearer"
	StrategyBodyToken   = "body_token"
	StrategyLegacyEmail = "legacy_email"
)

// Actor identifies the verified admin behind a request and which credential
// strategy authenticated them.
type Actor struct {
	Email    string
	Strategy string
}

// Resolver authenticates admin requests by trying credentials in a fixed
// order: Authorization header, token in the request body, then the legacy
// allow-list of admin emails.
type Resolver struct {
	verifier    TokenVerifierInterface
	adminEmails map[string]bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(verifier TokenVerifierInterface, adminEmails []string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)
	r.verifier = verifier
	r.adminEmails = make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			r.adminEmails[email] = true
		}
	}
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger
	return r
}

// Resolve returns the admin actor for the given credentials, or
// ErrUnauthorized when none of the strategies accepts them. A failed strategy
// never short-circuits the weaker ones behind it.
func (r *Resolver) Resolve(ctx context.Context, authorizationHeader, bodyToken, email string) (*Actor, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.Resolver.Resolve")
	defer span.End()

	if token, ok := BearerToken(authorizationHeader); ok {
		if claims, err := r.verifier.VerifyToken(ctx, token); err == nil {
			r.logger.Security().AuthnSuccess(claims.Email, StrategyBearer)
			return &Actor{Email: claims.Email, Strategy: StrategyBearer}, nil
		} else {
			r.logger.Debugf("bearer token rejected: %v", err)
		}
	}

	if bodyToken != "" {
		if claims, err := r.verifier.VerifyToken(ctx, bodyToken); err == nil {
			r.logger.Security().AuthnSuccess(claims.Email, StrategyBodyToken)
			return &Actor{Email: claims.Email, Strategy: StrategyBodyToken}, nil
		} else {
			r.logger.Debugf("body token rejected: %v", err)
		}
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized != "" && r.adminEmails[normalized] {
		r.logger.Security().AuthnSuccess(normalized, StrategyLegacyEmail)
		return &Actor{Email: normalized, Strategy: StrategyLegacyEmail}, nil
	}

	r.logger.Security().AuthnFailure(normalized, "no strategy accepted the credentials")
	return nil, ErrUnauthorized
}

// BearerToken extracts the token from an Authorization header.
func BearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
