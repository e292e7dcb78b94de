// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
)

// HMACIssuer mints HS256 admin tokens compatible with HMACVerifier.
type HMACIssuer struct {
	secret   []byte
	lifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewHMACIssuer(secret string, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *HMACIssuer {
	i := new(HMACIssuer)
	i.secret = []byte(secret)
	i.lifetime = lifetime
	i.tracer = tracer
	i.monitor = monitor
	i.logger = logger
	return i
}

func (i *HMACIssuer) IssueToken(ctx context.Context, email string) (string, error) {
	_, span := i.tracer.Start(ctx, "authentication.HMACIssuer.IssueToken")
	defer span.End()

	if len(i.secret) == 0 {
		return "", ErrVerifierDisabled
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(i.lifetime).Unix(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}

	return signed, nil
}
