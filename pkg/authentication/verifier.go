// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
)

var (
	ErrVerifierDisabled = errors.New("admin token verification is not configured")
	ErrInvalidToken     = errors.New("invalid admin token")
	ErrTokenExpired     = errors.New("admin token expired")
	ErrNotAdmin         = errors.New("token does not carry the admin role")
)

// HMACVerifier checks HS256 admin tokens against a shared secret. With no
// secret configured every token is rejected.
type HMACVerifier struct {
	secret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewHMACVerifier(secret string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *HMACVerifier {
	v := new(HMACVerifier)
	v.secret = []byte(secret)
	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger
	return v
}

// VerifyToken checks the signature before touching the payload, so claims are
// only ever decoded from authenticated bytes.
func (v *HMACVerifier) VerifyToken(ctx context.Context, rawToken string) (*types.AdminClaims, error) {
	_, span := v.tracer.Start(ctx, "authentication.HMACVerifier.VerifyToken")
	defer span.End()

	if len(v.secret) == 0 {
		return nil, ErrVerifierDisabled
	}

	parts := strings.Split(rawToken, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(parts[0] + "." + parts[1]))
	expected := mac.Sum(nil)

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !hmac.Equal(signature, expected) {
		return nil, ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims types.AdminClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: malformed claims", ErrInvalidToken)
	}

	if claims.ExpiresAt <= time.Now().Unix() {
		return nil, ErrTokenExpired
	}

	if claims.Role != "admin" {
		v.logger.Security().AuthzFailure(claims.Email, "admin")
		return nil, ErrNotAdmin
	}

	return &claims, nil
}
