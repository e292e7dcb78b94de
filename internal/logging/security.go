// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit-grade events on a dedicated zap core.
// These are operational signals, separate from the persisted audit log.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnSuccess(subject, strategy string) {
	s.l.Info("authentication succeeded",
		zap.String("event", "authn_success"),
		zap.String("subject", subject),
		zap.String("strategy", strategy),
	)
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failed",
		zap.String("event", "authn_failure"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization denied",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) RateLimitExceeded(identifier, action string) {
	s.l.Warn("rate limit exceeded",
		zap.String("event", "rate_limit_exceeded"),
		zap.String("identifier", identifier),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("service starting", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("service stopping", zap.String("event", "system_shutdown"))
}
