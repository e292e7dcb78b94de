// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerNeverNil(t *testing.T) {
	for _, level := range []string{"debug", "error", "invalid"} {
		logger := NewLogger(level)
		if logger.Security() == nil {
			t.Fatalf("Security() returned nil for level %q", level)
		}
		// must not panic on any event
		logger.Security().AuthnFailure("user@example.com", "bad token")
		logger.Security().RateLimitExceeded("user@example.com", "validate_license")
	}
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	logger := NewNoopLogger()
	logger.Security().SystemStartup()
	logger.Security().SystemShutdown()
}
