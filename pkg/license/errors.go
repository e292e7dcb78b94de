// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"errors"
	"fmt"
)

// The three resolution failures are distinct so callers can tell a mistyped
// code from an email that simply is not entitled to it.
var (
	ErrLicenseNotFound = errors.New("license not found")
	ErrNotEntitled     = errors.New("this email is not authorized for this license")
	ErrInactive        = errors.New("license or membership is inactive")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrBadRequest      = errors.New("malformed request")
)

// RateLimitedError carries the whole seconds the caller must wait before
// retrying.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many attempts, try again in %d seconds", e.RetryAfter)
}
