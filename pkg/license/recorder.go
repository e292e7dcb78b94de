// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"strings"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

type RecorderInterface interface {
	Audit(ctx context.Context, actor *authentication.Actor, action, targetType, targetID string, details map[string]interface{}, meta *RequestMeta)
	Login(ctx context.Context, email, licenseID string, meta *RequestMeta, success bool)
}

type recorderStore interface {
	AppendAuditEntry(ctx context.Context, e *types.AuditEntry) error
	AppendLoginEntry(ctx context.Context, e *types.LoginEntry) error
}

// Recorder appends audit and login history rows. All writes are best-effort:
// a failed append is logged and swallowed, never surfacing to the caller.
type Recorder struct {
	store recorderStore

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewRecorder(store recorderStore, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Recorder {
	return &Recorder{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

func (r *Recorder) Audit(ctx context.Context, actor *authentication.Actor, action, targetType, targetID string, details map[string]interface{}, meta *RequestMeta) {
	ctx, span := r.tracer.Start(ctx, "license.Recorder.Audit")
	defer span.End()

	entry := &types.AuditEntry{
		Action:  action,
		Details: details,
	}
	if actor != nil {
		entry.ActorEmail = actor.Email
	}
	if targetType != "" {
		entry.TargetType = &targetType
	}
	if targetID != "" {
		entry.TargetID = &targetID
	}
	if meta != nil {
		entry.IPAddress = meta.IPAddress
	}

	if err := r.store.AppendAuditEntry(ctx, entry); err != nil {
		r.logger.Errorf("failed to append audit entry for %s: %v", action, err)
	}
}

func (r *Recorder) Login(ctx context.Context, email, licenseID string, meta *RequestMeta, success bool) {
	ctx, span := r.tracer.Start(ctx, "license.Recorder.Login")
	defer span.End()

	entry := &types.LoginEntry{
		Email:     email,
		LicenseID: licenseID,
		Success:   success,
	}
	if meta != nil {
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
		entry.DeviceType = deviceType(meta.UserAgent)
	}

	if err := r.store.AppendLoginEntry(ctx, entry); err != nil {
		r.logger.Errorf("failed to append login entry for %s: %v", email, err)
	}
}

// deviceType is a coarse classification, just enough for the login history
// view. Tablets match before mobiles because tablet user agents usually carry
// both markers.
func deviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return "unknown"
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		return "tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "mobile"
	default:
		return "desktop"
	}
}
