// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/internal/types"
	"github.com/canonical/license-service/pkg/authentication"
)

func newTestRecorder(ctrl *gomock.Controller) (*Recorder, *MockrecorderStore) {
	store := NewMockrecorderStore(ctrl)
	return NewRecorder(store, tracing.NewNoopTracer(), logging.NewNoopLogger()), store
}

func TestRecorderAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, store := newTestRecorder(ctrl)
	actor := &authentication.Actor{Email: "admin@example.com"}
	meta := &RequestMeta{IPAddress: "203.0.113.7"}

	store.EXPECT().AppendAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e *types.AuditEntry) error {
			if e.ActorEmail != "admin@example.com" {
				t.Errorf("expected the actor email, got %q", e.ActorEmail)
			}
			if e.TargetType == nil || *e.TargetType != "license" {
				t.Errorf("expected target type license, got %v", e.TargetType)
			}
			if e.IPAddress != "203.0.113.7" {
				t.Errorf("expected the request IP, got %q", e.IPAddress)
			}
			return nil
		},
	)

	r.Audit(context.Background(), actor, "delete-license", "license", "lic-1", nil, meta)
}

func TestRecorderSwallowsStoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, store := newTestRecorder(ctrl)

	store.EXPECT().AppendAuditEntry(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))
	store.EXPECT().AppendLoginEntry(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))

	// Neither call may panic or surface the error.
	r.Audit(context.Background(), nil, "create-license", "", "", nil, nil)
	r.Login(context.Background(), "member@example.com", "lic-1", nil, true)
}

func TestRecorderLoginStampsDeviceType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, store := newTestRecorder(ctrl)
	meta := &RequestMeta{
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148",
	}

	store.EXPECT().AppendLoginEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e *types.LoginEntry) error {
			if e.DeviceType != "mobile" {
				t.Errorf("expected mobile, got %q", e.DeviceType)
			}
			if !e.Success {
				t.Error("expected a successful login entry")
			}
			return nil
		},
	)

	r.Login(context.Background(), "member@example.com", "lic-1", meta, true)
}

func TestDeviceType(t *testing.T) {
	tests := []struct {
		userAgent string
		expected  string
	}{
		{"", "unknown"},
		{"Mozilla/5.0 (iPad; CPU OS 17_0) Mobile/15E148", "tablet"},
		{"Mozilla/5.0 (Linux; Android 14; Tablet)", "tablet"},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", "mobile"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "desktop"},
	}

	for _, test := range tests {
		if got := deviceType(test.userAgent); got != test.expected {
			t.Errorf("deviceType(%q) = %q, expected %q", test.userAgent, got, test.expected)
		}
	}
}
