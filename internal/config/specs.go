// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL  string `envconfig:"kratos_admin_url" required:"true"`
	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`

	// AdminTokenSecret signs and verifies admin tokens; AdminSharedSecret is
	// the pre-shared secret exchanged for one. Leaving either empty disables
	// the corresponding path.
	AdminTokenSecret  string   `envconfig:"admin_token_secret"`
	AdminSharedSecret string   `envconfig:"admin_shared_secret"`
	AdminEmails       []string `envconfig:"admin_emails"`

	TokenLifetime time.Duration `envconfig:"token_lifetime" default:"24h"`

	RateLimitMaxAttempts int           `envconfig:"rate_limit_max_attempts" default:"5"`
	RateLimitWindow      time.Duration `envconfig:"rate_limit_window" default:"15m"`

	SandboxCodePrefix string `envconfig:"sandbox_code_prefix" default:"DEMO"`
	SandboxEmail      string `envconfig:"sandbox_email" default:"demo@example.com"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
