// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"time"
)

// placeholderSecret ships in the example env file; refusing to boot with it
// keeps copy-pasted deployments from signing tokens with a public value.
const placeholderSecret = "change-me-please-32-characters!!"

const minSecretLength = 32

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel    string `envconfig:"log_level" default:"error"`
	Debug       bool   `envconfig:"debug" default:"false"`
	Environment string `envconfig:"environment" default:"development"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	JWTSecret       string `envconfig:"jwt_secret" required:"true"`
	JWTAlgorithm    string `envconfig:"jwt_algorithm" default:"HS256"`
	TokenTTLMinutes int    `envconfig:"token_ttl_minutes" default:"30"`

	RateLimitMax    int           `envconfig:"rate_limit_max" default:"60"`
	RateLimitWindow time.Duration `envconfig:"rate_limit_window" default:"1m"`
	RedisURL        string        `envconfig:"redis_url"`
}

// Validate enforces the constraints envconfig tags cannot express.
func (s *EnvSpec) Validate() error {
	if len(s.JWTSecret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	if s.JWTSecret == placeholderSecret {
		return fmt.Errorf("JWT_SECRET is set to the placeholder value, generate a real secret")
	}

	switch s.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported JWT_ALGORITHM %q", s.JWTAlgorithm)
	}

	if s.TokenTTLMinutes <= 0 {
		return fmt.Errorf("TOKEN_TTL_MINUTES must be positive")
	}

	if s.RateLimitMax <= 0 || s.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit capacity and window must be positive")
	}

	return nil
}
