// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit-style events for security-relevant
// transitions. It intentionally logs identifiers, never credentials.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.l.Info("authentication success",
		zap.String("event", "authn_success"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthnFailure(subject string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_failure"),
		zap.String("subject", subject),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) RateLimited(key string) {
	s.l.Warn("rate limit exceeded",
		zap.String("event", "rate_limited"),
		zap.String("key", key),
	)
}
