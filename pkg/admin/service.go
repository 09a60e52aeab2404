// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/storage"
	"github.com/canonical/org-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	registry RegistryInterface
	hasher   HasherInterface
	tokens   TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	registry RegistryInterface,
	hasher HasherInterface,
	tokens TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry: registry,
		hasher:   hasher,
		tokens:   tokens,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// dummyHash is a well-formed bcrypt digest compared against when the email is
// unknown, so that path costs a hash verification too.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login verifies the admin's credentials and mints an access token. Unknown
// emails and wrong passwords each cost one bcrypt comparison and fail with
// the same error, so the two cases are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.Login")
	defer span.End()

	a, err := s.registry.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.hasher.Verify(password, dummyHash)
			s.logger.Security().AuthnFailure(email)
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if !s.hasher.Verify(password, a.PasswordHash) {
		s.logger.Security().AuthnFailure(email)
		return nil, ErrUnauthorized
	}

	org, err := s.registry.GetOrganizationByID(ctx, a.OrganizationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Dangling organization reference; the account is unusable, not
			// a server fault.
			s.logger.Warnf("admin %s references missing organization %s", a.Email, a.OrganizationID)
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	token, err := s.tokens.Issue(ctx, a.ID, a.Email, org.ID, org.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(email)

	return &LoginResult{
		Token:            token,
		AdminEmail:       a.Email,
		OrganizationName: org.Name,
		OrganizationID:   org.ID,
	}, nil
}
