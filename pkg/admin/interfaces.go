// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/canonical/org-service/internal/types"
)

type ServiceInterface interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

// RegistryInterface is the subset of the registry this package needs.
type RegistryInterface interface {
	GetAdminByEmail(ctx context.Context, email string) (*types.Admin, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
}

// TokenIssuerInterface mints access tokens for authenticated admins.
type TokenIssuerInterface interface {
	Issue(ctx context.Context, adminID, email, orgID, orgName string) (string, error)
}

// HasherInterface is the credential verification contract.
type HasherInterface interface {
	Verify(plain, hash string) bool
}
