// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/org-service/internal/types"
)

// RegistryInterface is the master record set of organizations and admins.
// No cross-collection invariant is enforced here; callers order their calls
// to approximate atomicity.
type RegistryInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, id string, fields map[string]any) error
	DeleteOrganizationByName(ctx context.Context, name string) error

	CreateAdmin(ctx context.Context, a *types.Admin) (*types.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*types.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*types.Admin, error)
	UpdateAdminByEmail(ctx context.Context, email string, fields map[string]any) error
	DeleteAdminByOrganizationName(ctx context.Context, orgName string) error
}
