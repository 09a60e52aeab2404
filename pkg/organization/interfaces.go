// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/canonical/org-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, name, adminEmail, adminPassword string) (*types.OrganizationView, error)
	Get(ctx context.Context, name string) (*types.OrganizationView, error)
	Update(ctx context.Context, newName, newPassword, callerEmail string) (*types.OrganizationView, error)
	Delete(ctx context.Context, name, callerEmail string) (string, error)
}

// RegistryInterface is the subset of the registry this package needs.
type RegistryInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByName(ctx context.Context, name string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, id string, fields map[string]any) error
	DeleteOrganizationByName(ctx context.Context, name string) error
	CreateAdmin(ctx context.Context, a *types.Admin) (*types.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*types.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*types.Admin, error)
	UpdateAdminByEmail(ctx context.Context, email string, fields map[string]any) error
	DeleteAdminByOrganizationName(ctx context.Context, orgName string) error
}

// NamespaceManagerInterface is the subset of the namespace manager this
// package needs.
type NamespaceManagerInterface interface {
	CreateIfAbsent(ctx context.Context, ns string) error
	CopyAll(ctx context.Context, src, dst string) (int, error)
	Drop(ctx context.Context, ns string) error
}

// HasherInterface is the credential store contract.
type HasherInterface interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
