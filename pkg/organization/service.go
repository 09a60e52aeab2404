// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/namespace"
	"github.com/canonical/org-service/internal/storage"
	"github.com/canonical/org-service/internal/tracing"
	"github.com/canonical/org-service/internal/types"
)

// missingAdminEmail is returned in views when the organization's admin
// reference is dangling.
const missingAdminEmail = "N/A"

var _ ServiceInterface = (*Service)(nil)

// Service sequences the multi-step create, rename and delete workflows
// across the registry, the namespace manager and the credential store. No
// step is transactional with the others: each commits independently, and a
// failure mid-workflow leaves the documented partially-applied state behind
// rather than rolling back.
type Service struct {
	registry   RegistryInterface
	namespaces NamespaceManagerInterface
	hasher     HasherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	registry RegistryInterface,
	namespaces NamespaceManagerInterface,
	hasher HasherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		registry:   registry,
		namespaces: namespaces,
		hasher:     hasher,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// Create provisions a new organization: registry row first, then the admin,
// then the admin link, then the namespace. The existence checks are not
// atomic with the insert; the storage UNIQUE constraints are the real guard
// under concurrent identical requests.
func (s *Service) Create(ctx context.Context, name, adminEmail, adminPassword string) (*types.OrganizationView, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Create")
	defer span.End()

	if _, err := s.registry.GetOrganizationByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: organization %q", ErrAlreadyExists, name)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if _, err := s.registry.GetAdminByEmail(ctx, adminEmail); err == nil {
		return nil, fmt.Errorf("%w: admin %q", ErrAlreadyExists, adminEmail)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	ns := namespace.Derive(name)

	org, err := s.registry.CreateOrganization(ctx, &types.Organization{
		Name:      name,
		Namespace: ns,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Lost the race to a concurrent identical request.
			return nil, fmt.Errorf("%w: organization %q", ErrAlreadyExists, name)
		}
		return nil, err
	}

	hash, err := s.hasher.Hash(adminPassword)
	if err != nil {
		s.logger.Errorf("failed to hash password for %s: %v", adminEmail, err)
		return nil, err
	}

	admin, err := s.registry.CreateAdmin(ctx, &types.Admin{
		Email:            adminEmail,
		PasswordHash:     hash,
		OrganizationID:   org.ID,
		OrganizationName: name,
	})
	if err != nil {
		// The organization row stays behind; cleaning it up is an
		// operational task, not a rollback.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: admin %q", ErrAlreadyExists, adminEmail)
		}
		return nil, err
	}

	if err := s.registry.UpdateOrganization(ctx, org.ID, map[string]any{"admin_id": admin.ID}); err != nil {
		return nil, err
	}

	if err := s.namespaces.CreateIfAbsent(ctx, ns); err != nil {
		return nil, err
	}

	s.logger.Infof("created organization %s with namespace %s", name, ns)

	return &types.OrganizationView{
		Name:       org.Name,
		Namespace:  ns,
		AdminEmail: admin.Email,
		CreatedAt:  org.CreatedAt,
	}, nil
}

func (s *Service) Get(ctx context.Context, name string) (*types.OrganizationView, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Get")
	defer span.End()

	org, err := s.registry.GetOrganizationByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, err
	}

	adminEmail := missingAdminEmail
	if org.AdminID != "" {
		admin, err := s.registry.GetAdminByID(ctx, org.AdminID)
		switch {
		case err == nil:
			adminEmail = admin.Email
		case errors.Is(err, storage.ErrNotFound):
			// Orphaned admin reference, keep the sentinel.
			s.logger.Warnf("organization %s references missing admin %s", org.Name, org.AdminID)
		default:
			return nil, err
		}
	}

	return &types.OrganizationView{
		Name:       org.Name,
		Namespace:  org.Namespace,
		AdminEmail: adminEmail,
		CreatedAt:  org.CreatedAt,
	}, nil
}

// Update renames the caller's organization, migrating its namespace, or just
// rotates the admin password when the name is unchanged. On rename the new
// namespace is fully populated and the registry repointed before the old
// namespace is dropped: a crash in between leaves an orphaned namespace, not
// a dangling reference.
func (s *Service) Update(ctx context.Context, newName, newPassword, callerEmail string) (*types.OrganizationView, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Update")
	defer span.End()

	admin, err := s.registry.GetAdminByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: no admin for %q", ErrForbidden, callerEmail)
		}
		return nil, err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Errorf("failed to hash password for %s: %v", callerEmail, err)
		return nil, err
	}

	oldName := admin.OrganizationName
	if oldName == newName {
		// Credential rotation only, the namespace is untouched.
		if err := s.registry.UpdateAdminByEmail(ctx, callerEmail, map[string]any{"password_hash": hash}); err != nil {
			return nil, err
		}
		return s.Get(ctx, oldName)
	}

	if _, err := s.registry.GetOrganizationByName(ctx, newName); err == nil {
		return nil, fmt.Errorf("%w: organization %q", ErrAlreadyExists, newName)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	org, err := s.registry.GetOrganizationByName(ctx, oldName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, oldName)
		}
		return nil, err
	}

	oldNamespace := org.Namespace
	newNamespace := namespace.Derive(newName)

	if err := s.namespaces.CreateIfAbsent(ctx, newNamespace); err != nil {
		return nil, err
	}

	copied, err := s.namespaces.CopyAll(ctx, oldNamespace, newNamespace)
	if err != nil {
		return nil, err
	}

	if err := s.registry.UpdateOrganization(ctx, org.ID, map[string]any{
		"name":      newName,
		"namespace": newNamespace,
	}); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: organization %q", ErrAlreadyExists, newName)
		}
		return nil, err
	}

	if err := s.registry.UpdateAdminByEmail(ctx, callerEmail, map[string]any{
		"organization_name": newName,
		"password_hash":     hash,
	}); err != nil {
		return nil, err
	}

	if err := s.namespaces.Drop(ctx, oldNamespace); err != nil {
		// The rename itself has committed; the error reports the leftover
		// old namespace.
		s.logger.Errorf("failed to drop old namespace %s: %v", oldNamespace, err)
		return nil, err
	}

	s.logger.Infof("renamed organization %s to %s, migrated %d documents", oldName, newName, copied)

	return &types.OrganizationView{
		Name:       newName,
		Namespace:  newNamespace,
		AdminEmail: callerEmail,
		CreatedAt:  org.CreatedAt,
	}, nil
}

// Delete tears down the caller's organization: namespace first, then the
// admin row, then the organization row. A crash mid-sequence leaves a
// registry entry with a dangling namespace reference, which is inspectable,
// rather than a live namespace nothing references.
func (s *Service) Delete(ctx context.Context, name, callerEmail string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Delete")
	defer span.End()

	admin, err := s.registry.GetAdminByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: no admin for %q", ErrForbidden, callerEmail)
		}
		return "", err
	}

	if admin.OrganizationName != name {
		s.logger.Security().AuthzFailure(callerEmail, "organization_delete")
		return "", fmt.Errorf("%w: %q", ErrForbidden, name)
	}

	org, err := s.registry.GetOrganizationByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return "", err
	}

	if err := s.namespaces.Drop(ctx, org.Namespace); err != nil {
		return "", err
	}

	if err := s.registry.DeleteAdminByOrganizationName(ctx, name); err != nil {
		return "", err
	}

	if err := s.registry.DeleteOrganizationByName(ctx, name); err != nil {
		return "", err
	}

	s.logger.Infof("deleted organization %s and namespace %s", name, org.Namespace)

	return fmt.Sprintf("Organization %q deleted successfully", name), nil
}
