// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/org-service/internal/db"
	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/tracing"
	"github.com/canonical/org-service/internal/types"
)

var _ RegistryInterface = (*Registry)(nil)

type Registry struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewRegistry(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Registry {
	r := new(Registry)

	r.db = c

	r.logger = logger
	r.tracer = tracer
	r.monitor = monitor

	return r
}

func (r *Registry) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var created types.Organization
	var adminID sql.NullString

	err = r.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "namespace").
		Values(id.String(), o.Name, o.Namespace).
		Suffix("RETURNING id, name, namespace, admin_id, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Namespace, &adminID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	created.AdminID = adminID.String
	return &created, nil
}

func (r *Registry) GetOrganizationByName(ctx context.Context, name string) (*types.Organization, error) {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.GetOrganizationByName")
	defer span.End()

	return r.getOrganization(ctx, sq.Eq{"name": name})
}

func (r *Registry) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.GetOrganizationByID")
	defer span.End()

	return r.getOrganization(ctx, sq.Eq{"id": id})
}

func (r *Registry) getOrganization(ctx context.Context, where sq.Eq) (*types.Organization, error) {
	var o types.Organization
	var adminID sql.NullString

	err := r.db.Statement(ctx).
		Select("id", "name", "namespace", "admin_id", "created_at", "updated_at").
		From("organizations").
		Where(where).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.Namespace, &adminID, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	o.AdminID = adminID.String
	return &o, nil
}

// UpdateOrganization applies a field-level update. updated_at is always
// bumped alongside whatever the caller changes.
func (r *Registry) UpdateOrganization(ctx context.Context, id string, fields map[string]any) error {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.UpdateOrganization")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	res, err := r.db.Statement(ctx).
		Update("organizations").
		SetMap(fields).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update organization: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Registry) DeleteOrganizationByName(ctx context.Context, name string) error {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.DeleteOrganizationByName")
	defer span.End()

	res, err := r.db.Statement(ctx).
		Delete("organizations").
		Where(sq.Eq{"name": name}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Registry) CreateAdmin(ctx context.Context, a *types.Admin) (*types.Admin, error) {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.CreateAdmin")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin ID: %w", err)
	}

	var created types.Admin
	err = r.db.Statement(ctx).
		Insert("admins").
		Columns("id", "email", "password_hash", "organization_id", "organization_name").
		Values(id.String(), a.Email, a.PasswordHash, a.OrganizationID, a.OrganizationName).
		Suffix("RETURNING id, email, password_hash, organization_id, organization_name, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Email, &created.PasswordHash, &created.OrganizationID, &created.OrganizationName, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert admin: %w", err)
	}

	return &created, nil
}

func (r *Registry) GetAdminByEmail(ctx context.Context, email string) (*types.Admin, error) {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.GetAdminByEmail")
	defer span.End()

	return r.getAdmin(ctx, sq.Eq{"email": email})
}

func (r *Registry) GetAdminByID(ctx context.Context, id string) (*types.Admin, error) {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.GetAdminByID")
	defer span.End()

	return r.getAdmin(ctx, sq.Eq{"id": id})
}

func (r *Registry) getAdmin(ctx context.Context, where sq.Eq) (*types.Admin, error) {
	var a types.Admin

	err := r.db.Statement(ctx).
		Select("id", "email", "password_hash", "organization_id", "organization_name", "created_at").
		From("admins").
		Where(where).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.OrganizationID, &a.OrganizationName, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &a, nil
}

func (r *Registry) UpdateAdminByEmail(ctx context.Context, email string, fields map[string]any) error {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.UpdateAdminByEmail")
	defer span.End()

	if len(fields) == 0 {
		return nil
	}

	res, err := r.db.Statement(ctx).
		Update("admins").
		SetMap(fields).
		Where(sq.Eq{"email": email}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Registry) DeleteAdminByOrganizationName(ctx context.Context, orgName string) error {
	ctx, span := r.tracer.Start(ctx, "storage.Registry.DeleteAdminByOrganizationName")
	defer span.End()

	_, err := r.db.Statement(ctx).
		Delete("admins").
		Where(sq.Eq{"organization_name": orgName}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	return nil
}
