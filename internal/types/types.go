// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Organization struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Namespace string    `db:"namespace"`
	AdminID   string    `db:"admin_id"` // empty until the admin row is linked
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Admin struct {
	ID               string    `db:"id"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	OrganizationID   string    `db:"organization_id"`
	OrganizationName string    `db:"organization_name"`
	CreatedAt        time.Time `db:"created_at"`
}

// OrganizationView is what the API returns for an organization. AdminEmail is
// resolved from the linked admin row at read time.
type OrganizationView struct {
	Name       string
	Namespace  string
	AdminEmail string
	CreatedAt  time.Time
}

// Document is one opaque payload inside a tenant namespace. Body is never
// interpreted, only moved verbatim.
type Document struct {
	ID        string    `db:"id"`
	Body      []byte    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}
