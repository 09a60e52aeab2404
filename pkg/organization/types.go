// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"time"
)

type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=3,max=50,orgname"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
}

// UpdateOrganizationRequest carries the desired state. When the name matches
// the caller's current organization only the password is rotated. Email is
// accepted for schema symmetry with create; the caller's identity comes from
// the bearer token, not the body.
type UpdateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=3,max=50,orgname"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
}

type DeleteOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=3,max=50,orgname"`
}

type OrganizationResponse struct {
	OrganizationName string    `json:"organization_name"`
	Namespace        string    `json:"namespace"`
	AdminEmail       string    `json:"admin_email"`
	CreatedAt        time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
