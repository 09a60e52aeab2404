// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	AdminEmail       string `json:"admin_email"`
	OrganizationName string `json:"organization_name"`
	OrganizationID   string `json:"organization_id"`
}

// LoginResult is the service-level outcome, free of transport concerns.
type LoginResult struct {
	Token            string
	AdminEmail       string
	OrganizationName string
	OrganizationID   string
}

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
