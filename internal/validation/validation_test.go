// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"testing"
)

type createRequest struct {
	OrganizationName string `validate:"required,min=3,max=50,orgname"`
	Email            string `validate:"required,email"`
	Password         string `validate:"required,min=8"`
}

func TestValidCreateRequest(t *testing.T) {
	v := NewValidator()

	err := v.Struct(createRequest{
		OrganizationName: "acme",
		Email:            "a@x.com",
		Password:         "Password123",
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidRequests(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		name      string
		req       createRequest
		wantField string
	}{
		{
			name:      "name too short",
			req:       createRequest{OrganizationName: "ab", Email: "a@x.com", Password: "Password123"},
			wantField: "OrganizationName",
		},
		{
			name:      "name bad characters",
			req:       createRequest{OrganizationName: "acme corp!", Email: "a@x.com", Password: "Password123"},
			wantField: "OrganizationName",
		},
		{
			name:      "bad email",
			req:       createRequest{OrganizationName: "acme", Email: "not-an-email", Password: "Password123"},
			wantField: "Email",
		},
		{
			name:      "short password",
			req:       createRequest{OrganizationName: "acme", Email: "a@x.com", Password: "short"},
			wantField: "Password",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if err == nil {
				t.Fatal("expected validation error")
			}

			fields := FieldErrors(err)
			if _, ok := fields[tc.wantField]; !ok {
				t.Errorf("expected field error for %s, got %v", tc.wantField, fields)
			}
		})
	}
}
