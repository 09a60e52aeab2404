// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// orgNamePattern keeps organization names safe to embed in a derived
// namespace identifier.
var orgNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// NewValidator returns a validator with the custom orgname rule registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Length bounds are expressed separately (min=3,max=50) so the field
	// error names the violated rule.
	_ = v.RegisterValidation("orgname", func(fl validator.FieldLevel) bool {
		return orgNamePattern.MatchString(fl.Field().String())
	})

	return v
}

// FieldErrors flattens a validator error into per-field messages for the
// response body. Non-validation errors yield a single generic entry.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = "invalid request body"
		return fields
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields[fe.Field()] = "this field is required"
		case "email":
			fields[fe.Field()] = "must be a valid email address"
		case "min":
			fields[fe.Field()] = "must be at least " + fe.Param() + " characters"
		case "max":
			fields[fe.Field()] = "must be at most " + fe.Param() + " characters"
		case "orgname":
			fields[fe.Field()] = "may only contain letters, digits, underscores and hyphens"
		default:
			fields[fe.Field()] = "is invalid"
		}
	}

	return fields
}
