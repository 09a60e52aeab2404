// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"errors"
)

// Closed set of business-rule failures raised by the service. Handlers
// translate them to transport status codes; nothing below the handler layer
// knows about HTTP.
var (
	ErrNotFound      = errors.New("organization not found")
	ErrAlreadyExists = errors.New("organization or admin email already exists")
	ErrForbidden     = errors.New("caller does not own this organization")
)
