// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

// TokenIssuerInterface mints and verifies signed, time-bound identity tokens.
// Tokens are stateless: verification is signature + expiry only, there is no
// revocation list.
type TokenIssuerInterface interface {
	// Issue signs a token binding the admin to their organization.
	Issue(ctx context.Context, adminID, email, orgID, orgName string) (string, error)
	// Verify checks signature and time bounds and returns the decoded claims.
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}
