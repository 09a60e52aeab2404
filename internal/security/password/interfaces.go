// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

// HasherInterface is the credential store contract: a slow, salted,
// adaptive hash. The hash format is opaque to callers.
type HasherInterface interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
