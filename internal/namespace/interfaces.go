// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"context"
)

// ManagerInterface creates, copies and destroys per-tenant namespaces. The
// contents of a namespace are opaque to it.
type ManagerInterface interface {
	CreateIfAbsent(ctx context.Context, ns string) error
	CopyAll(ctx context.Context, src, dst string) (int, error)
	Drop(ctx context.Context, ns string) error
	Exists(ctx context.Context, ns string) (bool, error)
}
