// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// DBClientInterface is the database access surface. There is deliberately no
// transaction scope here: every statement commits independently, and the
// orchestrators approximate atomicity by ordering their calls.
type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	Exec(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	Ping(ctx context.Context) error
	Close()
}
