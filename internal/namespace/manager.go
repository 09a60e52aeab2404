// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package namespace

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"

	"github.com/canonical/org-service/internal/db"
	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/tracing"
	"github.com/canonical/org-service/internal/types"
)

const prefix = "org_"

// insertBatchSize bounds the number of rows per INSERT during a copy.
const insertBatchSize = 500

// identifierPattern mirrors the organization-name validation at the API
// boundary. It is enforced again here so the manager is safe to call with
// any string.
var identifierPattern = regexp.MustCompile(`^org_[a-zA-Z0-9_-]{3,50}$`)

// Derive returns the namespace identifier for an organization name. The
// mapping is deterministic: equal names always yield equal identifiers.
func Derive(orgName string) string {
	return prefix + orgName
}

// Validate reports whether ns is a well-formed namespace identifier.
func Validate(ns string) error {
	if !identifierPattern.MatchString(ns) {
		return fmt.Errorf("invalid namespace identifier %q", ns)
	}
	return nil
}

var _ ManagerInterface = (*Manager)(nil)

// Manager maps namespaces onto dedicated Postgres schemas, each holding a
// single documents table of opaque JSONB payloads.
type Manager struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewManager(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Manager {
	m := new(Manager)

	m.db = c

	m.logger = logger
	m.tracer = tracer
	m.monitor = monitor

	return m
}

func (m *Manager) CreateIfAbsent(ctx context.Context, ns string) error {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.CreateIfAbsent")
	defer span.End()

	if err := Validate(ns); err != nil {
		return err
	}

	exists, err := m.Exists(ctx, ns)
	if err != nil {
		return err
	}
	if exists {
		m.logger.Debugf("namespace %s already exists", ns)
		return nil
	}

	// IF NOT EXISTS also guards the window between the check and the DDL.
	schema := pgx.Identifier{ns}.Sanitize()
	if err := m.db.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)); err != nil {
		return fmt.Errorf("failed to create namespace %s: %w", ns, err)
	}

	if err := m.db.Exec(ctx, documentsDDL(ns)); err != nil {
		return fmt.Errorf("failed to create documents table in %s: %w", ns, err)
	}

	m.logger.Infof("created namespace %s", ns)
	return nil
}

// CopyAll moves every document from src to dst verbatim. The whole source
// namespace is read into memory first, which caps the tenant size this can
// handle; acceptable for the small namespaces this service manages.
func (m *Manager) CopyAll(ctx context.Context, src, dst string) (int, error) {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.CopyAll")
	defer span.End()

	if err := Validate(src); err != nil {
		return 0, err
	}
	if err := Validate(dst); err != nil {
		return 0, err
	}

	rows, err := m.db.Query(ctx, fmt.Sprintf("SELECT id, body, created_at FROM %s", documentsTable(src)))
	if err != nil {
		return 0, fmt.Errorf("failed to read namespace %s: %w", src, err)
	}
	defer rows.Close()

	var docs []types.Document
	for rows.Next() {
		var d types.Document
		if err := rows.Scan(&d.ID, &d.Body, &d.CreatedAt); err != nil {
			return 0, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating documents: %w", err)
	}

	if len(docs) == 0 {
		return 0, nil
	}

	for start := 0; start < len(docs); start += insertBatchSize {
		end := min(start+insertBatchSize, len(docs))

		insert := m.db.Statement(ctx).
			Insert(documentsTable(dst)).
			Columns("id", "body", "created_at")
		for _, d := range docs[start:end] {
			insert = insert.Values(d.ID, d.Body, d.CreatedAt)
		}

		if _, err := insert.ExecContext(ctx); err != nil {
			return 0, fmt.Errorf("failed to write documents to %s: %w", dst, err)
		}
	}

	m.logger.Infof("copied %d documents from %s to %s", len(docs), src, dst)
	return len(docs), nil
}

func (m *Manager) Drop(ctx context.Context, ns string) error {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.Drop")
	defer span.End()

	if err := Validate(ns); err != nil {
		return err
	}

	schema := pgx.Identifier{ns}.Sanitize()
	if err := m.db.Exec(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
		return fmt.Errorf("failed to drop namespace %s: %w", ns, err)
	}

	m.logger.Infof("dropped namespace %s", ns)
	return nil
}

func (m *Manager) Exists(ctx context.Context, ns string) (bool, error) {
	ctx, span := m.tracer.Start(ctx, "namespace.Manager.Exists")
	defer span.End()

	if err := Validate(ns); err != nil {
		return false, err
	}

	rows, err := m.db.Query(ctx, "SELECT 1 FROM information_schema.schemata WHERE schema_name = $1", ns)
	if err != nil {
		return false, fmt.Errorf("failed to check namespace %s: %w", ns, err)
	}
	defer rows.Close()

	return rows.Next(), rows.Err()
}

func documentsTable(ns string) string {
	return pgx.Identifier{ns}.Sanitize() + ".documents"
}

func documentsDDL(ns string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, documentsTable(ns))
}
