// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/storage"
	"github.com/canonical/org-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_organization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	registry   *MockRegistryInterface
	namespaces *MockNamespaceManagerInterface
	hasher     *MockHasherInterface
	tracer     *MockTracingInterface
	monitor    *MockMonitorInterface
	logger     *MockLoggerInterface
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		registry:   NewMockRegistryInterface(ctrl),
		namespaces: NewMockNamespaceManagerInterface(ctrl),
		hasher:     NewMockHasherInterface(ctrl),
		tracer:     NewMockTracingInterface(ctrl),
		monitor:    NewMockMonitorInterface(ctrl),
		logger:     NewMockLoggerInterface(ctrl),
	}

	s := NewService(m.registry, m.namespaces, m.hasher, m.tracer, m.monitor, m.logger)
	return s, m
}

func expectSpan(m *serviceMocks, name string) {
	ctx := context.Background()
	m.tracer.EXPECT().Start(gomock.Any(), name).Return(ctx, trace.SpanFromContext(ctx))
}

func TestService_Create(t *testing.T) {
	dbErr := errors.New("db error")

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	org := &types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme", CreatedAt: createdAt}
	admin := &types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationID: "org-id-1", OrganizationName: "acme"}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
				m.registry.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(org, nil)
				m.hasher.EXPECT().Hash("Password123").Return("hashed", nil)
				m.registry.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(admin, nil)
				m.registry.EXPECT().UpdateOrganization(gomock.Any(), "org-id-1", map[string]any{"admin_id": "admin-id-1"}).Return(nil)
				m.namespaces.EXPECT().CreateIfAbsent(gomock.Any(), "org_acme").Return(nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: nil,
		},
		{
			name: "organization name taken",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(org, nil)
			},
			expectedErr: ErrAlreadyExists,
		},
		{
			name: "admin email taken",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(admin, nil)
			},
			expectedErr: ErrAlreadyExists,
		},
		{
			name: "lost insert race",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
				m.registry.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrAlreadyExists,
		},
		{
			name: "registry error on lookup",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "organization.Service.Create")
			tc.setupMocks(m)

			view, err := s.Create(context.Background(), "acme", "a@x.com", "Password123")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.Name != "acme" || view.Namespace != "org_acme" || view.AdminEmail != "a@x.com" {
				t.Errorf("unexpected view: %+v", view)
			}
		})
	}
}

func TestService_CreateDerivesNamespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)
	expectSpan(m, "organization.Service.Create")

	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "Globex-7").Return(nil, storage.ErrNotFound)
	m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "g@x.com").Return(nil, storage.ErrNotFound)
	m.registry.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o *types.Organization) (*types.Organization, error) {
			if o.Namespace != "org_Globex-7" {
				t.Errorf("expected namespace org_Globex-7, got %s", o.Namespace)
			}
			out := *o
			out.ID = "org-id-2"
			return &out, nil
		})
	m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	m.registry.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(&types.Admin{ID: "admin-id-2", Email: "g@x.com"}, nil)
	m.registry.EXPECT().UpdateOrganization(gomock.Any(), "org-id-2", gomock.Any()).Return(nil)
	m.namespaces.EXPECT().CreateIfAbsent(gomock.Any(), "org_Globex-7").Return(nil)
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

	if _, err := s.Create(context.Background(), "Globex-7", "g@x.com", "Password123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Get(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMocks    func(*serviceMocks)
		expectedEmail string
		expectedErr   error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(
					&types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme", AdminID: "admin-id-1", CreatedAt: createdAt}, nil)
				m.registry.EXPECT().GetAdminByID(gomock.Any(), "admin-id-1").Return(
					&types.Admin{ID: "admin-id-1", Email: "a@x.com"}, nil)
			},
			expectedEmail: "a@x.com",
		},
		{
			name: "orphaned admin reference",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(
					&types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme", AdminID: "admin-id-1", CreatedAt: createdAt}, nil)
				m.registry.EXPECT().GetAdminByID(gomock.Any(), "admin-id-1").Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedEmail: "N/A",
		},
		{
			name: "admin never linked",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(
					&types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme", CreatedAt: createdAt}, nil)
			},
			expectedEmail: "N/A",
		},
		{
			name: "not found",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "organization.Service.Get")
			tc.setupMocks(m)

			view, err := s.Get(context.Background(), "acme")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.AdminEmail != tc.expectedEmail {
				t.Errorf("expected admin email %q, got %q", tc.expectedEmail, view.AdminEmail)
			}
		})
	}
}

func TestService_UpdatePasswordRotationOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)
	expectSpan(m, "organization.Service.Update")
	expectSpan(m, "organization.Service.Get")

	admin := &types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationName: "acme"}
	org := &types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme", AdminID: "admin-id-1"}

	m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(admin, nil)
	m.hasher.EXPECT().Hash("NewPassword1").Return("newhash", nil)
	m.registry.EXPECT().UpdateAdminByEmail(gomock.Any(), "a@x.com", map[string]any{"password_hash": "newhash"}).Return(nil)
	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(org, nil)
	m.registry.EXPECT().GetAdminByID(gomock.Any(), "admin-id-1").Return(admin, nil)

	view, err := s.Update(context.Background(), "acme", "NewPassword1", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Namespace != "org_acme" {
		t.Errorf("expected namespace untouched, got %s", view.Namespace)
	}
}

func TestService_UpdateRename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)
	expectSpan(m, "organization.Service.Update")

	admin := &types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationName: "acme"}
	org := &types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme"}

	m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(admin, nil)
	m.hasher.EXPECT().Hash("NewPassword1").Return("newhash", nil)
	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "globex").Return(nil, storage.ErrNotFound)
	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(org, nil)

	// The new namespace must be fully populated and the registry repointed
	// before the old namespace is dropped.
	gomock.InOrder(
		m.namespaces.EXPECT().CreateIfAbsent(gomock.Any(), "org_globex").Return(nil),
		m.namespaces.EXPECT().CopyAll(gomock.Any(), "org_acme", "org_globex").Return(3, nil),
		m.registry.EXPECT().UpdateOrganization(gomock.Any(), "org-id-1", map[string]any{
			"name":      "globex",
			"namespace": "org_globex",
		}).Return(nil),
		m.registry.EXPECT().UpdateAdminByEmail(gomock.Any(), "a@x.com", map[string]any{
			"organization_name": "globex",
			"password_hash":     "newhash",
		}).Return(nil),
		m.namespaces.EXPECT().Drop(gomock.Any(), "org_acme").Return(nil),
	)
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	view, err := s.Update(context.Background(), "globex", "NewPassword1", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Name != "globex" || view.Namespace != "org_globex" {
		t.Errorf("unexpected view: %+v", view)
	}
}

func TestService_UpdateRenameDropFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)
	expectSpan(m, "organization.Service.Update")

	dropErr := errors.New("schema busy")
	admin := &types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationName: "acme"}
	org := &types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme"}

	m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(admin, nil)
	m.hasher.EXPECT().Hash("NewPassword1").Return("newhash", nil)
	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "globex").Return(nil, storage.ErrNotFound)
	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(org, nil)

	m.namespaces.EXPECT().CreateIfAbsent(gomock.Any(), "org_globex").Return(nil)
	m.namespaces.EXPECT().CopyAll(gomock.Any(), "org_acme", "org_globex").Return(3, nil)
	m.registry.EXPECT().UpdateOrganization(gomock.Any(), "org-id-1", gomock.Any()).Return(nil)
	m.registry.EXPECT().UpdateAdminByEmail(gomock.Any(), "a@x.com", gomock.Any()).Return(nil)
	m.namespaces.EXPECT().Drop(gomock.Any(), "org_acme").Return(dropErr)
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	// The registry already points at the new namespace, but the caller must
	// hear that the old namespace is still there.
	view, err := s.Update(context.Background(), "globex", "NewPassword1", "a@x.com")
	if !errors.Is(err, dropErr) {
		t.Errorf("expected drop error to surface, got %v", err)
	}
	if view != nil {
		t.Errorf("expected no view, got %+v", view)
	}
}

func TestService_UpdateErrors(t *testing.T) {
	admin := &types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationName: "acme"}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "unknown caller",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "target name taken",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(admin, nil)
				m.hasher.EXPECT().Hash(gomock.Any()).Return("newhash", nil)
				m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "globex").Return(
					&types.Organization{ID: "org-id-9", Name: "globex"}, nil)
			},
			expectedErr: ErrAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "organization.Service.Update")
			tc.setupMocks(m)

			_, err := s.Update(context.Background(), "globex", "NewPassword1", "a@x.com")
			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newServiceWithMocks(ctrl)
	expectSpan(m, "organization.Service.Delete")

	admin := &types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationName: "acme"}
	org := &types.Organization{ID: "org-id-1", Name: "acme", Namespace: "org_acme"}

	m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(admin, nil)
	m.registry.EXPECT().GetOrganizationByName(gomock.Any(), "acme").Return(org, nil)

	// Namespace teardown precedes registry cleanup.
	gomock.InOrder(
		m.namespaces.EXPECT().Drop(gomock.Any(), "org_acme").Return(nil),
		m.registry.EXPECT().DeleteAdminByOrganizationName(gomock.Any(), "acme").Return(nil),
		m.registry.EXPECT().DeleteOrganizationByName(gomock.Any(), "acme").Return(nil),
	)
	m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())

	msg, err := s.Delete(context.Background(), "acme", "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg == "" {
		t.Error("expected confirmation message")
	}
}

func TestService_DeleteForbidden(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*serviceMocks)
	}{
		{
			name: "unknown caller",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "caller owns another organization",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().GetAdminByEmail(gomock.Any(), "a@x.com").Return(
					&types.Admin{ID: "admin-id-1", Email: "a@x.com", OrganizationName: "globex"}, nil)
				m.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			expectSpan(m, "organization.Service.Delete")
			tc.setupMocks(m)

			_, err := s.Delete(context.Background(), "acme", "a@x.com")
			if !errors.Is(err, ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}
