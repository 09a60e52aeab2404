// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/org-service/internal/types"
	"github.com/canonical/org-service/internal/validation"
	"github.com/canonical/org-service/pkg/authentication"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	api := NewAPI(mockService, validation.NewValidator(), mockLogger)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	api.RegisterProtectedEndpoints(mux)

	return api, mockService, mux
}

func marshalBody(t *testing.T, v interface{}) []byte {
	t.Helper()

	if s, ok := v.(string); ok {
		return []byte(s)
	}
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	return body
}

func TestAPI_Create(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		validateResp   func(*testing.T, *http.Response)
	}{
		{
			name: "success",
			requestBody: CreateOrganizationRequest{
				OrganizationName: "acme",
				Email:            "a@x.com",
				Password:         "Password123",
			},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "acme", "a@x.com", "Password123").Return(
					&types.OrganizationView{Name: "acme", Namespace: "org_acme", AdminEmail: "a@x.com", CreatedAt: createdAt}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result OrganizationResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Errorf("failed to decode response: %v", err)
				}
				if result.Namespace != "org_acme" {
					t.Errorf("expected namespace org_acme, got %s", result.Namespace)
				}
			},
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			requestBody: CreateOrganizationRequest{
				OrganizationName: "ab",
				Email:            "not-an-email",
				Password:         "short",
			},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResp: func(t *testing.T, resp *http.Response) {
				var result ErrorResponse
				if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
					t.Errorf("failed to decode response: %v", err)
				}
				if len(result.Details) != 3 {
					t.Errorf("expected 3 field errors, got %v", result.Details)
				}
			},
		},
		{
			name: "duplicate reported as bad request",
			requestBody: CreateOrganizationRequest{
				OrganizationName: "acme",
				Email:            "a@x.com",
				Password:         "Password123",
			},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Create(gomock.Any(), "acme", "a@x.com", "Password123").Return(nil, ErrAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, mux := newTestAPI(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/org/create", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}

			if tt.validateResp != nil {
				tt.validateResp(t, res)
			}
		})
	}
}

func TestAPI_Get(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/api/v0/org/get?organization_name=acme",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Get(gomock.Any(), "acme").Return(
					&types.OrganizationView{Name: "acme", Namespace: "org_acme", AdminEmail: "a@x.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing query parameter",
			target:         "/api/v0/org/get",
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			target: "/api/v0/org/get?organization_name=ghost",
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Get(gomock.Any(), "ghost").Return(nil, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, mux := newTestAPI(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_Update(t *testing.T) {
	tests := []struct {
		name           string
		claims         *authentication.Claims
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			claims:      &authentication.Claims{Email: "a@x.com", OrganizationName: "acme"},
			requestBody: UpdateOrganizationRequest{OrganizationName: "globex", Email: "a@x.com", Password: "NewPassword1"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Update(gomock.Any(), "globex", "NewPassword1", "a@x.com").Return(
					&types.OrganizationView{Name: "globex", Namespace: "org_globex", AdminEmail: "a@x.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no claims in context",
			claims:         nil,
			requestBody:    UpdateOrganizationRequest{OrganizationName: "globex", Email: "a@x.com", Password: "NewPassword1"},
			setupMocks:     func(mockSvc *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "target name taken",
			claims:      &authentication.Claims{Email: "a@x.com", OrganizationName: "acme"},
			requestBody: UpdateOrganizationRequest{OrganizationName: "globex", Email: "a@x.com", Password: "NewPassword1"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().Update(gomock.Any(), "globex", "NewPassword1", "a@x.com").Return(nil, ErrAlreadyExists)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, mux := newTestAPI(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPut, "/api/v0/org/update", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			if tt.claims != nil {
				req = req.WithContext(authentication.WithClaims(req.Context(), tt.claims))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_Delete(t *testing.T) {
	tests := []struct {
		name           string
		claims         *authentication.Claims
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			claims:      &authentication.Claims{Email: "a@x.com", OrganizationName: "acme"},
			requestBody: DeleteOrganizationRequest{OrganizationName: "acme"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Delete(gomock.Any(), "acme", "a@x.com").Return(`Organization "acme" deleted successfully`, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "forbidden",
			claims:      &authentication.Claims{Email: "a@x.com", OrganizationName: "acme"},
			requestBody: DeleteOrganizationRequest{OrganizationName: "globex"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Delete(gomock.Any(), "globex", "a@x.com").Return("", ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:        "service error",
			claims:      &authentication.Claims{Email: "a@x.com", OrganizationName: "acme"},
			requestBody: DeleteOrganizationRequest{OrganizationName: "acme"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().Delete(gomock.Any(), "acme", "a@x.com").Return("", errors.New("db error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			api := NewAPI(mockService, validation.NewValidator(), mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			api.RegisterProtectedEndpoints(mux)

			tt.setupMocks(mockService, mockLogger)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/org/delete", bytes.NewBuffer(marshalBody(t, tt.requestBody)))
			if tt.claims != nil {
				req = req.WithContext(authentication.WithClaims(req.Context(), tt.claims))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}
		})
	}
}
