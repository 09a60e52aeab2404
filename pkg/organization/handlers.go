// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/types"
	"github.com/canonical/org-service/internal/validation"
	"github.com/canonical/org-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, validate *validator.Validate, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validate
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/org/create", a.handleCreate)
	mux.Get("/api/v0/org/get", a.handleGet)
}

// RegisterProtectedEndpoints wires the routes that require a bearer token.
// They are registered on a sub-router so the caller can stack the
// authentication middleware on top.
func (a *API) RegisterProtectedEndpoints(mux chi.Router) {
	mux.Put("/api/v0/org/update", a.handleUpdate)
	mux.Delete("/api/v0/org/delete", a.handleDelete)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body", nil)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, "validation failed", validation.FieldErrors(err))
		return
	}

	view, err := a.service.Create(r.Context(), req.OrganizationName, req.Email, req.Password)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, viewResponse(view))
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("organization_name")
	if name == "" {
		a.badRequest(w, "organization_name query parameter is required", nil)
		return
	}

	view, err := a.service.Get(r.Context(), name)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, viewResponse(view))
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := authentication.GetClaims(r.Context())
	if !ok {
		a.writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
		return
	}

	var req UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body", nil)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, "validation failed", validation.FieldErrors(err))
		return
	}

	view, err := a.service.Update(r.Context(), req.OrganizationName, req.Password, claims.Email)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, viewResponse(view))
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := authentication.GetClaims(r.Context())
	if !ok {
		a.writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "missing authentication"})
		return
	}

	var req DeleteOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body", nil)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, "validation failed", validation.FieldErrors(err))
		return
	}

	msg, err := a.service.Delete(r.Context(), req.OrganizationName, claims.Email)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// serviceError maps the service error taxonomy to transport codes. Duplicate
// names and emails are reported as 400, matching the create contract.
func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrAlreadyExists):
		a.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrForbidden):
		a.writeJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		a.logger.Errorf("organization request failed: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (a *API) badRequest(w http.ResponseWriter, msg string, details map[string]string) {
	a.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Details: details})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func viewResponse(v *types.OrganizationView) OrganizationResponse {
	return OrganizationResponse{
		OrganizationName: v.Name,
		Namespace:        v.Namespace,
		AdminEmail:       v.AdminEmail,
		CreatedAt:        v.CreatedAt,
	}
}
