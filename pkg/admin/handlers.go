// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/validation"
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

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/admin/login", a.handleLogin)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: validation.FieldErrors(err)})
		return
	}

	result, err := a.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			a.writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrUnauthorized.Error()})
			return
		}
		a.logger.Errorf("login failed: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	a.writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken:      result.Token,
		TokenType:        "bearer",
		AdminEmail:       result.AdminEmail,
		OrganizationName: result.OrganizationName,
		OrganizationID:   result.OrganizationID,
	})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}
