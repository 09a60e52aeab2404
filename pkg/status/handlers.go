// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/tracing"
	"github.com/canonical/org-service/internal/version"
)

// PingerInterface is the readiness probe against the backing database.
type PingerInterface interface {
	Ping(ctx context.Context) error
}

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	pinger PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(pinger PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.pinger = pinger
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.versionHTTP)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	available := 1.0
	statusCode := http.StatusOK
	body := Status{Status: "ok", Version: version.Version}

	if err := a.pinger.Ping(ctx); err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		available = 0
		statusCode = http.StatusServiceUnavailable
		body.Status = "unavailable"
	}

	if err := a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available); err != nil {
		a.logger.Errorf("failed to set dependency availability: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) versionHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"version": version.Version})
}
