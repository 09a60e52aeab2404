// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/org-service/internal/db"
	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring"
	"github.com/canonical/org-service/internal/rate"
	"github.com/canonical/org-service/internal/tracing"
	"github.com/canonical/org-service/pkg/admin"
	"github.com/canonical/org-service/pkg/authentication"
	"github.com/canonical/org-service/pkg/metrics"
	"github.com/canonical/org-service/pkg/organization"
	"github.com/canonical/org-service/pkg/status"
)

func NewRouter(
	orgService organization.ServiceInterface,
	adminService admin.ServiceInterface,
	tokens authentication.TokenIssuerInterface,
	dbClient db.DBClientInterface,
	limiter rate.LimiterInterface,
	validate *validator.Validate,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	admin.NewAPI(adminService, validate, logger).RegisterEndpoints(router)

	orgAPI := organization.NewAPI(orgService, validate, logger)
	authenticate := authentication.NewMiddleware(tokens, tracer, monitor, logger).Authenticate()

	// Organization routes share one per-client rate limit budget. The
	// mutating routes additionally require a bearer token.
	router.Group(func(r chi.Router) {
		r.Use(rate.NewMiddleware(limiter, logger).Limit())

		orgAPI.RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			orgAPI.RegisterProtectedEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
