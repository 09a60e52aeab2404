// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	rdb "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/canonical/org-service/internal/config"
	"github.com/canonical/org-service/internal/db"
	"github.com/canonical/org-service/internal/logging"
	"github.com/canonical/org-service/internal/monitoring/prometheus"
	"github.com/canonical/org-service/internal/namespace"
	"github.com/canonical/org-service/internal/rate"
	"github.com/canonical/org-service/internal/security/password"
	"github.com/canonical/org-service/internal/storage"
	"github.com/canonical/org-service/internal/tracing"
	"github.com/canonical/org-service/internal/validation"
	"github.com/canonical/org-service/pkg/admin"
	"github.com/canonical/org-service/pkg/authentication"
	"github.com/canonical/org-service/pkg/organization"
	"github.com/canonical/org-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}
	if err := specs.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("org-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	registry := storage.NewRegistry(dbClient, tracer, monitor, logger)
	namespaces := namespace.NewManager(dbClient, tracer, monitor, logger)
	hasher := password.NewBcryptHasher()

	tokens, err := authentication.NewTokenIssuer(
		specs.JWTSecret,
		specs.JWTAlgorithm,
		time.Duration(specs.TokenTTLMinutes)*time.Minute,
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create token issuer: %v", err)
	}

	var limiter rate.LimiterInterface
	if specs.RedisURL != "" {
		opts, err := rdb.ParseURL(specs.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid redis URL: %v", err)
		}
		limiter = rate.NewRedisLimiter(rdb.NewClient(opts), specs.RateLimitMax, specs.RateLimitWindow)
		logger.Info("Using redis rate limiter")
	} else {
		limiter = rate.NewMemoryLimiter(specs.RateLimitMax, specs.RateLimitWindow)
		logger.Info("Using in-memory rate limiter")
	}

	orgService := organization.NewService(registry, namespaces, hasher, tracer, monitor, logger)
	adminService := admin.NewService(registry, hasher, tokens, tracer, monitor, logger)

	router := web.NewRouter(
		orgService,
		adminService,
		tokens,
		dbClient,
		limiter,
		validation.NewValidator(),
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
