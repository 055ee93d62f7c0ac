package main

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "shipping/internal/app"
	"shipping/internal/handlers/rest/canister_call_post"
	"shipping/internal/handlers/rest/canister_query_post"
	"shipping/internal/handlers/rest/healthcheck_head"
	"shipping/internal/handlers/rest/ping_get"
	"shipping/internal/handlers/rest/status_get"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/middlewares/graceful_shutdown"
	"shipping/internal/pkg/middlewares/ingress_auth"
	"shipping/internal/pkg/middlewares/metrics"
	"shipping/internal/pkg/middlewares/rate_limiter"
	"shipping/internal/pkg/middlewares/timeout"
	"shipping/pkg/logger"
)

func initRouter(
	log logger.Logger,
	draining *atomic.Bool,
	replica *application.Replica,
	deps *infra,
	cfg *config.Replica,
) http.Handler {
	router := mux.NewRouter()
	router.Use(
		graceful_shutdown.Middleware(draining),
		timeout.Middleware(cfg.Server.RequestTimeout),
		metrics.Middleware(log),
		rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS,
			rate_limiter.NewLimiter(cfg.Server.RateLimiterQPS, cfg.Server.RateLimiterBurst)),
	)

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(draining, deps.healthChecks()...)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, cfg.Ingress.CanisterID)).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v2").Subrouter()
	api.Handle("/status", status_get.New(log, []byte(cfg.Ingress.RootKey), implVersion, draining)).Methods(http.MethodGet)

	canisterLog := log.With(logger.NewField("canister", cfg.Ingress.CanisterID))
	query := canister_query_post.New(canisterLog, replica.Dispatcher, cfg.Ingress.CanisterID)
	call := canister_call_post.New(canisterLog, replica.Dispatcher, cfg.Ingress.CanisterID)

	// query подпись не требует, call обязан быть подписан и нести свежий nonce.
	queries := api.PathPrefix("/canister/{canister_id}/query").Subrouter()
	queries.Use(ingress_auth.Middleware(canisterLog, replica.Verifier, ingress_auth.Config{}))
	queries.Handle("/{method}", query).Methods(http.MethodPost)

	calls := api.PathPrefix("/canister/{canister_id}/call").Subrouter()
	calls.Use(ingress_auth.Middleware(canisterLog, replica.Verifier, ingress_auth.Config{
		RequireSignature: true,
		Nonces:           replica.Nonces,
	}))
	calls.Handle("/{method}", call).Methods(http.MethodPost)

	return router
}

func initPprofRouter(draining *atomic.Bool) http.Handler {
	router := mux.NewRouter()
	router.Handle("/healthcheck", healthcheck_head.New(draining)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
	return router
}
