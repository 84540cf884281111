package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "swiftdrop/internal/app"
	"swiftdrop/internal/entities"
	"swiftdrop/internal/handlers/rest/healthcheck_head"
	"swiftdrop/internal/handlers/rest/parcel_assign_patch"
	"swiftdrop/internal/handlers/rest/parcel_cashout_patch"
	"swiftdrop/internal/handlers/rest/parcel_delete"
	"swiftdrop/internal/handlers/rest/parcel_get"
	"swiftdrop/internal/handlers/rest/parcel_post"
	"swiftdrop/internal/handlers/rest/parcel_status_patch"
	"swiftdrop/internal/handlers/rest/parcels_get"
	"swiftdrop/internal/handlers/rest/parcels_status_count_get"
	"swiftdrop/internal/handlers/rest/payment_intent_post"
	"swiftdrop/internal/handlers/rest/payment_post"
	"swiftdrop/internal/handlers/rest/payments_get"
	"swiftdrop/internal/handlers/rest/ping_get"
	"swiftdrop/internal/handlers/rest/rider_completed_get"
	"swiftdrop/internal/handlers/rest/rider_parcels_get"
	"swiftdrop/internal/handlers/rest/rider_post"
	"swiftdrop/internal/handlers/rest/rider_status_patch"
	"swiftdrop/internal/handlers/rest/riders_active_get"
	"swiftdrop/internal/handlers/rest/riders_available_get"
	"swiftdrop/internal/handlers/rest/riders_pending_get"
	"swiftdrop/internal/handlers/rest/stats_admin_get"
	"swiftdrop/internal/handlers/rest/stats_rider_get"
	"swiftdrop/internal/handlers/rest/stats_user_get"
	"swiftdrop/internal/handlers/rest/tracking_get"
	"swiftdrop/internal/handlers/rest/tracking_post"
	"swiftdrop/internal/handlers/rest/user_post"
	"swiftdrop/internal/handlers/rest/user_role_get"
	"swiftdrop/internal/handlers/rest/user_role_patch"
	"swiftdrop/internal/handlers/rest/users_search_get"
	"swiftdrop/internal/pkg/config"
	"swiftdrop/internal/pkg/dotenv"
	metrics_system "swiftdrop/internal/pkg/metrics"
	"swiftdrop/internal/pkg/middlewares/auth"
	"swiftdrop/internal/pkg/middlewares/graceful_shutdown"
	"swiftdrop/internal/pkg/middlewares/metrics"
	"swiftdrop/internal/pkg/middlewares/rate_limiter"
	"swiftdrop/internal/pkg/middlewares/timeout"
	"swiftdrop/internal/pkg/postgres"
	"swiftdrop/pkg/logger"
	"swiftdrop/pkg/logger/zap_adapter"
	"swiftdrop/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting swiftdrop application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second

		chargeClientTimeout = 10 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	chargeClient := &http.Client{Timeout: chargeClientTimeout}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, chargeClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// authed требует валидный Bearer токен, role-гарды - еще и роль из стора.
	authed := auth.Middleware(log, cfg.Auth.JWTSecret)
	adminOnly := auth.RequireRole(log, app.ServiceUser, entities.RoleAdmin)
	riderOnly := auth.RequireRole(log, app.ServiceUser, entities.RoleRider)
	adminOrRider := auth.RequireRole(log, app.ServiceUser, entities.RoleAdmin, entities.RoleRider)

	// публичные ручки: регистрация и трекинг по непрозрачному номеру
	router.Handle("/user", user_post.New(log, app.ServiceUser)).Methods("POST")
	router.Handle("/tracking/{trackingId}", tracking_get.New(log, app.ServiceParcel)).Methods("GET")

	router.Handle("/parcel", authed(parcel_post.New(log, app.ServiceParcel))).Methods("POST")
	router.Handle("/parcel/{id}", authed(parcel_get.New(log, app.ServiceParcel))).Methods("GET")
	router.Handle("/parcel/{id}", authed(adminOnly(parcel_delete.New(log, app.ServiceParcel)))).Methods("DELETE")
	router.Handle("/parcels", authed(adminOnly(parcels_get.New(log, app.ServiceParcel)))).Methods("GET")
	router.Handle("/parcels/status-count", authed(adminOnly(parcels_status_count_get.New(log, app.ServiceParcel)))).Methods("GET")

	router.Handle("/parcel/{id}/assign", authed(adminOnly(parcel_assign_patch.New(log, app.ServiceRider)))).Methods("PATCH")
	router.Handle("/parcel/{id}/status", authed(riderOnly(parcel_status_patch.New(log, app.ServiceParcel)))).Methods("PATCH")
	router.Handle("/parcel/{id}/cashout", authed(riderOnly(parcel_cashout_patch.New(log, app.ServiceParcel)))).Methods("PATCH")

	router.Handle("/rider", authed(rider_post.New(log, app.ServiceRider))).Methods("POST")
	router.Handle("/riders/pending", authed(adminOnly(riders_pending_get.New(log, app.ServiceRider)))).Methods("GET")
	router.Handle("/riders/active", authed(adminOnly(riders_active_get.New(log, app.ServiceRider)))).Methods("GET")
	router.Handle("/riders/available", authed(adminOnly(riders_available_get.New(log, app.ServiceRider)))).Methods("GET")
	router.Handle("/rider/{id}/status", authed(adminOnly(rider_status_patch.New(log, app.ServiceRider)))).Methods("PATCH")
	router.Handle("/rider/parcels", authed(riderOnly(rider_parcels_get.New(log, app.ServiceRider)))).Methods("GET")
	router.Handle("/rider/completed", authed(riderOnly(rider_completed_get.New(log, app.ServiceRider)))).Methods("GET")

	router.Handle("/tracking", authed(adminOrRider(tracking_post.New(log, app.ServiceParcel)))).Methods("POST")

	router.Handle("/payment", authed(payment_post.New(log, app.ServiceParcel))).Methods("POST")
	router.Handle("/payment/intent", authed(payment_intent_post.New(log, app.ChargeGateway, cfg.ChargeAuthority.Currency))).Methods("POST")
	router.Handle("/payments", authed(payments_get.New(log, app.ServiceParcel))).Methods("GET")

	router.Handle("/stats/user", authed(stats_user_get.New(log, app.ServiceStats))).Methods("GET")
	router.Handle("/stats/admin", authed(adminOnly(stats_admin_get.New(log, app.ServiceStats)))).Methods("GET")
	router.Handle("/stats/rider", authed(riderOnly(stats_rider_get.New(log, app.ServiceStats)))).Methods("GET")

	router.Handle("/user/{email}/role", authed(adminOnly(user_role_get.New(log, app.ServiceUser)))).Methods("GET")
	router.Handle("/user/{id}/role", authed(adminOnly(user_role_patch.New(log, app.ServiceUser)))).Methods("PATCH")
	router.Handle("/users/search", authed(adminOnly(users_search_get.New(log, app.ServiceUser)))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
