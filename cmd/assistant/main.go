package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/analytics"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/cache"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/catalog"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/config"
	logpkg "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/logger"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/metrics"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/transport/algolia"
	chiTransport "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/transport/chi"
	healthuc "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/usecase/health"
	searchuc "github.com/Wunderbot-Git/alkosto-ai-assistant/internal/usecase/search"
	"github.com/Wunderbot-Git/alkosto-ai-assistant/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting assistant API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.Bool("remote_configured", cfg.RemoteConfigured()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Result cache
	resultCache, pinger, err := buildCache(cfg)
	if err != nil {
		logger.Fatal("Failed to create result cache", zap.Error(err))
	}
	defer resultCache.Close()
	if pinger != nil {
		if err := pinger.Ping(ctx); err != nil {
			logger.Fatal("Cache not reachable", zap.Error(err))
		}
		logger.Info("Connected to cache backend")
	}

	// Fallback catalog
	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.Int("products", cat.Len()))

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Query sources — composition root
	recorder := analytics.NewRecorder(cfg.Analytics.Capacity)
	fallback := searchuc.NewFallbackSource(cat)

	var remote searchuc.QuerySource
	if cfg.RemoteConfigured() {
		client := algolia.NewClient(&algolia.Config{
			AppID:     cfg.Search.AppID,
			APIKey:    cfg.Search.APIKey,
			IndexName: cfg.Search.IndexName,
			BaseURL:   cfg.Search.BaseURL,
		})
		remote = searchuc.NewRemoteSource(
			client,
			cfg.Search.MaxRetries,
			time.Duration(cfg.Search.RetryDelayMS)*time.Millisecond,
			logger,
		)
	} else {
		logger.Warn("No remote index credentials, running in demo mode")
	}

	searchSvc := searchuc.New(resultCache, recorder, remote, fallback, logger)
	if cfg.Search.DisableFallback {
		searchSvc = searchSvc.WithFallbackDisabled()
	}
	if cfg.Search.DemoMode {
		searchSvc.SetDemoMode(true)
	}

	healthSvc := healthuc.New(pinger, searchSvc)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)
	r.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Catalog.Watch {
		g.Go(func() error {
			if err := cat.Watch(gctx, cfg.Catalog.Path); err != nil {
				return fmt.Errorf("catalog watcher: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second,
		)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", zap.Error(err))
		return
	}
	logger.Info("Server stopped gracefully")
}

// buildCache creates the configured cache backend. The second return is
// non-nil only for backends with a network connection to health-check.
func buildCache(cfg config.Config) (cache.Cache, healthuc.CachePinger, error) {
	ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
	switch cfg.Cache.Driver {
	case "redis":
		c, err := cache.NewRedis(cache.RedisConfig{
			Addrs:     cfg.Cache.Addrs,
			Password:  cfg.Cache.Password,
			KeyPrefix: cfg.Cache.KeyPrefix,
			TTL:       ttl,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create redis cache: %w", err)
		}
		return c, c, nil
	default:
		return cache.NewMemory(ttl), nil, nil
	}
}

func buildCatalog(cfg config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.NewFromFile(cfg.Catalog.Path, logger)
	}
	return catalog.NewEmbedded(logger), nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
