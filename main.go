package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"debt-planner/config"
	httpLayer "debt-planner/http"
	"debt-planner/repository"
	"debt-planner/service"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	planRepo := repository.NewPlanRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Enabled {
		cache = repository.NewRedisCache(cfg.Redis.Addr)
		logger.Info("using redis cache", zap.String("addr", cfg.Redis.Addr))
	} else {
		cache = repository.NewMockCache()
	}

	advice := service.NewAdviceService(logger, cfg.Advice.Enabled)
	planner := service.NewPlannerService(logger)
	comparer := service.NewComparisonService(planRepo, advice, logger)

	simulateHandler := httpLayer.NewSimulateHandler(planner, logger)
	compareHandler := httpLayer.NewCompareHandler(comparer, cache, cfg.Redis.CacheTTL, logger)
	dtiHandler := httpLayer.NewDTIHandler(logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/plan/simulate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(simulateHandler.Simulate),
		),
	)
	mux.Handle(
		"/plan/compare",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(compareHandler.Compare),
		),
	)
	mux.Handle(
		"/dti",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(dtiHandler.ComputeDTI),
		),
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("debt planner API listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
