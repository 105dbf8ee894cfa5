package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http"
	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/handler"
	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/middleware"
	postgresRepo "github.com/Urigo/accounter-fullstack-sub008/internal/adapter/repository/postgres"
	redisRepo "github.com/Urigo/accounter-fullstack-sub008/internal/adapter/repository/redis"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/config"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/logger"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/metrics"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/redis"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "ledger-engine"})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	chargeRepo := postgresRepo.NewChargeRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	documentRepo := postgresRepo.NewDocumentRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	taxCategoryRepo := postgresRepo.NewTaxCategoryRepository(pool)
	rateRepo := postgresRepo.NewRateRepository(pool)
	businessRepo := postgresRepo.NewBusinessRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Generation pipeline
	resolver := usecase.NewEntityResolver(taxCategoryRepo, cache, cfg.TaxCategoryTTL)
	normalizer := usecase.NewAmountNormalizer(rateRepo, cfg.LocalCurrency)
	builder := usecase.NewEntryBuilder(resolver, normalizer, idGen)
	accumulator := usecase.NewBalanceAccumulator(cfg.LocalCurrency)
	balancer := usecase.NewBalancer(resolver, businessRepo, idGen)
	validationUC := usecase.NewValidationUseCase(ledgerRepo)

	ledgerUC := usecase.NewLedgerUseCase(
		txManager, chargeRepo, txnRepo, documentRepo, ledgerRepo,
		builder, accumulator, balancer, validationUC,
	).WithRetrier(postgresRepo.NewRetrier(log))

	m := metrics.New()

	// HTTP layer
	ledgerHandler := handler.NewLedgerHandler(ledgerUC, validationUC, m)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler: ledgerHandler,
		HealthHandler: healthHandler,
		Logging:       middleware.NewLoggingMiddleware(log),
		RateLimiter:   middleware.NewRateLimiter(100, 200),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
