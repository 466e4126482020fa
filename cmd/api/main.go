package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wookey-escrow/config"
	"wookey-escrow/internal/adapter/chain"
	httpHandler "wookey-escrow/internal/adapter/http/handler"
	"wookey-escrow/internal/adapter/storage/memory"
	pgStorage "wookey-escrow/internal/adapter/storage/postgres"
	redisStorage "wookey-escrow/internal/adapter/storage/redis"
	"wookey-escrow/internal/core/ports"
	"wookey-escrow/internal/service"
	"wookey-escrow/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wookey Escrow Ledger")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	accountRepo := pgStorage.NewAccountRepo(pool)
	journalRepo := pgStorage.NewJournalRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	dedupeStore := redisStorage.NewDedupeStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Outbound transfers go through the chain relay, or a recording
	// stub when no relay is configured.
	var transferor ports.TokenTransferor
	if cfg.Chain.Stub {
		transferor = chain.NewStub(log)
		log.Warn().Msg("Chain relay stubbed, outbound transfers are recorded only")
	} else {
		transferor = chain.NewRelay(cfg.Chain.RelayURL, cfg.Chain.RelayAPIKey, sigSvc, nil, log)
	}

	// The ledger itself lives in memory; the journal is its durable
	// audit trail.
	ledger := memory.NewLedger()
	clock := service.SystemClock{}

	// Initialize business services
	journalSvc := service.NewJournalService(journalRepo, log)
	authSvc := service.NewAuthService(accountRepo, hashSvc, encSvc, tokenSvc, log)
	registrySvc := service.NewRegistryService(ledger, clock, journalSvc, log)
	paymentSvc := service.NewPaymentService(ledger, transferor, clock, journalSvc, cfg.Chain.EscrowAccount, log)
	balanceSvc := service.NewBalanceService(ledger, transferor, clock, journalSvc, cfg.Chain.EscrowAccount, log)
	depositSvc := service.NewDepositService(paymentSvc, dedupeStore, cfg.Chain.EscrowAccount, cfg.Chain.SentinelMemo, log)
	auditSvc := service.NewAuditService(auditRepo, log)

	// Bootstrap operator account
	if cfg.Admin.Password != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure admin account")
		}
	} else {
		log.Warn().Msg("No admin password configured, skipping admin bootstrap")
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		RegistrySvc:    registrySvc,
		PaymentSvc:     paymentSvc,
		BalanceSvc:     balanceSvc,
		DepositSvc:     depositSvc,
		JournalSvc:     journalSvc,
		AccountRepo:    accountRepo,
		EncSvc:         encSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
