package handler

import (
	"wookey-escrow/internal/adapter/http/middleware"
	redisStore "wookey-escrow/internal/adapter/storage/redis"
	"wookey-escrow/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RegistrySvc    ports.RegistryService
	PaymentSvc     ports.PaymentService
	BalanceSvc     ports.BalanceService
	DepositSvc     ports.DepositService
	JournalSvc     ports.JournalService
	AccountRepo    ports.AccountRepository
	EncSvc         ports.EncryptionService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep, verifies the storage dependencies)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- HMAC-authenticated routes (ledger API) ---
	hmacAuth := middleware.HMACAuth(deps.AccountRepo, deps.EncSvc, deps.SigSvc, deps.NonceStore, deps.Logger)

	storeHandler := NewStoreHandler(deps.RegistrySvc)
	stores := v1.Group("/stores", hmacAuth)
	{
		stores.POST("", rl("payments"), storeHandler.Register)
		stores.DELETE("/:account", rl("payments"), storeHandler.Unregister)
		stores.GET("", rl("payments"), storeHandler.List)
	}

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments", hmacAuth)
	{
		payments.POST("", rl("payments"), paymentHandler.Register)
		payments.POST("/cancel", rl("payments"), paymentHandler.Cancel)
		payments.POST("/refund", rl("payments_refund"), paymentHandler.Refund)
		payments.GET("", rl("payments"), paymentHandler.ListBySeller)
		payments.GET("/:recon_key", rl("payments"), paymentHandler.GetByReconKey)
	}

	depositHandler := NewDepositHandler(deps.DepositSvc)
	deposits := v1.Group("/deposits", hmacAuth)
	{
		deposits.POST("", rl("deposits"), depositHandler.Notify)
	}

	balanceHandler := NewBalanceHandler(deps.BalanceSvc)
	balances := v1.Group("/balances", hmacAuth)
	{
		balances.POST("/claim", rl("balances_claim"), balanceHandler.Claim)
		balances.GET("", rl("payments"), balanceHandler.List)
		balances.GET("/:symbol", rl("payments"), balanceHandler.Get)
	}

	// --- JWT-authenticated operator routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	adminHandler := NewAdminHandler(deps.RegistrySvc, deps.PaymentSvc, deps.BalanceSvc, deps.JournalSvc)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireAdmin())
	{
		admin.POST("/clear/payments", rl("dashboard"), adminHandler.ClearPayments)
		admin.POST("/clear/stores", rl("dashboard"), adminHandler.ClearStores)
		admin.POST("/clear/balances", rl("dashboard"), adminHandler.ClearBalances)
		admin.GET("/journal", rl("dashboard"), adminHandler.Journal)
	}

	return r
}
