package handler

import (
	"fonebridge/internal/adapter/http/middleware"
	redisStore "fonebridge/internal/adapter/storage/redis"
	"fonebridge/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Gateway        ports.FoneGateway
	Ledger         ports.LedgerService     // nil = ledger endpoints report DB error
	DBHealth       ports.HealthChecker     // nil = database not configured
	RedisHealth    ports.HealthChecker     // nil = redis disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

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

	api := r.Group("/api")

	api.GET("/health", HealthCheck(deps.Gateway, deps.DBHealth, deps.RedisHealth))

	// --- Remote node proxy routes ---
	foneHandler := NewFoneHandler(deps.Gateway, deps.Ledger, deps.Logger)
	fone := api.Group("/fone", rl("fone"))
	{
		fone.POST("/wallet/create", foneHandler.CreateWallet)
		fone.POST("/wallet/import", foneHandler.ImportWallet)
		fone.GET("/wallet/:addr/balance", foneHandler.GetBalance)
		fone.GET("/wallet/:addr/transactions", foneHandler.GetTransactions)
		fone.POST("/transaction/send", foneHandler.SendTransaction)
	}

	// --- Local ledger routes ---
	appHandler := NewAppHandler(deps.Ledger)
	app := api.Group("/app", rl("app"))
	{
		app.GET("/user/:addr/state", appHandler.GetUserState)
		app.GET("/user/:addr/missions", appHandler.ListMissions)
		app.POST("/mission/completed", appHandler.CompleteMission)
	}

	return r
}
