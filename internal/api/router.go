package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gurohotvedt/cab230serverside/internal/api/handlers"
	"github.com/gurohotvedt/cab230serverside/internal/api/middleware"
	"github.com/gurohotvedt/cab230serverside/internal/auth"
	"github.com/gurohotvedt/cab230serverside/internal/infra/database/postgres"
	"github.com/gurohotvedt/cab230serverside/internal/pkg/config"
)

// Router holds all dependencies for API routing. Store adapters are injected
// explicitly into each handler; there is no ambient database handle.
type Router struct {
	engine        *gin.Engine
	config        *config.Config
	tokens        *auth.TokenService
	healthHandler *handlers.HealthHandler
	stockHandler  *handlers.StockHandler
	userHandler   *handlers.UserHandler
}

// NewRouter creates a new API router with all dependencies
func NewRouter(cfg *config.Config, dbPool *postgres.Pool, version string) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Repositories
	stockRepo := postgres.NewStockRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)

	// Token service
	tokens := auth.NewTokenService([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL)

	router := &Router{
		engine:        engine,
		config:        cfg,
		tokens:        tokens,
		healthHandler: handlers.NewHealthHandler(dbPool, version),
		stockHandler:  handlers.NewStockHandler(stockRepo),
		userHandler:   handlers.NewUserHandler(userRepo, tokens),
	}

	router.setupMiddlewares()
	router.setupRoutes()

	return router
}

// setupMiddlewares configures all global middlewares
func (r *Router) setupMiddlewares() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logging("/health", "/health/ready"))
	r.engine.Use(middleware.CORS(middleware.DefaultCORSConfig()))
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health checks
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/health/ready", r.healthHandler.Ready)

	// Stocks API
	stocks := r.engine.Group("/stocks")
	{
		stocks.GET("/symbols", r.stockHandler.ListSymbols)
		stocks.GET("/:symbol", r.stockHandler.GetBySymbol)
		stocks.GET("/authed/:symbol", middleware.Auth(r.tokens), r.stockHandler.GetAuthedBySymbol)
	}

	// User API
	user := r.engine.Group("/user")
	{
		user.POST("/register", r.userHandler.Register)
		user.POST("/login", r.userHandler.Login)
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
