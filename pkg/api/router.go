package api

import (
	"github.com/gin-gonic/gin"

	"smartlife/pkg/alias"
	"smartlife/pkg/api/handlers"
	"smartlife/pkg/rpc"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	dispatcher *rpc.Dispatcher
	store      alias.Store
}

// NewRouter creates a new API router
func NewRouter(dispatcher *rpc.Dispatcher, store alias.Store) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		dispatcher: dispatcher,
		store:      store,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	healthHandler := handlers.NewHealthHandler()
	r.engine.GET("/health", healthHandler.Health)

	// JSON-RPC tool surface
	rpcHandler := handlers.NewRPCHandler(r.dispatcher)
	r.engine.POST("/mcps", rpcHandler.Handle)

	// Unauthenticated operational surface for the alias store
	adminHandler := handlers.NewAdminHandler(r.store)
	admin := r.engine.Group("/admin")
	{
		admin.GET("/device-map", adminHandler.GetDeviceMap)
		admin.POST("/device-map", adminHandler.UpsertDeviceMap)
	}
}

// Engine exposes the underlying Gin engine, used by tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
