package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mazelott/pkg/game/gameplay"
)

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr     string           // Address to listen on
	BaseURL  string           // Base URL for API routes
	GinMode  string           // Gin mode (release, debug, test)
	Defaults gameplay.Options // Session options requests do not override
}

// Router owns the gin engine and the session registry behind it.
type Router struct {
	addr     string
	engine   *gin.Engine
	registry *Registry
}

// NewRouter creates a Router with every maze route registered under
// BaseURL + "/v1".
func NewRouter(config Config) *Router {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}
	registry := NewRegistry()
	controller := NewMazeController(registry, config.Defaults)

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": registry.Len()})
	})

	api := engine.Group(config.BaseURL)
	{
		v1 := api.Group("/v1")
		controller.Register(v1)
	}

	return &Router{addr: config.Addr, engine: engine, registry: registry}
}

// Handler exposes the engine, for tests and custom servers
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Registry returns the session registry served by r
func (r *Router) Registry() *Registry {
	return r.registry
}

// Run listens on the configured address until the server fails.
func (r *Router) Run() error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("[SERVER] [INFO] Listening on %s", r.addr)
	return srv.ListenAndServe()
}
