package router

import (
	"github.com/ayodiya/hux-assessment-backend/config"
	"github.com/ayodiya/hux-assessment-backend/internal/handler"
	"github.com/ayodiya/hux-assessment-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Router wires handlers and middleware into the gin engine.
type Router struct {
	engine         *gin.Engine
	authHandler    *handler.AuthHandler
	contactHandler *handler.ContactHandler
	healthHandler  *handler.HealthHandler
	jwtMiddleware  *middleware.JWTMiddleware
	validation     *middleware.ValidationMiddleware
}

func NewRouter(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	healthHandler *handler.HealthHandler,
	jwtMiddleware *middleware.JWTMiddleware,
) *Router {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.RequestContextMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware())

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		contactHandler: contactHandler,
		healthHandler:  healthHandler,
		jwtMiddleware:  jwtMiddleware,
		validation:     middleware.NewValidationMiddleware(),
	}
}

// SetupRoutes registers the full HTTP surface under /api.
func (r *Router) SetupRoutes() {
	api := r.engine.Group("/api")

	api.GET("/health", r.healthHandler.Check)

	r.setupAuthRoutes(api)
	r.setupContactRoutes(api)
}

// Engine exposes the configured gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
