package handlers

import (
	"movielists/internal/limiter"
	"movielists/internal/logger"
	"movielists/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, the rate limiter and logging.
type Handler struct {
	services *service.Service
	limiter  *limiter.Window
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, lim *limiter.Window, log *logger.Logger) *Handler {
	return &Handler{services: services, limiter: lim, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerListRoutes(api)
	}
}

func (h *Handler) registerListRoutes(api *gin.RouterGroup) {
	lists := api.Group("/lists")
	{
		// Reading a single list by id is open; everything else needs a
		// verified identity. Mutations are throttled before the token is
		// even looked at.
		lists.GET("/:id", h.getList)
		lists.GET("", h.userIdMiddleware, h.listLists)

		mutating := lists.Group("", h.rateLimitMiddleware, h.userIdMiddleware)
		{
			mutating.POST("", h.createList)
			mutating.PUT("/:id", h.updateList)
			mutating.DELETE("/:id", h.deleteList)
		}
	}
}
