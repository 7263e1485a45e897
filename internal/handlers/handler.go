package handlers

import (
	"binwatch/internal/logger"
	"binwatch/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "binwatch/docs" // swagger doc registration
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Dashboard SPA and swagger UI
	router.StaticFile("/", "./web/index.html")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live reading feed (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

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
	api := r.Group("/api")
	{
		waste := api.Group("/waste")
		{
			waste.POST("", h.createReading)
			waste.GET("/recent", h.recentReadings)
			waste.GET("/daily", h.dailyAggregates)
		}

		bins := api.Group("/bins")
		{
			bins.GET("/stats", h.binStats)
			bins.GET("/score/:binId", h.binScore)
		}

		// Ranking is for operators only
		admin := api.Group("/admin", h.bearerAuthMiddleware)
		{
			admin.GET("/top", h.topBins)
		}
	}
}
