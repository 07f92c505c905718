package routes

import (
	"fmt"

	"aircraft-factory-backend/internal/api/handlers"
	"aircraft-factory-backend/internal/api/middleware"
	"aircraft-factory-backend/internal/auth"
	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/config"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, cat *catalog.Catalog) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()
	store := repository.NewStore(db)

	// Initialize services
	teamService := service.NewTeamService(store, validator)
	inventoryService := service.NewInventoryService(store, cat, validator, cfg.DefaultMinimumStock)
	productionService := service.NewProductionService(store, validator)
	assemblyService := service.NewAssemblyService(store, cat, validator)

	authService, err := auth.NewAuthService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cat, Version)
	teamHandler := handlers.NewTeamHandler(teamService, productionService)
	partHandler := handlers.NewPartHandler(inventoryService)
	productionHandler := handlers.NewProductionHandler(productionService)
	aircraftHandler := handlers.NewAircraftHandler(assemblyService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/token", authHandler.IssueToken)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:username", teamHandler.RemoveMember)
			teams.POST("/:id/produce", teamHandler.ProduceParts)
			teams.GET("/:id/productions", teamHandler.GetTeamProductions)
		}

		parts := v1.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.POST("", partHandler.CreatePart)
			parts.GET("/low-stock", partHandler.ListLowStockParts)
			parts.GET("/:id", partHandler.GetPart)
			parts.DELETE("/:id", partHandler.DeletePart)
			parts.PATCH("/:id/minimum-stock", partHandler.UpdateMinimumStock)
			parts.POST("/:id/stock/increase", partHandler.IncreaseStock)
			parts.POST("/:id/stock/decrease", partHandler.DecreaseStock)
		}

		productions := v1.Group("/productions")
		{
			productions.GET("", productionHandler.ListProductions)
			productions.GET("/:id", productionHandler.GetProduction)
		}

		aircraft := v1.Group("/aircraft")
		{
			aircraft.GET("", aircraftHandler.ListAircraft)
			aircraft.POST("", aircraftHandler.CreateAircraft)
			aircraft.GET("/:id", aircraftHandler.GetAircraft)
			aircraft.DELETE("/:id", aircraftHandler.DeleteAircraft)
			aircraft.PUT("/:id/assembly-team", aircraftHandler.ClaimAircraft)
			aircraft.POST("/:id/parts", aircraftHandler.AttachPart)
			aircraft.GET("/:id/can-add-part", aircraftHandler.CanAddPart)
			aircraft.POST("/:id/complete", aircraftHandler.CompleteAircraft)
			aircraft.GET("/:id/missing-parts", aircraftHandler.GetMissingParts)
			aircraft.GET("/:id/parts-summary", aircraftHandler.GetPartsSummary)
		}

		v1.DELETE("/aircraft-parts/:id", aircraftHandler.DetachPart)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
