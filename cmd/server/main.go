package main

import (
	"log"
	"os"

	"aircraft-factory-backend/internal/api/routes"
	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/config"
	"aircraft-factory-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "aircraft-factory-backend/docs" // This is needed for swag
)

//	@title			Aircraft Factory Backend API
//	@version		1.0
//	@description	Inventory and assembly tracking for an aircraft factory: teams, parts, production and aircraft completion.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		logrus.Fatal("Failed to load aircraft catalog:", err)
	}

	// Initialize database
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DSN(), nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, cat)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":   port,
		"driver": cfg.DatabaseDriver,
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		logrus.Info("CATALOG_FILE not set, using the built-in bill of materials")
		return catalog.Default(), nil
	}
	logrus.WithField("path", path).Info("Loading bill of materials")
	return catalog.Load(path)
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
