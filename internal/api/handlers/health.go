package handlers

import (
	"context"
	"net/http"
	"time"

	"aircraft-factory-backend/internal/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandler reports database reachability and the loaded bill of materials
type HealthHandler struct {
	db      *gorm.DB
	catalog *catalog.Catalog
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, cat *catalog.Catalog, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		catalog: cat,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse lists what the factory can build once the database answers
type ReadyResponse struct {
	Ready     bool                      `json:"ready"`
	Timestamp time.Time                 `json:"timestamp"`
	Database  string                    `json:"database"`
	Catalog   map[string]map[string]int `json:"catalog,omitempty"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Code  string `json:"code,omitempty" example:"out_of_stock"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Database connectivity and bill-of-materials state
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  map[string]string{"database": "healthy", "catalog": "loaded"},
	}

	if err := h.ping(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
	}
	if h.catalog == nil {
		response.Status = "unhealthy"
		response.Services["catalog"] = "missing"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready reports whether attach and produce requests can be served
// @Summary Readiness check
// @Description Ready once the database answers and a bill of materials is loaded; lists the required parts per aircraft type
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Database:  "ready",
	}

	if err := h.ping(c.Request.Context()); err != nil {
		response.Ready = false
		response.Database = "not ready: " + err.Error()
	}
	if h.catalog == nil {
		response.Ready = false
	} else {
		response.Catalog = billOfMaterials(h.catalog)
	}

	statusCode := http.StatusOK
	if !response.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func billOfMaterials(cat *catalog.Catalog) map[string]map[string]int {
	out := make(map[string]map[string]int, len(catalog.AircraftTypes()))
	for _, aircraftType := range catalog.AircraftTypes() {
		row := make(map[string]int)
		for _, category := range cat.CategoriesFor(aircraftType) {
			row[string(category)] = cat.RequiredCount(aircraftType, category)
		}
		out[string(aircraftType)] = row
	}
	return out
}
