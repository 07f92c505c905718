package handlers

import (
	"net/http"

	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductionHandler serves the production ledger
type ProductionHandler struct {
	productionService service.ProductionServiceInterface
}

// NewProductionHandler creates a new production handler
func NewProductionHandler(productionService service.ProductionServiceInterface) *ProductionHandler {
	return &ProductionHandler{productionService: productionService}
}

// ListProductions handles GET /productions
// @Summary List production ledger rows
// @Description List ledger rows newest first, optionally filtered by team or part
// @Tags production
// @Produce json
// @Param team_id query string false "Team ID (UUID)"
// @Param part_id query string false "Part ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProductionListResponse "Ledger rows"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /productions [get]
func (h *ProductionHandler) ListProductions(c *gin.Context) {
	teamID, ok := parseOptionalID(c, "team_id", "team")
	if !ok {
		return
	}
	partID, ok := parseOptionalID(c, "part_id", "part")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	productions, err := h.productionService.ListProductions(c.Request.Context(), service.ProductionFilter{
		TeamID: teamID,
		PartID: partID,
	}, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productions)
}

// GetProduction handles GET /productions/:id
// @Summary Get a production ledger row
// @Tags production
// @Produce json
// @Param id path string true "Production ID (UUID)"
// @Success 200 {object} service.ProductionResponse "Ledger row"
// @Failure 400 {object} ErrorResponse "Invalid production ID"
// @Failure 404 {object} ErrorResponse "Production not found"
// @Security BearerAuth
// @Router /productions/{id} [get]
func (h *ProductionHandler) GetProduction(c *gin.Context) {
	id, ok := parseID(c, "id", "production")
	if !ok {
		return
	}

	production, err := h.productionService.GetProduction(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, production)
}
