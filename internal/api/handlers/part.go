package handlers

import (
	"net/http"
	"strconv"

	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PartHandler handles HTTP requests for parts and their stock
type PartHandler struct {
	inventoryService service.InventoryServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(inventoryService service.InventoryServiceInterface) *PartHandler {
	return &PartHandler{inventoryService: inventoryService}
}

// CreatePart handles POST /parts
// @Summary Create a part
// @Description Create an empty stock bucket for a part category and aircraft type
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part data"
// @Success 201 {object} service.PartResponse "Successfully created part"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var req service.CreatePartRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.inventoryService.CreatePart(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, part)
}

// GetPart handles GET /parts/:id
// @Summary Get part by ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse "Successfully retrieved part"
// @Failure 400 {object} ErrorResponse "Invalid part ID"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	part, err := h.inventoryService.GetPart(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// ListParts handles GET /parts
// @Summary List parts
// @Description List parts filtered by aircraft type, category and low stock
// @Tags parts
// @Produce json
// @Param aircraft_type query string false "Aircraft type (TB2, TB3, AKINCI, KIZILELMA)"
// @Param team_type query string false "Part category (BODY, WING, TAIL, AVIONICS)"
// @Param low_stock query bool false "Only parts below their minimum stock"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PartListResponse "Successfully retrieved parts"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	lowStock, _ := strconv.ParseBool(c.DefaultQuery("low_stock", "false"))
	h.listParts(c, lowStock)
}

// ListLowStockParts handles GET /parts/low-stock
// @Summary List low-stock parts
// @Tags parts
// @Produce json
// @Param aircraft_type query string false "Aircraft type"
// @Param team_type query string false "Part category"
// @Success 200 {object} service.PartListResponse "Parts below their minimum stock"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /parts/low-stock [get]
func (h *PartHandler) ListLowStockParts(c *gin.Context) {
	h.listParts(c, true)
}

func (h *PartHandler) listParts(c *gin.Context, lowStock bool) {
	page, pageSize := pagination(c)
	filter := service.PartFilter{
		AircraftType: c.Query("aircraft_type"),
		TeamType:     c.Query("team_type"),
		LowStockOnly: lowStock,
	}

	parts, err := h.inventoryService.ListParts(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, parts)
}

// UpdateMinimumStock handles PATCH /parts/:id/minimum-stock
// @Summary Change the low-stock threshold of a part
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Param threshold body service.UpdateMinimumStockRequest true "New minimum stock"
// @Success 200 {object} service.PartResponse "Updated part"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id}/minimum-stock [patch]
func (h *PartHandler) UpdateMinimumStock(c *gin.Context) {
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	var req service.UpdateMinimumStockRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.inventoryService.UpdateMinimumStock(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// IncreaseStock handles POST /parts/:id/stock/increase
// @Summary Add units to a part outside the production ledger
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Param adjustment body service.StockAdjustmentRequest true "Quantity"
// @Success 200 {object} service.PartResponse "Updated part"
// @Failure 400 {object} ErrorResponse "Invalid quantity"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id}/stock/increase [post]
func (h *PartHandler) IncreaseStock(c *gin.Context) {
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	var req service.StockAdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.inventoryService.IncreaseStock(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// DecreaseStock handles POST /parts/:id/stock/decrease
// @Summary Remove units from a part
// @Description Compensating action for a wrong production entry. Refused when stock is insufficient.
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Param adjustment body service.StockAdjustmentRequest true "Quantity"
// @Success 200 {object} service.PartResponse "Updated part"
// @Failure 400 {object} ErrorResponse "Invalid quantity"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /parts/{id}/stock/decrease [post]
func (h *PartHandler) DecreaseStock(c *gin.Context) {
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	var req service.StockAdjustmentRequest
	if !bindJSON(c, &req) {
		return
	}

	part, err := h.inventoryService.DecreaseStock(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, part)
}

// DeletePart handles DELETE /parts/:id
// @Summary Delete a part
// @Description Delete a part that no production or aircraft references
// @Tags parts
// @Param id path string true "Part ID (UUID)"
// @Success 204 "Part deleted"
// @Failure 400 {object} ErrorResponse "Invalid part ID"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 409 {object} ErrorResponse "Part is still referenced"
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) DeletePart(c *gin.Context) {
	id, ok := parseID(c, "id", "part")
	if !ok {
		return
	}

	if err := h.inventoryService.DeletePart(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
