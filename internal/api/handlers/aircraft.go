package handlers

import (
	"net/http"

	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AircraftHandler handles HTTP requests for aircraft assembly
type AircraftHandler struct {
	assemblyService service.AssemblyServiceInterface
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(assemblyService service.AssemblyServiceInterface) *AircraftHandler {
	return &AircraftHandler{assemblyService: assemblyService}
}

// CreateAircraft handles POST /aircraft
// @Summary Start assembling an aircraft
// @Description Create an empty aircraft of a known type, optionally owned by an assembly team
// @Tags aircraft
// @Accept json
// @Produce json
// @Param aircraft body service.CreateAircraftRequest true "Aircraft data"
// @Success 201 {object} service.AircraftResponse "Aircraft created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Assembly team not found"
// @Security BearerAuth
// @Router /aircraft [post]
func (h *AircraftHandler) CreateAircraft(c *gin.Context) {
	username, ok := actor(c)
	if !ok {
		return
	}

	var req service.CreateAircraftRequest
	if !bindJSON(c, &req) {
		return
	}

	aircraft, err := h.assemblyService.CreateAircraft(c.Request.Context(), &req, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, aircraft)
}

// ListAircraft handles GET /aircraft
// @Summary List aircraft
// @Tags aircraft
// @Produce json
// @Param status query string false "in_production or completed"
// @Param aircraft_type query string false "Aircraft type"
// @Param assembly_team_id query string false "Assembly team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AircraftListResponse "Aircraft list"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /aircraft [get]
func (h *AircraftHandler) ListAircraft(c *gin.Context) {
	teamID, ok := parseOptionalID(c, "assembly_team_id", "team")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	filter := service.AircraftFilter{
		Status:         c.Query("status"),
		AircraftType:   c.Query("aircraft_type"),
		AssemblyTeamID: teamID,
	}

	aircraft, err := h.assemblyService.ListAircraft(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// GetAircraft handles GET /aircraft/:id
// @Summary Get aircraft by ID
// @Description Get an aircraft with its attached parts and the parts it still needs
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.AircraftDetailResponse "Aircraft"
// @Failure 400 {object} ErrorResponse "Invalid aircraft ID"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [get]
func (h *AircraftHandler) GetAircraft(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	aircraft, err := h.assemblyService.GetAircraft(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// ClaimAircraft handles PUT /aircraft/:id/assembly-team
// @Summary Assign an assembly team to an aircraft
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Param claim body service.ClaimAircraftRequest true "Assembly team"
// @Success 200 {object} service.AircraftResponse "Aircraft"
// @Failure 400 {object} ErrorResponse "Invalid request or not an assembly team"
// @Failure 404 {object} ErrorResponse "Aircraft or team not found"
// @Failure 409 {object} ErrorResponse "Aircraft already owned by another team"
// @Security BearerAuth
// @Router /aircraft/{id}/assembly-team [put]
func (h *AircraftHandler) ClaimAircraft(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	var req service.ClaimAircraftRequest
	if !bindJSON(c, &req) {
		return
	}

	aircraft, err := h.assemblyService.ClaimAircraft(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, aircraft)
}

// AttachPart handles POST /aircraft/:id/parts
// @Summary Attach one unit of a part to an aircraft
// @Description Consumes one unit of stock. Rejected when the part is incompatible, out of stock or the category quota is full.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Param part body service.AttachPartRequest true "Part to attach"
// @Success 201 {object} service.AttachPartResponse "Part attached"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Aircraft or part not found"
// @Failure 409 {object} ErrorResponse "Attach rule violated"
// @Security BearerAuth
// @Router /aircraft/{id}/parts [post]
func (h *AircraftHandler) AttachPart(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}
	username, ok := actor(c)
	if !ok {
		return
	}

	var req service.AttachPartRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.assemblyService.AttachPart(c.Request.Context(), id, &req, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CanAddPart handles GET /aircraft/:id/can-add-part
// @Summary Check whether a part could be attached
// @Description Runs the attach rules without changing anything
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Param part_id query string true "Part ID (UUID)"
// @Success 200 {object} service.CanAddPartResponse "Outcome of the attach rules"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse "Aircraft or part not found"
// @Security BearerAuth
// @Router /aircraft/{id}/can-add-part [get]
func (h *AircraftHandler) CanAddPart(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}
	partID, ok := parseOptionalID(c, "part_id", "part")
	if !ok {
		return
	}
	if partID == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "part_id is required"})
		return
	}

	resp, err := h.assemblyService.CanAddPart(c.Request.Context(), id, *partID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DetachPart handles DELETE /aircraft-parts/:id
// @Summary Detach a part from an aircraft
// @Description Removes one assembly record and returns the unit to stock. A complete aircraft moves back to in production.
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft part ID (UUID)"
// @Success 200 {object} service.DetachPartResponse "Part detached"
// @Failure 400 {object} ErrorResponse "Invalid aircraft part ID"
// @Failure 404 {object} ErrorResponse "Aircraft part not found"
// @Security BearerAuth
// @Router /aircraft-parts/{id} [delete]
func (h *AircraftHandler) DetachPart(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft part")
	if !ok {
		return
	}
	username, ok := actor(c)
	if !ok {
		return
	}

	resp, err := h.assemblyService.DetachPart(c.Request.Context(), id, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteAircraft handles POST /aircraft/:id/complete
// @Summary Mark an aircraft as completed
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.CompleteAircraftResponse "Aircraft completed"
// @Failure 400 {object} ErrorResponse "Invalid aircraft ID"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Failure 409 {object} ErrorResponse "Aircraft is missing parts"
// @Security BearerAuth
// @Router /aircraft/{id}/complete [post]
func (h *AircraftHandler) CompleteAircraft(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	resp, err := h.assemblyService.CompleteAircraft(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMissingParts handles GET /aircraft/:id/missing-parts
// @Summary List the parts an aircraft still needs
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.MissingPartsResponse "Missing parts per category"
// @Failure 400 {object} ErrorResponse "Invalid aircraft ID"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id}/missing-parts [get]
func (h *AircraftHandler) GetMissingParts(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	resp, err := h.assemblyService.GetMissingParts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPartsSummary handles GET /aircraft/:id/parts-summary
// @Summary Compare attached parts with the bill of materials
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID (UUID)"
// @Success 200 {object} service.PartsSummaryResponse "Per-category summary"
// @Failure 400 {object} ErrorResponse "Invalid aircraft ID"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id}/parts-summary [get]
func (h *AircraftHandler) GetPartsSummary(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}

	resp, err := h.assemblyService.GetPartsSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAircraft handles DELETE /aircraft/:id
// @Summary Delete an aircraft
// @Description Deletes an aircraft and returns its attached parts to stock
// @Tags aircraft
// @Param id path string true "Aircraft ID (UUID)"
// @Success 204 "Aircraft deleted"
// @Failure 400 {object} ErrorResponse "Invalid aircraft ID"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [delete]
func (h *AircraftHandler) DeleteAircraft(c *gin.Context) {
	id, ok := parseID(c, "id", "aircraft")
	if !ok {
		return
	}
	username, ok := actor(c)
	if !ok {
		return
	}

	if err := h.assemblyService.DeleteAircraft(c.Request.Context(), id, username); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
