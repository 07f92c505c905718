package handlers

import (
	"net/http"

	"aircraft-factory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService       service.TeamServiceInterface
	productionService service.ProductionServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, productionService service.ProductionServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:       teamService,
		productionService: productionService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a production or assembly team. Team names are unique.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team with its members and the total number of parts it produced
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamWithMembersResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List teams with an optional team type filter and pagination
// @Tags teams
// @Produce json
// @Param team_type query string false "Team type (BODY, WING, TAIL, AVIONICS, ASSEMBLY)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid team type"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	page, pageSize := pagination(c)

	teams, err := h.teamService.GetAll(c.Request.Context(), c.Query("team_type"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Rename a team
// @Description Rename a team. The team type cannot change.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "New team name"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team that has no production history and owns no aircraft
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team is still referenced"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember handles POST /teams/:id/members
// @Summary Add a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param member body service.AddTeamMemberRequest true "Member username"
// @Success 200 {object} service.TeamWithMembersResponse "Team with its members"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "User is already a member"
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	var req service.AddTeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.AddMember(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// RemoveMember handles DELETE /teams/:id/members/:username
// @Summary Remove a team member
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Param username path string true "Member username"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{username} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(c.Request.Context(), id, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ProduceParts handles POST /teams/:id/produce
// @Summary Record produced parts
// @Description Append a production ledger row for the team and add the quantity to the part's stock
// @Tags production
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param production body service.ProducePartsRequest true "Part and quantity"
// @Success 201 {object} service.ProducePartsResponse "Production recorded"
// @Failure 400 {object} ErrorResponse "Invalid request or quantity"
// @Failure 404 {object} ErrorResponse "Team or part not found"
// @Failure 409 {object} ErrorResponse "Team cannot produce this part"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/{id}/produce [post]
func (h *TeamHandler) ProduceParts(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}
	username, ok := actor(c)
	if !ok {
		return
	}

	var req service.ProducePartsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.productionService.ProduceParts(c.Request.Context(), id, &req, username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTeamProductions handles GET /teams/:id/productions
// @Summary List a team's production history
// @Tags production
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ProductionListResponse "Production history, newest first"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/productions [get]
func (h *TeamHandler) GetTeamProductions(c *gin.Context) {
	id, ok := parseID(c, "id", "team")
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	productions, err := h.productionService.ListProductions(c.Request.Context(), service.ProductionFilter{TeamID: &id}, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, productions)
}
