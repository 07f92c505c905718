package service

import (
	"context"
	"fmt"
	"time"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"
	"aircraft-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles business logic for teams
type TeamService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(store *repository.Store, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     store,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100" example:"Wing Team 1"`
	TeamType string `json:"team_type" validate:"required,team_type" example:"WING"`
}

// UpdateTeamRequest represents the request to rename a team.
// The team type is fixed at creation because ledger rows depend on it.
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// AddTeamMemberRequest represents the request to add a user to a team
type AddTeamMemberRequest struct {
	Username string `json:"username" validate:"required,max=40" example:"ayse"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TeamType        string    `json:"team_type"`
	TeamTypeDisplay string    `json:"team_type_display"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// TeamWithMembersResponse represents a team with its members and production total
type TeamWithMembersResponse struct {
	TeamResponse
	Members       []string `json:"members"`
	TotalProduced int64    `json:"total_produced"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	exists, err := s.store.Teams.CheckTeamNameExists(ctx, req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		Name:     req.Name,
		TeamType: catalog.TeamType(req.TeamType),
	}
	if err := s.store.Teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   team.ID,
		"team_type": team.TeamType,
	}).Info("team created")

	return toTeamResponse(team), nil
}

// GetByID retrieves a team with its members and production total
func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (*TeamWithMembersResponse, error) {
	team, err := s.store.Teams.GetWithMembers(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}

	total, err := s.store.Productions.TotalByTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to sum team production: %w", err)
	}

	members := make([]string, len(team.Members))
	for i, m := range team.Members {
		members[i] = m.Username
	}

	return &TeamWithMembersResponse{
		TeamResponse:  *toTeamResponse(team),
		Members:       members,
		TotalProduced: total,
	}, nil
}

// GetAll retrieves teams with an optional team type filter
func (s *TeamService) GetAll(ctx context.Context, teamType string, page, pageSize int) (*TeamListResponse, error) {
	filter := catalog.TeamType(teamType)
	if teamType != "" && !filter.IsValid() {
		return nil, apperrors.ErrInvalidTeamType
	}

	page, pageSize, offset := paginate(page, pageSize)
	teams, total, err := s.store.Teams.GetAll(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update renames a team
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.store.Teams.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}

	if req.Name != team.Name {
		exists, err := s.store.Teams.CheckTeamNameExists(ctx, req.Name, &id)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if exists {
			return nil, apperrors.ErrTeamExists
		}
		team.Name = req.Name
	}

	if err := s.store.Teams.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return toTeamResponse(team), nil
}

// Delete deletes a team that has no production history and owns no aircraft
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Teams.GetByID(ctx, id); err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "get team")
		}

		refs, err := tx.Teams.CountReferences(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count team references: %w", err)
		}
		if refs > 0 {
			return apperrors.ErrTeamInUse
		}

		if err := tx.Teams.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		logger.WithContext(ctx).WithField("team_id", id).Info("team deleted")
		return nil
	})
}

// AddMember adds a user to a team
func (s *TeamService) AddMember(ctx context.Context, id uuid.UUID, req *AddTeamMemberRequest) (*TeamWithMembersResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.store.Teams.GetWithMembers(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	if team.HasMember(req.Username) {
		return nil, apperrors.ErrTeamMemberExists
	}

	if err := s.store.Teams.AddMember(ctx, &models.TeamMember{TeamID: id, Username: req.Username}); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	return s.GetByID(ctx, id)
}

// RemoveMember removes a user from a team
func (s *TeamService) RemoveMember(ctx context.Context, id uuid.UUID, username string) error {
	if _, err := s.store.Teams.GetByID(ctx, id); err != nil {
		return notFound(err, apperrors.ErrTeamNotFound, "get team")
	}

	removed, err := s.store.Teams.RemoveMember(ctx, id, username)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	if removed == 0 {
		return apperrors.ErrTeamMemberNotFound
	}
	return nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		TeamType:        string(team.TeamType),
		TeamTypeDisplay: team.TeamType.DisplayName(),
		CreatedAt:       team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       team.UpdatedAt.Format(time.RFC3339),
	}
}
