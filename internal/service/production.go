package service

import (
	"context"
	"fmt"
	"time"

	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"
	"aircraft-factory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProductionService records manufactured parts in the ledger
type ProductionService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewProductionService creates a new production service
func NewProductionService(store *repository.Store, validator *validator.Validate) *ProductionService {
	return &ProductionService{
		store:     store,
		validator: validator,
	}
}

// ProducePartsRequest represents a production report from a team
type ProducePartsRequest struct {
	PartID   uuid.UUID `json:"part_id" validate:"required"`
	Quantity int       `json:"quantity" example:"5"`
}

// ProductionFilter narrows ledger listings
type ProductionFilter struct {
	TeamID *uuid.UUID
	PartID *uuid.UUID
}

// ProductionResponse represents one ledger row
type ProductionResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	TeamName  string    `json:"team_name,omitempty"`
	PartID    uuid.UUID `json:"part_id"`
	PartName  string    `json:"part_name,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedBy string    `json:"created_by"`
	CreatedAt string    `json:"created_at"`
}

// ProducePartsResponse represents the result of a production report
type ProducePartsResponse struct {
	Production ProductionResponse `json:"production"`
	NewStock   int                `json:"new_stock"`
	IsLowStock bool               `json:"is_low_stock"`
}

// ProductionListResponse represents a paginated list of ledger rows
type ProductionListResponse struct {
	Productions []ProductionResponse `json:"productions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// ProduceParts appends a ledger row and increases the part's stock by the same quantity.
// Both writes share one transaction and this is the only place a ledger row is created.
func (s *ProductionService) ProduceParts(ctx context.Context, teamID uuid.UUID, req *ProducePartsRequest, actor string) (*ProducePartsResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var production *models.Production
	var part *models.Part
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		team, err := tx.Teams.GetByID(ctx, teamID)
		if err != nil {
			return notFound(err, apperrors.ErrTeamNotFound, "get team")
		}

		target, err := tx.Parts.GetByID(ctx, req.PartID)
		if err != nil {
			return notFound(err, apperrors.ErrPartNotFound, "get part")
		}

		if !team.CanProducePart(target) {
			return apperrors.ErrIncompatibleTeam
		}
		if req.Quantity <= 0 {
			return apperrors.ErrInvalidQuantity
		}

		production = &models.Production{
			TeamID:    team.ID,
			PartID:    target.ID,
			Quantity:  req.Quantity,
			CreatedBy: actor,
		}
		if err := tx.Productions.Create(ctx, production); err != nil {
			return fmt.Errorf("failed to record production: %w", err)
		}
		production.Team = team

		part, err = increaseStock(ctx, tx, target.ID, req.Quantity)
		if err != nil {
			return err
		}
		production.Part = part
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"production_id": production.ID,
		"team_id":       production.TeamID,
		"part_id":       production.PartID,
		"quantity":      production.Quantity,
		"stock":         part.Stock,
	}).Info("production recorded")

	return &ProducePartsResponse{
		Production: *toProductionResponse(production),
		NewStock:   part.Stock,
		IsLowStock: part.IsLowStock,
	}, nil
}

// GetProduction retrieves a ledger row by ID
func (s *ProductionService) GetProduction(ctx context.Context, id uuid.UUID) (*ProductionResponse, error) {
	production, err := s.store.Productions.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrProductionNotFound, "get production")
	}
	return toProductionResponse(production), nil
}

// ListProductions retrieves ledger rows newest first
func (s *ProductionService) ListProductions(ctx context.Context, filter ProductionFilter, page, pageSize int) (*ProductionListResponse, error) {
	if filter.TeamID != nil {
		if _, err := s.store.Teams.GetByID(ctx, *filter.TeamID); err != nil {
			return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
		}
	}

	page, pageSize, offset := paginate(page, pageSize)
	productions, total, err := s.store.Productions.GetAll(ctx, repository.ProductionFilter{
		TeamID: filter.TeamID,
		PartID: filter.PartID,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list productions: %w", err)
	}

	responses := make([]ProductionResponse, len(productions))
	for i := range productions {
		responses[i] = *toProductionResponse(&productions[i])
	}

	return &ProductionListResponse{
		Productions: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

func toProductionResponse(production *models.Production) *ProductionResponse {
	response := &ProductionResponse{
		ID:        production.ID,
		TeamID:    production.TeamID,
		PartID:    production.PartID,
		Quantity:  production.Quantity,
		CreatedBy: production.CreatedBy,
		CreatedAt: production.CreatedAt.Format(time.RFC3339),
	}
	if production.Team != nil {
		response.TeamName = production.Team.Name
	}
	if production.Part != nil {
		response.PartName = production.Part.Name
	}
	return response
}
