package service

import (
	"context"
	"errors"
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

// InventoryService handles part administration and stock movements
type InventoryService struct {
	store               *repository.Store
	catalog             *catalog.Catalog
	validator           *validator.Validate
	defaultMinimumStock int
}

// NewInventoryService creates a new inventory service
func NewInventoryService(store *repository.Store, cat *catalog.Catalog, validator *validator.Validate, defaultMinimumStock int) *InventoryService {
	if defaultMinimumStock < 0 {
		defaultMinimumStock = models.DefaultMinimumStock
	}
	return &InventoryService{
		store:               store,
		catalog:             cat,
		validator:           validator,
		defaultMinimumStock: defaultMinimumStock,
	}
}

// CreatePartRequest represents the request to create a stock bucket
type CreatePartRequest struct {
	TeamType     string `json:"team_type" validate:"required,part_category" example:"BODY"`
	AircraftType string `json:"aircraft_type" validate:"required,aircraft_type" example:"TB2"`
	MinimumStock *int   `json:"minimum_stock,omitempty" validate:"omitempty,gte=0"`
}

// UpdateMinimumStockRequest represents the request to change a part's low-stock threshold
type UpdateMinimumStockRequest struct {
	MinimumStock *int `json:"minimum_stock" validate:"required,gte=0"`
}

// StockAdjustmentRequest represents a manual stock correction
type StockAdjustmentRequest struct {
	Quantity int `json:"quantity" example:"1"`
}

// PartFilter narrows part listings
type PartFilter struct {
	AircraftType string
	TeamType     string
	LowStockOnly bool
}

// PartResponse represents the response for part operations
type PartResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	TeamType     string    `json:"team_type"`
	AircraftType string    `json:"aircraft_type"`
	Stock        int       `json:"stock"`
	MinimumStock int       `json:"minimum_stock"`
	IsLowStock   bool      `json:"is_low_stock"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts    []PartResponse `json:"parts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CreatePart creates an empty stock bucket for a category and aircraft type
func (s *InventoryService) CreatePart(ctx context.Context, req *CreatePartRequest) (*PartResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	aircraftType := catalog.AircraftType(req.AircraftType)
	category := catalog.TeamType(req.TeamType)
	if !s.catalog.Supports(aircraftType, category) {
		return nil, apperrors.ErrInvalidPartCategory
	}

	minimumStock := s.defaultMinimumStock
	if req.MinimumStock != nil {
		minimumStock = *req.MinimumStock
	}

	part := &models.Part{
		TeamType:     category,
		AircraftType: aircraftType,
		MinimumStock: minimumStock,
	}
	part.RefreshDerived()

	if err := s.store.Parts.Create(ctx, part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"part_id": part.ID,
		"part":    part.Name,
	}).Info("part created")

	return toPartResponse(part), nil
}

// GetPart retrieves a part by ID
func (s *InventoryService) GetPart(ctx context.Context, id uuid.UUID) (*PartResponse, error) {
	part, err := s.store.Parts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPartNotFound, "get part")
	}
	return toPartResponse(part), nil
}

// ListParts retrieves parts with optional aircraft type, category and low-stock filters
func (s *InventoryService) ListParts(ctx context.Context, filter PartFilter, page, pageSize int) (*PartListResponse, error) {
	repoFilter := repository.PartFilter{LowStockOnly: filter.LowStockOnly}
	if filter.AircraftType != "" {
		aircraftType := catalog.AircraftType(filter.AircraftType)
		if !aircraftType.IsValid() {
			return nil, apperrors.ErrInvalidAircraftType
		}
		repoFilter.AircraftType = aircraftType
	}
	if filter.TeamType != "" {
		category := catalog.TeamType(filter.TeamType)
		if !category.IsPartCategory() {
			return nil, apperrors.ErrInvalidPartCategory
		}
		repoFilter.TeamType = category
	}

	page, pageSize, offset := paginate(page, pageSize)
	parts, total, err := s.store.Parts.GetAll(ctx, repoFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *toPartResponse(&parts[i])
	}

	return &PartListResponse{
		Parts:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateMinimumStock changes the low-stock threshold of a part
func (s *InventoryService) UpdateMinimumStock(ctx context.Context, id uuid.UUID, req *UpdateMinimumStockRequest) (*PartResponse, error) {
	if req.MinimumStock == nil || *req.MinimumStock < 0 {
		return nil, apperrors.ErrInvalidMinimumStock
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var part *models.Part
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		rows, err := tx.Parts.UpdateMinimumStock(ctx, id, *req.MinimumStock)
		if err != nil {
			return fmt.Errorf("failed to update minimum stock: %w", err)
		}
		if rows == 0 {
			return apperrors.ErrPartNotFound
		}
		part, err = reloadPart(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toPartResponse(part), nil
}

// IncreaseStock adds units to a part outside the production ledger, e.g. after a stock count
func (s *InventoryService) IncreaseStock(ctx context.Context, id uuid.UUID, req *StockAdjustmentRequest) (*PartResponse, error) {
	var part *models.Part
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		var err error
		part, err = increaseStock(ctx, tx, id, req.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// DecreaseStock removes units from a part. It is the compensating action for a wrong production entry.
func (s *InventoryService) DecreaseStock(ctx context.Context, id uuid.UUID, req *StockAdjustmentRequest) (*PartResponse, error) {
	var part *models.Part
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		var err error
		part, err = decreaseStock(ctx, tx, id, req.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// DeletePart deletes a part that no ledger row or aircraft references
func (s *InventoryService) DeletePart(ctx context.Context, id uuid.UUID) error {
	return s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.Parts.GetByID(ctx, id); err != nil {
			return notFound(err, apperrors.ErrPartNotFound, "get part")
		}

		refs, err := tx.Parts.CountReferences(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count part references: %w", err)
		}
		if refs > 0 {
			return apperrors.ErrPartInUse
		}

		if err := tx.Parts.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete part: %w", err)
		}
		logger.WithContext(ctx).WithField("part_id", id).Info("part deleted")
		return nil
	})
}

// increaseStock is the only code path that adds stock. It must run inside tx.
func increaseStock(ctx context.Context, tx *repository.Store, partID uuid.UUID, quantity int) (*models.Part, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	rows, err := tx.Parts.IncreaseStock(ctx, partID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to increase stock: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrPartNotFound
	}

	part, err := reloadPart(ctx, tx, partID)
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"part_id":  part.ID,
		"quantity": quantity,
		"stock":    part.Stock,
	}).Info("stock increased")
	return part, nil
}

// decreaseStock is the only code path that removes stock. The floor check is part of the
// UPDATE itself, so a concurrent decrement can never drive stock below zero.
func decreaseStock(ctx context.Context, tx *repository.Store, partID uuid.UUID, quantity int) (*models.Part, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	rows, err := tx.Parts.DecreaseStock(ctx, partID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to decrease stock: %w", err)
	}
	if rows == 0 {
		current, err := tx.Parts.GetByID(ctx, partID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrPartNotFound, "get part")
		}
		return nil, apperrors.NewInsufficientStockError(current.Name, current.Stock, quantity)
	}

	part, err := reloadPart(ctx, tx, partID)
	if err != nil {
		return nil, err
	}

	entry := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"part_id":  part.ID,
		"quantity": quantity,
		"stock":    part.Stock,
	})
	if part.IsLowStock {
		entry.Warn("stock decreased below minimum")
	} else {
		entry.Info("stock decreased")
	}
	return part, nil
}

func reloadPart(ctx context.Context, tx *repository.Store, partID uuid.UUID) (*models.Part, error) {
	part, err := tx.Parts.GetByID(ctx, partID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPartNotFound, "reload part")
	}
	return part, nil
}

// isStockExhausted reports a refused decrement
func isStockExhausted(err error) bool {
	return errors.Is(err, apperrors.ErrInsufficientStock)
}

func toPartResponse(part *models.Part) *PartResponse {
	return &PartResponse{
		ID:           part.ID,
		Name:         part.Name,
		TeamType:     string(part.TeamType),
		AircraftType: string(part.AircraftType),
		Stock:        part.Stock,
		MinimumStock: part.MinimumStock,
		IsLowStock:   models.LowStock(part.Stock, part.MinimumStock),
		CreatedAt:    part.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    part.UpdatedAt.Format(time.RFC3339),
	}
}
