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

// AssemblyService owns aircraft assembly: attaching and detaching parts, keeping
// stock in step with the assembly log and maintaining each aircraft's completion state.
//
// Every mutation locks the aircraft row first and only then touches part rows,
// so concurrent callers always acquire locks in the same order.
type AssemblyService struct {
	store     *repository.Store
	catalog   *catalog.Catalog
	validator *validator.Validate
	now       func() time.Time
}

// NewAssemblyService creates a new assembly service
func NewAssemblyService(store *repository.Store, cat *catalog.Catalog, validator *validator.Validate) *AssemblyService {
	return &AssemblyService{
		store:     store,
		catalog:   cat,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateAircraftRequest represents the request to start assembling an aircraft
type CreateAircraftRequest struct {
	AircraftType   string     `json:"aircraft_type" validate:"required,aircraft_type" example:"TB2"`
	AssemblyTeamID *uuid.UUID `json:"assembly_team_id,omitempty"`
}

// ClaimAircraftRequest represents an assembly team taking ownership of an aircraft
type ClaimAircraftRequest struct {
	AssemblyTeamID uuid.UUID `json:"assembly_team_id" validate:"required"`
}

// AttachPartRequest represents the request to mount one unit of a part
type AttachPartRequest struct {
	PartID uuid.UUID `json:"part_id" validate:"required"`
}

// AircraftFilter narrows aircraft listings
type AircraftFilter struct {
	Status         string
	AircraftType   string
	AssemblyTeamID *uuid.UUID
}

// AircraftResponse represents the response for aircraft operations
type AircraftResponse struct {
	ID               uuid.UUID  `json:"id"`
	AircraftType     string     `json:"aircraft_type"`
	AssemblyTeamID   *uuid.UUID `json:"assembly_team_id,omitempty"`
	AssemblyTeamName string     `json:"assembly_team_name,omitempty"`
	Status           string     `json:"status"`
	IsComplete       bool       `json:"is_complete"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedBy        string     `json:"created_by"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// AircraftPartResponse represents one attached part
type AircraftPartResponse struct {
	ID         uuid.UUID `json:"id"`
	AircraftID uuid.UUID `json:"aircraft_id"`
	PartID     uuid.UUID `json:"part_id"`
	PartName   string    `json:"part_name,omitempty"`
	TeamType   string    `json:"team_type,omitempty"`
	AddedBy    string    `json:"added_by"`
	AddedAt    time.Time `json:"added_at"`
}

// AircraftDetailResponse represents an aircraft with its attached parts
type AircraftDetailResponse struct {
	AircraftResponse
	Parts        []AircraftPartResponse `json:"parts"`
	MissingParts map[string]int         `json:"missing_parts"`
}

// AircraftListResponse represents a paginated list of aircraft
type AircraftListResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// AttachPartResponse represents the result of attaching a part
type AttachPartResponse struct {
	Attached     AircraftPartResponse `json:"attached"`
	IsComplete   bool                 `json:"is_complete"`
	MissingParts map[string]int       `json:"missing_parts"`
}

// DetachPartResponse represents the result of detaching a part
type DetachPartResponse struct {
	AircraftID   uuid.UUID      `json:"aircraft_id"`
	IsComplete   bool           `json:"is_complete"`
	MissingParts map[string]int `json:"missing_parts"`
}

// CompleteAircraftResponse represents a completed aircraft
type CompleteAircraftResponse struct {
	AircraftID  uuid.UUID `json:"aircraft_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// MissingPartsResponse lists how many parts of each category an aircraft still needs
type MissingPartsResponse struct {
	AircraftID   uuid.UUID      `json:"aircraft_id"`
	AircraftType string         `json:"aircraft_type"`
	IsComplete   bool           `json:"is_complete"`
	MissingParts map[string]int `json:"missing_parts"`
}

// CategorySummary is one row of an aircraft's bill of materials
type CategorySummary struct {
	Category    string `json:"category"`
	DisplayName string `json:"display_name"`
	Required    int    `json:"required"`
	Current     int    `json:"current"`
	Complete    bool   `json:"complete"`
}

// PartsSummaryResponse compares attached parts with the bill of materials
type PartsSummaryResponse struct {
	AircraftID   uuid.UUID         `json:"aircraft_id"`
	AircraftType string            `json:"aircraft_type"`
	IsComplete   bool              `json:"is_complete"`
	Categories   []CategorySummary `json:"categories"`
}

// CanAddPartResponse is the outcome of the attach rules without attaching
type CanAddPartResponse struct {
	Allowed bool   `json:"allowed"`
	Code    string `json:"code,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// CreateAircraft starts a new aircraft, optionally owned by an assembly team
func (s *AssemblyService) CreateAircraft(ctx context.Context, req *CreateAircraftRequest, actor string) (*AircraftResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	aircraft := &models.Aircraft{
		AircraftType: catalog.AircraftType(req.AircraftType),
		CreatedBy:    actor,
	}

	// A bill of materials with no positive quota is satisfied by an empty aircraft
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		if req.AssemblyTeamID != nil {
			team, err := s.assemblyTeam(ctx, tx, *req.AssemblyTeamID)
			if err != nil {
				return err
			}
			aircraft.AssemblyTeamID = &team.ID
			aircraft.AssemblyTeam = team
		}

		if err := tx.Aircraft.Create(ctx, aircraft); err != nil {
			return fmt.Errorf("failed to create aircraft: %w", err)
		}
		_, err := s.recomputeCompletion(ctx, tx, aircraft)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"aircraft_id":   aircraft.ID,
		"aircraft_type": aircraft.AircraftType,
	}).Info("aircraft created")

	return toAircraftResponse(aircraft), nil
}

// ClaimAircraft assigns an unowned aircraft to an assembly team
func (s *AssemblyService) ClaimAircraft(ctx context.Context, aircraftID uuid.UUID, req *ClaimAircraftRequest) (*AircraftResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var aircraft *models.Aircraft
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		var err error
		aircraft, err = tx.Aircraft.GetByIDForUpdate(ctx, aircraftID)
		if err != nil {
			return notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}

		team, err := s.assemblyTeam(ctx, tx, req.AssemblyTeamID)
		if err != nil {
			return err
		}

		if aircraft.AssemblyTeamID != nil {
			if *aircraft.AssemblyTeamID == team.ID {
				aircraft.AssemblyTeam = team
				return nil
			}
			return apperrors.ErrAircraftAlreadyClaimed
		}

		if err := tx.Aircraft.UpdateAssemblyTeam(ctx, aircraftID, team.ID); err != nil {
			return fmt.Errorf("failed to claim aircraft: %w", err)
		}
		aircraft.AssemblyTeamID = &team.ID
		aircraft.AssemblyTeam = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toAircraftResponse(aircraft), nil
}

// GetAircraft retrieves an aircraft with its attached parts and missing categories
func (s *AssemblyService) GetAircraft(ctx context.Context, aircraftID uuid.UUID) (*AircraftDetailResponse, error) {
	aircraft, err := s.store.Aircraft.GetWithParts(ctx, aircraftID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
	}

	parts := make([]AircraftPartResponse, len(aircraft.AircraftParts))
	for i := range aircraft.AircraftParts {
		parts[i] = *toAircraftPartResponse(&aircraft.AircraftParts[i])
	}

	return &AircraftDetailResponse{
		AircraftResponse: *toAircraftResponse(aircraft),
		Parts:            parts,
		MissingParts:     categoryCounts(s.catalog.MissingParts(aircraft.AircraftType, aircraft.AttachedCounts())),
	}, nil
}

// ListAircraft retrieves aircraft filtered by status, type and owning team
func (s *AssemblyService) ListAircraft(ctx context.Context, filter AircraftFilter, page, pageSize int) (*AircraftListResponse, error) {
	repoFilter := repository.AircraftFilter{AssemblyTeamID: filter.AssemblyTeamID}
	if filter.Status != "" {
		status := models.AircraftStatus(filter.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidAircraftState
		}
		repoFilter.Status = status
	}
	if filter.AircraftType != "" {
		aircraftType := catalog.AircraftType(filter.AircraftType)
		if !aircraftType.IsValid() {
			return nil, apperrors.ErrInvalidAircraftType
		}
		repoFilter.AircraftType = aircraftType
	}

	page, pageSize, offset := paginate(page, pageSize)
	list, total, err := s.store.Aircraft.GetAll(ctx, repoFilter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}

	responses := make([]AircraftResponse, len(list))
	for i := range list {
		responses[i] = *toAircraftResponse(&list[i])
	}

	return &AircraftListResponse{
		Aircraft: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// CanAddPart evaluates the attach rules for a part without attaching it
func (s *AssemblyService) CanAddPart(ctx context.Context, aircraftID, partID uuid.UUID) (*CanAddPartResponse, error) {
	aircraft, err := s.store.Aircraft.GetByID(ctx, aircraftID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
	}
	part, err := s.store.Parts.GetByID(ctx, partID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPartNotFound, "get part")
	}

	err = s.checkAttach(ctx, s.store, aircraft, part)
	if err == nil {
		return &CanAddPartResponse{Allowed: true}, nil
	}
	if !apperrors.IsDomainRule(err) {
		return nil, err
	}
	return &CanAddPartResponse{
		Allowed: false,
		Code:    string(apperrors.RuleCodeOf(err)),
		Reason:  err.Error(),
	}, nil
}

// AttachPart consumes one unit of a part into an aircraft. The rules are checked
// again under the aircraft row lock, the assembly event is recorded, stock is
// decremented conditionally and completion is recomputed, all in one transaction.
func (s *AssemblyService) AttachPart(ctx context.Context, aircraftID uuid.UUID, req *AttachPartRequest, actor string) (*AttachPartResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var attached *models.AircraftPart
	var aircraft *models.Aircraft
	var missing map[catalog.TeamType]int
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		var err error
		aircraft, err = tx.Aircraft.GetByIDForUpdate(ctx, aircraftID)
		if err != nil {
			return notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}

		part, err := tx.Parts.GetByID(ctx, req.PartID)
		if err != nil {
			return notFound(err, apperrors.ErrPartNotFound, "get part")
		}

		if err := s.checkAttach(ctx, tx, aircraft, part); err != nil {
			return err
		}

		already, err := tx.AircraftParts.Exists(ctx, aircraft.ID, part.ID)
		if err != nil {
			return fmt.Errorf("failed to check attached parts: %w", err)
		}
		if already {
			return apperrors.ErrPartAlreadyAttached
		}

		attached = &models.AircraftPart{
			AircraftID: aircraft.ID,
			PartID:     part.ID,
			AddedBy:    actor,
			AddedAt:    s.now(),
		}
		if err := tx.AircraftParts.Create(ctx, attached); err != nil {
			return fmt.Errorf("failed to attach part: %w", err)
		}

		// The snapshot above may be stale; the conditional decrement is authoritative.
		part, err = decreaseStock(ctx, tx, part.ID, 1)
		if err != nil {
			if isStockExhausted(err) {
				return apperrors.ErrOutOfStock
			}
			return err
		}
		attached.Part = part

		missing, err = s.recomputeCompletion(ctx, tx, aircraft)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"aircraft_id":      aircraft.ID,
		"aircraft_part_id": attached.ID,
		"part_id":          attached.PartID,
		"is_complete":      aircraft.IsComplete,
	}).Info("part attached")

	return &AttachPartResponse{
		Attached:     *toAircraftPartResponse(attached),
		IsComplete:   aircraft.IsComplete,
		MissingParts: categoryCounts(missing),
	}, nil
}

// DetachPart removes an assembly event, returns its unit to stock and recomputes completion.
// Detaching from a complete aircraft moves it back to in production.
func (s *AssemblyService) DetachPart(ctx context.Context, aircraftPartID uuid.UUID, actor string) (*DetachPartResponse, error) {
	var aircraft *models.Aircraft
	var missing map[catalog.TeamType]int
	var partID uuid.UUID
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		event, err := tx.AircraftParts.GetByID(ctx, aircraftPartID)
		if err != nil {
			return notFound(err, apperrors.ErrAircraftPartNotFound, "get aircraft part")
		}
		partID = event.PartID

		aircraft, err = tx.Aircraft.GetByIDForUpdate(ctx, event.AircraftID)
		if err != nil {
			return notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}

		// A concurrent detach of the same event deletes zero rows here and must not restore stock twice.
		removed, err := tx.AircraftParts.Delete(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("failed to detach part: %w", err)
		}
		if removed == 0 {
			return apperrors.ErrAircraftPartNotFound
		}

		if _, err := increaseStock(ctx, tx, event.PartID, 1); err != nil {
			return err
		}

		missing, err = s.recomputeCompletion(ctx, tx, aircraft)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"aircraft_id":      aircraft.ID,
		"aircraft_part_id": aircraftPartID,
		"part_id":          partID,
		"detached_by":      actor,
		"is_complete":      aircraft.IsComplete,
	}).Info("part detached")

	return &DetachPartResponse{
		AircraftID:   aircraft.ID,
		IsComplete:   aircraft.IsComplete,
		MissingParts: categoryCounts(missing),
	}, nil
}

// CompleteAircraft confirms that an aircraft meets its bill of materials.
// It is idempotent: an already complete aircraft keeps its completion time.
func (s *AssemblyService) CompleteAircraft(ctx context.Context, aircraftID uuid.UUID) (*CompleteAircraftResponse, error) {
	var aircraft *models.Aircraft
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		var err error
		aircraft, err = tx.Aircraft.GetByIDForUpdate(ctx, aircraftID)
		if err != nil {
			return notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}

		missing, err := s.recomputeCompletion(ctx, tx, aircraft)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return apperrors.ErrIncompleteAircraft
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CompleteAircraftResponse{
		AircraftID:  aircraft.ID,
		CompletedAt: *aircraft.CompletedAt,
	}, nil
}

// GetMissingParts lists, per category, how many parts an aircraft still needs
func (s *AssemblyService) GetMissingParts(ctx context.Context, aircraftID uuid.UUID) (*MissingPartsResponse, error) {
	aircraft, err := s.store.Aircraft.GetByID(ctx, aircraftID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
	}

	counts, err := s.store.AircraftParts.CountByCategory(ctx, aircraft.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attached parts: %w", err)
	}
	missing := s.catalog.MissingParts(aircraft.AircraftType, counts)

	return &MissingPartsResponse{
		AircraftID:   aircraft.ID,
		AircraftType: string(aircraft.AircraftType),
		IsComplete:   len(missing) == 0,
		MissingParts: categoryCounts(missing),
	}, nil
}

// GetPartsSummary compares the attached parts of an aircraft with its bill of materials
func (s *AssemblyService) GetPartsSummary(ctx context.Context, aircraftID uuid.UUID) (*PartsSummaryResponse, error) {
	aircraft, err := s.store.Aircraft.GetByID(ctx, aircraftID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
	}

	counts, err := s.store.AircraftParts.CountByCategory(ctx, aircraft.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attached parts: %w", err)
	}

	categories := s.catalog.CategoriesFor(aircraft.AircraftType)
	summary := make([]CategorySummary, 0, len(categories))
	for _, category := range categories {
		required := s.catalog.RequiredCount(aircraft.AircraftType, category)
		summary = append(summary, CategorySummary{
			Category:    string(category),
			DisplayName: category.DisplayName(),
			Required:    required,
			Current:     counts[category],
			Complete:    counts[category] >= required,
		})
	}

	return &PartsSummaryResponse{
		AircraftID:   aircraft.ID,
		AircraftType: string(aircraft.AircraftType),
		IsComplete:   s.catalog.IsComplete(aircraft.AircraftType, counts),
		Categories:   summary,
	}, nil
}

// DeleteAircraft detaches every part, returning each unit to stock, and then deletes the aircraft
func (s *AssemblyService) DeleteAircraft(ctx context.Context, aircraftID uuid.UUID, actor string) error {
	restored := 0
	err := s.store.WithTransaction(ctx, func(tx *repository.Store) error {
		aircraft, err := tx.Aircraft.GetByIDForUpdate(ctx, aircraftID)
		if err != nil {
			return notFound(err, apperrors.ErrAircraftNotFound, "get aircraft")
		}

		events, err := tx.AircraftParts.GetByAircraftID(ctx, aircraft.ID)
		if err != nil {
			return fmt.Errorf("failed to list attached parts: %w", err)
		}

		for _, event := range events {
			removed, err := tx.AircraftParts.Delete(ctx, event.ID)
			if err != nil {
				return fmt.Errorf("failed to detach part: %w", err)
			}
			if removed == 0 {
				continue
			}
			if _, err := increaseStock(ctx, tx, event.PartID, 1); err != nil {
				return err
			}
			restored++
		}

		if err := tx.Aircraft.Delete(ctx, aircraft.ID); err != nil {
			return fmt.Errorf("failed to delete aircraft: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"aircraft_id":    aircraftID,
		"deleted_by":     actor,
		"parts_restored": restored,
	}).Info("aircraft deleted")
	return nil
}

// checkAttach applies the attach rules in order: completed aircraft, compatibility, stock, quota
func (s *AssemblyService) checkAttach(ctx context.Context, store *repository.Store, aircraft *models.Aircraft, part *models.Part) error {
	if aircraft.CompletedAt != nil {
		return apperrors.ErrAircraftAlreadyCompleted
	}
	if !part.IsCompatibleWith(aircraft) {
		return apperrors.ErrIncompatiblePart
	}
	if part.Stock <= 0 {
		return apperrors.ErrOutOfStock
	}

	counts, err := store.AircraftParts.CountByCategory(ctx, aircraft.ID)
	if err != nil {
		return fmt.Errorf("failed to count attached parts: %w", err)
	}
	required := s.catalog.RequiredCount(aircraft.AircraftType, part.TeamType)
	if counts[part.TeamType] >= required {
		return apperrors.NewQuotaExceededError(part.TeamType.DisplayName(), required)
	}
	return nil
}

// recomputeCompletion derives completion from the assembly log and persists it in tx
func (s *AssemblyService) recomputeCompletion(ctx context.Context, tx *repository.Store, aircraft *models.Aircraft) (map[catalog.TeamType]int, error) {
	counts, err := tx.AircraftParts.CountByCategory(ctx, aircraft.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attached parts: %w", err)
	}

	missing := s.catalog.MissingParts(aircraft.AircraftType, counts)
	wasComplete := aircraft.IsComplete
	changed := aircraft.ApplyCompletion(len(missing) == 0, s.now())
	if !changed && wasComplete == aircraft.IsComplete {
		return missing, nil
	}

	if err := tx.Aircraft.UpdateCompletion(ctx, aircraft); err != nil {
		return nil, fmt.Errorf("failed to update aircraft completion: %w", err)
	}

	if changed {
		entry := logger.WithContext(ctx).WithField("aircraft_id", aircraft.ID)
		if aircraft.IsComplete {
			entry.WithField("completed_at", aircraft.CompletedAt).Info("aircraft completed")
		} else {
			entry.Info("aircraft returned to production")
		}
	}
	return missing, nil
}

func (s *AssemblyService) assemblyTeam(ctx context.Context, store *repository.Store, teamID uuid.UUID) (*models.Team, error) {
	team, err := store.Teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrTeamNotFound, "get team")
	}
	if !team.IsAssembly() {
		return nil, apperrors.ErrNotAnAssemblyTeam
	}
	return team, nil
}

func categoryCounts(counts map[catalog.TeamType]int) map[string]int {
	out := make(map[string]int, len(counts))
	for category, count := range counts {
		out[string(category)] = count
	}
	return out
}

func toAircraftResponse(aircraft *models.Aircraft) *AircraftResponse {
	response := &AircraftResponse{
		ID:             aircraft.ID,
		AircraftType:   string(aircraft.AircraftType),
		AssemblyTeamID: aircraft.AssemblyTeamID,
		Status:         string(aircraft.Status()),
		IsComplete:     aircraft.IsComplete,
		CompletedAt:    aircraft.CompletedAt,
		CreatedBy:      aircraft.CreatedBy,
		CreatedAt:      aircraft.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      aircraft.UpdatedAt.Format(time.RFC3339),
	}
	if aircraft.AssemblyTeam != nil {
		response.AssemblyTeamName = aircraft.AssemblyTeam.Name
	}
	return response
}

func toAircraftPartResponse(event *models.AircraftPart) *AircraftPartResponse {
	response := &AircraftPartResponse{
		ID:         event.ID,
		AircraftID: event.AircraftID,
		PartID:     event.PartID,
		AddedBy:    event.AddedBy,
		AddedAt:    event.AddedAt,
	}
	if event.Part != nil {
		response.PartName = event.Part.Name
		response.TeamType = string(event.Part.TeamType)
	}
	return response
}
