package repository

import (
	"context"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
	GetWithMembers(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context, teamType catalog.TeamType, limit, offset int) ([]models.Team, int64, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	CheckTeamNameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	AddMember(ctx context.Context, member *models.TeamMember) error
	RemoveMember(ctx context.Context, teamID uuid.UUID, username string) (int64, error)
}

// PartFilter narrows part listings; zero values match everything
type PartFilter struct {
	AircraftType catalog.AircraftType
	TeamType     catalog.TeamType
	LowStockOnly bool
}

// PartRepositoryInterface defines the interface for part repository operations.
// Stock is only changed by IncreaseStock and DecreaseStock, which are single
// conditional UPDATE statements returning the number of affected rows.
type PartRepositoryInterface interface {
	Create(ctx context.Context, part *models.Part) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error)
	GetAll(ctx context.Context, filter PartFilter, limit, offset int) ([]models.Part, int64, error)
	IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error)
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error)
	UpdateMinimumStock(ctx context.Context, id uuid.UUID, minimumStock int) (int64, error)
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductionFilter narrows ledger listings; nil values match everything
type ProductionFilter struct {
	TeamID *uuid.UUID
	PartID *uuid.UUID
}

// ProductionRepositoryInterface defines the interface for the append-only production ledger
type ProductionRepositoryInterface interface {
	Create(ctx context.Context, production *models.Production) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Production, error)
	GetAll(ctx context.Context, filter ProductionFilter, limit, offset int) ([]models.Production, int64, error)
	TotalByTeam(ctx context.Context, teamID uuid.UUID) (int64, error)
}

// AircraftFilter narrows aircraft listings; zero values match everything
type AircraftFilter struct {
	Status         models.AircraftStatus
	AircraftType   catalog.AircraftType
	AssemblyTeamID *uuid.UUID
}

// AircraftRepositoryInterface defines the interface for aircraft repository operations
type AircraftRepositoryInterface interface {
	Create(ctx context.Context, aircraft *models.Aircraft) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Aircraft, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Aircraft, error)
	GetWithParts(ctx context.Context, id uuid.UUID) (*models.Aircraft, error)
	GetAll(ctx context.Context, filter AircraftFilter, limit, offset int) ([]models.Aircraft, int64, error)
	UpdateCompletion(ctx context.Context, aircraft *models.Aircraft) error
	UpdateAssemblyTeam(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AircraftPartRepositoryInterface defines the interface for the assembly event log
type AircraftPartRepositoryInterface interface {
	Create(ctx context.Context, aircraftPart *models.AircraftPart) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AircraftPart, error)
	GetByAircraftID(ctx context.Context, aircraftID uuid.UUID) ([]models.AircraftPart, error)
	Exists(ctx context.Context, aircraftID, partID uuid.UUID) (bool, error)
	CountByCategory(ctx context.Context, aircraftID uuid.UUID) (map[catalog.TeamType]int, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
