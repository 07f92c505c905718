package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TeamWithMembersResponse, error)
	GetAll(ctx context.Context, teamType string, page, pageSize int) (*TeamListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, id uuid.UUID, req *AddTeamMemberRequest) (*TeamWithMembersResponse, error)
	RemoveMember(ctx context.Context, id uuid.UUID, username string) error
}

// InventoryServiceInterface defines the interface for part administration and stock movements
type InventoryServiceInterface interface {
	CreatePart(ctx context.Context, req *CreatePartRequest) (*PartResponse, error)
	GetPart(ctx context.Context, id uuid.UUID) (*PartResponse, error)
	ListParts(ctx context.Context, filter PartFilter, page, pageSize int) (*PartListResponse, error)
	UpdateMinimumStock(ctx context.Context, id uuid.UUID, req *UpdateMinimumStockRequest) (*PartResponse, error)
	IncreaseStock(ctx context.Context, id uuid.UUID, req *StockAdjustmentRequest) (*PartResponse, error)
	DecreaseStock(ctx context.Context, id uuid.UUID, req *StockAdjustmentRequest) (*PartResponse, error)
	DeletePart(ctx context.Context, id uuid.UUID) error
}

// ProductionServiceInterface defines the interface for the production ledger
type ProductionServiceInterface interface {
	ProduceParts(ctx context.Context, teamID uuid.UUID, req *ProducePartsRequest, actor string) (*ProducePartsResponse, error)
	GetProduction(ctx context.Context, id uuid.UUID) (*ProductionResponse, error)
	ListProductions(ctx context.Context, filter ProductionFilter, page, pageSize int) (*ProductionListResponse, error)
}

// AssemblyServiceInterface defines the interface for aircraft assembly
type AssemblyServiceInterface interface {
	CreateAircraft(ctx context.Context, req *CreateAircraftRequest, actor string) (*AircraftResponse, error)
	ClaimAircraft(ctx context.Context, aircraftID uuid.UUID, req *ClaimAircraftRequest) (*AircraftResponse, error)
	GetAircraft(ctx context.Context, aircraftID uuid.UUID) (*AircraftDetailResponse, error)
	ListAircraft(ctx context.Context, filter AircraftFilter, page, pageSize int) (*AircraftListResponse, error)
	CanAddPart(ctx context.Context, aircraftID, partID uuid.UUID) (*CanAddPartResponse, error)
	AttachPart(ctx context.Context, aircraftID uuid.UUID, req *AttachPartRequest, actor string) (*AttachPartResponse, error)
	DetachPart(ctx context.Context, aircraftPartID uuid.UUID, actor string) (*DetachPartResponse, error)
	CompleteAircraft(ctx context.Context, aircraftID uuid.UUID) (*CompleteAircraftResponse, error)
	GetMissingParts(ctx context.Context, aircraftID uuid.UUID) (*MissingPartsResponse, error)
	GetPartsSummary(ctx context.Context, aircraftID uuid.UUID) (*PartsSummaryResponse, error)
	DeleteAircraft(ctx context.Context, aircraftID uuid.UUID, actor string) error
}

var (
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ InventoryServiceInterface  = (*InventoryService)(nil)
	_ ProductionServiceInterface = (*ProductionService)(nil)
	_ AssemblyServiceInterface   = (*AssemblyService)(nil)
)
