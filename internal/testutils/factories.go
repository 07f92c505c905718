package testutils

import (
	"fmt"
	"time"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Team " + id.String()[:8],
		TeamType: catalog.TeamTypeBody,
	}
}

// WithType sets the team type
func (f *TeamFactory) WithType(teamType catalog.TeamType) *models.Team {
	team := f.Create()
	team.TeamType = teamType
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates a test TB2 body part with no stock
func (f *PartFactory) Create() *models.Part {
	return f.For(catalog.AircraftTB2, catalog.TeamTypeBody, 0)
}

// For creates a part of the given aircraft type and category holding stock units
func (f *PartFactory) For(aircraftType catalog.AircraftType, category catalog.TeamType, stock int) *models.Part {
	part := &models.Part{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamType:     category,
		AircraftType: aircraftType,
		Stock:        stock,
		MinimumStock: models.DefaultMinimumStock,
	}
	part.RefreshDerived()
	return part
}

// AircraftFactory provides methods to create test Aircraft data
type AircraftFactory struct{}

// NewAircraftFactory creates a new AircraftFactory
func NewAircraftFactory() *AircraftFactory {
	return &AircraftFactory{}
}

// Create creates an in-progress TB2
func (f *AircraftFactory) Create() *models.Aircraft {
	return f.WithType(catalog.AircraftTB2)
}

// WithType creates an in-progress aircraft of the given type
func (f *AircraftFactory) WithType(aircraftType catalog.AircraftType) *models.Aircraft {
	return &models.Aircraft{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AircraftType: aircraftType,
		CreatedBy:    "tester",
	}
}

// WithAssemblyTeam creates an aircraft claimed by an assembly team
func (f *AircraftFactory) WithAssemblyTeam(aircraftType catalog.AircraftType, teamID uuid.UUID) *models.Aircraft {
	aircraft := f.WithType(aircraftType)
	aircraft.AssemblyTeamID = &teamID
	return aircraft
}

// FactorySet provides all factories in one place
type FactorySet struct {
	Team     *TeamFactory
	Part     *PartFactory
	Aircraft *AircraftFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:     NewTeamFactory(),
		Part:     NewPartFactory(),
		Aircraft: NewAircraftFactory(),
	}
}

// FullPartSet builds one part per category for an aircraft type, each holding stock units
func (fs *FactorySet) FullPartSet(aircraftType catalog.AircraftType, stock int) map[catalog.TeamType]*models.Part {
	parts := make(map[catalog.TeamType]*models.Part)
	for _, category := range catalog.PartCategories() {
		parts[category] = fs.Part.For(aircraftType, category, stock)
	}
	return parts
}

// UniqueName returns a name with a random suffix
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}
