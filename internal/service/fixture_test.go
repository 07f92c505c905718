package service_test

import (
	"context"
	"testing"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"
	"aircraft-factory-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// factoryFixture wires every service to one private SQLite database
type factoryFixture struct {
	ctx        context.Context
	store      *repository.Store
	catalog    *catalog.Catalog
	validator  *validator.Validate
	teams      *service.TeamService
	inventory  *service.InventoryService
	production *service.ProductionService
	assembly   *service.AssemblyService
	factories  *testutils.FactorySet
}

func newFixture(t testing.TB) *factoryFixture {
	return newFixtureWithCatalog(t, catalog.Default())
}

func newFixtureWithCatalog(t testing.TB, cat *catalog.Catalog) *factoryFixture {
	return newFixtureOn(testutils.NewSQLiteDB(t), cat)
}

func newFixtureOn(db *gorm.DB, cat *catalog.Catalog) *factoryFixture {
	store := repository.NewStore(db)
	v := service.NewValidator()

	return &factoryFixture{
		ctx:        context.Background(),
		store:      store,
		catalog:    cat,
		validator:  v,
		teams:      service.NewTeamService(store, v),
		inventory:  service.NewInventoryService(store, cat, v, models.DefaultMinimumStock),
		production: service.NewProductionService(store, v),
		assembly:   service.NewAssemblyService(store, cat, v),
		factories:  testutils.NewFactorySet(),
	}
}

func (f *factoryFixture) createTeam(t testing.TB, teamType catalog.TeamType) *models.Team {
	team := f.factories.Team.WithType(teamType)
	require.NoError(t, f.store.Teams.Create(f.ctx, team))
	return team
}

func (f *factoryFixture) createPart(t testing.TB, aircraftType catalog.AircraftType, category catalog.TeamType, stock int) *models.Part {
	part := f.factories.Part.For(aircraftType, category, stock)
	require.NoError(t, f.store.Parts.Create(f.ctx, part))
	return part
}

func (f *factoryFixture) createFullPartSet(t testing.TB, aircraftType catalog.AircraftType, stock int) map[catalog.TeamType]*models.Part {
	parts := f.factories.FullPartSet(aircraftType, stock)
	for _, part := range parts {
		require.NoError(t, f.store.Parts.Create(f.ctx, part))
	}
	return parts
}

func (f *factoryFixture) createAircraft(t testing.TB, aircraftType catalog.AircraftType) *models.Aircraft {
	aircraft := f.factories.Aircraft.WithType(aircraftType)
	require.NoError(t, f.store.Aircraft.Create(f.ctx, aircraft))
	return aircraft
}

func (f *factoryFixture) stockOf(t testing.TB, partID uuid.UUID) int {
	part, err := f.store.Parts.GetByID(f.ctx, partID)
	require.NoError(t, err)
	return part.Stock
}

func (f *factoryFixture) reloadAircraft(t testing.TB, aircraftID uuid.UUID) *models.Aircraft {
	aircraft, err := f.store.Aircraft.GetByID(f.ctx, aircraftID)
	require.NoError(t, err)
	return aircraft
}

func (f *factoryFixture) attach(t testing.TB, aircraftID, partID uuid.UUID) *service.AttachPartResponse {
	resp, err := f.assembly.AttachPart(f.ctx, aircraftID, &service.AttachPartRequest{PartID: partID}, "tester")
	require.NoError(t, err)
	return resp
}
