package service_test

import (
	"context"
	"errors"
	"testing"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/mocks"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// InventoryServiceTestSuite tests part administration and stock movements against SQLite
type InventoryServiceTestSuite struct {
	suite.Suite
	f *factoryFixture
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.f = newFixture(suite.T())
}

// TestCreatePart covers defaults and explicit thresholds
func (suite *InventoryServiceTestSuite) TestCreatePart() {
	f := suite.f

	part, err := f.inventory.CreatePart(f.ctx, &service.CreatePartRequest{TeamType: "BODY", AircraftType: "KIZILELMA"})
	suite.Require().NoError(err)
	suite.Equal("KIZILELMA Body", part.Name)
	suite.Equal(0, part.Stock)
	suite.Equal(models.DefaultMinimumStock, part.MinimumStock)
	suite.True(part.IsLowStock)

	zero := 0
	part, err = f.inventory.CreatePart(f.ctx, &service.CreatePartRequest{TeamType: "TAIL", AircraftType: "TB2", MinimumStock: &zero})
	suite.Require().NoError(err)
	suite.Equal(0, part.MinimumStock)
	suite.False(part.IsLowStock)

	stored, err := f.inventory.GetPart(f.ctx, part.ID)
	suite.Require().NoError(err)
	suite.Equal(0, stored.MinimumStock)
}

// TestCreatePartValidation covers enum validation
func (suite *InventoryServiceTestSuite) TestCreatePartValidation() {
	f := suite.f
	negative := -1

	testCases := []struct {
		name    string
		request *service.CreatePartRequest
	}{
		{name: "Assembly is not a part category", request: &service.CreatePartRequest{TeamType: "ASSEMBLY", AircraftType: "TB2"}},
		{name: "Unknown aircraft type", request: &service.CreatePartRequest{TeamType: "BODY", AircraftType: "F16"}},
		{name: "Negative minimum stock", request: &service.CreatePartRequest{TeamType: "BODY", AircraftType: "TB2", MinimumStock: &negative}},
		{name: "Missing fields", request: &service.CreatePartRequest{}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := f.inventory.CreatePart(f.ctx, tc.request)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}
}

// TestCreatePartUnsupportedByCatalog checks that the catalog decides which buckets exist
func (suite *InventoryServiceTestSuite) TestCreatePartUnsupportedByCatalog() {
	table := map[catalog.AircraftType]map[catalog.TeamType]int{}
	for _, aircraftType := range catalog.AircraftTypes() {
		table[aircraftType] = map[catalog.TeamType]int{
			catalog.TeamTypeBody: 1, catalog.TeamTypeWing: 2, catalog.TeamTypeTail: 1, catalog.TeamTypeAvionics: 0,
		}
	}
	cat, err := catalog.New(table)
	suite.Require().NoError(err)
	f := newFixtureWithCatalog(suite.T(), cat)

	_, err = f.inventory.CreatePart(f.ctx, &service.CreatePartRequest{TeamType: "AVIONICS", AircraftType: "TB2"})
	suite.ErrorIs(err, apperrors.ErrInvalidPartCategory)
}

// TestStockAdjustments covers manual increase and decrease with the low-stock flag
func (suite *InventoryServiceTestSuite) TestStockAdjustments() {
	f := suite.f
	part := f.createPart(suite.T(), catalog.AircraftTB2, catalog.TeamTypeBody, 0)

	resp, err := f.inventory.IncreaseStock(f.ctx, part.ID, &service.StockAdjustmentRequest{Quantity: 6})
	suite.Require().NoError(err)
	suite.Equal(6, resp.Stock)
	suite.False(resp.IsLowStock)

	resp, err = f.inventory.DecreaseStock(f.ctx, part.ID, &service.StockAdjustmentRequest{Quantity: 2})
	suite.Require().NoError(err)
	suite.Equal(4, resp.Stock)
	suite.True(resp.IsLowStock)

	_, err = f.inventory.DecreaseStock(f.ctx, part.ID, &service.StockAdjustmentRequest{Quantity: 5})
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Contains(err.Error(), "available 4, requested 5")
	suite.Equal(4, f.stockOf(suite.T(), part.ID))

	resp, err = f.inventory.DecreaseStock(f.ctx, part.ID, &service.StockAdjustmentRequest{Quantity: 4})
	suite.Require().NoError(err)
	suite.Equal(0, resp.Stock)

	for _, qty := range []int{0, -1} {
		_, err = f.inventory.IncreaseStock(f.ctx, part.ID, &service.StockAdjustmentRequest{Quantity: qty})
		suite.ErrorIs(err, apperrors.ErrInvalidQuantity)
		_, err = f.inventory.DecreaseStock(f.ctx, part.ID, &service.StockAdjustmentRequest{Quantity: qty})
		suite.ErrorIs(err, apperrors.ErrInvalidQuantity)
	}

	_, err = f.inventory.IncreaseStock(f.ctx, uuid.New(), &service.StockAdjustmentRequest{Quantity: 1})
	suite.ErrorIs(err, apperrors.ErrPartNotFound)
	_, err = f.inventory.DecreaseStock(f.ctx, uuid.New(), &service.StockAdjustmentRequest{Quantity: 1})
	suite.ErrorIs(err, apperrors.ErrPartNotFound)
}

// TestUpdateMinimumStock checks that the flag follows the new threshold
func (suite *InventoryServiceTestSuite) TestUpdateMinimumStock() {
	f := suite.f
	part := f.createPart(suite.T(), catalog.AircraftTB3, catalog.TeamTypeTail, 3)
	suite.True(part.IsLowStock)

	two := 2
	resp, err := f.inventory.UpdateMinimumStock(f.ctx, part.ID, &service.UpdateMinimumStockRequest{MinimumStock: &two})
	suite.Require().NoError(err)
	suite.Equal(2, resp.MinimumStock)
	suite.False(resp.IsLowStock)

	negative := -3
	_, err = f.inventory.UpdateMinimumStock(f.ctx, part.ID, &service.UpdateMinimumStockRequest{MinimumStock: &negative})
	suite.ErrorIs(err, apperrors.ErrInvalidMinimumStock)

	_, err = f.inventory.UpdateMinimumStock(f.ctx, part.ID, &service.UpdateMinimumStockRequest{})
	suite.ErrorIs(err, apperrors.ErrInvalidMinimumStock)

	_, err = f.inventory.UpdateMinimumStock(f.ctx, uuid.New(), &service.UpdateMinimumStockRequest{MinimumStock: &two})
	suite.ErrorIs(err, apperrors.ErrPartNotFound)
}

// TestListParts covers the filters
func (suite *InventoryServiceTestSuite) TestListParts() {
	f := suite.f
	f.createPart(suite.T(), catalog.AircraftTB2, catalog.TeamTypeBody, 10)
	f.createPart(suite.T(), catalog.AircraftTB2, catalog.TeamTypeWing, 1)
	f.createPart(suite.T(), catalog.AircraftAkinci, catalog.TeamTypeWing, 0)

	all, err := f.inventory.ListParts(f.ctx, service.PartFilter{}, 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(3), all.Total)

	tb2, err := f.inventory.ListParts(f.ctx, service.PartFilter{AircraftType: "TB2"}, 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(2), tb2.Total)

	wings, err := f.inventory.ListParts(f.ctx, service.PartFilter{TeamType: "WING", LowStockOnly: true}, 1, 20)
	suite.Require().NoError(err)
	suite.Equal(int64(2), wings.Total)
	for _, p := range wings.Parts {
		suite.True(p.IsLowStock)
	}

	_, err = f.inventory.ListParts(f.ctx, service.PartFilter{TeamType: "ASSEMBLY"}, 1, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidPartCategory)
	_, err = f.inventory.ListParts(f.ctx, service.PartFilter{AircraftType: "F16"}, 1, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidAircraftType)
}

// TestDeletePart checks that referenced parts are kept
func (suite *InventoryServiceTestSuite) TestDeletePart() {
	f := suite.f
	unused := f.createPart(suite.T(), catalog.AircraftTB2, catalog.TeamTypeAvionics, 0)
	suite.Require().NoError(f.inventory.DeletePart(f.ctx, unused.ID))
	_, err := f.inventory.GetPart(f.ctx, unused.ID)
	suite.ErrorIs(err, apperrors.ErrPartNotFound)

	used := f.createPart(suite.T(), catalog.AircraftTB2, catalog.TeamTypeAvionics, 1)
	aircraft := f.createAircraft(suite.T(), catalog.AircraftTB2)
	f.attach(suite.T(), aircraft.ID, used.ID)
	suite.ErrorIs(f.inventory.DeletePart(f.ctx, used.ID), apperrors.ErrPartInUse)

	suite.ErrorIs(f.inventory.DeletePart(f.ctx, uuid.New()), apperrors.ErrPartNotFound)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}

// TestGetPartWithMockRepository exercises the non-transactional read path against a mock
func TestGetPartWithMockRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPartRepo := mocks.NewMockPartRepositoryInterface(ctrl)
	store := &repository.Store{Parts: mockPartRepo}
	inventory := service.NewInventoryService(store, catalog.Default(), service.NewValidator(), models.DefaultMinimumStock)

	partID := uuid.New()
	part := &models.Part{
		BaseModel:    models.BaseModel{ID: partID},
		Name:         "TB2 Wing",
		TeamType:     catalog.TeamTypeWing,
		AircraftType: catalog.AircraftTB2,
		Stock:        7,
		MinimumStock: 10,
	}

	mockPartRepo.EXPECT().GetByID(gomock.Any(), partID).Return(part, nil)
	resp, err := inventory.GetPart(context.Background(), partID)
	require.NoError(t, err)
	assert.Equal(t, "TB2 Wing", resp.Name)
	assert.True(t, resp.IsLowStock)

	missing := uuid.New()
	mockPartRepo.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = inventory.GetPart(context.Background(), missing)
	assert.ErrorIs(t, err, apperrors.ErrPartNotFound)

	broken := uuid.New()
	mockPartRepo.EXPECT().GetByID(gomock.Any(), broken).Return(nil, errors.New("connection reset"))
	_, err = inventory.GetPart(context.Background(), broken)
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get part")
}
