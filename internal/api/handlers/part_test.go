package handlers_test

import (
	"net/http"
	"testing"

	"aircraft-factory-backend/internal/api/handlers"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/mocks"
	"aircraft-factory-backend/internal/service"
	"aircraft-factory-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PartHandlerTestSuite defines the test suite for PartHandler and ProductionHandler
type PartHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockInventory  *mocks.MockInventoryServiceInterface
	mockProduction *mocks.MockProductionServiceInterface
	httpSuite      *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PartHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInventory = mocks.NewMockInventoryServiceInterface(suite.ctrl)
	suite.mockProduction = mocks.NewMockProductionServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	partHandler := handlers.NewPartHandler(suite.mockInventory)
	productionHandler := handlers.NewProductionHandler(suite.mockProduction)

	v1 := suite.httpSuite.Router.Group("/api/v1", asUser("ayse"))
	parts := v1.Group("/parts")
	{
		parts.POST("", partHandler.CreatePart)
		parts.GET("", partHandler.ListParts)
		parts.GET("/low-stock", partHandler.ListLowStockParts)
		parts.GET("/:id", partHandler.GetPart)
		parts.DELETE("/:id", partHandler.DeletePart)
		parts.PATCH("/:id/minimum-stock", partHandler.UpdateMinimumStock)
		parts.POST("/:id/stock/increase", partHandler.IncreaseStock)
		parts.POST("/:id/stock/decrease", partHandler.DecreaseStock)
	}
	v1.GET("/productions", productionHandler.ListProductions)
	v1.GET("/productions/:id", productionHandler.GetProduction)
}

// TearDownTest cleans up after each test
func (suite *PartHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePart tests the CreatePart handler
func (suite *PartHandlerTestSuite) TestCreatePart() {
	suite.T().Run("Explicit Zero Threshold", func(t *testing.T) {
		zero := 0
		suite.mockInventory.EXPECT().
			CreatePart(gomock.Any(), &service.CreatePartRequest{TeamType: "TAIL", AircraftType: "TB3", MinimumStock: &zero}).
			Return(&service.PartResponse{ID: uuid.New(), Name: "TB3 Tail", TeamType: "TAIL", AircraftType: "TB3"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"team_type":     "TAIL",
			"aircraft_type": "TB3",
			"minimum_stock": 0,
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.PartResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "TB3 Tail", response.Name)
		assert.Equal(t, 0, response.Stock)
	})

	suite.T().Run("Category Not Built For Aircraft", func(t *testing.T) {
		suite.mockInventory.EXPECT().
			CreatePart(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidPartCategory).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"team_type":     "ASSEMBLY",
			"aircraft_type": "TB3",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team_type")
	})
}

// TestListParts tests the part listing filters
func (suite *PartHandlerTestSuite) TestListParts() {
	suite.T().Run("Query Filters", func(t *testing.T) {
		suite.mockInventory.EXPECT().
			ListParts(gomock.Any(), service.PartFilter{AircraftType: "TB2", TeamType: "WING", LowStockOnly: true}, 1, 20).
			Return(&service.PartListResponse{Parts: []service.PartResponse{}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts?aircraft_type=TB2&team_type=WING&low_stock=true", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Low Stock Route", func(t *testing.T) {
		suite.mockInventory.EXPECT().
			ListParts(gomock.Any(), service.PartFilter{LowStockOnly: true}, 1, 20).
			Return(&service.PartListResponse{
				Parts: []service.PartResponse{{Name: "TB2 Body", Stock: 1, MinimumStock: 5, IsLowStock: true}},
				Total: 1,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/low-stock", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.PartListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.True(t, response.Parts[0].IsLowStock)
	})

	suite.T().Run("Unknown Aircraft Type", func(t *testing.T) {
		suite.mockInventory.EXPECT().
			ListParts(gomock.Any(), gomock.Any(), 1, 20).
			Return(nil, apperrors.ErrInvalidAircraftType).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts?aircraft_type=F35", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestStockAdjustments tests the manual stock endpoints
func (suite *PartHandlerTestSuite) TestStockAdjustments() {
	partID := uuid.New()

	suite.T().Run("Increase", func(t *testing.T) {
		suite.mockInventory.EXPECT().
			IncreaseStock(gomock.Any(), partID, &service.StockAdjustmentRequest{Quantity: 3}).
			Return(&service.PartResponse{ID: partID, Stock: 3}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts/"+partID.String()+"/stock/increase", map[string]int{"quantity": 3})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Decrease Beyond Stock", func(t *testing.T) {
		suite.mockInventory.EXPECT().
			DecreaseStock(gomock.Any(), partID, &service.StockAdjustmentRequest{Quantity: 5}).
			Return(nil, apperrors.NewInsufficientStockError("TB2 Body", 4, 5)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/parts/"+partID.String()+"/stock/decrease", map[string]int{"quantity": 5})

		testutils.AssertRuleViolation(t, recorder, string(apperrors.CodeInsufficientStock))
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "available 4, requested 5")
	})

	suite.T().Run("Update Threshold", func(t *testing.T) {
		ten := 10
		suite.mockInventory.EXPECT().
			UpdateMinimumStock(gomock.Any(), partID, &service.UpdateMinimumStockRequest{MinimumStock: &ten}).
			Return(&service.PartResponse{ID: partID, MinimumStock: 10, IsLowStock: true}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/parts/"+partID.String()+"/minimum-stock", map[string]int{"minimum_stock": 10})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestGetAndDeletePart tests single-part endpoints
func (suite *PartHandlerTestSuite) TestGetAndDeletePart() {
	partID := uuid.New()

	suite.T().Run("Get Not Found", func(t *testing.T) {
		suite.mockInventory.EXPECT().GetPart(gomock.Any(), partID).Return(nil, apperrors.ErrPartNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/parts/"+partID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "part not found")
	})

	suite.T().Run("Delete In Use", func(t *testing.T) {
		suite.mockInventory.EXPECT().DeletePart(gomock.Any(), partID).Return(apperrors.ErrPartInUse).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/parts/"+partID.String(), nil)

		testutils.AssertRuleViolation(t, recorder, string(apperrors.CodePartInUse))
	})

	suite.T().Run("Delete", func(t *testing.T) {
		suite.mockInventory.EXPECT().DeletePart(gomock.Any(), partID).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/parts/"+partID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

// TestProductions tests the production ledger endpoints
func (suite *PartHandlerTestSuite) TestProductions() {
	teamID := uuid.New()
	partID := uuid.New()

	suite.T().Run("List Filtered", func(t *testing.T) {
		suite.mockProduction.EXPECT().
			ListProductions(gomock.Any(), service.ProductionFilter{TeamID: &teamID, PartID: &partID}, 3, 10).
			Return(&service.ProductionListResponse{Page: 3, PageSize: 10}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/productions?team_id="+teamID.String()+"&part_id="+partID.String()+"&page=3&page_size=10", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Malformed Part Filter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/productions?part_id=nope", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid part ID")
	})

	suite.T().Run("Get", func(t *testing.T) {
		productionID := uuid.New()
		suite.mockProduction.EXPECT().
			GetProduction(gomock.Any(), productionID).
			Return(&service.ProductionResponse{ID: productionID, Quantity: 7, CreatedBy: "ayse"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/productions/"+productionID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.ProductionResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 7, response.Quantity)
	})
}

// TestPartHandlerTestSuite runs the test suite
func TestPartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartHandlerTestSuite))
}
