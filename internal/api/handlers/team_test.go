package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"aircraft-factory-backend/internal/api/handlers"
	"aircraft-factory-backend/internal/auth"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/mocks"
	"aircraft-factory-backend/internal/service"
	"aircraft-factory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// asUser stands in for RequireAuth in handler tests
func asUser(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetUser(c, &auth.AuthClaims{Username: username})
		c.Next()
	}
}

func makeInvalidJSONRequest(router *gin.Engine, method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeams      *mocks.MockTeamServiceInterface
	mockProduction *mocks.MockProductionServiceInterface
	handler        *handlers.TeamHandler
	httpSuite      *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockProduction = mocks.NewMockProductionServiceInterface(suite.ctrl)

	suite.handler = handlers.NewTeamHandler(suite.mockTeams, suite.mockProduction)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1", asUser("ayse"))
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/members", suite.handler.AddMember)
		teams.DELETE("/:id/members/:username", suite.handler.RemoveMember)
		teams.POST("/:id/produce", suite.handler.ProduceParts)
		teams.GET("/:id/productions", suite.handler.GetTeamProductions)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		expected := &service.TeamResponse{
			ID:              teamID,
			Name:            "Wing Team 1",
			TeamType:        "WING",
			TeamTypeDisplay: "Wing Team",
		}

		suite.mockTeams.EXPECT().
			Create(gomock.Any(), &service.CreateTeamRequest{Name: "Wing Team 1", TeamType: "WING"}).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{
			"name":      "Wing Team 1",
			"team_type": "WING",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.ID)
		assert.Equal(t, "WING", response.TeamType)
	})

	suite.T().Run("Duplicate Name", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{
			"name":      "Wing Team 1",
			"team_type": "WING",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	suite.T().Run("Invalid Team Type", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidTeamType).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{
			"name":      "Paint Team",
			"team_type": "PAINT",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team_type")
	})

	suite.T().Run("Unexpected Error", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection reset")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", map[string]interface{}{
			"name":      "Body Team",
			"team_type": "BODY",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection reset")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := makeInvalidJSONRequest(suite.httpSuite.Router, "POST", "/api/v1/teams")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeams.EXPECT().
			GetByID(gomock.Any(), teamID).
			Return(&service.TeamWithMembersResponse{
				TeamResponse:  service.TeamResponse{ID: teamID, Name: "Body Team", TeamType: "BODY"},
				Members:       []string{"ayse", "mehmet"},
				TotalProduced: 12,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamWithMembersResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, []string{"ayse", "mehmet"}, response.Members)
		assert.Equal(t, int64(12), response.TotalProduced)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeams.EXPECT().
			GetByID(gomock.Any(), teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Filter And Pagination", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			GetAll(gomock.Any(), "ASSEMBLY", 2, 5).
			Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Total: 6, Page: 2, PageSize: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?team_type=ASSEMBLY&page=2&page_size=5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(6), response.Total)
	})

	suite.T().Run("Out Of Range Pagination Falls Back", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			GetAll(gomock.Any(), "", 1, 20).
			Return(&service.TeamListResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?page=-3&page_size=1000", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestUpdateAndDeleteTeam tests renaming and deleting teams
func (suite *TeamHandlerTestSuite) TestUpdateAndDeleteTeam() {
	suite.T().Run("Rename", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeams.EXPECT().
			Update(gomock.Any(), teamID, &service.UpdateTeamRequest{Name: "Avionics A"}).
			Return(&service.TeamResponse{ID: teamID, Name: "Avionics A", TeamType: "AVIONICS"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/teams/"+teamID.String(), map[string]string{"name": "Avionics A"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Delete", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeams.EXPECT().Delete(gomock.Any(), teamID).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Delete Team In Use", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockTeams.EXPECT().Delete(gomock.Any(), teamID).Return(apperrors.ErrTeamInUse).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		var response handlers.ErrorResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, string(apperrors.CodeTeamInUse), response.Code)
	})
}

// TestMembers tests adding and removing team members
func (suite *TeamHandlerTestSuite) TestMembers() {
	teamID := uuid.New()

	suite.T().Run("Add", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			AddMember(gomock.Any(), teamID, &service.AddTeamMemberRequest{Username: "mehmet"}).
			Return(&service.TeamWithMembersResponse{Members: []string{"mehmet"}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/members", map[string]string{"username": "mehmet"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Remove Unknown Member", func(t *testing.T) {
		suite.mockTeams.EXPECT().
			RemoveMember(gomock.Any(), teamID, "zeynep").
			Return(apperrors.ErrTeamMemberNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/"+teamID.String()+"/members/zeynep", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team member not found")
	})
}

// TestProduceParts tests the ProduceParts handler
func (suite *TeamHandlerTestSuite) TestProduceParts() {
	teamID := uuid.New()
	partID := uuid.New()

	suite.T().Run("Success Records Actor", func(t *testing.T) {
		suite.mockProduction.EXPECT().
			ProduceParts(gomock.Any(), teamID, &service.ProducePartsRequest{PartID: partID, Quantity: 5}, "ayse").
			Return(&service.ProducePartsResponse{
				Production: service.ProductionResponse{TeamID: teamID, PartID: partID, Quantity: 5, CreatedBy: "ayse"},
				NewStock:   5,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/produce", map[string]interface{}{
			"part_id":  partID.String(),
			"quantity": 5,
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.ProducePartsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 5, response.NewStock)
	})

	suite.T().Run("Incompatible Team", func(t *testing.T) {
		suite.mockProduction.EXPECT().
			ProduceParts(gomock.Any(), teamID, gomock.Any(), "ayse").
			Return(nil, apperrors.ErrIncompatibleTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/produce", map[string]interface{}{
			"part_id":  partID.String(),
			"quantity": 1,
		})

		assert.Equal(t, http.StatusConflict, recorder.Code)
		var response handlers.ErrorResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, string(apperrors.CodeIncompatibleTeam), response.Code)
	})

	suite.T().Run("Invalid Quantity", func(t *testing.T) {
		suite.mockProduction.EXPECT().
			ProduceParts(gomock.Any(), teamID, gomock.Any(), "ayse").
			Return(nil, apperrors.ErrInvalidQuantity).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/produce", map[string]interface{}{
			"part_id":  partID.String(),
			"quantity": 0,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "quantity")
	})

	suite.T().Run("Malformed Part ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/"+teamID.String()+"/produce", map[string]interface{}{
			"part_id":  "wing",
			"quantity": 1,
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestProduceRequiresActor checks that production is refused without an authenticated user
func (suite *TeamHandlerTestSuite) TestProduceRequiresActor() {
	router := testutils.SetupHTTPTest()
	router.Router.POST("/teams/:id/produce", suite.handler.ProduceParts)

	recorder := router.MakeRequest("POST", "/teams/"+uuid.NewString()+"/produce", map[string]interface{}{
		"part_id":  uuid.NewString(),
		"quantity": 1,
	})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestGetTeamProductions tests the team production history
func (suite *TeamHandlerTestSuite) TestGetTeamProductions() {
	teamID := uuid.New()
	suite.mockProduction.EXPECT().
		ListProductions(gomock.Any(), service.ProductionFilter{TeamID: &teamID}, 1, 20).
		Return(&service.ProductionListResponse{
			Productions: []service.ProductionResponse{{TeamID: teamID, Quantity: 3}},
			Total:       1,
			Page:        1,
			PageSize:    20,
		}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/"+teamID.String()+"/productions", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	var response service.ProductionListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Len(response.Productions, 1)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
