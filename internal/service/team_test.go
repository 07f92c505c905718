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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockProductionRepo *mocks.MockProductionRepositoryInterface
	teamService        *service.TeamService
	ctx                context.Context
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockProductionRepo = mocks.NewMockProductionRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()

	store := &repository.Store{
		Teams:       suite.mockTeamRepo,
		Productions: suite.mockProductionRepo,
	}
	suite.teamService = service.NewTeamService(store, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeamValidation tests the validation logic for creating a team
func (suite *TeamServiceTestSuite) TestCreateTeamValidation() {
	testCases := []struct {
		name     string
		request  *service.CreateTeamRequest
		errorMsg string
	}{
		{
			name:     "Empty name",
			request:  &service.CreateTeamRequest{TeamType: "WING"},
			errorMsg: "Name",
		},
		{
			name:     "Missing team type",
			request:  &service.CreateTeamRequest{Name: "Wing Team"},
			errorMsg: "TeamType",
		},
		{
			name:     "Unknown team type",
			request:  &service.CreateTeamRequest{Name: "Paint Team", TeamType: "PAINT"},
			errorMsg: "team_type",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			resp, err := suite.teamService.Create(suite.ctx, tc.request)
			suite.Nil(resp)
			suite.Error(err)
			suite.True(apperrors.IsValidation(err))
			suite.Contains(err.Error(), tc.errorMsg)
		})
	}
}

// TestCreateTeam tests creating a team
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.mockTeamRepo.EXPECT().CheckTeamNameExists(gomock.Any(), "Avionics Team", nil).Return(false, nil)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, team *models.Team) error {
			suite.Equal(catalog.TeamTypeAvionics, team.TeamType)
			team.ID = uuid.New()
			return nil
		})

	resp, err := suite.teamService.Create(suite.ctx, &service.CreateTeamRequest{Name: "Avionics Team", TeamType: "AVIONICS"})
	suite.Require().NoError(err)
	suite.Equal("Avionics Team", resp.Name)
	suite.Equal("AVIONICS", resp.TeamType)
	suite.Equal("Avionics", resp.TeamTypeDisplay)
	suite.NotEqual(uuid.Nil, resp.ID)
}

// TestCreateTeamDuplicateName tests the unique team name rule
func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	suite.mockTeamRepo.EXPECT().CheckTeamNameExists(gomock.Any(), "Wing Team", nil).Return(true, nil)

	resp, err := suite.teamService.Create(suite.ctx, &service.CreateTeamRequest{Name: "Wing Team", TeamType: "WING"})
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

// TestCreateTeamRepositoryError tests that storage errors are wrapped
func (suite *TeamServiceTestSuite) TestCreateTeamRepositoryError() {
	suite.mockTeamRepo.EXPECT().CheckTeamNameExists(gomock.Any(), "Tail Team", nil).Return(false, errors.New("connection refused"))

	_, err := suite.teamService.Create(suite.ctx, &service.CreateTeamRequest{Name: "Tail Team", TeamType: "TAIL"})
	suite.Error(err)
	suite.Contains(err.Error(), "failed to check existing team by name")
	suite.Contains(err.Error(), "connection refused")
}

// TestGetByID tests loading a team with members and production total
func (suite *TeamServiceTestSuite) TestGetByID() {
	teamID := uuid.New()
	team := &models.Team{
		BaseModel: models.BaseModel{ID: teamID},
		Name:      "Body Team",
		TeamType:  catalog.TeamTypeBody,
		Members:   []models.TeamMember{{TeamID: teamID, Username: "ayse"}, {TeamID: teamID, Username: "mehmet"}},
	}
	suite.mockTeamRepo.EXPECT().GetWithMembers(gomock.Any(), teamID).Return(team, nil)
	suite.mockProductionRepo.EXPECT().TotalByTeam(gomock.Any(), teamID).Return(int64(42), nil)

	resp, err := suite.teamService.GetByID(suite.ctx, teamID)
	suite.Require().NoError(err)
	suite.Equal([]string{"ayse", "mehmet"}, resp.Members)
	suite.Equal(int64(42), resp.TotalProduced)
	suite.Equal("Body Team", resp.Name)
}

// TestGetByIDNotFound tests the not found mapping
func (suite *TeamServiceTestSuite) TestGetByIDNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetWithMembers(gomock.Any(), teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.GetByID(suite.ctx, teamID)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestGetAll tests listing and the team type filter
func (suite *TeamServiceTestSuite) TestGetAll() {
	teams := []models.Team{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Assembly A", TeamType: catalog.TeamTypeAssembly},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Assembly B", TeamType: catalog.TeamTypeAssembly},
	}
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any(), catalog.TeamTypeAssembly, 20, 0).Return(teams, int64(2), nil)

	resp, err := suite.teamService.GetAll(suite.ctx, "ASSEMBLY", 0, 0)
	suite.Require().NoError(err)
	suite.Len(resp.Teams, 2)
	suite.Equal(int64(2), resp.Total)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)

	_, err = suite.teamService.GetAll(suite.ctx, "PAINT", 1, 20)
	suite.ErrorIs(err, apperrors.ErrInvalidTeamType)
}

// TestUpdateRename tests renaming with the uniqueness check
func (suite *TeamServiceTestSuite) TestUpdateRename() {
	teamID := uuid.New()
	team := &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Old", TeamType: catalog.TeamTypeWing}

	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().CheckTeamNameExists(gomock.Any(), "New", &teamID).Return(false, nil)
	suite.mockTeamRepo.EXPECT().Update(gomock.Any(), team).Return(nil)

	resp, err := suite.teamService.Update(suite.ctx, teamID, &service.UpdateTeamRequest{Name: "New"})
	suite.Require().NoError(err)
	suite.Equal("New", resp.Name)
	suite.Equal("WING", resp.TeamType)
}

// TestUpdateRenameTaken tests renaming onto an existing name
func (suite *TeamServiceTestSuite) TestUpdateRenameTaken() {
	teamID := uuid.New()
	team := &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Old", TeamType: catalog.TeamTypeWing}

	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().CheckTeamNameExists(gomock.Any(), "Taken", &teamID).Return(true, nil)

	_, err := suite.teamService.Update(suite.ctx, teamID, &service.UpdateTeamRequest{Name: "Taken"})
	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

// TestAddMember tests adding a member and the duplicate rule
func (suite *TeamServiceTestSuite) TestAddMember() {
	teamID := uuid.New()
	before := &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Tail Team", TeamType: catalog.TeamTypeTail}
	after := &models.Team{
		BaseModel: models.BaseModel{ID: teamID},
		Name:      "Tail Team",
		TeamType:  catalog.TeamTypeTail,
		Members:   []models.TeamMember{{TeamID: teamID, Username: "zeynep"}},
	}

	gomock.InOrder(
		suite.mockTeamRepo.EXPECT().GetWithMembers(gomock.Any(), teamID).Return(before, nil),
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, member *models.TeamMember) error {
				suite.Equal("zeynep", member.Username)
				suite.Equal(teamID, member.TeamID)
				return nil
			}),
		suite.mockTeamRepo.EXPECT().GetWithMembers(gomock.Any(), teamID).Return(after, nil),
	)
	suite.mockProductionRepo.EXPECT().TotalByTeam(gomock.Any(), teamID).Return(int64(0), nil)

	resp, err := suite.teamService.AddMember(suite.ctx, teamID, &service.AddTeamMemberRequest{Username: "zeynep"})
	suite.Require().NoError(err)
	suite.Equal([]string{"zeynep"}, resp.Members)

	suite.mockTeamRepo.EXPECT().GetWithMembers(gomock.Any(), teamID).Return(after, nil)
	_, err = suite.teamService.AddMember(suite.ctx, teamID, &service.AddTeamMemberRequest{Username: "zeynep"})
	suite.ErrorIs(err, apperrors.ErrTeamMemberExists)
}

// TestRemoveMember tests removing members that do and do not exist
func (suite *TeamServiceTestSuite) TestRemoveMember() {
	teamID := uuid.New()
	team := &models.Team{BaseModel: models.BaseModel{ID: teamID}, Name: "Tail Team", TeamType: catalog.TeamTypeTail}

	suite.mockTeamRepo.EXPECT().GetByID(gomock.Any(), teamID).Return(team, nil).Times(2)
	suite.mockTeamRepo.EXPECT().RemoveMember(gomock.Any(), teamID, "zeynep").Return(int64(1), nil)
	suite.mockTeamRepo.EXPECT().RemoveMember(gomock.Any(), teamID, "ghost").Return(int64(0), nil)

	suite.NoError(suite.teamService.RemoveMember(suite.ctx, teamID, "zeynep"))
	suite.ErrorIs(suite.teamService.RemoveMember(suite.ctx, teamID, "ghost"), apperrors.ErrTeamMemberNotFound)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}

// TestTeamDelete runs against SQLite because Delete uses a transaction
func TestTeamDelete(t *testing.T) {
	f := newFixture(t)

	idle := f.createTeam(t, catalog.TeamTypeWing)
	require.NoError(t, f.teams.Delete(f.ctx, idle.ID))
	_, err := f.teams.GetByID(f.ctx, idle.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)

	busy := f.createTeam(t, catalog.TeamTypeWing)
	part := f.createPart(t, catalog.AircraftTB2, catalog.TeamTypeWing, 0)
	_, err = f.production.ProduceParts(f.ctx, busy.ID, &service.ProducePartsRequest{PartID: part.ID, Quantity: 1}, "tester")
	require.NoError(t, err)

	assert.ErrorIs(t, f.teams.Delete(f.ctx, busy.ID), apperrors.ErrTeamInUse)
	assert.ErrorIs(t, f.teams.Delete(f.ctx, uuid.New()), apperrors.ErrTeamNotFound)

	owner := f.createTeam(t, catalog.TeamTypeAssembly)
	_, err = f.assembly.CreateAircraft(f.ctx, &service.CreateAircraftRequest{AircraftType: "TB3", AssemblyTeamID: &owner.ID}, "tester")
	require.NoError(t, err)
	assert.ErrorIs(t, f.teams.Delete(f.ctx, owner.ID), apperrors.ErrTeamInUse)
}
