package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/core/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WorkspaceServiceTestSuite struct {
	suite.Suite
	workspaceRepo *MockWorkspaceRepository
	userRepo      *MockUserRepository
	service       portssvc.WorkspaceSvcFacade
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.workspaceRepo = new(MockWorkspaceRepository)
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewWorkspaceService(suite.workspaceRepo, suite.userRepo, services.WithClock(fixedClock))
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_SeedsOwnerAndDefaultCategories() {
	ctx := context.Background()
	suite.workspaceRepo.On("FindMembershipByUserID", ctx, "user-1").
		Return(nil, apperrors.NewNotFoundError("workspace membership not found")).Once()
	suite.workspaceRepo.On("CreateWorkspaceWithDefaults", ctx,
		mock.MatchedBy(func(ws domain.Workspace) bool {
			return ws.Name == "Home" && ws.ProfileType == domain.ProfilePersonal && ws.CreatedAt.Equal(fixedNow)
		}),
		mock.MatchedBy(func(owner domain.WorkspaceUser) bool {
			return owner.UserID == "user-1" && owner.Role == domain.RoleOwner
		}),
		mock.MatchedBy(func(categories []domain.Category) bool {
			if len(categories) != len(domain.DefaultCategories) {
				return false
			}
			for _, c := range categories {
				if !c.IsDefault || c.WorkspaceID == "" {
					return false
				}
			}
			return true
		}),
	).Return(nil).Once()

	ws, err := suite.service.CreateWorkspace(ctx, "user-1", dto.CreateWorkspaceRequest{Name: "  Home  "})

	suite.Require().NoError(err)
	suite.NotEmpty(ws.WorkspaceID)
	suite.Equal("Home", ws.Name)
	suite.Equal("user-1", ws.CreatedBy)
	suite.workspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_UserAlreadyMember() {
	ctx := context.Background()
	suite.workspaceRepo.On("FindMembershipByUserID", ctx, "user-1").
		Return(&domain.WorkspaceUser{UserID: "user-1", WorkspaceID: "ws-1", Role: domain.RoleMember}, nil).Once()

	ws, err := suite.service.CreateWorkspace(ctx, "user-1", dto.CreateWorkspaceRequest{Name: "Second"})

	suite.Nil(ws)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.workspaceRepo.AssertNotCalled(suite.T(), "CreateWorkspaceWithDefaults", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_BlankName() {
	ws, err := suite.service.CreateWorkspace(context.Background(), "user-1", dto.CreateWorkspaceRequest{Name: "   "})

	suite.Nil(ws)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.workspaceRepo.AssertNotCalled(suite.T(), "FindMembershipByUserID", mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_MembershipLookupFails() {
	ctx := context.Background()
	suite.workspaceRepo.On("FindMembershipByUserID", ctx, "user-1").Return(nil, assert.AnError).Once()

	ws, err := suite.service.CreateWorkspace(ctx, "user-1", dto.CreateWorkspaceRequest{Name: "Home"})

	suite.Nil(ws)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *WorkspaceServiceTestSuite) TestResolveScope() {
	ctx := context.Background()
	suite.workspaceRepo.On("FindMembershipByUserID", ctx, "user-member").
		Return(&domain.WorkspaceUser{UserID: "user-member", WorkspaceID: "ws-1", Role: domain.RoleMember}, nil).Once()

	scope, err := suite.service.ResolveScope(ctx, "user-member")

	suite.Require().NoError(err)
	suite.Equal(memberScope(), *scope)
}

func (suite *WorkspaceServiceTestSuite) TestResolveScope_NoWorkspace() {
	ctx := context.Background()
	suite.workspaceRepo.On("FindMembershipByUserID", ctx, "user-1").
		Return(nil, apperrors.NewNotFoundError("workspace membership not found")).Once()

	scope, err := suite.service.ResolveScope(ctx, "user-1")

	suite.Nil(scope)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WorkspaceServiceTestSuite) TestUpdateWorkspace_MemberForbidden() {
	name := "Renamed"
	ws, err := suite.service.UpdateWorkspace(context.Background(), memberScope(), dto.UpdateWorkspaceRequest{Name: &name})

	suite.Nil(ws)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.workspaceRepo.AssertNotCalled(suite.T(), "UpdateWorkspace", mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestUpdateWorkspace_Owner() {
	ctx := context.Background()
	profile := domain.ProfileBusiness
	suite.workspaceRepo.On("FindWorkspaceByID", ctx, "ws-1").
		Return(&domain.Workspace{WorkspaceID: "ws-1", Name: "Home", ProfileType: domain.ProfilePersonal}, nil).Once()
	suite.workspaceRepo.On("UpdateWorkspace", ctx, mock.MatchedBy(func(ws domain.Workspace) bool {
		return ws.Name == "Shop" && ws.ProfileType == domain.ProfileBusiness && ws.LastUpdatedBy == "user-owner"
	})).Return(nil).Once()

	ws, err := suite.service.UpdateWorkspace(ctx, ownerScope(), dto.UpdateWorkspaceRequest{Name: strPtr("Shop"), ProfileType: &profile})

	suite.Require().NoError(err)
	suite.Equal("Shop", ws.Name)
	suite.workspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_DefaultsToMemberRole() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: "user-2", Name: "Ana", Email: "ana@example.com"}, nil).Once()
	suite.workspaceRepo.On("AddMember", ctx, mock.MatchedBy(func(m domain.WorkspaceUser) bool {
		return m.UserID == "user-2" && m.WorkspaceID == "ws-1" && m.Role == domain.RoleMember
	})).Return(nil).Once()

	member, err := suite.service.AddMember(ctx, ownerScope(), dto.AddMemberRequest{Email: "ana@example.com"})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleMember, member.Role)
	suite.Equal("Ana", member.UserName)
	suite.workspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_UnknownEmail() {
	ctx := context.Background()
	suite.userRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	member, err := suite.service.AddMember(ctx, ownerScope(), dto.AddMemberRequest{Email: "nobody@example.com"})

	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("no user is registered with this email", apperrors.PublicMessage(err, ""))
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_MemberForbidden() {
	member, err := suite.service.AddMember(context.Background(), memberScope(), dto.AddMemberRequest{Email: "ana@example.com"})

	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.userRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestRemoveMember_Self() {
	err := suite.service.RemoveMember(context.Background(), ownerScope(), "user-owner")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.workspaceRepo.AssertNotCalled(suite.T(), "RemoveMember", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestRemoveMember() {
	ctx := context.Background()
	suite.workspaceRepo.On("RemoveMember", ctx, "ws-1", "user-member").Return(nil).Once()

	suite.NoError(suite.service.RemoveMember(ctx, ownerScope(), "user-member"))
	suite.workspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestListMembers_EmptyIsNotNil() {
	ctx := context.Background()
	suite.workspaceRepo.On("ListMembers", ctx, "ws-1").Return(nil, nil).Once()

	members, err := suite.service.ListMembers(ctx, memberScope())

	suite.Require().NoError(err)
	suite.NotNil(members)
	suite.Empty(members)
}

func TestWorkspaceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
