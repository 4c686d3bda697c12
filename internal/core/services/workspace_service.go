package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/google/uuid"
)

type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserReader
}

// NewWorkspaceService creates the workspace service.
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, userRepo portsrepo.UserReader, opts ...ServiceOption) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		BaseService:   newBaseService(opts),
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
	}
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

func (s *workspaceService) CreateWorkspace(ctx context.Context, userID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}

	existing, err := s.workspaceRepo.FindMembershipByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, apperrors.NewConflictError("user already belongs to a workspace")
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing membership", slog.String("user_id", userID))
		return nil, err
	}

	profile := req.ProfileType
	if profile == "" {
		profile = domain.ProfilePersonal
	}
	now := s.Now()
	ws := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        name,
		ProfileType: profile,
		IconEmoji:   req.IconEmoji,
		AuditFields: auditFields(userID, now),
	}
	owner := domain.WorkspaceUser{
		UserID:      userID,
		WorkspaceID: ws.WorkspaceID,
		Role:        domain.RoleOwner,
		JoinedAt:    now,
	}

	if err := s.workspaceRepo.CreateWorkspaceWithDefaults(ctx, ws, owner, defaultCategoriesFor(ws.WorkspaceID, userID, now)); err != nil {
		s.LogFailure(ctx, err, "Failed to create workspace", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", ws.WorkspaceID))
	return &ws, nil
}

func (s *workspaceService) ResolveScope(ctx context.Context, userID string) (*domain.WorkspaceScope, error) {
	membership, err := s.workspaceRepo.FindMembershipByUserID(ctx, userID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to resolve workspace membership", slog.String("user_id", userID))
		return nil, err
	}
	return &domain.WorkspaceScope{
		WorkspaceID: membership.WorkspaceID,
		UserID:      userID,
		Role:        membership.Role,
	}, nil
}

func (s *workspaceService) GetWorkspace(ctx context.Context, scope domain.WorkspaceScope) (*domain.Workspace, error) {
	ws, err := s.workspaceRepo.FindWorkspaceByID(ctx, scope.WorkspaceID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get workspace")
		return nil, err
	}
	return ws, nil
}

func (s *workspaceService) UpdateWorkspace(ctx context.Context, scope domain.WorkspaceScope, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	if err := s.AuthorizeOwner(ctx, scope); err != nil {
		return nil, err
	}
	ws, err := s.GetWorkspace(ctx, scope)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if ws.Name, err = requireName("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.ProfileType != nil {
		ws.ProfileType = *req.ProfileType
	}
	if req.IconEmoji != nil {
		ws.IconEmoji = *req.IconEmoji
	}
	ws.Touch(scope.UserID, s.Now())

	if err := s.workspaceRepo.UpdateWorkspace(ctx, *ws); err != nil {
		s.LogFailure(ctx, err, "Failed to update workspace")
		return nil, err
	}
	return ws, nil
}

func (s *workspaceService) ListMembers(ctx context.Context, scope domain.WorkspaceScope) ([]domain.WorkspaceUser, error) {
	members, err := s.workspaceRepo.ListMembers(ctx, scope.WorkspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspace members")
		return nil, err
	}
	if members == nil {
		return []domain.WorkspaceUser{}, nil
	}
	return members, nil
}

func (s *workspaceService) AddMember(ctx context.Context, scope domain.WorkspaceScope, req dto.AddMemberRequest) (*domain.WorkspaceUser, error) {
	if err := s.AuthorizeOwner(ctx, scope); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no user is registered with this email")
		}
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}
	membership := domain.WorkspaceUser{
		UserID:      user.UserID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		WorkspaceID: scope.WorkspaceID,
		Role:        role,
		JoinedAt:    s.Now(),
	}
	if err := s.workspaceRepo.AddMember(ctx, membership); err != nil {
		s.LogFailure(ctx, err, "Failed to add workspace member", slog.String("member_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Workspace member added", slog.String("member_id", user.UserID), slog.String("role", string(role)))
	return &membership, nil
}

func (s *workspaceService) RemoveMember(ctx context.Context, scope domain.WorkspaceScope, userID string) error {
	if err := s.AuthorizeOwner(ctx, scope); err != nil {
		return err
	}
	if userID == scope.UserID {
		return apperrors.NewValidationFailedError("owners cannot remove themselves from the workspace")
	}
	if err := s.workspaceRepo.RemoveMember(ctx, scope.WorkspaceID, userID); err != nil {
		s.LogFailure(ctx, err, "Failed to remove workspace member", slog.String("member_id", userID))
		return err
	}
	s.LogInfo(ctx, "Workspace member removed", slog.String("member_id", userID))
	return nil
}

func defaultCategoriesFor(workspaceID, userID string, now time.Time) []domain.Category {
	categories := make([]domain.Category, len(domain.DefaultCategories))
	for i, seed := range domain.DefaultCategories {
		categories[i] = domain.Category{
			CategoryID:  uuid.NewString(),
			WorkspaceID: workspaceID,
			Name:        seed.Name,
			Type:        seed.Type,
			Icon:        seed.Icon,
			ColorHex:    seed.ColorHex,
			IsDefault:   true,
			AuditFields: auditFields(userID, now),
		}
	}
	return categories
}
