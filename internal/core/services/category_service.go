package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workspace_finance_app/internal/apperrors"
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_finance_app/internal/core/ports/services"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultCategoryIcon  = "tag"
	defaultCategoryColor = "#64748B"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, opts ...ServiceOption) portssvc.CategorySvcFacade {
	return &categoryService{
		BaseService:  newBaseService(opts),
		categoryRepo: repo,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name, err := requireName("name", req.Name)
	if err != nil {
		return nil, err
	}
	icon, color := req.Icon, req.ColorHex
	if icon == "" {
		icon = defaultCategoryIcon
	}
	if color == "" {
		color = defaultCategoryColor
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		WorkspaceID: scope.WorkspaceID,
		Name:        name,
		Type:        req.Type,
		Icon:        icon,
		ColorHex:    color,
		AuditFields: auditFields(scope.UserID, s.Now()),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogFailure(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, scope domain.WorkspaceScope, categoryType *domain.TransactionType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, scope.WorkspaceID, categoryType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, scope domain.WorkspaceScope, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, scope.WorkspaceID, categoryID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		return nil, err
	}

	if req.Name != nil {
		if category.Name, err = requireName("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.ColorHex != nil {
		category.ColorHex = *req.ColorHex
	}
	category.Touch(scope.UserID, s.Now())

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogFailure(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, scope domain.WorkspaceScope, categoryID string) error {
	category, err := s.categoryRepo.FindCategoryByID(ctx, scope.WorkspaceID, categoryID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		return err
	}
	if category.IsDefault {
		return apperrors.NewValidationFailedError("default categories cannot be deleted")
	}

	if err := s.categoryRepo.DeleteCategoryAndDetach(ctx, scope.WorkspaceID, categoryID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}
