package services

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
	"github.com/SscSPs/workspace_finance_app/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	// ListCategories returns the workspace categories, optionally of one type.
	ListCategories(ctx context.Context, scope domain.WorkspaceScope, categoryType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	CreateCategory(ctx context.Context, scope domain.WorkspaceScope, req dto.CreateCategoryRequest) (*domain.Category, error)
	UpdateCategory(ctx context.Context, scope domain.WorkspaceScope, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a custom category and uncategorizes its
	// transactions. Default categories are rejected with a validation error.
	DeleteCategory(ctx context.Context, scope domain.WorkspaceScope, categoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
