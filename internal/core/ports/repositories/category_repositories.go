package repositories

import (
	"context"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindCategoryByID(ctx context.Context, workspaceID, categoryID string) (*domain.Category, error)
	// ListCategories lists the categories of a workspace, optionally only one type.
	ListCategories(ctx context.Context, workspaceID string, categoryType *domain.TransactionType) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	UpdateCategory(ctx context.Context, category domain.Category) error
	// DeleteCategoryAndDetach clears category_id on the category's transactions
	// and deletes the category, in one transaction. Default categories are
	// never deleted.
	DeleteCategoryAndDetach(ctx context.Context, workspaceID, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
