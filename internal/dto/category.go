package dto

import (
	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name     string                 `json:"name" binding:"required,max=60"`
	Type     domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Icon     string                 `json:"icon" binding:"omitempty,max=40"`
	ColorHex string                 `json:"colorHex" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// The type of a category is fixed once created.
type UpdateCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=60"`
	Icon     *string `json:"icon" binding:"omitempty,max=40"`
	ColorHex *string `json:"colorHex" binding:"omitempty,hexcolor"`
}

// ListCategoriesParams filters the category list by type.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string                 `json:"categoryID"`
	Name       string                 `json:"name"`
	Type       domain.TransactionType `json:"type"`
	Icon       string                 `json:"icon"`
	ColorHex   string                 `json:"colorHex"`
	IsDefault  bool                   `json:"isDefault"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       c.Type,
		Icon:       c.Icon,
		ColorHex:   c.ColorHex,
		IsDefault:  c.IsDefault,
	}
}

// ToListCategoryResponse converts categories to their response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
