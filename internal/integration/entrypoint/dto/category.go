// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financas-app/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Kind string `json:"kind" binding:"required,oneof=expense investment"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	IsCustom bool   `json:"is_custom"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryInUseResponse reports why a deletion was refused.
type CategoryInUseResponse struct {
	Error            string `json:"error"`
	Code             string `json:"code"`
	TransactionCount int    `json:"transaction_count"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:       cat.ID,
		Name:     cat.Name,
		Kind:     string(cat.Kind),
		IsCustom: cat.IsCustom,
	}
}

// ToCategoryListResponse converts a merged catalog to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: out,
	}
}
