// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database. Only custom
// categories are stored; built-in ones live as constants in the domain layer.
// The slug is unique per (owner, kind), so "outros" may exist once per kind.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug      string    `gorm:"type:varchar(60);not null;uniqueIndex:idx_categories_owner_kind_slug"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Kind      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_owner_kind_slug"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_owner_kind_slug"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	createdAt := m.CreatedAt
	return &entity.Category{
		ID:        m.Slug,
		Name:      m.Name,
		Kind:      entity.CategoryKind(m.Kind),
		IsCustom:  true,
		OwnerID:   m.OwnerID,
		CreatedAt: &createdAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	var createdAt time.Time
	if category.CreatedAt != nil {
		createdAt = *category.CreatedAt
	}

	return &CategoryModel{
		ID:        uuid.New(),
		Slug:      category.ID,
		Name:      category.Name,
		Kind:      string(category.Kind),
		OwnerID:   category.OwnerID,
		CreatedAt: createdAt,
	}
}
