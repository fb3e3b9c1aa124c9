// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financas-app/backend/internal/application/adapter"
	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
	"github.com/financas-app/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
// Only custom categories reach this store.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new custom category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByOwner retrieves all custom categories for a given owner, across kinds.
func (r *categoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByOwnerAndKind retrieves the owner's custom categories of one kind,
// oldest first, so the merged catalog keeps insertion order.
func (r *categoryRepository) FindByOwnerAndKind(ctx context.Context, ownerID uuid.UUID, kind entity.CategoryKind) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ?", ownerID, string(kind)).
		Order("created_at ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// FindByID retrieves a custom category by its kind-scoped slug.
func (r *categoryRepository) FindByID(ctx context.Context, ownerID uuid.UUID, kind entity.CategoryKind, id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ? AND slug = ?", ownerID, string(kind), id).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// Delete removes a custom category by its kind-scoped slug.
func (r *categoryRepository) Delete(ctx context.Context, ownerID uuid.UUID, kind entity.CategoryKind, id string) error {
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND kind = ? AND slug = ?", ownerID, string(kind), id).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}
