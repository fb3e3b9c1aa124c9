// Package category contains category-related use cases.
package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financas-app/backend/internal/domain/entity"
	domainerror "github.com/financas-app/backend/internal/domain/error"
)

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories []*entity.Category
	createErr  error
	findErr    error
	deleteErr  error
	deleted    []string

	findByOwnerCalls int
	findByKindCalls  int
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	f.findByOwnerCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.Category
	for _, c := range f.categories {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByOwnerAndKind(_ context.Context, ownerID uuid.UUID, kind entity.CategoryKind) ([]*entity.Category, error) {
	f.findByKindCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*entity.Category
	for _, c := range f.categories {
		if c.OwnerID == ownerID && c.Kind == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, ownerID uuid.UUID, kind entity.CategoryKind, id string) (*entity.Category, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, c := range f.categories {
		if c.OwnerID == ownerID && c.Kind == kind && c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, ownerID uuid.UUID, kind entity.CategoryKind, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, c := range f.categories {
		if c.OwnerID == ownerID && c.Kind == kind && c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

// fakeTransactionRepo implements the deletion guard's counting dependency.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	countErr     error
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepo) FindByPeriod(_ context.Context, ownerID uuid.UUID, kind entity.TransactionKind, period entity.Period) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.transactions {
		if t.OwnerID == ownerID && t.Kind == kind && t.Month == period.Month && t.Year == period.Year {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) CountByCategory(_ context.Context, ownerID uuid.UUID, kind entity.TransactionKind, categoryID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, t := range f.transactions {
		if t.OwnerID == ownerID && t.Kind == kind && t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
