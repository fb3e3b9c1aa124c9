// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financas-app/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory database migrated with every model, so
// each test starts from an empty schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.UserModel{}, &model.CategoryModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
