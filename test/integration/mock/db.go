// Package mock provides the in-process database and redis fixtures the
// integration suite runs against.
package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var dbFixture *Db

// Db is a shared in-memory sqlite database migrated with the suite's models.
// Scenarios call ClearDB between runs instead of reopening it.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the named in-memory database once and migrates every model.
// Later calls return the same fixture regardless of arguments.
func NewDb(name string, models map[string]any) *Db {
	dbOnce.Do(func() {
		dbFixture = openDb(name, models)
	})
	return dbFixture
}

func openDb(name string, models map[string]any) *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic("failed to access test connection pool: " + err.Error())
	}
	// A single connection keeps the shared in-memory database alive for the
	// whole suite.
	sqlDB.SetMaxOpenConns(1)

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{DbConn: conn, models: models}
}

// ClearDB wipes every table so the next scenario starts empty.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}
