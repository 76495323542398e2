// Package testutil holds helpers shared by storage-backed tests.
package testutil

import (
	"testing"

	"github.com/saulo-duarte/exam-portal/internal/config"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory sqlite database with foreign keys enabled
// and migrates the given models into it.
func NewDB(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := config.Open(config.DriverSQLite, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	return db
}

// Count returns the number of rows of model, failing the test on error.
func Count(t testing.TB, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
