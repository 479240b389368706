package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

func TestMigrate(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(conn); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, m := range model.AllModels() {
		if !conn.Migrator().HasTable(m) {
			t.Errorf("table for %T not created", m)
		}
	}

	if err := Close(conn); err != nil {
		t.Errorf("Close: %v", err)
	}
}
