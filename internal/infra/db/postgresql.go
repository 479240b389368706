// Package db opens the ledger's PostgreSQL database.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farmx/ledger-backend/config"
	"github.com/farmx/ledger-backend/internal/integration/persistence/model"
)

const pingTimeout = 5 * time.Second

// OpenPostgres connects with the configured pool limits and waits for the server
// to answer. The DSN should pin TimeZone=UTC so calendar dates compare as stored.
func OpenPostgres(cfg *config.DatabaseConfig, environment string) (*gorm.DB, error) {
	level := logger.Silent
	if environment == "development" {
		level = logger.Warn
	}

	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	slog.Info("Ledger database ready", "max_open_conns", cfg.MaxOpenConns)
	return conn, nil
}

// Migrate creates or updates the vendor, transaction and merchant ledger tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("migrate ledger schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
