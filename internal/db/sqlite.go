package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/logs"
	"github.com/fsdevblog/shortlinks/internal/models"
)

// NewSQLite открывает базу sqlite по пути dbPath и мигрирует схему.
// Пул ограничен одним соединением: sqlite не умеет конкурентную запись,
// а так транзакции просто выстраиваются в очередь.
func NewSQLite(dbPath string, logger *zap.Logger) (*gorm.DB, error) {
	conn, connErr := connectSQLite(dbPath, logger)
	if connErr != nil {
		return nil, fmt.Errorf("init database error: %w", connErr)
	}
	if migrateErr := migrateSQLite(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}

func connectSQLite(dbPath string, logger *zap.Logger) (*gorm.DB, error) {
	conf := &gorm.Config{TranslateError: true}
	if logger != nil {
		conf.Logger = logs.NewGormLogger(logger)
	}
	db, err := gorm.Open(sqlite.Open(dbPath), conf)
	if err != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// без этого sqlite игнорирует ON DELETE CASCADE
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

func migrateSQLite(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.URL{}, &models.Click{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}
