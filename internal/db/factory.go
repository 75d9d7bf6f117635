package db

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  *string
	SqliteDBPath *string
	Logger       *zap.Logger
}

// NewConnectionFactory открывает соединение с хранилищем нужного типа и накатывает схему.
//
// Возвращает:
//   - *pgxpool.Pool для postgres
//   - *gorm.DB для sqlite
//   - *MemoryStorage для inMemory
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil || *config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		pool, err := NewPostgresConnection(ctx, *config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		// пока не будем ничего усложнять, а сделаем миграцию прямо здесь
		if migrateErr := MigratePostgres(ctx, pool); migrateErr != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", migrateErr)
		}
		return pool, nil
	case StorageTypeSQLite:
		if config.SqliteDBPath == nil || *config.SqliteDBPath == "" {
			return nil, errors.New("sqlite db path is empty")
		}
		conn, err := NewSQLite(*config.SqliteDBPath, config.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
