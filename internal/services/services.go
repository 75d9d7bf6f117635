package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/repositories/memstore"
	"github.com/fsdevblog/shortlinks/internal/repositories/pgsql"
	"github.com/fsdevblog/shortlinks/internal/repositories/sql"
)

type ServiceType string

const (
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// FactoryOptions зависимости, общие для всех типов хранилищ.
// Cache и Metrics могут быть nil (именно nil интерфейс, не типизированный nil указатель).
type FactoryOptions struct {
	Logger              *zap.Logger
	Crypter             NotesCrypter
	Cache               RedirectCache
	Metrics             MetricsRecorder
	ClickRecordTimeout  time.Duration
	MaxGenerateAttempts int
}

type Services struct {
	URLService      *URLService
	ClickRecorder   *ClickRecorder
	RedirectService *RedirectService
	SearchService   *SearchService
	ManageService   *ManageService
	PingService     *PingService
}

// Factory собирает сервисы поверх соединения conn, полученного из db.NewConnectionFactory.
func Factory(conn any, sType ServiceType, opts FactoryOptions) (*Services, error) {
	if opts.Crypter == nil {
		return nil, errors.New("notes crypter is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	switch sType {
	case ServiceTypePostgres:
		pool, ok := conn.(*pgxpool.Pool)
		if !ok {
			return nil, errors.New("invalid connection type. expected *pgxpool.Pool")
		}
		return build(pgsql.NewURLRepo(pool), pgsql.NewClickRepo(pool), NewPingService(pool, sType), opts), nil
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return build(sql.NewURLRepo(gormDB), sql.NewClickRepo(gormDB), NewPingService(gormPinger{gormDB}, sType), opts), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return build(memstore.NewURLRepo(store), memstore.NewClickRepo(store), NewPingService(store, sType), opts), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func build(urlRepo URLRepository, clickRepo ClickRepository, ping *PingService, opts FactoryOptions) *Services {
	urlOpts := []URLServiceOption{
		WithLogger(opts.Logger.Named("urls")),
		WithMaxGenerateAttempts(opts.MaxGenerateAttempts),
	}
	if opts.Cache != nil {
		urlOpts = append(urlOpts, WithRedirectCache(opts.Cache))
	}
	if opts.Metrics != nil {
		urlOpts = append(urlOpts, WithMetrics(opts.Metrics))
	}

	urlService := NewURLService(urlRepo, opts.Crypter, urlOpts...)
	recorder := NewClickRecorder(clickRepo, opts.ClickRecordTimeout)
	access := NewAccessController()

	return &Services{
		URLService:      urlService,
		ClickRecorder:   recorder,
		RedirectService: NewRedirectService(urlService, recorder, opts.Cache, opts.Metrics, opts.Logger.Named("redirect")),
		SearchService:   NewSearchService(urlService),
		ManageService:   NewManageService(urlService, recorder, access),
		PingService:     ping,
	}
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}
