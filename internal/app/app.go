package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortlinks/internal/cache"
	"github.com/fsdevblog/shortlinks/internal/config"
	"github.com/fsdevblog/shortlinks/internal/controllers"
	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
	"github.com/fsdevblog/shortlinks/internal/crypter"
	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/logs"
	"github.com/fsdevblog/shortlinks/internal/metrics"
	"github.com/fsdevblog/shortlinks/internal/services"
	"github.com/fsdevblog/shortlinks/internal/tlscert"
)

const (
	connectTimeout    = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

type App struct {
	config  *config.Config
	Logger  *zap.Logger
	handler http.Handler
	closers []func() error
}

// New собирает приложение: логгер, хранилище, кэш, сервисы и роутер.
func New(ctx context.Context, conf *config.Config) (*App, error) {
	logger, err := logs.New(
		logs.WithLevel(logs.LevelType(conf.LogLevel)),
		logs.WithFile(conf.LogFile),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if conf.GeneratedSecrets {
		logger.Warn("session secret or notes key is not set, generated random ones: " +
			"sessions and notes will not survive restart")
	}

	a := &App{config: conf, Logger: logger}

	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	dbServices, m, servicesErr := a.initServices(connCtx)
	if servicesErr != nil {
		_ = a.Close()
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	baseURL := ""
	if conf.BaseURL != nil {
		baseURL = conf.BaseURL.String()
	}
	a.handler = controllers.SetupRouter(controllers.RouterParams{
		URLService:      dbServices.URLService,
		RedirectService: dbServices.RedirectService,
		SearchService:   dbServices.SearchService,
		ManageService:   dbServices.ManageService,
		PingService:     dbServices.PingService,
		BaseURL:         baseURL,
		Session: middlewares.SessionConfig{
			Secret: []byte(conf.SessionSecret),
			TTL:    conf.SessionTTL,
			Secure: conf.EnableHTTPS,
		},
		Metrics: m,
		Logger:  logger.Named("http"),
	})
	return a, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Handler http обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run запускает web сервер и блокируется до отмены ctx или ошибки сервера.
// При отмене ctx сервер дорабатывает текущие запросы и останавливается.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	if a.config.EnableHTTPS {
		if err := a.ensureCertificate(); err != nil {
			_ = a.Close()
			return fmt.Errorf("run app: %w", err)
		}
	}

	errChan := make(chan error, 1)
	go func() {
		a.Logger.Info("Starting server",
			zap.String("address", a.config.ServerAddress),
			zap.Bool("https", a.config.EnableHTTPS),
			zap.String("storage", string(a.config.StorageType())),
		)
		var err error
		if a.config.EnableHTTPS {
			err = server.ListenAndServeTLS(a.config.TLSCertFile, a.config.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("server error", zap.Error(serverErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("server shutdown error", zap.Error(err))
	}
	if err := a.Close(); err != nil {
		a.Logger.Error("close resources error", zap.Error(err))
	}
	return serverErr
}

// Close освобождает соединения с хранилищем и кэшем.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	_ = a.Logger.Sync()
	return errors.Join(errs...)
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func (a *App) initServices(ctx context.Context) (*services.Services, *metrics.Metrics, error) {
	storageType := a.config.StorageType()
	conn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  storageType,
		PostgresDSN:  &a.config.DatabaseDSN,
		SqliteDBPath: &a.config.SQLitePath,
		Logger:       a.Logger.Named("gorm"),
	})
	if connErr != nil {
		return nil, nil, connErr //nolint:wrapcheck
	}
	a.closers = append(a.closers, connCloser(conn))

	notesCrypter, err := crypter.New(a.config.NotesKey)
	if err != nil {
		return nil, nil, fmt.Errorf("init notes crypter: %w", err)
	}

	m := metrics.New()
	opts := services.FactoryOptions{
		Logger:              a.Logger,
		Crypter:             notesCrypter,
		Metrics:             m,
		ClickRecordTimeout:  a.config.ClickRecordTimeout,
		MaxGenerateAttempts: a.config.MaxGenerateAttempts,
	}

	if a.config.RedisAddr != "" {
		redirectCache, cacheErr := cache.Connect(ctx, a.config.RedisAddr, a.config.RedisTTL)
		if cacheErr != nil {
			// без кэша сервис работает, только медленнее
			a.Logger.Warn("redirect cache disabled", zap.Error(cacheErr))
		} else {
			a.closers = append(a.closers, redirectCache.Close)
			opts.Cache = redirectCache
		}
	}

	dbServices, err := services.Factory(conn, serviceType(storageType), opts)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	return dbServices, m, nil
}

// ensureCertificate выпускает самоподписанный сертификат, если сохраненного нет или он негоден.
func (a *App) ensureCertificate() error {
	host, _, err := net.SplitHostPort(a.config.ServerAddress)
	if err != nil || host == "" {
		host = "localhost"
	}
	hosts := []string{host}
	if host != "localhost" {
		hosts = append(hosts, "localhost")
	}

	regenerated, err := tlscert.New(tlscert.WithHosts(hosts...)).
		EnsurePair(a.config.TLSCertFile, a.config.TLSKeyFile)
	if err != nil {
		return fmt.Errorf("ensure tls certificate: %w", err)
	}
	if regenerated {
		a.Logger.Info("issued self-signed certificate",
			zap.String("cert", a.config.TLSCertFile),
			zap.String("key", a.config.TLSKeyFile),
		)
	}
	return nil
}

func serviceType(st db.StorageType) services.ServiceType {
	switch st {
	case db.StorageTypePostgres:
		return services.ServiceTypePostgres
	case db.StorageTypeSQLite:
		return services.ServiceTypeSQLite
	default:
		return services.ServiceTypeInMemory
	}
}

func connCloser(conn any) func() error {
	switch c := conn.(type) {
	case *pgxpool.Pool:
		return func() error {
			c.Close()
			return nil
		}
	case *gorm.DB:
		return func() error {
			sqlDB, err := c.DB()
			if err != nil {
				return fmt.Errorf("get sql.DB: %w", err)
			}
			return sqlDB.Close() //nolint:wrapcheck
		}
	default:
		return func() error { return nil }
	}
}
