package pgsql

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

type PostgresSuite struct {
	suite.Suite
	container *tcPostgres.PostgresContainer
	pool      *pgxpool.Pool
	urlRepo   *URLRepo
	clickRepo *ClickRepo
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропускаем интеграционный тест в short режиме")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("shortlinks"),
		tcPostgres.WithUsername("shortlinks"),
		tcPostgres.WithPassword("shortlinks"),
		tcPostgres.BasicWaitStrategies(),
	)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		s.T().Skipf("postgres container is not available: %v", err)
	}
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	conn, err := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType: db.StorageTypePostgres,
		PostgresDSN: &dsn,
	})
	s.Require().NoError(err)
	pool, ok := conn.(*pgxpool.Pool)
	s.Require().True(ok)

	s.pool = pool
	s.urlRepo = NewURLRepo(pool)
	s.clickRepo = NewClickRepo(pool)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(), "TRUNCATE urls, clicks RESTART IDENTITY CASCADE")
	s.Require().NoError(err)
}

func (s *PostgresSuite) createURL(code, original string, owner *string) *models.URL {
	u := &models.URL{OriginalURL: original, ShortCode: code, OwnerID: owner, IsActive: true}
	s.Require().NoError(s.urlRepo.Create(s.T().Context(), u))
	return u
}

func (s *PostgresSuite) TestCreateAndGet() {
	owner := "user-1"
	u := s.createURL("abc123", "https://example.com", &owner)
	s.NotZero(u.ID)
	s.False(u.CreatedAt.IsZero())

	got, err := s.urlRepo.GetByShortCode(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal(u.ID, got.ID)
	s.Require().NotNil(got.OwnerID)
	s.Equal(owner, *got.OwnerID)

	err = s.urlRepo.Create(s.T().Context(), &models.URL{OriginalURL: "https://x.com", ShortCode: "abc123"})
	s.Require().ErrorIs(err, repositories.ErrDuplicateKey)

	_, err = s.urlRepo.GetByID(s.T().Context(), u.ID+100)
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *PostgresSuite) TestSearchByOriginalURL() {
	s.createURL("aaaaaa", "https://GitHub.com/golang/go", nil)
	s.createURL("bbbbbb", "https://example.com/100%", nil)

	res, err := s.urlRepo.SearchByOriginalURL(s.T().Context(), "github")
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal("aaaaaa", res[0].ShortCode)

	res, err = s.urlRepo.SearchByOriginalURL(s.T().Context(), "%")
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal("bbbbbb", res[0].ShortCode)

	res, err = s.urlRepo.SearchByOriginalURL(s.T().Context(), "'; DROP TABLE urls; --")
	s.Require().NoError(err)
	s.Empty(res)
}

func (s *PostgresSuite) TestClicksAndCascade() {
	u := s.createURL("aaaaaa", "https://a.com", nil)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			s.NoError(s.clickRepo.Create(s.T().Context(), &models.Click{URLID: u.ID, IPAddress: "10.0.0.1"}))
		}()
	}
	wg.Wait()

	got, err := s.urlRepo.GetByID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Equal(uint64(workers), got.ClickCount)

	latest, err := s.clickRepo.GetLatestByURLID(s.T().Context(), u.ID, 10)
	s.Require().NoError(err)
	s.Len(latest, 10)

	updated, err := s.urlRepo.SetActive(s.T().Context(), u.ID, false)
	s.Require().NoError(err)
	s.False(updated.IsActive)

	s.Require().NoError(s.urlRepo.Delete(s.T().Context(), u.ID))
	count, err := s.clickRepo.CountByURLID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Zero(count)

	err = s.clickRepo.Create(s.T().Context(), &models.Click{URLID: u.ID, IPAddress: "10.0.0.1"})
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}
