package memstore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

type MemstoreSuite struct {
	suite.Suite
	store     *db.MemoryStorage
	urlRepo   *URLRepo
	clickRepo *ClickRepo
}

func TestMemstoreSuite(t *testing.T) {
	suite.Run(t, new(MemstoreSuite))
}

func (s *MemstoreSuite) SetupTest() {
	s.store = db.NewMemStorage()
	s.urlRepo = NewURLRepo(s.store)
	s.clickRepo = NewClickRepo(s.store)
}

func (s *MemstoreSuite) createURL(code, original string, owner *string) *models.URL {
	u := &models.URL{OriginalURL: original, ShortCode: code, OwnerID: owner, IsActive: true}
	s.Require().NoError(s.urlRepo.Create(s.T().Context(), u))
	return u
}

func (s *MemstoreSuite) TestCreate() {
	u := s.createURL("abc123", "https://example.com", nil)
	s.NotZero(u.ID)
	s.False(u.CreatedAt.IsZero())

	got, err := s.urlRepo.GetByShortCode(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal(u.ID, got.ID)
	s.Equal("https://example.com", got.OriginalURL)
	s.True(got.IsActive)
	s.Zero(got.ClickCount)

	byID, err := s.urlRepo.GetByID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Equal("abc123", byID.ShortCode)
}

func (s *MemstoreSuite) TestCreate_Duplicate() {
	s.createURL("abc123", "https://example.com", nil)
	err := s.urlRepo.Create(s.T().Context(), &models.URL{OriginalURL: "https://other.com", ShortCode: "abc123"})
	s.Require().ErrorIs(err, repositories.ErrDuplicateKey)

	got, err := s.urlRepo.GetByShortCode(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal("https://example.com", got.OriginalURL)
}

func (s *MemstoreSuite) TestNotFound() {
	_, err := s.urlRepo.GetByShortCode(s.T().Context(), "nope00")
	s.Require().ErrorIs(err, repositories.ErrNotFound)
	_, err = s.urlRepo.GetByID(s.T().Context(), 42)
	s.Require().ErrorIs(err, repositories.ErrNotFound)
	s.Require().ErrorIs(s.urlRepo.IncrementClicks(s.T().Context(), 42), repositories.ErrNotFound)
	s.Require().ErrorIs(s.urlRepo.Delete(s.T().Context(), 42), repositories.ErrNotFound)
	_, err = s.urlRepo.SetActive(s.T().Context(), 42, false)
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *MemstoreSuite) TestSearchByOriginalURL() {
	s.createURL("aaaaaa", "https://GitHub.com/golang/go", nil)
	s.createURL("bbbbbb", "https://example.com/100%", nil)
	s.createURL("cccccc", "https://example.com/a_b", nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "case insensitive", query: "github", want: []string{"aaaaaa"}},
		{name: "percent is literal", query: "%", want: []string{"bbbbbb"}},
		{name: "underscore is literal", query: "_", want: []string{"cccccc"}},
		{name: "sql injection", query: "'; DROP TABLE urls; --", want: nil},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res, err := s.urlRepo.SearchByOriginalURL(s.T().Context(), tt.query)
			s.Require().NoError(err)
			codes := make([]string, 0, len(res))
			for _, r := range res {
				codes = append(codes, r.ShortCode)
			}
			s.ElementsMatch(tt.want, codes)
		})
	}
}

func (s *MemstoreSuite) TestGetAllByOwner_NewestFirst() {
	owner := "user-1"
	other := "user-2"
	first := s.createURL("aaaaaa", "https://a.com", &owner)
	s.createURL("bbbbbb", "https://b.com", &other)
	s.createURL("cccccc", "https://c.com", nil)
	second := s.createURL("dddddd", "https://d.com", &owner)

	res, err := s.urlRepo.GetAllByOwner(s.T().Context(), owner)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(second.ID, res[0].ID)
	s.Equal(first.ID, res[1].ID)
}

func (s *MemstoreSuite) TestSetActive() {
	u := s.createURL("aaaaaa", "https://a.com", nil)
	updated, err := s.urlRepo.SetActive(s.T().Context(), u.ID, false)
	s.Require().NoError(err)
	s.False(updated.IsActive)

	got, err := s.urlRepo.GetByShortCode(s.T().Context(), "aaaaaa")
	s.Require().NoError(err)
	s.False(got.IsActive)
}

func (s *MemstoreSuite) TestClickCreate_IncrementsCounter() {
	u := s.createURL("aaaaaa", "https://a.com", nil)
	ref := "https://ref.example"
	for range 3 {
		s.Require().NoError(s.clickRepo.Create(s.T().Context(), &models.Click{
			URLID: u.ID, IPAddress: "10.0.0.1", UserAgent: "test", Referer: &ref,
		}))
	}

	got, err := s.urlRepo.GetByID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Equal(uint64(3), got.ClickCount)

	count, err := s.clickRepo.CountByURLID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Equal(uint64(3), count)
}

func (s *MemstoreSuite) TestClickCreate_MissingURL() {
	err := s.clickRepo.Create(s.T().Context(), &models.Click{URLID: 99, IPAddress: "10.0.0.1"})
	s.Require().ErrorIs(err, repositories.ErrNotFound)
}

func (s *MemstoreSuite) TestClickCreate_Concurrent() {
	u := s.createURL("aaaaaa", "https://a.com", nil)

	const workers = 100
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
	count, err := s.clickRepo.CountByURLID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Equal(uint64(workers), count)
}

func (s *MemstoreSuite) TestGetLatestByURLID() {
	u := s.createURL("aaaaaa", "https://a.com", nil)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 12 {
		s.Require().NoError(s.clickRepo.Create(s.T().Context(), &models.Click{
			URLID: u.ID, IPAddress: "10.0.0.1", ClickedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	latest, err := s.clickRepo.GetLatestByURLID(s.T().Context(), u.ID, 10)
	s.Require().NoError(err)
	s.Require().Len(latest, 10)
	s.Equal(base.Add(11*time.Minute), latest[0].ClickedAt)
	s.Equal(base.Add(2*time.Minute), latest[9].ClickedAt)
}

func (s *MemstoreSuite) TestDelete_Cascade() {
	u := s.createURL("aaaaaa", "https://a.com", nil)
	keep := s.createURL("bbbbbb", "https://b.com", nil)
	s.Require().NoError(s.clickRepo.Create(s.T().Context(), &models.Click{URLID: u.ID, IPAddress: "10.0.0.1"}))
	s.Require().NoError(s.clickRepo.Create(s.T().Context(), &models.Click{URLID: keep.ID, IPAddress: "10.0.0.1"}))

	s.Require().NoError(s.urlRepo.Delete(s.T().Context(), u.ID))

	_, err := s.urlRepo.GetByShortCode(s.T().Context(), "aaaaaa")
	s.Require().ErrorIs(err, repositories.ErrNotFound)
	count, err := s.clickRepo.CountByURLID(s.T().Context(), u.ID)
	s.Require().NoError(err)
	s.Zero(count)

	count, err = s.clickRepo.CountByURLID(s.T().Context(), keep.ID)
	s.Require().NoError(err)
	s.Equal(uint64(1), count)
}
