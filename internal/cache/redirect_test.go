package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedirectCacheSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	cache *RedirectCache
}

func TestRedirectCacheSuite(t *testing.T) {
	suite.Run(t, new(RedirectCacheSuite))
}

func (s *RedirectCacheSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.cache = NewRedirectCache(redis.NewClient(&redis.Options{Addr: s.mr.Addr()}), time.Minute)
}

func (s *RedirectCacheSuite) TearDownTest() {
	s.NoError(s.cache.Close())
}

func (s *RedirectCacheSuite) store(code string, entry Entry) {
	gen, err := s.cache.Generation(s.T().Context(), code)
	s.Require().NoError(err)
	stored, err := s.cache.SetIfGeneration(s.T().Context(), code, entry, gen)
	s.Require().NoError(err)
	s.Require().True(stored)
}

func (s *RedirectCacheSuite) TestSetGet() {
	entry := Entry{URLID: 7, OriginalURL: "https://example.com", IsActive: true}
	s.store("abc123", entry)

	got, err := s.cache.Get(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal(entry, *got)
	s.True(s.mr.Exists(keyPrefix + "abc123"))
}

func (s *RedirectCacheSuite) TestMiss() {
	_, err := s.cache.Get(s.T().Context(), "nope00")
	s.Require().ErrorIs(err, ErrCacheMiss)
}

func (s *RedirectCacheSuite) TestTTL() {
	s.store("abc123", Entry{URLID: 1})
	s.mr.FastForward(2 * time.Minute)

	_, err := s.cache.Get(s.T().Context(), "abc123")
	s.Require().ErrorIs(err, ErrCacheMiss)
}

func (s *RedirectCacheSuite) TestInvalidate() {
	s.store("abc123", Entry{URLID: 1})
	s.Require().NoError(s.cache.Invalidate(s.T().Context(), "abc123"))

	_, err := s.cache.Get(s.T().Context(), "abc123")
	s.Require().ErrorIs(err, ErrCacheMiss)

	gen, err := s.cache.Generation(s.T().Context(), "abc123")
	s.Require().NoError(err)
	s.Equal(int64(1), gen)
	s.NotZero(s.mr.TTL(genPrefix + "abc123"))
}

// Запись, прочитанная до изменения ссылки, не должна попасть в кэш после сброса.
func (s *RedirectCacheSuite) TestSetIfGeneration_StaleWriteRejected() {
	ctx := s.T().Context()
	gen, err := s.cache.Generation(ctx, "abc123")
	s.Require().NoError(err)

	s.Require().NoError(s.cache.Invalidate(ctx, "abc123"))

	stored, err := s.cache.SetIfGeneration(ctx, "abc123", Entry{URLID: 1, IsActive: true}, gen)
	s.Require().NoError(err)
	s.False(stored)
	s.False(s.mr.Exists(keyPrefix + "abc123"))

	s.store("abc123", Entry{URLID: 1, IsActive: false})
	got, err := s.cache.Get(ctx, "abc123")
	s.Require().NoError(err)
	s.False(got.IsActive)
}

func (s *RedirectCacheSuite) TestSetIfGeneration_NoTTL() {
	c := NewRedirectCache(redis.NewClient(&redis.Options{Addr: s.mr.Addr()}), 0)
	defer func() { s.NoError(c.Close()) }()

	stored, err := c.SetIfGeneration(s.T().Context(), "abc123", Entry{URLID: 1}, 0)
	s.Require().NoError(err)
	s.True(stored)
	s.Zero(s.mr.TTL(keyPrefix + "abc123"))
}

func (s *RedirectCacheSuite) TestConnect() {
	c, err := Connect(s.T().Context(), s.mr.Addr(), time.Minute)
	s.Require().NoError(err)
	s.NoError(c.Close())

	s.mr.Close()
	_, err = Connect(s.T().Context(), s.mr.Addr(), time.Minute)
	s.Require().Error(err)
}
