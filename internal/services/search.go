package services

import (
	"context"
	"strings"

	"github.com/fsdevblog/shortlinks/internal/models"
)

type urlSearcher interface {
	Search(ctx context.Context, substr string) ([]models.URL, error)
}

type SearchService struct {
	urls urlSearcher
}

func NewSearchService(urls urlSearcher) *SearchService {
	return &SearchService{urls: urls}
}

// Search ищет ссылки по подстроке исходного URL. Пустой запрос (после обрезки пробелов)
// сразу дает пустой результат.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.URL, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.URL{}, nil
	}
	return s.urls.Search(ctx, query) //nolint:wrapcheck
}
