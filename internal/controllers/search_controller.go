package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SearchController поиск ссылок по подстроке исходного URL.
type SearchController struct {
	searcher URLSearcher
	builder  shortURLBuilder
}

func NewSearchController(searcher URLSearcher, baseURL string) *SearchController {
	return &SearchController{
		searcher: searcher,
		builder:  shortURLBuilder{baseURL: strings.TrimRight(baseURL, "/")},
	}
}

// Search обрабатывает GET /api/search?q=. Пустой запрос дает пустой список.
func (s *SearchController) Search(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	urls, err := s.searcher.Search(reqCtx, ctx.Query("q"))
	if err != nil {
		abortWithJSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, s.builder.summaries(ctx.Request, urls))
}
