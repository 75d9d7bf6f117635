package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services"
)

// maxPlainBodySize ограничение тела text/plain запроса: URL плюс запас на пробелы.
const maxPlainBodySize = models.MaxOriginalURLLength * 2

// ShortURLController создает короткие ссылки и выполняет переадресацию.
type ShortURLController struct {
	urls      URLCreator
	redirects Redirector
	builder   shortURLBuilder
}

func NewShortURLController(urls URLCreator, redirects Redirector, baseURL string) *ShortURLController {
	return &ShortURLController{
		urls:      urls,
		redirects: redirects,
		builder:   shortURLBuilder{baseURL: strings.TrimRight(baseURL, "/")},
	}
}

// Redirect обрабатывает GET /s/:shortCode.
//
// Отвечает 307 на исходный URL, 404 для неизвестной, выключенной или неверной по форме ссылки.
func (s *ShortURLController) Redirect(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	res, err := s.redirects.Resolve(reqCtx, ctx.Param("shortCode"), requestContext(ctx))
	if err != nil {
		abortWithTextError(ctx, err)
		return
	}

	ctx.Header("Cache-Control", "private, no-cache")
	ctx.Redirect(http.StatusTemporaryRedirect, res.Target)
}

// CreateShortURL обрабатывает POST / (text/plain с URL в теле) и POST /api/shorten
// (json {"url", "notes"}). Владельцем ссылки становится пользователь сессии, если она есть.
func (s *ShortURLController) CreateShortURL(ctx *gin.Context) {
	if isJSONRequest(ctx) {
		s.createFromJSON(ctx)
		return
	}
	s.createFromPlain(ctx)
}

func (s *ShortURLController) createFromJSON(ctx *gin.Context) {
	var req CreateShortURLRequest
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, middlewares.MaxRequestBodySize)
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			abortWithJSONError(ctx, err)
			return
		}
		abortWithJSONError(ctx, fmt.Errorf("%w: %s", services.ErrValidation, err.Error()))
		return
	}

	sURL, err := s.create(ctx, req.URL, req.Notes)
	if err != nil {
		abortWithJSONError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, CreateShortURLResponse{
		Result:    s.builder.build(ctx.Request, sURL.ShortCode),
		ShortCode: sURL.ShortCode,
	})
}

func (s *ShortURLController) createFromPlain(ctx *gin.Context) {
	body, readErr := io.ReadAll(io.LimitReader(ctx.Request.Body, maxPlainBodySize+1))
	if readErr != nil {
		abortWithTextError(ctx, fmt.Errorf("read body: %w", readErr))
		return
	}
	if len(body) > maxPlainBodySize {
		abortWithTextError(ctx, fmt.Errorf("%w: body too large", services.ErrValidation))
		return
	}

	sURL, err := s.create(ctx, string(body), "")
	if err != nil {
		abortWithTextError(ctx, err)
		return
	}

	ctx.String(http.StatusCreated, s.builder.build(ctx.Request, sURL.ShortCode))
}

func (s *ShortURLController) create(ctx *gin.Context, rawURL, notes string) (*models.URL, error) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, err := s.urls.Create(reqCtx, services.CreateURLArgs{
		OriginalURL: rawURL,
		Notes:       notes,
		OwnerID:     middlewares.UserID(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("create short url: %w", err)
	}
	return sURL, nil
}
