package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// isJSONRequest Определяет тип запроса (json или нет) по заголовку Content-Type.
func isJSONRequest(ctx *gin.Context) bool {
	ct := ctx.Request.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json")
}

// requestContext собирает данные запроса для записи перехода.
func requestContext(ctx *gin.Context) services.RequestContext {
	return services.RequestContext{
		ForwardedFor: ctx.GetHeader("X-Forwarded-For"),
		PeerAddr:     ctx.Request.RemoteAddr,
		UserAgent:    ctx.Request.UserAgent(),
		Referer:      ctx.Request.Referer(),
	}
}

// paramID разбирает числовой идентификатор ссылки из пути.
func paramID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrBadRequest, ctx.Param("id"))
	}
	return uint(id), nil
}

// shortURLBuilder строит абсолютную короткую ссылку. Если базовый адрес не задан,
// берется схема и хост запроса.
type shortURLBuilder struct {
	baseURL string
}

func (b shortURLBuilder) build(r *http.Request, code string) string {
	base := b.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/s/" + code
}
