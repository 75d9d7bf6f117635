package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingController проверка доступности хранилища.
type PingController struct {
	conn ConnectionChecker
}

// NewPingController создает новый экземпляр PingController.
//
// Параметры:
//   - conn: проверяет соединение с хранилищем
func NewPingController(conn ConnectionChecker) *PingController {
	return &PingController{conn: conn}
}

// Ping обрабатывает GET /ping.
//
// Возвращает:
//   - HTTP 200 OK с телом "pong", если хранилище отвечает
//   - HTTP 503 Service Unavailable, если нет
func (c *PingController) Ping(ctx *gin.Context) {
	if c.conn == nil {
		ctx.String(http.StatusOK, "pong")
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()
	if err := c.conn.CheckConnection(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("ping error: %w", err))
		ctx.String(http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	ctx.String(http.StatusOK, "pong")
}
