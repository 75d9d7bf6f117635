package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
)

// SessionController выдает анонимные сессии.
type SessionController struct {
	conf middlewares.SessionConfig
}

func NewSessionController(conf middlewares.SessionConfig) *SessionController {
	return &SessionController{conf: conf}
}

// Create обрабатывает POST /api/session. Каждый вызов выдает новую личность и новый
// CSRF токен, предыдущая кука перезаписывается.
func (s *SessionController) Create(ctx *gin.Context) {
	session, err := middlewares.IssueSession(ctx, s.conf)
	if err != nil {
		abortWithJSONError(ctx, err)
		return
	}
	ctx.Header(middlewares.CSRFHeader, session.CSRFToken)
	ctx.JSON(http.StatusCreated, SessionResponse{
		UserID:    session.UserID,
		CSRFToken: session.CSRFToken,
	})
}
