package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/controllers/middlewares"
	"github.com/fsdevblog/shortlinks/internal/services"
)

// UserURLsController ссылки текущего пользователя. Все маршруты требуют сессию.
type UserURLsController struct {
	manager OwnerURLManager
	builder shortURLBuilder
}

func NewUserURLsController(manager OwnerURLManager, baseURL string) *UserURLsController {
	return &UserURLsController{
		manager: manager,
		builder: shortURLBuilder{baseURL: strings.TrimRight(baseURL, "/")},
	}
}

// List обрабатывает GET /api/user/urls: ссылки пользователя, новые первыми.
func (u *UserURLsController) List(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	urls, err := u.manager.ListOwned(reqCtx, middlewares.UserID(ctx))
	if err != nil {
		abortWithJSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, u.builder.summaries(ctx.Request, urls))
}

// Detail обрабатывает GET /api/user/urls/:id. Чужая ссылка неотличима от несуществующей.
func (u *UserURLsController) Detail(ctx *gin.Context) {
	id, ok := u.id(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	detail, err := u.manager.Detail(reqCtx, id, middlewares.UserID(ctx))
	if err != nil {
		abortWithJSONError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, u.builder.detail(ctx.Request, detail))
}

// SetActive обрабатывает PATCH /api/user/urls/:id с телом {"isActive": bool}.
func (u *UserURLsController) SetActive(ctx *gin.Context) {
	id, ok := u.id(ctx)
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithJSONError(ctx, fmt.Errorf("%w: %s", services.ErrValidation, err.Error()))
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	if _, err := u.manager.SetActive(reqCtx, id, middlewares.UserID(ctx), *req.IsActive); err != nil {
		abortWithJSONError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/user/urls/:id.
func (u *UserURLsController) Delete(ctx *gin.Context) {
	id, ok := u.id(ctx)
	if !ok {
		return
	}
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	if err := u.manager.Delete(reqCtx, id, middlewares.UserID(ctx)); err != nil {
		abortWithJSONError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// id разбирает идентификатор; некорректный идентификатор не может принадлежать пользователю, отвечаем 404.
func (u *UserURLsController) id(ctx *gin.Context) (uint, bool) {
	id, err := paramID(ctx)
	if err != nil {
		_ = ctx.Error(err)
		ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": ErrRecordNotFound.Error()})
		return 0, false
	}
	return id, true
}
