package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/services"
)

// Ошибки.
var (
	ErrRecordNotFound = errors.New("record not found") // Запись не найдена
	ErrInternal       = errors.New("internal error")   // Прочая ошибка
	ErrBadRequest     = errors.New("bad request")      // Не разобрали запрос
	ErrBodyTooLarge   = errors.New("request body too large")
)

// errorStatus сопоставляет ошибку сервисного слоя HTTP статусу и тексту для клиента.
// Подробности клиенту не отдаются, кроме ошибок валидации.
func errorStatus(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error()
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, services.ErrRecordNotFound):
		return http.StatusNotFound, ErrRecordNotFound.Error()
	default:
		return http.StatusInternalServerError, ErrInternal.Error()
	}
}

// abortWithJSONError пишет ошибку в контекст gin (ее залогирует LoggerMiddleware) и отвечает json.
func abortWithJSONError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	status, msg := errorStatus(err)
	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// abortWithTextError аналог abortWithJSONError для text/plain ответов.
func abortWithTextError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	status, msg := errorStatus(err)
	ctx.String(status, msg)
	ctx.Abort()
}
