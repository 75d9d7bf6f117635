package middlewares

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/shortlinks/internal/tokens"
)

const (
	SessionKey        = "session"
	SessionCookieName = "session"
	CSRFHeader        = "X-CSRF-Token"

	DefaultSessionTTL = 30 * 24 * time.Hour
)

// SessionConfig параметры сессионной куки.
type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
	// Secure выставляет флаг Secure у куки. Включается при работе по HTTPS.
	Secure bool
}

func (c SessionConfig) ttl() time.Duration {
	if c.TTL <= 0 {
		return DefaultSessionTTL
	}
	return c.TTL
}

// SessionMiddleware читает сессионную куку и кладет сессию в контекст gin.
// Запрос без куки или с невалидной кукой считается анонимным. Новую сессию
// выдает только IssueSession.
func SessionMiddleware(conf SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(SessionCookieName)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				_ = c.Error(fmt.Errorf("session middleware: %w", err))
			}
			c.Next()
			return
		}

		claims, validateErr := tokens.ValidateSessionJWT(cookie.Value, conf.Secret)
		if validateErr != nil {
			_ = c.Error(fmt.Errorf("session middleware: %w", validateErr))
			c.Next()
			return
		}

		c.Set(SessionKey, claims.Session())
		c.Next()
	}
}

// CSRFMiddleware требует заголовок X-CSRF-Token для небезопасных методов, если у запроса есть сессия.
// Анонимный запрос не несет полномочий, поэтому токен ему не нужен.
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		session, ok := CurrentSession(c)
		if !ok {
			c.Next()
			return
		}

		given := c.GetHeader(CSRFHeader)
		if given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(session.CSRFToken)) != 1 {
			_ = c.Error(errors.New("csrf token mismatch"))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid csrf token"})
			return
		}
		c.Next()
	}
}

// RequireSession отвечает 401 запросам без сессии.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session required"})
			return
		}
		c.Next()
	}
}

// IssueSession создает новую сессию, выставляет куку и кладет сессию в контекст.
// Предыдущая сессия запроса, если была, заменяется.
func IssueSession(c *gin.Context, conf SessionConfig) (tokens.Session, error) {
	session := tokens.NewSession()
	tokenString, err := tokens.GenerateSessionJWT(session, conf.ttl(), conf.Secret)
	if err != nil {
		return tokens.Session{}, fmt.Errorf("issue session: %w", err)
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		SessionCookieName,
		tokenString,
		int(conf.ttl().Seconds()),
		"/",
		"",
		conf.Secure,
		true,
	)
	c.Set(SessionKey, session)
	return session, nil
}

// CurrentSession возвращает сессию запроса.
func CurrentSession(c *gin.Context) (tokens.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return tokens.Session{}, false
	}
	session, ok := v.(tokens.Session)
	return session, ok
}

// UserID возвращает идентификатор пользователя сессии или nil для анонимного запроса.
func UserID(c *gin.Context) *string {
	session, ok := CurrentSession(c)
	if !ok {
		return nil
	}
	return &session.UserID
}
