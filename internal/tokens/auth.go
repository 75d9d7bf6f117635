package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Session анонимная личность пользователя: идентификатор владельца ссылок
// и CSRF токен, привязанный к этой сессии.
type Session struct {
	UserID    string
	CSRFToken string
}

// NewSession выдает новую личность со случайными идентификатором и CSRF токеном.
func NewSession() Session {
	return Session{
		UserID:    uuid.NewString(),
		CSRFToken: uuid.NewString(),
	}
}

// SessionClaims представляет данные JWT токена сессии.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	CSRF   string `json:"csrf"`
}

// Session возвращает сессию, записанную в токене.
func (c *SessionClaims) Session() Session {
	return Session{UserID: c.UserID, CSRFToken: c.CSRF}
}

// GenerateSessionJWT создает JWT токен сессии.
//
// Параметры:
//   - session: данные сессии
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateSessionJWT(session Session, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		UserID: session.UserID,
		CSRF:   session.CSRFToken,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating session jwt token: %w", err)
	}
	return token, nil
}

// ValidateSessionJWT проверяет JWT токен сессии.
//
// Возвращает ErrTokenExpired для просроченного токена и ErrInvalidToken для любого
// другого невалидного токена (подпись, алгоритм, пустые поля).
func ValidateSessionJWT(tokenString string, key []byte) (*SessionClaims, error) {
	claims := new(SessionClaims)
	if _, err := validateJWT(tokenString, claims, key); err != nil {
		return nil, fmt.Errorf("validating session jwt token: %w", err)
	}
	if claims.UserID == "" || claims.CSRF == "" {
		return nil, errors.Wrap(ErrInvalidToken, "session claims are empty")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}

	return tokenString, nil
}

// validateJWT проверяет подпись и срок действия токена. Принимается только HS256.
func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return token, nil
}
