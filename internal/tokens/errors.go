package tokens

import "errors"

var (
	ErrTokenExpired = errors.New("[tokens]: token expired")
	ErrInvalidToken = errors.New("[tokens]: invalid token")
)
