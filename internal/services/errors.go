package services

import "errors"

var (
	ErrUnknown            = errors.New("[service]: unknown error")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrValidation         = errors.New("[service]: validation error")
	ErrForbidden          = errors.New("[service]: forbidden")
	ErrCodespaceExhausted = errors.New("[service]: short code space exhausted")
)
