package memory

import "errors"

var (
	// ErrNotFound нет значения по ключу.
	ErrNotFound = errors.New("memory: key not found")
	// ErrDuplicateKey ключ уже занят, а Overwrite не задан.
	ErrDuplicateKey = errors.New("memory: key already exists")
)
