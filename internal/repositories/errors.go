package repositories

import "errors"

// Ошибки слоя репозиториев. Реализации хранилищ приводят к ним ошибки драйверов,
// сервисы сверяют их через errors.Is.
var (
	// ErrNotFound ссылка или переход не найдены. Для кликов также означает,
	// что ссылка удалена до записи перехода.
	ErrNotFound = errors.New("[repository]: record not found")
	// ErrDuplicateKey занятый short_code. Сервис в этом случае генерирует новый код.
	ErrDuplicateKey = errors.New("[repository]: duplicate short code")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
