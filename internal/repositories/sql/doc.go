// Package sql предоставляет реализацию репозиториев ссылок и переходов поверх gorm (sqlite).
//
// Все методы репозитория преобразуют ошибки gorm в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey, UNIQUE constraint failed -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
