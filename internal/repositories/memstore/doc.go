// Package memstore предоставляет реализацию репозиториев ссылок и переходов для in-memory хранилища.
//
// Все методы репозитория преобразуют внутренние ошибки хранилища в общие ошибки уровня репозитория
// с помощью convertErrorType:
//   - memory.ErrDuplicateKey -> repositories.ErrDuplicateKey
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
//
// Операции, которые затрагивают обе коллекции (запись перехода, каскадное удаление),
// выполняются под общей блокировкой db.MemoryStorage.
package memstore
