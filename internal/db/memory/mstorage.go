package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// MStorage потокобезопасное хранилище ключ/значение. Значения хранятся в сериализованном виде,
// поэтому наружу всегда отдаются копии.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

// SetOptions опции записи.
type SetOptions struct {
	Overwrite bool // Перезаписывать существующее значение вместо ErrDuplicateKey
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.Overwrite = true
	}
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.data)
}

func (m *MStorage) IsExist(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	_, ok := m.data[key]
	return ok
}

func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, fmt.Errorf("unmarshal value by key `%s`: %w", key, err)
	}
	return &result, nil
}

// Set Сохраняет новую пару ключ/значение. Без WithOverwrite ключ обязан быть уникальным,
// иначе вернется ошибка ErrDuplicateKey. Проверка и запись выполняются под одной блокировкой.
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal value `%+v`: %w", val, err)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; ok && !options.Overwrite {
		return ErrDuplicateKey
	}
	m.data[key] = bytes
	return nil
}

// Update атомарно читает значение по ключу, применяет к нему fn и сохраняет результат.
// Если fn вернула ошибку, значение не меняется.
func Update[T any](ctx context.Context, key string, m *MStorage, fn func(*T) error) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var val T
	if err := json.Unmarshal(raw, &val); err != nil {
		return nil, fmt.Errorf("unmarshal value by key `%s`: %w", key, err)
	}
	if err := fn(&val); err != nil {
		return nil, err
	}
	bytes, err := json.Marshal(&val)
	if err != nil {
		return nil, fmt.Errorf("marshal value by key `%s`: %w", key, err)
	}
	m.data[key] = bytes
	return &val, nil
}

func Delete(ctx context.Context, key string, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}
	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	return FilterAll[T](ctx, m, func(T) bool { return true })
}

// FilterAll возвращает все значения, для которых fn вернула true. Порядок не определен.
// Значения, которые не удалось десериализовать, пропускаются.
func FilterAll[T any](ctx context.Context, m *MStorage, fn func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0)
	for key, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			logrus.WithError(err).WithField("key", key).Error("failed to unmarshal stored value")
			continue
		}
		if fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}
