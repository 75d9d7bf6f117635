// Package cache кэширует в redis данные, нужные для переадресации по короткому коду.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "shortlinks:redirect:"
	// genPrefix счетчик изменений ссылки. Запись в кэш проходит только при неизменном счетчике.
	genPrefix = "shortlinks:redirect-gen:"
	// generationTTL должен многократно превышать время между чтением счетчика и записью в кэш.
	generationTTL = 24 * time.Hour
)

// setIfGeneration пишет запись, только если счетчик изменений не сдвинулся с момента чтения.
// KEYS[1] - запись, KEYS[2] - счетчик; ARGV: значение, ожидаемый счетчик, ttl в мс (0 - без ttl).
// nolint:gochecknoglobals
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[2] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

var ErrCacheMiss = errors.New("[cache]: miss")

// Entry минимальный набор полей ссылки для переадресации и записи перехода.
type Entry struct {
	URLID       uint   `json:"id"`
	OriginalURL string `json:"url"`
	IsActive    bool   `json:"active"`
}

type RedirectCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedirectCache создает кэш поверх готового клиента redis.
func NewRedirectCache(client *redis.Client, ttl time.Duration) *RedirectCache {
	return &RedirectCache{client: client, ttl: ttl}
}

// Connect подключается к redis по адресу addr и проверяет соединение.
func Connect(ctx context.Context, addr string, ttl time.Duration) (*RedirectCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedirectCache(client, ttl), nil
}

func (c *RedirectCache) Get(ctx context.Context, code string) (*Entry, error) {
	raw, err := c.client.Get(ctx, keyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get %s: %w", code, err)
	}
	var entry Entry
	if err = json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("decode cache entry %s: %w", code, err)
	}
	return &entry, nil
}

// Generation возвращает текущий счетчик изменений кода. Читается до похода в хранилище.
func (c *RedirectCache) Generation(ctx context.Context, code string) (int64, error) {
	gen, err := c.client.Get(ctx, genPrefix+code).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get generation %s: %w", code, err)
	}
	return gen, nil
}

// SetIfGeneration сохраняет запись, если с момента чтения gen ссылка не менялась.
// Возвращает false, если запись отброшена как устаревшая.
func (c *RedirectCache) SetIfGeneration(ctx context.Context, code string, entry Entry, gen int64) (bool, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return false, fmt.Errorf("encode cache entry %s: %w", code, err)
	}
	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{keyPrefix + code, genPrefix + code},
		raw, strconv.FormatInt(gen, 10), c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis set %s: %w", code, err)
	}
	return stored == 1, nil
}

// Invalidate сдвигает счетчик изменений и удаляет запись. Вызывается до и после записи в хранилище:
// первый вызов отсекает чтения, начатые раньше изменения, второй - начатые во время него.
func (c *RedirectCache) Invalidate(ctx context.Context, code string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genPrefix+code)
		pipe.Expire(ctx, genPrefix+code, generationTTL)
		pipe.Del(ctx, keyPrefix+code)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate %s: %w", code, err)
	}
	return nil
}

func (c *RedirectCache) Close() error {
	return c.client.Close() //nolint:wrapcheck
}
