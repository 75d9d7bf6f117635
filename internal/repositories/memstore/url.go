package memstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/shortlinks/internal/db"
	"github.com/fsdevblog/shortlinks/internal/db/memory"
	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// URLRepo представляет собой репозиторий для работы с сокращенными ссылками в памяти.
type URLRepo struct {
	s *db.MemoryStorage
}

// NewURLRepo создает новый экземпляр репозитория URL.
//
// Параметры:
//   - store: экземпляр хранилища в памяти
//
// Возвращает:
//   - *URLRepo: инициализированный репозиторий
func NewURLRepo(store *db.MemoryStorage) *URLRepo {
	return &URLRepo{
		s: store,
	}
}

// Create сохраняет новую ссылку. ID и CreatedAt выставляются хранилищем.
// Если короткий код уже занят, возвращается repositories.ErrDuplicateKey.
//
// Параметры:
//   - ctx: контекст выполнения
//   - sURL: данные ссылки для создания
//
// Возвращает:
//   - error: ошибка создания (преобразованная через convertErrorType)
func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) error {
	u.s.Lock()
	defer u.s.Unlock()

	if u.s.URLs.IsExist(sURL.ShortCode) {
		return fmt.Errorf(
			"failed to create record with code %s: %w",
			sURL.ShortCode, repositories.ErrDuplicateKey,
		)
	}

	record := *sURL
	record.ID = u.s.NextURLID()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.Clicks = nil

	if err := memory.Set[models.URL](ctx, record.ShortCode, &record, u.s.URLs); err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	u.s.IndexURL(record.ID, record.ShortCode)

	sURL.ID = record.ID
	sURL.CreatedAt = record.CreatedAt
	return nil
}

// GetByShortCode получает ссылку по короткому коду.
func (u *URLRepo) GetByShortCode(ctx context.Context, code string) (*models.URL, error) {
	u.s.RLock()
	defer u.s.RUnlock()

	url, err := memory.Get[models.URL](ctx, code, u.s.URLs)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by short code %s: %w",
			code, convertErrorType(err),
		)
	}
	return url, nil
}

// GetByID получает ссылку по ее идентификатору.
func (u *URLRepo) GetByID(ctx context.Context, id uint) (*models.URL, error) {
	u.s.RLock()
	defer u.s.RUnlock()

	return u.getByID(ctx, id)
}

func (u *URLRepo) getByID(ctx context.Context, id uint) (*models.URL, error) {
	code, ok := u.s.CodeByID(id)
	if !ok {
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, repositories.ErrNotFound)
	}
	url, err := memory.Get[models.URL](ctx, code, u.s.URLs)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by id %d: %w", id, convertErrorType(err))
	}
	return url, nil
}

// SearchByOriginalURL ищет ссылки, исходный URL которых содержит substr без учета регистра.
// Подстрока сравнивается буквально. Результат отсортирован от новых к старым.
func (u *URLRepo) SearchByOriginalURL(ctx context.Context, substr string) ([]models.URL, error) {
	u.s.RLock()
	defer u.s.RUnlock()

	needle := strings.ToLower(substr)
	data, err := memory.FilterAll[models.URL](ctx, u.s.URLs, func(val models.URL) bool {
		return strings.Contains(strings.ToLower(val.OriginalURL), needle)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", convertErrorType(err))
	}
	sortNewestFirst(data)
	return data, nil
}

// GetAllByOwner возвращает ссылки пользователя ownerID от новых к старым.
func (u *URLRepo) GetAllByOwner(ctx context.Context, ownerID string) ([]models.URL, error) {
	u.s.RLock()
	defer u.s.RUnlock()

	data, err := memory.FilterAll[models.URL](ctx, u.s.URLs, func(val models.URL) bool {
		return val.OwnerID != nil && *val.OwnerID == ownerID
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get records by owner %s: %w",
			ownerID, convertErrorType(err),
		)
	}
	sortNewestFirst(data)
	return data, nil
}

// IncrementClicks атомарно увеличивает счетчик переходов на единицу.
func (u *URLRepo) IncrementClicks(ctx context.Context, id uint) error {
	u.s.Lock()
	defer u.s.Unlock()

	return incrementClicks(ctx, u.s, id)
}

// SetActive включает или выключает ссылку и возвращает обновленную запись.
func (u *URLRepo) SetActive(ctx context.Context, id uint, active bool) (*models.URL, error) {
	u.s.Lock()
	defer u.s.Unlock()

	code, ok := u.s.CodeByID(id)
	if !ok {
		return nil, fmt.Errorf("failed to update record %d: %w", id, repositories.ErrNotFound)
	}
	url, err := memory.Update[models.URL](ctx, code, u.s.URLs, func(val *models.URL) error {
		val.IsActive = active
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update record %d: %w", id, convertErrorType(err))
	}
	return url, nil
}

// Delete удаляет ссылку вместе со всеми ее переходами.
func (u *URLRepo) Delete(ctx context.Context, id uint) error {
	u.s.Lock()
	defer u.s.Unlock()

	code, ok := u.s.CodeByID(id)
	if !ok {
		return fmt.Errorf("failed to delete record %d: %w", id, repositories.ErrNotFound)
	}

	clicks, err := memory.FilterAll[models.Click](ctx, u.s.Clicks, func(val models.Click) bool {
		return val.URLID == id
	})
	if err != nil {
		return fmt.Errorf("failed to collect clicks of record %d: %w", id, convertErrorType(err))
	}
	if err = memory.Delete(ctx, code, u.s.URLs); err != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, convertErrorType(err))
	}
	u.s.UnindexURL(id)

	// ссылка уже удалена, поэтому каскад доводим до конца даже при отмене контекста
	cascadeCtx := context.WithoutCancel(ctx)
	for _, click := range clicks {
		if delErr := memory.Delete(cascadeCtx, clickKey(click.ID), u.s.Clicks); delErr != nil {
			return fmt.Errorf("failed to delete click %d: %w", click.ID, convertErrorType(delErr))
		}
	}
	return nil
}

// incrementClicks увеличивает счетчик ссылки. Вызывать под Lock хранилища.
func incrementClicks(ctx context.Context, s *db.MemoryStorage, id uint) error {
	code, ok := s.CodeByID(id)
	if !ok {
		return fmt.Errorf("failed to increment clicks of record %d: %w", id, repositories.ErrNotFound)
	}
	_, err := memory.Update[models.URL](ctx, code, s.URLs, func(val *models.URL) error {
		val.ClickCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment clicks of record %d: %w", id, convertErrorType(err))
	}
	return nil
}

func sortNewestFirst(data []models.URL) {
	slices.SortFunc(data, func(a, b models.URL) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID) - int(a.ID) //nolint:gosec
	})
}
