package services

import (
	"context"

	"github.com/fsdevblog/shortlinks/internal/cache"
	"github.com/fsdevblog/shortlinks/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// URLRepository описывает репозиторий для URL.
type URLRepository interface {
	// Create сохраняет запись. При занятом коротком коде возвращает repositories.ErrDuplicateKey.
	Create(ctx context.Context, mURL *models.URL) error
	// GetByShortCode находит в хранилище запись по короткому коду.
	GetByShortCode(ctx context.Context, code string) (*models.URL, error)
	GetByID(ctx context.Context, id uint) (*models.URL, error)
	// SearchByOriginalURL ищет подстроку в исходном URL без учета регистра.
	SearchByOriginalURL(ctx context.Context, substr string) ([]models.URL, error)
	// GetAllByOwner возвращает записи пользователя, новые первыми.
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.URL, error)
	IncrementClicks(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*models.URL, error)
	// Delete удаляет запись вместе с ее переходами.
	Delete(ctx context.Context, id uint) error
}

// ClickRepository описывает репозиторий событий перехода.
type ClickRepository interface {
	// Create сохраняет событие и увеличивает счетчик ссылки в одной транзакции.
	Create(ctx context.Context, click *models.Click) error
	GetLatestByURLID(ctx context.Context, urlID uint, limit int) ([]models.Click, error)
	CountByURLID(ctx context.Context, urlID uint) (uint64, error)
}

// RedirectCache кэш данных для переадресации. Промах возвращается как cache.ErrCacheMiss.
//
// Запись версионирована: Generation читается до похода в хранилище, SetIfGeneration
// отбрасывает запись, если за это время ссылку изменили и вызвали Invalidate.
type RedirectCache interface {
	Get(ctx context.Context, code string) (*cache.Entry, error)
	Generation(ctx context.Context, code string) (int64, error)
	SetIfGeneration(ctx context.Context, code string, entry cache.Entry, gen int64) (bool, error)
	Invalidate(ctx context.Context, code string) error
}

// NotesCrypter шифрует заметки перед записью в хранилище.
type NotesCrypter interface {
	Seal(plain string) (string, error)
	Open(sealed string) (string, error)
}

// MetricsRecorder счетчики, которые обновляют сервисы.
type MetricsRecorder interface {
	URLShortened()
	Redirect(outcome string)
	ClickRecordFailed()
}

// ShortCodeGenerator выдает случайный короткий код.
type ShortCodeGenerator interface {
	Generate() (string, error)
}
