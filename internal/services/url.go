package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/repositories"
)

// DefaultMaxGenerateAttempts сколько раз пробуем новый код при коллизиях, прежде чем сдаться.
const DefaultMaxGenerateAttempts = 100

// linkSchemes схемы, которые принимаются для сокращения.
// nolint:gochecknoglobals
var linkSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

// CreateURLArgs входные данные для создания короткой ссылки.
type CreateURLArgs struct {
	OriginalURL string  `validate:"required,max=2000,url,link_scheme"`
	Notes       string  // без ограничения длины, шифруется целиком
	OwnerID     *string `validate:"omitempty"`
}

// validateLinkScheme допускает абсолютные URL со схемой из linkSchemes и непустым хостом.
func validateLinkScheme(fl validator.FieldLevel) bool {
	parsed, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return linkSchemes[strings.ToLower(parsed.Scheme)] && parsed.Host != ""
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("link_scheme", validateLinkScheme); err != nil {
		panic(err)
	}
	return v
}

// URLService Сервис работает с хранилищем в контексте таблицы `urls`.
type URLService struct {
	urlRepo     URLRepository
	generator   ShortCodeGenerator
	crypter     NotesCrypter
	cache       RedirectCache
	metrics     MetricsRecorder
	logger      *zap.Logger
	validate    *validator.Validate
	maxAttempts int
}

// URLServiceOption настройка URLService.
type URLServiceOption func(*URLService)

func WithGenerator(g ShortCodeGenerator) URLServiceOption {
	return func(s *URLService) { s.generator = g }
}

// WithRedirectCache подключает кэш переадресации, который сервис сбрасывает при изменении ссылки.
func WithRedirectCache(c RedirectCache) URLServiceOption {
	return func(s *URLService) { s.cache = c }
}

func WithMetrics(m MetricsRecorder) URLServiceOption {
	return func(s *URLService) { s.metrics = m }
}

func WithLogger(l *zap.Logger) URLServiceOption {
	return func(s *URLService) { s.logger = l }
}

func WithMaxGenerateAttempts(n int) URLServiceOption {
	return func(s *URLService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// NewURLService создает сервис ссылок.
//
// Параметры:
//   - urlRepo: репозиторий ссылок
//   - crypter: шифратор заметок
//   - opts: необязательные настройки (генератор, кэш, метрики, логгер, лимит попыток)
func NewURLService(urlRepo URLRepository, crypter NotesCrypter, opts ...URLServiceOption) *URLService {
	s := &URLService{
		urlRepo:     urlRepo,
		crypter:     crypter,
		generator:   NewCodeGenerator(),
		metrics:     noopMetrics{},
		logger:      zap.NewNop(),
		validate:    newValidator(),
		maxAttempts: DefaultMaxGenerateAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create валидирует данные, шифрует заметки и сохраняет ссылку под новым случайным кодом.
// При коллизии кода берется следующий. Цикл завершается успехом, отменой контекста
// или ErrCodespaceExhausted после maxAttempts неудач подряд.
func (u *URLService) Create(ctx context.Context, args CreateURLArgs) (*models.URL, error) {
	args.OriginalURL = strings.TrimSpace(args.OriginalURL)
	if err := u.validate.Struct(args); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	notes, err := u.crypter.Seal(args.Notes)
	if err != nil {
		return nil, fmt.Errorf("%w: seal notes: %s", ErrUnknown, err.Error())
	}

	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("create short url: %w", ctxErr)
		}
		code, genErr := u.generator.Generate()
		if genErr != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknown, genErr.Error())
		}

		sURL := models.URL{
			OriginalURL: args.OriginalURL,
			ShortCode:   code,
			OwnerID:     args.OwnerID,
			IsActive:    true,
			Notes:       notes,
		}
		createErr := u.urlRepo.Create(ctx, &sURL)
		if createErr == nil {
			u.metrics.URLShortened()
			return &sURL, nil
		}
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			u.logger.Debug("short code collision", zap.String("code", code), zap.Int("attempt", attempt+1))
			continue
		}
		return nil, convertRepoError(createErr)
	}

	u.logger.Error("short code space exhausted", zap.Int("attempts", u.maxAttempts))
	return nil, fmt.Errorf("%w: %d attempts", ErrCodespaceExhausted, u.maxAttempts)
}

func (u *URLService) GetByShortCode(ctx context.Context, code string) (*models.URL, error) {
	sURL, err := u.urlRepo.GetByShortCode(ctx, code)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return sURL, nil
}

func (u *URLService) GetByID(ctx context.Context, id uint) (*models.URL, error) {
	sURL, err := u.urlRepo.GetByID(ctx, id)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return sURL, nil
}

// Search ищет ссылки, исходный URL которых содержит substr без учета регистра.
func (u *URLService) Search(ctx context.Context, substr string) ([]models.URL, error) {
	urls, err := u.urlRepo.SearchByOriginalURL(ctx, substr)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return urls, nil
}

// ListByOwner возвращает ссылки пользователя, новые первыми.
func (u *URLService) ListByOwner(ctx context.Context, ownerID string) ([]models.URL, error) {
	urls, err := u.urlRepo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return urls, nil
}

// IncrementClicks отдельная операция увеличения счетчика переходов. При редиректе счетчик
// увеличивает ClickRepository.Create в одной транзакции с записью перехода, этот метод
// нужен для пересчета и обслуживания записей вне redirect пути.
func (u *URLService) IncrementClicks(ctx context.Context, id uint) error {
	if err := u.urlRepo.IncrementClicks(ctx, id); err != nil {
		return convertRepoError(err)
	}
	return nil
}

// SetActive включает или выключает ссылку. Запись кэша переадресации сбрасывается
// до и после изменения, чтобы параллельный Resolve не вернул в кэш старое состояние.
func (u *URLService) SetActive(ctx context.Context, id uint, active bool) (*models.URL, error) {
	if u.cache != nil {
		current, err := u.urlRepo.GetByID(ctx, id)
		if err != nil {
			return nil, convertRepoError(err)
		}
		u.invalidate(ctx, current.ShortCode)
	}
	sURL, err := u.urlRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, convertRepoError(err)
	}
	u.invalidate(ctx, sURL.ShortCode)
	return sURL, nil
}

// Delete удаляет ссылку (переходы удаляются каскадно). Кэш сбрасывается как в SetActive.
func (u *URLService) Delete(ctx context.Context, id uint) error {
	sURL, err := u.urlRepo.GetByID(ctx, id)
	if err != nil {
		return convertRepoError(err)
	}
	u.invalidate(ctx, sURL.ShortCode)
	if err = u.urlRepo.Delete(ctx, id); err != nil {
		return convertRepoError(err)
	}
	u.invalidate(ctx, sURL.ShortCode)
	return nil
}

// OpenNotes расшифровывает заметки ссылки.
func (u *URLService) OpenNotes(sURL *models.URL) (string, error) {
	notes, err := u.crypter.Open(sURL.Notes)
	if err != nil {
		return "", fmt.Errorf("%w: open notes of url %d: %s", ErrUnknown, sURL.ID, err.Error())
	}
	return notes, nil
}

func (u *URLService) invalidate(ctx context.Context, code string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, code); err != nil {
		u.logger.Warn("failed to invalidate redirect cache", zap.String("code", code), zap.Error(err))
	}
}

// convertRepoError переводит ошибки репозитория в ошибки сервисного слоя.
func convertRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrRecordNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknown, err.Error())
	}
}

type noopMetrics struct{}

func (noopMetrics) URLShortened()      {}
func (noopMetrics) Redirect(string)    {}
func (noopMetrics) ClickRecordFailed() {}
