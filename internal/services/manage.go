package services

import (
	"context"
	"fmt"

	"github.com/fsdevblog/shortlinks/internal/models"
)

// URLDetail полные данные ссылки для владельца: расшифрованные заметки и последние переходы.
type URLDetail struct {
	URL          models.URL
	Notes        string
	RecentClicks []models.Click
}

type urlManager interface {
	GetByID(ctx context.Context, id uint) (*models.URL, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.URL, error)
	SetActive(ctx context.Context, id uint, active bool) (*models.URL, error)
	Delete(ctx context.Context, id uint) error
	OpenNotes(sURL *models.URL) (string, error)
}

type latestClicks interface {
	Latest(ctx context.Context, urlID uint, limit int) ([]models.Click, error)
}

// ManageService операции владельца над своими ссылками. Для чужих и анонимных ссылок
// все методы отвечают ErrRecordNotFound, не раскрывая существование записи.
type ManageService struct {
	urls   urlManager
	clicks latestClicks
	access *AccessController
}

func NewManageService(urls urlManager, clicks latestClicks, access *AccessController) *ManageService {
	return &ManageService{urls: urls, clicks: clicks, access: access}
}

// Detail возвращает ссылку с расшифрованными заметками и DetailClicksLimit последними переходами.
func (m *ManageService) Detail(ctx context.Context, id uint, requester *string) (*URLDetail, error) {
	sURL, err := m.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if !m.access.CanViewDetails(requester, sURL) {
		return nil, denied(id)
	}

	notes, err := m.urls.OpenNotes(sURL)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	clicks, err := m.clicks.Latest(ctx, sURL.ID, DetailClicksLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &URLDetail{URL: *sURL, Notes: notes, RecentClicks: clicks}, nil
}

// ListOwned возвращает ссылки пользователя, новые первыми. Анонимному пользователю пустой список.
func (m *ManageService) ListOwned(ctx context.Context, requester *string) ([]models.URL, error) {
	if requester == nil {
		return []models.URL{}, nil
	}
	return m.urls.ListByOwner(ctx, *requester) //nolint:wrapcheck
}

func (m *ManageService) SetActive(ctx context.Context, id uint, requester *string, active bool) (*models.URL, error) {
	if err := m.authorize(ctx, id, requester); err != nil {
		return nil, err
	}
	return m.urls.SetActive(ctx, id, active) //nolint:wrapcheck
}

func (m *ManageService) Delete(ctx context.Context, id uint, requester *string) error {
	if err := m.authorize(ctx, id, requester); err != nil {
		return err
	}
	return m.urls.Delete(ctx, id) //nolint:wrapcheck
}

func (m *ManageService) authorize(ctx context.Context, id uint, requester *string) error {
	sURL, err := m.urls.GetByID(ctx, id)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !m.access.CanManage(requester, sURL) {
		return denied(id)
	}
	return nil
}

func denied(id uint) error {
	return fmt.Errorf("%w: url %d: %w", ErrRecordNotFound, id, ErrForbidden)
}
