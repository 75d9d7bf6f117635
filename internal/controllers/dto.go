package controllers

import (
	"net/http"
	"time"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services"
)

// CreateShortURLRequest тело json запроса на сокращение.
type CreateShortURLRequest struct {
	URL   string `json:"url" binding:"required"`
	Notes string `json:"notes"`
}

// CreateShortURLResponse ответ на создание короткой ссылки.
type CreateShortURLResponse struct {
	Result    string `json:"result"`
	ShortCode string `json:"shortCode"`
}

// SetActiveRequest тело запроса на включение/выключение ссылки.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// URLSummary публичное представление ссылки. Заметки сюда не попадают никогда.
type URLSummary struct {
	ID          uint      `json:"id"`
	ShortCode   string    `json:"shortCode"`
	ShortURL    string    `json:"shortUrl"`
	OriginalURL string    `json:"originalUrl"`
	ClickCount  uint64    `json:"clickCount"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ClickView struct {
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	Referer   *string   `json:"referer,omitempty"`
	ClickedAt time.Time `json:"clickedAt"`
}

// URLDetailResponse полное представление ссылки для владельца.
type URLDetailResponse struct {
	URLSummary
	Notes        string      `json:"notes"`
	RecentClicks []ClickView `json:"recentClicks"`
}

// SessionResponse ответ на выдачу сессии. CSRF токен нужно передавать в заголовке X-CSRF-Token.
type SessionResponse struct {
	UserID    string `json:"userId"`
	CSRFToken string `json:"csrfToken"`
}

func (b shortURLBuilder) summary(r *http.Request, u *models.URL) URLSummary {
	return URLSummary{
		ID:          u.ID,
		ShortCode:   u.ShortCode,
		ShortURL:    b.build(r, u.ShortCode),
		OriginalURL: u.OriginalURL,
		ClickCount:  u.ClickCount,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func (b shortURLBuilder) summaries(r *http.Request, urls []models.URL) []URLSummary {
	res := make([]URLSummary, 0, len(urls))
	for i := range urls {
		res = append(res, b.summary(r, &urls[i]))
	}
	return res
}

func (b shortURLBuilder) detail(r *http.Request, d *services.URLDetail) URLDetailResponse {
	clicks := make([]ClickView, 0, len(d.RecentClicks))
	for _, c := range d.RecentClicks {
		clicks = append(clicks, ClickView{
			IPAddress: c.IPAddress,
			UserAgent: c.UserAgent,
			Referer:   c.Referer,
			ClickedAt: c.ClickedAt,
		})
	}
	return URLDetailResponse{
		URLSummary:   b.summary(r, &d.URL),
		Notes:        d.Notes,
		RecentClicks: clicks,
	}
}
