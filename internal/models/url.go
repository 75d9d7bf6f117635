package models

import "time"

// ShortCodeLength длина короткого кода ссылки.
const ShortCodeLength = 6

// MaxOriginalURLLength максимальная длина исходного URL.
const MaxOriginalURLLength = 2000

// URL структура модели хранения сокращенной ссылки.
//
// Поле Notes хранится только в зашифрованном виде, расшифровывается исключительно для владельца.
type URL struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OriginalURL string    `gorm:"size:2000;not null" json:"originalUrl"`
	ShortCode   string    `gorm:"size:6;not null;uniqueIndex" json:"shortCode"`
	OwnerID     *string   `gorm:"size:36;index" json:"ownerId,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	ClickCount  uint64    `gorm:"not null;default:0" json:"clickCount"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	Notes       string    `gorm:"type:text" json:"notes"`

	Clicks []Click `gorm:"foreignKey:URLID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsOwnedBy проверяет, принадлежит ли запись пользователю userID.
// Анонимные записи не принадлежат никому.
func (u *URL) IsOwnedBy(userID *string) bool {
	if u.OwnerID == nil || userID == nil {
		return false
	}
	return *u.OwnerID == *userID
}
