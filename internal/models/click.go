package models

import "time"

// Click событие перехода по короткой ссылке. Записи только добавляются и удаляются каскадно вместе с URL.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	URLID     uint      `gorm:"not null;index" json:"urlId"`
	IPAddress string    `gorm:"size:45;not null" json:"ipAddress"`
	UserAgent string    `gorm:"type:text" json:"userAgent"`
	Referer   *string   `gorm:"size:2000" json:"referer,omitempty"`
	ClickedAt time.Time `gorm:"autoCreateTime;index" json:"clickedAt"`
}
