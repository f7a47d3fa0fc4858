package models

import (
	"time"

	"nagarsetu/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_user_read"`
	IssueID   *uint     `gorm:"index"`
	Type      string    `gorm:"size:50;not null"`
	Title     string    `gorm:"size:255;not null"`
	Message   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false;index:idx_user_read"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
