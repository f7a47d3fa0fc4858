package models

import (
	"time"

	"nagarsetu/internal/shared/constants"
)

// UserModel is read-only; accounts are owned by the identity service.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Role      string `gorm:"size:20;not null;default:'citizen'"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
