package models

import (
	"time"

	"nagarsetu/internal/shared/constants"
)

type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;uniqueIndex"`
	Description string `gorm:"type:text;not null"`
	Icon        string `gorm:"size:50;not null;default:'folder'"`
	Color       string `gorm:"size:20;not null;default:'#3B82F6'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
