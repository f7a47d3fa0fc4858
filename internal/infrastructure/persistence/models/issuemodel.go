package models

import (
	"time"

	"nagarsetu/internal/shared/constants"
)

type IssueModel struct {
	ID              uint    `gorm:"primaryKey"`
	TicketID        string  `gorm:"column:ticket_id;uniqueIndex;size:50;not null"`
	Title           string  `gorm:"size:255;not null"`
	Description     string  `gorm:"type:text;not null"`
	CategoryID      uint    `gorm:"not null;index"`
	Priority        string  `gorm:"size:20;not null;index"`
	Status          string  `gorm:"size:20;not null;index"`
	LocationAddress string  `gorm:"size:500;not null"`
	Latitude        float64 `gorm:"not null"`
	Longitude       float64 `gorm:"not null"`
	City            string  `gorm:"size:100;not null;index"`
	State           string  `gorm:"size:100;not null;index"`
	Pincode         string  `gorm:"size:10;not null"`
	StreetName      string  `gorm:"size:255;not null"`
	NearbyLandmark  string  `gorm:"size:255;not null"`
	ReporterID      *uint   `gorm:"index"`
	AssignedTo      *uint   `gorm:"index"`
	ResolutionNotes *string `gorm:"type:text"`
	ResolvedAt      *time.Time
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return constants.TableIssues
}

type IssueImageModel struct {
	ID         uint      `gorm:"primaryKey"`
	IssueID    uint      `gorm:"not null;index"`
	ImageURL   string    `gorm:"size:500;not null"`
	Caption    string    `gorm:"size:255"`
	UploadedAt time.Time `gorm:"not null;index"`
}

func (IssueImageModel) TableName() string {
	return constants.TableIssueImages
}

type CommentModel struct {
	ID         uint      `gorm:"primaryKey"`
	IssueID    uint      `gorm:"not null;index"`
	UserID     uint      `gorm:"not null;index"`
	Content    string    `gorm:"type:text;not null"`
	IsInternal bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

type StatusHistoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	IssueID   uint      `gorm:"not null;index"`
	OldStatus *string   `gorm:"size:20"`
	NewStatus string    `gorm:"size:20;not null"`
	ChangedBy uint      `gorm:"not null"`
	Reason    string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (StatusHistoryModel) TableName() string {
	return constants.TableStatusHistory
}
