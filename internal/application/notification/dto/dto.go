package dto

import (
	"time"

	"nagarsetu/internal/domain/notification"
)

type NotificationDTO struct {
	ID         uint      `json:"id"`
	IssueID    *uint     `json:"issue_id"`
	IssueTitle string    `json:"issue_title,omitempty"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToNotificationDTO(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID(),
		IssueID:   n.IssueID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func ToNotificationDTOs(notifications []*notification.Notification) []NotificationDTO {
	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, ToNotificationDTO(n))
	}
	return dtos
}
