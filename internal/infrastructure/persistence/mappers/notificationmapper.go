package mappers

import (
	"nagarsetu/internal/domain/notification"
	vo "nagarsetu/internal/domain/notification/valueobjects"
	"nagarsetu/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		IssueID:   n.IssueID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	notifType, err := vo.NewNotificationType(model.Type)
	if err != nil {
		return nil, err
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		model.IssueID,
		model.Title,
		model.Message,
		notifType,
		model.IsRead,
		model.CreatedAt,
	)
}
