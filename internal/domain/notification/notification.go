package notification

import (
	"fmt"
	"time"

	vo "nagarsetu/internal/domain/notification/valueobjects"
	"nagarsetu/internal/shared/biztime"
)

// Notification is a per-user message about activity on an issue.
type Notification struct {
	id        uint
	userID    uint
	issueID   *uint
	title     string
	message   string
	notifType vo.NotificationType
	isRead    bool
	createdAt time.Time
}

func NewNotification(
	userID uint,
	issueID *uint,
	title string,
	message string,
	notifType vo.NotificationType,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if !notifType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notifType)
	}

	return &Notification{
		userID:    userID,
		issueID:   issueID,
		title:     title,
		message:   message,
		notifType: notifType,
		isRead:    false,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	issueID *uint,
	title string,
	message string,
	notifType vo.NotificationType,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		issueID:   issueID,
		title:     title,
		message:   message,
		notifType: notifType,
		isRead:    isRead,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) IssueID() *uint {
	return n.issueID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() vo.NotificationType {
	return n.notifType
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) MarkAsRead() {
	n.isRead = true
}
