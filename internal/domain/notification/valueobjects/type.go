package valueobjects

import "fmt"

type NotificationType string

const (
	TypeStatusChange NotificationType = "status_change"
	TypeComment      NotificationType = "comment"
	TypeIssueUpdate  NotificationType = "issue_update"
	TypeAssignment   NotificationType = "assignment"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeStatusChange: true,
	TypeComment:      true,
	TypeIssueUpdate:  true,
	TypeAssignment:   true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
