package usecases

import (
	"context"
	"fmt"
	"time"

	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/domain/notification"
	notifvo "nagarsetu/internal/domain/notification/valueobjects"
	"nagarsetu/internal/domain/user"
	"nagarsetu/internal/shared/goroutine"
	"nagarsetu/internal/shared/logger"
)

const notifyTimeout = 10 * time.Second

// IssueExistenceChecker reports whether an issue row is still present.
type IssueExistenceChecker interface {
	ExistsByID(ctx context.Context, issueID uint) (bool, error)
}

// ReporterNotifierService writes in-app notifications for the issue
// reporter. Delivery runs on a detached goroutine so a slow or failing
// write never blocks or fails the triggering request. Because delivery is
// deferred, the issue may be deleted in the meantime; existence is
// re-checked right before the insert.
type ReporterNotifierService struct {
	notificationRepo notification.NotificationRepository
	issueChecker     IssueExistenceChecker
	userRepo         user.UserRepository
	logger           logger.Interface
}

func NewReporterNotifierService(
	notificationRepo notification.NotificationRepository,
	issueChecker IssueExistenceChecker,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ReporterNotifierService {
	return &ReporterNotifierService{
		notificationRepo: notificationRepo,
		issueChecker:     issueChecker,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (s *ReporterNotifierService) IssueStatusChanged(ctx context.Context, is *issue.Issue, oldStatus, newStatus vo.IssueStatus) {
	if is.ReporterID() == nil {
		return
	}
	reporterID := *is.ReporterID()
	issueID := is.ID()
	ticketID := is.TicketID()

	goroutine.SafeGo(s.logger, "notify-status-changed", func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		title := fmt.Sprintf("Issue %s status updated", ticketID)
		message := fmt.Sprintf("Your issue %s moved from %s to %s.", ticketID, oldStatus, newStatus)

		s.deliver(bgCtx, reporterID, &issueID, title, message, notifvo.TypeStatusChange)
	})
}

func (s *ReporterNotifierService) CommentAdded(ctx context.Context, is *issue.Issue, commentAuthorID uint) {
	if is.ReporterID() == nil {
		return
	}
	reporterID := *is.ReporterID()
	issueID := is.ID()
	ticketID := is.TicketID()

	goroutine.SafeGo(s.logger, "notify-comment-added", func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		authorName := s.resolveName(bgCtx, commentAuthorID)
		title := fmt.Sprintf("New comment on issue %s", ticketID)
		message := fmt.Sprintf("%s commented on your issue %s.", authorName, ticketID)

		s.deliver(bgCtx, reporterID, &issueID, title, message, notifvo.TypeComment)
	})
}

func (s *ReporterNotifierService) deliver(ctx context.Context, userID uint, issueID *uint, title, message string, notifType notifvo.NotificationType) {
	if issueID != nil {
		exists, err := s.issueChecker.ExistsByID(ctx, *issueID)
		if err != nil {
			s.logger.Errorw("failed to re-check issue existence", "error", err, "issue_id", *issueID)
			return
		}
		if !exists {
			s.logger.Infow("issue deleted before notification delivery, skipping", "issue_id", *issueID, "user_id", userID)
			return
		}
	}

	notif, err := notification.NewNotification(userID, issueID, title, message, notifType)
	if err != nil {
		s.logger.Errorw("failed to build notification", "error", err, "user_id", userID)
		return
	}

	if err := s.notificationRepo.Save(ctx, notif); err != nil {
		s.logger.Errorw("failed to save notification", "error", err, "user_id", userID, "type", notifType.String())
		return
	}

	s.logger.Debugw("notification delivered", "notification_id", notif.ID(), "user_id", userID, "type", notifType.String())
}

func (s *ReporterNotifierService) resolveName(ctx context.Context, userID uint) string {
	names, err := s.userRepo.GetNamesByIDs(ctx, []uint{userID})
	if err != nil {
		s.logger.Warnw("failed to resolve commenter name", "error", err, "user_id", userID)
		return "A staff member"
	}
	name, ok := names[userID]
	if !ok || name == "" {
		return "A staff member"
	}
	return name
}
