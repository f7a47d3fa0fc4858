package usecases

import (
	"context"
	"time"

	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/shared/constants"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/services/markdown"
)

type TransitionStatusCommand struct {
	IssueID         uint
	NewStatus       string
	Reason          string
	ChangedBy       uint
	AssignTo        *uint
	ResolutionNotes *string
}

type TransitionStatusResult struct {
	IssueID    uint
	TicketID   string
	OldStatus  string
	NewStatus  string
	ResolvedAt *time.Time
	UpdatedAt  time.Time
}

type TransitionStatusUseCase struct {
	issueRepo         issue.IssueRepository
	historyRepo       issue.StatusHistoryRepository
	txManager         TransactionManager
	notifier          ReporterNotifier
	markdownSvc       markdown.MarkdownService
	strictTransitions bool
	logger            logger.Interface
}

func NewTransitionStatusUseCase(
	issueRepo issue.IssueRepository,
	historyRepo issue.StatusHistoryRepository,
	txManager TransactionManager,
	notifier ReporterNotifier,
	markdownSvc markdown.MarkdownService,
	strictTransitions bool,
	logger logger.Interface,
) *TransitionStatusUseCase {
	return &TransitionStatusUseCase{
		issueRepo:         issueRepo,
		historyRepo:       historyRepo,
		txManager:         txManager,
		notifier:          notifier,
		markdownSvc:       markdownSvc,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

func (uc *TransitionStatusUseCase) Execute(ctx context.Context, cmd TransitionStatusCommand) (*TransitionStatusResult, error) {
	uc.logger.Infow("executing transition status use case",
		"issue_id", cmd.IssueID,
		"new_status", cmd.NewStatus,
		"changed_by", cmd.ChangedBy,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid transition status command", "error", err)
		return nil, err
	}

	is, err := uc.issueRepo.GetByID(ctx, cmd.IssueID)
	if err != nil {
		return nil, err
	}

	oldStatus := is.Status()
	newStatus := vo.IssueStatus(cmd.NewStatus)

	if err := is.ChangeStatus(newStatus, uc.strictTransitions); err != nil {
		uc.logger.Warnw("status transition rejected",
			"issue_id", cmd.IssueID,
			"old_status", oldStatus.String(),
			"new_status", cmd.NewStatus,
		)
		return nil, errors.NewConflictError(err.Error())
	}

	if cmd.AssignTo != nil {
		if err := is.AssignTo(*cmd.AssignTo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ResolutionNotes != nil {
		is.SetResolutionNotes(uc.markdownSvc.SanitizePlain(*cmd.ResolutionNotes))
	}

	reason := uc.markdownSvc.SanitizePlain(cmd.Reason)
	if reason == "" {
		reason = constants.HistoryReasonStatusUpdated
	}

	history, err := issue.NewStatusHistory(is.ID(), &oldStatus, newStatus, cmd.ChangedBy, reason)
	if err != nil {
		return nil, errors.NewInternalError("failed to record status change", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Update(txCtx, is); err != nil {
			return err
		}
		return uc.historyRepo.Save(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist status transition", "error", err, "issue_id", cmd.IssueID)
		return nil, err
	}

	uc.logger.Infow("issue status changed",
		"issue_id", is.ID(),
		"ticket_id", is.TicketID(),
		"old_status", oldStatus.String(),
		"new_status", newStatus.String(),
	)

	if uc.notifier != nil && is.ReporterID() != nil {
		uc.notifier.IssueStatusChanged(ctx, is, oldStatus, newStatus)
	}

	return &TransitionStatusResult{
		IssueID:    is.ID(),
		TicketID:   is.TicketID(),
		OldStatus:  oldStatus.String(),
		NewStatus:  newStatus.String(),
		ResolvedAt: is.ResolvedAt(),
		UpdatedAt:  is.UpdatedAt(),
	}, nil
}

func (uc *TransitionStatusUseCase) validateCommand(cmd TransitionStatusCommand) error {
	if cmd.IssueID == 0 {
		return errors.NewValidationError("issue ID is required")
	}

	if cmd.ChangedBy == 0 {
		return errors.NewValidationError("changed by user ID is required")
	}

	if !vo.IssueStatus(cmd.NewStatus).IsValid() {
		return errors.NewValidationError("invalid status")
	}

	if len(cmd.Reason) > 500 {
		return errors.NewValidationError("reason exceeds maximum length of 500 characters")
	}

	return nil
}
