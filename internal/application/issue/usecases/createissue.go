package usecases

import (
	"context"
	"strings"
	"time"

	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/shared/constants"
	"nagarsetu/internal/shared/errors"
	"nagarsetu/internal/shared/logger"
	"nagarsetu/internal/shared/services/markdown"
)

// ticketIDMaxAttempts bounds the collision retry loop when allocating a
// human-readable ticket ID.
const ticketIDMaxAttempts = 5

type CreateIssueImage struct {
	ImageURL string
	Caption  string
}

type CreateIssueCommand struct {
	Title          string
	Description    string
	CategoryID     uint
	Priority       string
	Address        string
	Latitude       float64
	Longitude      float64
	City           string
	State          string
	Pincode        string
	StreetName     string
	NearbyLandmark string
	ReporterID     uint
	Images         []CreateIssueImage
}

type CreateIssueResult struct {
	IssueID   uint
	TicketID  string
	Status    string
	CreatedAt time.Time
}

type CreateIssueUseCase struct {
	issueRepo    issue.IssueRepository
	imageRepo    issue.ImageRepository
	historyRepo  issue.StatusHistoryRepository
	categoryRepo category.CategoryRepository
	ticketGen    issue.TicketIDGenerator
	txManager    TransactionManager
	markdownSvc  markdown.MarkdownService
	maxImages    int
	logger       logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	imageRepo issue.ImageRepository,
	historyRepo issue.StatusHistoryRepository,
	categoryRepo category.CategoryRepository,
	ticketGen issue.TicketIDGenerator,
	txManager TransactionManager,
	markdownSvc markdown.MarkdownService,
	maxImages int,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:    issueRepo,
		imageRepo:    imageRepo,
		historyRepo:  historyRepo,
		categoryRepo: categoryRepo,
		ticketGen:    ticketGen,
		txManager:    txManager,
		markdownSvc:  markdownSvc,
		maxImages:    maxImages,
		logger:       logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "title", cmd.Title, "reporter_id", cmd.ReporterID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create issue command", "error", err)
		return nil, err
	}

	exists, err := uc.categoryRepo.ExistsByID(ctx, cmd.CategoryID)
	if err != nil {
		uc.logger.Errorw("failed to check category existence", "error", err, "category_id", cmd.CategoryID)
		return nil, err
	}
	if !exists {
		return nil, errors.NewValidationError("category does not exist")
	}

	location, err := vo.NewLocation(
		cmd.Address,
		cmd.Latitude,
		cmd.Longitude,
		cmd.City,
		cmd.State,
		cmd.Pincode,
		cmd.StreetName,
		cmd.NearbyLandmark,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	title := uc.markdownSvc.SanitizePlain(cmd.Title)
	description := uc.markdownSvc.SanitizePlain(cmd.Description)

	reporterID := cmd.ReporterID
	newIssue, err := issue.NewIssue(
		title,
		description,
		cmd.CategoryID,
		vo.Priority(cmd.Priority),
		location,
		&reporterID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create issue entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	ticketID, err := uc.allocateTicketID(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket ID", "error", err)
		return nil, err
	}
	if err := newIssue.SetTicketID(ticketID); err != nil {
		return nil, errors.NewInternalError("failed to assign ticket ID", err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.issueRepo.Save(txCtx, newIssue); err != nil {
			return err
		}

		images := make([]*issue.Image, 0, len(cmd.Images))
		for _, img := range cmd.Images {
			image, err := issue.NewImage(newIssue.ID(), img.ImageURL, img.Caption)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			images = append(images, image)
		}
		if err := uc.imageRepo.SaveBatch(txCtx, images); err != nil {
			return err
		}

		history, err := issue.NewStatusHistory(
			newIssue.ID(),
			nil,
			newIssue.Status(),
			cmd.ReporterID,
			constants.HistoryReasonCreated,
		)
		if err != nil {
			return errors.NewInternalError("failed to record initial status", err.Error())
		}
		return uc.historyRepo.Save(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist issue", "error", err, "ticket_id", ticketID)
		return nil, err
	}

	uc.logger.Infow("issue created successfully",
		"issue_id", newIssue.ID(),
		"ticket_id", newIssue.TicketID(),
		"reporter_id", cmd.ReporterID,
	)

	return &CreateIssueResult{
		IssueID:   newIssue.ID(),
		TicketID:  newIssue.TicketID(),
		Status:    newIssue.Status().String(),
		CreatedAt: newIssue.CreatedAt(),
	}, nil
}

// allocateTicketID generates ticket IDs until one is free. The generator is
// time seeded, so a bounded retry is enough to step past collisions.
func (uc *CreateIssueUseCase) allocateTicketID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < ticketIDMaxAttempts; attempt++ {
		ticketID, err := uc.ticketGen.Generate(ctx)
		if err != nil {
			return "", errors.NewInternalError("failed to generate ticket ID", err.Error())
		}
		if strings.TrimSpace(ticketID) == "" {
			uc.logger.Warnw("generator produced a blank ticket ID, retrying", "attempt", attempt+1)
			continue
		}

		exists, err := uc.issueRepo.ExistsByTicketID(ctx, ticketID)
		if err != nil {
			return "", err
		}
		if !exists {
			return ticketID, nil
		}

		uc.logger.Warnw("ticket ID collision, retrying", "ticket_id", ticketID, "attempt", attempt+1)
	}

	return "", errors.NewInternalError("failed to allocate a unique ticket ID")
}

func (uc *CreateIssueUseCase) validateCommand(cmd CreateIssueCommand) error {
	if len(cmd.Title) < 5 || len(cmd.Title) > 255 {
		return errors.NewValidationError("title must be between 5 and 255 characters")
	}

	if len(cmd.Description) < 10 {
		return errors.NewValidationError("description must be at least 10 characters")
	}

	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}

	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if cmd.ReporterID == 0 {
		return errors.NewValidationError("reporter ID is required")
	}

	if uc.maxImages > 0 && len(cmd.Images) > uc.maxImages {
		return errors.NewValidationError("too many images attached")
	}

	return nil
}
