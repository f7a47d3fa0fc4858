package issue

import (
	"context"

	vo "nagarsetu/internal/domain/issue/valueobjects"
)

type IssueRepository interface {
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	GetByTicketID(ctx context.Context, ticketID string) (*Issue, error)
	ExistsByTicketID(ctx context.Context, ticketID string) (bool, error)
	List(ctx context.Context, filter IssueFilter) ([]*Issue, int64, error)
	CountByStatus(ctx context.Context) (map[vo.IssueStatus]int64, error)
	CountByPriority(ctx context.Context) (map[vo.Priority]int64, error)
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
}

// IssueFilter narrows issue listings. Status, category, and priority match
// exactly; city and state match case-insensitive substrings; search matches
// a case-insensitive substring of either title or description. All set
// filters combine with AND.
type IssueFilter struct {
	Status     *vo.IssueStatus
	CategoryID *uint
	Priority   *vo.Priority
	City       string
	State      string
	Search     string
	Page       int
	Limit      int
}

type ImageRepository interface {
	SaveBatch(ctx context.Context, images []*Image) error
	GetByIssueID(ctx context.Context, issueID uint) ([]*Image, error)
	GetByIssueIDs(ctx context.Context, issueIDs []uint) (map[uint][]*Image, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByIssueID(ctx context.Context, issueID uint, includeInternal bool) ([]*Comment, error)
}

type StatusHistoryRepository interface {
	Save(ctx context.Context, history *StatusHistory) error
	GetByIssueID(ctx context.Context, issueID uint) ([]*StatusHistory, error)
}
