package issue

import (
	"fmt"
	"time"

	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/shared/biztime"
)

// StatusHistory is an append-only audit row recording one status change.
// The initial row written at creation has no old status.
type StatusHistory struct {
	id        uint
	issueID   uint
	oldStatus *vo.IssueStatus
	newStatus vo.IssueStatus
	changedBy uint
	reason    string
	createdAt time.Time
}

func NewStatusHistory(
	issueID uint,
	oldStatus *vo.IssueStatus,
	newStatus vo.IssueStatus,
	changedBy uint,
	reason string,
) (*StatusHistory, error) {
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid new status: %s", newStatus)
	}
	if oldStatus != nil && !oldStatus.IsValid() {
		return nil, fmt.Errorf("invalid old status: %s", *oldStatus)
	}
	if changedBy == 0 {
		return nil, fmt.Errorf("changed by user ID is required")
	}
	if len(reason) == 0 {
		return nil, fmt.Errorf("reason is required")
	}

	return &StatusHistory{
		issueID:   issueID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		reason:    reason,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructStatusHistory(
	id uint,
	issueID uint,
	oldStatus *vo.IssueStatus,
	newStatus vo.IssueStatus,
	changedBy uint,
	reason string,
	createdAt time.Time,
) (*StatusHistory, error) {
	if id == 0 {
		return nil, fmt.Errorf("status history ID cannot be zero")
	}
	if issueID == 0 {
		return nil, fmt.Errorf("issue ID is required")
	}

	return &StatusHistory{
		id:        id,
		issueID:   issueID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		reason:    reason,
		createdAt: createdAt,
	}, nil
}

func (h *StatusHistory) ID() uint {
	return h.id
}

func (h *StatusHistory) IssueID() uint {
	return h.issueID
}

func (h *StatusHistory) OldStatus() *vo.IssueStatus {
	return h.oldStatus
}

func (h *StatusHistory) NewStatus() vo.IssueStatus {
	return h.newStatus
}

func (h *StatusHistory) ChangedBy() uint {
	return h.changedBy
}

func (h *StatusHistory) Reason() string {
	return h.reason
}

func (h *StatusHistory) CreatedAt() time.Time {
	return h.createdAt
}

func (h *StatusHistory) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("status history ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status history ID cannot be zero")
	}
	h.id = id
	return nil
}
