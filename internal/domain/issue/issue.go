package issue

import (
	"fmt"
	"time"

	vo "nagarsetu/internal/domain/issue/valueobjects"
)

type Issue struct {
	id              uint
	ticketID        string
	title           string
	description     string
	categoryID      uint
	priority        vo.Priority
	status          vo.IssueStatus
	location        vo.Location
	reporterID      *uint
	assignedTo      *uint
	resolutionNotes *string
	resolvedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewIssue(
	title string,
	description string,
	categoryID uint,
	priority vo.Priority,
	location vo.Location,
	reporterID *uint,
) (*Issue, error) {
	if len(title) < 5 || len(title) > 255 {
		return nil, fmt.Errorf("title must be between 5 and 255 characters")
	}
	if len(description) < 10 {
		return nil, fmt.Errorf("description must be at least 10 characters")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()

	return &Issue{
		title:       title,
		description: description,
		categoryID:  categoryID,
		priority:    priority,
		status:      vo.StatusPending,
		location:    location,
		reporterID:  reporterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructIssue(
	id uint,
	ticketID string,
	title string,
	description string,
	categoryID uint,
	priority vo.Priority,
	status vo.IssueStatus,
	location vo.Location,
	reporterID *uint,
	assignedTo *uint,
	resolutionNotes *string,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Issue{
		id:              id,
		ticketID:        ticketID,
		title:           title,
		description:     description,
		categoryID:      categoryID,
		priority:        priority,
		status:          status,
		location:        location,
		reporterID:      reporterID,
		assignedTo:      assignedTo,
		resolutionNotes: resolutionNotes,
		resolvedAt:      resolvedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) TicketID() string {
	return i.ticketID
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) Description() string {
	return i.description
}

func (i *Issue) CategoryID() uint {
	return i.categoryID
}

func (i *Issue) Priority() vo.Priority {
	return i.priority
}

func (i *Issue) Status() vo.IssueStatus {
	return i.status
}

func (i *Issue) Location() vo.Location {
	return i.location
}

func (i *Issue) ReporterID() *uint {
	return i.reporterID
}

func (i *Issue) AssignedTo() *uint {
	return i.assignedTo
}

func (i *Issue) ResolutionNotes() *string {
	return i.resolutionNotes
}

func (i *Issue) ResolvedAt() *time.Time {
	return i.resolvedAt
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Issue) SetTicketID(ticketID string) error {
	if len(i.ticketID) > 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if len(ticketID) == 0 {
		return fmt.Errorf("ticket ID cannot be empty")
	}
	i.ticketID = ticketID
	return nil
}

// ChangeStatus moves the issue to a new status. When strict is true, the
// restricted lifecycle graph applies and terminal statuses cannot change.
// Transitioning to resolved always stamps resolvedAt; leaving resolved
// keeps the previous timestamp as a record of the last resolution.
func (i *Issue) ChangeStatus(newStatus vo.IssueStatus, strict bool) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if strict && i.status != newStatus && !i.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", i.status, newStatus)
	}

	i.status = newStatus
	i.updatedAt = time.Now()

	if newStatus.IsResolved() {
		now := time.Now()
		i.resolvedAt = &now
	}

	return nil
}

func (i *Issue) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	i.assignedTo = &assigneeID
	i.updatedAt = time.Now()

	return nil
}

func (i *Issue) SetResolutionNotes(notes string) {
	i.resolutionNotes = &notes
	i.updatedAt = time.Now()
}

func (i *Issue) Validate() error {
	if len(i.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(i.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if i.categoryID == 0 {
		return fmt.Errorf("category ID is required")
	}
	if !i.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !i.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	return nil
}
