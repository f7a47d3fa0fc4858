package valueobjects

import "fmt"

type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusRejected   IssueStatus = "rejected"
)

var validIssueStatuses = map[IssueStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusRejected:   true,
}

// issueStatusTransitions is the restricted lifecycle graph used when strict
// transition checking is enabled. Pending issues must pass through
// in_progress before resolution; resolved and rejected are terminal.
var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	StatusPending: {
		StatusInProgress,
		StatusRejected,
	},
	StatusInProgress: {
		StatusPending,
		StatusResolved,
		StatusRejected,
	},
	StatusResolved: {},
	StatusRejected: {},
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	return validIssueStatuses[s]
}

func (s IssueStatus) CanTransitionTo(newStatus IssueStatus) bool {
	allowed, ok := issueStatusTransitions[s]
	if !ok {
		return false
	}

	for _, a := range allowed {
		if a == newStatus {
			return true
		}
	}
	return false
}

func (s IssueStatus) IsPending() bool {
	return s == StatusPending
}

func (s IssueStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s IssueStatus) IsResolved() bool {
	return s == StatusResolved
}

func (s IssueStatus) IsRejected() bool {
	return s == StatusRejected
}

// IsTerminal reports whether the status ends the issue lifecycle.
func (s IssueStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}

// AllIssueStatuses returns every valid status value in lifecycle order.
func AllIssueStatuses() []IssueStatus {
	return []IssueStatus{StatusPending, StatusInProgress, StatusResolved, StatusRejected}
}
