package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/shared/errors"
)

func TestListStatusHistoryUseCase_Execute_Success(t *testing.T) {
	is := newTestIssue(t, 1, vo.StatusInProgress, uintPtr(7))

	initial, err := issue.ReconstructStatusHistory(1, 1, nil, vo.StatusPending, 7, "Issue created", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	pending := vo.StatusPending
	transition, err := issue.ReconstructStatusHistory(2, 1, &pending, vo.StatusInProgress, 9, "Crew dispatched", time.Now())
	require.NoError(t, err)

	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return is, nil
		},
	}
	historyRepo := &mockStatusHistoryRepository{
		GetByIssueIDFunc: func(ctx context.Context, issueID uint) ([]*issue.StatusHistory, error) {
			return []*issue.StatusHistory{initial, transition}, nil
		},
	}

	useCase := NewListStatusHistoryUseCase(issueRepo, historyRepo, &mockLogger{})

	history, err := useCase.Execute(context.Background(), ListStatusHistoryQuery{IssueID: 1})

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Nil(t, history[0].OldStatus)
	assert.Equal(t, "pending", history[0].NewStatus)
	require.NotNil(t, history[1].OldStatus)
	assert.Equal(t, "pending", *history[1].OldStatus)
	assert.Equal(t, "in_progress", history[1].NewStatus)
}

func TestListStatusHistoryUseCase_Execute_IssueNotFound(t *testing.T) {
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return nil, errors.NewNotFoundError("issue not found")
		},
	}

	useCase := NewListStatusHistoryUseCase(issueRepo, &mockStatusHistoryRepository{}, &mockLogger{})

	history, err := useCase.Execute(context.Background(), ListStatusHistoryQuery{IssueID: 99})

	require.Error(t, err)
	assert.Nil(t, history)
	assert.True(t, errors.IsNotFoundError(err))
}
