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
	"nagarsetu/internal/shared/services/markdown"
)

func newListCommentsUseCase(
	issueRepo *mockIssueRepository,
	commentRepo *mockCommentRepository,
	userRepo *mockUserRepository,
) *ListCommentsUseCase {
	return NewListCommentsUseCase(issueRepo, commentRepo, userRepo, markdown.NewMarkdownService(), &mockLogger{})
}

func TestListCommentsUseCase_Execute_Success(t *testing.T) {
	is := newTestIssue(t, 1, vo.StatusPending, uintPtr(7))

	first, err := issue.ReconstructComment(1, 1, 7, "Any progress on this?", false, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	second, err := issue.ReconstructComment(2, 1, 9, "Crew scheduled for Friday", false, time.Now())
	require.NoError(t, err)

	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return is, nil
		},
	}
	commentRepo := &mockCommentRepository{
		GetByIssueIDFunc: func(ctx context.Context, issueID uint, includeInternal bool) ([]*issue.Comment, error) {
			assert.False(t, includeInternal)
			return []*issue.Comment{first, second}, nil
		},
	}
	userRepo := &mockUserRepository{
		GetNamesByIDsFunc: func(ctx context.Context, userIDs []uint) (map[uint]string, error) {
			assert.ElementsMatch(t, []uint{7, 9}, userIDs)
			return map[uint]string{7: "Asha Verma", 9: "Ward Officer"}, nil
		},
	}

	useCase := newListCommentsUseCase(issueRepo, commentRepo, userRepo)

	comments, err := useCase.Execute(context.Background(), ListCommentsQuery{IssueID: 1})

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Asha Verma", comments[0].UserName)
	assert.Equal(t, "Ward Officer", comments[1].UserName)
	assert.NotEmpty(t, comments[0].ContentHTML)
}

func TestListCommentsUseCase_Execute_IssueNotFound(t *testing.T) {
	issueRepo := &mockIssueRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*issue.Issue, error) {
			return nil, errors.NewNotFoundError("issue not found")
		},
	}

	useCase := newListCommentsUseCase(issueRepo, &mockCommentRepository{}, &mockUserRepository{})

	comments, err := useCase.Execute(context.Background(), ListCommentsQuery{IssueID: 99})

	require.Error(t, err)
	assert.Nil(t, comments)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListCommentsUseCase_Execute_MissingIssueID(t *testing.T) {
	useCase := newListCommentsUseCase(&mockIssueRepository{}, &mockCommentRepository{}, &mockUserRepository{})

	comments, err := useCase.Execute(context.Background(), ListCommentsQuery{})

	require.Error(t, err)
	assert.Nil(t, comments)
	assert.True(t, errors.IsValidationError(err))
}
