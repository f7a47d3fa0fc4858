package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
	"nagarsetu/internal/infrastructure/persistence/models"
	"nagarsetu/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CategoryModel{},
		&models.UserModel{},
		&models.IssueModel{},
		&models.IssueImageModel{},
		&models.CommentModel{},
		&models.StatusHistoryModel{},
		&models.NotificationModel{},
	)
	require.NoError(t, err)

	return db
}

func testLocation(t *testing.T, city, state string) vo.Location {
	loc, err := vo.NewLocation("12 MG Road", 12.9716, 77.5946, city, state, "560001", "MG Road", "Near Metro Station")
	require.NoError(t, err)
	return loc
}

func createTestIssue(t *testing.T, ticketID, title string, priority vo.Priority, city, state string) *issue.Issue {
	reporterID := uint(1)
	is, err := issue.NewIssue(title, "Something is broken and needs fixing", 1, priority, testLocation(t, city, state), &reporterID)
	require.NoError(t, err)
	require.NoError(t, is.SetTicketID(ticketID))
	return is
}

func TestIssueRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("save new issue successfully", func(t *testing.T) {
		is := createTestIssue(t, "NAGARSETU-250830-00010001", "Pothole on main road", vo.PriorityHigh, "Bengaluru", "Karnataka")

		err := repo.Save(ctx, is)
		assert.NoError(t, err)
		assert.NotZero(t, is.ID())
	})

	t.Run("duplicate ticket ID returns conflict", func(t *testing.T) {
		is1 := createTestIssue(t, "NAGARSETU-250830-0001DUPL", "Pothole near school", vo.PriorityLow, "Bengaluru", "Karnataka")
		require.NoError(t, repo.Save(ctx, is1))

		is2 := createTestIssue(t, "NAGARSETU-250830-0001DUPL", "Another pothole", vo.PriorityLow, "Bengaluru", "Karnataka")
		err := repo.Save(ctx, is2)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestIssueRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("find existing issue", func(t *testing.T) {
		is := createTestIssue(t, "NAGARSETU-250830-00020001", "Broken street light", vo.PriorityMedium, "Mysuru", "Karnataka")
		require.NoError(t, repo.Save(ctx, is))

		found, err := repo.GetByID(ctx, is.ID())
		assert.NoError(t, err)
		assert.Equal(t, is.TicketID(), found.TicketID())
		assert.Equal(t, is.Title(), found.Title())
		assert.Equal(t, vo.StatusPending, found.Status())
		assert.Equal(t, "Mysuru", found.Location().City())
	})

	t.Run("find non-existent issue", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestIssueRepository_GetByTicketID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	is := createTestIssue(t, "NAGARSETU-250830-00030001", "Overflowing garbage bin", vo.PriorityMedium, "Bengaluru", "Karnataka")
	require.NoError(t, repo.Save(ctx, is))

	t.Run("find by existing ticket ID", func(t *testing.T) {
		found, err := repo.GetByTicketID(ctx, "NAGARSETU-250830-00030001")
		assert.NoError(t, err)
		assert.Equal(t, is.ID(), found.ID())
	})

	t.Run("find by non-existent ticket ID", func(t *testing.T) {
		found, err := repo.GetByTicketID(ctx, "NAGARSETU-250830-99999999")
		assert.Error(t, err)
		assert.Nil(t, found)
	})

	t.Run("exists by ticket ID", func(t *testing.T) {
		exists, err := repo.ExistsByTicketID(ctx, "NAGARSETU-250830-00030001")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByTicketID(ctx, "NAGARSETU-250830-99999999")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("exists by ID", func(t *testing.T) {
		exists, err := repo.ExistsByID(ctx, is.ID())
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByID(ctx, 99999)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestIssueRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("status change and assignment persist", func(t *testing.T) {
		is := createTestIssue(t, "NAGARSETU-250830-00040001", "Blocked storm drain", vo.PriorityHigh, "Bengaluru", "Karnataka")
		require.NoError(t, repo.Save(ctx, is))

		require.NoError(t, is.ChangeStatus(vo.StatusInProgress, false))
		require.NoError(t, is.AssignTo(7))
		require.NoError(t, repo.Update(ctx, is))

		found, err := repo.GetByID(ctx, is.ID())
		assert.NoError(t, err)
		assert.Equal(t, vo.StatusInProgress, found.Status())
		require.NotNil(t, found.AssignedTo())
		assert.Equal(t, uint(7), *found.AssignedTo())
	})

	t.Run("resolving stamps resolved_at", func(t *testing.T) {
		is := createTestIssue(t, "NAGARSETU-250830-00040002", "Open manhole cover", vo.PriorityUrgent, "Bengaluru", "Karnataka")
		require.NoError(t, repo.Save(ctx, is))

		require.NoError(t, is.ChangeStatus(vo.StatusResolved, false))
		require.NoError(t, repo.Update(ctx, is))

		found, err := repo.GetByID(ctx, is.ID())
		assert.NoError(t, err)
		assert.Equal(t, vo.StatusResolved, found.Status())
		assert.NotNil(t, found.ResolvedAt())
	})
}

func TestIssueRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	seed := []struct {
		ticket   string
		title    string
		priority vo.Priority
		city     string
		state    string
		status   vo.IssueStatus
	}{
		{"NAGARSETU-250830-00050001", "Pothole on Brigade Road", vo.PriorityHigh, "Bengaluru", "Karnataka", vo.StatusPending},
		{"NAGARSETU-250830-00050002", "Street light flickering", vo.PriorityLow, "Bengaluru", "Karnataka", vo.StatusInProgress},
		{"NAGARSETU-250830-00050003", "Garbage pileup at market", vo.PriorityMedium, "Mysuru", "Karnataka", vo.StatusPending},
	}
	for _, s := range seed {
		is := createTestIssue(t, s.ticket, s.title, s.priority, s.city, s.state)
		require.NoError(t, repo.Save(ctx, is))
		if s.status != vo.StatusPending {
			require.NoError(t, is.ChangeStatus(s.status, false))
			require.NoError(t, repo.Update(ctx, is))
		}
	}

	t.Run("list all issues", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, issues, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusInProgress
		issues, total, err := repo.List(ctx, issue.IssueFilter{Status: &status, Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, issues, 1)
		assert.Equal(t, "NAGARSETU-250830-00050002", issues[0].TicketID())
	})

	t.Run("filter by priority", func(t *testing.T) {
		priority := vo.PriorityHigh
		_, total, err := repo.List(ctx, issue.IssueFilter{Priority: &priority, Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("filter by city is case-insensitive", func(t *testing.T) {
		_, total, err := repo.List(ctx, issue.IssueFilter{City: "mysuru", Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("search matches title substring", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Search: "pothole", Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, issues, 1)
		assert.Equal(t, "Pothole on Brigade Road", issues[0].Title())
	})

	t.Run("search escapes LIKE wildcards", func(t *testing.T) {
		_, total, err := repo.List(ctx, issue.IssueFilter{Search: "%", Page: 1, Limit: 10})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("pagination", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Page: 1, Limit: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, issues, 2)

		issues, total, err = repo.List(ctx, issue.IssueFilter{Page: 2, Limit: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, issues, 1)
	})
}

func TestIssueRepository_Counts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		is := createTestIssue(t,
			fmt.Sprintf("NAGARSETU-250830-0006000%d", i),
			fmt.Sprintf("Water leakage report %d", i),
			vo.PriorityMedium, "Bengaluru", "Karnataka")
		require.NoError(t, repo.Save(ctx, is))
		if i == 0 {
			require.NoError(t, is.ChangeStatus(vo.StatusResolved, false))
			require.NoError(t, repo.Update(ctx, is))
		}
	}

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), counts[vo.StatusPending])
		assert.Equal(t, int64(1), counts[vo.StatusResolved])
	})

	t.Run("count by priority", func(t *testing.T) {
		counts, err := repo.CountByPriority(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), counts[vo.PriorityMedium])
	})

	t.Run("count by category", func(t *testing.T) {
		count, err := repo.CountByCategoryID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)

		count, err = repo.CountByCategoryID(ctx, 999)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestIssueRepository_GetTitlesByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	first := createTestIssue(t, "NAGARSETU-250830-00080001", "Broken footpath near school", vo.PriorityMedium, "Bengaluru", "Karnataka")
	second := createTestIssue(t, "NAGARSETU-250830-00080002", "Overflowing garbage bin", vo.PriorityLow, "Bengaluru", "Karnataka")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	titles, err := repo.GetTitlesByIDs(ctx, []uint{first.ID(), second.ID(), 99999})
	assert.NoError(t, err)
	assert.Len(t, titles, 2)
	assert.Equal(t, "Broken footpath near school", titles[first.ID()])
	assert.Equal(t, "Overflowing garbage bin", titles[second.ID()])

	titles, err = repo.GetTitlesByIDs(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, titles)
}

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	is := createTestIssue(t, "NAGARSETU-250830-00070001", "Stray cattle on highway", vo.PriorityHigh, "Bengaluru", "Karnataka")
	require.NoError(t, issueRepo.Save(ctx, is))

	public, err := issue.NewComment(is.ID(), 2, "Any update on this?", false)
	require.NoError(t, err)
	internal, err := issue.NewComment(is.ID(), 3, "Crew scheduled for Monday", true)
	require.NoError(t, err)

	require.NoError(t, commentRepo.Save(ctx, public))
	require.NoError(t, commentRepo.Save(ctx, internal))
	assert.NotZero(t, public.ID())

	t.Run("public view excludes internal notes", func(t *testing.T) {
		comments, err := commentRepo.GetByIssueID(ctx, is.ID(), false)
		assert.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Any update on this?", comments[0].Content())
	})

	t.Run("staff view includes internal notes", func(t *testing.T) {
		comments, err := commentRepo.GetByIssueID(ctx, is.ID(), true)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
	})
}

func TestImageRepository(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	imageRepo := NewImageRepository(db)
	ctx := context.Background()

	is1 := createTestIssue(t, "NAGARSETU-250830-00080001", "Collapsed boundary wall", vo.PriorityHigh, "Bengaluru", "Karnataka")
	is2 := createTestIssue(t, "NAGARSETU-250830-00080002", "Fallen tree blocking road", vo.PriorityUrgent, "Bengaluru", "Karnataka")
	require.NoError(t, issueRepo.Save(ctx, is1))
	require.NoError(t, issueRepo.Save(ctx, is2))

	img1, err := issue.NewImage(is1.ID(), "/uploads/a.jpg", "front view")
	require.NoError(t, err)
	img2, err := issue.NewImage(is1.ID(), "/uploads/b.jpg", "")
	require.NoError(t, err)
	img3, err := issue.NewImage(is2.ID(), "/uploads/c.jpg", "")
	require.NoError(t, err)

	require.NoError(t, imageRepo.SaveBatch(ctx, []*issue.Image{img1, img2, img3}))

	t.Run("get by issue ID", func(t *testing.T) {
		images, err := imageRepo.GetByIssueID(ctx, is1.ID())
		assert.NoError(t, err)
		assert.Len(t, images, 2)
	})

	t.Run("batch fetch groups by issue", func(t *testing.T) {
		grouped, err := imageRepo.GetByIssueIDs(ctx, []uint{is1.ID(), is2.ID()})
		assert.NoError(t, err)
		assert.Len(t, grouped[is1.ID()], 2)
		assert.Len(t, grouped[is2.ID()], 1)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, imageRepo.SaveBatch(ctx, nil))
	})
}

func TestStatusHistoryRepository(t *testing.T) {
	db := setupTestDB(t)
	issueRepo := NewIssueRepository(db)
	historyRepo := NewStatusHistoryRepository(db)
	ctx := context.Background()

	is := createTestIssue(t, "NAGARSETU-250830-00090001", "Leaking public tap", vo.PriorityMedium, "Bengaluru", "Karnataka")
	require.NoError(t, issueRepo.Save(ctx, is))

	created, err := issue.NewStatusHistory(is.ID(), nil, vo.StatusPending, 1, "Issue created")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Save(ctx, created))

	old := vo.StatusPending
	moved, err := issue.NewStatusHistory(is.ID(), &old, vo.StatusInProgress, 7, "Crew dispatched")
	require.NoError(t, err)
	require.NoError(t, historyRepo.Save(ctx, moved))

	entries, err := historyRepo.GetByIssueID(ctx, is.ID())
	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].OldStatus())
	assert.Equal(t, vo.StatusPending, entries[0].NewStatus())
	require.NotNil(t, entries[1].OldStatus())
	assert.Equal(t, vo.StatusPending, *entries[1].OldStatus())
	assert.Equal(t, vo.StatusInProgress, entries[1].NewStatus())
}
