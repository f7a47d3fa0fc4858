package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagarsetu/internal/domain/category"
	"nagarsetu/internal/infrastructure/persistence/models"
	"nagarsetu/internal/shared/errors"
)

func createTestCategory(t *testing.T, name string) *category.Category {
	cat, err := category.NewCategory(name, "Category for testing", "road", "#F59E0B")
	require.NoError(t, err)
	return cat
}

func TestCategoryRepository_SaveAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	t.Run("save and find category", func(t *testing.T) {
		cat := createTestCategory(t, "Roads & Potholes")
		err := repo.Save(ctx, cat)
		assert.NoError(t, err)
		assert.NotZero(t, cat.ID())

		found, err := repo.GetByID(ctx, cat.ID())
		assert.NoError(t, err)
		assert.Equal(t, "Roads & Potholes", found.Name())
		assert.Equal(t, "road", found.Icon())
	})

	t.Run("find non-existent category", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("exists checks", func(t *testing.T) {
		cat := createTestCategory(t, "Street Lighting")
		require.NoError(t, repo.Save(ctx, cat))

		exists, err := repo.ExistsByID(ctx, cat.ID())
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByName(ctx, "Street Lighting")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByName(ctx, "No Such Category")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCategoryRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	cat := createTestCategory(t, "Water Supply")
	require.NoError(t, repo.Save(ctx, cat))

	require.NoError(t, cat.Update("Water & Sanitation", "Water supply and sanitation issues", "droplet", "#3B82F6"))
	require.NoError(t, repo.Update(ctx, cat))

	found, err := repo.GetByID(ctx, cat.ID())
	assert.NoError(t, err)
	assert.Equal(t, "Water & Sanitation", found.Name())
	assert.Equal(t, "droplet", found.Icon())
}

func TestCategoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	t.Run("delete existing category", func(t *testing.T) {
		cat := createTestCategory(t, "Waste Management")
		require.NoError(t, repo.Save(ctx, cat))

		err := repo.Delete(ctx, cat.ID())
		assert.NoError(t, err)

		exists, err := repo.ExistsByID(ctx, cat.ID())
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete non-existent category", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCategoryRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, createTestCategory(t, "Drainage")))
	require.NoError(t, repo.Save(ctx, createTestCategory(t, "Public Safety")))

	categories, err := repo.List(ctx)
	assert.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Drainage", categories[0].Name())
	assert.Equal(t, "Public Safety", categories[1].Name())
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	users := []models.UserModel{
		{Name: "Asha Rao", Email: "asha@example.com", Role: "citizen"},
		{Name: "Vikram Patil", Email: "vikram@example.com", Role: "moderator"},
	}
	require.NoError(t, db.Create(&users).Error)

	t.Run("get by ID", func(t *testing.T) {
		u, err := repo.GetByID(ctx, users[0].ID)
		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", u.Name())
		assert.Equal(t, "citizen", u.Role())
	})

	t.Run("get non-existent user", func(t *testing.T) {
		u, err := repo.GetByID(ctx, 99999)
		assert.Error(t, err)
		assert.Nil(t, u)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("batch name resolution skips unknown IDs", func(t *testing.T) {
		names, err := repo.GetNamesByIDs(ctx, []uint{users[0].ID, users[1].ID, 99999})
		assert.NoError(t, err)
		assert.Len(t, names, 2)
		assert.Equal(t, "Asha Rao", names[users[0].ID])
		assert.Equal(t, "Vikram Patil", names[users[1].ID])
	})

	t.Run("empty ID list short-circuits", func(t *testing.T) {
		names, err := repo.GetNamesByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, names)
	})
}
