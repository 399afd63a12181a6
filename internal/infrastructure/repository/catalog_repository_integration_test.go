package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/user"
	"workdesk/internal/shared/errors"
)

func TestTaskTypeRepository_DeleteLeavesCategoriesAlone(t *testing.T) {
	gormDB := setupTestDB(t)
	types := NewTaskTypeRepository(gormDB)
	categories := NewTaskCategoryRepository(gormDB)
	ctx := context.Background()

	taskType, err := catalog.NewTaskType("Hardware", 100)
	require.NoError(t, err)
	require.NoError(t, types.Create(ctx, taskType))

	category, err := catalog.NewTaskCategory("Printers", "blue", 1.5)
	require.NoError(t, err)
	require.NoError(t, categories.Create(ctx, category))

	require.NoError(t, types.Delete(ctx, taskType.ID()))

	_, err = types.FindByID(ctx, taskType.ID())
	assert.True(t, errors.IsNotFoundError(err))

	// Categories are an independent axis and survive the type.
	kept, err := categories.FindByID(ctx, category.ID())
	require.NoError(t, err)
	assert.Equal(t, "Printers", kept.Name())
	assert.Equal(t, "blue", kept.Color())
}

func TestTaskTypeRepository_ListActiveOnly(t *testing.T) {
	gormDB := setupTestDB(t)
	types := NewTaskTypeRepository(gormDB)
	ctx := context.Background()

	active, err := catalog.NewTaskType("Hardware", 100)
	require.NoError(t, err)
	require.NoError(t, types.Create(ctx, active))

	retired, err := catalog.NewTaskType("Legacy", 50)
	require.NoError(t, err)
	require.NoError(t, types.Create(ctx, retired))
	retired.Deactivate()
	require.NoError(t, types.Update(ctx, retired))

	activeOnly, err := types.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Hardware", activeOnly[0].Name())

	all, err := types.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserRepository_LookupAndUniqueness(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewUserRepository(gormDB)
	ctx := context.Background()

	dana, err := user.NewUser("dana", "dana@example.com", "Dana")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, dana))

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "dana@example.com")
		require.NoError(t, err)
		assert.Equal(t, "dana", found.Username())
	})

	t.Run("unknown email returns not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("exists by username", func(t *testing.T) {
		exists, err := repo.ExistsByUsername(ctx, "dana")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUsername(ctx, "dana_1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		clone, err := user.NewUser("dana", "other@example.com", "Other Dana")
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, clone))
	})

	t.Run("list and count", func(t *testing.T) {
		users, err := repo.List(ctx, 0, 10)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
