package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&models.WorkOrderModel{},
		&models.WorkOrderCommentModel{},
		&models.TaskTypeModel{},
		&models.TaskCategoryModel{},
		&models.UserModel{},
		&models.ScoreProfileModel{},
		&models.MailboxAccountModel{},
		&models.ProcessedMessageModel{},
		&models.ReplyTemplateModel{},
		&models.NumberSequenceModel{},
	)
	require.NoError(t, err)

	return gormDB
}

func createTestOrder(t *testing.T, number, title string, priority vo.Priority) *workorder.WorkOrder {
	order, err := workorder.NewWorkOrder(title, "Integration test order", 1, 2, priority, 10, 3)
	require.NoError(t, err)
	require.NoError(t, order.SetNumber(number))
	return order
}

func resolveOrder(t *testing.T, order *workorder.WorkOrder, assignees []uint, points int) {
	require.NoError(t, order.SetAssignees(assignees))
	require.NoError(t, order.ChangeStatus(vo.StatusResolved))
	require.NoError(t, order.AwardPoints(points))
}

func TestWorkOrderRepository_CreateAndFind(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	ctx := context.Background()

	t.Run("create and find by id", func(t *testing.T) {
		order := createTestOrder(t, "WO-000001", "Printer jam", vo.PriorityHigh)
		require.NoError(t, repo.Create(ctx, order))
		assert.NotZero(t, order.ID())

		found, err := repo.FindByID(ctx, order.ID())
		require.NoError(t, err)
		assert.Equal(t, "WO-000001", found.Number())
		assert.Equal(t, "Printer jam", found.Title())
		assert.Equal(t, vo.PriorityHigh, found.Priority())
		assert.Equal(t, vo.StatusOpen, found.Status())
	})

	t.Run("find by number", func(t *testing.T) {
		order := createTestOrder(t, "WO-000002", "VPN down", vo.PriorityUrgent)
		require.NoError(t, repo.Create(ctx, order))

		found, err := repo.FindByNumber(ctx, "WO-000002")
		require.NoError(t, err)
		assert.Equal(t, order.ID(), found.ID())
	})

	t.Run("missing order returns not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 9999)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("duplicate number rejected", func(t *testing.T) {
		first := createTestOrder(t, "WO-000DUP", "First", vo.PriorityLow)
		require.NoError(t, repo.Create(ctx, first))

		second := createTestOrder(t, "WO-000DUP", "Second", vo.PriorityLow)
		assert.Error(t, repo.Create(ctx, second))
	})
}

func TestWorkOrderRepository_UpdatePersistsResolution(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	ctx := context.Background()

	order := createTestOrder(t, "WO-000010", "Replace toner", vo.PriorityMedium)
	require.NoError(t, repo.Create(ctx, order))

	resolveOrder(t, order, []uint{4, 7}, 360)
	require.NoError(t, repo.Update(ctx, order))

	found, err := repo.FindByID(ctx, order.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, found.Status())
	assert.NotNil(t, found.ResolvedAt())
	assert.Equal(t, 360, found.PointsEarned())
	assert.ElementsMatch(t, []uint{4, 7}, found.AssigneeIDs())

	// Reloaded resolved orders must refuse a second award.
	assert.Error(t, found.AwardPoints(100))
}

func TestWorkOrderRepository_ListAndCount(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	ctx := context.Background()

	open := createTestOrder(t, "WO-000020", "Open order", vo.PriorityLow)
	require.NoError(t, repo.Create(ctx, open))

	resolved := createTestOrder(t, "WO-000021", "Resolved order", vo.PriorityHigh)
	resolveOrder(t, resolved, []uint{4}, 450)
	require.NoError(t, repo.Create(ctx, resolved))

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusResolved
		orders, err := repo.List(ctx, workorder.Filter{Status: &status}, 0, 20, "")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "WO-000021", orders[0].Number())

		count, err := repo.Count(ctx, workorder.Filter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("search matches title", func(t *testing.T) {
		orders, err := repo.List(ctx, workorder.Filter{Search: "Resolved"}, 0, 20, "")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "WO-000021", orders[0].Number())
	})

	t.Run("count by status", func(t *testing.T) {
		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[vo.StatusOpen])
		assert.Equal(t, int64(1), counts[vo.StatusResolved])
	})
}

func TestWorkOrderRepository_FindResolvedByAssignee(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	ctx := context.Background()

	mine := createTestOrder(t, "WO-000030", "Assigned to 1", vo.PriorityMedium)
	resolveOrder(t, mine, []uint{1, 3}, 360)
	require.NoError(t, repo.Create(ctx, mine))

	// Assignee 12 must not leak into assignee 1 results through the
	// coarse LIKE prefilter.
	other := createTestOrder(t, "WO-000031", "Assigned to 12", vo.PriorityMedium)
	resolveOrder(t, other, []uint{12}, 360)
	require.NoError(t, repo.Create(ctx, other))

	orders, err := repo.FindResolvedByAssignee(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "WO-000030", orders[0].Number())

	orders, err = repo.FindResolvedByAssignee(ctx, 12)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "WO-000031", orders[0].Number())
}

func TestWorkOrderRepository_FindResolvedBetween(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	ctx := context.Background()

	order := createTestOrder(t, "WO-000040", "Recent resolution", vo.PriorityHigh)
	resolveOrder(t, order, []uint{2}, 450)
	require.NoError(t, repo.Create(ctx, order))

	now := time.Now()

	orders, err := repo.FindResolvedBetween(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = repo.FindResolvedBetween(ctx, now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestWorkOrderRepository_CommentsLoadWithOrder(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	comments := NewCommentRepository(gormDB)
	ctx := context.Background()

	order := createTestOrder(t, "WO-000050", "Commented order", vo.PriorityLow)
	require.NoError(t, repo.Create(ctx, order))

	comment, err := workorder.NewComment(order.ID(), 5, "Checked the cabling, all good")
	require.NoError(t, err)
	require.NoError(t, comments.Create(ctx, comment))

	found, err := repo.FindByID(ctx, order.ID())
	require.NoError(t, err)
	require.Len(t, found.Comments(), 1)
	assert.Equal(t, "Checked the cabling, all good", found.Comments()[0].Content())
}

func TestWorkOrderRepository_Delete(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewWorkOrderRepository(gormDB)
	ctx := context.Background()

	order := createTestOrder(t, "WO-000060", "Doomed order", vo.PriorityLow)
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.Delete(ctx, order.ID()))

	_, err := repo.FindByID(ctx, order.ID())
	assert.True(t, errors.IsNotFoundError(err))

	assert.True(t, errors.IsNotFoundError(repo.Delete(ctx, order.ID())))
}
