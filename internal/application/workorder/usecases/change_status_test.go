package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

func newTestTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

func reconstructOpenOrder(t *testing.T, assignees []uint, dueDate *time.Time) *workorder.WorkOrder {
	t.Helper()
	order, err := workorder.ReconstructWorkOrder(
		1, "WO-000001", "Replace light fixture", "Hallway fixture is flickering",
		1, 2, vo.PriorityLow, vo.StatusOpen, 10, assignees,
		"", nil, nil, 3, dueDate, nil, 0,
		time.Now().Add(-3*time.Hour), time.Now().Add(-3*time.Hour),
	)
	require.NoError(t, err)
	return order
}

func newCatalogMocks(basePoints int, multiplier float64) (*mockTaskTypeRepository, *mockTaskCategoryRepository) {
	taskTypeRepo := &mockTaskTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskType, error) {
			return catalog.ReconstructTaskType(id, "electrical", basePoints, true, time.Now(), time.Now())
		},
	}
	categoryRepo := &mockTaskCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskCategory, error) {
			return catalog.ReconstructTaskCategory(id, "lighting", "yellow", multiplier, time.Now(), time.Now())
		},
	}
	return taskTypeRepo, categoryRepo
}

func TestChangeStatusUseCase_Execute_SimpleTransition(t *testing.T) {
	order := reconstructOpenOrder(t, nil, nil)

	var updated *workorder.WorkOrder
	workOrderRepo := &mockWorkOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return order, nil
		},
		UpdateFunc: func(ctx context.Context, o *workorder.WorkOrder) error {
			updated = o
			return nil
		},
	}

	taskTypeRepo, categoryRepo := newCatalogMocks(100, 1.2)
	uc := NewChangeStatusUseCase(workOrderRepo, taskTypeRepo, categoryRepo, &mockProfileRepository{}, newTestTxManager(t), &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{WorkOrderID: 1, NewStatus: "in_progress"})
	require.NoError(t, err)

	assert.Equal(t, "open", result.OldStatus)
	assert.Equal(t, "in_progress", result.NewStatus)
	assert.Zero(t, result.PointsEarned)
	assert.Nil(t, result.ResolvedAt)
	require.NotNil(t, updated)
}

func TestChangeStatusUseCase_Execute_ResolveScoresAndDistributes(t *testing.T) {
	order := reconstructOpenOrder(t, []uint{3, 5, 7}, nil)

	workOrderRepo := &mockWorkOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return order, nil
		},
	}

	profiles := map[uint]*gamification.Profile{}
	profileRepo := &mockProfileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*gamification.Profile, error) {
			if p, ok := profiles[userID]; ok {
				return p, nil
			}
			return nil, errors.NewNotFoundError("profile not found")
		},
		CreateFunc: func(ctx context.Context, p *gamification.Profile) error {
			profiles[p.UserID()] = p
			return nil
		},
		UpdateFunc: func(ctx context.Context, p *gamification.Profile) error {
			profiles[p.UserID()] = p
			return nil
		},
	}

	taskTypeRepo, categoryRepo := newCatalogMocks(100, 1.2)
	uc := NewChangeStatusUseCase(workOrderRepo, taskTypeRepo, categoryRepo, profileRepo, newTestTxManager(t), &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{WorkOrderID: 1, NewStatus: "resolved"})
	require.NoError(t, err)

	// 100 * 1.2 * 3 * 1.0 * 1.0 = 360, split three ways
	assert.Equal(t, 360, result.PointsEarned)
	require.NotNil(t, result.ResolvedAt)

	require.Len(t, profiles, 3)
	for _, userID := range []uint{3, 5, 7} {
		p := profiles[userID]
		require.NotNil(t, p)
		assert.Equal(t, 120, p.TotalPoints())
		assert.Equal(t, 1, p.ResolvedCount())
	}
}

func TestChangeStatusUseCase_Execute_CloseAfterResolveKeepsPoints(t *testing.T) {
	resolvedAt := time.Now().Add(-time.Hour)
	order, err := workorder.ReconstructWorkOrder(
		1, "WO-000001", "t", "d", 1, 2,
		vo.PriorityLow, vo.StatusResolved, 10, []uint{3},
		"", nil, nil, 3, nil, &resolvedAt, 360,
		time.Now().Add(-3*time.Hour), time.Now(),
	)
	require.NoError(t, err)

	profileTouched := false
	workOrderRepo := &mockWorkOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return order, nil
		},
	}
	profileRepo := &mockProfileRepository{
		UpdateFunc: func(ctx context.Context, p *gamification.Profile) error {
			profileTouched = true
			return nil
		},
	}

	taskTypeRepo, categoryRepo := newCatalogMocks(100, 1.2)
	uc := NewChangeStatusUseCase(workOrderRepo, taskTypeRepo, categoryRepo, profileRepo, newTestTxManager(t), &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{WorkOrderID: 1, NewStatus: "closed"})
	require.NoError(t, err)

	assert.Equal(t, 360, result.PointsEarned)
	assert.Equal(t, resolvedAt.Unix(), result.ResolvedAt.Unix())
	assert.False(t, profileTouched)
}

func TestChangeStatusUseCase_Execute_InvalidTransition(t *testing.T) {
	resolvedAt := time.Now()
	order, err := workorder.ReconstructWorkOrder(
		1, "WO-000001", "t", "d", 1, 2,
		vo.PriorityLow, vo.StatusClosed, 10, nil,
		"", nil, nil, 1, nil, &resolvedAt, 100,
		time.Now().Add(-time.Hour), time.Now(),
	)
	require.NoError(t, err)

	workOrderRepo := &mockWorkOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return order, nil
		},
	}

	taskTypeRepo, categoryRepo := newCatalogMocks(100, 1.0)
	uc := NewChangeStatusUseCase(workOrderRepo, taskTypeRepo, categoryRepo, &mockProfileRepository{}, newTestTxManager(t), &mockLogger{})

	_, execErr := uc.Execute(context.Background(), ChangeStatusCommand{WorkOrderID: 1, NewStatus: "open"})
	require.Error(t, execErr)
	assert.True(t, errors.IsValidationError(execErr))
}

func TestChangeStatusUseCase_Execute_UnknownStatus(t *testing.T) {
	taskTypeRepo, categoryRepo := newCatalogMocks(100, 1.0)
	uc := NewChangeStatusUseCase(&mockWorkOrderRepository{}, taskTypeRepo, categoryRepo, &mockProfileRepository{}, newTestTxManager(t), &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{WorkOrderID: 1, NewStatus: "archived"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangeStatusUseCase_Execute_OnTimeResolutionBonus(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	order := reconstructOpenOrder(t, []uint{3}, &due)

	workOrderRepo := &mockWorkOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
			return order, nil
		},
	}
	profileRepo := &mockProfileRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*gamification.Profile, error) {
			return nil, errors.NewNotFoundError("profile not found")
		},
	}

	taskTypeRepo, categoryRepo := newCatalogMocks(100, 1.5)
	uc := NewChangeStatusUseCase(workOrderRepo, taskTypeRepo, categoryRepo, profileRepo, newTestTxManager(t), &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{WorkOrderID: 1, NewStatus: "resolved"})
	require.NoError(t, err)

	// 100 * 1.5 * 3 * 1.5 * 1.0 = 675
	assert.Equal(t, 675, result.PointsEarned)
}
