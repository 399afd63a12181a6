package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/errors"
)

func activeCatalogMocks(t *testing.T) (*mockTaskTypeRepository, *mockTaskCategoryRepository) {
	t.Helper()
	taskTypeRepo := &mockTaskTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskType, error) {
			return catalog.ReconstructTaskType(id, "plumbing", 100, true, time.Now(), time.Now())
		},
	}
	categoryRepo := &mockTaskCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskCategory, error) {
			return catalog.ReconstructTaskCategory(id, "repairs", "blue", 1.2, time.Now(), time.Now())
		},
	}
	return taskTypeRepo, categoryRepo
}

func TestCreateWorkOrderUseCase_Execute_Success(t *testing.T) {
	var saved *workorder.WorkOrder
	workOrderRepo := &mockWorkOrderRepository{
		CreateFunc: func(ctx context.Context, order *workorder.WorkOrder) error {
			saved = order
			return order.SetID(42)
		},
	}
	numberGen := &mockNumberGenerator{
		NextFunc: func(ctx context.Context) (string, error) {
			return "WO-000123", nil
		},
	}

	taskTypeRepo, categoryRepo := activeCatalogMocks(t)
	uc := NewCreateWorkOrderUseCase(workOrderRepo, taskTypeRepo, categoryRepo, numberGen, &mockLogger{})

	due := time.Now().Add(48 * time.Hour)
	result, err := uc.Execute(context.Background(), CreateWorkOrderCommand{
		Title:       "Clogged drain in kitchen",
		Description: "Water backs up within seconds",
		TaskTypeID:  1,
		CategoryID:  2,
		Priority:    "high",
		RequesterID: 10,
		AssigneeIDs: []uint{3, 5},
		Difficulty:  2,
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.WorkOrderID)
	assert.Equal(t, "WO-000123", result.Number)
	assert.Equal(t, "open", result.Status)

	require.NotNil(t, saved)
	assert.Equal(t, []uint{3, 5}, saved.AssigneeIDs())
	require.NotNil(t, saved.DueDate())
}

func TestCreateWorkOrderUseCase_Execute_ValidationFailures(t *testing.T) {
	taskTypeRepo, categoryRepo := activeCatalogMocks(t)
	uc := NewCreateWorkOrderUseCase(&mockWorkOrderRepository{}, taskTypeRepo, categoryRepo, &mockNumberGenerator{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreateWorkOrderCommand
	}{
		{
			name: "missing title",
			cmd:  CreateWorkOrderCommand{Description: "d", TaskTypeID: 1, CategoryID: 2, Priority: "low", RequesterID: 1, Difficulty: 1},
		},
		{
			name: "missing requester",
			cmd:  CreateWorkOrderCommand{Title: "t", Description: "d", TaskTypeID: 1, CategoryID: 2, Priority: "low", Difficulty: 1},
		},
		{
			name: "bad priority",
			cmd:  CreateWorkOrderCommand{Title: "t", Description: "d", TaskTypeID: 1, CategoryID: 2, Priority: "severe", RequesterID: 1, Difficulty: 1},
		},
		{
			name: "difficulty out of range",
			cmd:  CreateWorkOrderCommand{Title: "t", Description: "d", TaskTypeID: 1, CategoryID: 2, Priority: "low", RequesterID: 1, Difficulty: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateWorkOrderUseCase_Execute_InactiveTaskType(t *testing.T) {
	taskTypeRepo := &mockTaskTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskType, error) {
			return catalog.ReconstructTaskType(id, "plumbing", 100, false, time.Now(), time.Now())
		},
	}
	_, categoryRepo := activeCatalogMocks(t)

	uc := NewCreateWorkOrderUseCase(&mockWorkOrderRepository{}, taskTypeRepo, categoryRepo, &mockNumberGenerator{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateWorkOrderCommand{
		Title: "t", Description: "d", TaskTypeID: 1, CategoryID: 2,
		Priority: "low", RequesterID: 1, Difficulty: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateWorkOrderUseCase_Execute_CategoryFromOtherCatalogBranch(t *testing.T) {
	var saved *workorder.WorkOrder
	workOrderRepo := &mockWorkOrderRepository{
		CreateFunc: func(ctx context.Context, order *workorder.WorkOrder) error {
			saved = order
			return order.SetID(7)
		},
	}
	numberGen := &mockNumberGenerator{
		NextFunc: func(ctx context.Context) (string, error) {
			return "WO-000200", nil
		},
	}
	taskTypeRepo := &mockTaskTypeRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskType, error) {
			return catalog.ReconstructTaskType(id, "plumbing", 100, true, time.Now(), time.Now())
		},
	}
	categoryRepo := &mockTaskCategoryRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*catalog.TaskCategory, error) {
			return catalog.ReconstructTaskCategory(id, "informational", "", 0, time.Now(), time.Now())
		},
	}

	uc := NewCreateWorkOrderUseCase(workOrderRepo, taskTypeRepo, categoryRepo, numberGen, &mockLogger{})

	// Categories are an independent axis; any existing category combines
	// with any task type.
	result, err := uc.Execute(context.Background(), CreateWorkOrderCommand{
		Title: "t", Description: "d", TaskTypeID: 1, CategoryID: 2,
		Priority: "low", RequesterID: 1, Difficulty: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.WorkOrderID)
	assert.Equal(t, uint(2), saved.CategoryID())
}
