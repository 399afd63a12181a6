package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type CreateWorkOrderCommand struct {
	Title        string
	Description  string
	TaskTypeID   uint
	CategoryID   uint
	Priority     string
	RequesterID  uint
	AssigneeIDs  []uint
	Difficulty   int
	DueDate      *time.Time
	LocationName string
	Latitude     *float64
	Longitude    *float64
}

type CreateWorkOrderResult struct {
	WorkOrderID uint
	Number      string
	Status      string
	CreatedAt   time.Time
}

type CreateWorkOrderUseCase struct {
	workOrderRepo workorder.Repository
	taskTypeRepo  catalog.TaskTypeRepository
	categoryRepo  catalog.TaskCategoryRepository
	numberGen     workorder.NumberGenerator
	logger        logger.Interface
}

func NewCreateWorkOrderUseCase(
	workOrderRepo workorder.Repository,
	taskTypeRepo catalog.TaskTypeRepository,
	categoryRepo catalog.TaskCategoryRepository,
	numberGen workorder.NumberGenerator,
	logger logger.Interface,
) *CreateWorkOrderUseCase {
	return &CreateWorkOrderUseCase{
		workOrderRepo: workOrderRepo,
		taskTypeRepo:  taskTypeRepo,
		categoryRepo:  categoryRepo,
		numberGen:     numberGen,
		logger:        logger,
	}
}

func (uc *CreateWorkOrderUseCase) Execute(ctx context.Context, cmd CreateWorkOrderCommand) (*CreateWorkOrderResult, error) {
	uc.logger.Infow("executing create work order use case", "title", cmd.Title, "requester_id", cmd.RequesterID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create work order command", "error", err)
		return nil, err
	}

	taskType, err := uc.taskTypeRepo.FindByID(ctx, cmd.TaskTypeID)
	if err != nil {
		uc.logger.Errorw("failed to load task type", "task_type_id", cmd.TaskTypeID, "error", err)
		return nil, err
	}
	if !taskType.IsActive() {
		return nil, errors.NewValidationError("task type is not active")
	}

	if _, err := uc.categoryRepo.FindByID(ctx, cmd.CategoryID); err != nil {
		uc.logger.Errorw("failed to load task category", "category_id", cmd.CategoryID, "error", err)
		return nil, err
	}

	order, err := workorder.NewWorkOrder(
		cmd.Title,
		cmd.Description,
		cmd.TaskTypeID,
		cmd.CategoryID,
		vo.Priority(cmd.Priority),
		cmd.RequesterID,
		cmd.Difficulty,
	)
	if err != nil {
		uc.logger.Errorw("failed to create work order entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if len(cmd.AssigneeIDs) > 0 {
		if err := order.SetAssignees(cmd.AssigneeIDs); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.DueDate != nil {
		order.SetDueDate(cmd.DueDate)
	}
	if cmd.LocationName != "" || cmd.Latitude != nil {
		order.SetLocation(cmd.LocationName, cmd.Latitude, cmd.Longitude)
	}

	number, err := uc.numberGen.Next(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate work order number", "error", err)
		return nil, err
	}
	if err := order.SetNumber(number); err != nil {
		return nil, errors.NewInternalError("failed to assign work order number", err.Error())
	}

	if err := uc.workOrderRepo.Create(ctx, order); err != nil {
		uc.logger.Errorw("failed to save work order", "error", err)
		return nil, err
	}

	uc.logger.Infow("work order created successfully", "work_order_id", order.ID(), "number", order.Number())

	return &CreateWorkOrderResult{
		WorkOrderID: order.ID(),
		Number:      order.Number(),
		Status:      order.Status().String(),
		CreatedAt:   order.CreatedAt(),
	}, nil
}

func (uc *CreateWorkOrderUseCase) validateCommand(cmd CreateWorkOrderCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > workorder.MaxTitleLength {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > workorder.MaxDescriptionLength {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if cmd.TaskTypeID == 0 {
		return errors.NewValidationError("task type ID is required")
	}
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	if cmd.RequesterID == 0 {
		return errors.NewValidationError("requester ID is required")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	if cmd.Difficulty < workorder.MinDifficulty || cmd.Difficulty > workorder.MaxDifficulty {
		return errors.NewValidationError("difficulty must be between 1 and 5")
	}
	return nil
}
