package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type ListWorkOrdersQuery struct {
	Status      string
	Priority    string
	TaskTypeID  *uint
	CategoryID  *uint
	RequesterID *uint
	AssigneeID  *uint
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
	OrderBy     string
}

type ListWorkOrdersResult struct {
	WorkOrders []WorkOrderDTO
	Total      int64
	Page       int
	PageSize   int
}

type ListWorkOrdersUseCase struct {
	workOrderRepo workorder.Repository
	logger        logger.Interface
}

func NewListWorkOrdersUseCase(workOrderRepo workorder.Repository, logger logger.Interface) *ListWorkOrdersUseCase {
	return &ListWorkOrdersUseCase{
		workOrderRepo: workOrderRepo,
		logger:        logger,
	}
}

func (uc *ListWorkOrdersUseCase) Execute(ctx context.Context, query ListWorkOrdersQuery) (*ListWorkOrdersResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}

	offset := (query.Page - 1) * query.PageSize

	orders, err := uc.workOrderRepo.List(ctx, filter, offset, query.PageSize, query.OrderBy)
	if err != nil {
		uc.logger.Errorw("failed to list work orders", "error", err)
		return nil, err
	}

	total, err := uc.workOrderRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count work orders", "error", err)
		return nil, err
	}

	dtos := make([]WorkOrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, toWorkOrderDTO(order))
	}

	return &ListWorkOrdersResult{
		WorkOrders: dtos,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}

func (uc *ListWorkOrdersUseCase) buildFilter(query ListWorkOrdersQuery) (workorder.Filter, error) {
	filter := workorder.Filter{
		TaskTypeID:  query.TaskTypeID,
		CategoryID:  query.CategoryID,
		RequesterID: query.RequesterID,
		AssigneeID:  query.AssigneeID,
		Search:      query.Search,
		CreatedFrom: query.CreatedFrom,
		CreatedTo:   query.CreatedTo,
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return workorder.Filter{}, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority := vo.Priority(query.Priority)
		if !priority.IsValid() {
			return workorder.Filter{}, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &priority
	}

	return filter, nil
}
