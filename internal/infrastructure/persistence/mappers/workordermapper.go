package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/infrastructure/persistence/models"
)

// WorkOrderMapper handles the conversion between WorkOrder domain entities and persistence models.
type WorkOrderMapper interface {
	// ToModel converts a work order domain entity to a persistence model.
	ToModel(w *workorder.WorkOrder) *models.WorkOrderModel

	// ToDomain converts a work order persistence model to a domain entity.
	ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *workorder.Comment) *models.WorkOrderCommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.WorkOrderCommentModel) (*workorder.Comment, error)
}

// WorkOrderMapperImpl is the concrete implementation of WorkOrderMapper.
type WorkOrderMapperImpl struct{}

// NewWorkOrderMapper creates a new WorkOrderMapper.
func NewWorkOrderMapper() WorkOrderMapper {
	return &WorkOrderMapperImpl{}
}

// ToModel converts a work order domain entity to a persistence model.
func (m *WorkOrderMapperImpl) ToModel(w *workorder.WorkOrder) *models.WorkOrderModel {
	model := &models.WorkOrderModel{
		ID:           w.ID(),
		Number:       w.Number(),
		Title:        w.Title(),
		Description:  w.Description(),
		TaskTypeID:   w.TaskTypeID(),
		CategoryID:   w.CategoryID(),
		Priority:     w.Priority().String(),
		Status:       w.Status().String(),
		RequesterID:  w.RequesterID(),
		LocationName: w.LocationName(),
		Latitude:     w.Latitude(),
		Longitude:    w.Longitude(),
		Difficulty:   w.Difficulty(),
		PointsEarned: w.PointsEarned(),
		CreatedAt:    w.CreatedAt().UnixMilli(),
		UpdatedAt:    w.UpdatedAt().UnixMilli(),
	}

	if len(w.AssigneeIDs()) > 0 {
		assigneesJSON, _ := json.Marshal(w.AssigneeIDs())
		model.AssigneeIDs = string(assigneesJSON)
	}

	if w.DueDate() != nil {
		due := w.DueDate().UnixMilli()
		model.DueDate = &due
	}

	if w.ResolvedAt() != nil {
		resolved := w.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	return model
}

// ToDomain converts a work order persistence model to a domain entity.
// Comments must be loaded separately by the repository.
func (m *WorkOrderMapperImpl) ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error) {
	priority, _ := vo.NewPriority(model.Priority)
	status, _ := vo.NewStatus(model.Status)

	var assigneeIDs []uint
	if model.AssigneeIDs != "" {
		if err := json.Unmarshal([]byte(model.AssigneeIDs), &assigneeIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal work order assignees (id=%d): %w", model.ID, err)
		}
	}

	var dueDate, resolvedAt *time.Time
	if model.DueDate != nil {
		t := millisToTime(*model.DueDate)
		dueDate = &t
	}
	if model.ResolvedAt != nil {
		t := millisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	return workorder.ReconstructWorkOrder(
		model.ID,
		model.Number,
		model.Title,
		model.Description,
		model.TaskTypeID,
		model.CategoryID,
		priority,
		status,
		model.RequesterID,
		assigneeIDs,
		model.LocationName,
		model.Latitude,
		model.Longitude,
		model.Difficulty,
		dueDate,
		resolvedAt,
		model.PointsEarned,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *WorkOrderMapperImpl) CommentToModel(c *workorder.Comment) *models.WorkOrderCommentModel {
	return &models.WorkOrderCommentModel{
		ID:          c.ID(),
		WorkOrderID: c.WorkOrderID(),
		AuthorID:    c.AuthorID(),
		Content:     c.Content(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *WorkOrderMapperImpl) CommentToDomain(model *models.WorkOrderCommentModel) (*workorder.Comment, error) {
	return workorder.ReconstructComment(
		model.ID,
		model.WorkOrderID,
		model.AuthorID,
		model.Content,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
