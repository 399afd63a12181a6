package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/infrastructure/persistence/mappers"
	"workdesk/internal/infrastructure/persistence/models"
	"workdesk/internal/shared/db"
	"workdesk/internal/shared/errors"
)

// allowedWorkOrderOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedWorkOrderOrderByFields = map[string]bool{
	"id":            true,
	"number":        true,
	"title":         true,
	"status":        true,
	"priority":      true,
	"difficulty":    true,
	"due_date":      true,
	"resolved_at":   true,
	"points_earned": true,
	"created_at":    true,
	"updated_at":    true,
}

type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
}

func NewWorkOrderRepository(gormDB *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     gormDB,
		mapper: mappers.NewWorkOrderMapper(),
	}
}

func (r *WorkOrderRepository) Create(ctx context.Context, order *workorder.WorkOrder) error {
	model := r.mapper.ToModel(order)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("work order number already exists")
		}
		return fmt.Errorf("failed to create work order: %w", err)
	}

	return order.SetID(model.ID)
}

func (r *WorkOrderRepository) FindByID(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	order, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, order, model.ID); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *WorkOrderRepository) FindByNumber(ctx context.Context, number string) (*workorder.WorkOrder, error) {
	var model models.WorkOrderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("work order not found")
		}
		return nil, fmt.Errorf("failed to find work order: %w", err)
	}

	order, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(ctx, order, model.ID); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *WorkOrderRepository) List(
	ctx context.Context,
	filter workorder.Filter,
	offset, limit int,
	orderBy string,
) ([]*workorder.WorkOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.WorkOrderModel{}), filter)

	sortBy := strings.ToLower(orderBy)
	if sortBy != "" && allowedWorkOrderOrderByFields[sortBy] {
		query = query.Order(sortBy + " DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var orderModels []models.WorkOrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	return r.toDomainList(orderModels, filter.AssigneeID)
}

func (r *WorkOrderRepository) Count(ctx context.Context, filter workorder.Filter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.WorkOrderModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count work orders: %w", err)
	}
	return total, nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, order *workorder.WorkOrder) error {
	model := r.mapper.ToModel(order)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.WorkOrderModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update work order: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.WorkOrderModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete work order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("work order not found")
	}

	// Comments go with the order.
	if err := tx.Where("work_order_id = ?", id).Delete(&models.WorkOrderCommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete work order comments: %w", err)
	}

	return nil
}

func (r *WorkOrderRepository) FindResolvedByAssignee(ctx context.Context, assigneeID uint) ([]*workorder.WorkOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var orderModels []models.WorkOrderModel
	if err := tx.
		Where("resolved_at IS NOT NULL").
		Where("assignee_ids LIKE ?", "%"+fmt.Sprint(assigneeID)+"%").
		Order("resolved_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find resolved work orders: %w", err)
	}

	// The LIKE match is coarse (12 matches %1%), so re-check against the
	// unmarshaled assignee list.
	return r.toDomainList(orderModels, &assigneeID)
}

func (r *WorkOrderRepository) FindResolvedBetween(ctx context.Context, from, to time.Time) ([]*workorder.WorkOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var orderModels []models.WorkOrderModel
	if err := tx.
		Where("resolved_at IS NOT NULL").
		Where("resolved_at >= ? AND resolved_at <= ?", from.UnixMilli(), to.UnixMilli()).
		Order("resolved_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find resolved work orders: %w", err)
	}

	return r.toDomainList(orderModels, nil)
}

func (r *WorkOrderRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Total  int64
	}
	if err := tx.
		Model(&models.WorkOrderModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count work orders by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		status, err := vo.NewStatus(row.Status)
		if err != nil {
			continue
		}
		counts[status] = row.Total
	}
	return counts, nil
}

func (r *WorkOrderRepository) applyFilter(query *gorm.DB, filter workorder.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.TaskTypeID != nil {
		query = query.Where("task_type_id = ?", *filter.TaskTypeID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_ids LIKE ?", "%"+fmt.Sprint(*filter.AssigneeID)+"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ? OR number LIKE ?", like, like, like)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom.UnixMilli())
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", filter.CreatedTo.UnixMilli())
	}
	return query
}

// toDomainList converts models and, when assigneeID is set, drops rows whose
// JSON assignee list does not actually contain the ID.
func (r *WorkOrderRepository) toDomainList(orderModels []models.WorkOrderModel, assigneeID *uint) ([]*workorder.WorkOrder, error) {
	orders := make([]*workorder.WorkOrder, 0, len(orderModels))
	for i := range orderModels {
		order, err := r.mapper.ToDomain(&orderModels[i])
		if err != nil {
			return nil, err
		}
		if assigneeID != nil && !containsID(order.AssigneeIDs(), *assigneeID) {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func containsID(ids []uint, id uint) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// loadComments queries comments for a work order and adds them to the domain entity.
func (r *WorkOrderRepository) loadComments(ctx context.Context, order *workorder.WorkOrder, orderID uint) error {
	var commentModels []models.WorkOrderCommentModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("work_order_id = ?", orderID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	for i := range commentModels {
		comment, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return err
		}
		if err := order.AddComment(comment); err != nil {
			return err
		}
	}
	return nil
}
