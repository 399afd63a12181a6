package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/logger"
)

type mockProfileRepository struct {
	CreateFunc       func(ctx context.Context, profile *gamification.Profile) error
	FindByUserIDFunc func(ctx context.Context, userID uint) (*gamification.Profile, error)
	UpdateFunc       func(ctx context.Context, profile *gamification.Profile) error
	ListTopFunc      func(ctx context.Context, limit int) ([]*gamification.Profile, error)
	ListAllFunc      func(ctx context.Context) ([]*gamification.Profile, error)
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *gamification.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*gamification.Profile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile *gamification.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) ListTop(ctx context.Context, limit int) ([]*gamification.Profile, error) {
	if m.ListTopFunc != nil {
		return m.ListTopFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockProfileRepository) ListAll(ctx context.Context) ([]*gamification.Profile, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockWorkOrderRepository struct {
	CreateFunc                 func(ctx context.Context, order *workorder.WorkOrder) error
	FindByIDFunc               func(ctx context.Context, id uint) (*workorder.WorkOrder, error)
	FindByNumberFunc           func(ctx context.Context, number string) (*workorder.WorkOrder, error)
	ListFunc                   func(ctx context.Context, filter workorder.Filter, offset, limit int, orderBy string) ([]*workorder.WorkOrder, error)
	CountFunc                  func(ctx context.Context, filter workorder.Filter) (int64, error)
	UpdateFunc                 func(ctx context.Context, order *workorder.WorkOrder) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	FindResolvedByAssigneeFunc func(ctx context.Context, assigneeID uint) ([]*workorder.WorkOrder, error)
	FindResolvedBetweenFunc    func(ctx context.Context, from, to time.Time) ([]*workorder.WorkOrder, error)
	CountByStatusFunc          func(ctx context.Context) (map[vo.Status]int64, error)
}

func (m *mockWorkOrderRepository) Create(ctx context.Context, order *workorder.WorkOrder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

func (m *mockWorkOrderRepository) FindByID(ctx context.Context, id uint) (*workorder.WorkOrder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) FindByNumber(ctx context.Context, number string) (*workorder.WorkOrder, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) List(ctx context.Context, filter workorder.Filter, offset, limit int, orderBy string) ([]*workorder.WorkOrder, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, offset, limit, orderBy)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) Count(ctx context.Context, filter workorder.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockWorkOrderRepository) Update(ctx context.Context, order *workorder.WorkOrder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, order)
	}
	return nil
}

func (m *mockWorkOrderRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWorkOrderRepository) FindResolvedByAssignee(ctx context.Context, assigneeID uint) ([]*workorder.WorkOrder, error) {
	if m.FindResolvedByAssigneeFunc != nil {
		return m.FindResolvedByAssigneeFunc(ctx, assigneeID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) FindResolvedBetween(ctx context.Context, from, to time.Time) ([]*workorder.WorkOrder, error) {
	if m.FindResolvedBetweenFunc != nil {
		return m.FindResolvedBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

type mockTaskTypeRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*catalog.TaskType, error)
}

func (m *mockTaskTypeRepository) Create(ctx context.Context, taskType *catalog.TaskType) error {
	return nil
}

func (m *mockTaskTypeRepository) FindByID(ctx context.Context, id uint) (*catalog.TaskType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskTypeRepository) FindByName(ctx context.Context, name string) (*catalog.TaskType, error) {
	return nil, nil
}

func (m *mockTaskTypeRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.TaskType, error) {
	return nil, nil
}

func (m *mockTaskTypeRepository) Update(ctx context.Context, taskType *catalog.TaskType) error {
	return nil
}

func (m *mockTaskTypeRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type mockTaskCategoryRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*catalog.TaskCategory, error)
}

func (m *mockTaskCategoryRepository) Create(ctx context.Context, category *catalog.TaskCategory) error {
	return nil
}

func (m *mockTaskCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.TaskCategory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskCategoryRepository) List(ctx context.Context) ([]*catalog.TaskCategory, error) {
	return nil, nil
}

func (m *mockTaskCategoryRepository) Update(ctx context.Context, category *catalog.TaskCategory) error {
	return nil
}

func (m *mockTaskCategoryRepository) Delete(ctx context.Context, id uint) error {
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)        {}
func (m *mockLogger) Info(msg string, args ...any)         {}
func (m *mockLogger) Warn(msg string, args ...any)         {}
func (m *mockLogger) Error(msg string, args ...any)        {}
func (m *mockLogger) Fatal(msg string, args ...any)        {}
func (m *mockLogger) Debugw(msg string, kv ...interface{}) {}
func (m *mockLogger) Infow(msg string, kv ...interface{})  {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})  {}
func (m *mockLogger) Errorw(msg string, kv ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, kv ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }
