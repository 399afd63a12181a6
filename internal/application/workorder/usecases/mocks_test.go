package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/catalog"
	"workdesk/internal/domain/gamification"
	"workdesk/internal/domain/user"
	"workdesk/internal/domain/workorder"
	vo "workdesk/internal/domain/workorder/valueobjects"
	"workdesk/internal/shared/logger"
)

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

type mockCommentRepository struct {
	CreateFunc            func(ctx context.Context, comment *workorder.Comment) error
	FindByWorkOrderIDFunc func(ctx context.Context, workOrderID uint) ([]*workorder.Comment, error)
	DeleteFunc            func(ctx context.Context, id uint) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *workorder.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) FindByWorkOrderID(ctx context.Context, workOrderID uint) ([]*workorder.Comment, error) {
	if m.FindByWorkOrderIDFunc != nil {
		return m.FindByWorkOrderIDFunc(ctx, workOrderID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockTaskTypeRepository struct {
	CreateFunc     func(ctx context.Context, taskType *catalog.TaskType) error
	FindByIDFunc   func(ctx context.Context, id uint) (*catalog.TaskType, error)
	FindByNameFunc func(ctx context.Context, name string) (*catalog.TaskType, error)
	ListFunc       func(ctx context.Context, activeOnly bool) ([]*catalog.TaskType, error)
	UpdateFunc     func(ctx context.Context, taskType *catalog.TaskType) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockTaskTypeRepository) Create(ctx context.Context, taskType *catalog.TaskType) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, taskType)
	}
	return nil
}

func (m *mockTaskTypeRepository) FindByID(ctx context.Context, id uint) (*catalog.TaskType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskTypeRepository) FindByName(ctx context.Context, name string) (*catalog.TaskType, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTaskTypeRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.TaskType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockTaskTypeRepository) Update(ctx context.Context, taskType *catalog.TaskType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, taskType)
	}
	return nil
}

func (m *mockTaskTypeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockTaskCategoryRepository struct {
	CreateFunc           func(ctx context.Context, category *catalog.TaskCategory) error
	FindByIDFunc         func(ctx context.Context, id uint) (*catalog.TaskCategory, error)
	ListFunc             func(ctx context.Context) ([]*catalog.TaskCategory, error)
	UpdateFunc           func(ctx context.Context, category *catalog.TaskCategory) error
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *mockTaskCategoryRepository) Create(ctx context.Context, category *catalog.TaskCategory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *mockTaskCategoryRepository) FindByID(ctx context.Context, id uint) (*catalog.TaskCategory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskCategoryRepository) List(ctx context.Context) ([]*catalog.TaskCategory, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTaskCategoryRepository) Update(ctx context.Context, category *catalog.TaskCategory) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	return nil
}

func (m *mockTaskCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

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

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	ListFunc             func(ctx context.Context, offset, limit int) ([]*user.User, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context, offset, limit int) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockNumberGenerator struct {
	NextFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Next(ctx context.Context) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return "WO-000001", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) Fatal(msg string, args ...any)           {}
func (m *mockLogger) Debugw(msg string, kv ...interface{})    {}
func (m *mockLogger) Infow(msg string, kv ...interface{})     {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})     {}
func (m *mockLogger) Errorw(msg string, kv ...interface{})    {}
func (m *mockLogger) Fatalw(msg string, kv ...interface{})    {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
