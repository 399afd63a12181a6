package catalog

import "context"

type TaskTypeRepository interface {
	Create(ctx context.Context, taskType *TaskType) error
	FindByID(ctx context.Context, id uint) (*TaskType, error)
	FindByName(ctx context.Context, name string) (*TaskType, error)
	List(ctx context.Context, activeOnly bool) ([]*TaskType, error)
	Update(ctx context.Context, taskType *TaskType) error
	Delete(ctx context.Context, id uint) error
}

type TaskCategoryRepository interface {
	Create(ctx context.Context, category *TaskCategory) error
	FindByID(ctx context.Context, id uint) (*TaskCategory, error)
	List(ctx context.Context) ([]*TaskCategory, error)
	Update(ctx context.Context, category *TaskCategory) error
	Delete(ctx context.Context, id uint) error
}
