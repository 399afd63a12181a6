package usecases

import "context"

// Executor interfaces let the HTTP layer depend on behavior instead of the
// concrete use case structs.

type CreateWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd CreateWorkOrderCommand) (*CreateWorkOrderResult, error)
}

type GetWorkOrderExecutor interface {
	Execute(ctx context.Context, query GetWorkOrderQuery) (*GetWorkOrderResult, error)
}

type ListWorkOrdersExecutor interface {
	Execute(ctx context.Context, query ListWorkOrdersQuery) (*ListWorkOrdersResult, error)
}

type UpdateWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd UpdateWorkOrderCommand) (*UpdateWorkOrderResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type AssignWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd AssignWorkOrderCommand) (*AssignWorkOrderResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type DeleteWorkOrderExecutor interface {
	Execute(ctx context.Context, cmd DeleteWorkOrderCommand) error
}
