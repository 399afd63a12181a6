package usecases

import (
	"context"
	"time"

	"workdesk/internal/domain/workorder"
	"workdesk/internal/shared/errors"
	"workdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	WorkOrderID uint
	AuthorID    uint
	Content     string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	workOrderRepo workorder.Repository
	commentRepo   workorder.CommentRepository
	logger        logger.Interface
}

func NewAddCommentUseCase(
	workOrderRepo workorder.Repository,
	commentRepo workorder.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		workOrderRepo: workOrderRepo,
		commentRepo:   commentRepo,
		logger:        logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "work_order_id", cmd.WorkOrderID, "author_id", cmd.AuthorID)

	if cmd.WorkOrderID == 0 {
		return nil, errors.NewValidationError("work order ID is required")
	}
	if cmd.AuthorID == 0 {
		return nil, errors.NewValidationError("author ID is required")
	}

	order, err := uc.workOrderRepo.FindByID(ctx, cmd.WorkOrderID)
	if err != nil {
		uc.logger.Errorw("failed to load work order", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	if order.Status().IsClosed() {
		return nil, errors.NewValidationError("cannot comment on a closed work order")
	}

	comment, err := workorder.NewComment(order.ID(), cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "work_order_id", cmd.WorkOrderID, "error", err)
		return nil, err
	}

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
