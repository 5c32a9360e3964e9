package usecases

import (
	"context"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	Actor     authorization.Actor
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo, logger: logger}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if cmd.CommentID == 0 {
		return errors.NewValidationError("comment ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return err
	}

	if !authorization.CanMutateComment(cmd.Actor, comment.UserID()) {
		return errors.NewForbiddenError("you can only delete your own comments")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return err
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID, "deleted_by", cmd.Actor.ID)
	return nil
}
