package usecases

import (
	"context"

	"tickethub/internal/application/ticket/dto"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/services/sanitize"
)

type EditCommentCommand struct {
	CommentID uint
	Text      string
	Actor     authorization.Actor
}

type EditCommentUseCase struct {
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	sanitizer   *sanitize.Sanitizer
	logger      logger.Interface
}

func NewEditCommentUseCase(
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	sanitizer *sanitize.Sanitizer,
	logger logger.Interface,
) *EditCommentUseCase {
	return &EditCommentUseCase{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *EditCommentUseCase) Execute(ctx context.Context, cmd EditCommentCommand) (*dto.CommentDTO, error) {
	if cmd.CommentID == 0 {
		return nil, errors.NewValidationError("comment ID is required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanMutateComment(cmd.Actor, comment.UserID()) {
		return nil, errors.NewForbiddenError("you can only edit your own comments")
	}

	text := uc.sanitizer.Clean(cmd.Text)
	if err := comment.UpdateText(text); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		uc.logger.Errorw("failed to update comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	author, err := uc.userRepo.FindByID(ctx, comment.UserID())
	if err != nil {
		return nil, errors.NewInternalError("failed to load comment author", err.Error())
	}

	uc.logger.Infow("comment updated", "comment_id", cmd.CommentID, "edited_by", cmd.Actor.ID)

	return dto.ToCommentDTO(comment, author), nil
}
