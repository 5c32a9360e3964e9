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

type AddCommentCommand struct {
	TicketID uint
	Text     string
	Actor    authorization.Actor
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	sanitizer   *sanitize.Sanitizer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	sanitizer *sanitize.Sanitizer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		sanitizer:   sanitizer,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanViewTicket(cmd.Actor, ticketRefs(t)) {
		return nil, errors.NewForbiddenError("access denied to this ticket")
	}

	text := uc.sanitizer.Clean(cmd.Text)
	comment, err := ticket.NewComment(cmd.TicketID, cmd.Actor.ID, text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	author, err := uc.userRepo.FindByID(ctx, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewInternalError("failed to load comment author", err.Error())
	}

	uc.logger.Infow("comment added",
		"comment_id", comment.ID(), "ticket_id", cmd.TicketID, "user_id", cmd.Actor.ID)

	return dto.ToCommentDTO(comment, author), nil
}
