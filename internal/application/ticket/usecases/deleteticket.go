package usecases

import (
	"context"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	Actor    authorization.Actor
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logRepo     ticket.StatusLogRepository
	tx          Transactor
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logRepo ticket.StatusLogRepository,
	tx Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logRepo:     logRepo,
		tx:          tx,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if !authorization.CanDeleteTicket(cmd.Actor.Role) {
		return errors.NewForbiddenError("only MANAGER may delete tickets")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return err
	}

	// Comments and status logs cascade with the ticket; relationships
	// are managed here rather than by database constraints.
	txErr := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicket(txCtx, cmd.TicketID); err != nil {
			return err
		}
		if err := uc.logRepo.DeleteByTicket(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", txErr)
		return txErr
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "deleted_by", cmd.Actor.ID)
	return nil
}
