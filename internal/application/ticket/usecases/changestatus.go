package usecases

import (
	"context"
	"fmt"

	"tickethub/internal/application/ticket/dto"
	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus vo.Status
	Actor     authorization.Actor
}

type ChangeStatusResult struct {
	Ticket    *dto.TicketDTO
	OldStatus string
	NewStatus string
}

// ChangeStatusUseCase is the ticket lifecycle engine. It validates the
// requested transition against the state machine and applies the status
// update together with its audit log row as one atomic unit.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logRepo    ticket.StatusLogRepository
	userRepo   user.Repository
	tx         Transactor
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	logRepo ticket.StatusLogRepository,
	userRepo user.Repository,
	tx Transactor,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logRepo:    logRepo,
		userRepo:   userRepo,
		tx:         tx,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	// Role gate precedes the existence check on mutation paths.
	if !authorization.CanManageTicket(cmd.Actor.Role) {
		uc.logger.Warnw("actor cannot change ticket status",
			"ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID, "role", cmd.Actor.Role)
		return nil, errors.NewForbiddenError("only MANAGER or SUPPORT may change ticket status")
	}

	var oldStatus vo.Status

	// The current status is re-read under a row lock inside the
	// transaction so two concurrent transitions cannot both succeed
	// from the same stale read. The status update and its log row
	// either both persist or neither does.
	txErr := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		oldStatus = t.Status()

		if oldStatus == cmd.NewStatus {
			return errors.NewConflictError(
				fmt.Sprintf("ticket is already in status '%s'", oldStatus))
		}
		if !oldStatus.CanTransitionTo(cmd.NewStatus) {
			return errors.NewInvalidTransitionError(
				fmt.Sprintf("invalid status transition from '%s' to '%s', allowed: %s",
					oldStatus, cmd.NewStatus, oldStatus.AllowedNextString()))
		}

		if err := t.ChangeStatus(cmd.NewStatus); err != nil {
			return errors.NewInvalidTransitionError(err.Error())
		}
		if err := uc.ticketRepo.UpdateStatus(txCtx, cmd.TicketID, cmd.NewStatus); err != nil {
			return err
		}

		log, err := ticket.NewStatusLog(cmd.TicketID, oldStatus, cmd.NewStatus, cmd.Actor.ID)
		if err != nil {
			return errors.NewInternalError("failed to build status log", err.Error())
		}
		return uc.logRepo.Append(txCtx, log)
	})
	if txErr != nil {
		if !errors.IsAppError(txErr) {
			uc.logger.Errorw("status transition failed",
				"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "error", txErr)
		}
		return nil, txErr
	}

	refreshed, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	creator, assignee, err := loadTicketUsers(ctx, uc.userRepo, refreshed)
	if err != nil {
		return nil, errors.NewInternalError("failed to load ticket users", err.Error())
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID,
		"old_status", oldStatus,
		"new_status", cmd.NewStatus,
		"changed_by", cmd.Actor.ID)

	return &ChangeStatusResult{
		Ticket:    dto.ToTicketDTO(refreshed, creator, assignee),
		OldStatus: oldStatus.String(),
		NewStatus: cmd.NewStatus.String(),
	}, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if !cmd.NewStatus.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid status value: %s", cmd.NewStatus))
	}
	if cmd.Actor.ID == 0 {
		return errors.NewValidationError("actor is required")
	}
	return nil
}
