package usecases

import (
	"context"
	"fmt"

	"tickethub/internal/application/ticket/dto"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	Actor      authorization.Actor
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee user ID is required")
	}

	if !authorization.CanManageTicket(cmd.Actor.Role) {
		return nil, errors.NewForbiddenError("only MANAGER or SUPPORT may assign tickets")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	assignee, err := uc.userRepo.FindByID(ctx, cmd.AssigneeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, err
	}

	// Assignee eligibility: USER-role accounts can never hold tickets.
	if !assignee.Role().CanBeAssignee() {
		return nil, errors.NewValidationError(
			fmt.Sprintf("tickets cannot be assigned to users with role %s", assignee.Role()))
	}

	if err := t.AssignTo(cmd.AssigneeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.UpdateAssignee(ctx, cmd.TicketID, cmd.AssigneeID); err != nil {
		uc.logger.Errorw("failed to update assignee",
			"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "error", err)
		return nil, err
	}

	creator, _, err := loadTicketUsers(ctx, uc.userRepo, t)
	if err != nil {
		return nil, errors.NewInternalError("failed to load ticket users", err.Error())
	}

	uc.logger.Infow("ticket assigned",
		"ticket_id", cmd.TicketID, "assignee_id", cmd.AssigneeID, "assigned_by", cmd.Actor.ID)

	return dto.ToTicketDTO(t, creator, assignee), nil
}
