package usecases

import (
	"context"

	"tickethub/internal/application/ticket/dto"
	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/services/sanitize"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	Actor       authorization.Actor
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	sanitizer  *sanitize.Sanitizer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	sanitizer *sanitize.Sanitizer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if !authorization.CanCreateTicket(cmd.Actor.Role) {
		return nil, errors.NewForbiddenError("only USER or MANAGER may open tickets")
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	title := uc.sanitizer.Clean(cmd.Title)
	description := uc.sanitizer.Clean(cmd.Description)

	t, err := ticket.NewTicket(title, description, priority, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	creator, assignee, err := loadTicketUsers(ctx, uc.userRepo, t)
	if err != nil {
		return nil, errors.NewInternalError("failed to load ticket users", err.Error())
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(), "creator_id", cmd.Actor.ID, "priority", priority)

	return dto.ToTicketDTO(t, creator, assignee), nil
}
