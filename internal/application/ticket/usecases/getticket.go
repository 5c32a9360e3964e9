package usecases

import (
	"context"

	"tickethub/internal/application/ticket/dto"
	"tickethub/internal/domain/ticket"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    authorization.Actor
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	// Existence is resolved before access so an absent ticket yields
	// not-found rather than leaking an access-denied answer.
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	refs := ticketRefs(t)
	if !authorization.CanViewTicket(query.Actor, refs) {
		uc.logger.Warnw("ticket view denied",
			"ticket_id", query.TicketID, "actor_id", query.Actor.ID, "role", query.Actor.Role)
		switch query.Actor.Role {
		case authorization.RoleSupport:
			return nil, errors.NewForbiddenError("access denied: ticket is not assigned to you")
		default:
			return nil, errors.NewForbiddenError("access denied: this is not your ticket")
		}
	}

	creator, assignee, err := loadTicketUsers(ctx, uc.userRepo, t)
	if err != nil {
		return nil, errors.NewInternalError("failed to load ticket users", err.Error())
	}

	return dto.ToTicketDTO(t, creator, assignee), nil
}
