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
)

type ListTicketsQuery struct {
	Actor    authorization.Actor
	Status   string
	Priority string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets    []*dto.TicketDTO
	TotalCount int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	// The role scope is part of the storage query, never applied as a
	// post-filter over fetched rows.
	scope := authorization.ListScopeFor(query.Actor)
	filter.CreatorID = scope.CreatorID
	filter.AssigneeID = scope.AssigneeID

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "actor_id", query.Actor.ID, "error", err)
		return nil, err
	}

	users, err := uc.loadUsers(ctx, tickets)
	if err != nil {
		return nil, errors.NewInternalError("failed to load ticket users", err.Error())
	}

	dtos := make([]*dto.TicketDTO, len(tickets))
	for i, t := range tickets {
		var assignee *user.User
		if t.AssigneeID() != nil {
			assignee = users[*t.AssigneeID()]
		}
		dtos[i] = dto.ToTicketDTO(t, users[t.CreatorID()], assignee)
	}

	return &ListTicketsResult{Tickets: dtos, TotalCount: total}, nil
}

func (uc *ListTicketsUseCase) loadUsers(ctx context.Context, tickets []*ticket.Ticket) (map[uint]*user.User, error) {
	idSet := make(map[uint]struct{}, len(tickets))
	for _, t := range tickets {
		idSet[t.CreatorID()] = struct{}{}
		if t.AssigneeID() != nil {
			idSet[*t.AssigneeID()] = struct{}{}
		}
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return map[uint]*user.User{}, nil
	}
	return uc.userRepo.FindByIDs(ctx, ids)
}
