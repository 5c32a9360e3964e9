package usecases

import (
	"context"
	"fmt"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
)

// loadTicketUsers resolves the creator and assignee of a ticket from
// the identity store in one batched lookup.
func loadTicketUsers(ctx context.Context, userRepo user.Repository, t *ticket.Ticket) (creator, assignee *user.User, err error) {
	ids := []uint{t.CreatorID()}
	if t.AssigneeID() != nil {
		ids = append(ids, *t.AssigneeID())
	}

	users, err := userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ticket users: %w", err)
	}

	creator = users[t.CreatorID()]
	if t.AssigneeID() != nil {
		assignee = users[*t.AssigneeID()]
	}
	return creator, assignee, nil
}

func ticketRefs(t *ticket.Ticket) authorization.TicketRefs {
	return authorization.TicketRefs{CreatorID: t.CreatorID(), AssigneeID: t.AssigneeID()}
}
