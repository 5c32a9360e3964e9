package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
)

func TestAssignTicketUseCase_Execute_Success(t *testing.T) {
	existing := newTestTicket(t, 1, vo.StatusOpen, 2, nil)
	var assignedTo uint

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateAssigneeFunc: func(ctx context.Context, ticketID, assigneeID uint) error {
			assignedTo = assigneeID
			return nil
		},
	}
	userRepo := userRepoFor(
		newTestUser(t, 2, authorization.RoleUser),
		newTestUser(t, 9, authorization.RoleSupport),
	)

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, nopLogger{})
	result, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		AssigneeID: 9,
		Actor:      authorization.Actor{ID: 1, Role: authorization.RoleManager},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(9), assignedTo)
	require.NotNil(t, result.AssignedTo)
	assert.Equal(t, uint(9), result.AssignedTo.ID)
}

func TestAssignTicketUseCase_Execute_UserRoleIneligible(t *testing.T) {
	existing := newTestTicket(t, 1, vo.StatusOpen, 2, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	userRepo := userRepoFor(newTestUser(t, 3, authorization.RoleUser))

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, nopLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		AssigneeID: 3,
		Actor:      authorization.Actor{ID: 1, Role: authorization.RoleManager},
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "tickets cannot be assigned to users with role USER")
}

func TestAssignTicketUseCase_Execute_AssigneeNotFound(t *testing.T) {
	existing := newTestTicket(t, 1, vo.StatusOpen, 2, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	uc := NewAssignTicketUseCase(ticketRepo, userRepoFor(), nopLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		AssigneeID: 404,
		Actor:      authorization.Actor{ID: 1, Role: authorization.RoleManager},
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "user not found")
}

func TestAssignTicketUseCase_Execute_RoleGate(t *testing.T) {
	uc := NewAssignTicketUseCase(&mockTicketRepository{}, &mockUserRepository{}, nopLogger{})
	_, err := uc.Execute(context.Background(), AssignTicketCommand{
		TicketID:   1,
		AssigneeID: 9,
		Actor:      authorization.Actor{ID: 3, Role: authorization.RoleUser},
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
