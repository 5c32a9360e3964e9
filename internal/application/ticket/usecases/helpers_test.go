package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/domain/user"
	"tickethub/internal/shared/authorization"
)

func newTestTicket(t *testing.T, id uint, status vo.Status, creatorID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id,
		"Printer is on fire",
		"The office printer started smoking after the last job.",
		status,
		vo.PriorityHigh,
		creatorID,
		assigneeID,
		time.Now().Add(-time.Hour).UTC(),
	)
	require.NoError(t, err)
	return tk
}

func newTestUser(t *testing.T, id uint, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id,
		"Test User",
		"user@example.com",
		"$2a$12$hash",
		role,
		time.Now().Add(-24*time.Hour).UTC(),
	)
	require.NoError(t, err)
	return u
}

// userRepoFor serves the given users by ID for both lookup styles.
func userRepoFor(users ...*user.User) *mockUserRepository {
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			if u, ok := byID[userID]; ok {
				return u, nil
			}
			return nil, notFoundUser()
		},
		FindByIDsFunc: func(ctx context.Context, userIDs []uint) (map[uint]*user.User, error) {
			out := make(map[uint]*user.User)
			for _, id := range userIDs {
				if u, ok := byID[id]; ok {
					out[id] = u
				}
			}
			return out, nil
		},
	}
}
