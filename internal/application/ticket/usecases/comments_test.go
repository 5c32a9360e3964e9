package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/services/sanitize"
)

func newTestComment(t *testing.T, id, ticketID, authorID uint, text string) *ticket.Comment {
	t.Helper()
	c, err := ticket.ReconstructComment(id, ticketID, authorID, text, time.Now().Add(-time.Minute).UTC())
	require.NoError(t, err)
	return c
}

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	existing := newTestTicket(t, 1, vo.StatusOpen, 2, nil)
	var saved *ticket.Comment

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	commentRepo := &mockCommentRepository{
		SaveFunc: func(ctx context.Context, c *ticket.Comment) error {
			saved = c
			return c.SetID(10)
		},
	}
	userRepo := userRepoFor(newTestUser(t, 2, authorization.RoleUser))

	uc := NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, sanitize.New(), nopLogger{})
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 1,
		Text:     "  <script>alert(1)</script>Still broken after restart  ",
		Actor:    authorization.Actor{ID: 2, Role: authorization.RoleUser},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, saved)
	assert.Equal(t, "Still broken after restart", saved.Text(), "markup is stripped before storage")
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, uint(2), result.User.ID)
}

func TestAddCommentUseCase_Execute_DeniedWithoutTicketAccess(t *testing.T) {
	existing := newTestTicket(t, 1, vo.StatusOpen, 2, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}

	uc := NewAddCommentUseCase(ticketRepo, &mockCommentRepository{}, &mockUserRepository{}, sanitize.New(), nopLogger{})
	_, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 1,
		Text:     "drive-by comment",
		Actor:    authorization.Actor{ID: 3, Role: authorization.RoleUser},
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Contains(t, err.Error(), "access denied to this ticket")
}

func TestEditCommentUseCase_Execute_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		actor   authorization.Actor
		wantErr bool
	}{
		{name: "author edits own comment", actor: authorization.Actor{ID: 2, Role: authorization.RoleUser}},
		{name: "manager edits any comment", actor: authorization.Actor{ID: 1, Role: authorization.RoleManager}},
		{name: "support cannot edit another user's comment", actor: authorization.Actor{ID: 9, Role: authorization.RoleSupport}, wantErr: true},
		{name: "other user cannot edit", actor: authorization.Actor{ID: 3, Role: authorization.RoleUser}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := newTestComment(t, 10, 1, 2, "original text")
			commentRepo := &mockCommentRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Comment, error) {
					return comment, nil
				},
			}
			userRepo := userRepoFor(newTestUser(t, 2, authorization.RoleUser))

			uc := NewEditCommentUseCase(commentRepo, userRepo, sanitize.New(), nopLogger{})
			result, err := uc.Execute(context.Background(), EditCommentCommand{
				CommentID: 10,
				Text:      "updated text",
				Actor:     tt.actor,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				assert.Contains(t, err.Error(), "you can only edit your own comments")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "updated text", result.Comment)
		})
	}
}

func TestDeleteCommentUseCase_Execute_Ownership(t *testing.T) {
	tests := []struct {
		name    string
		actor   authorization.Actor
		wantErr bool
	}{
		{name: "author deletes own comment", actor: authorization.Actor{ID: 2, Role: authorization.RoleUser}},
		{name: "manager deletes any comment", actor: authorization.Actor{ID: 1, Role: authorization.RoleManager}},
		{name: "non-author is denied", actor: authorization.Actor{ID: 3, Role: authorization.RoleUser}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := newTestComment(t, 10, 1, 2, "to be deleted")
			deleted := false
			commentRepo := &mockCommentRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Comment, error) {
					return comment, nil
				},
				DeleteFunc: func(ctx context.Context, id uint) error {
					deleted = true
					return nil
				},
			}

			uc := NewDeleteCommentUseCase(commentRepo, nopLogger{})
			err := uc.Execute(context.Background(), DeleteCommentCommand{CommentID: 10, Actor: tt.actor})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				assert.Contains(t, err.Error(), "you can only delete your own comments")
				assert.False(t, deleted)
				return
			}
			require.NoError(t, err)
			assert.True(t, deleted)
		})
	}
}

func TestListCommentsUseCase_Execute_AccessFollowsTicketVisibility(t *testing.T) {
	existing := newTestTicket(t, 1, vo.StatusOpen, 2, nil)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{
				newTestComment(t, 10, 1, 2, "first"),
				newTestComment(t, 11, 1, 1, "second"),
			}, nil
		},
	}
	userRepo := userRepoFor(
		newTestUser(t, 1, authorization.RoleManager),
		newTestUser(t, 2, authorization.RoleUser),
	)

	uc := NewListCommentsUseCase(ticketRepo, commentRepo, userRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), ListCommentsQuery{
		TicketID: 1,
		Actor:    authorization.Actor{ID: 2, Role: authorization.RoleUser},
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Comment)
	assert.Equal(t, "second", result[1].Comment)

	_, err = uc.Execute(context.Background(), ListCommentsQuery{
		TicketID: 1,
		Actor:    authorization.Actor{ID: 3, Role: authorization.RoleUser},
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}
