package dto

import (
	"time"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/domain/user"
)

// UserSummary is the author/creator/assignee shape denormalized into
// ticket and comment responses.
type UserSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Priority    string       `json:"priority"`
	CreatedBy   *UserSummary `json:"created_by"`
	AssignedTo  *UserSummary `json:"assigned_to"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CommentDTO struct {
	ID        uint         `json:"id"`
	TicketID  uint         `json:"ticket_id"`
	Comment   string       `json:"comment"`
	User      *UserSummary `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

func ToUserSummary(u *user.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

// ToTicketDTO builds the response shape for a ticket with its creator
// and (optional) assignee denormalized.
func ToTicketDTO(t *ticket.Ticket, creator, assignee *user.User) *TicketDTO {
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedBy:   ToUserSummary(creator),
		AssignedTo:  ToUserSummary(assignee),
		CreatedAt:   t.CreatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment, author *user.User) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Comment:   c.Text(),
		User:      ToUserSummary(author),
		CreatedAt: c.CreatedAt(),
	}
}
