package ticket

import (
	"context"

	vo "tickethub/internal/domain/ticket/valueobjects"
)

// TicketFilter restricts ticket listings. CreatorID and AssigneeID carry
// the role-based listing scope; Status and Priority are optional caller
// filters.
type TicketFilter struct {
	Status     *vo.Status
	Priority   *vo.Priority
	CreatorID  *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDForUpdate loads the ticket with a row lock. Must be called
	// inside a transaction; the locked read is what serializes
	// concurrent status transitions on the same ticket.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	UpdateStatus(ctx context.Context, ticketID uint, status vo.Status) error
	UpdateAssignee(ctx context.Context, ticketID uint, assigneeID uint) error
	Delete(ctx context.Context, ticketID uint) error
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// ListByTicket returns comments ordered by creation time ascending.
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID uint) error
	DeleteByTicket(ctx context.Context, ticketID uint) error
}

type StatusLogRepository interface {
	Append(ctx context.Context, log *StatusLog) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*StatusLog, error)
	DeleteByTicket(ctx context.Context, ticketID uint) error
}
