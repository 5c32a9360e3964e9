package ticket

import (
	"fmt"
	"time"

	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/shared/biztime"
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	createdAt   time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if len(title) < 5 {
		return nil, fmt.Errorf("title must be at least 5 characters")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) < 10 {
		return nil, fmt.Errorf("description must be at least 10 characters")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
	createdAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignTo sets the assignee. Eligibility of the assignee's role is
// decided by the caller against the identity store; the aggregate only
// guards against a zero reference.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	return nil
}

// ChangeStatus advances the lifecycle. The transition decision, with its
// conflict and allowed-next semantics, lives in the change-status use
// case; this method is the final guard before mutation.
func (t *Ticket) ChangeStatus(next vo.Status) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid status: %s", next)
	}
	if !t.status.CanTransitionTo(next) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, next)
	}
	t.status = next
	return nil
}
