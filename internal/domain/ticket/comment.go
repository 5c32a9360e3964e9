package ticket

import (
	"fmt"
	"time"

	"tickethub/internal/shared/biztime"
)

type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	text      string
	createdAt time.Time
}

func NewComment(ticketID uint, userID uint, text string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("comment text cannot be empty")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("comment text exceeds maximum length of 5000 characters")
	}

	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		text:      text,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	text string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateText replaces the comment body. Only the text changes; author
// and timestamps are immutable.
func (c *Comment) UpdateText(text string) error {
	if len(text) == 0 {
		return fmt.Errorf("comment text cannot be empty")
	}
	if len(text) > 5000 {
		return fmt.Errorf("comment text exceeds maximum length of 5000 characters")
	}
	c.text = text
	return nil
}
