package ticket

import (
	"fmt"
	"time"

	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/shared/biztime"
)

// StatusLog is one row of the append-only status audit trail. A log
// entry is written in the same transaction as the status change it
// records and is never mutated afterwards.
type StatusLog struct {
	id        uint
	ticketID  uint
	oldStatus vo.Status
	newStatus vo.Status
	changedBy uint
	changedAt time.Time
}

func NewStatusLog(ticketID uint, oldStatus, newStatus vo.Status, changedBy uint) (*StatusLog, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !oldStatus.IsValid() {
		return nil, fmt.Errorf("invalid old status: %s", oldStatus)
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("invalid new status: %s", newStatus)
	}
	if changedBy == 0 {
		return nil, fmt.Errorf("changed by user ID is required")
	}

	return &StatusLog{
		ticketID:  ticketID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		changedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructStatusLog(
	id uint,
	ticketID uint,
	oldStatus, newStatus vo.Status,
	changedBy uint,
	changedAt time.Time,
) (*StatusLog, error) {
	if id == 0 {
		return nil, fmt.Errorf("status log ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &StatusLog{
		id:        id,
		ticketID:  ticketID,
		oldStatus: oldStatus,
		newStatus: newStatus,
		changedBy: changedBy,
		changedAt: changedAt,
	}, nil
}

func (l *StatusLog) ID() uint {
	return l.id
}

func (l *StatusLog) TicketID() uint {
	return l.ticketID
}

func (l *StatusLog) OldStatus() vo.Status {
	return l.oldStatus
}

func (l *StatusLog) NewStatus() vo.Status {
	return l.newStatus
}

func (l *StatusLog) ChangedBy() uint {
	return l.changedBy
}

func (l *StatusLog) ChangedAt() time.Time {
	return l.changedAt
}

func (l *StatusLog) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("status log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status log ID cannot be zero")
	}
	l.id = id
	return nil
}
