package mappers

import (
	"fmt"
	"time"

	"tickethub/internal/domain/ticket"
	vo "tickethub/internal/domain/ticket/valueobjects"
	"tickethub/internal/infrastructure/persistence/models"
)

// TicketMapper handles conversion between ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	StatusLogToModel(l *ticket.StatusLog) *models.StatusLogModel
	StatusLogToDomain(model *models.StatusLogModel) (*ticket.StatusLog, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket status (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket priority (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.CreatorID,
		model.AssigneeID,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Text,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) StatusLogToModel(l *ticket.StatusLog) *models.StatusLogModel {
	return &models.StatusLogModel{
		ID:        l.ID(),
		TicketID:  l.TicketID(),
		OldStatus: l.OldStatus().String(),
		NewStatus: l.NewStatus().String(),
		ChangedBy: l.ChangedBy(),
		ChangedAt: l.ChangedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) StatusLogToDomain(model *models.StatusLogModel) (*ticket.StatusLog, error) {
	oldStatus, err := vo.NewStatus(model.OldStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to map status log old status (id=%d): %w", model.ID, err)
	}
	newStatus, err := vo.NewStatus(model.NewStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to map status log new status (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructStatusLog(
		model.ID,
		model.TicketID,
		oldStatus,
		newStatus,
		model.ChangedBy,
		time.UnixMilli(model.ChangedAt).UTC(),
	)
}
