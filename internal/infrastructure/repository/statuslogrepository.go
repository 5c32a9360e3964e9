package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/infrastructure/persistence/mappers"
	"tickethub/internal/infrastructure/persistence/models"
	db "tickethub/internal/shared/db"
)

type StatusLogRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewStatusLogRepository(db *gorm.DB) *StatusLogRepository {
	return &StatusLogRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *StatusLogRepository) Append(ctx context.Context, log *ticket.StatusLog) error {
	model := r.mapper.StatusLogToModel(log)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append status log: %w", err)
	}

	return log.SetID(model.ID)
}

func (r *StatusLogRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusLog, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.StatusLogModel
	err := tx.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("changed_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list status logs: %w", err)
	}

	logs := make([]*ticket.StatusLog, 0, len(modelList))
	for i := range modelList {
		l, err := r.mapper.StatusLogToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func (r *StatusLogRepository) DeleteByTicket(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Delete(&models.StatusLogModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete ticket status logs: %w", err)
	}
	return nil
}
