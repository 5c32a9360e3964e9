package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tickethub/internal/domain/ticket"
	"tickethub/internal/infrastructure/persistence/mappers"
	"tickethub/internal/infrastructure/persistence/models"
	db "tickethub/internal/shared/db"
	apperrors "tickethub/internal/shared/errors"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.CommentModel
	if err := tx.WithContext(ctx).First(&model, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CommentModel
	err := tx.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.CommentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.WithContext(ctx).
		Model(&models.CommentModel{}).
		Where("id = ?", c.ID()).
		Update("text", c.Text())
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.WithContext(ctx).Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *CommentRepository) DeleteByTicket(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Delete(&models.CommentModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}
	return nil
}
