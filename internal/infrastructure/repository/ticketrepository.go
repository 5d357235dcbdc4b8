package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(gormDB *gorm.DB) ticket.TicketRepository {
	return &ticketRepository{db: gormDB}
}

func (r *ticketRepository) Save(ctx context.Context, tk *ticket.Ticket) error {
	model := mappers.TicketToModel(tk)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if tk.ID() == 0 {
		if err := tk.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set ticket ID: %w", err)
		}
	}
	return nil
}

func (r *ticketRepository) Update(ctx context.Context, tk *ticket.Ticket) error {
	model := mappers.TicketToModel(tk)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).
		Where("id = ?", tk.ID()).
		Updates(map[string]interface{}{
			"assignee_id": model.AssigneeID,
			"status":      model.Status,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", tk.ID())
	}
	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket by id: %w", err)
	}
	return mappers.TicketToDomain(&model)
}

func (r *ticketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.RequesterName != nil {
		query = query.Where("requester_name = ?", *filter.RequesterName)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}

func (r *ticketRepository) DetachTopic(ctx context.Context, topicID uint) error {
	err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).
		Where("topic_id = ?", topicID).
		Update("topic_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to detach topic from tickets: %w", err)
	}
	return nil
}
