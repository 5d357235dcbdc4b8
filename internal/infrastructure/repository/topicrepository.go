package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/topic"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
)

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(gormDB *gorm.DB) topic.TopicRepository {
	return &topicRepository{db: gormDB}
}

func (r *topicRepository) Save(ctx context.Context, tp *topic.Topic) error {
	model := mappers.TopicToModel(tp)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save topic: %w", err)
	}

	if tp.ID() == 0 {
		if err := tp.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to set topic ID: %w", err)
		}
	}
	return nil
}

func (r *topicRepository) Update(ctx context.Context, tp *topic.Topic) error {
	model := mappers.TopicToModel(tp)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.TopicModel{}).
		Where("id = ?", tp.ID()).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("topic %d not found", tp.ID())
	}
	return nil
}

func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TopicModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("topic %d not found", id)
	}
	return nil
}

func (r *topicRepository) FindByID(ctx context.Context, id uint) (*topic.Topic, error) {
	var model models.TopicModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find topic by id: %w", err)
	}
	return mappers.TopicToDomain(&model)
}

func (r *topicRepository) FindActiveByID(ctx context.Context, id uint) (*topic.Topic, error) {
	var model models.TopicModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("id = ? AND active = ?", id, true).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active topic by id: %w", err)
	}
	return mappers.TopicToDomain(&model)
}

func (r *topicRepository) FindByName(ctx context.Context, name string) (*topic.Topic, error) {
	var model models.TopicModel
	err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find topic by name: %w", err)
	}
	return mappers.TopicToDomain(&model)
}

func (r *topicRepository) FindByIDs(ctx context.Context, ids []uint) ([]*topic.Topic, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var topicModels []models.TopicModel
	err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&topicModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find topics by ids: %w", err)
	}
	return mappers.TopicsToDomain(topicModels)
}

func (r *topicRepository) ListActive(ctx context.Context) ([]*topic.Topic, error) {
	var topicModels []models.TopicModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("name ASC").
		Find(&topicModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active topics: %w", err)
	}
	return mappers.TopicsToDomain(topicModels)
}
