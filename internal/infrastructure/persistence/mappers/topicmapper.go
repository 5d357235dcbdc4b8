package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/topic"
	"helpdesk/internal/infrastructure/persistence/models"
)

func TopicToModel(t *topic.Topic) *models.TopicModel {
	return &models.TopicModel{
		ID:        t.ID(),
		Name:      t.Name(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}
}

func TopicToDomain(m *models.TopicModel) (*topic.Topic, error) {
	tp, err := topic.ReconstructTopic(
		m.ID,
		m.Name,
		m.Active,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct topic %d: %w", m.ID, err)
	}
	return tp, nil
}

func TopicsToDomain(ms []models.TopicModel) ([]*topic.Topic, error) {
	topics := make([]*topic.Topic, 0, len(ms))
	for i := range ms {
		tp, err := TopicToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		topics = append(topics, tp)
	}
	return topics, nil
}
