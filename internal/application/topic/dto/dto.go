package dto

import (
	"time"

	"helpdesk/internal/domain/topic"
)

type TopicDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToTopicDTO(t *topic.Topic) *TopicDTO {
	if t == nil {
		return nil
	}
	return &TopicDTO{
		ID:        t.ID(),
		Name:      t.Name(),
		Active:    t.IsActive(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToTopicDTOs(topics []*topic.Topic) []*TopicDTO {
	dtos := make([]*TopicDTO, 0, len(topics))
	for _, t := range topics {
		dtos = append(dtos, ToTopicDTO(t))
	}
	return dtos
}
