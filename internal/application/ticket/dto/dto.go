package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/topic"
)

type TicketDTO struct {
	ID              uint      `json:"id"`
	RequesterID     uint      `json:"requester_id"`
	RequesterName   *string   `json:"requester_name,omitempty"`
	AssigneeID      *uint     `json:"assignee_id,omitempty"`
	TopicID         *uint     `json:"topic_id,omitempty"`
	TopicName       string    `json:"topic_name"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToTicketDTO maps a ticket for output. The topic name is the live topic
// name when the topic still exists and the snapshot captured at creation
// otherwise.
func ToTicketDTO(t *ticket.Ticket, liveTopic *topic.Topic) *TicketDTO {
	if t == nil {
		return nil
	}

	topicName := t.TopicNameSnapshot()
	if liveTopic != nil {
		topicName = liveTopic.Name()
	}

	return &TicketDTO{
		ID:            t.ID(),
		RequesterID:   t.RequesterID(),
		RequesterName: t.RequesterName(),
		AssigneeID:    t.AssigneeID(),
		TopicID:       t.TopicID(),
		TopicName:     topicName,
		Priority:      t.Priority().String(),
		Status:        t.Status().String(),
		Description:   t.Description(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}
