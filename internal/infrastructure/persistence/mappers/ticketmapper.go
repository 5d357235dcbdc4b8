package mappers

import (
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
)

func TicketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                t.ID(),
		RequesterID:       t.RequesterID(),
		RequesterName:     t.RequesterName(),
		AssigneeID:        t.AssigneeID(),
		TopicID:           t.TopicID(),
		TopicNameSnapshot: t.TopicNameSnapshot(),
		Priority:          t.Priority().String(),
		Status:            t.Status().String(),
		Description:       t.Description(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}
}

func TicketToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	tk, err := ticket.ReconstructTicket(
		m.ID,
		m.RequesterID,
		m.RequesterName,
		m.AssigneeID,
		m.TopicID,
		m.TopicNameSnapshot,
		vo.Priority(m.Priority),
		vo.TicketStatus(m.Status),
		m.Description,
		time.UnixMilli(m.CreatedAt),
		time.UnixMilli(m.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", m.ID, err)
	}
	return tk, nil
}

func TicketsToDomain(ms []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ms))
	for i := range ms {
		tk, err := TicketToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, tk)
	}
	return tickets, nil
}
