package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()
	md := markdown.NewMarkdownService()

	t.Run("returns ticket with rendered description", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusCreated, nil, uintPtr(10), "Billing"), nil
			},
		}
		topicRepo := &mockTopicRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*topic.Topic, error) {
				return activeTopic(t, id, "Billing"), nil
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, topicRepo, md, log)
		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 100})

		require.NoError(t, err)
		assert.Equal(t, uint(100), result.ID)
		assert.Equal(t, "Billing", result.TopicName)
		assert.NotEmpty(t, result.DescriptionHTML)
	})

	t.Run("detached topic uses the snapshot", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusInProgress, uintPtr(7), nil, "Old Billing"), nil
			},
		}
		topicRepo := &mockTopicRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*topic.Topic, error) {
				t.Fatal("topic lookup should be skipped for detached tickets")
				return nil, nil
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, topicRepo, md, log)
		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 100})

		require.NoError(t, err)
		assert.Nil(t, result.TopicID)
		assert.Equal(t, "Old Billing", result.TopicName)
	})

	t.Run("renamed topic wins over the snapshot", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return storedTicket(t, id, vo.StatusCreated, nil, uintPtr(10), "Billing"), nil
			},
		}
		topicRepo := &mockTopicRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*topic.Topic, error) {
				return activeTopic(t, id, "Payments"), nil
			},
		}

		uc := NewGetTicketUseCase(ticketRepo, topicRepo, md, log)
		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 100})

		require.NoError(t, err)
		assert.Equal(t, "Payments", result.TopicName)
	})

	t.Run("ticket not found", func(t *testing.T) {
		uc := NewGetTicketUseCase(&mockTicketRepository{}, &mockTopicRepository{}, md, log)

		_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 99})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("missing ticket id", func(t *testing.T) {
		uc := NewGetTicketUseCase(&mockTicketRepository{}, &mockTopicRepository{}, md, log)

		_, err := uc.Execute(context.Background(), GetTicketQuery{})
		assert.True(t, errors.IsValidationError(err))
	})
}
