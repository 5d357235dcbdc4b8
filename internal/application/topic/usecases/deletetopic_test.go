package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func TestDeleteTopicUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("detaches tickets then deletes inside one transaction", func(t *testing.T) {
		var calls []string
		topicRepo := &mockTopicRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*topic.Topic, error) {
				return existingTopic(t, id, "Billing", true), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				calls = append(calls, "delete")
				return nil
			},
		}
		ticketRepo := &mockTicketRepository{
			DetachTopicFunc: func(ctx context.Context, topicID uint) error {
				calls = append(calls, "detach")
				assert.Equal(t, uint(1), topicID)
				return nil
			},
		}
		txCalled := false
		tx := &mockTxManager{
			RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				txCalled = true
				return fn(ctx)
			},
		}

		uc := NewDeleteTopicUseCase(topicRepo, ticketRepo, tx, log)
		err := uc.Execute(context.Background(), DeleteTopicCommand{TopicID: 1})

		require.NoError(t, err)
		assert.True(t, txCalled)
		assert.Equal(t, []string{"detach", "delete"}, calls)
	})

	t.Run("topic not found", func(t *testing.T) {
		uc := NewDeleteTopicUseCase(&mockTopicRepository{}, &mockTicketRepository{}, &mockTxManager{}, log)

		err := uc.Execute(context.Background(), DeleteTopicCommand{TopicID: 99})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("detach failure aborts the delete", func(t *testing.T) {
		deleted := false
		topicRepo := &mockTopicRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*topic.Topic, error) {
				return existingTopic(t, id, "Billing", true), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		ticketRepo := &mockTicketRepository{
			DetachTopicFunc: func(ctx context.Context, topicID uint) error {
				return fmt.Errorf("db down")
			},
		}

		uc := NewDeleteTopicUseCase(topicRepo, ticketRepo, &mockTxManager{}, log)
		err := uc.Execute(context.Background(), DeleteTopicCommand{TopicID: 1})

		assert.True(t, errors.IsInternalError(err))
		assert.False(t, deleted)
	})

	t.Run("missing topic id", func(t *testing.T) {
		uc := NewDeleteTopicUseCase(&mockTopicRepository{}, &mockTicketRepository{}, &mockTxManager{}, log)

		err := uc.Execute(context.Background(), DeleteTopicCommand{})
		assert.True(t, errors.IsValidationError(err))
	})
}
