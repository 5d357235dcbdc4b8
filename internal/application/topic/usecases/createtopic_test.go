package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

func existingTopic(t *testing.T, id uint, name string, active bool) *topic.Topic {
	t.Helper()
	tp, err := topic.ReconstructTopic(id, name, active, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	return tp
}

func TestCreateTopicUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("creates topic", func(t *testing.T) {
		topicRepo := &mockTopicRepository{
			SaveFunc: func(ctx context.Context, tp *topic.Topic) error {
				return tp.SetID(1)
			},
		}

		uc := NewCreateTopicUseCase(topicRepo, log)
		result, err := uc.Execute(context.Background(), CreateTopicCommand{Name: "Billing"})

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, "Billing", result.Name)
		assert.True(t, result.Active)
	})

	t.Run("empty name", func(t *testing.T) {
		uc := NewCreateTopicUseCase(&mockTopicRepository{}, log)

		_, err := uc.Execute(context.Background(), CreateTopicCommand{Name: "   "})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("name already taken", func(t *testing.T) {
		topicRepo := &mockTopicRepository{
			FindByNameFunc: func(ctx context.Context, name string) (*topic.Topic, error) {
				return existingTopic(t, 2, name, false), nil
			},
		}

		uc := NewCreateTopicUseCase(topicRepo, log)
		_, err := uc.Execute(context.Background(), CreateTopicCommand{Name: "Billing"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("duplicate surfaced by the unique index", func(t *testing.T) {
		topicRepo := &mockTopicRepository{
			SaveFunc: func(ctx context.Context, tp *topic.Topic) error {
				return fmt.Errorf("Error 1062: Duplicate entry 'Billing' for key 'topics.uidx_topics_name'")
			},
		}

		uc := NewCreateTopicUseCase(topicRepo, log)
		_, err := uc.Execute(context.Background(), CreateTopicCommand{Name: "Billing"})

		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("save failure", func(t *testing.T) {
		topicRepo := &mockTopicRepository{
			SaveFunc: func(ctx context.Context, tp *topic.Topic) error {
				return fmt.Errorf("db down")
			},
		}

		uc := NewCreateTopicUseCase(topicRepo, log)
		_, err := uc.Execute(context.Background(), CreateTopicCommand{Name: "Billing"})

		assert.True(t, errors.IsInternalError(err))
	})
}
