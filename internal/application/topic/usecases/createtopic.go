package usecases

import (
	"context"

	"helpdesk/internal/application/topic/dto"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTopicCommand struct {
	Name string
}

type CreateTopicUseCase struct {
	topicRepo topic.TopicRepository
	logger    logger.Interface
}

func NewCreateTopicUseCase(topicRepo topic.TopicRepository, logger logger.Interface) *CreateTopicUseCase {
	return &CreateTopicUseCase{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (uc *CreateTopicUseCase) Execute(ctx context.Context, cmd CreateTopicCommand) (*dto.TopicDTO, error) {
	newTopic, err := topic.NewTopic(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.topicRepo.FindByName(ctx, newTopic.Name())
	if err != nil {
		uc.logger.Errorw("failed to check topic name", "name", newTopic.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create topic")
	}
	if existing != nil {
		return nil, errors.NewConflictError("a topic with this name already exists")
	}

	if err := uc.topicRepo.Save(ctx, newTopic); err != nil {
		// The unique index is the authority; the pre-check only makes the
		// common case friendlier.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a topic with this name already exists")
		}
		uc.logger.Errorw("failed to save topic", "name", newTopic.Name(), "error", err)
		return nil, errors.NewInternalError("failed to create topic")
	}

	uc.logger.Infow("topic created", "topic_id", newTopic.ID(), "name", newTopic.Name())
	return dto.ToTopicDTO(newTopic), nil
}
