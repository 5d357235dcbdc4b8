package usecases

import (
	"context"

	"helpdesk/internal/application/topic/dto"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTopicCommand struct {
	TopicID uint
	Name    *string
	Active  *bool
}

type UpdateTopicUseCase struct {
	topicRepo topic.TopicRepository
	logger    logger.Interface
}

func NewUpdateTopicUseCase(topicRepo topic.TopicRepository, logger logger.Interface) *UpdateTopicUseCase {
	return &UpdateTopicUseCase{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (uc *UpdateTopicUseCase) Execute(ctx context.Context, cmd UpdateTopicCommand) (*dto.TopicDTO, error) {
	if cmd.TopicID == 0 {
		return nil, errors.NewValidationError("topic ID is required")
	}

	existing, err := uc.topicRepo.FindByID(ctx, cmd.TopicID)
	if err != nil {
		uc.logger.Errorw("failed to find topic", "topic_id", cmd.TopicID, "error", err)
		return nil, errors.NewInternalError("failed to update topic")
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("topic not found")
	}

	if cmd.Name != nil && *cmd.Name != existing.Name() {
		inUse, err := uc.topicRepo.FindByName(ctx, *cmd.Name)
		if err != nil {
			uc.logger.Errorw("failed to check topic name", "name", *cmd.Name, "error", err)
			return nil, errors.NewInternalError("failed to update topic")
		}
		if inUse != nil {
			return nil, errors.NewConflictError("a topic with this name already exists")
		}
		if err := existing.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		existing.SetActive(*cmd.Active)
	}

	if err := uc.topicRepo.Update(ctx, existing); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a topic with this name already exists")
		}
		uc.logger.Errorw("failed to update topic", "topic_id", cmd.TopicID, "error", err)
		return nil, errors.NewInternalError("failed to update topic")
	}

	uc.logger.Infow("topic updated", "topic_id", existing.ID(), "name", existing.Name(), "active", existing.IsActive())
	return dto.ToTopicDTO(existing), nil
}
