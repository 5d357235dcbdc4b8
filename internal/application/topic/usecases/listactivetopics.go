package usecases

import (
	"context"

	"helpdesk/internal/application/topic/dto"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListActiveTopicsResult struct {
	Topics []*dto.TopicDTO `json:"topics"`
	Total  int             `json:"total"`
}

type ListActiveTopicsUseCase struct {
	topicRepo topic.TopicRepository
	logger    logger.Interface
}

func NewListActiveTopicsUseCase(topicRepo topic.TopicRepository, logger logger.Interface) *ListActiveTopicsUseCase {
	return &ListActiveTopicsUseCase{
		topicRepo: topicRepo,
		logger:    logger,
	}
}

func (uc *ListActiveTopicsUseCase) Execute(ctx context.Context) (*ListActiveTopicsResult, error) {
	topics, err := uc.topicRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active topics", "error", err)
		return nil, errors.NewInternalError("failed to list topics")
	}

	return &ListActiveTopicsResult{
		Topics: dto.ToTopicDTOs(topics),
		Total:  len(topics),
	}, nil
}
