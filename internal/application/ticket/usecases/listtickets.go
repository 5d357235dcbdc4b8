package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/domain/topic"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils/setutil"
)

type ListTicketsQuery struct {
	Status        *string
	RequesterID   *uint
	RequesterName *string
	AssigneeID    *uint
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO `json:"tickets"`
	Total   int              `json:"total"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	topicRepo  topic.TopicRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	topicRepo topic.TopicRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		topicRepo:  topicRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		RequesterID:   query.RequesterID,
		RequesterName: query.RequesterName,
		AssigneeID:    query.AssigneeID,
	}
	if query.Status != nil {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	topicsByID, err := uc.resolveTopics(ctx, tickets)
	if err != nil {
		uc.logger.Errorw("failed to resolve topics", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	dtos := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		var liveTopic *topic.Topic
		if t.TopicID() != nil {
			liveTopic = topicsByID[*t.TopicID()]
		}
		dtos = append(dtos, dto.ToTicketDTO(t, liveTopic))
	}

	return &ListTicketsResult{
		Tickets: dtos,
		Total:   len(dtos),
	}, nil
}

// resolveTopics batches the live topic lookup so a page of tickets costs one
// query instead of one per ticket.
func (uc *ListTicketsUseCase) resolveTopics(ctx context.Context, tickets []*ticket.Ticket) (map[uint]*topic.Topic, error) {
	ids := setutil.NewUintSetWithCap(len(tickets))
	for _, t := range tickets {
		if t.TopicID() != nil {
			ids.Add(*t.TopicID())
		}
	}
	if ids.Len() == 0 {
		return map[uint]*topic.Topic{}, nil
	}

	topics, err := uc.topicRepo.FindByIDs(ctx, ids.ToSlice())
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*topic.Topic, len(topics))
	for _, tp := range topics {
		byID[tp.ID()] = tp
	}
	return byID, nil
}
