package topic

import (
	"helpdesk/internal/application/topic/usecases"
)

type CreateTopicRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (r *CreateTopicRequest) ToCommand() usecases.CreateTopicCommand {
	return usecases.CreateTopicCommand{
		Name: r.Name,
	}
}

type UpdateTopicRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Active *bool   `json:"active"`
}

func (r *UpdateTopicRequest) ToCommand(topicID uint) usecases.UpdateTopicCommand {
	return usecases.UpdateTopicCommand{
		TopicID: topicID,
		Name:    r.Name,
		Active:  r.Active,
	}
}
