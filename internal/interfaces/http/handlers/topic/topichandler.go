package topic

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/topic/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TopicHandler struct {
	listTopicsUC  usecases.ListActiveTopicsExecutor
	createTopicUC usecases.CreateTopicExecutor
	updateTopicUC usecases.UpdateTopicExecutor
	deleteTopicUC usecases.DeleteTopicExecutor
	logger        logger.Interface
}

func NewTopicHandler(
	listTopicsUC usecases.ListActiveTopicsExecutor,
	createTopicUC usecases.CreateTopicExecutor,
	updateTopicUC usecases.UpdateTopicExecutor,
	deleteTopicUC usecases.DeleteTopicExecutor,
) *TopicHandler {
	return &TopicHandler{
		listTopicsUC:  listTopicsUC,
		createTopicUC: createTopicUC,
		updateTopicUC: updateTopicUC,
		deleteTopicUC: deleteTopicUC,
		logger:        logger.NewLogger(),
	}
}

// ListTopics handles GET /topics
func (h *TopicHandler) ListTopics(c *gin.Context) {
	result, err := h.listTopicsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTopic handles POST /topics
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create topic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTopicUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Topic created successfully")
}

// UpdateTopic handles PATCH /topics/:id
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	topicID, err := parseTopicID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update topic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTopicUC.Execute(c.Request.Context(), req.ToCommand(topicID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Topic updated successfully", result)
}

// DeleteTopic handles DELETE /topics/:id
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	topicID, err := parseTopicID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTopicUC.Execute(c.Request.Context(), usecases.DeleteTopicCommand{TopicID: topicID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Topic deleted successfully", nil)
}

func parseTopicID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid topic ID")
	}
	return uint(id), nil
}
