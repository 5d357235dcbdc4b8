package routes

import (
	"github.com/gin-gonic/gin"

	topichandlers "helpdesk/internal/interfaces/http/handlers/topic"
	"helpdesk/internal/interfaces/http/middleware"
)

type TopicRouteConfig struct {
	TopicHandler   *topichandlers.TopicHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTopicRoutes(engine *gin.Engine, config *TopicRouteConfig) {
	topics := engine.Group("/topics")
	topics.Use(config.AuthMiddleware.RequireAuth())
	{
		topics.GET("", config.TopicHandler.ListTopics)
		topics.POST("", config.TopicHandler.CreateTopic)
		topics.PATCH("/:id", config.TopicHandler.UpdateTopic)
		topics.DELETE("/:id", config.TopicHandler.DeleteTopic)
	}
}
