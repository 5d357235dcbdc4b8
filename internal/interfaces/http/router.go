// Package http wires use cases, middleware, and routes into the gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authusecases "helpdesk/internal/application/auth/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	topicusecases "helpdesk/internal/application/topic/usecases"
	infraauth "helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	topichandlers "helpdesk/internal/interfaces/http/handlers/topic"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	logger logger.Interface
}

func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &Router{
		engine: engine,
		db:     database,
		cfg:    cfg,
		logger: log,
	}
}

func (r *Router) SetupRoutes() {
	accountRepo := repository.NewAccountRepository(r.db)
	apiKeyRepo := repository.NewAPIKeyRepository(r.db)
	topicRepo := repository.NewTopicRepository(r.db)
	ticketRepo := repository.NewTicketRepository(r.db)
	txManager := db.NewTransactionManager(r.db)

	hasher := infraauth.NewBcryptKeyHasher(r.cfg.Auth.BcryptCost)
	markdownSvc := markdown.NewMarkdownService()

	authMiddleware := middleware.NewAuthMiddleware(
		authusecases.NewAuthenticateUseCase(accountRepo, apiKeyRepo, hasher, r.logger),
	)

	topicHandler := topichandlers.NewTopicHandler(
		topicusecases.NewListActiveTopicsUseCase(topicRepo, r.logger),
		topicusecases.NewCreateTopicUseCase(topicRepo, r.logger),
		topicusecases.NewUpdateTopicUseCase(topicRepo, r.logger),
		topicusecases.NewDeleteTopicUseCase(topicRepo, ticketRepo, txManager, r.logger),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, topicRepo, txManager, r.logger),
		ticketusecases.NewListTicketsUseCase(ticketRepo, topicRepo, r.logger),
		ticketusecases.NewGetTicketUseCase(ticketRepo, topicRepo, markdownSvc, r.logger),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, topicRepo, txManager, r.logger),
		ticketusecases.NewFinalizeTicketUseCase(ticketRepo, topicRepo, txManager, r.logger),
	)

	routes.SetupHealthRoutes(r.engine)
	routes.SetupTopicRoutes(r.engine, &routes.TopicRouteConfig{
		TopicHandler:   topicHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
