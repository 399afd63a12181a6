package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	gamificationusecases "workdesk/internal/application/gamification/usecases"
	appmailroom "workdesk/internal/application/mailroom"
	reportusecases "workdesk/internal/application/report/usecases"
	workorderusecases "workdesk/internal/application/workorder/usecases"
	"workdesk/internal/infrastructure/config"
	"workdesk/internal/infrastructure/geocoding"
	"workdesk/internal/infrastructure/mail"
	"workdesk/internal/infrastructure/repository"
	gamificationhandlers "workdesk/internal/interfaces/http/handlers/gamification"
	geocodehandlers "workdesk/internal/interfaces/http/handlers/geocode"
	mailboxhandlers "workdesk/internal/interfaces/http/handlers/mailbox"
	reporthandlers "workdesk/internal/interfaces/http/handlers/report"
	workorderhandlers "workdesk/internal/interfaces/http/handlers/workorder"
	"workdesk/internal/interfaces/http/middleware"
	"workdesk/internal/interfaces/http/routes"
	shareddb "workdesk/internal/shared/db"
	"workdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter creates the HTTP router with all dependencies
func NewRouter(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))
	engine.Use(middleware.ActingUser())

	// Repositories
	workOrderRepo := repository.NewWorkOrderRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	taskTypeRepo := repository.NewTaskTypeRepository(gormDB)
	categoryRepo := repository.NewTaskCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	accountRepo := repository.NewMailboxAccountRepository(gormDB)
	processedRepo := repository.NewProcessedMessageRepository(gormDB)
	templateRepo := repository.NewReplyTemplateRepository(gormDB)
	numberGen := repository.NewSequenceNumberGenerator(gormDB)

	txMgr := shareddb.NewTransactionManager(gormDB)

	// Work order use cases
	createUC := workorderusecases.NewCreateWorkOrderUseCase(workOrderRepo, taskTypeRepo, categoryRepo, numberGen, log)
	getUC := workorderusecases.NewGetWorkOrderUseCase(workOrderRepo, commentRepo, log)
	listUC := workorderusecases.NewListWorkOrdersUseCase(workOrderRepo, log)
	updateUC := workorderusecases.NewUpdateWorkOrderUseCase(workOrderRepo, log)
	changeStatusUC := workorderusecases.NewChangeStatusUseCase(workOrderRepo, taskTypeRepo, categoryRepo, profileRepo, txMgr, log)
	assignUC := workorderusecases.NewAssignWorkOrderUseCase(workOrderRepo, userRepo, log)
	addCommentUC := workorderusecases.NewAddCommentUseCase(workOrderRepo, commentRepo, log)
	deleteUC := workorderusecases.NewDeleteWorkOrderUseCase(workOrderRepo, log)

	// Gamification and report use cases
	getProfileUC := gamificationusecases.NewGetProfileUseCase(profileRepo, log)
	leaderboardUC := gamificationusecases.NewLeaderboardUseCase(profileRepo, log)
	kpiReportUC := reportusecases.NewKPIReportUseCase(workOrderRepo, profileRepo, log)

	// Mailroom pipeline for the admin run endpoint
	clientFactory := mail.NewClientFactory(cfg.Mailroom, log)
	sender := mail.NewSMTPSender(cfg.Email)
	pipeline := appmailroom.NewService(accountRepo, processedRepo, templateRepo, userRepo, clientFactory, createUC, sender, log)

	geocoder := geocoding.NewNominatimClient(cfg.Geocoding, log)

	// Handlers
	workOrderHandler := workorderhandlers.NewWorkOrderHandler(
		createUC, getUC, listUC, updateUC, changeStatusUC, assignUC, addCommentUC, deleteUC)
	profileHandler := gamificationhandlers.NewProfileHandler(getProfileUC, leaderboardUC)
	reportHandler := reporthandlers.NewReportHandler(kpiReportUC)
	geocodeHandler := geocodehandlers.NewGeocodeHandler(geocoder)
	mailboxHandler := mailboxhandlers.NewMailboxHandler(accountRepo, pipeline)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupWorkOrderRoutes(engine, &routes.WorkOrderRouteConfig{WorkOrderHandler: workOrderHandler})
	routes.SetupGamificationRoutes(engine, &routes.GamificationRouteConfig{ProfileHandler: profileHandler})
	routes.SetupReportRoutes(engine, &routes.ReportRouteConfig{ReportHandler: reportHandler})
	routes.SetupGeocodeRoutes(engine, &routes.GeocodeRouteConfig{GeocodeHandler: geocodeHandler})
	routes.SetupMailboxRoutes(engine, &routes.MailboxRouteConfig{MailboxHandler: mailboxHandler})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine for the server command.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
