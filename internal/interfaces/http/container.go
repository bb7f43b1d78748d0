package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	backupUsecases "helpdesk/internal/application/backup/usecases"
	chatUsecases "helpdesk/internal/application/chat/usecases"
	notificationUsecases "helpdesk/internal/application/notification/usecases"
	reportUsecases "helpdesk/internal/application/report/usecases"
	settingUsecases "helpdesk/internal/application/setting/usecases"
	ticketUsecases "helpdesk/internal/application/ticket/usecases"
	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	backupInfra "helpdesk/internal/infrastructure/backup"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/infrastructure/watermark"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers and middleware together
// and owns the resulting gin engine. It also holds the handles that need
// explicit release on shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// Repositories
	userRepo     *repository.UserRepository
	ticketRepo   *repository.TicketRepository
	historyRepo  *repository.TicketHistoryRepository
	statsRepo    *repository.TicketStatsRepository
	chatRepo     *repository.ChatMessageRepository
	settingsRepo *repository.SystemSettingsRepository

	// Infrastructure services
	hasher     *auth.BcryptPasswordHasher
	jwtService *auth.JWTService
	enforcer   *permission.Enforcer
	store      *storage.LocalStore
	snapshots  *backupInfra.FileSnapshotService
	watermarks notificationUsecases.WatermarkStore
	redisStore *watermark.RedisStore
	mailer     ticketUsecases.Mailer
	txMgr      *db.TransactionManager
	markdown   markdown.Service

	// Middleware
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware

	// Handlers
	authHandler         *handlers.AuthHandler
	ticketHandler       *handlers.TicketHandler
	notificationHandler *handlers.NotificationHandler
	chatHandler         *handlers.ChatHandler
	reportHandler       *handlers.ReportHandler
	userHandler         *handlers.UserHandler
	settingHandler      *handlers.SettingHandler
	backupHandler       *handlers.BackupHandler
	uploadHandler       *handlers.UploadHandler
}

// NewContainer builds the full dependency graph. The database connection is
// owned by the caller.
func NewContainer(gormDB *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:  gormDB,
		cfg: cfg,
		log: log,
	}

	if err := handlers.RegisterCustomValidators(); err != nil {
		return nil, err
	}

	c.buildRepositories()
	if err := c.buildInfrastructure(); err != nil {
		return nil, err
	}
	c.buildMiddleware()
	c.buildHandlers()
	c.engine = c.setupRouter()

	return c, nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections held by the container.
func (c *Container) Shutdown() {
	if c.redisStore != nil {
		if err := c.redisStore.Close(); err != nil {
			c.log.Warnw("failed to close watermark store", "error", err)
		}
	}
}

func (c *Container) buildRepositories() {
	c.userRepo = repository.NewUserRepository(c.db)
	c.ticketRepo = repository.NewTicketRepository(c.db)
	c.historyRepo = repository.NewTicketHistoryRepository(c.db)
	c.statsRepo = repository.NewTicketStatsRepository(c.db)
	c.chatRepo = repository.NewChatMessageRepository(c.db)
	c.settingsRepo = repository.NewSystemSettingsRepository(c.db)
}

func (c *Container) buildInfrastructure() error {
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.BcryptCost)
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWTSecret, c.cfg.Auth.AccessExpMinutes)
	c.txMgr = db.NewTransactionManager(c.db)
	c.markdown = markdown.NewService()

	enforcer, err := permission.NewEnforcer(c.db, c.cfg.Permission.ModelPath, c.log)
	if err != nil {
		return err
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return err
	}
	c.enforcer = enforcer

	store, err := storage.NewLocalStore(c.cfg.Storage.UploadDir)
	if err != nil {
		return err
	}
	c.store = store

	snapshots, err := backupInfra.NewFileSnapshotService(c.db, c.cfg.Database.Path, c.cfg.Storage.BackupDir)
	if err != nil {
		return err
	}
	c.snapshots = snapshots

	if c.cfg.Redis.Enabled() {
		c.redisStore = watermark.NewRedisStore(&c.cfg.Redis)
		c.watermarks = c.redisStore
	} else {
		c.watermarks = watermark.NewMemoryStore()
	}

	if c.cfg.Email.Enabled() {
		c.mailer = email.NewSMTPMailer(&c.cfg.Email)
	}

	return nil
}

func (c *Container) buildMiddleware() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.userRepo, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)
}

func (c *Container) buildHandlers() {
	loginUC := userUsecases.NewLoginUseCase(c.userRepo, c.hasher, c.jwtService, c.log)
	c.authHandler = handlers.NewAuthHandler(loginUC, c.jwtService, c.log)

	c.ticketHandler = handlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(c.ticketRepo, c.historyRepo, c.userRepo, c.txMgr, c.mailer, c.log),
		ticketUsecases.NewUpdateTicketUseCase(c.ticketRepo, c.historyRepo, c.userRepo, c.txMgr, c.log),
		ticketUsecases.NewChangeStatusUseCase(c.ticketRepo, c.historyRepo, c.txMgr, c.log),
		ticketUsecases.NewAddCommentUseCase(c.ticketRepo, c.log),
		ticketUsecases.NewGetTicketUseCase(c.ticketRepo, c.historyRepo, c.userRepo, c.markdown, c.log),
		ticketUsecases.NewListTicketsUseCase(c.ticketRepo, c.userRepo, c.log),
		ticketUsecases.NewDeleteTicketUseCase(c.ticketRepo, c.txMgr, c.log),
		c.log,
	)

	pollUC := notificationUsecases.NewPollUpdatesUseCase(c.ticketRepo, c.watermarks, c.log)
	c.notificationHandler = handlers.NewNotificationHandler(pollUC, c.log)

	c.chatHandler = handlers.NewChatHandler(
		chatUsecases.NewSendMessageUseCase(c.chatRepo, c.userRepo, c.log),
		chatUsecases.NewListConversationsUseCase(c.chatRepo, c.userRepo, c.log),
		chatUsecases.NewGetThreadUseCase(c.chatRepo, c.userRepo, c.log),
		chatUsecases.NewMarkThreadReadUseCase(c.chatRepo, c.log),
		chatUsecases.NewUnreadSendersUseCase(c.chatRepo, c.log),
		c.log,
	)

	reportsUC := reportUsecases.NewGetReportsUseCase(c.statsRepo, c.log)
	c.reportHandler = handlers.NewReportHandler(reportsUC, c.log)

	c.userHandler = handlers.NewUserHandler(
		userUsecases.NewRegisterUserUseCase(c.userRepo, c.hasher, c.log),
		userUsecases.NewListUsersUseCase(c.userRepo, c.log),
		userUsecases.NewResetPasswordUseCase(c.userRepo, c.hasher, c.log),
		userUsecases.NewToggleActiveUseCase(c.userRepo, c.log),
		userUsecases.NewDeleteUserUseCase(c.userRepo, c.log),
		userUsecases.NewListAssignableUseCase(c.userRepo, c.log),
		c.log,
	)

	c.settingHandler = handlers.NewSettingHandler(
		settingUsecases.NewGetSettingsUseCase(c.settingsRepo, c.log),
		settingUsecases.NewUpdateSettingsUseCase(c.settingsRepo, c.log),
		c.store,
		c.log,
	)

	c.backupHandler = handlers.NewBackupHandler(
		backupUsecases.NewCreateBackupUseCase(c.snapshots, c.cfg.Database.IsFileBacked(), c.log),
		backupUsecases.NewListBackupsUseCase(c.snapshots, c.log),
		backupUsecases.NewDeleteBackupUseCase(c.snapshots, c.log),
		c.snapshots,
		c.log,
	)

	c.uploadHandler = handlers.NewUploadHandler(c.store, c.log)
}
