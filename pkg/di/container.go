package di

import (
	"fmt"

	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"github.com/malikdawood-collab/collaborative-task-manager/application/serviceimpl"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
	"github.com/malikdawood-collab/collaborative-task-manager/infrastructure/postgres"
	redispkg "github.com/malikdawood-collab/collaborative-task-manager/infrastructure/redis"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/config"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *redispkg.Client
	SessionStore *session.Store

	// Repositories
	UserRepository    repositories.UserRepository
	ProjectRepository repositories.ProjectRepository
	TaskRepository    repositories.TaskRepository
	TagRepository     repositories.TagRepository

	// Services
	UserService    services.UserService
	ProjectService services.ProjectService
	TaskService    services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	logger.Info("Container initialized")

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database connected and migrated")

	sessionConfig := session.Config{
		KeyLookup:      "cookie:" + c.Config.Session.CookieName,
		Expiration:     c.Config.Session.Expiration,
		CookieHTTPOnly: true,
		CookieSecure:   c.Config.Session.CookieSecure,
		CookieSameSite: "Lax",
	}

	// Redis is optional: without it sessions fall back to fiber's in-memory
	// store, which does not survive restarts.
	redisClient, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory session store", "error", err)
	} else {
		c.RedisClient = redisClient
		sessionConfig.Storage = redispkg.NewSessionStorage(redisClient)
	}

	c.SessionStore = session.New(sessionConfig)

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.ProjectRepository = postgres.NewProjectRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.TagRepository = postgres.NewTagRepository(c.DB)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.TaskRepository)
	c.ProjectService = serviceimpl.NewProjectService(c.ProjectRepository, c.UserRepository, c.TaskRepository, c.TagRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.UserRepository, c.ProjectRepository, c.TagRepository)
}

// GetHandlerServices exposes the service bundle for the handler layer.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:    c.UserService,
		ProjectService: c.ProjectService,
		TaskService:    c.TaskService,
		SessionStore:   c.SessionStore,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// Cleanup releases infrastructure connections.
func (c *Container) Cleanup() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Error("Failed to close database connection", "error", err)
			}
		}
	}

	logger.Info("Container cleanup complete")
}
