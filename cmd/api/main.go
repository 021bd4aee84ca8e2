package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/middleware"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/routes"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/di"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.GetConfig().App.Name,
	})

	// Middleware order matters: request IDs before logging
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(container.GetConfig().CORS))

	h := handlers.NewHandlers(container.GetHandlerServices())

	routes.SetupRoutes(app, h, container.SessionStore)

	port := container.GetConfig().App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.GetConfig().App.Env,
		"app", container.GetConfig().App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		container.Cleanup()

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
