package routes

import (
	"time"

	"admin-api/internal/handlers"
	"admin-api/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

func SetupRoutes(app *fiber.App, st *store.Store) {
	// API routes group
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "admin-api",
			"timestamp": time.Now().UTC(),
		})
	})

	// User routes
	userHandler := handlers.NewUserHandler(st)

	users := v1.Group("/users")
	users.Post("/", userHandler.CreateUser)
	users.Get("/", userHandler.GetUsers)
	users.Get("/lookup", userHandler.LookupUser)
	users.Get("/:id", userHandler.GetUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	// File routes, with nested comment routes
	fileHandler := handlers.NewFileHandler(st)
	commentHandler := handlers.NewCommentHandler(st)

	files := v1.Group("/files")
	files.Post("/", fileHandler.UploadFile)
	files.Get("/", fileHandler.GetFiles)
	files.Get("/:id", fileHandler.GetFile)
	files.Get("/:id/download", fileHandler.DownloadFile)
	files.Put("/:id", fileHandler.UpdateFile)
	files.Delete("/:id", fileHandler.DeleteFile)
	files.Post("/:id/comments", commentHandler.CreateComment)
	files.Get("/:id/comments", commentHandler.GetFileComments)

	// Comment routes
	comments := v1.Group("/comments")
	comments.Get("/:id", commentHandler.GetComment)
	comments.Put("/:id", commentHandler.UpdateComment)
	comments.Delete("/:id", commentHandler.DeleteComment)

	// Settings routes
	settingHandler := handlers.NewSettingHandler(st)

	settings := v1.Group("/settings")
	settings.Get("/", settingHandler.GetSettings)
	settings.Get("/:key", settingHandler.GetSetting)
	settings.Put("/:key", settingHandler.UpdateSetting)

	// Activity log routes
	activityLogHandler := handlers.NewActivityLogHandler(st)

	v1.Get("/activity-logs", activityLogHandler.GetActivityLogs)
}
