package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"lendapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers stay
// thin; all business logic lives in the services. The Swagger UI route is
// registered in main because it needs the request host.
func RegisterRoutes(app *fiber.App, db *sql.DB, appSvc service.ApplicationService, chatSvc service.ChatService, attSvc service.AttachmentService) {
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/swagger/index.html", fiber.StatusMovedPermanently)
	})

	// Health: readiness checks DB connectivity, liveness does not
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/", Root())
	api.Post("/seed", SeedApplications(appSvc))

	api.Get("/applications", ListApplications(appSvc))
	api.Get("/applications/:id", GetApplication(appSvc))
	api.Put("/applications/:id/review-status", UpdateReviewStatus(appSvc))

	api.Post("/chat", Chat(chatSvc))
	api.Get("/chat/:session_id/history", ChatHistory(chatSvc))

	api.Post("/applications/:id/attachments", UploadAttachment(attSvc))
	api.Get("/applications/:id/attachments", ListAttachments(attSvc))
	api.Get("/attachments/:id/download", DownloadAttachment(attSvc))
	api.Delete("/attachments/:id", DeleteAttachment(attSvc))
}
