package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	user := api.Group("/user", handler.AuthRequired)
	user.Get("", handler.GetUser)
	user.Patch("", handler.UpdateUser)
	user.Patch("/password", handler.ChangePassword)

	entries := api.Group("/time-entries", handler.AuthRequired)
	entries.Get("", handler.ListAllEntries)
	entries.Get("/:year<int>/:month<int>", handler.ListMonthEntries)
	entries.Get("/:id<int>", handler.GetEntry)
	entries.Post("", handler.CreateEntry)
	entries.Patch("/:id<int>", handler.UpdateEntry)
	entries.Delete("/:id<int>", handler.DeleteEntry)

	reports := api.Group("/monthly-reports", handler.AuthRequired)
	reports.Get("", handler.ListReports)
	reports.Get("/:year<int>/:month<int>", handler.GetMonthlyReport)
	reports.Patch("/:id<int>", handler.AdjustReport)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/:year<int>/:month<int>", handler.GetMonthStats)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/:year<int>/:month<int>/csv", handler.ExportCSV)
	export.Get("/:year<int>/:month<int>/json", handler.ExportJSON)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
