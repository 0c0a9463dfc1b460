package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewDashboardHandler(repository.NewDashboardRepository(d.DB))

	api := app.Group("/api/dashboard", d.auth())
	api.Get("/rooms", hdl.Rooms)
	api.Get("/areas", hdl.Areas)
}
