package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewSettingsHandler(repository.NewSettingsRepository(d.DB), d.Storage, d.Log)

	app.Post("/api/settings/reset-sequences", d.auth(), d.perm(model.PermManageSettings), hdl.ResetSequences)
}
