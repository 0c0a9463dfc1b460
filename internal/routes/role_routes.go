package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupRoleRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewRoleHandler(repository.NewRoleRepository(d.DB))
	manage := d.perm(model.PermManageSettings)

	app.Get("/api/roles", d.auth(), manage, hdl.GetAll)
	app.Put("/api/roles/:role_name/permissions", d.auth(), manage, hdl.UpdatePermissions)
	app.Get("/api/permissions", d.auth(), manage, hdl.GetPermissions)
}
