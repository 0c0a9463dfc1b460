package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// SetupChecklistRoutes memasang dua set route yang sama untuk checklist kamar dan area.
func SetupChecklistRoutes(app *fiber.App, d *Deps) {
	tables := map[string]string{
		"/api/room-checklist-items": model.RoomChecklistTable,
		"/api/area-checklist-items": model.AreaChecklistTable,
	}
	for prefix, table := range tables {
		hdl := handler.NewChecklistHandler(repository.NewChecklistRepository(d.DB, table))

		api := app.Group(prefix, d.auth())
		api.Get("/", hdl.GetAll)
		api.Post("/", d.perm(model.PermManageSettings), hdl.Create)
		api.Put("/:id", d.perm(model.PermManageSettings), hdl.Update)
		api.Delete("/:id", d.perm(model.PermManageSettings), hdl.Delete)
	}
}
