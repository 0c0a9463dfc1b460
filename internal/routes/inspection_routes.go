package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupInspectionRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewInspectionHandler(
		repository.NewInspectionRepository(d.DB),
		repository.NewRoomRepository(d.DB),
		repository.NewAreaRepository(d.DB),
		d.Storage,
		d.Log,
	)

	api := app.Group("/api/inspections", d.auth())
	api.Get("/recent", hdl.Recent)
	api.Get("/", hdl.GetAll)
	api.Post("/room", d.perm(model.PermPerformInspection), hdl.CreateRoom)
	api.Post("/area", d.perm(model.PermPerformInspection), hdl.CreateArea)
	api.Put("/:id/status", hdl.UpdateStatus)
	api.Delete("/:id", d.perm(model.PermManageSettings), hdl.Delete)
}
