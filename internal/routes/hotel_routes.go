package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupHotelRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewHotelHandler(repository.NewHotelRepository(d.DB))

	api := app.Group("/api/hotels", d.auth())
	api.Get("/", hdl.GetAll)
	api.Post("/", d.perm(model.PermManageSettings), hdl.Create)
	api.Put("/:id", d.perm(model.PermManageSettings), hdl.Update)
	api.Delete("/:id", d.perm(model.PermManageSettings), hdl.Delete)
}

func SetupRoomRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewRoomHandler(repository.NewRoomRepository(d.DB), repository.NewInspectionRepository(d.DB))

	api := app.Group("/api/rooms", d.auth())
	api.Get("/", hdl.GetAll)
	api.Post("/", d.perm(model.PermManageSettings), hdl.Create)
	api.Put("/:id", d.perm(model.PermManageSettings), hdl.Update)
	api.Delete("/:id", d.perm(model.PermManageSettings), hdl.Delete)
}

func SetupAreaRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewAreaHandler(repository.NewAreaRepository(d.DB), repository.NewInspectionRepository(d.DB))

	api := app.Group("/api/areas", d.auth())
	api.Get("/", hdl.GetAll)
	api.Post("/", d.perm(model.PermManageSettings), hdl.Create)
	api.Put("/:id", d.perm(model.PermManageSettings), hdl.Update)
	api.Delete("/:id", d.perm(model.PermManageSettings), hdl.Delete)
}
