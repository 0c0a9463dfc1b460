package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/middleware"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewUserHandler(repository.NewUserRepository(d.DB))
	manage := d.perm(model.PermManageSettings)

	api := app.Group("/api/users", d.auth())
	// assignable harus didaftarkan sebelum /:id
	api.Get("/assignable", middleware.Role(model.RoleAdmin, model.RoleInspector), hdl.GetAssignable)
	api.Get("/", manage, hdl.GetAll)
	api.Post("/", manage, hdl.Create)
	api.Put("/:id", manage, hdl.Update)
	api.Delete("/:id", manage, hdl.Delete)
	api.Get("/:id/hotels", manage, hdl.GetHotels)
	api.Put("/:id/hotels", manage, hdl.UpdateHotels)
}
