package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupWorkingOrderRoutes(app *fiber.App, d *Deps) {
	hdl := handler.NewWorkingOrderHandler(
		repository.NewWorkingOrderRepository(d.DB),
		repository.NewRoleRepository(d.DB),
		d.Storage,
		d.Log,
	)

	api := app.Group("/api/working-orders", d.auth())
	api.Get("/", hdl.GetAll)
	api.Get("/recent", hdl.Recent)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", d.perm(model.PermManageWO), hdl.Create)
	// Update dan foto memakai cek izin manual di handler (manage_wo atau WO milik sendiri)
	api.Put("/:id", hdl.Update)
	api.Delete("/photos/:photo_id", hdl.DeletePhoto)
	api.Delete("/:id", d.perm(model.PermManageWO), hdl.Delete)
	api.Post("/:id/photos", hdl.UploadPhotos)
}
