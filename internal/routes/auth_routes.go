package routes

import (
	"hotel-inspection-backend/internal/handler"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d *Deps) {
	uc := usecase.NewAuthUsecase(repository.NewUserRepository(d.DB), d.Tokens, d.Mailer, d.FrontendURL, d.Log)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
	api.Post("/forgot-password", hdl.ForgotPassword)
	api.Post("/reset-password", hdl.ResetPassword)
	api.Put("/change-password", d.auth(), hdl.ChangePassword)
}
