package routes

import (
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/mailer"
	"hotel-inspection-backend/internal/middleware"
	"hotel-inspection-backend/internal/repository"
	"hotel-inspection-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps berisi semua dependensi yang dibutuhkan untuk memasang route.
type Deps struct {
	DB          *gorm.DB
	Log         *zap.Logger
	Tokens      *auth.TokenManager
	Mailer      mailer.Mailer
	Storage     storage.Storage
	FrontendURL string
}

func (d *Deps) auth() fiber.Handler {
	return middleware.Auth(d.Tokens)
}

// perm mengecek izin ke tabel role_permissions di setiap request.
func (d *Deps) perm(permissionID string) fiber.Handler {
	return middleware.Permission(repository.NewRoleRepository(d.DB), permissionID)
}

func Setup(app *fiber.App, d *Deps) {
	SetupAuthRoutes(app, d)
	SetupHotelRoutes(app, d)
	SetupRoomRoutes(app, d)
	SetupAreaRoutes(app, d)
	SetupChecklistRoutes(app, d)
	SetupUserRoutes(app, d)
	SetupRoleRoutes(app, d)
	SetupInspectionRoutes(app, d)
	SetupDashboardRoutes(app, d)
	SetupWorkingOrderRoutes(app, d)
	SetupSettingsRoutes(app, d)
}
