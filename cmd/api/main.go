package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hotel-inspection-backend/config"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/logger"
	"hotel-inspection-backend/internal/mailer"
	"hotel-inspection-backend/internal/middleware"
	"hotel-inspection-backend/internal/routes"
	"hotel-inspection-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Batas body: 5 foto x 5MB ditambah field form.
const bodyLimit = 30 * 1024 * 1024

func main() {
	// 1. Load .env (opsional) dan konfigurasi
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "konfigurasi tidak valid:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "hotel-inspection-api")
	if err != nil {
		fmt.Fprintln(os.Stderr, "gagal membuat logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Info("file .env tidak ditemukan, menggunakan environment variables sistem")
	}

	// 2. Koneksi ke database
	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Fatal("koneksi database gagal", zap.Error(err))
	}

	store, err := newStorage(cfg.Storage)
	if err != nil {
		log.Fatal("storage tidak dapat disiapkan", zap.Error(err))
	}

	// 3. Siapkan fiber dan middleware global
	app := fiber.New(fiber.Config{
		AppName:      "hotel-inspection-api",
		BodyLimit:    bodyLimit,
		ErrorHandler: middleware.ErrorHandler(log, cfg.IsProduction()),
	})

	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{
		// foto di /uploads dibuka dari frontend yang beda origin
		CrossOriginResourcePolicy: "cross-origin",
	}))
	if len(cfg.CORSOrigins) > 0 {
		app.Use(cors.New(cors.Config{AllowOrigins: strings.Join(cfg.CORSOrigins, ",")}))
	}
	app.Use(fiberlogger.New())

	if local, ok := store.(*storage.Local); ok {
		app.Static(storage.PublicPrefix, local.Root())
	}

	routes.Setup(app, &routes.Deps{
		DB:          db,
		Log:         log,
		Tokens:      auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute),
		Mailer:      mailer.New(cfg.Mail, cfg.IsProduction(), log),
		Storage:     store,
		FrontendURL: cfg.FrontendURL,
	})

	// Frontend statis didaftarkan terakhir agar tidak menutupi /api
	if cfg.FrontendDir != "" {
		app.Static("/", cfg.FrontendDir)
	}

	// 4. Jalankan server
	log.Info("server siap", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server berhenti", zap.Error(err))
	}
}

func newStorage(cfg config.StorageConfig) (storage.Storage, error) {
	if cfg.Driver == "cloudinary" {
		return storage.NewCloudinary(cfg.CloudinaryURL, "hotel-inspection")
	}
	return storage.NewLocal(cfg.UploadDir), nil
}
