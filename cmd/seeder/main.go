package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hotel-inspection-backend/config"
	"hotel-inspection-backend/internal/database"
	"hotel-inspection-backend/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = `Penggunaan:
  seeder                                   isi roles, permissions dan hak akses default
  seeder create-admin <email> <password>   buat pengguna admin
Contoh:
  seeder create-admin admin@hotel.com password123`

func main() {
	// Load .env manual karena ini script terpisah
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "konfigurasi tidak valid:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "hotel-inspection-seeder")
	if err != nil {
		fmt.Fprintln(os.Stderr, "gagal membuat logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	args := os.Args[1:]
	if len(args) > 0 && args[0] != "create-admin" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if len(args) > 0 && len(args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Fatal("koneksi database gagal", zap.Error(err))
	}
	if !cfg.Database.AutoMigrate {
		if err := config.Migrate(db); err != nil {
			log.Fatal("migrasi gagal", zap.Error(err))
		}
	}
	ctx := context.Background()

	if len(args) == 0 {
		log.Info("menjalankan seeding roles dan permissions")
		if err := database.SeedAll(ctx, db); err != nil {
			log.Fatal("seeding gagal", zap.Error(err))
		}
		log.Info("seeding selesai")
		return
	}

	email, password := args[1], args[2]
	log.Info("mendaftarkan pengguna admin", zap.String("email", email))
	user, err := database.CreateAdmin(ctx, db, email, password)
	if err != nil {
		if errors.Is(err, database.ErrEmailTaken) {
			log.Fatal("gagal membuat pengguna: Email sudah terdaftar.", zap.String("email", email))
		}
		log.Fatal("gagal membuat pengguna", zap.Error(err))
	}
	log.Info("pengguna admin berhasil dibuat", zap.Uint("user_id", user.UserID), zap.String("email", user.Email))
}
