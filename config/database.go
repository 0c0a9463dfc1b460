package config

import (
	"fmt"
	"time"

	"hotel-inspection-backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB membuka pool koneksi sesuai DB_DRIVER dan (opsional) menjalankan AutoMigrate.
func ConnectDB(cfg DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	// 1. Logger gorm diarahkan ke zap
	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke database: %w", err)
	}

	// 2. Pengaturan pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database tidak merespon: %w", err)
	}

	// 3. Auto Migration
	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	log.Info("koneksi database berhasil", zap.String("driver", cfg.Driver), zap.String("database", cfg.Name))
	return db, nil
}

// Migrate membuat/menyesuaikan semua tabel.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate gagal: %w", err)
	}
	// Dua tabel checklist memakai struct yang sama
	for _, table := range []string{model.RoomChecklistTable, model.AreaChecklistTable} {
		if err := db.Table(table).AutoMigrate(&model.ChecklistItem{}); err != nil {
			return fmt.Errorf("auto migrate %s gagal: %w", table, err)
		}
	}
	return nil
}
