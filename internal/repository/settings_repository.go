package repository

import (
	"context"
	"fmt"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// ResetInspectionData menghapus semua WO dan inspeksi lalu mengembalikan penomoran ke 1.
	// Path foto yang ikut terhapus dikembalikan agar file-nya bisa dibersihkan.
	ResetInspectionData(ctx context.Context) ([]string, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db}
}

// sequenceTables: tabel dan kolom id yang penomorannya direset.
var sequenceTables = []struct {
	table  string
	column string
}{
	{"inspections", "inspection_id"},
	{"working_orders", "wo_id"},
	{"inspection_photos", "photo_id"},
	{"working_order_photos", "wo_photo_id"},
}

func (r *settingsRepository) ResetInspectionData(ctx context.Context) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var woPaths, inspectionPaths []string
		if err := tx.Model(&model.WorkingOrderPhoto{}).Pluck("file_path", &woPaths).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.InspectionPhoto{}).Pluck("file_path", &inspectionPaths).Error; err != nil {
			return err
		}
		paths = append(woPaths, inspectionPaths...)

		// Hapus data yang bergantung terlebih dahulu
		for _, table := range []string{"working_order_photos", "working_orders", "inspection_photos", "inspections"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}

		for _, seq := range sequenceTables {
			if err := tx.Exec(resetSequenceSQL(tx, seq.table, seq.column)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func resetSequenceSQL(db *gorm.DB, table, column string) string {
	if isMySQL(db) {
		return fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table)
	}
	return fmt.Sprintf("ALTER SEQUENCE %s_%s_seq RESTART WITH 1", table, column)
}
