package database

import (
	"context"
	"errors"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrEmailTaken = errors.New("Email sudah terdaftar.")

var defaultRoles = []model.Role{
	{RoleName: model.RoleAdmin, DisplayName: "Administrator", Description: "Akses penuh ke semua fitur."},
	{RoleName: model.RoleInspector, DisplayName: "Inspector", Description: "Melakukan inspeksi dan membuat Working Order."},
	{RoleName: model.RoleTeknisi, DisplayName: "Teknisi", Description: "Mengerjakan Working Order yang ditugaskan."},
}

var defaultPermissions = []model.Permission{
	{PermissionID: model.PermManageSettings, Description: "Mengelola hotel, kamar, area, checklist, pengguna dan peran."},
	{PermissionID: model.PermPerformInspection, Description: "Membuat laporan inspeksi kamar dan area."},
	{PermissionID: model.PermManageWO, Description: "Membuat, mengubah dan menghapus semua Working Order."},
	{PermissionID: model.PermUpdateOwnWO, Description: "Memperbarui Working Order yang ditugaskan ke diri sendiri."},
}

// Admin tidak perlu baris di sini karena selalu lolos cek izin.
var defaultGrants = []model.RolePermission{
	{RoleName: model.RoleInspector, PermissionID: model.PermPerformInspection},
	{RoleName: model.RoleInspector, PermissionID: model.PermManageWO},
	{RoleName: model.RoleTeknisi, PermissionID: model.PermUpdateOwnWO},
}

// SeedAll mengisi roles, permissions dan hak akses default. Aman dijalankan berulang kali.
func SeedAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Seed Roles
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultRoles).Error; err != nil {
			return err
		}

		// 2. Seed Permissions
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultPermissions).Error; err != nil {
			return err
		}

		// 3. Seed hak akses default
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaultGrants).Error
	})
}

// CreateAdmin membuat user admin dengan username = email.
func CreateAdmin(ctx context.Context, db *gorm.DB, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{Username: email, Email: email, PasswordHash: hash, Role: model.RoleAdmin}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		if apperror.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}
