package repository

import (
	"context"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	// HasPermission membaca role_permissions langsung, tanpa cache.
	HasPermission(ctx context.Context, role, permissionID string) (bool, error)
	ListWithPermissions(ctx context.Context) ([]model.RoleWithPermissions, error)
	ListPermissions(ctx context.Context) ([]model.Permission, error)
	ReplacePermissions(ctx context.Context, roleName string, permissionIDs []string) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

func (r *roleRepository) HasPermission(ctx context.Context, role, permissionID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.RolePermission{}).
		Where("role_name = ? AND permission_id = ?", role, permissionID).
		Count(&n).Error
	return n > 0, err
}

func (r *roleRepository) ListWithPermissions(ctx context.Context) ([]model.RoleWithPermissions, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("role_name ASC").Find(&roles).Error; err != nil {
		return nil, err
	}

	var grants []model.RolePermission
	if err := r.db.WithContext(ctx).Order("role_name ASC, permission_id ASC").Find(&grants).Error; err != nil {
		return nil, err
	}
	byRole := make(map[string][]string)
	for _, g := range grants {
		byRole[g.RoleName] = append(byRole[g.RoleName], g.PermissionID)
	}

	out := make([]model.RoleWithPermissions, 0, len(roles))
	for _, role := range roles {
		perms := byRole[role.RoleName]
		if perms == nil {
			perms = []string{}
		}
		out = append(out, model.RoleWithPermissions{
			RoleName:    role.RoleName,
			DisplayName: role.DisplayName,
			Description: role.Description,
			Permissions: perms,
		})
	}
	return out, nil
}

func (r *roleRepository) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.WithContext(ctx).Order("permission_id ASC").Find(&perms).Error
	return perms, err
}

func (r *roleRepository) ReplacePermissions(ctx context.Context, roleName string, permissionIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Role{}).Where("role_name = ?", roleName).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}

		// 1. Hapus semua izin lama
		if err := tx.Where("role_name = ?", roleName).Delete(&model.RolePermission{}).Error; err != nil {
			return err
		}
		if len(permissionIDs) == 0 {
			return nil
		}

		// 2. Masukkan izin baru
		rows := make([]model.RolePermission, 0, len(permissionIDs))
		seen := make(map[string]bool, len(permissionIDs))
		for _, p := range permissionIDs {
			if seen[p] {
				continue
			}
			seen[p] = true
			rows = append(rows, model.RolePermission{RoleName: roleName, PermissionID: p})
		}
		return tx.Create(&rows).Error
	})
}
