package rbac

import (
	"context"

	"hotel-inspection-backend/internal/model"
)

// Checker menjawab apakah sebuah role memiliki permission tertentu.
// Implementasinya membaca tabel role_permissions setiap kali dipanggil.
type Checker interface {
	HasPermission(ctx context.Context, role, permissionID string) (bool, error)
}

// Allowed: admin selalu lolos tanpa cek database.
func Allowed(ctx context.Context, checker Checker, role, permissionID string) (bool, error) {
	if role == model.RoleAdmin {
		return true, nil
	}
	return checker.HasPermission(ctx, role, permissionID)
}

// CanModifyWorkOrder: manage_wo boleh semua WO, update_own_wo hanya WO yang ditugaskan ke dirinya.
func CanModifyWorkOrder(ctx context.Context, checker Checker, role string, userID uint, assigneeID *uint) (bool, error) {
	canManage, err := Allowed(ctx, checker, role, model.PermManageWO)
	if err != nil || canManage {
		return canManage, err
	}
	if assigneeID == nil || *assigneeID != userID {
		return false, nil
	}
	return Allowed(ctx, checker, role, model.PermUpdateOwnWO)
}

// ReassignForbidden bernilai true jika teknisi mencoba mengganti penanggung jawab WO.
// requested nil berarti tidak mengubah penugasan.
func ReassignForbidden(role string, current, requested *uint) bool {
	if role != model.RoleTeknisi || requested == nil {
		return false
	}
	return current == nil || *current != *requested
}
