package model

const (
	PermManageSettings    = "manage_settings"
	PermPerformInspection = "perform_inspection"
	PermManageWO          = "manage_wo"
	PermUpdateOwnWO       = "update_own_wo"
)

type Role struct {
	RoleName    string `json:"role_name" gorm:"primaryKey;size:50"`
	DisplayName string `json:"display_name" gorm:"size:100"`
	Description string `json:"description"`
}

type Permission struct {
	PermissionID string `json:"permission_id" gorm:"primaryKey;size:50"`
	Description  string `json:"description"`
}

type RolePermission struct {
	RoleName     string      `gorm:"primaryKey;size:50"`
	PermissionID string      `gorm:"primaryKey;size:50"`
	Role         *Role       `gorm:"foreignKey:RoleName;references:RoleName;constraint:OnDelete:CASCADE"`
	Permission   *Permission `gorm:"foreignKey:PermissionID;references:PermissionID;constraint:OnDelete:CASCADE"`
}

type RoleWithPermissions struct {
	RoleName    string   `json:"role_name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}
