package model

// All dipakai oleh AutoMigrate. Urutan mengikuti dependensi foreign key.
func All() []interface{} {
	return []interface{}{
		&Role{},
		&Permission{},
		&RolePermission{},
		&User{},
		&Hotel{},
		&UserHotel{},
		&Room{},
		&Area{},
		&Inspection{},
		&InspectionPhoto{},
		&WorkingOrder{},
		&WorkingOrderPhoto{},
	}
}
