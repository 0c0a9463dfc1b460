package repository

import "gorm.io/gorm"

// HotelScope membatasi query ke hotel yang boleh dilihat user.
// Admin melihat semua hotel; user lain hanya hotel di user_hotels,
// termasuk ketika HotelID diisi.
type HotelScope struct {
	HotelID uint
	UserID  uint
	Admin   bool
}

func (s HotelScope) apply(db *gorm.DB, column string) *gorm.DB {
	if s.HotelID != 0 {
		db = db.Where(column+" = ?", s.HotelID)
	}
	if !s.Admin {
		db = db.Where(column+" IN (SELECT hotel_id FROM user_hotels WHERE user_id = ?)", s.UserID)
	}
	return db
}

func isMySQL(db *gorm.DB) bool {
	return db.Dialector.Name() == "mysql"
}

// likeOperator: ILIKE di postgres, LIKE di mysql (collation default sudah case-insensitive).
func likeOperator(db *gorm.DB) string {
	if isMySQL(db) {
		return "LIKE"
	}
	return "ILIKE"
}
