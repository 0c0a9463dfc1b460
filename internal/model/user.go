package model

import "time"

const (
	RoleAdmin     = "admin"
	RoleInspector = "inspector"
	RoleTeknisi   = "teknisi"
)

type User struct {
	UserID               uint       `json:"user_id" gorm:"primaryKey;column:user_id"`
	Username             string     `json:"username" gorm:"size:150;unique;not null"`
	Email                string     `json:"email" gorm:"size:150;unique;not null"`
	PasswordHash         string     `json:"-" gorm:"not null"`
	Role                 string     `json:"role" gorm:"size:50;not null;default:inspector"`
	PasswordResetToken   *string    `json:"-" gorm:"size:64;index"`
	PasswordResetExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"-"`
}

// UserHotel adalah penugasan hotel untuk user non-admin.
type UserHotel struct {
	UserID  uint   `json:"user_id" gorm:"primaryKey;column:user_id;autoIncrement:false"`
	HotelID uint   `json:"hotel_id" gorm:"primaryKey;column:hotel_id;autoIncrement:false"`
	User    *User  `json:"-" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
	Hotel   *Hotel `json:"-" gorm:"foreignKey:HotelID;references:HotelID;constraint:OnDelete:RESTRICT"`
}

// UserWithHotels dipakai di halaman manajemen user.
type UserWithHotels struct {
	UserID         uint     `json:"user_id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	AssignedHotels []string `json:"assigned_hotels"`
}

type AssignableUser struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
