package model

type Hotel struct {
	HotelID   uint   `json:"hotel_id" gorm:"primaryKey;column:hotel_id"`
	HotelName string `json:"hotel_name" gorm:"size:150;unique;not null"`
	Address   string `json:"address"`
}

type Room struct {
	RoomID     uint   `json:"room_id" gorm:"primaryKey;column:room_id"`
	RoomNumber string `json:"room_number" gorm:"size:50;not null;uniqueIndex:idx_rooms_hotel_number"`
	RoomType   string `json:"room_type" gorm:"size:50;default:Standard"`
	HotelID    uint   `json:"hotel_id" gorm:"not null;uniqueIndex:idx_rooms_hotel_number"`
	Hotel      *Hotel `json:"-" gorm:"foreignKey:HotelID;references:HotelID;constraint:OnDelete:RESTRICT"`
}

type Area struct {
	AreaID   uint   `json:"area_id" gorm:"primaryKey;column:area_id"`
	AreaName string `json:"area_name" gorm:"size:100;not null;uniqueIndex:idx_areas_hotel_name"`
	HotelID  uint   `json:"hotel_id" gorm:"not null;uniqueIndex:idx_areas_hotel_name"`
	Hotel    *Hotel `json:"-" gorm:"foreignKey:HotelID;references:HotelID;constraint:OnDelete:RESTRICT"`
}

// RoomStatus dan AreaStatus adalah baris dashboard: status inspeksi terakhir per kamar/area.
type RoomStatus struct {
	RoomID     uint   `json:"room_id"`
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	HotelName  string `json:"hotel_name,omitempty"`
	Status     string `json:"status"`
}

type AreaStatus struct {
	AreaID    uint   `json:"area_id"`
	AreaName  string `json:"area_name"`
	HotelName string `json:"hotel_name,omitempty"`
	Status    string `json:"status"`
}
