package repository

import (
	"context"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

// HotelDependency adalah data lain yang masih memakai sebuah hotel.
type HotelDependency string

const (
	HotelHasInspections HotelDependency = "inspections"
	HotelHasRooms       HotelDependency = "rooms"
	HotelHasAreas       HotelDependency = "areas"
	HotelHasUsers       HotelDependency = "user_hotels"
)

type HotelRepository interface {
	List(ctx context.Context, scope HotelScope) ([]model.Hotel, error)
	Create(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, hotel *model.Hotel) error
	// FindDependency mengembalikan dependensi pertama yang ditemukan, atau "" jika aman dihapus.
	FindDependency(ctx context.Context, id uint) (HotelDependency, error)
	Delete(ctx context.Context, id uint) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db}
}

func (r *hotelRepository) List(ctx context.Context, scope HotelScope) ([]model.Hotel, error) {
	var hotels []model.Hotel
	q := r.db.WithContext(ctx).Model(&model.Hotel{})
	if !scope.Admin {
		q = q.Joins("JOIN user_hotels uh ON uh.hotel_id = hotels.hotel_id").Where("uh.user_id = ?", scope.UserID)
	}
	err := q.Order("hotels.hotel_name ASC").Find(&hotels).Error
	return hotels, err
}

func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) Update(ctx context.Context, hotel *model.Hotel) error {
	res := r.db.WithContext(ctx).Model(&model.Hotel{}).
		Where("hotel_id = ?", hotel.HotelID).
		Updates(map[string]interface{}{"hotel_name": hotel.HotelName, "address": hotel.Address})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *hotelRepository) FindDependency(ctx context.Context, id uint) (HotelDependency, error) {
	// Urutan pengecekan menentukan pesan yang diterima user
	checks := []struct {
		dep   HotelDependency
		model interface{}
	}{
		{HotelHasInspections, &model.Inspection{}},
		{HotelHasRooms, &model.Room{}},
		{HotelHasAreas, &model.Area{}},
		{HotelHasUsers, &model.UserHotel{}},
	}
	for _, c := range checks {
		var n int64
		if err := r.db.WithContext(ctx).Model(c.model).Where("hotel_id = ?", id).Count(&n).Error; err != nil {
			return "", err
		}
		if n > 0 {
			return c.dep, nil
		}
	}
	return "", nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("hotel_id = ?", id).Delete(&model.Hotel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
