package repository

import (
	"context"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type RoomRepository interface {
	ListByHotel(ctx context.Context, hotelID uint) ([]model.Room, error)
	FindByID(ctx context.Context, id uint) (*model.Room, error)
	ExistsInHotel(ctx context.Context, hotelID uint, roomNumber string) (bool, error)
	Create(ctx context.Context, room *model.Room) error
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id uint) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db}
}

func (r *roomRepository) ListByHotel(ctx context.Context, hotelID uint) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).Where("room_id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) ExistsInHotel(ctx context.Context, hotelID uint, roomNumber string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("hotel_id = ? AND room_number = ?", hotelID, roomNumber).
		Count(&n).Error
	return n > 0, err
}

func (r *roomRepository) Create(ctx context.Context, room *model.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) Update(ctx context.Context, room *model.Room) error {
	res := r.db.WithContext(ctx).Model(&model.Room{}).
		Where("room_id = ?", room.RoomID).
		Updates(map[string]interface{}{"room_number": room.RoomNumber, "room_type": room.RoomType})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("room_id = ?", id).Delete(&model.Room{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
