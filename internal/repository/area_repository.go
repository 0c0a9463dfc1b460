package repository

import (
	"context"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type AreaRepository interface {
	ListByHotel(ctx context.Context, hotelID uint) ([]model.Area, error)
	FindByID(ctx context.Context, id uint) (*model.Area, error)
	ExistsInHotel(ctx context.Context, hotelID uint, areaName string) (bool, error)
	Create(ctx context.Context, area *model.Area) error
	Update(ctx context.Context, area *model.Area) error
	Delete(ctx context.Context, id uint) error
}

type areaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db}
}

func (r *areaRepository) ListByHotel(ctx context.Context, hotelID uint) ([]model.Area, error) {
	var areas []model.Area
	err := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("area_name ASC").Find(&areas).Error
	return areas, err
}

func (r *areaRepository) FindByID(ctx context.Context, id uint) (*model.Area, error) {
	var area model.Area
	if err := r.db.WithContext(ctx).Where("area_id = ?", id).First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *areaRepository) ExistsInHotel(ctx context.Context, hotelID uint, areaName string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Area{}).
		Where("hotel_id = ? AND area_name = ?", hotelID, areaName).
		Count(&n).Error
	return n > 0, err
}

func (r *areaRepository) Create(ctx context.Context, area *model.Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}

func (r *areaRepository) Update(ctx context.Context, area *model.Area) error {
	res := r.db.WithContext(ctx).Model(&model.Area{}).
		Where("area_id = ?", area.AreaID).
		Update("area_name", area.AreaName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *areaRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("area_id = ?", id).Delete(&model.Area{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
