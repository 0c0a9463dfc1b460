package repository

import (
	"context"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type ChecklistRepository interface {
	List(ctx context.Context) ([]model.ChecklistItem, error)
	Create(ctx context.Context, item *model.ChecklistItem) error
	Update(ctx context.Context, item *model.ChecklistItem) error
	Delete(ctx context.Context, id uint) error
}

// checklistRepository dipakai untuk room_checklist_items dan area_checklist_items.
type checklistRepository struct {
	db    *gorm.DB
	table string
}

func NewChecklistRepository(db *gorm.DB, table string) ChecklistRepository {
	return &checklistRepository{db: db, table: table}
}

func (r *checklistRepository) List(ctx context.Context) ([]model.ChecklistItem, error) {
	var items []model.ChecklistItem
	err := r.db.WithContext(ctx).Table(r.table).Order("item_id ASC").Find(&items).Error
	return items, err
}

func (r *checklistRepository) Create(ctx context.Context, item *model.ChecklistItem) error {
	return r.db.WithContext(ctx).Table(r.table).Create(item).Error
}

func (r *checklistRepository) Update(ctx context.Context, item *model.ChecklistItem) error {
	res := r.db.WithContext(ctx).Table(r.table).Where("item_id = ?", item.ItemID).Update("item_name", item.ItemName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *checklistRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Table(r.table).Where("item_id = ?", id).Delete(&model.ChecklistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
