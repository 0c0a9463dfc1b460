package model

const (
	RoomChecklistTable = "room_checklist_items"
	AreaChecklistTable = "area_checklist_items"
)

// ChecklistItem dipakai untuk dua tabel: room_checklist_items dan area_checklist_items.
type ChecklistItem struct {
	ItemID   uint   `json:"item_id" gorm:"primaryKey;column:item_id"`
	ItemName string `json:"item_name" gorm:"size:150;not null;unique"`
}
