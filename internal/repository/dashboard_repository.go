package repository

import (
	"context"
	"fmt"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	RoomStatuses(ctx context.Context, scope HotelScope) ([]model.RoomStatus, error)
	AreaStatuses(ctx context.Context, scope HotelScope) ([]model.AreaStatus, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

// latestInspectionJoin memilih inspeksi terbaru per (hotel, target). Subquery berkorelasi
// dipakai agar query sama untuk postgres dan mysql.
const latestInspectionJoin = `LEFT JOIN inspections li ON li.inspection_id = (
	SELECT i.inspection_id FROM inspections i
	WHERE i.inspection_type = ? AND i.hotel_id = %[1]s.hotel_id AND i.target_id = %[1]s.%[2]s
	ORDER BY i.inspection_date DESC, i.inspection_id DESC
	LIMIT 1)`

func (r *dashboardRepository) RoomStatuses(ctx context.Context, scope HotelScope) ([]model.RoomStatus, error) {
	q := r.db.WithContext(ctx).Table("rooms AS r").
		Select("r.room_id, r.room_number, r.room_type, h.hotel_name, COALESCE(li.overall_status, ?) AS status", model.StatusNotInspected).
		Joins("JOIN hotels h ON h.hotel_id = r.hotel_id").
		Joins(latestJoin("r", "room_number"), model.InspectionTypeRoom)
	q = scope.apply(q, "r.hotel_id")

	rows := []model.RoomStatus{}
	if err := q.Order("h.hotel_name ASC, r.room_number ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	// Tampilan satu hotel tidak perlu nama hotel
	if scope.HotelID != 0 {
		for i := range rows {
			rows[i].HotelName = ""
		}
	}
	return rows, nil
}

func (r *dashboardRepository) AreaStatuses(ctx context.Context, scope HotelScope) ([]model.AreaStatus, error) {
	q := r.db.WithContext(ctx).Table("areas AS a").
		Select("a.area_id, a.area_name, h.hotel_name, COALESCE(li.overall_status, ?) AS status", model.StatusNotInspected).
		Joins("JOIN hotels h ON h.hotel_id = a.hotel_id").
		Joins(latestJoin("a", "area_name"), model.InspectionTypeArea)
	q = scope.apply(q, "a.hotel_id")

	rows := []model.AreaStatus{}
	if err := q.Order("h.hotel_name ASC, a.area_name ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if scope.HotelID != 0 {
		for i := range rows {
			rows[i].HotelName = ""
		}
	}
	return rows, nil
}

func latestJoin(alias, targetColumn string) string {
	return fmt.Sprintf(latestInspectionJoin, alias, targetColumn)
}
