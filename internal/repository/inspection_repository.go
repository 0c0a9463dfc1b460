package repository

import (
	"context"
	"sort"
	"time"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type InspectionFilter struct {
	Scope      HotelScope
	Status     string
	RoomStatus string
	StartDate  *time.Time
	// EndDate inklusif: semua inspeksi pada tanggal tersebut ikut.
	EndDate *time.Time
}

type InspectionRepository interface {
	List(ctx context.Context, filter InspectionFilter) ([]model.InspectionDetail, error)
	Recent(ctx context.Context, scope HotelScope, limit int) ([]model.InspectionEvent, error)
	// Create menyimpan inspeksi beserta path foto dalam satu transaksi.
	Create(ctx context.Context, inspection *model.Inspection, photoPaths []string) error
	TargetInUse(ctx context.Context, inspectionType string, hotelID uint, targetID string) (bool, error)
	// UpdateStatus menjalankan transisi lewat satu UPDATE bersyarat.
	// Mengembalikan gorm.ErrRecordNotFound atau model.ErrTransitionNotAllowed jika tidak ada baris yang berubah.
	UpdateStatus(ctx context.Context, id uint, newStatus string, now time.Time) (*model.Inspection, error)
	// Delete menghapus inspeksi dan mengembalikan path foto yang ikut terhapus.
	Delete(ctx context.Context, id uint) ([]string, error)
}

type inspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db}
}

func (r *inspectionRepository) List(ctx context.Context, f InspectionFilter) ([]model.InspectionDetail, error) {
	q := r.db.WithContext(ctx).Table("inspections AS i").
		Select("i.*, h.hotel_name, u.username AS inspector_name").
		Joins("JOIN hotels h ON i.hotel_id = h.hotel_id").
		Joins("LEFT JOIN users u ON i.inspector_id = u.user_id")
	q = f.Scope.apply(q, "i.hotel_id")

	if f.Status != "" {
		q = q.Where("i.overall_status = ?", f.Status)
	}
	if f.RoomStatus != "" {
		q = q.Where("i.overall_status = ?", f.RoomStatus)
	}
	if f.StartDate != nil {
		q = q.Where("i.inspection_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("i.inspection_date < ?", f.EndDate.AddDate(0, 0, 1))
	}

	rows := []model.InspectionDetail{}
	if err := q.Order("i.inspection_date DESC, i.inspection_id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	ids := make([]uint, len(rows))
	for i := range rows {
		ids[i] = rows[i].InspectionID
	}
	var photos []model.InspectionPhoto
	err := r.db.WithContext(ctx).
		Where("inspection_id IN ?", ids).
		Order("photo_id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	byInspection := make(map[uint][]model.PhotoPath)
	for _, p := range photos {
		byInspection[p.InspectionID] = append(byInspection[p.InspectionID], model.PhotoPath{Path: p.FilePath})
	}

	for i := range rows {
		rows[i].FormattedDate = rows[i].InspectionDate.Format(model.DateLayout)
		rows[i].Photos = byInspection[rows[i].InspectionID]
		if rows[i].Photos == nil {
			rows[i].Photos = []model.PhotoPath{}
		}
	}
	return rows, nil
}

type inspectionEventRow struct {
	InspectionID   uint
	TargetID       string
	InspectionType string
	InspectorName  *string
	OverallStatus  string
	EventTimestamp time.Time
}

// Recent menggabungkan tiga jenis aktivitas (laporan dibuat, mulai dikerjakan, selesai)
// dan mengambil yang terbaru.
func (r *inspectionRepository) Recent(ctx context.Context, scope HotelScope, limit int) ([]model.InspectionEvent, error) {
	sources := []struct {
		event  string
		column string
		status string
	}{
		{model.EventInspection, "inspection_date", ""},
		{model.EventInProgress, "progress_start_time", model.StatusInProgress},
		{model.EventCompleted, "completion_time", model.StatusBaik},
	}

	var events []model.InspectionEvent
	for _, src := range sources {
		q := r.db.WithContext(ctx).Table("inspections AS i").
			Select("i.inspection_id, i.target_id, i.inspection_type, u.username AS inspector_name, i.overall_status, i."+src.column+" AS event_timestamp").
			Joins("LEFT JOIN users u ON i.inspector_id = u.user_id").
			Where("i." + src.column + " IS NOT NULL")
		q = scope.apply(q, "i.hotel_id")

		var rows []inspectionEventRow
		if err := q.Order("i." + src.column + " DESC").Limit(limit).Scan(&rows).Error; err != nil {
			return nil, err
		}

		for _, row := range rows {
			ev := model.InspectionEvent{
				EventType:      src.event,
				InspectionID:   row.InspectionID,
				TargetID:       row.TargetID,
				InspectionType: row.InspectionType,
				OverallStatus:  row.OverallStatus,
				EventTimestamp: row.EventTimestamp,
				FormattedDate:  row.EventTimestamp.Format(model.DateLayout),
			}
			switch {
			case src.status != "":
				// perubahan status dicatat atas nama sistem
				ev.InspectorName = "Sistem"
				ev.OverallStatus = src.status
			case row.InspectorName != nil:
				ev.InspectorName = *row.InspectorName
			}
			events = append(events, ev)
		}
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].EventTimestamp.After(events[b].EventTimestamp)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	if events == nil {
		events = []model.InspectionEvent{}
	}
	return events, nil
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection, photoPaths []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Simpan data inspeksi utama
		if err := tx.Create(inspection).Error; err != nil {
			return err
		}
		if len(photoPaths) == 0 {
			return nil
		}

		// 2. Simpan path foto
		photos := make([]model.InspectionPhoto, len(photoPaths))
		for i, p := range photoPaths {
			photos[i] = model.InspectionPhoto{InspectionID: inspection.InspectionID, FilePath: p}
		}
		return tx.Create(&photos).Error
	})
}

func (r *inspectionRepository) TargetInUse(ctx context.Context, inspectionType string, hotelID uint, targetID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Inspection{}).
		Where("inspection_type = ? AND target_id = ? AND hotel_id = ?", inspectionType, targetID, hotelID).
		Count(&n).Error
	return n > 0, err
}

func (r *inspectionRepository) UpdateStatus(ctx context.Context, id uint, newStatus string, now time.Time) (*model.Inspection, error) {
	transition, err := model.TransitionTo(newStatus)
	if err != nil {
		return nil, err
	}

	var updated model.Inspection
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&model.Inspection{}).Where("inspection_id = ?", id)
		if len(transition.From) > 0 {
			q = q.Where("overall_status IN ?", transition.From)
		}
		res := q.Updates(transition.Columns(now))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Bedakan "tidak ada" dengan "transisi ditolak"
			var n int64
			if err := tx.Model(&model.Inspection{}).Where("inspection_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
			return model.ErrTransitionNotAllowed
		}

		return tx.Where("inspection_id = ?", id).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *inspectionRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.InspectionPhoto{}).Where("inspection_id = ?", id).Pluck("file_path", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("inspection_id = ?", id).Delete(&model.InspectionPhoto{}).Error; err != nil {
			return err
		}
		res := tx.Where("inspection_id = ?", id).Delete(&model.Inspection{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
