package repository

import (
	"context"
	"sort"
	"time"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
)

type WorkingOrderFilter struct {
	Status string
	// Assignee dicari sebagian dan tidak case-sensitive pada username.
	Assignee string
}

// PhotoOwner adalah foto WO beserta penanggung jawab WO-nya, untuk cek otorisasi.
type PhotoOwner struct {
	WOPhotoID  uint
	WOID       uint
	FilePath   string
	AssigneeID *uint
}

type WorkingOrderRepository interface {
	List(ctx context.Context, filter WorkingOrderFilter) ([]model.WorkingOrderSummary, error)
	Recent(ctx context.Context, hotelID uint, limit int) ([]model.WorkingOrderEvent, error)
	FindByID(ctx context.Context, id uint) (*model.WorkingOrder, error)
	FindDetail(ctx context.Context, id uint) (*model.WorkingOrderDetail, error)
	// Create memaksa inspeksi terkait menjadi In Progress lalu menyimpan WO, dalam satu transaksi.
	Create(ctx context.Context, wo *model.WorkingOrder, now time.Time) error
	// Update menyimpan perubahan; status Completed juga menutup inspeksi terkait menjadi Baik.
	Update(ctx context.Context, id uint, changes model.WorkingOrderChanges, now time.Time) (*model.WorkingOrder, error)
	Delete(ctx context.Context, id uint) ([]string, error)
	AddPhotos(ctx context.Context, woID uint, paths []string) error
	FindPhoto(ctx context.Context, photoID uint) (*PhotoOwner, error)
	DeletePhoto(ctx context.Context, photoID uint) error
}

type workingOrderRepository struct {
	db *gorm.DB
}

func NewWorkingOrderRepository(db *gorm.DB) WorkingOrderRepository {
	return &workingOrderRepository{db}
}

func (r *workingOrderRepository) List(ctx context.Context, f WorkingOrderFilter) ([]model.WorkingOrderSummary, error) {
	q := r.db.WithContext(ctx).Table("working_orders AS wo").
		Select(`wo.wo_id, wo.inspection_id, wo.priority, wo.status, wo.assignee_id,
			u.username AS assignee_name, wo.target_completion_date, i.target_id, h.hotel_name`).
		Joins("LEFT JOIN users u ON wo.assignee_id = u.user_id").
		Joins("JOIN inspections i ON wo.inspection_id = i.inspection_id").
		Joins("JOIN hotels h ON i.hotel_id = h.hotel_id")

	if f.Status != "" {
		q = q.Where("wo.status = ?", f.Status)
	}
	if f.Assignee != "" {
		q = q.Where("u.username "+likeOperator(r.db)+" ?", "%"+f.Assignee+"%")
	}

	rows := []model.WorkingOrderSummary{}
	err := q.Order("wo.created_at DESC").Scan(&rows).Error
	return rows, err
}

type woEventRow struct {
	WOID           uint
	Status         string
	EventTimestamp time.Time
	TargetID       string
	InspectionType string
	AssigneeName   *string
}

func (r *workingOrderRepository) Recent(ctx context.Context, hotelID uint, limit int) ([]model.WorkingOrderEvent, error) {
	base := func(column string) *gorm.DB {
		q := r.db.WithContext(ctx).Table("working_orders AS wo").
			Select("wo.wo_id, wo.status, wo."+column+" AS event_timestamp, i.target_id, i.inspection_type, u.username AS assignee_name").
			Joins("JOIN inspections i ON wo.inspection_id = i.inspection_id").
			Joins("LEFT JOIN users u ON wo.assignee_id = u.user_id")
		if hotelID != 0 {
			q = q.Where("i.hotel_id = ?", hotelID)
		}
		return q.Order("wo." + column + " DESC").Limit(limit)
	}

	var created, updated []woEventRow
	if err := base("created_at").Scan(&created).Error; err != nil {
		return nil, err
	}
	// Hanya pembaruan yang terjadi lebih dari satu menit setelah WO dibuat
	if err := base("updated_at").Where("wo.updated_at > wo.created_at + INTERVAL '1' MINUTE").Scan(&updated).Error; err != nil {
		return nil, err
	}

	events := make([]model.WorkingOrderEvent, 0, len(created)+len(updated))
	appendRows := func(rows []woEventRow, eventType string) {
		for _, row := range rows {
			events = append(events, model.WorkingOrderEvent{
				WOID:           row.WOID,
				Status:         row.Status,
				EventType:      eventType,
				EventTimestamp: row.EventTimestamp,
				FormattedDate:  row.EventTimestamp.Format(model.DateLayout),
				TargetID:       row.TargetID,
				InspectionType: row.InspectionType,
				AssigneeName:   row.AssigneeName,
			})
		}
	}
	appendRows(created, model.EventWOCreated)
	appendRows(updated, model.EventWOUpdated)

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].EventTimestamp.After(events[b].EventTimestamp)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (r *workingOrderRepository) FindByID(ctx context.Context, id uint) (*model.WorkingOrder, error) {
	var wo model.WorkingOrder
	if err := r.db.WithContext(ctx).Where("wo_id = ?", id).First(&wo).Error; err != nil {
		return nil, err
	}
	return &wo, nil
}

func (r *workingOrderRepository) FindDetail(ctx context.Context, id uint) (*model.WorkingOrderDetail, error) {
	var rows []model.WorkingOrderDetail
	err := r.db.WithContext(ctx).Table("working_orders AS wo").
		Select("wo.*, i.notes AS inspection_notes, i.target_id, h.hotel_name, u.username AS assignee_name").
		Joins("JOIN inspections i ON wo.inspection_id = i.inspection_id").
		Joins("JOIN hotels h ON i.hotel_id = h.hotel_id").
		Joins("LEFT JOIN users u ON wo.assignee_id = u.user_id").
		Where("wo.wo_id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	detail := rows[0]
	detail.Photos = []model.WorkingOrderPhoto{}
	err = r.db.WithContext(ctx).Where("wo_id = ?", id).Order("wo_photo_id ASC").Find(&detail.Photos).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *workingOrderRepository) Create(ctx context.Context, wo *model.WorkingOrder, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Inspeksi terkait mulai dikerjakan
		res := tx.Model(&model.Inspection{}).
			Where("inspection_id = ?", wo.InspectionID).
			Updates(map[string]interface{}{
				"overall_status":      model.StatusInProgress,
				"progress_start_time": now,
				"completion_time":     nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// 2. Simpan WO, unique index inspection_id menolak WO kedua
		wo.CreatedAt = now
		wo.UpdatedAt = now
		return tx.Create(wo).Error
	})
}

func (r *workingOrderRepository) Update(ctx context.Context, id uint, c model.WorkingOrderChanges, now time.Time) (*model.WorkingOrder, error) {
	var updated model.WorkingOrder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cols := map[string]interface{}{
			"status":                 c.Status,
			"priority":               c.Priority,
			"assignee_id":            c.AssigneeID,
			"start_date":             c.StartDate,
			"target_completion_date": c.TargetCompletionDate,
			"materials":              c.Materials,
			"updated_at":             now,
		}
		if c.Status == model.WOStatusCompleted {
			// tanggal selesai hanya diisi sekali
			cols["actual_completion_date"] = gorm.Expr("COALESCE(actual_completion_date, ?)", now)
		}

		res := tx.Model(&model.WorkingOrder{}).Where("wo_id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("wo_id = ?", id).First(&updated).Error; err != nil {
			return err
		}

		if c.Status == model.WOStatusCompleted {
			return tx.Model(&model.Inspection{}).
				Where("inspection_id = ?", updated.InspectionID).
				Updates(map[string]interface{}{
					"overall_status":  model.StatusBaik,
					"completion_time": now,
				}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *workingOrderRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.WorkingOrderPhoto{}).Where("wo_id = ?", id).Pluck("file_path", &paths).Error; err != nil {
			return err
		}
		if err := tx.Where("wo_id = ?", id).Delete(&model.WorkingOrderPhoto{}).Error; err != nil {
			return err
		}
		res := tx.Where("wo_id = ?", id).Delete(&model.WorkingOrder{})
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

func (r *workingOrderRepository) AddPhotos(ctx context.Context, woID uint, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	photos := make([]model.WorkingOrderPhoto, len(paths))
	for i, p := range paths {
		photos[i] = model.WorkingOrderPhoto{WOID: woID, FilePath: p}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&photos).Error
	})
}

func (r *workingOrderRepository) FindPhoto(ctx context.Context, photoID uint) (*PhotoOwner, error) {
	var rows []PhotoOwner
	err := r.db.WithContext(ctx).Table("working_order_photos AS p").
		Select("p.wo_photo_id, p.wo_id, p.file_path, wo.assignee_id").
		Joins("JOIN working_orders wo ON wo.wo_id = p.wo_id").
		Where("p.wo_photo_id = ?", photoID).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *workingOrderRepository) DeletePhoto(ctx context.Context, photoID uint) error {
	res := r.db.WithContext(ctx).Where("wo_photo_id = ?", photoID).Delete(&model.WorkingOrderPhoto{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
