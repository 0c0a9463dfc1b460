package model

import "time"

const (
	InspectionTypeRoom = "Kamar"
	InspectionTypeArea = "Area"
)

const DateLayout = "02 Jan 2006, 15:04"

type Inspection struct {
	InspectionID      uint       `json:"inspection_id" gorm:"primaryKey;column:inspection_id"`
	InspectionType    string     `json:"inspection_type" gorm:"size:20;not null;index:idx_inspections_target"`
	TargetID          string     `json:"target_id" gorm:"size:100;not null;index:idx_inspections_target"`
	InspectorID       *uint      `json:"inspector_id"`
	Notes             string     `json:"notes"`
	OverallStatus     string     `json:"overall_status" gorm:"size:30;not null"`
	HotelID           uint       `json:"hotel_id" gorm:"not null;index:idx_inspections_target"`
	InspectionDate    time.Time  `json:"inspection_date" gorm:"autoCreateTime;index"`
	ProgressStartTime *time.Time `json:"progress_start_time"`
	CompletionTime    *time.Time `json:"completion_time"`

	Hotel     *Hotel `json:"-" gorm:"foreignKey:HotelID;references:HotelID;constraint:OnDelete:RESTRICT"`
	Inspector *User  `json:"-" gorm:"foreignKey:InspectorID;references:UserID;constraint:OnDelete:SET NULL"`
}

type InspectionPhoto struct {
	PhotoID      uint        `json:"photo_id" gorm:"primaryKey;column:photo_id"`
	InspectionID uint        `json:"inspection_id" gorm:"not null;index"`
	FilePath     string      `json:"path" gorm:"not null"`
	Inspection   *Inspection `json:"-" gorm:"foreignKey:InspectionID;references:InspectionID;constraint:OnDelete:CASCADE"`
}

type PhotoPath struct {
	Path string `json:"path"`
}

// InspectionDetail adalah satu baris laporan inspeksi beserta nama hotel, inspektor dan foto.
type InspectionDetail struct {
	Inspection
	HotelName     string      `json:"hotel_name"`
	InspectorName *string     `json:"inspector_name"`
	FormattedDate string      `json:"formatted_date" gorm:"-"`
	Photos        []PhotoPath `json:"photos" gorm:"-"`
}

const (
	EventInspection = "INSPECTION"
	EventInProgress = "IN_PROGRESS"
	EventCompleted  = "COMPLETED"
)

// InspectionEvent adalah item riwayat aktivitas inspeksi di dashboard.
type InspectionEvent struct {
	EventType      string    `json:"event_type"`
	InspectionID   uint      `json:"inspection_id"`
	TargetID       string    `json:"target_id"`
	InspectionType string    `json:"inspection_type"`
	InspectorName  string    `json:"inspector_name"`
	OverallStatus  string    `json:"overall_status"`
	EventTimestamp time.Time `json:"event_timestamp"`
	FormattedDate  string    `json:"formatted_date"`
}
