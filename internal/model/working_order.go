package model

import "time"

const (
	WOStatusOpen       = "Open"
	WOStatusInProgress = "In Progress"
	WOStatusCompleted  = "Completed"
	WOStatusCancelled  = "Cancelled"
)

const (
	PriorityLow    = "Rendah"
	PriorityMedium = "Sedang"
	PriorityHigh   = "Tinggi"
)

type WorkingOrder struct {
	WOID                 uint       `json:"wo_id" gorm:"primaryKey;column:wo_id"`
	InspectionID         uint       `json:"inspection_id" gorm:"not null;uniqueIndex"`
	Status               string     `json:"status" gorm:"size:30;not null;default:Open"`
	Priority             string     `json:"priority" gorm:"size:20;not null;default:Sedang"`
	AssigneeID           *uint      `json:"assignee_id"`
	StartDate            *time.Time `json:"start_date" gorm:"type:date"`
	TargetCompletionDate *time.Time `json:"target_completion_date" gorm:"type:date"`
	ActualCompletionDate *time.Time `json:"actual_completion_date"`
	Materials            string     `json:"materials"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Inspection *Inspection `json:"-" gorm:"foreignKey:InspectionID;references:InspectionID;constraint:OnDelete:RESTRICT"`
	Assignee   *User       `json:"-" gorm:"foreignKey:AssigneeID;references:UserID;constraint:OnDelete:SET NULL"`
}

type WorkingOrderPhoto struct {
	WOPhotoID    uint          `json:"id" gorm:"primaryKey;column:wo_photo_id"`
	WOID         uint          `json:"wo_id" gorm:"column:wo_id;not null;index"`
	FilePath     string        `json:"path" gorm:"not null"`
	WorkingOrder *WorkingOrder `json:"-" gorm:"foreignKey:WOID;references:WOID;constraint:OnDelete:CASCADE"`
}

// WorkingOrderChanges adalah field yang bisa diubah lewat PUT /working-orders/:id.
type WorkingOrderChanges struct {
	Status               string
	Priority             string
	AssigneeID           *uint
	StartDate            *time.Time
	TargetCompletionDate *time.Time
	Materials            string
}

type WorkingOrderSummary struct {
	WOID                 uint       `json:"wo_id"`
	InspectionID         uint       `json:"inspection_id"`
	Priority             string     `json:"priority"`
	Status               string     `json:"status"`
	AssigneeID           *uint      `json:"assignee_id"`
	AssigneeName         *string    `json:"assignee_name"`
	TargetCompletionDate *time.Time `json:"target_completion_date"`
	TargetID             string     `json:"target_id"`
	HotelName            string     `json:"hotel_name"`
}

type WorkingOrderDetail struct {
	WorkingOrder
	InspectionNotes string              `json:"inspection_notes"`
	TargetID        string              `json:"target_id"`
	HotelName       string              `json:"hotel_name"`
	AssigneeName    *string             `json:"assignee_name"`
	Photos          []WorkingOrderPhoto `json:"photos" gorm:"-"`
}

const (
	EventWOCreated = "WO_CREATED"
	EventWOUpdated = "WO_UPDATED"
)

type WorkingOrderEvent struct {
	WOID           uint      `json:"wo_id"`
	Status         string    `json:"status"`
	EventType      string    `json:"event_type"`
	EventTimestamp time.Time `json:"event_timestamp"`
	FormattedDate  string    `json:"formatted_date"`
	TargetID       string    `json:"target_id"`
	InspectionType string    `json:"inspection_type"`
	AssigneeName   *string   `json:"assignee_name"`
}

func IsWorkingOrderStatus(s string) bool {
	switch s {
	case WOStatusOpen, WOStatusInProgress, WOStatusCompleted, WOStatusCancelled:
		return true
	}
	return false
}

func IsPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
