package model

import (
	"errors"
	"time"
)

const (
	StatusNotInspected = "Belum Diinspeksi"
	StatusKurang       = "Kurang"
	StatusInProgress   = "In Progress"
	StatusBaik         = "Baik"
)

var (
	ErrInvalidStatus        = errors.New("status inspeksi tidak valid")
	ErrTransitionNotAllowed = errors.New("transisi status tidak diizinkan")
)

// StatusTransition menjelaskan satu perpindahan status inspeksi.
// From kosong berarti boleh dari status apa pun.
type StatusTransition struct {
	To   string
	From []string
}

// TransitionTo mengembalikan aturan perpindahan ke newStatus.
// Belum Diinspeksi tidak pernah bisa dituju karena tidak punya baris.
func TransitionTo(newStatus string) (StatusTransition, error) {
	switch newStatus {
	case StatusInProgress:
		return StatusTransition{To: StatusInProgress, From: []string{StatusKurang}}, nil
	case StatusBaik:
		return StatusTransition{To: StatusBaik, From: []string{StatusInProgress, StatusKurang}}, nil
	case StatusKurang:
		return StatusTransition{To: StatusKurang}, nil
	}
	return StatusTransition{}, ErrInvalidStatus
}

// Columns adalah kolom yang di-update saat transisi terjadi pada waktu now.
func (t StatusTransition) Columns(now time.Time) map[string]interface{} {
	cols := map[string]interface{}{"overall_status": t.To}
	switch t.To {
	case StatusInProgress:
		cols["progress_start_time"] = now
		cols["completion_time"] = nil
	case StatusBaik:
		cols["completion_time"] = now
	case StatusKurang:
		cols["progress_start_time"] = nil
		cols["completion_time"] = nil
	}
	return cols
}

// IsReportStatus: status yang boleh dipakai saat membuat laporan inspeksi baru.
func IsReportStatus(s string) bool {
	return s == StatusBaik || s == StatusKurang
}
