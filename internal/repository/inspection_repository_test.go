package repository

import (
	"context"
	"testing"
	"time"

	"hotel-inspection-backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var inspectionColumns = []string{
	"inspection_id", "inspection_type", "target_id", "inspector_id", "notes",
	"overall_status", "hotel_id", "inspection_date", "progress_start_time", "completion_time",
}

func TestUpdateStatusToBaik(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inspections" SET .* WHERE inspection_id = \$\d+ AND overall_status IN \(\$\d+,\$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "inspections" WHERE inspection_id = \$1`).
		WillReturnRows(sqlmock.NewRows(inspectionColumns).
			AddRow(5, "Kamar", "101", 2, "AC bocor", "Baik", 1, now.Add(-time.Hour), now.Add(-30*time.Minute), now))
	mock.ExpectCommit()

	got, err := repo.UpdateStatus(context.Background(), 5, model.StatusBaik, now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), got.InspectionID)
	assert.Equal(t, model.StatusBaik, got.OverallStatus)
	require.NotNil(t, got.CompletionTime)
	assert.True(t, got.CompletionTime.Equal(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inspections" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inspections" WHERE inspection_id = \$1`).
		WillReturnRows(countRows(0))
	mock.ExpectRollback()

	_, err := repo.UpdateStatus(context.Background(), 99, model.StatusInProgress, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusTransitionRejected(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)

	// In Progress hanya boleh dari Kurang; baris ada tapi status-nya Baik
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inspections" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inspections"`).WillReturnRows(countRows(1))
	mock.ExpectRollback()

	_, err := repo.UpdateStatus(context.Background(), 5, model.StatusInProgress, time.Now())
	assert.ErrorIs(t, err, model.ErrTransitionNotAllowed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)

	_, err := repo.UpdateStatus(context.Background(), 5, model.StatusNotInspected, time.Now())
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInspectionWithPhotos(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "inspections"`).
		WillReturnRows(sqlmock.NewRows([]string{"inspection_id"}).AddRow(12))
	mock.ExpectQuery(`INSERT INTO "inspection_photos"`).
		WillReturnRows(sqlmock.NewRows([]string{"photo_id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	insp := &model.Inspection{
		InspectionType: model.InspectionTypeRoom,
		TargetID:       "101",
		OverallStatus:  model.StatusKurang,
		HotelID:        1,
	}
	err := repo.Create(context.Background(), insp, []string{"/uploads/inspections/a.jpg", "/uploads/inspections/b.jpg"})
	require.NoError(t, err)
	assert.Equal(t, uint(12), insp.InspectionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentMergesEvents(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	cols := []string{"inspection_id", "target_id", "inspection_type", "inspector_name", "overall_status", "event_timestamp"}

	mock.ExpectQuery(`i.inspection_date AS event_timestamp`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "101", "Kamar", "budi", "Kurang", base).
			AddRow(2, "Lobby", "Area", nil, "Baik", base.Add(time.Minute)))
	mock.ExpectQuery(`i.progress_start_time AS event_timestamp`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "101", "Kamar", "budi", "Baik", base.Add(2*time.Hour)))
	mock.ExpectQuery(`i.completion_time AS event_timestamp`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "101", "Kamar", "budi", "Baik", base.Add(3*time.Hour)))

	events, err := repo.Recent(context.Background(), HotelScope{Admin: true}, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, model.EventCompleted, events[0].EventType)
	assert.Equal(t, "Sistem", events[0].InspectorName)
	assert.Equal(t, model.StatusBaik, events[0].OverallStatus)

	assert.Equal(t, model.EventInProgress, events[1].EventType)
	assert.Equal(t, model.StatusInProgress, events[1].OverallStatus)

	assert.Equal(t, model.EventInspection, events[2].EventType)
	assert.Equal(t, uint(2), events[2].InspectionID)
	assert.Equal(t, "", events[2].InspectorName)
	assert.Equal(t, "01 May 2024, 08:01", events[2].FormattedDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScopesNonAdmin(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)

	mock.ExpectQuery(`WHERE i.hotel_id = \$1 AND i.hotel_id IN \(SELECT hotel_id FROM user_hotels WHERE user_id = \$2\)`).
		WithArgs(3, 7).
		WillReturnRows(sqlmock.NewRows([]string{"inspection_id"}))

	rows, err := repo.List(context.Background(), InspectionFilter{Scope: HotelScope{HotelID: 3, UserID: 7}})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteInspection(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewInspectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "file_path" FROM "inspection_photos"`).
		WillReturnRows(sqlmock.NewRows([]string{"file_path"}).AddRow("/uploads/inspections/a.jpg"))
	mock.ExpectExec(`DELETE FROM "inspection_photos"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "inspections"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	paths, err := repo.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/inspections/a.jpg"}, paths)
	assert.NoError(t, mock.ExpectationsWereMet())
}
