package handler

import (
	"net/http"
	"testing"

	"hotel-inspection-backend/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomListWithoutHotel(t *testing.T) {
	app := newApp()
	h := NewRoomHandler(&fakeRooms{}, &fakeInspections{})
	app.Get("/api/rooms", h.GetAll)

	res := send(t, app, jsonRequest(t, http.MethodGet, "/api/rooms", nil), tokenFor(t, 1, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `[]`, string(res.Body))
}

func TestRoomWithInspectionHistoryIsLocked(t *testing.T) {
	rooms := &fakeRooms{room: &model.Room{RoomID: 3, RoomNumber: "101", HotelID: 1, RoomType: "Deluxe"}}
	app := newApp()
	h := NewRoomHandler(rooms, &fakeInspections{inUse: true})
	app.Put("/api/rooms/:id", h.Update)
	app.Delete("/api/rooms/:id", h.Delete)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodPut, "/api/rooms/3", map[string]string{"room_number": "102"}), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Kamar 101 tidak dapat diubah karena sudah memiliki riwayat inspeksi.", res.message(t).Message)

	res = send(t, app, jsonRequest(t, http.MethodDelete, "/api/rooms/3", nil), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Kamar 101 tidak dapat dihapus karena sudah memiliki riwayat inspeksi.", res.message(t).Message)

	res = send(t, app, jsonRequest(t, http.MethodDelete, "/api/rooms/8", nil), token)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Kamar tidak ditemukan.", res.message(t).Message)
}

func TestRoomCreateValidation(t *testing.T) {
	app := newApp()
	h := NewRoomHandler(&fakeRooms{}, &fakeInspections{})
	app.Post("/api/rooms", h.Create)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodPost, "/api/rooms", map[string]string{"hotel_id": "1"}), token)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Nomor kamar tidak boleh kosong.", res.message(t).Message)

	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/rooms", map[string]string{"room_number": "101"}), token)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Hotel ID tidak boleh kosong.", res.message(t).Message)
}

func TestRoomCreate(t *testing.T) {
	rooms := &fakeRooms{}
	app := newApp()
	h := NewRoomHandler(rooms, &fakeInspections{})
	app.Post("/api/rooms", h.Create)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodPost, "/api/rooms", map[string]interface{}{"room_number": "101", "hotel_id": 1}), token)
	assert.Equal(t, http.StatusCreated, res.Status)
	require.NotNil(t, rooms.created)
	assert.Equal(t, "Standard", rooms.created.RoomType)
	assert.Equal(t, uint(1), rooms.created.HotelID)

	rooms.createErr = &pgconn.PgError{Code: "23505"}
	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/rooms", map[string]interface{}{"room_number": "101", "hotel_id": 1}), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Nomor kamar sudah ada.", res.message(t).Message)
}
