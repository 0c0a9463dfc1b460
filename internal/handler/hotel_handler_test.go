package handler

import (
	"context"
	"net/http"
	"testing"

	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHotels struct {
	repository.HotelRepository
	scope     repository.HotelScope
	dep       repository.HotelDependency
	createErr error
	deleted   uint
}

func (f *fakeHotels) List(_ context.Context, scope repository.HotelScope) ([]model.Hotel, error) {
	f.scope = scope
	return nil, nil
}

func (f *fakeHotels) Create(_ context.Context, h *model.Hotel) error {
	if f.createErr != nil {
		return f.createErr
	}
	h.HotelID = 1
	return nil
}

func (f *fakeHotels) Update(_ context.Context, h *model.Hotel) error {
	if h.HotelID != 1 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (f *fakeHotels) FindDependency(context.Context, uint) (repository.HotelDependency, error) {
	return f.dep, nil
}

func (f *fakeHotels) Delete(_ context.Context, id uint) error {
	f.deleted = id
	return nil
}

func hotelApp(repo *fakeHotels) *fiber.App {
	app := newApp()
	h := NewHotelHandler(repo)
	app.Get("/api/hotels", h.GetAll)
	app.Post("/api/hotels", h.Create)
	app.Put("/api/hotels/:id", h.Update)
	app.Delete("/api/hotels/:id", h.Delete)
	return app
}

func TestHotelListIsScopedForNonAdmin(t *testing.T) {
	repo := &fakeHotels{}
	app := hotelApp(repo)

	res := send(t, app, jsonRequest(t, http.MethodGet, "/api/hotels", nil), tokenFor(t, 4, model.RoleInspector))
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `[]`, string(res.Body))
	assert.Equal(t, repository.HotelScope{UserID: 4}, repo.scope)

	send(t, app, jsonRequest(t, http.MethodGet, "/api/hotels", nil), tokenFor(t, 1, model.RoleAdmin))
	assert.True(t, repo.scope.Admin)
}

func TestHotelCreate(t *testing.T) {
	repo := &fakeHotels{}
	app := hotelApp(repo)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodPost, "/api/hotels", map[string]string{"address": "Jl. Mawar"}), token)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Nama hotel tidak boleh kosong.", res.message(t).Message)

	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/hotels", map[string]string{"hotel_name": "Hotel Melati"}), token)
	assert.Equal(t, http.StatusCreated, res.Status)
	var hotel model.Hotel
	res.decode(t, &hotel)
	assert.Equal(t, uint(1), hotel.HotelID)

	repo.createErr = &pgconn.PgError{Code: "23505"}
	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/hotels", map[string]string{"hotel_name": "Hotel Melati"}), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Nama hotel sudah ada.", res.message(t).Message)
}

func TestHotelUpdateNotFound(t *testing.T) {
	app := hotelApp(&fakeHotels{})

	res := send(t, app, jsonRequest(t, http.MethodPut, "/api/hotels/9", map[string]string{"hotel_name": "X"}), tokenFor(t, 1, model.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Hotel tidak ditemukan.", res.message(t).Message)
}

func TestHotelDeleteChecksDependencies(t *testing.T) {
	repo := &fakeHotels{dep: repository.HotelHasRooms}
	app := hotelApp(repo)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodDelete, "/api/hotels/3", nil), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Hotel tidak dapat dihapus karena memiliki data kamar terkait.", res.message(t).Message)
	assert.Zero(t, repo.deleted)

	repo.dep = ""
	res = send(t, app, jsonRequest(t, http.MethodDelete, "/api/hotels/3", nil), token)
	assert.Equal(t, http.StatusNoContent, res.Status)
	assert.Equal(t, uint(3), repo.deleted)
}
