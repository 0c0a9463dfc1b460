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

type fakeChecklist struct {
	repository.ChecklistRepository
	items []model.ChecklistItem
	err   error
}

func (f *fakeChecklist) List(context.Context) ([]model.ChecklistItem, error) {
	return f.items, nil
}

func (f *fakeChecklist) Create(_ context.Context, item *model.ChecklistItem) error {
	if f.err != nil {
		return f.err
	}
	item.ItemID = uint(len(f.items) + 1)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeChecklist) Update(context.Context, *model.ChecklistItem) error {
	return f.err
}

func (f *fakeChecklist) Delete(context.Context, uint) error {
	return f.err
}

func checklistApp(repo *fakeChecklist) *fiber.App {
	app := newApp()
	h := NewChecklistHandler(repo)
	app.Get("/api/room-checklist-items", h.GetAll)
	app.Post("/api/room-checklist-items", h.Create)
	app.Put("/api/room-checklist-items/:id", h.Update)
	app.Delete("/api/room-checklist-items/:id", h.Delete)
	return app
}

func TestChecklistListAndCreate(t *testing.T) {
	repo := &fakeChecklist{}
	app := checklistApp(repo)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodGet, "/api/room-checklist-items", nil), token)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `[]`, string(res.Body))

	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/room-checklist-items", map[string]string{"item_name": ""}), token)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Nama item tidak boleh kosong.", res.message(t).Message)

	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/room-checklist-items", map[string]string{"item_name": "Kebersihan kamar mandi"}), token)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.JSONEq(t, `{"item_id":1,"item_name":"Kebersihan kamar mandi"}`, string(res.Body))
}

func TestChecklistErrors(t *testing.T) {
	token := tokenFor(t, 1, model.RoleAdmin)

	dup := checklistApp(&fakeChecklist{err: &pgconn.PgError{Code: "23505"}})
	res := send(t, dup, jsonRequest(t, http.MethodPost, "/api/room-checklist-items", map[string]string{"item_name": "Handuk"}), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Nama item sudah ada.", res.message(t).Message)

	res = send(t, dup, jsonRequest(t, http.MethodPut, "/api/room-checklist-items/2", map[string]string{"item_name": "Handuk"}), token)
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "Nama item sudah ada.", res.message(t).Message)

	missing := checklistApp(&fakeChecklist{err: gorm.ErrRecordNotFound})
	res = send(t, missing, jsonRequest(t, http.MethodPut, "/api/room-checklist-items/9", map[string]string{"item_name": "Handuk"}), token)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Item tidak ditemukan.", res.message(t).Message)

	res = send(t, missing, jsonRequest(t, http.MethodDelete, "/api/room-checklist-items/9", nil), token)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "Item tidak ditemukan.", res.message(t).Message)

	ok := checklistApp(&fakeChecklist{})
	res = send(t, ok, jsonRequest(t, http.MethodDelete, "/api/room-checklist-items/abc", nil), token)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	res = send(t, ok, jsonRequest(t, http.MethodDelete, "/api/room-checklist-items/2", nil), token)
	assert.Equal(t, http.StatusNoContent, res.Status)
}
