package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel-inspection-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSettings struct {
	paths []string
	err   error
}

func (f *fakeSettings) ResetInspectionData(context.Context) ([]string, error) {
	return f.paths, f.err
}

func TestResetSequences(t *testing.T) {
	store := &memoryStorage{}
	repo := &fakeSettings{paths: []string{"/uploads/inspections/a.jpg", "/uploads/wo-photos/b.jpg"}}
	app := newApp()
	app.Post("/api/settings/reset-sequences", NewSettingsHandler(repo, store, zap.NewNop()).ResetSequences)
	token := tokenFor(t, 1, model.RoleAdmin)

	res := send(t, app, jsonRequest(t, http.MethodPost, "/api/settings/reset-sequences", nil), token)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, repo.paths, store.removed)

	store.removed = nil
	repo.err = errors.New("relation does not exist")
	res = send(t, app, jsonRequest(t, http.MethodPost, "/api/settings/reset-sequences", nil), token)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, "Terjadi kesalahan internal pada server.", res.message(t).Message)
	assert.Empty(t, store.removed)
}
