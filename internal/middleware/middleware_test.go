package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/model"

	"github.com/go-sql-driver/mysql"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubChecker struct {
	granted map[string]bool
	calls   int
	err     error
}

func (s *stubChecker) HasPermission(_ context.Context, role, permissionID string) (bool, error) {
	s.calls++
	return s.granted[role+":"+permissionID], s.err
}

var tokens = auth.NewTokenManager("test-secret", time.Hour)

func newApp(production bool) *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop(), production)})
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := tokens.Generate(auth.UserClaims{ID: 3, Username: "u", Email: "u@hotel.com", Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, app *fiber.App, authHeader string) (int, ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func okHandler(c *fiber.Ctx) error {
	user, _ := CurrentUser(c)
	return c.JSON(fiber.Map{"message": user.Role})
}

func TestAuth(t *testing.T) {
	app := newApp(true)
	app.Get("/x", Auth(tokens), okHandler)

	status, body := do(t, app, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Token tidak tersedia, otorisasi ditolak.", body.Message)

	status, body = do(t, app, "Bearer rusak")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token tidak valid.", body.Message)

	status, body = do(t, app, bearer(t, model.RoleInspector))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, model.RoleInspector, body.Message)
}

func TestRole(t *testing.T) {
	app := newApp(true)
	app.Get("/x", Auth(tokens), Role(model.RoleAdmin, model.RoleInspector), okHandler)

	status, _ := do(t, app, bearer(t, model.RoleInspector))
	assert.Equal(t, http.StatusOK, status)

	status, body := do(t, app, bearer(t, model.RoleTeknisi))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body.Message, "Akses ditolak")
}

func TestPermission(t *testing.T) {
	checker := &stubChecker{granted: map[string]bool{
		model.RoleInspector + ":" + model.PermPerformInspection: true,
	}}
	app := newApp(true)
	app.Get("/x", Auth(tokens), Permission(checker, model.PermPerformInspection), okHandler)

	status, _ := do(t, app, bearer(t, model.RoleAdmin))
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, checker.calls, "admin tidak perlu cek database")

	status, _ = do(t, app, bearer(t, model.RoleInspector))
	assert.Equal(t, http.StatusOK, status)

	status, body := do(t, app, bearer(t, model.RoleTeknisi))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Akses ditolak: Anda tidak memiliki izin untuk melakukan tindakan ini.", body.Message)

	checker.err = errors.New("db down")
	status, _ = do(t, app, bearer(t, model.RoleInspector))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		production bool
		status     int
		message    string
		code       string
	}{
		{"app error", apperror.NotFound("Laporan inspeksi tidak ditemukan.").WithCode(apperror.CodeInspectionNotFound), true,
			http.StatusNotFound, "Laporan inspeksi tidak ditemukan.", apperror.CodeInspectionNotFound},
		{"fiber error", fiber.NewError(http.StatusRequestEntityTooLarge, "terlalu besar"), true,
			http.StatusRequestEntityTooLarge, "terlalu besar", ""},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true, http.StatusConflict, msgDuplicate, apperror.CodeDuplicate},
		{"mysql foreign key", &mysql.MySQLError{Number: 1451}, true, http.StatusConflict, msgForeignKey, apperror.CodeForeignKey},
		{"internal production", errors.New("koneksi putus"), true,
			http.StatusInternalServerError, "Terjadi kesalahan internal pada server.", ""},
		{"internal development", errors.New("koneksi putus"), false,
			http.StatusInternalServerError, "koneksi putus", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newApp(tc.production)
			app.Get("/x", func(*fiber.Ctx) error { return tc.err })

			status, body := do(t, app, "")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, body.Message)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}
