package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/middleware"
	"hotel-inspection-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testTokens = auth.NewTokenManager("handler-test", time.Hour)

// newApp memasang handler di belakang Auth dan ErrorHandler seperti di server asli.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop(), true)})
	app.Use(middleware.Auth(testTokens))
	return app
}

func tokenFor(t *testing.T, id uint, role string) string {
	t.Helper()
	token, err := testTokens.Generate(auth.UserClaims{ID: id, Username: "user", Email: "user@hotel.com", Role: role})
	require.NoError(t, err)
	return token
}

type response struct {
	Status int
	Body   []byte
}

func (r response) decode(t *testing.T, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, out))
}

func (r response) message(t *testing.T) middleware.ErrorResponse {
	t.Helper()
	var body middleware.ErrorResponse
	r.decode(t, &body)
	return body
}

func send(t *testing.T, app *fiber.App, req *http.Request, token string) response {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return response{Status: resp.StatusCode, Body: body}
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

type upload struct {
	name        string
	contentType string
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files ...upload) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="photos"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("gambar"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// memoryStorage mencatat file yang disimpan dan dihapus.
type memoryStorage struct {
	saved   []string
	removed []string
}

func (m *memoryStorage) Save(_ context.Context, folder string, file *multipart.FileHeader) (storage.StoredFile, error) {
	p := "/uploads/" + folder + "/" + file.Filename
	m.saved = append(m.saved, p)
	return storage.StoredFile{Path: p}, nil
}

func (m *memoryStorage) Remove(_ context.Context, p string) error {
	m.removed = append(m.removed, p)
	return nil
}

type stubChecker map[string]bool

func (s stubChecker) HasPermission(_ context.Context, role, permissionID string) (bool, error) {
	return s[role+":"+permissionID], nil
}
