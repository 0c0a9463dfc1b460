package validation

import (
	"net/http"
	"testing"

	"hotel-inspection-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

var passwordMessages = Messages{
	"token":           "Token dan password baru diperlukan.",
	"newPassword":     "Token dan password baru diperlukan.",
	"newPassword.min": "Password baru minimal harus 6 karakter.",
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      passwordInput
		wantMsg string
	}{
		{"valid", passwordInput{Token: "abc", NewPassword: "rahasia1"}, ""},
		{"missing token", passwordInput{NewPassword: "rahasia1"}, "Token dan password baru diperlukan."},
		{"short password uses tag message", passwordInput{Token: "abc", NewPassword: "123"}, "Password baru minimal harus 6 karakter."},
		{"empty password uses field message", passwordInput{Token: "abc"}, "Token dan password baru diperlukan."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in, passwordMessages)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestStructFallbackMessage(t *testing.T) {
	err := Struct(passwordInput{}, nil)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "Field token tidak valid.", appErr.Message)
}
