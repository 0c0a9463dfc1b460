package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeUsers struct {
	repository.UserRepository
	byEmail map[string]*model.User
	created []*model.User

	resetUserID  uint
	resetHash    string
	resetExpires time.Time

	resetErr      error
	resetTokenArg string
	updatedHash   string
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	u.UserID = uint(len(f.created) + 1)
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUsers) SetResetToken(_ context.Context, id uint, hashed string, expires time.Time) error {
	f.resetUserID, f.resetHash, f.resetExpires = id, hashed, expires
	return nil
}

func (f *fakeUsers) ResetPassword(_ context.Context, hashedToken, _ string, _ time.Time) error {
	f.resetTokenArg = hashedToken
	return f.resetErr
}

func (f *fakeUsers) UpdatePassword(_ context.Context, _ uint, hash string) error {
	f.updatedHash = hash
	return nil
}

type fakeMailer struct {
	to, subject, html string
	err               error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, html string) error {
	m.to, m.subject, m.html = to, subject, html
	return m.err
}

func newTestUsecase(t *testing.T) (*AuthUsecase, *fakeUsers, *fakeMailer) {
	t.Helper()
	hash, err := auth.HashPassword("rahasia1")
	require.NoError(t, err)

	users := &fakeUsers{byEmail: map[string]*model.User{
		"budi@hotel.com": {UserID: 7, Username: "budi", Email: "budi@hotel.com", Role: model.RoleTeknisi, PasswordHash: hash},
	}}
	m := &fakeMailer{}
	uc := NewAuthUsecase(users, auth.NewTokenManager("secret", time.Hour), m, "http://localhost:5500", zap.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }
	return uc, users, m
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	return appErr.Status
}

func TestRegisterCreatesInspector(t *testing.T) {
	uc, users, _ := newTestUsecase(t)

	user, err := uc.Register(context.Background(), "sari@hotel.com", "rahasia1")
	require.NoError(t, err)
	assert.Equal(t, "sari@hotel.com", user.Username)
	assert.Equal(t, model.RoleInspector, user.Role)
	assert.True(t, auth.CheckPassword(users.created[0].PasswordHash, "rahasia1"))
}

func TestLogin(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	token, err := uc.Login(context.Background(), "budi@hotel.com", "rahasia1")
	require.NoError(t, err)
	claims, err := auth.NewTokenManager("secret", time.Hour).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.ID)
	assert.Equal(t, model.RoleTeknisi, claims.Role)

	_, err = uc.Login(context.Background(), "budi@hotel.com", "salah")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = uc.Login(context.Background(), "tidakada@hotel.com", "rahasia1")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	assert.EqualError(t, err, "Email atau password salah.")
}

func TestForgotPasswordKnownEmail(t *testing.T) {
	uc, users, m := newTestUsecase(t)

	require.NoError(t, uc.ForgotPassword(context.Background(), "budi@hotel.com"))
	assert.Equal(t, uint(7), users.resetUserID)
	assert.Equal(t, uc.now().Add(15*time.Minute), users.resetExpires)
	assert.Equal(t, "budi@hotel.com", m.to)

	// link berisi token mentah; database hanya menyimpan hash-nya
	_, after, found := strings.Cut(m.html, "reset-password.html?token=")
	require.True(t, found)
	raw := after[:64]
	assert.Equal(t, auth.HashResetToken(raw), users.resetHash)
	assert.Contains(t, m.html, "http://localhost:5500/reset-password.html?token=")
}

func TestForgotPasswordUnknownEmailAndMailFailure(t *testing.T) {
	uc, users, m := newTestUsecase(t)

	require.NoError(t, uc.ForgotPassword(context.Background(), "tidakada@hotel.com"))
	assert.Zero(t, users.resetUserID)
	assert.Empty(t, m.to)

	m.err = errors.New("smtp down")
	assert.NoError(t, uc.ForgotPassword(context.Background(), "budi@hotel.com"))
}

func TestResetPassword(t *testing.T) {
	uc, users, _ := newTestUsecase(t)

	require.NoError(t, uc.ResetPassword(context.Background(), "abc", "barubaru"))
	assert.Equal(t, auth.HashResetToken("abc"), users.resetTokenArg)

	users.resetErr = gorm.ErrRecordNotFound
	err := uc.ResetPassword(context.Background(), "abc", "barubaru")
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestChangePassword(t *testing.T) {
	uc, users, _ := newTestUsecase(t)

	err := uc.ChangePassword(context.Background(), 7, "salah", "barubaru")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	err = uc.ChangePassword(context.Background(), 99, "rahasia1", "barubaru")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	require.NoError(t, uc.ChangePassword(context.Background(), 7, "rahasia1", "barubaru"))
	assert.True(t, auth.CheckPassword(users.updatedHash, "barubaru"))
}
