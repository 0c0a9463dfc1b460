package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-inspection-backend/internal/apperror"
	"hotel-inspection-backend/internal/auth"
	"hotel-inspection-backend/internal/mailer"
	"hotel-inspection-backend/internal/model"
	"hotel-inspection-backend/internal/repository"

	"go.uber.org/zap"
)

const (
	resetTokenTTL = 15 * time.Minute

	MsgForgotPassword = "Jika email Anda terdaftar, Anda akan menerima link untuk mereset password."
)

const resetEmailTemplate = `<p>Anda menerima email ini karena ada permintaan untuk mereset password akun Anda.</p>
<p>Silakan klik link di bawah ini untuk melanjutkan:</p>
<p><a href="%s" style="background-color: #007bff; color: white; padding: 10px 15px; text-decoration: none; border-radius: 5px;">Reset Password</a></p>
<p>Link ini akan kedaluwarsa dalam 15 menit.</p>
<p>Jika Anda tidak meminta ini, abaikan saja email ini.</p>`

type AuthUsecase struct {
	users       repository.UserRepository
	tokens      *auth.TokenManager
	mailer      mailer.Mailer
	frontendURL string
	log         *zap.Logger
	now         func() time.Time
}

func NewAuthUsecase(users repository.UserRepository, tokens *auth.TokenManager, m mailer.Mailer, frontendURL string, log *zap.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:       users,
		tokens:      tokens,
		mailer:      m,
		frontendURL: frontendURL,
		log:         log,
		now:         time.Now,
	}
}

// Register membuat akun inspector dengan username = email.
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleInspector,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	invalid := apperror.Unauthorized("Email atau password salah.")

	// 1. Cari user berdasarkan email
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", invalid
		}
		return "", err
	}

	// 2. Bandingkan password
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", invalid
	}

	// 3. Buat token JWT
	return u.tokens.Generate(auth.UserClaims{
		ID:       user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// ForgotPassword tidak pernah memberi tahu apakah email terdaftar.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			u.log.Info("permintaan reset password untuk email yang tidak terdaftar", zap.String("email", email))
			return nil
		}
		return err
	}

	raw, hashed, err := auth.NewResetToken()
	if err != nil {
		return err
	}
	if err := u.users.SetResetToken(ctx, user.UserID, hashed, u.now().Add(resetTokenTTL)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password.html?token=%s", u.frontendURL, raw)
	if err := u.mailer.Send(ctx, user.Email, "Reset Password Akun Anda", fmt.Sprintf(resetEmailTemplate, resetURL)); err != nil {
		u.log.Error("gagal mengirim email reset password", zap.String("email", user.Email), zap.Error(err))
		return nil
	}
	u.log.Info("email reset password terkirim", zap.Uint("user_id", user.UserID))
	return nil
}

func (u *AuthUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = u.users.ResetPassword(ctx, auth.HashResetToken(token), hash, u.now())
	if apperror.IsNotFound(err) {
		return apperror.BadRequest("Token tidak valid atau sudah kedaluwarsa.")
	}
	return err
}

func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NotFound("Pengguna tidak ditemukan.")
		}
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return apperror.Unauthorized("Password saat ini salah.")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, userID, hash)
}
