package repository

import (
	"context"
	"time"

	"hotel-inspection-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	ListWithHotels(ctx context.Context) ([]model.UserWithHotels, error)
	ListAssignable(ctx context.Context) ([]model.AssignableUser, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	// Update mengubah username, email dan role; password_hash ikut diubah jika tidak kosong.
	Update(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	SetResetToken(ctx context.Context, id uint, hashedToken string, expires time.Time) error
	// ResetPassword mengganti password milik token yang masih berlaku dan menghapus token tersebut.
	ResetPassword(ctx context.Context, hashedToken, passwordHash string, now time.Time) error
	Delete(ctx context.Context, id uint) error
	HotelIDs(ctx context.Context, userID uint) ([]uint, error)
	ReplaceHotels(ctx context.Context, userID uint, hotelIDs []uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) ListWithHotels(ctx context.Context) ([]model.UserWithHotels, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	var assignments []struct {
		UserID    uint
		HotelName string
	}
	err := r.db.WithContext(ctx).Table("user_hotels uh").
		Select("uh.user_id, h.hotel_name").
		Joins("JOIN hotels h ON h.hotel_id = uh.hotel_id").
		Order("h.hotel_name ASC").
		Scan(&assignments).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint][]string)
	for _, a := range assignments {
		byUser[a.UserID] = append(byUser[a.UserID], a.HotelName)
	}

	out := make([]model.UserWithHotels, 0, len(users))
	for _, u := range users {
		hotels := byUser[u.UserID]
		if hotels == nil {
			hotels = []string{}
		}
		out = append(out, model.UserWithHotels{
			UserID:         u.UserID,
			Username:       u.Username,
			Email:          u.Email,
			Role:           u.Role,
			AssignedHotels: hotels,
		})
	}
	return out, nil
}

func (r *userRepository) ListAssignable(ctx context.Context) ([]model.AssignableUser, error) {
	var users []model.AssignableUser
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("user_id, username, role").
		Where("role IN ?", []string{model.RoleAdmin, model.RoleInspector, model.RoleTeknisi}).
		Order("username ASC").
		Scan(&users).Error
	return users, err
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	cols := map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	}
	if user.PasswordHash != "" {
		cols["password_hash"] = user.PasswordHash
	}
	return r.updateColumns(ctx, user.UserID, cols)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"password_hash": passwordHash})
}

func (r *userRepository) SetResetToken(ctx context.Context, id uint, hashedToken string, expires time.Time) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"password_reset_token":   hashedToken,
		"password_reset_expires": expires,
	})
}

func (r *userRepository) updateColumns(ctx context.Context, id uint, cols map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) ResetPassword(ctx context.Context, hashedToken, passwordHash string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("password_reset_token = ? AND password_reset_expires > ?", hashedToken, now).
			First(&user).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.User{}).Where("user_id = ?", user.UserID).Updates(map[string]interface{}{
			"password_hash":          passwordHash,
			"password_reset_token":   nil,
			"password_reset_expires": nil,
		}).Error
	})
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) HotelIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&model.UserHotel{}).
		Where("user_id = ?", userID).
		Order("hotel_id ASC").
		Pluck("hotel_id", &ids).Error
	return ids, err
}

func (r *userRepository) ReplaceHotels(ctx context.Context, userID uint, hotelIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserHotel{}).Error; err != nil {
			return err
		}
		if len(hotelIDs) == 0 {
			return nil
		}
		rows := make([]model.UserHotel, 0, len(hotelIDs))
		seen := make(map[uint]bool, len(hotelIDs))
		for _, id := range hotelIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			rows = append(rows, model.UserHotel{UserID: userID, HotelID: id})
		}
		return tx.Create(&rows).Error
	})
}
