package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postal-pickup-api/internal/domain/user"
	"postal-pickup-api/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", userID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

// Update persists profile fields. Email and password hash are intentionally
// excluded from this path.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	u.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"first_name":  u.FirstName,
			"last_name":   u.LastName,
			"phone":       u.Phone,
			"street":      u.Address.Street,
			"city":        u.Address.City,
			"district":    u.Address.District,
			"postal_code": u.Address.PostalCode,
			"is_verified": u.IsVerified,
			"updated_at":  u.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs user.Preferences) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"email_notifications": prefs.EmailNotifications,
			"sms_notifications":   prefs.SMSNotifications,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user preferences: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func toUserModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                 u.ID,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.Email,
		Phone:              u.Phone,
		PasswordHashed:     u.PasswordHashed,
		Street:             u.Address.Street,
		City:               u.Address.City,
		District:           u.Address.District,
		PostalCode:         u.Address.PostalCode,
		Role:               string(u.Role),
		IsVerified:         u.IsVerified,
		EmailNotifications: u.Preferences.EmailNotifications,
		SMSNotifications:   u.Preferences.SMSNotifications,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *user.User {
	return &user.User{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		PasswordHashed: m.PasswordHashed,
		Address: user.Address{
			Street:     m.Street,
			City:       m.City,
			District:   m.District,
			PostalCode: m.PostalCode,
		},
		Role:       user.Role(m.Role),
		IsVerified: m.IsVerified,
		Preferences: user.Preferences{
			EmailNotifications: m.EmailNotifications,
			SMSNotifications:   m.SMSNotifications,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
