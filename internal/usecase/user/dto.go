package user

import (
	"time"

	domainUser "postal-pickup-api/internal/domain/user"

	"github.com/google/uuid"
)

// Request DTOs

type AddressInput struct {
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	District   string `json:"district" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,postal_code"`
}

type RegisterRequest struct {
	FirstName string       `json:"first_name" validate:"required,max=50"`
	LastName  string       `json:"last_name" validate:"required,max=50"`
	Email     string       `json:"email" validate:"required,email"`
	Phone     string       `json:"phone" validate:"required,sl_phone"`
	Password  string       `json:"password" validate:"required"`
	Address   AddressInput `json:"address" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string       `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string       `json:"last_name" validate:"omitempty,max=50"`
	Phone     *string       `json:"phone" validate:"omitempty,sl_phone"`
	Address   *AddressInput `json:"address" validate:"omitempty"`
}

type UpdatePreferencesRequest struct {
	EmailNotifications *bool `json:"email_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`
}

// Response DTOs

type UserResponse struct {
	ID          uuid.UUID              `json:"id"`
	FirstName   string                 `json:"first_name"`
	LastName    string                 `json:"last_name"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	Address     domainUser.Address     `json:"address"`
	Role        domainUser.Role        `json:"role"`
	IsVerified  bool                   `json:"is_verified"`
	Preferences domainUser.Preferences `json:"preferences"`
	CreatedAt   time.Time              `json:"created_at"`
}

type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		Role:        u.Role,
		IsVerified:  u.IsVerified,
		Preferences: u.Preferences,
		CreatedAt:   u.CreatedAt,
	}
}

func toAddress(a AddressInput) domainUser.Address {
	return domainUser.Address{
		Street:     a.Street,
		City:       a.City,
		District:   a.District,
		PostalCode: a.PostalCode,
	}
}
