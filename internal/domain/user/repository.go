package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for user accounts. Email
// uniqueness is enforced by the store.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs Preferences) error
}
