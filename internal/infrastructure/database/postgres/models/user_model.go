package models

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the database model for user accounts.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName      string    `gorm:"type:varchar(50);not null"`
	LastName       string    `gorm:"type:varchar(50);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string    `gorm:"type:varchar(20);not null"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`

	Street     string `gorm:"type:varchar(200)"`
	City       string `gorm:"type:varchar(100)"`
	District   string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(5)"`

	Role       string `gorm:"type:varchar(20);not null;default:'customer';index"`
	IsVerified bool   `gorm:"not null;default:false"`

	EmailNotifications bool `gorm:"not null;default:true"`
	SMSNotifications   bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
