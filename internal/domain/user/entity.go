package user

import (
	"time"

	"github.com/google/uuid"
)

// Role grants capabilities: customers own requests, operators drive
// fulfillment transitions, admins additionally manage assignment.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

// CanTransition reports whether the role may move a request through
// fulfillment statuses.
func (r Role) CanTransition() bool {
	return r == RoleOperator || r == RoleAdmin
}

// Address is the account holder's postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}

// Preferences holds notification opt-ins.
type Preferences struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSNotifications   bool `json:"sms_notifications"`
}

// User is an account on the postal portal.
type User struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	PasswordHashed string
	Address        Address
	Role           Role
	IsVerified     bool
	Preferences    Preferences
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
