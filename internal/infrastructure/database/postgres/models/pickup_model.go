package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"postal-pickup-api/internal/domain/pickup"

	"github.com/google/uuid"
)

// AddressColumn stores a structured address as JSONB.
type AddressColumn pickup.Address

func (a AddressColumn) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AddressColumn) Scan(value interface{}) error {
	return scanJSON(value, a)
}

// ItemDetailsColumn stores item details as JSONB. It embeds the domain
// struct (rather than being a defined type of it) because the struct's
// Value field would otherwise collide with the driver.Valuer method.
type ItemDetailsColumn struct {
	pickup.ItemDetails
}

func (i ItemDetailsColumn) Value() (driver.Value, error) {
	return json.Marshal(i.ItemDetails)
}

func (i *ItemDetailsColumn) Scan(value interface{}) error {
	return scanJSON(value, &i.ItemDetails)
}

// TimelineColumn stores the append-only audit trail as JSONB.
type TimelineColumn []pickup.TimelineEntry

func (t TimelineColumn) Value() (driver.Value, error) {
	if t == nil {
		t = TimelineColumn{}
	}
	return json.Marshal(t)
}

func (t *TimelineColumn) Scan(value interface{}) error {
	return scanJSON(value, t)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

// PickupRequestModel represents the database model for pickup requests.
type PickupRequestModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingNumber string    `gorm:"type:varchar(15);not null;uniqueIndex"`

	ServiceType string `gorm:"type:varchar(20);not null"`
	Priority    string `gorm:"type:varchar(20);not null;default:'standard'"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending';index"`

	PickupAddress   AddressColumn     `gorm:"type:jsonb;not null"`
	DeliveryAddress AddressColumn     `gorm:"type:jsonb;not null"`
	ItemDetails     ItemDetailsColumn `gorm:"type:jsonb;not null"`

	PreferredPickupDate time.Time `gorm:"type:date;not null"`
	PreferredPickupTime string    `gorm:"type:varchar(20);not null"`
	SpecialInstructions string    `gorm:"type:text"`

	BaseCost          int64 `gorm:"type:bigint;not null"`
	AdditionalCharges int64 `gorm:"type:bigint;not null;default:0"`
	TotalCost         int64 `gorm:"type:bigint;not null"`

	PaymentStatus string  `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod *string `gorm:"type:varchar(20)"`

	Timeline TimelineColumn `gorm:"type:jsonb;not null"`

	AssignedAgentID   *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedDelivery *time.Time `gorm:"type:timestamptz"`
	ActualDelivery    *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	User          *UserModel `gorm:"foreignKey:UserID"`
	AssignedAgent *UserModel `gorm:"foreignKey:AssignedAgentID"`
}

func (PickupRequestModel) TableName() string {
	return "pickup_requests"
}
