package pickup

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType classifies what kind of mail item is being picked up.
type ServiceType string

const (
	ServiceLetter   ServiceType = "letter"
	ServiceDocument ServiceType = "document"
	ServicePackage  ServiceType = "package"
	ServiceGoods    ServiceType = "goods"
)

// Priority selects the requested service speed.
type Priority string

const (
	PriorityStandard Priority = "standard"
	PriorityExpress  Priority = "express"
	PriorityUrgent   Priority = "urgent"
)

// Status represents the fulfillment state of a pickup request.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus tracks payment settlement for a request.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PaymentMethod is how the customer chose to pay.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentMobileWallet PaymentMethod = "mobile_wallet"
)

// TimeSlot is the preferred pickup window.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// Address is a structured Sri Lankan postal address with contact details.
type Address struct {
	Street        string `json:"street"`
	City          string `json:"city"`
	District      string `json:"district"`
	PostalCode    string `json:"postal_code"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
}

// Dimensions of the item in centimetres.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ItemDetails describes the physical item to be collected.
type ItemDetails struct {
	Description string      `json:"description"`
	Weight      float64     `json:"weight"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	Value       float64     `json:"value"`
	Fragile     bool        `json:"fragile"`
}

// Cost is the priced breakdown of a request. TotalCost is always
// BaseCost + AdditionalCharges and is never set independently.
type Cost struct {
	BaseCost          int64 `json:"base_cost"`
	AdditionalCharges int64 `json:"additional_charges"`
	TotalCost         int64 `json:"total_cost"`
}

// TimelineEntry is one step of the audit trail. Entries are append-only
// and never reordered or mutated after insertion.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Request is a customer's pickup request.
type Request struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	TrackingNumber string

	ServiceType ServiceType
	Priority    Priority

	PickupAddress   Address
	DeliveryAddress Address
	ItemDetails     ItemDetails

	PreferredPickupDate time.Time
	PreferredPickupTime TimeSlot
	SpecialInstructions string

	Status        Status
	Cost          Cost
	PaymentStatus PaymentStatus
	PaymentMethod *PaymentMethod

	Timeline []TimelineEntry

	AssignedAgentID   *uuid.UUID
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetCharges adjusts the additional charges and rederives the total.
func (r *Request) SetCharges(additional int64) {
	r.Cost.AdditionalCharges = additional
	r.Cost.TotalCost = r.Cost.BaseCost + r.Cost.AdditionalCharges
}

// AppendTimeline adds one audit entry. All status mutations go through
// ApplyStatus or Cancel; this only grows the trail.
func (r *Request) AppendTimeline(status, location, notes string, at time.Time) {
	r.Timeline = append(r.Timeline, TimelineEntry{
		Status:    status,
		Location:  location,
		Notes:     notes,
		Timestamp: at,
	})
}

// ValidServiceTypes lists the accepted service types.
func ValidServiceTypes() []ServiceType {
	return []ServiceType{ServiceLetter, ServiceDocument, ServicePackage, ServiceGoods}
}

// ValidStatuses lists the accepted fulfillment statuses.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusPickedUp, StatusInTransit, StatusDelivered, StatusCancelled}
}
