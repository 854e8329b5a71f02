package pickup

import (
	"time"

	domainPickup "postal-pickup-api/internal/domain/pickup"

	"github.com/google/uuid"
)

// Request DTOs

type AddressInput struct {
	Street        string `json:"street" validate:"required,max=200"`
	City          string `json:"city" validate:"required,max=100"`
	District      string `json:"district" validate:"required,max=100"`
	PostalCode    string `json:"postal_code" validate:"required,postal_code"`
	ContactPerson string `json:"contact_person" validate:"required,max=100"`
	ContactPhone  string `json:"contact_phone" validate:"required,sl_phone"`
}

type DimensionsInput struct {
	Length float64 `json:"length" validate:"required,min=0"`
	Width  float64 `json:"width" validate:"required,min=0"`
	Height float64 `json:"height" validate:"required,min=0"`
}

type ItemDetailsInput struct {
	Description string           `json:"description" validate:"required,min=10,max=500"`
	Weight      float64          `json:"weight" validate:"required,min=0.1"`
	Dimensions  *DimensionsInput `json:"dimensions" validate:"omitempty"`
	Value       float64          `json:"value" validate:"omitempty,min=0"`
	Fragile     bool             `json:"fragile"`
}

type CreateRequest struct {
	ServiceType         string           `json:"service_type" validate:"required,service_type"`
	Priority            string           `json:"priority" validate:"omitempty,priority"`
	PickupAddress       AddressInput     `json:"pickup_address" validate:"required"`
	DeliveryAddress     AddressInput     `json:"delivery_address" validate:"required"`
	ItemDetails         ItemDetailsInput `json:"item_details" validate:"required"`
	PreferredPickupDate time.Time        `json:"preferred_pickup_date" validate:"required"`
	PreferredPickupTime string           `json:"preferred_pickup_time" validate:"required,pickup_time"`
	SpecialInstructions string           `json:"special_instructions" validate:"omitempty,max=1000"`
	PaymentMethod       *string          `json:"payment_method" validate:"omitempty,payment_method"`
}

type UpdateStatusRequest struct {
	Status   string `json:"status" validate:"required,pickup_status"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

type AssignAgentRequest struct {
	AgentID uuid.UUID `json:"agent_id" validate:"required"`
}

// Response DTOs

type CostResponse struct {
	BaseCost          int64 `json:"base_cost"`
	AdditionalCharges int64 `json:"additional_charges"`
	TotalCost         int64 `json:"total_cost"`
}

type RequestResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	TrackingNumber      string                       `json:"tracking_number"`
	ServiceType         domainPickup.ServiceType     `json:"service_type"`
	Priority            domainPickup.Priority        `json:"priority"`
	Status              domainPickup.Status          `json:"status"`
	PickupAddress       domainPickup.Address         `json:"pickup_address"`
	DeliveryAddress     domainPickup.Address         `json:"delivery_address"`
	ItemDetails         domainPickup.ItemDetails     `json:"item_details"`
	PreferredPickupDate time.Time                    `json:"preferred_pickup_date"`
	PreferredPickupTime domainPickup.TimeSlot        `json:"preferred_pickup_time"`
	SpecialInstructions string                       `json:"special_instructions,omitempty"`
	Cost                CostResponse                 `json:"cost"`
	PaymentStatus       domainPickup.PaymentStatus   `json:"payment_status"`
	PaymentMethod       *domainPickup.PaymentMethod  `json:"payment_method,omitempty"`
	Timeline            []domainPickup.TimelineEntry `json:"timeline"`
	AssignedAgentID     *uuid.UUID                   `json:"assigned_agent_id,omitempty"`
	EstimatedDelivery   *time.Time                   `json:"estimated_delivery,omitempty"`
	ActualDelivery      *time.Time                   `json:"actual_delivery,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

// Pagination mirrors the portal's paging envelope.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type ListResponse struct {
	Requests   []RequestResponse `json:"requests"`
	Pagination Pagination        `json:"pagination"`
}

// TrackResponse is the public tracking view. It deliberately omits
// addresses, cost and payment details.
type TrackResponse struct {
	TrackingNumber    string                       `json:"tracking_number"`
	ServiceType       domainPickup.ServiceType     `json:"service_type"`
	Status            domainPickup.Status          `json:"status"`
	Timeline          []domainPickup.TimelineEntry `json:"timeline"`
	EstimatedDelivery *time.Time                   `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time                   `json:"actual_delivery,omitempty"`
	CreatedAt         time.Time                    `json:"created_at"`
}

type StatusStat struct {
	Status    domainPickup.Status `json:"status"`
	Count     int64               `json:"count"`
	TotalCost int64               `json:"total_cost"`
}

type DashboardResponse struct {
	Stats          []StatusStat      `json:"stats"`
	TotalRequests  int64             `json:"total_requests"`
	TotalSpent     int64             `json:"total_spent"`
	RecentRequests []RequestResponse `json:"recent_requests"`
}

// Mapping helpers

func ToRequestResponse(r *domainPickup.Request) *RequestResponse {
	return &RequestResponse{
		ID:                  r.ID,
		TrackingNumber:      r.TrackingNumber,
		ServiceType:         r.ServiceType,
		Priority:            r.Priority,
		Status:              r.Status,
		PickupAddress:       r.PickupAddress,
		DeliveryAddress:     r.DeliveryAddress,
		ItemDetails:         r.ItemDetails,
		PreferredPickupDate: r.PreferredPickupDate,
		PreferredPickupTime: r.PreferredPickupTime,
		SpecialInstructions: r.SpecialInstructions,
		Cost: CostResponse{
			BaseCost:          r.Cost.BaseCost,
			AdditionalCharges: r.Cost.AdditionalCharges,
			TotalCost:         r.Cost.TotalCost,
		},
		PaymentStatus:     r.PaymentStatus,
		PaymentMethod:     r.PaymentMethod,
		Timeline:          r.Timeline,
		AssignedAgentID:   r.AssignedAgentID,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func ToTrackResponse(r *domainPickup.Request) *TrackResponse {
	return &TrackResponse{
		TrackingNumber:    r.TrackingNumber,
		ServiceType:       r.ServiceType,
		Status:            r.Status,
		Timeline:          r.Timeline,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
		CreatedAt:         r.CreatedAt,
	}
}

func toAddress(a AddressInput) domainPickup.Address {
	return domainPickup.Address{
		Street:        a.Street,
		City:          a.City,
		District:      a.District,
		PostalCode:    a.PostalCode,
		ContactPerson: a.ContactPerson,
		ContactPhone:  a.ContactPhone,
	}
}

func toItemDetails(d ItemDetailsInput) domainPickup.ItemDetails {
	details := domainPickup.ItemDetails{
		Description: d.Description,
		Weight:      d.Weight,
		Value:       d.Value,
		Fragile:     d.Fragile,
	}
	if d.Dimensions != nil {
		details.Dimensions = &domainPickup.Dimensions{
			Length: d.Dimensions.Length,
			Width:  d.Dimensions.Width,
			Height: d.Dimensions.Height,
		}
	}
	return details
}
