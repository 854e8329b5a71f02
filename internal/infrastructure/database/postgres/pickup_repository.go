package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postal-pickup-api/internal/domain/pickup"
	"postal-pickup-api/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type PickupRepository struct {
	db *DB
}

func NewPickupRepository(db *DB) *PickupRepository {
	return &PickupRepository{db: db}
}

func (r *PickupRepository) Create(ctx context.Context, req *pickup.Request) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now

	dbModel := toPickupModel(req)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return pickup.ErrDuplicateTrackingNumber
		}
		return fmt.Errorf("failed to create pickup request: %w", err)
	}

	req.CreatedAt = dbModel.CreatedAt
	req.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *PickupRepository) GetByID(ctx context.Context, id uuid.UUID) (*pickup.Request, error) {
	var dbModel models.PickupRequestModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pickup.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pickup request: %w", err)
	}

	return toPickupEntity(&dbModel), nil
}

func (r *PickupRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*pickup.Request, error) {
	var dbModel models.PickupRequestModel
	err := r.db.DB.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pickup.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pickup request: %w", err)
	}

	return toPickupEntity(&dbModel), nil
}

// Update persists all mutable fields. The tracking number is deliberately
// excluded; once assigned it never changes.
func (r *PickupRepository) Update(ctx context.Context, req *pickup.Request) error {
	req.UpdatedAt = time.Now()

	var paymentMethod *string
	if req.PaymentMethod != nil {
		m := string(*req.PaymentMethod)
		paymentMethod = &m
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.PickupRequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"service_type":          string(req.ServiceType),
			"priority":              string(req.Priority),
			"status":                string(req.Status),
			"pickup_address":        models.AddressColumn(req.PickupAddress),
			"delivery_address":      models.AddressColumn(req.DeliveryAddress),
			"item_details":          models.ItemDetailsColumn{ItemDetails: req.ItemDetails},
			"preferred_pickup_date": req.PreferredPickupDate,
			"preferred_pickup_time": string(req.PreferredPickupTime),
			"special_instructions":  req.SpecialInstructions,
			"base_cost":             req.Cost.BaseCost,
			"additional_charges":    req.Cost.AdditionalCharges,
			"total_cost":            req.Cost.TotalCost,
			"payment_status":        string(req.PaymentStatus),
			"payment_method":        paymentMethod,
			"timeline":              models.TimelineColumn(req.Timeline),
			"assigned_agent_id":     req.AssignedAgentID,
			"estimated_delivery":    req.EstimatedDelivery,
			"actual_delivery":       req.ActualDelivery,
			"updated_at":            req.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update pickup request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pickup.ErrRequestNotFound
	}

	return nil
}

func (r *PickupRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*pickup.Request, int64, error) {
	var total int64
	query := r.db.DB.WithContext(ctx).
		Model(&models.PickupRequestModel{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pickup requests: %w", err)
	}

	var dbModels []models.PickupRequestModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pickup requests: %w", err)
	}

	requests := make([]*pickup.Request, len(dbModels))
	for i := range dbModels {
		requests[i] = toPickupEntity(&dbModels[i])
	}

	return requests, total, nil
}

func (r *PickupRepository) CountByStatus(ctx context.Context, userID uuid.UUID) ([]pickup.StatusCount, error) {
	var rows []struct {
		Status    string
		Count     int64
		TotalCost int64
	}

	err := r.db.DB.WithContext(ctx).
		Model(&models.PickupRequestModel{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_cost), 0) AS total_cost").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pickup requests by status: %w", err)
	}

	counts := make([]pickup.StatusCount, len(rows))
	for i, row := range rows {
		counts[i] = pickup.StatusCount{
			Status:    pickup.Status(row.Status),
			Count:     row.Count,
			TotalCost: row.TotalCost,
		}
	}

	return counts, nil
}

func (r *PickupRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*pickup.Request, error) {
	var dbModels []models.PickupRequestModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent pickup requests: %w", err)
	}

	requests := make([]*pickup.Request, len(dbModels))
	for i := range dbModels {
		requests[i] = toPickupEntity(&dbModels[i])
	}

	return requests, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toPickupModel(req *pickup.Request) *models.PickupRequestModel {
	var paymentMethod *string
	if req.PaymentMethod != nil {
		m := string(*req.PaymentMethod)
		paymentMethod = &m
	}

	return &models.PickupRequestModel{
		ID:                  req.ID,
		UserID:              req.UserID,
		TrackingNumber:      req.TrackingNumber,
		ServiceType:         string(req.ServiceType),
		Priority:            string(req.Priority),
		Status:              string(req.Status),
		PickupAddress:       models.AddressColumn(req.PickupAddress),
		DeliveryAddress:     models.AddressColumn(req.DeliveryAddress),
		ItemDetails:         models.ItemDetailsColumn{ItemDetails: req.ItemDetails},
		PreferredPickupDate: req.PreferredPickupDate,
		PreferredPickupTime: string(req.PreferredPickupTime),
		SpecialInstructions: req.SpecialInstructions,
		BaseCost:            req.Cost.BaseCost,
		AdditionalCharges:   req.Cost.AdditionalCharges,
		TotalCost:           req.Cost.TotalCost,
		PaymentStatus:       string(req.PaymentStatus),
		PaymentMethod:       paymentMethod,
		Timeline:            models.TimelineColumn(req.Timeline),
		AssignedAgentID:     req.AssignedAgentID,
		EstimatedDelivery:   req.EstimatedDelivery,
		ActualDelivery:      req.ActualDelivery,
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           req.UpdatedAt,
	}
}

func toPickupEntity(m *models.PickupRequestModel) *pickup.Request {
	var paymentMethod *pickup.PaymentMethod
	if m.PaymentMethod != nil {
		method := pickup.PaymentMethod(*m.PaymentMethod)
		paymentMethod = &method
	}

	return &pickup.Request{
		ID:                  m.ID,
		UserID:              m.UserID,
		TrackingNumber:      m.TrackingNumber,
		ServiceType:         pickup.ServiceType(m.ServiceType),
		Priority:            pickup.Priority(m.Priority),
		Status:              pickup.Status(m.Status),
		PickupAddress:       pickup.Address(m.PickupAddress),
		DeliveryAddress:     pickup.Address(m.DeliveryAddress),
		ItemDetails:         m.ItemDetails.ItemDetails,
		PreferredPickupDate: m.PreferredPickupDate,
		PreferredPickupTime: pickup.TimeSlot(m.PreferredPickupTime),
		SpecialInstructions: m.SpecialInstructions,
		Cost: pickup.Cost{
			BaseCost:          m.BaseCost,
			AdditionalCharges: m.AdditionalCharges,
			TotalCost:         m.TotalCost,
		},
		PaymentStatus:     pickup.PaymentStatus(m.PaymentStatus),
		PaymentMethod:     paymentMethod,
		Timeline:          []pickup.TimelineEntry(m.Timeline),
		AssignedAgentID:   m.AssignedAgentID,
		EstimatedDelivery: m.EstimatedDelivery,
		ActualDelivery:    m.ActualDelivery,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
