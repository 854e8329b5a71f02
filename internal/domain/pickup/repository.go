package pickup

import (
	"context"

	"github.com/google/uuid"
)

// StatusCount aggregates requests per status for dashboards.
type StatusCount struct {
	Status    Status
	Count     int64
	TotalCost int64
}

// Repository is the persistence boundary for pickup requests. The store
// must enforce tracking-number uniqueness as a hard constraint and
// serialize per-record updates.
type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*Request, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*Request, error)
	Update(ctx context.Context, req *Request) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]*Request, int64, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) ([]StatusCount, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Request, error)
}
