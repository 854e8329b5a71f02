package pickup

import (
	"context"
	"errors"
	"time"

	domainPickup "postal-pickup-api/internal/domain/pickup"
	domainUser "postal-pickup-api/internal/domain/user"
	"postal-pickup-api/internal/logger"
	"postal-pickup-api/internal/tracking"
	appErrors "postal-pickup-api/pkg/errors"
	"postal-pickup-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	dashboardRecentCount = 5

	// trackingMaxAttempts bounds how many times Create regenerates a
	// tracking number after a uniqueness collision in the store.
	trackingMaxAttempts = 5
)

// Service implements pickup request use cases.
type Service struct {
	pickupRepo domainPickup.Repository
	userRepo   domainUser.Repository
	publisher  tracking.Publisher
}

// NewService creates a new pickup service. publisher may be nil when no
// broker is configured; status changes are then persisted without fan-out.
func NewService(
	pickupRepo domainPickup.Repository,
	userRepo domainUser.Repository,
	publisher tracking.Publisher,
) *Service {
	return &Service{
		pickupRepo: pickupRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

// Create registers a new pickup request: validates input, prices the item,
// seeds the timeline and persists with a freshly generated tracking number.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateRequest) (*RequestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := ValidatePickupDate(req.PreferredPickupDate, now); err != nil {
		return nil, err
	}

	priority := domainPickup.Priority(req.Priority)
	if priority == "" {
		priority = domainPickup.PriorityStandard
	}

	total, err := domainPickup.ComputeCost(
		domainPickup.ServiceType(req.ServiceType),
		req.ItemDetails.Weight,
		priority,
	)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Unknown service type", err)
	}

	estimated := EstimateDelivery(req.PreferredPickupDate, priority)

	request := &domainPickup.Request{
		ID:                  uuid.New(),
		UserID:              userID,
		ServiceType:         domainPickup.ServiceType(req.ServiceType),
		Priority:            priority,
		PickupAddress:       toAddress(req.PickupAddress),
		DeliveryAddress:     toAddress(req.DeliveryAddress),
		ItemDetails:         toItemDetails(req.ItemDetails),
		PreferredPickupDate: req.PreferredPickupDate,
		PreferredPickupTime: domainPickup.TimeSlot(req.PreferredPickupTime),
		SpecialInstructions: utils.SanitizeText(req.SpecialInstructions),
		Cost:                domainPickup.Cost{BaseCost: total},
		EstimatedDelivery:   &estimated,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	request.SetCharges(0)
	if req.PaymentMethod != nil {
		method := domainPickup.PaymentMethod(*req.PaymentMethod)
		request.PaymentMethod = &method
	}
	request.Seed(now)

	// The store enforces tracking-number uniqueness; regenerate on the
	// rare collision instead of failing the request.
	for attempt := 1; ; attempt++ {
		request.TrackingNumber = domainPickup.NewTrackingNumber(time.Now())
		err = s.pickupRepo.Create(ctx, request)
		if err == nil {
			break
		}
		if !errors.Is(err, domainPickup.ErrDuplicateTrackingNumber) || attempt >= trackingMaxAttempts {
			return nil, err
		}
		logger.Warn("Tracking number collision, regenerating",
			zap.String("tracking_number", request.TrackingNumber),
			zap.Int("attempt", attempt),
		)
	}

	logger.Info("Pickup request created",
		zap.String("request_id", request.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("tracking_number", request.TrackingNumber),
		zap.String("service_type", string(request.ServiceType)),
		zap.Int64("total_cost", request.Cost.TotalCost),
		zap.String("event", "pickup_request_created"),
	)

	return ToRequestResponse(request), nil
}

// ListMine returns the caller's requests, newest first.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID, page, limit int) (*ListResponse, error) {
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	requests, total, err := s.pickupRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]RequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = *ToRequestResponse(r)
	}

	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}

	return &ListResponse{
		Requests: responses,
		Pagination: Pagination{
			Current: page,
			Pages:   pages,
			Total:   total,
		},
	}, nil
}

// Track looks up a request by tracking number for the public tracking page.
func (s *Service) Track(ctx context.Context, trackingNumber string) (*TrackResponse, error) {
	if !domainPickup.IsTrackingNumber(trackingNumber) {
		return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Tracking number not found", domainPickup.ErrRequestNotFound)
	}

	request, err := s.pickupRepo.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}

	return ToTrackResponse(request), nil
}

// UpdateStatus moves a request through the fulfillment lifecycle. Only
// operators and admins may call this.
func (s *Service) UpdateStatus(ctx context.Context, actorRole domainUser.Role, id uuid.UUID, req *UpdateStatusRequest) (*RequestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if !actorRole.CanTransition() {
		return nil, appErrors.ErrInsufficientPermissions
	}

	request, err := s.pickupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domainPickup.Status(req.Status)
	if err := request.ApplyStatus(next, req.Location, req.Notes, time.Now()); err != nil {
		if errors.Is(err, domainPickup.ErrIllegalTransition) {
			return nil, appErrors.NewAppError(appErrors.CodeIllegalTransition, "Status transition not allowed", err)
		}
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid status", err)
	}

	request.UpdatedAt = time.Now()
	if err := s.pickupRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.publishStatusChange(request, req.Location)

	logger.Info("Pickup request status updated",
		zap.String("request_id", request.ID.String()),
		zap.String("tracking_number", request.TrackingNumber),
		zap.String("status", string(request.Status)),
		zap.String("event", "pickup_status_updated"),
	)

	return ToRequestResponse(request), nil
}

// Cancel performs a customer-initiated cancellation of their own request.
func (s *Service) Cancel(ctx context.Context, userID, id uuid.UUID) (*RequestResponse, error) {
	request, err := s.pickupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.UserID != userID {
		return nil, appErrors.ErrUnauthorized
	}

	if err := request.Cancel(time.Now()); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeIllegalTransition, "Request can no longer be cancelled", err)
	}

	request.UpdatedAt = time.Now()
	if err := s.pickupRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.publishStatusChange(request, "")

	logger.Info("Pickup request cancelled",
		zap.String("request_id", request.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("event", "pickup_request_cancelled"),
	)

	return ToRequestResponse(request), nil
}

// AssignAgent attaches an operator to a request. Admin only; the agent must
// hold the operator or admin role.
func (s *Service) AssignAgent(ctx context.Context, id uuid.UUID, req *AssignAgentRequest) (*RequestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	agent, err := s.userRepo.GetByID(ctx, req.AgentID)
	if err != nil {
		return nil, err
	}
	if !agent.Role.CanTransition() {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Assigned agent must be an operator", domainPickup.ErrAgentMissingOperatorRole)
	}

	request, err := s.pickupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request.AssignedAgentID = &agent.ID
	request.UpdatedAt = time.Now()
	if err := s.pickupRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("Agent assigned to pickup request",
		zap.String("request_id", request.ID.String()),
		zap.String("agent_id", agent.ID.String()),
		zap.String("event", "pickup_agent_assigned"),
	)

	return ToRequestResponse(request), nil
}

// Dashboard aggregates the caller's request history for the portal home
// page: per-status counts, total spent and the most recent requests.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	counts, err := s.pickupRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := make([]StatusStat, len(counts))
	var totalRequests, totalSpent int64
	for i, c := range counts {
		stats[i] = StatusStat{Status: c.Status, Count: c.Count, TotalCost: c.TotalCost}
		totalRequests += c.Count
		if c.Status != domainPickup.StatusCancelled {
			totalSpent += c.TotalCost
		}
	}

	recent, err := s.pickupRepo.RecentByUser(ctx, userID, dashboardRecentCount)
	if err != nil {
		return nil, err
	}

	recentResponses := make([]RequestResponse, len(recent))
	for i, r := range recent {
		recentResponses[i] = *ToRequestResponse(r)
	}

	return &DashboardResponse{
		Stats:          stats,
		TotalRequests:  totalRequests,
		TotalSpent:     totalSpent,
		RecentRequests: recentResponses,
	}, nil
}

// publishStatusChange fans the latest status out to the tracking topic.
// Delivery is best effort; a broker outage never fails the request.
func (s *Service) publishStatusChange(request *domainPickup.Request, location string) {
	if s.publisher == nil {
		return
	}

	event := tracking.Event{
		TrackingNumber: request.TrackingNumber,
		Status:         string(request.Status),
		Location:       location,
		Timestamp:      time.Now(),
	}
	if err := s.publisher.PublishStatusChange(event); err != nil {
		logger.Warn("Failed to publish tracking event",
			zap.String("tracking_number", request.TrackingNumber),
			zap.Error(err),
		)
	}
}
