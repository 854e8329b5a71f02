package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"postal-pickup-api/internal/config"
	domainUser "postal-pickup-api/internal/domain/user"
	"postal-pickup-api/internal/logger"
	appErrors "postal-pickup-api/pkg/errors"
	"postal-pickup-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements user account use cases.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

// NewService creates a new user service.
func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Register creates a customer account and returns a signed access token.
// All self-registered accounts get the customer role; operator and admin
// accounts are provisioned out of band.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeWeakPassword, err.Error(), nil)
	}

	email := utils.SanitizeEmail(req.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, domainUser.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &domainUser.User{
		ID:             uuid.New(),
		FirstName:      utils.SanitizeString(req.FirstName),
		LastName:       utils.SanitizeString(req.LastName),
		Email:          email,
		Phone:          utils.SanitizePhone(req.Phone),
		PasswordHashed: hashedPassword,
		Address:        toAddress(req.Address),
		Role:           domainUser.RoleCustomer,
		Preferences: domainUser.Preferences{
			EmailNotifications: true,
			SMSNotifications:   true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateToken(
		account.ID,
		account.Email,
		string(account.Role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered successfully",
		zap.String("user_id", account.ID.String()),
		zap.String("email", account.Email),
		zap.String("event", "user_registered"),
	)

	return &AuthResponse{
		User:      ToUserResponse(account),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login verifies credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	account, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_user_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(account.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", account.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(
		account.ID,
		account.Email,
		string(account.Role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", account.ID.String()),
		zap.String("role", string(account.Role)),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		User:      ToUserResponse(account),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile returns the caller's account.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(account), nil
}

// UpdateProfile applies partial profile changes. Email and password cannot
// be changed through this path.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		account.FirstName = utils.SanitizeString(*req.FirstName)
	}
	if req.LastName != nil {
		account.LastName = utils.SanitizeString(*req.LastName)
	}
	if req.Phone != nil {
		account.Phone = utils.SanitizePhone(*req.Phone)
	}
	if req.Address != nil {
		account.Address = toAddress(*req.Address)
	}
	account.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("User profile updated",
		zap.String("user_id", account.ID.String()),
		zap.String("event", "profile_updated"),
	)

	return ToUserResponse(account), nil
}

// UpdatePreferences toggles notification opt-ins. Omitted fields keep their
// current value.
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *UpdatePreferencesRequest) (*UserResponse, error) {
	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := account.Preferences
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		prefs.SMSNotifications = *req.SMSNotifications
	}

	if err := s.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}
	account.Preferences = prefs

	logger.Info("User preferences updated",
		zap.String("user_id", userID.String()),
		zap.Bool("email_notifications", prefs.EmailNotifications),
		zap.Bool("sms_notifications", prefs.SMSNotifications),
		zap.String("event", "preferences_updated"),
	)

	return ToUserResponse(account), nil
}
