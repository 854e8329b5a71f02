package user

import (
	"context"
	"os"
	"testing"

	"postal-pickup-api/internal/config"
	domainUser "postal-pickup-api/internal/domain/user"
	"postal-pickup-api/internal/logger"
	appErrors "postal-pickup-api/pkg/errors"
	"postal-pickup-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	byID map[uuid.UUID]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[uuid.UUID]*domainUser.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domainUser.User) error {
	clone := *u
	f.byID[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domainUser.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *domainUser.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return domainUser.ErrUserNotFound
	}
	clone := *u
	f.byID[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) UpdatePreferences(_ context.Context, id uuid.UUID, prefs domainUser.Preferences) error {
	u, ok := f.byID[id]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.Preferences = prefs
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		FirstName: "Nimal",
		LastName:  "Perera",
		Email:     "nimal@example.com",
		Phone:     "0771234567",
		Password:  "s3cretpw",
		Address: AddressInput{
			Street:     "12 Temple Road",
			City:       "Kandy",
			District:   "Kandy",
			PostalCode: "20000",
		},
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, domainUser.RoleCustomer, resp.User.Role)
	assert.Equal(t, "nimal@example.com", resp.User.Email)
	assert.True(t, resp.User.Preferences.EmailNotifications)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)

	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpw", stored.PasswordHashed)
	assert.True(t, utils.CheckPassword(stored.PasswordHashed, "s3cretpw"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, domainUser.ErrUserAlreadyExists)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	req := validRegisterRequest()
	req.Password = "abc"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeWeakPassword, appErr.Code)
}

func TestRegisterRejectsInvalidPhone(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())

	req := validRegisterRequest()
	req.Phone = "12345"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
	assert.Contains(t, appErr.Fields, "Phone")
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nimal@example.com",
		Password: "s3cretpw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "nimal@example.com", resp.User.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "nimal@example.com",
		Password: "wrongpass",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cretpw",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestUpdateProfileKeepsEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	newPhone := "+94719876543"
	resp, err := svc.UpdateProfile(context.Background(), registered.User.ID, &UpdateProfileRequest{
		Phone: &newPhone,
	})
	require.NoError(t, err)

	assert.Equal(t, "+94719876543", resp.Phone)
	assert.Equal(t, "nimal@example.com", resp.Email)
	assert.Equal(t, "Nimal", resp.FirstName)
}

func TestUpdatePreferences(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testConfig())

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	off := false
	resp, err := svc.UpdatePreferences(context.Background(), registered.User.ID, &UpdatePreferencesRequest{
		SMSNotifications: &off,
	})
	require.NoError(t, err)

	assert.True(t, resp.Preferences.EmailNotifications)
	assert.False(t, resp.Preferences.SMSNotifications)

	stored, err := repo.GetByID(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.False(t, stored.Preferences.SMSNotifications)
}
