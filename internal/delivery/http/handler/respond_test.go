package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainPickup "postal-pickup-api/internal/domain/pickup"
	domainUser "postal-pickup-api/internal/domain/user"
	appErrors "postal-pickup-api/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation failure",
			err:        appErrors.NewValidationError(map[string]string{"ServiceType": "is required"}),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "past pickup date",
			err:        appErrors.NewAppError(appErrors.CodePastPickupDate, "Preferred pickup date cannot be in the past", domainPickup.ErrPastPickupDate),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "illegal transition",
			err:        appErrors.NewAppError(appErrors.CodeIllegalTransition, "Status transition not allowed", domainPickup.ErrIllegalTransition),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "request not found",
			err:        domainPickup.ErrRequestNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicate email",
			err:        domainUser.ErrUserAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid credentials",
			err:        appErrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "insufficient permissions",
			err:        appErrors.ErrInsufficientPermissions,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unexpected failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			respondWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
