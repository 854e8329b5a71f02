package handler

import (
	"errors"
	"net/http"

	domainPickup "postal-pickup-api/internal/domain/pickup"
	domainUser "postal-pickup-api/internal/domain/user"
	appErrors "postal-pickup-api/pkg/errors"
	"postal-pickup-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondWithError maps service errors onto HTTP status codes and the
// standard response envelope.
func respondWithError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.CodeValidation:
			if len(appErr.Fields) > 0 {
				utils.ValidationErrorResponse(c, http.StatusBadRequest, appErr.Message, appErr.Fields)
				return
			}
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		case appErrors.CodePastPickupDate, appErrors.CodeWeakPassword, appErrors.CodeIllegalTransition:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		case appErrors.CodeDuplicateTracking:
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
		case appErrors.CodeNotFound:
			utils.ErrorResponse(c, http.StatusNotFound, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, appErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, domainPickup.ErrRequestNotFound),
		errors.Is(err, domainUser.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainUser.ErrUserAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainPickup.ErrDuplicateTrackingNumber):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrUnauthorized),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUserID reads the authenticated user from the gin context. Returns
// false after writing the error response when the context is missing it.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}
