package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
	"github.com/schoolsafe/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call
// this for every error path so status codes and payload shapes stay
// uniform across the API.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found", message)
	case errors.Is(err, apperrors.ErrSchoolNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "School not found", message)
	case errors.Is(err, apperrors.ErrScheduleNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Schedule not found", message)
	case errors.Is(err, apperrors.ErrMaterialNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Material not found", message)
	case errors.Is(err, apperrors.ErrTravelTimeNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Travel time not found", message)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found", message)

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists", message)
	case errors.Is(err, apperrors.ErrSchoolAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "School already exists", message)
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists", message)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials", message)
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", message)
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found", message)
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked", message)
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token", message)

	case errors.Is(err, apperrors.ErrInvalidResetToken):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidResetToken, "Invalid or expired reset token", message)
	case errors.Is(err, apperrors.ErrResetTokenUsed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidResetToken, "Reset token already used", message)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied", message)
	case errors.Is(err, apperrors.ErrInvalidSetupKey):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Invalid setup key", message)

	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed", message)
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request", message)

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", "")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message, details string) {
	errorDetail := dto.NewErrorDetail(code, message)
	if details != "" && details != message {
		errorDetail = errorDetail.WithDetails(details)
	}
	c.JSON(status, dto.NewErrorResponse(errorDetail))
}
