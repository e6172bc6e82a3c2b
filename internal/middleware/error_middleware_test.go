package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolsafe/backend/internal/app/models/dto"
	"github.com/schoolsafe/backend/internal/pkg/apperrors"
)

func performWithError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, &resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"school not found", apperrors.ErrSchoolNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"schedule not found", apperrors.ErrScheduleNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"travel time not found", apperrors.ErrTravelTimeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate username", apperrors.ErrUsernameAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate school", apperrors.ErrSchoolAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"unknown token", apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"invalid reset token", apperrors.ErrInvalidResetToken, http.StatusBadRequest, dto.ErrorCodeInvalidResetToken},
		{"used reset token", apperrors.ErrResetTokenUsed, http.StatusBadRequest, dto.ErrorCodeInvalidResetToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"invalid setup key", apperrors.ErrInvalidSetupKey, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation failure", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := performWithError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_WrappedCustomError(t *testing.T) {
	err := apperrors.NewValidationError("end time must be after start time")

	rec, resp := performWithError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "end time must be after start time", resp.Error.Details)
}

func TestHandleAPIError_DeepWrap(t *testing.T) {
	// Sentinels wrapped with extra context still map to the right status
	err := errors.Join(errors.New("lookup failed"), apperrors.ErrScheduleNotFound)

	rec, resp := performWithError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}
