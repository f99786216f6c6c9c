package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrInvalidPage, http.StatusBadRequest},
		{ErrInvalidPageSize, http.StatusBadRequest},
		{ErrInvalidResetToken, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrProfileNotFound, http.StatusNotFound},
		{ErrSessionNotFound, http.StatusNotFound},
		{ErrGoalNotFound, http.StatusNotFound},
		{ErrCelebrationNotFound, http.StatusNotFound},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrSessionCompleted, http.StatusConflict},
		{ErrProviderError, http.StatusBadGateway},
		{ErrAIUnavailable, http.StatusBadGateway},
		{ErrDatabaseError, http.StatusInternalServerError},
		{errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)

			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.want, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRespondSuccessCarriesTraceID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "trace-123")

	RespondSuccess(c, gin.H{"answer": 42}, "done")

	assert.Equal(t, http.StatusOK, w.Code)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "trace-123", body.TraceID)
	assert.Equal(t, "done", body.Message)
}
