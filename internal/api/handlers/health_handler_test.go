package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"romarchive/internal/models"
)

func TestHealthCheckAlwaysOK(t *testing.T) {
	health := new(MockHealthService)
	health.On("Check", mock.Anything).Return(models.HealthResponse{
		Status:   "degraded",
		Version:  "1.0.0",
		Database: "error",
	})

	rec := serveRequest(testHandlers(nil, nil, health), http.MethodGet, "/api/v1/health")

	// A broken database degrades the payload, never the status code.
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "degraded", got.Status)
	assert.Equal(t, "error", got.Database)
}
