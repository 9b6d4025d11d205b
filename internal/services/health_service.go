package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"romarchive/internal/models"
)

var _ HealthService = (*healthService)(nil)

// Pinger is the slice of the repository the health probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	Store   Pinger
	Version string
	Log     *logrus.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(store Pinger, version string, log *logrus.Logger) *healthService {
	return &healthService{Store: store, Version: version, Log: log}
}

// Check probes the archive database. A failing probe degrades the report
// instead of failing the request, so load balancers always get an answer.
func (s *healthService) Check(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{
		Status:   "healthy",
		Version:  s.Version,
		Database: "connected",
	}
	if err := s.Store.Ping(ctx); err != nil {
		s.Log.WithError(err).Warn("health probe: archive database unreachable")
		resp.Status = "degraded"
		resp.Database = "error"
	}
	return resp
}
