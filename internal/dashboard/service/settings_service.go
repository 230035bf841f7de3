package service

import (
	"context"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/logger"
)

// SettingsView is the connection settings screen.
type SettingsView struct {
	BackendURL string
	Probe      *Message
}

// SettingsService shows the configured backend and probes it on demand.
type SettingsService interface {
	Render(ctx context.Context, probe bool) *SettingsView
	Probe(ctx context.Context) *Message
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(backend repository.BackendRepository, cfg config.Backend, log *logger.Logger) SettingsService {
	return &settingsService{backend: backend, cfg: cfg, logger: log}
}

type settingsService struct {
	backend repository.BackendRepository
	cfg     config.Backend
	logger  *logger.Logger
}

func (s *settingsService) Render(ctx context.Context, probe bool) *SettingsView {
	view := &SettingsView{BackendURL: s.cfg.APIBaseURL()}
	if probe {
		view.Probe = s.Probe(ctx)
	}
	return view
}

// Probe checks the backend liveness endpoint. Any non-200 answer counts
// as an error reply; no answer at all is a connectivity failure.
func (s *settingsService) Probe(ctx context.Context) *Message {
	status, err := s.backend.Health(ctx)
	if err != nil {
		return &Message{Level: LevelError, Text: "❌ Cannot connect to Backend API"}
	}
	if !status.Up {
		s.logger.WarnContext(ctx, "Backend health check returned an error", logger.IntField("status_code", status.StatusCode))
		return &Message{Level: LevelError, Text: "❌ Backend API returned an error"}
	}
	return success("✅ Backend API is running")
}
