package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"kisanmitra/internal/model"
	"kisanmitra/internal/repository"
)

var ErrInvalidTransition = errors.New("invalid alert status transition")

// AlertService manages the counselor-facing alert lifecycle:
// pending -> acknowledged -> resolved, with escalated reachable from any
// non-resolved state.
type AlertService struct {
	alertRepo repository.AlertRepo
	logger    *zap.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(alertRepo repository.AlertRepo, logger *zap.Logger) *AlertService {
	return &AlertService{alertRepo: alertRepo, logger: logger}
}

// List returns alerts filtered by status and assignee; empty filters match all.
func (s *AlertService) List(ctx context.Context, status model.AlertStatus, assignedToID string) ([]*model.Alert, error) {
	return s.alertRepo.List(ctx, status, assignedToID)
}

// Get returns a single alert by id.
func (s *AlertService) Get(ctx context.Context, id string) (*model.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return alert, nil
}

// Acknowledge moves a pending alert to acknowledged.
func (s *AlertService) Acknowledge(ctx context.Context, id string) (*model.Alert, error) {
	return s.transition(ctx, id, model.AlertAcknowledged, "", func(current model.AlertStatus) bool {
		return current == model.AlertPending
	})
}

// Resolve closes an acknowledged or escalated alert with a resolution note.
func (s *AlertService) Resolve(ctx context.Context, id, resolution string) (*model.Alert, error) {
	return s.transition(ctx, id, model.AlertResolved, resolution, func(current model.AlertStatus) bool {
		return current == model.AlertAcknowledged || current == model.AlertEscalated
	})
}

// Escalate marks any non-resolved alert as escalated.
func (s *AlertService) Escalate(ctx context.Context, id string) (*model.Alert, error) {
	return s.transition(ctx, id, model.AlertEscalated, "", func(current model.AlertStatus) bool {
		return current != model.AlertResolved
	})
}

func (s *AlertService) transition(ctx context.Context, id string, to model.AlertStatus, resolution string, allowed func(model.AlertStatus) bool) (*model.Alert, error) {
	alert, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !allowed(alert.Status) {
		return nil, ErrInvalidTransition
	}

	if err := s.alertRepo.SetStatus(ctx, id, to, resolution); err != nil {
		return nil, err
	}
	s.logger.Info("alert status changed",
		zap.String("alert_id", id),
		zap.String("from", string(alert.Status)),
		zap.String("to", string(to)),
	)
	return s.Get(ctx, id)
}

// Assign routes an alert to a counselor, overriding any existing assignee.
func (s *AlertService) Assign(ctx context.Context, id, counselorID string) (*model.Alert, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.alertRepo.Assign(ctx, id, counselorID); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
