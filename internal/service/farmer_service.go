package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"kisanmitra/internal/model"
	"kisanmitra/internal/notify"
	"kisanmitra/internal/repository"
)

// FarmerService covers farmer profile access and the admin-side roster
// operations (listing, counselor assignment, reminders).
type FarmerService struct {
	farmerRepo repository.FarmerRepo
	adminRepo  repository.AdminRepo
	notifier   notify.Notifier
	logger     *zap.Logger
}

// NewFarmerService creates a new farmer service
func NewFarmerService(farmerRepo repository.FarmerRepo, adminRepo repository.AdminRepo, notifier notify.Notifier, logger *zap.Logger) *FarmerService {
	return &FarmerService{farmerRepo: farmerRepo, adminRepo: adminRepo, notifier: notifier, logger: logger}
}

// Get returns a farmer profile.
func (s *FarmerService) Get(ctx context.Context, id string) (*model.Farmer, error) {
	farmer, err := s.farmerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return farmer, nil
}

// List returns farmers, optionally filtered by district.
func (s *FarmerService) List(ctx context.Context, district string) ([]*model.Farmer, error) {
	return s.farmerRepo.List(ctx, district)
}

// AssignCounselor links a farmer to a counselor for alert routing. The
// counselor must exist and hold the counselor role.
func (s *FarmerService) AssignCounselor(ctx context.Context, farmerID, counselorID string) error {
	counselor, err := s.adminRepo.GetByID(ctx, counselorID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if counselor.Role != model.RoleCounselor {
		return ErrNotFound
	}

	if _, err := s.Get(ctx, farmerID); err != nil {
		return err
	}
	if err := s.farmerRepo.AssignCounselor(ctx, farmerID, counselorID); err != nil {
		return err
	}
	s.logger.Info("counselor assigned",
		zap.String("farmer_id", farmerID),
		zap.String("counselor_id", counselorID),
	)
	return nil
}

// Remind sends a check-in reminder to a farmer over the given channel.
func (s *FarmerService) Remind(ctx context.Context, farmerID, message, channel string) error {
	if _, err := s.Get(ctx, farmerID); err != nil {
		return err
	}
	if channel == "" {
		channel = notify.ChannelSMS
	}
	return s.notifier.SendReminder(ctx, farmerID, message, channel)
}
