package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"kisanmitra/internal/assessment"
	"kisanmitra/internal/model"
	"kisanmitra/internal/notify"
	"kisanmitra/internal/repository"
)

var ErrNotFound = errors.New("not found")

const maxNotesLength = 1000

// ValidationError reports a rejected check-in field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validCrop   = map[string]bool{model.CropExcellent: true, model.CropGood: true, model.CropModerate: true, model.CropPoor: true, model.CropDestroyed: true}
	validLoan   = map[string]bool{model.LoanNone: true, model.LoanLow: true, model.LoanMedium: true, model.LoanHigh: true, model.LoanSevere: true}
	validSleep  = map[string]bool{model.SleepGood: true, model.SleepFair: true, model.SleepPoor: true, model.SleepVeryPoor: true}
	validFamily = map[string]bool{model.FamilyStrong: true, model.FamilyModerate: true, model.FamilyWeak: true, model.FamilyNone: true}
)

// ValidateCheckInInput rejects malformed submissions before scoring.
func ValidateCheckInInput(input model.CheckInInput) error {
	if !validCrop[input.CropCondition] {
		return &ValidationError{Field: "cropCondition", Message: "unknown value"}
	}
	if !validLoan[input.LoanPressure] {
		return &ValidationError{Field: "loanPressure", Message: "unknown value"}
	}
	if !validSleep[input.SleepQuality] {
		return &ValidationError{Field: "sleepQuality", Message: "unknown value"}
	}
	if !validFamily[input.FamilySupport] {
		return &ValidationError{Field: "familySupport", Message: "unknown value"}
	}
	if input.HopeLevel < 1 || input.HopeLevel > 10 {
		return &ValidationError{Field: "hopeLevel", Message: "must be between 1 and 10"}
	}
	if len([]rune(input.Notes)) > maxNotesLength {
		return &ValidationError{Field: "notes", Message: "too long"}
	}
	return nil
}

// CheckInResult is what a farmer gets back for a submission.
type CheckInResult struct {
	CheckIn    *model.CheckIn        `json:"checkIn"`
	Assessment model.FinalAssessment `json:"assessment"`
	Feedback   model.Feedback        `json:"feedback"`
}

// CheckInService runs the scoring pipeline for submissions and owns the
// alert side effects that follow from a verdict.
type CheckInService struct {
	checkInRepo repository.CheckInRepo
	alertRepo   repository.AlertRepo
	farmerRepo  repository.FarmerRepo
	adminRepo   repository.AdminRepo
	notifier    notify.Notifier
	broadcaster Broadcaster
	logger      *zap.Logger

	reconcileWindow time.Duration
}

// NewCheckInService creates a new check-in service
func NewCheckInService(
	checkInRepo repository.CheckInRepo,
	alertRepo repository.AlertRepo,
	farmerRepo repository.FarmerRepo,
	adminRepo repository.AdminRepo,
	notifier notify.Notifier,
	broadcaster Broadcaster,
	logger *zap.Logger,
) *CheckInService {
	return &CheckInService{
		checkInRepo:     checkInRepo,
		alertRepo:       alertRepo,
		farmerRepo:      farmerRepo,
		adminRepo:       adminRepo,
		notifier:        notifier,
		broadcaster:     broadcaster,
		logger:          logger,
		reconcileWindow: 24 * time.Hour,
	}
}

// Submit scores a questionnaire, persists the check-in, and raises an alert
// when the verdict demands one. The check-in record is committed before any
// alert work; if the alert write then fails the error is surfaced but the
// check-in stays, and the reconciler closes the gap later.
func (s *CheckInService) Submit(ctx context.Context, farmerID string, input model.CheckInInput) (*CheckInResult, error) {
	if err := ValidateCheckInInput(input); err != nil {
		return nil, err
	}

	farmer, err := s.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	structured := assessment.Assess(input)
	final := assessment.Fuse(structured, input, farmer.Language)
	decision := assessment.Decide(final)

	checkIn := &model.CheckIn{
		FarmerID:        farmerID,
		Input:           input,
		RiskScore:       final.FinalRiskScore,
		RiskLevel:       final.FinalRiskLevel,
		CriticalFactors: final.CombinedCriticalFactors,
		AlertTriggered:  decision.TriggersAlert,
	}
	checkInID, err := s.checkInRepo.Create(ctx, checkIn)
	if err != nil {
		return nil, err
	}

	if decision.TriggersAlert {
		if err := s.raiseAlert(ctx, farmer, checkIn, decision.Severity); err != nil {
			return nil, err
		}
	}

	s.logger.Info("check-in scored",
		zap.String("farmer_id", farmerID),
		zap.String("checkin_id", checkInID),
		zap.Int("risk_score", final.FinalRiskScore),
		zap.String("risk_level", string(final.FinalRiskLevel)),
		zap.Bool("alert_triggered", decision.TriggersAlert),
	)

	feedback := assessment.GenerateFeedback(final.FinalRiskLevel, final.CombinedCriticalFactors, farmer.Language)

	return &CheckInResult{
		CheckIn:    checkIn,
		Assessment: final,
		Feedback:   feedback,
	}, nil
}

// raiseAlert persists the alert, escalates farmer status on CRITICAL, and
// dispatches counselor notifications. Notification failures are logged and
// swallowed; only the alert write itself can fail the submission.
func (s *CheckInService) raiseAlert(ctx context.Context, farmer *model.Farmer, checkIn *model.CheckIn, severity model.AlertSeverity) error {
	alert := &model.Alert{
		FarmerID:     farmer.ID,
		CheckInID:    checkIn.ID,
		Severity:     severity,
		Status:       model.AlertPending,
		AssignedToID: farmer.AssignedCounselorID,
	}
	if _, err := s.alertRepo.Create(ctx, alert); err != nil {
		s.logger.Error("alert write failed after check-in commit",
			zap.String("checkin_id", checkIn.ID), zap.Error(err))
		return err
	}

	if checkIn.RiskLevel == model.RiskCritical && farmer.Status != model.FarmerStatusCriticalWatch {
		if err := s.farmerRepo.UpdateStatus(ctx, farmer.ID, model.FarmerStatusCriticalWatch); err != nil {
			s.logger.Warn("farmer status update failed",
				zap.String("farmer_id", farmer.ID), zap.Error(err))
		}
	}

	notified := s.notifyCounselor(ctx, farmer, alert)
	checkIn.CounselorNotified = notified
	if err := s.checkInRepo.UpdateFlags(ctx, checkIn.ID, true, notified); err != nil {
		s.logger.Warn("check-in flag update failed",
			zap.String("checkin_id", checkIn.ID), zap.Error(err))
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastAlert(alert, farmer)
	}
	return nil
}

func (s *CheckInService) notifyCounselor(ctx context.Context, farmer *model.Farmer, alert *model.Alert) bool {
	if alert.AssignedToID == "" {
		return false
	}
	counselor, err := s.adminRepo.GetByID(ctx, alert.AssignedToID)
	if err != nil {
		s.logger.Warn("assigned counselor lookup failed",
			zap.String("counselor_id", alert.AssignedToID), zap.Error(err))
		return false
	}
	if err := s.notifier.SendAlert(ctx, counselor.Phone, farmer.Name, severityRiskLevel(alert.Severity), farmer.District); err != nil {
		s.logger.Warn("counselor notification failed",
			zap.String("alert_id", alert.ID), zap.Error(err))
		return false
	}
	return true
}

func severityRiskLevel(severity model.AlertSeverity) model.RiskLevel {
	if severity == model.SeverityCritical {
		return model.RiskCritical
	}
	return model.RiskHigh
}

// Get returns a check-in scoped to its owner. Other farmers' check-ins look
// identical to missing ones.
func (s *CheckInService) Get(ctx context.Context, farmerID, checkInID string) (*model.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetByID(ctx, checkInID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if checkIn.FarmerID != farmerID {
		return nil, ErrNotFound
	}
	return checkIn, nil
}

// History returns a farmer's check-ins, newest first.
func (s *CheckInService) History(ctx context.Context, farmerID string, limit int64) ([]*model.CheckIn, error) {
	return s.checkInRepo.GetByFarmerID(ctx, farmerID, limit)
}

// ReconcileAlerts recreates alerts for recent check-ins whose alert write
// was lost after the check-in committed.
func (s *CheckInService) ReconcileAlerts(ctx context.Context) error {
	since := time.Now().Add(-s.reconcileWindow)
	checkIns, err := s.checkInRepo.FindTriggeredSince(ctx, since)
	if err != nil {
		return err
	}

	for _, checkIn := range checkIns {
		exists, err := s.alertRepo.ExistsForCheckIn(ctx, checkIn.ID)
		if err != nil {
			s.logger.Warn("alert existence check failed",
				zap.String("checkin_id", checkIn.ID), zap.Error(err))
			continue
		}
		if exists {
			continue
		}

		farmer, err := s.farmerRepo.GetByID(ctx, checkIn.FarmerID)
		if err != nil {
			s.logger.Warn("farmer lookup failed during reconciliation",
				zap.String("farmer_id", checkIn.FarmerID), zap.Error(err))
			continue
		}

		severity := model.SeverityHigh
		if checkIn.RiskLevel == model.RiskCritical {
			severity = model.SeverityCritical
		}
		if err := s.raiseAlert(ctx, farmer, checkIn, severity); err != nil {
			continue
		}
		s.logger.Info("alert reconciled", zap.String("checkin_id", checkIn.ID))
	}
	return nil
}

// StartReconciler runs ReconcileAlerts on a fixed interval until the context
// is cancelled.
func (s *CheckInService) StartReconciler(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.ReconcileAlerts(ctx); err != nil {
					s.logger.Error("alert reconciliation failed", zap.Error(err))
				}
			}
		}
	}()
}
