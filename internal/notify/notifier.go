package notify

import (
	"context"

	"go.uber.org/zap"

	"kisanmitra/internal/model"
)

// Delivery channels for reminders.
const (
	ChannelSMS = "sms"
	ChannelApp = "app"
)

// Notifier dispatches outbound messages. Delivery is best-effort: callers
// fire and forget, and failures must never fail a check-in.
type Notifier interface {
	SendReminder(ctx context.Context, farmerID, message, channel string) error
	SendAlert(ctx context.Context, counselorContact, farmerName string, riskLevel model.RiskLevel, district string) error
}

// LogNotifier writes notifications to the log. The SMS gateway integration
// lives behind the Notifier interface; this implementation stands in for it
// in development and tests.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendReminder(_ context.Context, farmerID, message, channel string) error {
	n.logger.Info("reminder dispatched",
		zap.String("farmer_id", farmerID),
		zap.String("channel", channel),
		zap.String("message", message),
	)
	return nil
}

func (n *LogNotifier) SendAlert(_ context.Context, counselorContact, farmerName string, riskLevel model.RiskLevel, district string) error {
	n.logger.Info("counselor alert dispatched",
		zap.String("counselor_contact", counselorContact),
		zap.String("farmer_name", farmerName),
		zap.String("risk_level", string(riskLevel)),
		zap.String("district", district),
	)
	return nil
}
