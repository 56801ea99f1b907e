package model

import "time"

// AlertSeverity is assigned from the final risk level
type AlertSeverity string

const (
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// AlertStatus follows pending -> acknowledged -> resolved, with escalated
// reachable from any non-resolved state.
type AlertStatus string

const (
	AlertPending      AlertStatus = "pending"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
	AlertEscalated    AlertStatus = "escalated"
)

// Alert is raised for HIGH or CRITICAL check-ins, one per triggering check-in.
// AssignedToID is a weak counselor reference used for routing only.
type Alert struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	FarmerID       string        `json:"farmerId" bson:"farmerId"`
	CheckInID      string        `json:"checkInId" bson:"checkInId"`
	Severity       AlertSeverity `json:"severity" bson:"severity"`
	Status         AlertStatus   `json:"status" bson:"status"`
	AssignedToID   string        `json:"assignedToId,omitempty" bson:"assignedToId,omitempty"`
	AcknowledgedAt *time.Time    `json:"acknowledgedAt,omitempty" bson:"acknowledgedAt,omitempty"`
	ResolvedAt     *time.Time    `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
	Resolution     string        `json:"resolution,omitempty" bson:"resolution,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
}
