package model

import "time"

// FarmerStatus tracks whether a farmer needs elevated attention
type FarmerStatus string

const (
	FarmerStatusActive        FarmerStatus = "active"
	FarmerStatusInactive      FarmerStatus = "inactive"
	FarmerStatusCriticalWatch FarmerStatus = "critical_watch"
)

// Farmer is a registered user submitting wellness check-ins
type Farmer struct {
	ID                  string       `json:"id" bson:"_id,omitempty"`
	Phone               string       `json:"phone" bson:"phone"`
	Name                string       `json:"name" bson:"name"`
	District            string       `json:"district" bson:"district"`
	Language            string       `json:"language" bson:"language"` // mr, hi, en
	Status              FarmerStatus `json:"status" bson:"status"`
	AssignedCounselorID string       `json:"assignedCounselorId,omitempty" bson:"assignedCounselorId,omitempty"`
	PasswordHash        string       `json:"-" bson:"passwordHash,omitempty"` // empty for OTP-only accounts
	CreatedAt           time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt" bson:"updatedAt"`
}
