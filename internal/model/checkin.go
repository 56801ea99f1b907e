package model

import "time"

// Categorical answer values for the five questionnaire dimensions.
const (
	CropExcellent = "excellent"
	CropGood      = "good"
	CropModerate  = "moderate"
	CropPoor      = "poor"
	CropDestroyed = "destroyed"

	LoanNone   = "none"
	LoanLow    = "low"
	LoanMedium = "medium"
	LoanHigh   = "high"
	LoanSevere = "severe"

	SleepGood     = "good"
	SleepFair     = "fair"
	SleepPoor     = "poor"
	SleepVeryPoor = "very_poor"

	FamilyStrong   = "strong"
	FamilyModerate = "moderate"
	FamilyWeak     = "weak"
	FamilyNone     = "none"
)

// RiskLevel is the primary output of the scoring pipeline
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// CheckInInput is a single submitted questionnaire. Immutable once submitted.
type CheckInInput struct {
	CropCondition string `json:"cropCondition" bson:"cropCondition"`
	LoanPressure  string `json:"loanPressure" bson:"loanPressure"`
	SleepQuality  string `json:"sleepQuality" bson:"sleepQuality"`
	FamilySupport string `json:"familySupport" bson:"familySupport"`
	HopeLevel     int    `json:"hopeLevel" bson:"hopeLevel"` // 1-10
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// CheckIn is the persisted record of a submission plus its verdict.
// Only AlertTriggered and CounselorNotified are ever updated after creation.
type CheckIn struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	FarmerID          string       `json:"farmerId" bson:"farmerId"`
	Input             CheckInInput `json:"input" bson:"input"`
	RiskScore         int          `json:"riskScore" bson:"riskScore"`
	RiskLevel         RiskLevel    `json:"riskLevel" bson:"riskLevel"`
	CriticalFactors   []string     `json:"criticalFactors" bson:"criticalFactors"`
	AlertTriggered    bool         `json:"alertTriggered" bson:"alertTriggered"`
	CounselorNotified bool         `json:"counselorNotified" bson:"counselorNotified"`
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
}
