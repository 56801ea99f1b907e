package assessment

import "kisanmitra/internal/model"

// Critical-factor tags attached to assessments and alerts.
const (
	FactorCropPoor   = "crop_poor"
	FactorLoanHigh   = "loan_high"
	FactorSleepPoor  = "sleep_poor"
	FactorFamilyWeak = "family_weak"
	FactorHopeLow    = "hope_low"

	FactorCrisisKeywords = "crisis_keywords_detected"
	FactorVeryLowHope    = "very_low_hope"
)

// Fixed weight tables. Unknown values score 0 (fail-open); schema validation
// upstream rejects them before they reach the assessor.
var (
	cropWeights = map[string]int{
		model.CropExcellent: 0,
		model.CropGood:      1,
		model.CropModerate:  2,
		model.CropPoor:      4,
		model.CropDestroyed: 5,
	}
	loanWeights = map[string]int{
		model.LoanNone:   0,
		model.LoanLow:    1,
		model.LoanMedium: 3,
		model.LoanHigh:   4,
		model.LoanSevere: 5,
	}
	sleepWeights = map[string]int{
		model.SleepGood:     0,
		model.SleepFair:     2,
		model.SleepPoor:     4,
		model.SleepVeryPoor: 5,
	}
	familyWeights = map[string]int{
		model.FamilyStrong:   0,
		model.FamilyModerate: 2,
		model.FamilyWeak:     4,
		model.FamilyNone:     5,
	}
)

// Structured risk bands over the 0-30 questionnaire score, inclusive and
// non-overlapping, checked LOW first.
const (
	structuredLowMax      = 6
	structuredModerateMax = 12
	structuredHighMax     = 18
	structuredCriticalMax = 30
)

// Assess maps the five questionnaire answers to factor weights, a summed
// risk score, a banded risk level, and the rule-based critical-factor tags.
// Deterministic: identical input always yields an identical assessment.
func Assess(input model.CheckInInput) model.StructuredAssessment {
	factors := model.FactorScores{
		Crop:   cropWeights[input.CropCondition],
		Loan:   loanWeights[input.LoanPressure],
		Sleep:  sleepWeights[input.SleepQuality],
		Family: familyWeights[input.FamilySupport],
		Hope:   hopeFactor(input.HopeLevel),
	}

	score := factors.Total()

	return model.StructuredAssessment{
		RiskScore:       score,
		RiskLevel:       StructuredRiskLevel(score),
		FactorScores:    factors,
		CriticalFactors: criticalFactors(input),
	}
}

// hopeFactor decreases as hope increases: hopeLevel 10 scores 0, 1 scores 5.
func hopeFactor(hopeLevel int) int {
	f := 5 - hopeLevel/2
	if f < 0 {
		return 0
	}
	return f
}

// StructuredRiskLevel bands a 0-30 questionnaire score. Scores outside the
// bands default to LOW.
func StructuredRiskLevel(score int) model.RiskLevel {
	switch {
	case score >= 0 && score <= structuredLowMax:
		return model.RiskLow
	case score <= structuredModerateMax:
		return model.RiskModerate
	case score <= structuredHighMax:
		return model.RiskHigh
	case score <= structuredCriticalMax:
		return model.RiskCritical
	default:
		return model.RiskLow
	}
}

// criticalFactors tags the input categories likely driving elevated risk.
// The rules read the raw categorical answers, independent of the numeric
// weights, and the tag order is fixed.
func criticalFactors(input model.CheckInInput) []string {
	tags := []string{}
	if input.CropCondition == model.CropPoor || input.CropCondition == model.CropDestroyed {
		tags = append(tags, FactorCropPoor)
	}
	if input.LoanPressure == model.LoanHigh || input.LoanPressure == model.LoanSevere {
		tags = append(tags, FactorLoanHigh)
	}
	if input.SleepQuality == model.SleepPoor || input.SleepQuality == model.SleepVeryPoor {
		tags = append(tags, FactorSleepPoor)
	}
	if input.FamilySupport == model.FamilyWeak || input.FamilySupport == model.FamilyNone {
		tags = append(tags, FactorFamilyWeak)
	}
	if input.HopeLevel <= 4 {
		tags = append(tags, FactorHopeLow)
	}
	return tags
}
