package assessment

import "kisanmitra/internal/model"

// AlertDecision says whether a final verdict raises an alert and how severe
// it is. Persistence and counselor routing happen in the check-in service.
type AlertDecision struct {
	TriggersAlert bool
	Severity      model.AlertSeverity // empty when no alert
}

// Decide triggers an alert iff the final risk level is HIGH or CRITICAL.
func Decide(final model.FinalAssessment) AlertDecision {
	switch final.FinalRiskLevel {
	case model.RiskCritical:
		return AlertDecision{TriggersAlert: true, Severity: model.SeverityCritical}
	case model.RiskHigh:
		return AlertDecision{TriggersAlert: true, Severity: model.SeverityHigh}
	default:
		return AlertDecision{}
	}
}
