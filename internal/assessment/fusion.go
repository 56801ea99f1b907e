package assessment

import (
	"math"
	"strings"

	"kisanmitra/internal/model"
)

// Final risk bands over the fused 0-100 score.
const (
	finalModerateMin = 40
	finalHighMin     = 60
	finalCriticalMin = 80

	crisisScoreBoost = 20
	finalScoreCap    = 100
)

// Fuse combines the structured assessment with sentiment analysis of the
// free-text notes into the final verdict. The structured 0-30 score is
// projected onto the 0-100 fusion scale before the AI additions, so the
// final banding stays consistent with the questionnaire banding.
//
// Additions: +30 for crisis keywords (or +10*|score| for a plain negative
// sentiment label), plus +15 for hopeLevel <= 2. Crisis keywords also add a
// further +20 (capped at 100) and step the structured level up one band;
// that stepped value is only an intermediate, the level recomputed from the
// final score is authoritative.
func Fuse(structured model.StructuredAssessment, input model.CheckInInput, lang string) model.FinalAssessment {
	combined := make([]string, len(structured.CriticalFactors))
	copy(combined, structured.CriticalFactors)

	var sentiment *model.SentimentResult
	aiAdditional := 0.0
	crisis := false

	if strings.TrimSpace(input.Notes) != "" {
		result := AnalyzeSentiment(input.Notes, lang)
		sentiment = &result

		// Crisis keywords force the sentiment score to -1 and with it a
		// negative label, so the negative-sentiment addition only applies
		// when no crisis phrase matched.
		if len(result.RiskIndicators) > 0 {
			aiAdditional += 30
			combined = append(combined, FactorCrisisKeywords)
			crisis = true
		} else if result.Label == model.SentimentNegative {
			aiAdditional += 10 * math.Abs(result.Score)
		}
	}

	if input.HopeLevel <= 2 {
		aiAdditional += 15
		combined = append(combined, FactorVeryLowHope)
	}

	base := float64(structured.RiskScore) * float64(finalScoreCap) / float64(structuredCriticalMax)
	finalScore := int(math.Round(base + aiAdditional))

	if crisis {
		finalScore += crisisScoreBoost
		if finalScore > finalScoreCap {
			finalScore = finalScoreCap
		}
	}

	// EscalateLevel(structured.RiskLevel) would give the stepped
	// intermediate on a crisis hit; the recomputation below is
	// authoritative over it.
	finalLevel := FinalRiskLevel(finalScore)

	return model.FinalAssessment{
		FinalRiskScore:          finalScore,
		FinalRiskLevel:          finalLevel,
		CombinedCriticalFactors: combined,
		Structured:              structured,
		Sentiment:               sentiment,
	}
}

// FinalRiskLevel bands a fused 0-100 score.
func FinalRiskLevel(score int) model.RiskLevel {
	switch {
	case score >= finalCriticalMin:
		return model.RiskCritical
	case score >= finalHighMin:
		return model.RiskHigh
	case score >= finalModerateMin:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}

// EscalateLevel steps a risk level up exactly one band; CRITICAL stays.
func EscalateLevel(level model.RiskLevel) model.RiskLevel {
	switch level {
	case model.RiskLow:
		return model.RiskModerate
	case model.RiskModerate:
		return model.RiskHigh
	case model.RiskHigh:
		return model.RiskCritical
	default:
		return model.RiskCritical
	}
}
