package assessment

import (
	"math"
	"strings"

	"kisanmitra/internal/model"
)

// AnalyzeSentiment runs the keyword-based classifier over free-text notes.
// Empty or whitespace-only text is neutral with full confidence. Any
// critical-indicator match forces the score to -1 regardless of positive
// matches.
func AnalyzeSentiment(text, lang string) model.SentimentResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.SentimentResult{
			Score:          0,
			Label:          model.SentimentNeutral,
			Confidence:     1,
			Keywords:       []string{},
			RiskIndicators: []string{},
		}
	}

	set := keywordsFor(lang)
	lower := strings.ToLower(trimmed)

	riskIndicators := matchKeywords(lower, set.Critical)
	negative := matchKeywords(lower, set.Negative)
	positive := matchKeywords(lower, set.Positive)

	totalHits := len(riskIndicators) + len(negative) + len(positive)

	var score float64
	switch {
	case len(riskIndicators) > 0:
		score = -1
	case totalHits > 0:
		score = round2(float64(len(positive)-len(negative)) / float64(totalHits))
	default:
		score = 0
	}

	label := model.SentimentNeutral
	if score < -0.3 {
		label = model.SentimentNegative
	} else if score > 0.3 {
		label = model.SentimentPositive
	}

	confidence := round2(math.Min(1, float64(totalHits)/5*0.8+0.2))

	keywords := make([]string, 0, len(positive)+len(negative))
	keywords = append(keywords, positive...)
	keywords = append(keywords, negative...)

	return model.SentimentResult{
		Score:          score,
		Label:          label,
		Confidence:     confidence,
		Keywords:       keywords,
		RiskIndicators: riskIndicators,
	}
}

func matchKeywords(lowerText string, keywords []string) []string {
	matched := []string{}
	for _, kw := range keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
