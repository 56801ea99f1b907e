package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kisanmitra/internal/model"
)

func TestAnalyzeSentiment_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		result := AnalyzeSentiment(text, "en")
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, model.SentimentNeutral, result.Label)
		assert.Equal(t, 1.0, result.Confidence)
		assert.Empty(t, result.Keywords)
		assert.Empty(t, result.RiskIndicators)
	}
}

func TestAnalyzeSentiment_NoMatches(t *testing.T) {
	result := AnalyzeSentiment("the monsoon arrived on time this year", "en")
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, model.SentimentNeutral, result.Label)
	assert.Equal(t, 0.2, result.Confidence)
	assert.Empty(t, result.Keywords)
}

func TestAnalyzeSentiment_CrisisDominates(t *testing.T) {
	// A crisis phrase forces -1 even alongside positive matches.
	result := AnalyzeSentiment("I am hopeful but sometimes I want to die", "en")
	require.NotEmpty(t, result.RiskIndicators)
	assert.Equal(t, -1.0, result.Score)
	assert.Equal(t, model.SentimentNegative, result.Label)
	assert.Contains(t, result.Keywords, "hopeful")
	assert.NotContains(t, result.Keywords, "want to die")
	assert.Contains(t, result.RiskIndicators, "want to die")
}

func TestAnalyzeSentiment_NegativeRatio(t *testing.T) {
	result := AnalyzeSentiment("I am stressed and alone with this debt", "en")
	assert.Empty(t, result.RiskIndicators)
	assert.Equal(t, -1.0, result.Score) // 0 positive, 3 negative
	assert.Equal(t, model.SentimentNegative, result.Label)
	assert.Equal(t, 0.68, result.Confidence) // (3/5)*0.8 + 0.2
	assert.Len(t, result.Keywords, 3)
}

func TestAnalyzeSentiment_MixedRounding(t *testing.T) {
	// 1 positive, 2 negative: (1-2)/3 rounds to -0.33.
	result := AnalyzeSentiment("hopeful, though the debt keeps me worried", "en")
	assert.Equal(t, -0.33, result.Score)
	assert.Equal(t, model.SentimentNegative, result.Label)
}

func TestAnalyzeSentiment_PositiveLabel(t *testing.T) {
	result := AnalyzeSentiment("feeling better, hopeful and grateful", "en")
	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, model.SentimentPositive, result.Label)
	assert.Equal(t, 0.68, result.Confidence)
}

func TestAnalyzeSentiment_ConfidenceSaturates(t *testing.T) {
	result := AnalyzeSentiment("stressed, worried, alone, exhausted, depressed and anxious", "en")
	assert.Equal(t, 1.0, result.Confidence)
}

func TestAnalyzeSentiment_CaseInsensitive(t *testing.T) {
	result := AnalyzeSentiment("SUICIDE is on my mind", "en")
	assert.Equal(t, -1.0, result.Score)
	assert.NotEmpty(t, result.RiskIndicators)
}

func TestAnalyzeSentiment_LanguageFallback(t *testing.T) {
	// Unsupported code falls back to the Marathi set.
	result := AnalyzeSentiment("मला खूप चिंता वाटते", "ta")
	assert.Equal(t, model.SentimentNegative, result.Label)
	assert.Contains(t, result.Keywords, "चिंता")
}

func TestAnalyzeSentiment_Hindi(t *testing.T) {
	result := AnalyzeSentiment("कर्ज से बहुत परेशान हूं", "hi")
	assert.Equal(t, -1.0, result.Score)
	assert.Equal(t, model.SentimentNegative, result.Label)

	crisis := AnalyzeSentiment("अब जीना नहीं चाहता", "hi")
	assert.Equal(t, -1.0, crisis.Score)
	assert.NotEmpty(t, crisis.RiskIndicators)
}

func TestAnalyzeSentiment_Deterministic(t *testing.T) {
	first := AnalyzeSentiment("stressed about the debt", "en")
	second := AnalyzeSentiment("stressed about the debt", "en")
	assert.Equal(t, first, second)
}
