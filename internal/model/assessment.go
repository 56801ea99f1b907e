package model

// FactorScores holds the per-dimension weights that make up the structured score
type FactorScores struct {
	Crop   int `json:"crop"`
	Loan   int `json:"loan"`
	Sleep  int `json:"sleep"`
	Family int `json:"family"`
	Hope   int `json:"hope"`
}

// Total sums the five factor weights
func (f FactorScores) Total() int {
	return f.Crop + f.Loan + f.Sleep + f.Family + f.Hope
}

// StructuredAssessment is the output of the questionnaire assessor
type StructuredAssessment struct {
	RiskScore       int          `json:"riskScore"`
	RiskLevel       RiskLevel    `json:"riskLevel"`
	FactorScores    FactorScores `json:"factorScores"`
	CriticalFactors []string     `json:"criticalFactors"`
}

// SentimentResult is the output of the keyword-based notes analyzer
type SentimentResult struct {
	Score          float64  `json:"score"`      // -1..1
	Label          string   `json:"label"`      // negative, neutral, positive
	Confidence     float64  `json:"confidence"` // 0..1
	Keywords       []string `json:"keywords"`
	RiskIndicators []string `json:"riskIndicators"`
}

const (
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
	SentimentPositive = "positive"
)

// FinalAssessment is the fused verdict. It is derived per submission and
// determines what gets written to the CheckIn record; it is not persisted
// on its own.
type FinalAssessment struct {
	FinalRiskScore          int                  `json:"finalRiskScore"`
	FinalRiskLevel          RiskLevel            `json:"finalRiskLevel"`
	CombinedCriticalFactors []string             `json:"combinedCriticalFactors"`
	Structured              StructuredAssessment `json:"structured"`
	Sentiment               *SentimentResult     `json:"sentiment,omitempty"`
}
