package assessment

import (
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/model"
)

const maxSuggestions = 4

// GenerateFeedback renders the user-facing response for a verdict: a message
// template selected by the final risk level, suggestion cards derived from
// the combined critical factors (tags without a card, such as the crisis
// and very-low-hope tags, are skipped), and the emergency banner flag.
//
// Fallbacks: a generic agriculture card when fewer than 2 suggestions were
// derived, a government-schemes card when the level is above LOW and fewer
// than 3 exist. The list is truncated to 4, factor-derived cards first.
func GenerateFeedback(level model.RiskLevel, criticalFactors []string, lang string) model.Feedback {
	bundle := i18n.ForLanguage(lang)

	suggestions := []model.Suggestion{}
	for _, tag := range criticalFactors {
		card, ok := bundle.Cards[tag]
		if !ok {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Key:   tag,
			Title: card.Title,
			Text:  card.Text,
		})
	}

	if len(suggestions) < 2 {
		agri := bundle.Cards[i18n.CardAgriAdvice]
		suggestions = append(suggestions, model.Suggestion{
			Key:   i18n.CardAgriAdvice,
			Title: agri.Title,
			Text:  agri.Text,
		})
	}
	if level != model.RiskLow && len(suggestions) < 3 {
		schemes := bundle.Cards[i18n.CardGovtSchemes]
		suggestions = append(suggestions, model.Suggestion{
			Key:   i18n.CardGovtSchemes,
			Title: schemes.Title,
			Text:  schemes.Text,
		})
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	msg := bundle.Messages[level]

	return model.Feedback{
		Message: model.FeedbackMessage{
			Greeting: msg.Greeting,
			Body:     msg.Body,
			Closing:  msg.Closing,
		},
		Suggestions:   suggestions,
		ShowEmergency: level == model.RiskHigh || level == model.RiskCritical,
	}
}
