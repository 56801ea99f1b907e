package model

// FeedbackMessage is the localized three-part message shown after a check-in
type FeedbackMessage struct {
	Greeting string `json:"greeting"`
	Body     string `json:"body"`
	Closing  string `json:"closing"`
}

// Suggestion is one localized advice card
type Suggestion struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Feedback is the user-facing response bundle for a check-in
type Feedback struct {
	Message       FeedbackMessage `json:"message"`
	Suggestions   []Suggestion    `json:"suggestions"` // ordered, at most 4
	ShowEmergency bool            `json:"showEmergency"`
}
