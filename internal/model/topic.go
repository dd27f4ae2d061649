package model

// Topic is one entry of the analyzer's topic/subtopic breakdown.
// Consumed for display and filtering context only, never persisted.
type Topic struct {
	Topic         string   `json:"topic"`
	Subtopics     []string `json:"subtopics"`
	Importance    string   `json:"importance"`
	QuestionTypes []string `json:"question_types"`
}

// Importance levels reported by the analyzer.
const (
	ImportanceHigh   = "High"
	ImportanceMedium = "Medium"
	ImportanceLow    = "Low"
)
