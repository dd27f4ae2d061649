package model

// Question is the canonical structured unit flowing through the pipeline.
// Once normalized by the generator it is treated as an immutable value;
// the combiner reorders slices but never touches fields.
type Question struct {
	ID            string     `json:"id"`
	Text          string     `json:"text"`
	Options       []string   `json:"options,omitempty"`
	CorrectAnswer string     `json:"correct_answer"`
	Explanation   string     `json:"explanation,omitempty"`
	Topic         string     `json:"topic"`
	Difficulty    Difficulty `json:"difficulty"`
	Type          string     `json:"type"`
}

// Difficulty is the question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"

	// DifficultyAny is only valid as a request filter, never on a record.
	DifficultyAny Difficulty = "Any"
)

// Common question type names. Type is an open string because the model
// may emit variants beyond these.
const (
	TypeMCQ         = "MCQ"
	TypeShortAnswer = "Short Answer"
	TypeEssay       = "Essay"
)

// GenerationParams describes one generation request. Constructed per
// request, never stored.
type GenerationParams struct {
	Subject       string     `json:"subject"`
	Topics        []string   `json:"topics"`
	Difficulty    Difficulty `json:"difficulty"`
	QuestionTypes []string   `json:"question_types"`
	NumQuestions  int        `json:"num_questions"`
}

// DefaultTopic returns the topic to backfill on records the model left
// untagged: the first requested topic, else the subject itself.
func (p GenerationParams) DefaultTopic() string {
	if len(p.Topics) > 0 {
		return p.Topics[0]
	}
	return p.Subject
}

// DefaultType returns the type to backfill on untyped records.
func (p GenerationParams) DefaultType() string {
	if len(p.QuestionTypes) > 0 {
		return p.QuestionTypes[0]
	}
	return TypeShortAnswer
}
