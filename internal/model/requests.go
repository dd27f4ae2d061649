package model

// GenerateQuestionsRequest is the payload for generating a question set.
// QuestionBank is an optional caller-supplied pool blended into the
// result; it exists only for the lifetime of the request.
type GenerateQuestionsRequest struct {
	Filename      string     `json:"filename" binding:"required"`
	Subject       string     `json:"subject"`
	Topics        []string   `json:"topics"`
	Difficulty    Difficulty `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard Any"`
	QuestionTypes []string   `json:"question_types"`
	NumQuestions  int        `json:"num_questions" binding:"omitempty,min=1,max=100"`
	QuestionBank  []Question `json:"question_bank"`
}

// Params builds GenerationParams with the original defaults applied.
func (r GenerateQuestionsRequest) Params() GenerationParams {
	p := GenerationParams{
		Subject:       r.Subject,
		Topics:        r.Topics,
		Difficulty:    r.Difficulty,
		QuestionTypes: r.QuestionTypes,
		NumQuestions:  r.NumQuestions,
	}
	if p.Subject == "" {
		p.Subject = "General"
	}
	if p.Difficulty == "" {
		p.Difficulty = DifficultyMedium
	}
	if len(p.QuestionTypes) == 0 {
		p.QuestionTypes = []string{TypeMCQ, TypeShortAnswer}
	}
	if p.NumQuestions <= 0 {
		p.NumQuestions = 10
	}
	return p
}

// ExportRequest is the payload for rendering a question set to a document.
type ExportRequest struct {
	Questions      []Question `json:"questions" binding:"required,min=1"`
	Format         string     `json:"format" binding:"omitempty,oneof=pdf html md"`
	Title          string     `json:"title"`
	IncludeAnswers bool       `json:"include_answers"`
}
