package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/papergen/papergen-backend/internal/coerce"
	"github.com/papergen/papergen-backend/internal/llm"
	"github.com/papergen/papergen-backend/internal/model"
)

// maxFallbackQuestions caps the placeholder set synthesized when the
// model response is completely unparseable.
const maxFallbackQuestions = 3

// GenerateService produces exam questions from extracted document text.
type GenerateService struct {
	provider llm.Provider
	log      zerolog.Logger
}

// NewGenerateService creates a new GenerateService.
func NewGenerateService(provider llm.Provider, log zerolog.Logger) *GenerateService {
	return &GenerateService{provider: provider, log: log}
}

// Generate asks the model for questions matching the parameters and
// normalizes every record to the full schema. Only transport-level
// failures are errors; unparseable responses degrade to placeholder
// questions marked for regeneration.
func (s *GenerateService) Generate(ctx context.Context, text string, p model.GenerationParams) ([]model.Question, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt: buildGeneratePrompt(text, p),
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	res := coerce.Records(resp.Text, func(string) []model.Question {
		return fallbackQuestions(p)
	})

	if res.Outcome != coerce.OutcomeStructured {
		s.log.Warn().
			Stringer("outcome", res.Outcome).
			AnErr("parse_err", res.ParseErr).
			Str("subject", p.Subject).
			Int("requested", p.NumQuestions).
			Msg("Question generation degraded to fallback records")
	}

	return normalize(res.Records, p), nil
}

// fallbackQuestions synthesizes up to three placeholder records that
// tell the user to regenerate, reusing the requested type, topic and
// difficulty so downstream filtering still works.
func fallbackQuestions(p model.GenerationParams) []model.Question {
	n := min(maxFallbackQuestions, p.NumQuestions)
	wantsMCQ := slices.Contains(p.QuestionTypes, model.TypeMCQ)

	questions := make([]model.Question, n)
	for i := range questions {
		q := model.Question{
			ID:          fmt.Sprintf("fallback_%d", i),
			Text:        "Generated question could not be parsed. Please regenerate the questions.",
			Explanation: "The model response was not valid JSON.",
			Topic:       p.DefaultTopic(),
			Difficulty:  p.Difficulty,
			Type:        p.DefaultType(),
		}
		if wantsMCQ {
			q.Options = genericOptions()
			q.CorrectAnswer = "Option A"
		} else {
			q.CorrectAnswer = "Please regenerate questions"
		}
		questions[i] = q
	}
	return questions
}

// normalize backfills every missing field with the stated defaults so
// the invariant holds: all six non-option fields populated on every
// record leaving this service. Records are value copies; nothing the
// caller handed in is mutated.
func normalize(questions []model.Question, p model.GenerationParams) []model.Question {
	difficulty := p.Difficulty
	if difficulty == "" || difficulty == model.DifficultyAny {
		difficulty = model.DifficultyMedium
	}

	out := make([]model.Question, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			q.ID = "q_" + uuid.New().String()[:8]
		}
		if q.Type == "" {
			q.Type = p.DefaultType()
		}
		if q.Type == model.TypeMCQ && len(q.Options) == 0 {
			q.Options = genericOptions()
		}
		if q.CorrectAnswer == "" && q.Explanation != "" {
			q.CorrectAnswer = "See explanation"
		}
		if q.Difficulty == "" {
			q.Difficulty = difficulty
		}
		if q.Topic == "" {
			q.Topic = p.DefaultTopic()
		}
		out[i] = q
	}
	return out
}

func genericOptions() []string {
	return []string{"Option A", "Option B", "Option C", "Option D"}
}
