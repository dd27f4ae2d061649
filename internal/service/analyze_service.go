package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/papergen/papergen-backend/internal/coerce"
	"github.com/papergen/papergen-backend/internal/llm"
	"github.com/papergen/papergen-backend/internal/model"
)

// topicPatternRe rescues bare topic names out of responses that were
// meant to be JSON but didn't parse, e.g. `topic: "Linear Algebra"`.
var topicPatternRe = regexp.MustCompile(`(?i)topic["']?\s*:\s*["']([^"']+)["']`)

// AnalyzeService asks the model for a topic/subtopic breakdown of
// extracted document text.
type AnalyzeService struct {
	provider llm.Provider
	log      zerolog.Logger
}

// NewAnalyzeService creates a new AnalyzeService.
func NewAnalyzeService(provider llm.Provider, log zerolog.Logger) *AnalyzeService {
	return &AnalyzeService{provider: provider, log: log}
}

// Analyze returns the topic breakdown for the given text. Only
// transport-level failures are errors; a response that cannot be parsed
// degrades to a synthetic topic list and still succeeds.
func (s *AnalyzeService) Analyze(ctx context.Context, text, subject string) ([]model.Topic, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt: buildAnalyzePrompt(text, subject),
	})
	if err != nil {
		return nil, fmt.Errorf("analyze content: %w", err)
	}

	res := coerce.Records(resp.Text, func(raw string) []model.Topic {
		return fallbackTopics(raw, subject)
	})

	if res.Outcome != coerce.OutcomeStructured {
		s.log.Warn().
			Stringer("outcome", res.Outcome).
			AnErr("parse_err", res.ParseErr).
			Str("subject", subject).
			Msg("Topic analysis degraded to fallback extraction")
	}

	return res.Records, nil
}

// fallbackTopics scans for topic-name patterns in the raw response and,
// failing that, synthesizes a single generic topic for the subject.
func fallbackTopics(raw, subject string) []model.Topic {
	matches := topicPatternRe.FindAllStringSubmatch(raw, -1)
	if len(matches) > 0 {
		topics := make([]model.Topic, len(matches))
		for i, m := range matches {
			topics[i] = model.Topic{
				Topic:         m[1],
				Subtopics:     []string{},
				Importance:    model.ImportanceMedium,
				QuestionTypes: []string{model.TypeMCQ, model.TypeShortAnswer},
			}
		}
		return topics
	}

	return []model.Topic{{
		Topic:         subject + " Concepts",
		Subtopics:     []string{},
		Importance:    model.ImportanceMedium,
		QuestionTypes: []string{model.TypeMCQ, model.TypeShortAnswer, model.TypeEssay},
	}}
}
