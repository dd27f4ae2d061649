package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/papergen/papergen-backend/internal/llm"
	"github.com/papergen/papergen-backend/internal/model"
)

func testParams() model.GenerationParams {
	return model.GenerationParams{
		Subject:       "Mathematics",
		Topics:        []string{"Algebra"},
		Difficulty:    model.DifficultyMedium,
		QuestionTypes: []string{model.TypeMCQ, model.TypeShortAnswer},
		NumQuestions:  5,
	}
}

func TestGenerate_NormalizationBackfillsAllFields(t *testing.T) {
	// Every field the schema requires is missing from the raw records.
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `[
			{"text": "What is a matrix?"},
			{"text": "Pick the prime.", "type": "MCQ"},
			{"text": "Explain limits.", "explanation": "A limit describes approach behavior."}
		]`,
	})
	svc := NewGenerateService(mock, zerolog.Nop())

	questions, err := svc.Generate(context.Background(), "linear algebra text", testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}

	for i, q := range questions {
		if q.ID == "" {
			t.Errorf("question %d: empty id", i)
		}
		if q.Topic == "" {
			t.Errorf("question %d: empty topic", i)
		}
		if q.Difficulty == "" {
			t.Errorf("question %d: empty difficulty", i)
		}
		if q.Type == "" {
			t.Errorf("question %d: empty type", i)
		}
	}

	if questions[0].Type != model.TypeMCQ {
		t.Errorf("untyped question should default to first requested type, got %q", questions[0].Type)
	}
	if questions[0].Topic != "Algebra" {
		t.Errorf("topic default = %q, want first requested topic", questions[0].Topic)
	}
	if questions[0].Difficulty != model.DifficultyMedium {
		t.Errorf("difficulty default = %q, want Medium", questions[0].Difficulty)
	}

	// MCQ without options gets four generic placeholders.
	if len(questions[1].Options) != 4 {
		t.Errorf("MCQ placeholder options = %d, want 4", len(questions[1].Options))
	}

	// Missing correct_answer with an explanation present.
	if questions[2].CorrectAnswer != "See explanation" {
		t.Errorf("correct_answer = %q, want \"See explanation\"", questions[2].CorrectAnswer)
	}
}

func TestGenerate_KeepsProvidedFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `[{"id": "given", "text": "2+2=?", "options": ["3","4","5","6"], "correct_answer": "4", "topic": "Arithmetic", "difficulty": "Easy", "type": "MCQ"}]`,
	})
	svc := NewGenerateService(mock, zerolog.Nop())

	questions, err := svc.Generate(context.Background(), "text", testParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	q := questions[0]
	if q.ID != "given" || q.Topic != "Arithmetic" || q.Difficulty != model.DifficultyEasy {
		t.Errorf("provided fields were overwritten: %+v", q)
	}
	if len(q.Options) != 4 || q.Options[1] != "4" {
		t.Errorf("options were replaced: %+v", q.Options)
	}
}

func TestGenerate_FallbackPlaceholders(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "model refused to emit anything structured",
	})
	svc := NewGenerateService(mock, zerolog.Nop())

	questions, err := svc.Generate(context.Background(), "text", testParams())
	if err != nil {
		t.Fatalf("parse failure must not be an error, got %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d placeholders, want 3", len(questions))
	}
	for _, q := range questions {
		if !strings.Contains(q.Text, "regenerate") {
			t.Errorf("placeholder not marked for regeneration: %q", q.Text)
		}
		if q.Topic != "Algebra" || q.Difficulty != model.DifficultyMedium {
			t.Errorf("placeholder should reuse requested topic/difficulty: %+v", q)
		}
		if len(q.Options) != 4 {
			t.Errorf("MCQ requested, placeholder should carry generic options: %+v", q.Options)
		}
	}
}

func TestGenerate_FallbackCappedByRequestedCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "nope"})
	svc := NewGenerateService(mock, zerolog.Nop())

	p := testParams()
	p.NumQuestions = 1
	questions, err := svc.Generate(context.Background(), "text", p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d placeholders, want 1", len(questions))
	}
}

func TestGenerate_TransportErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})
	svc := NewGenerateService(mock, zerolog.Nop())

	_, err := svc.Generate(context.Background(), "text", testParams())
	if err == nil {
		t.Fatal("transport error must surface as a failure")
	}
}

func TestGenerate_PromptEmbedsParameters(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `[{"text":"q"}]`})
	svc := NewGenerateService(mock, zerolog.Nop())

	p := testParams()
	p.Topics = nil
	_, err := svc.Generate(context.Background(), "course material", p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prompt := mock.Calls[0].Prompt
	for _, want := range []string{
		"Generate 5 exam questions",
		"Mathematics",
		"all covered topics",
		"Medium difficulty",
		"MCQ, Short Answer",
		"course material",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
