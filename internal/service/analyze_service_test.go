package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/papergen/papergen-backend/internal/llm"
	"github.com/papergen/papergen-backend/internal/model"
)

func TestAnalyze_StructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "```json\n[{\"topic\": \"Kinematics\", \"subtopics\": [\"Velocity\", \"Acceleration\"], \"importance\": \"High\", \"question_types\": [\"MCQ\"]}]\n```",
	})
	svc := NewAnalyzeService(mock, zerolog.Nop())

	topics, err := svc.Analyze(context.Background(), "some physics text", "Physics")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(topics) != 1 {
		t.Fatalf("got %d topics, want 1", len(topics))
	}
	if topics[0].Topic != "Kinematics" || topics[0].Importance != "High" {
		t.Errorf("unexpected topic record: %+v", topics[0])
	}
}

func TestAnalyze_FallbackTopicPatterns(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: `The main areas are topic: "Stoichiometry" and also topic: "Gas Laws" among others.`,
	})
	svc := NewAnalyzeService(mock, zerolog.Nop())

	topics, err := svc.Analyze(context.Background(), "chemistry text", "Chemistry")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("got %d topics, want 2 pattern-extracted topics", len(topics))
	}
	if topics[0].Topic != "Stoichiometry" || topics[1].Topic != "Gas Laws" {
		t.Errorf("unexpected topics: %+v", topics)
	}
	for _, tp := range topics {
		if tp.Importance != model.ImportanceMedium {
			t.Errorf("pattern-extracted topic should default to Medium importance, got %q", tp.Importance)
		}
	}
}

func TestAnalyze_SyntheticTopicWhenNothingRecognizable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "I'm sorry, I cannot help with that.",
	})
	svc := NewAnalyzeService(mock, zerolog.Nop())

	topics, err := svc.Analyze(context.Background(), "text", "Biology")
	if err != nil {
		t.Fatalf("parse failure must not be an error, got %v", err)
	}
	if len(topics) != 1 {
		t.Fatalf("got %d topics, want exactly 1 synthetic topic", len(topics))
	}
	if topics[0].Topic != "Biology Concepts" {
		t.Errorf("synthetic topic = %q, want \"Biology Concepts\"", topics[0].Topic)
	}
}

func TestAnalyze_TransportErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewAnalyzeService(mock, zerolog.Nop())

	_, err := svc.Analyze(context.Background(), "text", "History")
	if err == nil {
		t.Fatal("transport error must surface as a failure")
	}
}

func TestAnalyze_PromptEmbedsSubjectAndContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "[]"})
	svc := NewAnalyzeService(mock, zerolog.Nop())

	_, _ = svc.Analyze(context.Background(), "mitochondria are the powerhouse", "Biology")

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 model call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Prompt
	for _, want := range []string{"Biology", "mitochondria are the powerhouse"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
