package service

import (
	"math/rand"
	"testing"

	"github.com/papergen/papergen-backend/internal/model"
)

func testBank() []model.Question {
	return []model.Question{
		{ID: "b1", Text: "q1", Topic: "Algebra", Difficulty: model.DifficultyHard, Type: model.TypeMCQ},
		{ID: "b2", Text: "q2", Topic: "Algebra", Difficulty: model.DifficultyEasy, Type: model.TypeMCQ},
		{ID: "b3", Text: "q3", Topic: "Geometry", Difficulty: model.DifficultyHard, Type: model.TypeShortAnswer},
		{ID: "b4", Text: "q4", Topic: "Geometry", Difficulty: model.DifficultyHard, Type: model.TypeMCQ},
		{ID: "b5", Text: "q5", Topic: "Calculus", Difficulty: model.DifficultyMedium, Type: model.TypeEssay},
	}
}

func seededBank() *BankService {
	return NewBankService(rand.New(rand.NewSource(42)))
}

func TestSelect_DifficultyFilter(t *testing.T) {
	svc := seededBank()
	p := model.GenerationParams{
		Difficulty:   model.DifficultyHard,
		NumQuestions: 10,
	}

	got := svc.Select(testBank(), p)

	if len(got) != 3 {
		t.Fatalf("got %d records, want 3 Hard records", len(got))
	}
	for _, q := range got {
		if q.Difficulty != model.DifficultyHard {
			t.Errorf("record %s has difficulty %q, want Hard only", q.ID, q.Difficulty)
		}
	}
}

func TestSelect_AnyDifficultySkipsFilter(t *testing.T) {
	svc := seededBank()
	p := model.GenerationParams{
		Difficulty:   model.DifficultyAny,
		NumQuestions: 10,
	}

	if got := svc.Select(testBank(), p); len(got) != 5 {
		t.Fatalf("got %d records, want all 5 with Any difficulty", len(got))
	}
}

func TestSelect_TopicAndTypeFilters(t *testing.T) {
	svc := seededBank()
	p := model.GenerationParams{
		Topics:        []string{"Geometry"},
		Difficulty:    model.DifficultyAny,
		QuestionTypes: []string{model.TypeMCQ},
		NumQuestions:  10,
	}

	got := svc.Select(testBank(), p)

	if len(got) != 1 || got[0].ID != "b4" {
		t.Fatalf("got %+v, want only b4", got)
	}
}

func TestSelect_SamplesDownToRequestedCount(t *testing.T) {
	svc := seededBank()
	p := model.GenerationParams{
		Difficulty:   model.DifficultyAny,
		NumQuestions: 2,
	}

	got := svc.Select(testBank(), p)

	if len(got) != 2 {
		t.Fatalf("got %d records, want sample of 2", len(got))
	}
	seen := map[string]bool{}
	for _, q := range got {
		if seen[q.ID] {
			t.Errorf("record %s sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestCombine_CapAndProvenance(t *testing.T) {
	svc := seededBank()

	generated := make([]model.Question, 7)
	for i := range generated {
		generated[i] = model.Question{ID: "g" + string(rune('0'+i)), Topic: "T", Type: "MCQ"}
	}
	selected := make([]model.Question, 5)
	for i := range selected {
		selected[i] = model.Question{ID: "s" + string(rune('0'+i)), Topic: "T", Type: "MCQ"}
	}

	valid := map[string]bool{}
	for _, q := range append(append([]model.Question{}, generated...), selected...) {
		valid[q.ID] = true
	}

	got := svc.Combine(generated, selected, 10)

	if len(got) != 10 {
		t.Fatalf("got %d records, want exactly 10", len(got))
	}
	seen := map[string]bool{}
	for _, q := range got {
		if !valid[q.ID] {
			t.Errorf("record %s is not from either input set", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("record %s appears twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestCombine_OrderedByTopicThenType(t *testing.T) {
	svc := seededBank()

	generated := []model.Question{
		{ID: "1", Topic: "Zoology", Type: "MCQ"},
		{ID: "2", Topic: "Algebra", Type: "Short Answer"},
		{ID: "3", Topic: "Algebra", Type: "Essay"},
	}
	selected := []model.Question{
		{ID: "4", Topic: "Botany", Type: "MCQ"},
		{ID: "5", Topic: "Algebra", Type: "MCQ"},
	}

	got := svc.Combine(generated, selected, 10)

	if len(got) != 5 {
		t.Fatalf("got %d records, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.Topic > cur.Topic || (prev.Topic == cur.Topic && prev.Type > cur.Type) {
			t.Errorf("ordering violated at %d: (%s,%s) > (%s,%s)",
				i, prev.Topic, prev.Type, cur.Topic, cur.Type)
		}
	}
	if got[0].Topic != "Algebra" || got[len(got)-1].Topic != "Zoology" {
		t.Errorf("unexpected boundary records: %+v", got)
	}
}

func TestCombine_NoMutationOfInputs(t *testing.T) {
	svc := seededBank()

	generated := []model.Question{{ID: "g", Topic: "B", Type: "MCQ"}}
	selected := []model.Question{{ID: "s", Topic: "A", Type: "MCQ"}}

	_ = svc.Combine(generated, selected, 2)

	if generated[0].ID != "g" || selected[0].ID != "s" {
		t.Error("combine mutated its inputs")
	}
}
