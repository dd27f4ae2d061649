package coerce

import "testing"

type topicRec struct {
	Topic      string   `json:"topic"`
	Subtopics  []string `json:"subtopics"`
	Importance string   `json:"importance"`
}

func TestRecords_FencedJSONBlock(t *testing.T) {
	raw := "Here is the breakdown you asked for:\n\n```json\n[\n  {\"topic\": \"Algebra\", \"subtopics\": [\"Linear equations\"], \"importance\": \"High\"},\n  {\"topic\": \"Geometry\", \"subtopics\": [], \"importance\": \"Medium\"}\n]\n```\n\nLet me know if you need more."

	res := Records[topicRec](raw, nil)

	if res.Outcome != OutcomeStructured {
		t.Fatalf("outcome = %v, want structured", res.Outcome)
	}
	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(res.Records))
	}
	if res.Records[0].Topic != "Algebra" {
		t.Errorf("first topic = %q, want Algebra", res.Records[0].Topic)
	}
	if res.Records[1].Importance != "Medium" {
		t.Errorf("second importance = %q, want Medium", res.Records[1].Importance)
	}
}

func TestRecords_BareArrayShape(t *testing.T) {
	raw := `Sure! [ {"topic": "Thermodynamics", "subtopics": [], "importance": "High"} ] — covers the main theme.`

	res := Records[topicRec](raw, nil)

	if res.Outcome != OutcomeStructured {
		t.Fatalf("outcome = %v, want structured", res.Outcome)
	}
	if len(res.Records) != 1 || res.Records[0].Topic != "Thermodynamics" {
		t.Fatalf("unexpected records: %+v", res.Records)
	}
}

func TestRecords_WholeResponseIsJSON(t *testing.T) {
	raw := `[{"topic": "Optics", "subtopics": ["Lenses"], "importance": "Low"}]`

	res := Records[topicRec](raw, nil)

	if res.Outcome != OutcomeStructured {
		t.Fatalf("outcome = %v, want structured", res.Outcome)
	}
	if res.Records[0].Subtopics[0] != "Lenses" {
		t.Errorf("subtopic = %q, want Lenses", res.Records[0].Subtopics[0])
	}
}

func TestRecords_FallbackOnUnparseable(t *testing.T) {
	raw := "I could not produce the structure you requested, sorry."

	called := false
	res := Records(raw, func(got string) []topicRec {
		called = true
		if got != raw {
			t.Errorf("fallback received %q, want original raw text", got)
		}
		return []topicRec{{Topic: "Synthesized"}}
	})

	if !called {
		t.Fatal("fallback was not invoked")
	}
	if res.Outcome != OutcomeFallback {
		t.Fatalf("outcome = %v, want fallback", res.Outcome)
	}
	if res.ParseErr == nil {
		t.Error("ParseErr should record the strict-parse failure")
	}
	if len(res.Records) != 1 || res.Records[0].Topic != "Synthesized" {
		t.Fatalf("unexpected records: %+v", res.Records)
	}
}

func TestRecords_EmptyWhenFallbackYieldsNothing(t *testing.T) {
	res := Records("no structure here", func(string) []topicRec { return nil })

	if res.Outcome != OutcomeEmpty {
		t.Fatalf("outcome = %v, want empty", res.Outcome)
	}
	if len(res.Records) != 0 {
		t.Fatalf("expected no records, got %+v", res.Records)
	}
}

func TestRecords_NilFallback(t *testing.T) {
	res := Records[topicRec]("still not json", nil)

	if res.Outcome != OutcomeEmpty {
		t.Fatalf("outcome = %v, want empty", res.Outcome)
	}
}

func TestRecords_NewlinesInsidePayload(t *testing.T) {
	// Multi-line JSON must survive the newline collapse.
	raw := "```json\n[\n{\"topic\":\n\"Calculus\",\n\"subtopics\": [],\n\"importance\": \"High\"}\n]\n```"

	res := Records[topicRec](raw, nil)

	if res.Outcome != OutcomeStructured {
		t.Fatalf("outcome = %v, want structured", res.Outcome)
	}
	if res.Records[0].Topic != "Calculus" {
		t.Errorf("topic = %q, want Calculus", res.Records[0].Topic)
	}
}
