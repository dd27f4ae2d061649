// Package coerce turns free-form model responses into structured records.
//
// The model service gives no schema guarantee, so every response goes
// through the same funnel: locate the most likely JSON payload, clean it,
// attempt a strict parse, and fall back to caller-supplied synthesis when
// that fails. Coercion never returns an error past its boundary — callers
// always get a record slice, possibly degenerate, tagged with how it was
// obtained.
package coerce

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Outcome reports how a record slice was obtained.
type Outcome int

const (
	// OutcomeStructured means the records were parsed directly from JSON
	// found in the response.
	OutcomeStructured Outcome = iota

	// OutcomeFallback means strict parsing failed and the records were
	// synthesized by the fallback.
	OutcomeFallback

	// OutcomeEmpty means neither parsing nor the fallback produced
	// anything.
	OutcomeEmpty
)

// String returns the outcome name for log fields.
func (o Outcome) String() string {
	switch o {
	case OutcomeStructured:
		return "structured"
	case OutcomeFallback:
		return "fallback"
	default:
		return "empty"
	}
}

// Fallback synthesizes records from the raw response after strict
// parsing fails. Implementations typically scan for recognizable field
// patterns or return minimal placeholder records.
type Fallback[T any] func(raw string) []T

// Result carries the coerced records together with provenance, so
// callers can distinguish confident extraction from degraded rescue.
type Result[T any] struct {
	Records []T
	Outcome Outcome

	// ParseErr is the strict-parse failure when Outcome is not
	// Structured. Diagnostics only; it is never propagated.
	ParseErr error
}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	arrayShapeRe = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	fenceRe      = regexp.MustCompile("(?s)```.*?```")
)

// Records coerces a raw model response into a slice of T.
//
// Candidate selection order: a fenced block labeled json, then the first
// substring shaped like a JSON array of objects, then the whole response.
// Newlines are collapsed and stray fence markers stripped before the
// strict parse. On failure the fallback runs against the original raw
// text.
func Records[T any](raw string, fallback Fallback[T]) Result[T] {
	payload := locateJSON(raw)

	payload = strings.ReplaceAll(payload, "\n", " ")
	payload = fenceRe.ReplaceAllString(payload, "")
	payload = strings.TrimSpace(payload)

	var records []T
	err := json.Unmarshal([]byte(payload), &records)
	if err == nil && len(records) > 0 {
		return Result[T]{Records: records, Outcome: OutcomeStructured}
	}

	if fallback != nil {
		if recs := fallback(raw); len(recs) > 0 {
			return Result[T]{Records: recs, Outcome: OutcomeFallback, ParseErr: err}
		}
	}

	return Result[T]{Outcome: OutcomeEmpty, ParseErr: err}
}

// locateJSON picks the most promising JSON candidate out of a response
// that may wrap it in prose or markdown fences.
func locateJSON(raw string) string {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := arrayShapeRe.FindString(raw); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(raw)
}
