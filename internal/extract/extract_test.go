package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testService() *Service {
	return NewService("tesseract", "pdftoppm", zerolog.Nop())
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtract_PlainTextPassthrough(t *testing.T) {
	const content = "Photosynthesis converts light energy into chemical energy."
	path := writeTemp(t, "notes.txt", content)

	got, err := testService().Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want verbatim content", got)
	}
}

func TestExtract_MarkdownPassthrough(t *testing.T) {
	const content = "# Chapter 1\n\nSome **bold** material."
	path := writeTemp(t, "chapter.md", content)

	got, err := testService().Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want verbatim content", got)
	}
}

func TestExtract_UnsupportedExtensionPlaceholder(t *testing.T) {
	path := writeTemp(t, "slides.pptx", "binary-ish")

	got, err := testService().Extract(path)
	if err != nil {
		t.Fatalf("unsupported extension must not be an error, got %v", err)
	}
	if !strings.Contains(got, "Unsupported file type") || !strings.Contains(got, ".pptx") {
		t.Errorf("placeholder = %q, want mention of unsupported .pptx", got)
	}
}

func TestExtract_MissingFileIsError(t *testing.T) {
	_, err := testService().Extract(filepath.Join(t.TempDir(), "gone.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractJSON_ObjectRoot(t *testing.T) {
	const doc = `{
		"intro": "Welcome to the course.",
		"chapter1": {"text": "Newton's laws of motion."},
		"chapter2": {"text": ["First segment.", "Second segment."]},
		"meta": {"pages": 10}
	}`
	path := writeTemp(t, "course.json", doc)

	got, err := testService().Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, want := range []string{
		"Welcome to the course.",
		"Newton's laws of motion.",
		"First segment.\nSecond segment.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; got:\n%s", want, got)
		}
	}
	if strings.Contains(got, "10") {
		t.Errorf("non-text mapping without text field leaked into output:\n%s", got)
	}
}

func TestExtractJSON_ArrayRoot(t *testing.T) {
	path := writeTemp(t, "items.json", `["alpha", "beta", {"k": 1}]`)

	got, err := testService().Extract(path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(got, "alpha\n\nbeta") {
		t.Errorf("array elements not joined with blank lines:\n%s", got)
	}
	if !strings.Contains(got, `{"k":1}`) {
		t.Errorf("non-string element not stringified:\n%s", got)
	}
}

func TestExtractJSON_Malformed(t *testing.T) {
	path := writeTemp(t, "broken.json", `{"unterminated": `)

	_, err := testService().Extract(path)
	if err == nil {
		t.Fatal("expected extraction error for malformed JSON")
	}
}
