// Package render turns an ordered question list into a downloadable
// document. All three formats share the same section structure: a topic
// heading whenever the topic changes from the previous question, a type
// heading whenever the type changes, then the numbered question itself.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/papergen/papergen-backend/internal/model"
)

// Format selects the output document type.
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
)

// MIME returns the download content type for the format.
func (f Format) MIME() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}

// Ext returns the artifact file extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Wrap widths shared by the PDF and Markdown renderers. HTML is left
// unwrapped; the browser reflows.
const (
	textWrapWidth   = 85
	optionWrapWidth = 80
)

// Renderer writes question-set documents into the output directory.
type Renderer struct {
	outputDir string
	log       zerolog.Logger

	// now is injectable so tests can pin the embedded date.
	now func() time.Time
}

// NewRenderer creates a Renderer writing artifacts under outputDir.
func NewRenderer(outputDir string, log zerolog.Logger) *Renderer {
	return &Renderer{
		outputDir: outputDir,
		log:       log,
		now:       time.Now,
	}
}

// Render produces a document for the question list and returns the
// artifact path. Questions are rendered in the order given; callers
// sort beforehand. A failure inside a format renderer is converted into
// a minimal error artifact rather than an error — only an unknown
// format or a completely unwritable output directory fail hard.
func (r *Renderer) Render(questions []model.Question, title string, format Format, includeAnswers bool) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var (
		path string
		err  error
	)
	switch format {
	case FormatPDF:
		path, err = r.renderPDF(questions, title, includeAnswers)
	case FormatHTML:
		path, err = r.renderHTML(questions, title, includeAnswers)
	case FormatMarkdown:
		path, err = r.renderMarkdown(questions, title, includeAnswers)
	default:
		return "", fmt.Errorf("unsupported format: %q", format)
	}

	if err != nil {
		r.log.Error().Err(err).Str("format", string(format)).Msg("Rendering failed, producing error artifact")
		return r.errorArtifact(format, err)
	}
	return path, nil
}

// artifactPath builds a collision-free output path.
func (r *Renderer) artifactPath(prefix string, format Format) string {
	name := fmt.Sprintf("%s_%s.%s", prefix, uuid.New().String()[:8], format.Ext())
	return filepath.Join(r.outputDir, name)
}

func (r *Renderer) dateLine() string {
	return r.now().Format("2006-01-02")
}

// optionLetter labels options A, B, C, ... by position.
func optionLetter(i int) string {
	return string(rune('A' + i))
}

// displayText substitutes placeholders for blank fields so a half-empty
// record still renders as a readable document.
func displayText(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
