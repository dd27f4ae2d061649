package render

import (
	"fmt"
	"os"
)

// errorArtifact produces a minimal document stating the rendering error
// so the caller can still return a download instead of a failure.
func (r *Renderer) errorArtifact(format Format, renderErr error) (string, error) {
	if format == FormatPDF {
		return r.pdfErrorArtifact(renderErr)
	}

	var body []byte
	switch format {
	case FormatHTML:
		body = htmlErrorArtifact(renderErr)
	case FormatMarkdown:
		body = markdownErrorArtifact(renderErr)
	default:
		return "", fmt.Errorf("unsupported format: %q", format)
	}

	path := r.artifactPath("error", format)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write error artifact: %w", err)
	}
	return path, nil
}
