package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// minTextLength is the threshold below which a PDF's text layer is
// considered absent (scanned document) and OCR kicks in.
const minTextLength = 100

// extractPDF pulls the text layer page by page. If the aggregate text is
// shorter than minTextLength the PDF is assumed to be scanned and each
// page is rendered to an image and OCR'd instead.
func (s *Service) extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrExtraction, filepath.Base(path), err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", ErrExtraction, err)
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}

	text := sb.String()
	if len(strings.TrimSpace(text)) >= minTextLength {
		return text, nil
	}

	// No usable text layer. Fall back to OCR over page images.
	s.log.Info().
		Str("file", filepath.Base(path)).
		Int("text_len", len(strings.TrimSpace(text))).
		Msg("PDF text layer too small, falling back to OCR")

	ocrText, err := s.ocrPDF(path)
	if err != nil {
		return "", fmt.Errorf("%w: ocr: %v", ErrExtraction, err)
	}
	return ocrText, nil
}

// extractPageText extracts text from a single page via its pdfcpu
// content stream.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream parses PDF content stream text-show operators.
// Handles Tj, TJ, the ' shorthand and the T*/Td positioning operators
// well enough for text-layer PDFs; anything fancier falls through to OCR
// via the length threshold.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return strings.TrimSpace(sb.String())
}

// decodePDFString handles basic PDF escape sequences inside string
// literals.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '(', ')', '\\':
				sb.WriteByte(raw[i])
			default:
				sb.WriteByte('\\')
				sb.WriteByte(raw[i])
			}
			continue
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}
