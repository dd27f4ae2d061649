package extract

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ocrPDF converts each PDF page to a PNG and runs OCR on it, labeling
// the output by page number. Tesseract cannot read PDFs directly, so
// pages are rasterized first with pdftoppm.
func (s *Service) ocrPDF(path string) (string, error) {
	if _, err := exec.LookPath(s.ocrBinary); err != nil {
		return "", fmt.Errorf("OCR binary %q not found: %w", s.ocrBinary, err)
	}
	if _, err := exec.LookPath(s.pdfToImageBin); err != nil {
		return "", fmt.Errorf("page rasterizer %q not found: %w", s.pdfToImageBin, err)
	}

	tmpDir, err := os.MkdirTemp("", "papergen-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.Command(s.pdfToImageBin, "-png", "-r", "300", path, prefix)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("rasterize pdf: %w", err)
	}

	images, err := filepath.Glob(prefix + "*")
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("no page images produced for %s", filepath.Base(path))
	}
	// pdftoppm pads page numbers, lexicographic order is page order.
	sort.Strings(images)

	var sb strings.Builder
	for i, img := range images {
		cmd := exec.Command(s.ocrBinary, img, "stdout", "-l", "eng", "--psm", "3")
		var out bytes.Buffer
		cmd.Stdout = &out

		if err := cmd.Run(); err != nil {
			s.log.Warn().Err(err).Int("page", i+1).Msg("OCR failed for page")
			continue
		}

		fmt.Fprintf(&sb, "Page %d:\n%s\n\n", i+1, strings.TrimSpace(out.String()))
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("OCR produced no text for %s", filepath.Base(path))
	}
	return sb.String(), nil
}
