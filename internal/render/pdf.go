package render

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/mitchellh/go-wordwrap"

	"github.com/papergen/papergen-backend/internal/model"
)

func (r *Renderer) renderPDF(questions []model.Question, title string, includeAnswers bool) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Date: "+r.dateLine(), "", 1, "R", false, 0, "")
	pdf.Ln(5)

	var currentTopic, currentType string
	for i, q := range questions {
		topic := displayText(q.Topic, "General")
		qType := displayText(q.Type, "General")

		if topic != currentTopic {
			currentTopic = topic
			pdf.SetFont("Arial", "B", 14)
			pdf.CellFormat(0, 10, "Topic: "+currentTopic, "", 1, "", false, 0, "")
			pdf.Ln(2)
		}
		if qType != currentType {
			currentType = qType
			pdf.SetFont("Arial", "B", 12)
			pdf.CellFormat(0, 10, "Section: "+currentType+" Questions", "", 1, "", false, 0, "")
			pdf.Ln(2)
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 10, fmt.Sprintf("Question %d (%s Difficulty)",
			i+1, displayText(string(q.Difficulty), "Medium")), "", 1, "", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		writeWrapped(pdf, displayText(q.Text, "Question text not available"), textWrapWidth)

		if qType == model.TypeMCQ && len(q.Options) > 0 {
			pdf.Ln(2)
			for j, option := range q.Options {
				option = displayText(option, "Option text not available")
				writeWrapped(pdf, optionLetter(j)+". "+option, optionWrapWidth)
				pdf.Ln(1)
			}
		}

		if includeAnswers {
			pdf.Ln(2)
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 8, "Answer:", "", 1, "", false, 0, "")
			pdf.SetFont("Arial", "", 10)
			writeWrapped(pdf, displayText(q.CorrectAnswer, "Answer not available"), textWrapWidth)

			if q.Explanation != "" {
				pdf.Ln(2)
				pdf.SetFont("Arial", "I", 10)
				pdf.CellFormat(0, 8, "Explanation:", "", 1, "", false, 0, "")
				writeWrapped(pdf, q.Explanation, textWrapWidth)
			}
		}

		pdf.Ln(5)
	}

	path := r.artifactPath("exam", FormatPDF)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// writeWrapped emits text as fixed-width wrapped cells, one line each.
func writeWrapped(pdf *fpdf.Fpdf, text string, width uint) {
	wrapped := wordwrap.WrapString(text, width)
	for line := range strings.SplitSeq(wrapped, "\n") {
		pdf.CellFormat(0, 8, line, "", 1, "", false, 0, "")
	}
}

// pdfErrorArtifact writes the minimal one-page error PDF and returns
// its path.
func (r *Renderer) pdfErrorArtifact(renderErr error) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Error Generating Document", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "An error occurred while generating the PDF.", "", 1, "", false, 0, "")
	writeWrapped(pdf, "Error: "+renderErr.Error(), textWrapWidth)

	path := r.artifactPath("error", FormatPDF)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write error pdf: %w", err)
	}
	return path, nil
}
