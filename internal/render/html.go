package render

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/papergen/papergen-backend/internal/model"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        h1 { text-align: center; }
        h2 { margin-top: 20px; color: #2c3e50; }
        h3 { color: #3498db; }
        .question { margin-bottom: 20px; padding: 15px; border: 1px solid #ddd; border-radius: 5px; }
        .difficulty { font-size: 0.9em; color: #7f8c8d; }
        .options { margin-left: 20px; }
        .answer { margin-top: 10px; padding: 10px; background-color: #f8f9fa; }
        .explanation { font-style: italic; margin-top: 5px; }
    </style>
</head>
<body>
    <h1>%s</h1>
    <p style="text-align: right;">Date: %s</p>
`

// renderHTML writes the HTML document. Answers are omitted from the
// artifact entirely when not requested, matching the PDF and Markdown
// renderers.
func (r *Renderer) renderHTML(questions []model.Question, title string, includeAnswers bool) (string, error) {
	var b strings.Builder

	escTitle := html.EscapeString(title)
	fmt.Fprintf(&b, htmlHeader, escTitle, escTitle, r.dateLine())

	var currentTopic, currentType string
	for i, q := range questions {
		topic := displayText(q.Topic, "General")
		qType := displayText(q.Type, "General")

		if topic != currentTopic {
			currentTopic = topic
			fmt.Fprintf(&b, "    <h2>Topic: %s</h2>\n", html.EscapeString(currentTopic))
		}
		if qType != currentType {
			currentType = qType
			fmt.Fprintf(&b, "    <h3>Section: %s Questions</h3>\n", html.EscapeString(currentType))
		}

		text := displayText(q.Text, "Question text missing")
		fmt.Fprintf(&b, "    <div class=\"question\">\n")
		fmt.Fprintf(&b, "        <p><strong>Question %d</strong> <span class=\"difficulty\">(%s Difficulty)</span></p>\n",
			i+1, html.EscapeString(displayText(string(q.Difficulty), "Medium")))
		fmt.Fprintf(&b, "        <p>%s</p>\n", html.EscapeString(text))

		if qType == model.TypeMCQ && len(q.Options) > 0 {
			b.WriteString("        <div class=\"options\">\n")
			for j, option := range q.Options {
				option = displayText(option, "Option text not available")
				fmt.Fprintf(&b, "            <p>%s. %s</p>\n", optionLetter(j), html.EscapeString(option))
			}
			b.WriteString("        </div>\n")
		}

		if includeAnswers {
			answer := displayText(q.CorrectAnswer, "Answer not available")
			b.WriteString("        <div class=\"answer\">\n")
			fmt.Fprintf(&b, "            <p><strong>Answer:</strong> %s</p>\n", html.EscapeString(answer))
			if q.Explanation != "" {
				fmt.Fprintf(&b, "            <p class=\"explanation\"><strong>Explanation:</strong> %s</p>\n",
					html.EscapeString(q.Explanation))
			}
			b.WriteString("        </div>\n")
		}

		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>\n")

	path := r.artifactPath("exam", FormatHTML)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}
	return path, nil
}

func htmlErrorArtifact(renderErr error) []byte {
	return fmt.Appendf(nil, `<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
    <h1>Error Generating Document</h1>
    <p>An error occurred while generating the HTML document.</p>
    <p>Error: %s</p>
</body>
</html>
`, html.EscapeString(renderErr.Error()))
}
