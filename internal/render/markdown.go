package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/papergen/papergen-backend/internal/model"
)

func (r *Renderer) renderMarkdown(questions []model.Question, title string, includeAnswers bool) (string, error) {
	var md strings.Builder

	fmt.Fprintf(&md, "# %s\n\nDate: %s\n\n", title, r.dateLine())

	var currentTopic, currentType string
	for i, q := range questions {
		topic := displayText(q.Topic, "General")
		qType := displayText(q.Type, "General")

		if topic != currentTopic {
			currentTopic = topic
			fmt.Fprintf(&md, "## Topic: %s\n\n", currentTopic)
		}
		if qType != currentType {
			currentType = qType
			fmt.Fprintf(&md, "### Section: %s Questions\n\n", currentType)
		}

		text := displayText(q.Text, "Question text missing")
		fmt.Fprintf(&md, "**Question %d** (%s Difficulty)\n\n%s\n\n",
			i+1, displayText(string(q.Difficulty), "Medium"), wordwrap.WrapString(text, textWrapWidth))

		if qType == model.TypeMCQ && len(q.Options) > 0 {
			for j, option := range q.Options {
				option = displayText(option, "Option text not available")
				fmt.Fprintf(&md, "%s. %s\n\n", optionLetter(j), wordwrap.WrapString(option, optionWrapWidth))
			}
		}

		if includeAnswers {
			answer := displayText(q.CorrectAnswer, "Answer not available")
			fmt.Fprintf(&md, "**Answer:** %s\n\n", wordwrap.WrapString(answer, textWrapWidth))

			if q.Explanation != "" {
				fmt.Fprintf(&md, "*Explanation:* %s\n\n", wordwrap.WrapString(q.Explanation, textWrapWidth))
			}
		}

		md.WriteString("---\n\n")
	}

	path := r.artifactPath("exam", FormatMarkdown)
	if err := os.WriteFile(path, []byte(md.String()), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}
	return path, nil
}

// markdownErrorArtifact writes the minimal error document for the
// Markdown format.
func markdownErrorArtifact(renderErr error) []byte {
	return fmt.Appendf(nil,
		"# Error Generating Document\n\nAn error occurred while generating the markdown document.\n\nError: %v\n",
		renderErr)
}
