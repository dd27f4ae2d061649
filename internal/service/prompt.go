package service

import (
	"fmt"
	"strings"

	"github.com/papergen/papergen-backend/internal/model"
)

// Prompt size caps keep the document excerpt inside the model's context
// window. Measured in runes to avoid splitting multi-byte characters.
const (
	analyzeContentLimit  = 10000
	generateContentLimit = 15000
)

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func buildAnalyzePrompt(text, subject string) string {
	return fmt.Sprintf(`CONTENT:
%s

Based on the above content from the subject '%s', identify the main topics and subtopics that could be tested in an exam.
Return the result as a JSON array of objects with the following structure:
[
    {
        "topic": "Main topic name",
        "subtopics": ["Subtopic 1", "Subtopic 2"],
        "importance": "High/Medium/Low",
        "question_types": ["MCQ", "Short Answer", "Essay"]
    }
]

Ensure the response is valid JSON. Focus on extracting meaningful topics that appear to be significant in the content.`,
		truncate(text, analyzeContentLimit), subject)
}

func buildGeneratePrompt(text string, p model.GenerationParams) string {
	topicsStr := "all covered topics"
	if len(p.Topics) > 0 {
		topicsStr = strings.Join(p.Topics, ", ")
	}

	return fmt.Sprintf(`CONTENT:
%s

Generate %d exam questions for the subject '%s' covering %s.
Questions should be at %s difficulty level.

Include the following types of questions: %s.

For each question:
1. Include a clear question statement
2. For MCQs, provide 4 options with the correct answer marked
3. For short answer questions, include an expected answer
4. For essay questions, include key points that should be covered
5. Add a "topic" field indicating which topic/subtopic this question covers
6. Add a "difficulty" field with the value: Easy, Medium, or Hard
7. Add a "type" field indicating the question type (MCQ, Short Answer, Essay, etc.)

Return the questions as a JSON array with this structure:
[
    {
        "id": "unique_id",
        "text": "Question text",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correct_answer": "Correct answer or option",
        "explanation": "Explanation of the answer",
        "topic": "Topic/subtopic this covers",
        "difficulty": "Easy/Medium/Hard",
        "type": "MCQ/Short Answer/Essay/etc."
    }
]

Ensure the response is valid JSON. Generate unique and diverse questions that test different aspects of the subject.`,
		truncate(text, generateContentLimit), p.NumQuestions, p.Subject, topicsStr,
		p.Difficulty, strings.Join(p.QuestionTypes, ", "))
}
