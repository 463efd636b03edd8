package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
)

const (
	defaultQuestionText = "Untitled Question"
	defaultAnswerText   = "No answer provided"
)

// NormalizedAnswer is one labeled option of a multiple-choice question.
type NormalizedAnswer struct {
	AnswerText string
	IsCorrect  bool
}

// NormalizedQuestion is the record shape both variants persist. Answer is
// set for the open-answer variant, Answers for multiple-choice.
type NormalizedQuestion struct {
	QuestionText string
	Answer       string
	Answers      []NormalizedAnswer
}

// Sanitizer turns raw completion text into normalized question records.
// In lenient mode (the default) missing fields are silently substituted
// with placeholder strings; strict mode rejects the whole response
// instead, so upstream model failures surface as errors.
type Sanitizer struct {
	strict bool
}

func NewSanitizer(strict bool) *Sanitizer {
	return &Sanitizer{strict: strict}
}

var fenceReplacer = strings.NewReplacer("```json", "", "```", "")

// Decode strips Markdown code fences anywhere in the text, trims
// whitespace, and parses the result as a JSON array.
func (s *Sanitizer) Decode(content string) ([]map[string]any, error) {
	sanitized := strings.TrimSpace(fenceReplacer.Replace(content))

	var raw []any
	if err := json.Unmarshal([]byte(sanitized), &raw); err != nil {
		return nil, apperr.MalformedResponse(err, "Invalid or unparseable JSON response from AI model.")
	}

	elements := make([]map[string]any, len(raw))
	for i, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			if s.strict {
				return nil, apperr.MalformedResponse(nil, "Invalid or unparseable JSON response from AI model.")
			}
			// Lenient mode treats a non-object element as an object with
			// every field missing, so defaults apply downstream.
			obj = map[string]any{}
		}
		elements[i] = obj
	}
	return elements, nil
}

// NormalizeOpenAnswer maps each element to a question/answer pair,
// preserving element order.
func (s *Sanitizer) NormalizeOpenAnswer(elements []map[string]any) ([]NormalizedQuestion, error) {
	questions := make([]NormalizedQuestion, 0, len(elements))
	for i, el := range elements {
		questionText := stringField(el, "question")
		answer := stringField(el, "answer")
		if s.strict && (questionText == "" || answer == "") {
			return nil, apperr.MalformedResponse(nil, "AI response element %d is missing a question or answer field.", i)
		}
		if questionText == "" {
			questionText = defaultQuestionText
		}
		if answer == "" {
			answer = defaultAnswerText
		}
		questions = append(questions, NormalizedQuestion{
			QuestionText: questionText,
			Answer:       answer,
		})
	}
	return questions, nil
}

// NormalizeMultipleChoice maps each element to a question with one answer
// row per option. An option is flagged correct exactly when its key equals
// the element's correct_answer; no uniqueness is enforced, so zero or
// several correct flags pass through unmodified.
func (s *Sanitizer) NormalizeMultipleChoice(elements []map[string]any) ([]NormalizedQuestion, error) {
	questions := make([]NormalizedQuestion, 0, len(elements))
	for i, el := range elements {
		questionText := stringField(el, "question")
		options, _ := el["options"].(map[string]any)
		correct := stringField(el, "correct_answer")

		if s.strict && (questionText == "" || len(options) == 0 || correct == "") {
			return nil, apperr.MalformedResponse(nil, "AI response element %d is missing a question, options, or correct_answer field.", i)
		}
		if questionText == "" {
			questionText = defaultQuestionText
		}

		keys := make([]string, 0, len(options))
		for k := range options {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		answers := make([]NormalizedAnswer, 0, len(keys))
		for _, k := range keys {
			answers = append(answers, NormalizedAnswer{
				AnswerText: stringValue(options[k]),
				IsCorrect:  k == correct,
			})
		}

		questions = append(questions, NormalizedQuestion{
			QuestionText: questionText,
			Answers:      answers,
		})
	}
	return questions, nil
}

func stringField(el map[string]any, key string) string {
	s, _ := el[key].(string)
	return s
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
