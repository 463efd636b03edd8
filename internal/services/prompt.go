package services

import "strings"

// Prompt templates request a bare JSON array so the sanitizer only has to
// strip code fences before parsing. The mcq template mandates exactly four
// labeled options and a correct-letter field.

const openAnswerPromptTemplate = `Extract questions with correct answers from the following text. For each question, provide:

- A question statement
- The correct answer as a string.

Format your answer as a JSON array of objects like so:

  [
    {
      "question": "Question statement here",
      "answer": "Correct answer text here"
    },
    ...
  ]

Text:
`

const multipleChoicePromptTemplate = `Extract multiple-choice questions (MCQs) from the following text. For each question, provide:

- A question statement
- A list of 4 answer options, clearly marked as 'A', 'B', 'C', and 'D'.
- The correct answer letter (A, B, C, or D).
Format your answer as a JSON array of objects like so:

  [
    {
      "question": "Question statement here",
      "options": {
        "A": "Option A",
        "B": "Option B",
        "C": "Option C",
        "D": "Option D"
      },
      "correct_answer": "A|B|C|D"
    },
    ...
  ]

Text:
`

// BuildOpenAnswerPrompt joins the page texts under the open-answer
// instruction template. No input size limit is applied.
func BuildOpenAnswerPrompt(pages []string) string {
	return openAnswerPromptTemplate + strings.Join(pages, "\n\n")
}

// BuildMultipleChoicePrompt joins the page texts under the
// multiple-choice instruction template.
func BuildMultipleChoicePrompt(pages []string) string {
	return multipleChoicePromptTemplate + strings.Join(pages, "\n\n")
}
