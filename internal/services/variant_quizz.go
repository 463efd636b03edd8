package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/repos"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

// quizzVariant is the multiple-choice pipeline: mcq prompt, options
// normalization, and persistence into the quizz database.
type quizzVariant struct {
	log          *logger.Logger
	db           *gorm.DB
	sanitizer    *Sanitizer
	quizzRepo    repos.QuizzRepo
	questionRepo repos.QuizzQuestionRepo
	answerRepo   repos.QuizzAnswerRepo
}

func NewQuizzVariant(
	log *logger.Logger,
	db *gorm.DB,
	sanitizer *Sanitizer,
	quizzRepo repos.QuizzRepo,
	questionRepo repos.QuizzQuestionRepo,
	answerRepo repos.QuizzAnswerRepo,
) VariantAdapter {
	return &quizzVariant{
		log:          log.With("variant", "mcq"),
		db:           db,
		sanitizer:    sanitizer,
		quizzRepo:    quizzRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

func (v *quizzVariant) Variant() string      { return "mcq" }
func (v *quizzVariant) FallbackName() string { return "Generated Quiz" }

func (v *quizzVariant) CompletionFailureMessage() string {
	return "Failed to generate quiz from AI model."
}

func (v *quizzVariant) BuildPrompt(pages []string) string {
	return BuildMultipleChoicePrompt(pages)
}

func (v *quizzVariant) Normalize(elements []map[string]any) ([]NormalizedQuestion, error) {
	return v.sanitizer.NormalizeMultipleChoice(elements)
}

// Persist writes the quiz, its questions, and their answer rows inside a
// single transaction so a failed child insert cannot leave an orphaned
// quiz behind. Question order follows input order.
func (v *quizzVariant) Persist(ctx context.Context, parent ParentMeta, questions []NormalizedQuestion) (uint, error) {
	var quizzID uint
	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quizz := &types.Quizz{Name: parent.Name, Description: parent.Description}
		if _, err := v.quizzRepo.Create(ctx, tx, quizz); err != nil {
			return err
		}

		for _, q := range questions {
			question := &types.QuizzQuestion{
				QuestionText: q.QuestionText,
				QuizzID:      quizz.ID,
			}
			if _, err := v.questionRepo.Create(ctx, tx, question); err != nil {
				return err
			}

			if len(q.Answers) == 0 {
				continue
			}
			rows := make([]*types.QuizzAnswer, 0, len(q.Answers))
			for _, a := range q.Answers {
				rows = append(rows, &types.QuizzAnswer{
					QuestionID: question.ID,
					AnswerText: a.AnswerText,
					IsCorrect:  a.IsCorrect,
				})
			}
			if _, err := v.answerRepo.CreateBatch(ctx, tx, rows); err != nil {
				return err
			}
		}

		quizzID = quizz.ID
		return nil
	})
	if err != nil {
		v.log.Error("Failed to persist generated quiz", "error", err)
		return 0, apperr.Persistence(err, "Failed to save the generated quiz.")
	}
	return quizzID, nil
}
