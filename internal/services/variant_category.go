package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/repos"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

// categoryVariant is the open-answer pipeline: qa prompt, question/answer
// normalization, and persistence into the dev database.
type categoryVariant struct {
	log          *logger.Logger
	db           *gorm.DB
	sanitizer    *Sanitizer
	categoryRepo repos.QuestionCategoryRepo
	questionRepo repos.CategoryQuestionRepo
}

func NewCategoryVariant(
	log *logger.Logger,
	db *gorm.DB,
	sanitizer *Sanitizer,
	categoryRepo repos.QuestionCategoryRepo,
	questionRepo repos.CategoryQuestionRepo,
) VariantAdapter {
	return &categoryVariant{
		log:          log.With("variant", "qa"),
		db:           db,
		sanitizer:    sanitizer,
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

func (v *categoryVariant) Variant() string      { return "qa" }
func (v *categoryVariant) FallbackName() string { return "Generated Category" }

func (v *categoryVariant) CompletionFailureMessage() string {
	return "Failed to generate questions from AI model."
}

func (v *categoryVariant) BuildPrompt(pages []string) string {
	return BuildOpenAnswerPrompt(pages)
}

func (v *categoryVariant) Normalize(elements []map[string]any) ([]NormalizedQuestion, error) {
	return v.sanitizer.NormalizeOpenAnswer(elements)
}

// Persist writes the category and its questions inside a single
// transaction. An empty record list still creates the category with zero
// questions.
func (v *categoryVariant) Persist(ctx context.Context, parent ParentMeta, questions []NormalizedQuestion) (uint, error) {
	var categoryID uint
	err := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category := &types.QuestionCategory{Name: parent.Name, Description: parent.Description}
		if _, err := v.categoryRepo.Create(ctx, tx, category); err != nil {
			return err
		}

		for _, q := range questions {
			question := &types.CategoryQuestion{
				QuestionText: q.QuestionText,
				Answer:       q.Answer,
				CategoryID:   category.ID,
			}
			if _, err := v.questionRepo.Create(ctx, tx, question); err != nil {
				return err
			}
		}

		categoryID = category.ID
		return nil
	})
	if err != nil {
		v.log.Error("Failed to persist generated category", "error", err)
		return 0, apperr.Persistence(err, "Failed to save the generated questions.")
	}
	return categoryID, nil
}
