package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type QuestionCategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, category *types.QuestionCategory) (*types.QuestionCategory, error)
	GetWithQuestions(ctx context.Context, tx *gorm.DB, categoryID uint) (*types.QuestionCategory, error)
}

type questionCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionCategoryRepo(db *gorm.DB, baseLog *logger.Logger) QuestionCategoryRepo {
	return &questionCategoryRepo{db: db, log: baseLog.With("repo", "QuestionCategoryRepo")}
}

func (r *questionCategoryRepo) Create(ctx context.Context, tx *gorm.DB, category *types.QuestionCategory) (*types.QuestionCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(category).Error; err != nil {
		r.log.Error("Failed to create question category", "error", err)
		return nil, err
	}
	return category, nil
}

func (r *questionCategoryRepo) GetWithQuestions(ctx context.Context, tx *gorm.DB, categoryID uint) (*types.QuestionCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.QuestionCategory
	if err := transaction.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&result, categoryID).Error; err != nil {
		r.log.Error("Failed to get category with questions", "category_id", categoryID, "error", err)
		return nil, err
	}
	return &result, nil
}
