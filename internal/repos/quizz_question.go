package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type QuizzQuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, question *types.QuizzQuestion) (*types.QuizzQuestion, error)
	GetByQuizzID(ctx context.Context, tx *gorm.DB, quizzID uint) ([]*types.QuizzQuestion, error)
}

type quizzQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizzQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuizzQuestionRepo {
	return &quizzQuestionRepo{db: db, log: baseLog.With("repo", "QuizzQuestionRepo")}
}

func (r *quizzQuestionRepo) Create(ctx context.Context, tx *gorm.DB, question *types.QuizzQuestion) (*types.QuizzQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(question).Error; err != nil {
		r.log.Error("Failed to create quizz question", "error", err)
		return nil, err
	}
	return question, nil
}

func (r *quizzQuestionRepo) GetByQuizzID(ctx context.Context, tx *gorm.DB, quizzID uint) ([]*types.QuizzQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.QuizzQuestion
	if err := transaction.WithContext(ctx).
		Where("quizz_id = ?", quizzID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		r.log.Error("Failed to get questions by quizz id", "quizz_id", quizzID, "error", err)
		return nil, err
	}
	return results, nil
}
