package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type QuizzAnswerRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, answers []*types.QuizzAnswer) ([]*types.QuizzAnswer, error)
	GetByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.QuizzAnswer, error)
}

type quizzAnswerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizzAnswerRepo(db *gorm.DB, baseLog *logger.Logger) QuizzAnswerRepo {
	return &quizzAnswerRepo{db: db, log: baseLog.With("repo", "QuizzAnswerRepo")}
}

func (r *quizzAnswerRepo) CreateBatch(ctx context.Context, tx *gorm.DB, answers []*types.QuizzAnswer) ([]*types.QuizzAnswer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(answers) == 0 {
		return []*types.QuizzAnswer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&answers).Error; err != nil {
		r.log.Error("Failed to create answer batch", "count", len(answers), "error", err)
		return nil, err
	}
	return answers, nil
}

func (r *quizzAnswerRepo) GetByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.QuizzAnswer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.QuizzAnswer
	if err := transaction.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		r.log.Error("Failed to get answers by question id", "question_id", questionID, "error", err)
		return nil, err
	}
	return results, nil
}
