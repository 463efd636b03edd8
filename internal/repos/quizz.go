package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type QuizzRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quizz *types.Quizz) (*types.Quizz, error)
	GetWithQuestions(ctx context.Context, tx *gorm.DB, quizzID uint) (*types.Quizz, error)
}

type quizzRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizzRepo(db *gorm.DB, baseLog *logger.Logger) QuizzRepo {
	return &quizzRepo{db: db, log: baseLog.With("repo", "QuizzRepo")}
}

func (r *quizzRepo) Create(ctx context.Context, tx *gorm.DB, quizz *types.Quizz) (*types.Quizz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(quizz).Error; err != nil {
		r.log.Error("Failed to create quizz", "error", err)
		return nil, err
	}
	return quizz, nil
}

func (r *quizzRepo) GetWithQuestions(ctx context.Context, tx *gorm.DB, quizzID uint) (*types.Quizz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Quizz
	if err := transaction.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&result, quizzID).Error; err != nil {
		r.log.Error("Failed to get quizz with questions", "quizz_id", quizzID, "error", err)
		return nil, err
	}
	return &result, nil
}
