package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type CategoryQuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, question *types.CategoryQuestion) (*types.CategoryQuestion, error)
	GetByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.CategoryQuestion, error)
}

type categoryQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryQuestionRepo(db *gorm.DB, baseLog *logger.Logger) CategoryQuestionRepo {
	return &categoryQuestionRepo{db: db, log: baseLog.With("repo", "CategoryQuestionRepo")}
}

func (r *categoryQuestionRepo) Create(ctx context.Context, tx *gorm.DB, question *types.CategoryQuestion) (*types.CategoryQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(question).Error; err != nil {
		r.log.Error("Failed to create category question", "error", err)
		return nil, err
	}
	return question, nil
}

func (r *categoryQuestionRepo) GetByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.CategoryQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CategoryQuestion
	if err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		r.log.Error("Failed to get questions by category id", "category_id", categoryID, "error", err)
		return nil, err
	}
	return results, nil
}
