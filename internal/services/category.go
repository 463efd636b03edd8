package services

import (
	"context"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/repos"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type CategoryService interface {
	GetCategory(ctx context.Context, categoryID uint) (*types.QuestionCategory, error)
}

type categoryService struct {
	log          *logger.Logger
	categoryRepo repos.QuestionCategoryRepo
}

func NewCategoryService(log *logger.Logger, categoryRepo repos.QuestionCategoryRepo) CategoryService {
	return &categoryService{
		log:          log.With("service", "CategoryService"),
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) GetCategory(ctx context.Context, categoryID uint) (*types.QuestionCategory, error) {
	return s.categoryRepo.GetWithQuestions(ctx, nil, categoryID)
}
