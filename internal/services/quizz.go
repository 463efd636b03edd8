package services

import (
	"context"

	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/repos"
	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type QuizzService interface {
	GetQuizz(ctx context.Context, quizzID uint) (*types.Quizz, error)
}

type quizzService struct {
	log       *logger.Logger
	quizzRepo repos.QuizzRepo
}

func NewQuizzService(log *logger.Logger, quizzRepo repos.QuizzRepo) QuizzService {
	return &quizzService{
		log:       log.With("service", "QuizzService"),
		quizzRepo: quizzRepo,
	}
}

func (s *quizzService) GetQuizz(ctx context.Context, quizzID uint) (*types.Quizz, error) {
	return s.quizzRepo.GetWithQuestions(ctx, nil, quizzID)
}
