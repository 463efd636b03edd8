package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quizzgen/quizzgen-backend/internal/types"
)

type fakeQuizzService struct {
	quizz *types.Quizz
	err   error
}

func (f *fakeQuizzService) GetQuizz(ctx context.Context, quizzID uint) (*types.Quizz, error) {
	return f.quizz, f.err
}

func newQuizzRouter(t *testing.T, svc *fakeQuizzService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/quizz/:id", NewQuizzHandler(testLogger(t), svc).GetQuizz)
	return router
}

func TestGetQuizz_ReturnsQuizzWithQuestions(t *testing.T) {
	svc := &fakeQuizzService{quizz: &types.Quizz{
		ID:   1,
		Name: "Sample",
		Questions: []types.QuizzQuestion{
			{ID: 10, QuestionText: "Q1", QuizzID: 1, Answers: []types.QuizzAnswer{
				{ID: 100, QuestionID: 10, AnswerText: "a", IsCorrect: true},
			}},
		},
	}}
	router := newQuizzRouter(t, svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quizz/1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["name"] != "Sample" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetQuizz_NotFound(t *testing.T) {
	router := newQuizzRouter(t, &fakeQuizzService{err: gorm.ErrRecordNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quizz/99", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetQuizz_NoQuestionsReadsAsNotFound(t *testing.T) {
	router := newQuizzRouter(t, &fakeQuizzService{quizz: &types.Quizz{ID: 1, Name: "Empty"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quizz/1", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetQuizz_InvalidID(t *testing.T) {
	router := newQuizzRouter(t, &fakeQuizzService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quizz/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
