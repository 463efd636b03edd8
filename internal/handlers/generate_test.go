package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/services"
)

type fakeGenerationService struct {
	id  uint
	err error
}

func (f *fakeGenerationService) GenerateFromPDF(ctx context.Context, document []byte, adapter services.VariantAdapter) (uint, error) {
	return f.id, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return log
}

func newGenerateRouter(t *testing.T, svc services.GenerationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewGenerateHandler(testLogger(t), svc, nil, nil)
	router := gin.New()
	router.POST("/api/quizz/generate", h.GenerateQuizz)
	router.POST("/api/question/generate", h.GenerateCategory)
	return router
}

func pdfUploadRequest(t *testing.T, url string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("pdf", "document.pdf")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestGenerateQuizz_Success(t *testing.T) {
	router := newGenerateRouter(t, &fakeGenerationService{id: 7})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, pdfUploadRequest(t, "/api/quizz/generate", []byte("%PDF-1.4 fake")))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["quizzId"] != float64(7) {
		t.Fatalf("expected quizzId 7, got %v", body)
	}
}

func TestGenerateCategory_Success(t *testing.T) {
	router := newGenerateRouter(t, &fakeGenerationService{id: 3})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, pdfUploadRequest(t, "/api/question/generate", []byte("%PDF-1.4 fake")))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["categoryId"] != float64(3) {
		t.Fatalf("expected categoryId 3, got %v", body)
	}
}

func TestGenerateQuizz_MissingPDFField(t *testing.T) {
	router := newGenerateRouter(t, &fakeGenerationService{id: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quizz/generate", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Invalid PDF document provided." {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestGenerateQuizz_PipelineErrorMapsToStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"input", apperr.Input("No readable text found in the PDF."), http.StatusBadRequest},
		{"configuration", apperr.Configuration("Google API key not provided."), http.StatusInternalServerError},
		{"upstream", apperr.Upstream(nil, "Failed to generate a response from the AI model."), http.StatusInternalServerError},
		{"malformed", apperr.MalformedResponse(nil, "Invalid or unparseable JSON response from AI model."), http.StatusInternalServerError},
		{"persistence", apperr.Persistence(nil, "Failed to save the generated quiz."), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newGenerateRouter(t, &fakeGenerationService{err: tc.err})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, pdfUploadRequest(t, "/api/quizz/generate", []byte("%PDF-1.4 fake")))

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			body := decodeBody(t, w)
			if body["error"] != apperr.PublicMessage(tc.err) {
				t.Fatalf("unexpected error body: %v", body)
			}
		})
	}
}
