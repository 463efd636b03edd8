package services

import (
	"testing"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
)

func TestExtractPDFPages_EmptyDocument(t *testing.T) {
	_, err := ExtractPDFPages(nil)
	if apperr.KindOf(err) != apperr.KindInput {
		t.Fatalf("expected input kind, got %v", err)
	}
}

func TestExtractPDFPages_NotAPDF(t *testing.T) {
	_, err := ExtractPDFPages([]byte("this is not a pdf"))
	if apperr.KindOf(err) != apperr.KindInput {
		t.Fatalf("expected input kind, got %v", err)
	}
}
