package services

import (
	"context"
	"strings"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
)

// ParentMeta is the metadata of the parent entity (quiz or category),
// derived from the first page of the uploaded document.
type ParentMeta struct {
	Name        string
	Description string
}

// VariantAdapter is the capability that distinguishes the two pipelines:
// how to prompt the model, how to normalize its output, and where to
// persist the result. Everything else is shared by GenerationService.
type VariantAdapter interface {
	Variant() string
	FallbackName() string
	CompletionFailureMessage() string
	BuildPrompt(pages []string) string
	Normalize(elements []map[string]any) ([]NormalizedQuestion, error)
	Persist(ctx context.Context, parent ParentMeta, questions []NormalizedQuestion) (uint, error)
}

// TextExtractor turns an uploaded document into an ordered sequence of
// non-empty page texts.
type TextExtractor func(document []byte) ([]string, error)

// GenerationService runs the upload-to-persisted-id pipeline for one
// document. Each call is a single sequential pass; failures at any stage
// abort the request with a classified error.
type GenerationService interface {
	GenerateFromPDF(ctx context.Context, document []byte, adapter VariantAdapter) (uint, error)
}

type generationService struct {
	log        *logger.Logger
	extract    TextExtractor
	completion CompletionClient
	sanitizer  *Sanitizer
}

func NewGenerationService(log *logger.Logger, extract TextExtractor, completion CompletionClient, sanitizer *Sanitizer) GenerationService {
	return &generationService{
		log:        log.With("service", "GenerationService"),
		extract:    extract,
		completion: completion,
		sanitizer:  sanitizer,
	}
}

func (s *generationService) GenerateFromPDF(ctx context.Context, document []byte, adapter VariantAdapter) (uint, error) {
	log := s.log.With("variant", adapter.Variant())

	pages, err := s.extract(document)
	if err != nil {
		return 0, err
	}
	if len(pages) == 0 {
		return 0, apperr.Input("No readable text found in the PDF.")
	}

	prompt := adapter.BuildPrompt(pages)
	content, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindUpstream {
			return 0, apperr.Upstream(err, "%s", adapter.CompletionFailureMessage())
		}
		return 0, err
	}

	elements, err := s.sanitizer.Decode(content)
	if err != nil {
		log.Error("Failed to decode AI response", "error", err, "raw_content", content)
		return 0, err
	}
	questions, err := adapter.Normalize(elements)
	if err != nil {
		log.Error("Failed to normalize AI response", "error", err, "raw_content", content)
		return 0, err
	}

	parentID, err := adapter.Persist(ctx, parentMetaFromPages(pages, adapter.FallbackName()), questions)
	if err != nil {
		return 0, err
	}

	log.Info("Generation pipeline completed",
		"parent_id", parentID,
		"pages", len(pages),
		"questions", len(questions),
	)
	return parentID, nil
}

// parentMetaFromPages derives the parent name from the first line of the
// first page (truncated to 50 characters) and the description from the
// first 100 characters of that page.
func parentMetaFromPages(pages []string, fallbackName string) ParentMeta {
	first := pages[0]
	name := truncateRunes(strings.SplitN(first, "\n", 2)[0], 50)
	if name == "" {
		name = fallbackName
	}
	return ParentMeta{
		Name:        name,
		Description: truncateRunes(first, 100),
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
