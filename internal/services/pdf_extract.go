package services

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/quizzgen/quizzgen-backend/internal/apperr"
)

// ExtractPDFPages returns the text of each page in order, dropping pages
// that contain no extractable text. Pages that fail to decode are skipped
// rather than failing the whole document.
func ExtractPDFPages(data []byte) (pages []string, err error) {
	if len(data) == 0 {
		return nil, apperr.Input("Invalid PDF document provided.")
	}

	// The pdf library panics on some malformed documents instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = apperr.Input("Invalid PDF document provided.")
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperr.Input("Invalid PDF document provided.")
	}

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
