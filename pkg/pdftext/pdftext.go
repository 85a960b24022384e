// Package pdftext is the boundary to the PDF extraction collaborator: the
// rest of the pipeline consumes a PDF only as an ordered sequence of pages,
// each yielding extractable text.
package pdftext

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// Extractor turns raw PDF bytes into per-page plain text.
type Extractor interface {
	Pages(data []byte) ([]string, error)
}

// Reader is the production Extractor.
type Reader struct{}

// NewReader returns a ready Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Pages extracts the text of every page in page order. A page whose text
// cannot be decoded contributes an empty string rather than failing the
// whole document.
func (r *Reader) Pages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	total := reader.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return pages, nil
}
