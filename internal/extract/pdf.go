package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor pulls plain text out of a document.
type TextExtractor interface {
	ExtractText(ctx context.Context, doc []byte) (string, error)
}

// DocumentError reports that text could not be extracted from a document.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("extract document text: %v", e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// PDFExtractor extracts text from PDF documents.
type PDFExtractor struct{}

var _ TextExtractor = (*PDFExtractor)(nil)

// ExtractText returns the text of every page in order. Each text row of a
// page becomes one line and every page ends with a newline.
func (PDFExtractor) ExtractText(ctx context.Context, doc []byte) (text string, err error) {
	if len(doc) == 0 {
		return "", &DocumentError{Err: errors.New("empty document")}
	}

	// The pdf reader panics on some malformed input.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &DocumentError{Err: fmt.Errorf("corrupt PDF: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(doc), int64(len(doc)))
	if err != nil {
		return "", &DocumentError{Err: err}
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", &DocumentError{Err: err}
		}
		page := r.Page(i)
		if page.V.IsNull() {
			b.WriteString("\n")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", &DocumentError{Err: fmt.Errorf("page %d: %w", i, err)}
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			var line strings.Builder
			for _, t := range row.Content {
				line.WriteString(t.S)
			}
			lines = append(lines, line.String())
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return b.String(), nil
}
