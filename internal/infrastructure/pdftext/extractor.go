// Package pdftext extracts per-page plain text from PDF documents.
package pdftext

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
)

// Extractor reads the text layer of a PDF page by page
type Extractor struct {
	debug bool
}

// NewExtractor creates a new PDF text extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SetDebug enables or disables per-page debug logging
func (e *Extractor) SetDebug(debug bool) {
	e.debug = debug
}

// Extract returns the concatenated text of every page in page order, with
// the page's fragments rendered as newline-separated rows. Pages are
// processed strictly sequentially and progress fires after each completed
// page.
func (e *Extractor) Extract(
	ctx context.Context,
	doc io.ReaderAt,
	size int64,
	progress domain.ProgressFunc,
) (text string, err error) {
	// The pdf package panics on some malformed content streams; surface
	// that as a read error instead of taking the caller down.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed pdf content: %v", r)
		}
	}()

	reader, err := pdf.NewReader(doc, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	totalPages := reader.NumPage()
	var fullText strings.Builder

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		page := reader.Page(pageNum)
		if !page.V.IsNull() {
			pageText := pageLines(page.Content().Text)
			fullText.WriteString(pageText)
			fullText.WriteByte('\n')

			if e.debug {
				log.Debug().
					Int("page", pageNum).
					Int("chars", len(pageText)).
					Msg("extracted page text")
			}
		}

		if progress != nil {
			progress(pageNum, totalPages)
		}
	}

	return fullText.String(), nil
}

// rowTolerance is the vertical distance within which two text fragments are
// considered part of the same visual row
const rowTolerance = 2.0

type textRow struct {
	y        float64
	contents []string
}

// pageLines groups a page's positioned text fragments into visual rows by
// their Y coordinate and renders one line per row, fragments joined with
// single spaces. Rows keep the order the content stream produced them in.
func pageLines(texts []pdf.Text) string {
	var rows []textRow

	for _, t := range texts {
		content := strings.TrimSpace(t.S)
		if content == "" {
			continue
		}

		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].contents = append(rows[i].contents, content)
				placed = true
				break
			}
		}

		if !placed {
			rows = append(rows, textRow{y: t.Y, contents: []string{content}})
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row.contents, " "))
	}
	return strings.Join(lines, "\n")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
