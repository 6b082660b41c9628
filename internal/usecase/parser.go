package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	// itemLineRegex matches the "<title> by <author> (<format>)" line shape
	// found in wishlist exports
	itemLineRegex = regexp.MustCompile(`^(.+?)\s*by\s+(.+?)\s*\(([^)]+)\)`)

	// priceRegex matches a currency-prefixed decimal. Print-to-PDF text often
	// carries the pound sign mis-decoded as the two-byte "Â£", so the stray
	// prefix byte is tolerated.
	priceRegex = regexp.MustCompile(`Â?£(\d+\.?\d*)`)

	// columnHeaderRegex matches export column-header lines
	columnHeaderRegex = regexp.MustCompile(`^(Title|Price|Quantity|Has|Comments)`)

	// pageMarkerRegex matches pagination markers like "2 of 5"
	pageMarkerRegex = regexp.MustCompile(`^\d+\s+of\s+\d+`)
)

const (
	// minLineLen filters out empty and near-empty noise lines
	minLineLen = 3

	// minFallbackTitleLen is the length a standalone line must exceed to be
	// treated as a title candidate
	minFallbackTitleLen = 10

	// titleMaxLen caps retained titles so a failed pattern spanning many
	// fragments cannot produce a runaway title
	titleMaxLen = 150
)

// WishlistParser turns flattened wishlist page text into ordered raw items
type WishlistParser struct {
	categorizer        *Categorizer
	enableDebugLogging bool
}

// NewWishlistParser creates a parser that assigns categories via categorizer
func NewWishlistParser(categorizer *Categorizer, enableDebugLogging bool) *WishlistParser {
	return &WishlistParser{
		categorizer:        categorizer,
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse splits the concatenated page text into lines and scans them with a
// forward cursor, emitting one item per recognized line shape. Lines matching
// neither shape are dropped without error.
func (p *WishlistParser) Parse(fullText string) []domain.Item {
	lines := strings.Split(fullText, "\n")

	var items []domain.Item
	for i := 0; i < len(lines); {
		item, next := p.scanItem(lines, i)
		i = next

		if item != nil && item.Title != "" {
			items = append(items, *item)
		}
	}

	return items
}

// scanItem classifies the line at index i and returns the parsed item (nil
// for noise) plus the index to resume from. The resume index jumps past a
// consumed author-continuation line so it is never re-scanned as a title.
func (p *WishlistParser) scanItem(lines []string, i int) (*domain.Item, int) {
	line := strings.TrimSpace(lines[i])

	if len(line) < minLineLen {
		return nil, i + 1
	}

	// Primary shape: "<title> by <author> (<format>)"
	if m := itemLineRegex.FindStringSubmatch(line); m != nil {
		item := &domain.Item{
			Title:    strings.TrimSpace(m[1]),
			Author:   strings.TrimSpace(m[2]),
			Format:   strings.TrimSpace(m[3]),
			Category: p.categorizer.Categorize(m[1] + " " + m[3]),
		}
		p.attachPrice(item, line)
		return item, i + 1
	}

	// Fallback shape: a standalone line that looks like a product title
	if len(line) > minFallbackTitleLen &&
		!columnHeaderRegex.MatchString(line) &&
		!pageMarkerRegex.MatchString(line) {

		next := i + 1
		// When the following line reads like author metadata it belongs to
		// this title and must not surface as its own item.
		if next < len(lines) && isAuthorContinuation(lines[next]) {
			next++
		}

		title := truncateTitle(line)
		item := &domain.Item{
			Title:    title,
			Category: p.categorizer.Categorize(title),
		}
		p.attachPrice(item, line)
		return item, next
	}

	if p.enableDebugLogging {
		log.Debug().Str("line", line).Msg("dropped unrecognized line")
	}
	return nil, i + 1
}

// attachPrice extracts a currency-prefixed decimal from the same line the
// item was built from, if one is present
func (p *WishlistParser) attachPrice(item *domain.Item, line string) {
	m := priceRegex.FindStringSubmatch(line)
	if m == nil {
		return
	}

	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return
	}
	item.Price = &price
}

// isAuthorContinuation reports whether a line looks like the author metadata
// for the preceding title line
func isAuthorContinuation(line string) bool {
	return strings.Contains(line, " by ") ||
		strings.HasPrefix(strings.TrimSpace(line), "by ")
}

// truncateTitle bounds a title to titleMaxLen characters
func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleMaxLen {
		return s
	}
	return string(runes[:titleMaxLen])
}
