package domain

import (
	"context"
	"io"
)

// ProgressFunc is invoked after each page of a document has been extracted
type ProgressFunc func(page, totalPages int)

// TextExtractor defines the interface for pulling per-page plain text out of
// a binary document. Pages are extracted strictly in order and the result is
// their newline-separated concatenation.
type TextExtractor interface {
	Extract(ctx context.Context, doc io.ReaderAt, size int64, progress ProgressFunc) (string, error)
}

// EthicsDirectory defines the interface for the static retailer ethics table
type EthicsDirectory interface {
	// Rating looks up a retailer by name, case-insensitively
	Rating(name string) (RetailerRating, bool)
}

// RetailerDirectory defines the interface for the static category to
// retailer-list table
type RetailerDirectory interface {
	// RetailersFor returns the ordered retailer display names for a category
	RetailersFor(category string) []string
}
