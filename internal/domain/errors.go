package domain

import "errors"

var (
	// ErrUnsupportedFileType is returned when the uploaded document is not a PDF
	ErrUnsupportedFileType = errors.New("unsupported file type, only PDF wishlists are accepted")

	// ErrExtractionFailure is returned when the document text cannot be read
	ErrExtractionFailure = errors.New("failed to read document text")

	// ErrNoItemsFound is returned when parsing completes without a single retained item
	ErrNoItemsFound = errors.New("no items could be extracted from the document")

	// ErrURLImportUnsupported is returned by the URL import path, which only
	// advises callers to use the upload path instead
	ErrURLImportUnsupported = errors.New("wishlist URL import is not supported")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
