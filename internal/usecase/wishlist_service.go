package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
)

// WishlistServiceConfig holds configuration for the wishlist service
type WishlistServiceConfig struct {
	EnableDebugLogging bool
}

// WishlistService runs the upload analysis pipeline and serves quick
// searches. It owns the single current analysis result; each run replaces it
// wholesale and any failure returns the service to idle with nothing carried
// over.
type WishlistService struct {
	extractor   domain.TextExtractor
	parser      *WishlistParser
	analyzer    *Analyzer
	categorizer *Categorizer

	mu       sync.RWMutex
	phase    domain.Phase
	progress int
	result   *domain.AnalysisResult
}

// NewWishlistService creates a wishlist service with its dependencies
func NewWishlistService(
	extractor domain.TextExtractor,
	ethics domain.EthicsDirectory,
	retailers domain.RetailerDirectory,
	config WishlistServiceConfig,
) *WishlistService {
	categorizer := NewCategorizer()

	return &WishlistService{
		extractor:   extractor,
		parser:      NewWishlistParser(categorizer, config.EnableDebugLogging),
		analyzer:    NewAnalyzer(ethics, retailers),
		categorizer: categorizer,
		phase:       domain.PhaseIdle,
	}
}

// AnalyzeUpload runs extract -> parse -> dedupe -> aggregate for one
// uploaded document. Only PDF input is accepted; the check happens before
// any extraction work begins.
func (s *WishlistService) AnalyzeUpload(
	ctx context.Context,
	filename string,
	doc io.ReaderAt,
	size int64,
) (*domain.AnalysisResult, error) {
	if doc == nil || size <= 0 {
		return nil, domain.ErrInvalidRequest
	}
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, domain.ErrUnsupportedFileType
	}

	s.begin()

	fullText, err := s.extractor.Extract(ctx, doc, size, func(page, totalPages int) {
		if totalPages > 0 {
			s.setProgress(page * 100 / totalPages)
		}
	})
	if err != nil {
		s.reset()
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailure, err)
	}

	s.setPhase(domain.PhaseParsing)

	items := Dedupe(s.parser.Parse(fullText))
	if len(items) == 0 {
		s.reset()
		return nil, domain.ErrNoItemsFound
	}

	result := s.analyzer.Aggregate(items)
	s.publish(result)

	log.Info().
		Str("file", filename).
		Int("items", result.ItemCount).
		Int("categories", result.CategoryCount).
		Msg("wishlist analysis complete")

	return result, nil
}

// AnalyzeSearch builds retailer recommendations for a single search term
func (s *WishlistService) AnalyzeSearch(term string) (*domain.AnalysisResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrInvalidRequest
	}

	category := s.categorizer.Categorize(term)
	result := &domain.AnalysisResult{
		Type: domain.ResultTypeSearch,
		Categories: map[string]domain.CategoryAnalysis{
			category: {
				Retailers: s.analyzer.RankRetailers(category),
				ItemCount: 1,
			},
		},
		ItemCount:     1,
		CategoryCount: 1,
		SearchTerm:    term,
	}

	s.publish(result)
	return result, nil
}

// AnalyzeURL is deliberately unimplemented. Wishlist pages cannot be fetched
// reliably, so callers are pointed at the upload path instead.
func (s *WishlistService) AnalyzeURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return domain.ErrInvalidRequest
	}
	return domain.ErrURLImportUnsupported
}

// Status reports the current pipeline phase and extraction progress
func (s *WishlistService) Status() domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Status{
		Phase:    s.phase,
		Progress: s.progress,
	}
}

// Result returns the current analysis, or nil when no run has completed
func (s *WishlistService) Result() *domain.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Reset discards the current analysis and returns the service to idle
func (s *WishlistService) Reset() {
	s.reset()
}

// begin discards any previous result and enters the extracting phase
func (s *WishlistService) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = domain.PhaseExtracting
	s.progress = 0
	s.result = nil
}

func (s *WishlistService) setPhase(phase domain.Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

func (s *WishlistService) setProgress(progress int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = progress
}

// publish installs a completed result and marks the pipeline ready
func (s *WishlistService) publish(result *domain.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = domain.PhaseReady
	s.progress = 100
	s.result = result
}

func (s *WishlistService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = domain.PhaseIdle
	s.progress = 0
	s.result = nil
}
