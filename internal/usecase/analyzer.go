package usecase

import (
	"sort"
	"strings"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
)

const (
	sampleItemLimit  = 3  // items shown per category
	previewItemLimit = 10 // items shown for the whole analysis
)

// defaultRating stands in for retailers missing from the ethics directory
var defaultRating = domain.RetailerRating{Score: 50, Reason: "No data", Color: "#aaaaaa"}

// Analyzer groups deduplicated items by category and ranks each category's
// retailers by ethics score
type Analyzer struct {
	ethics    domain.EthicsDirectory
	retailers domain.RetailerDirectory
}

// NewAnalyzer creates an analyzer backed by the given directories
func NewAnalyzer(ethics domain.EthicsDirectory, retailers domain.RetailerDirectory) *Analyzer {
	return &Analyzer{
		ethics:    ethics,
		retailers: retailers,
	}
}

// Dedupe removes items whose titles collide case-insensitively, keeping the
// first occurrence of each title in the original order
func Dedupe(items []domain.Item) []domain.Item {
	seen := make(map[string]bool, len(items))
	unique := make([]domain.Item, 0, len(items))

	for _, item := range items {
		key := strings.ToLower(item.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, item)
	}

	return unique
}

// Aggregate builds the wishlist analysis result for a deduplicated item list
func (a *Analyzer) Aggregate(items []domain.Item) *domain.AnalysisResult {
	buckets := make(map[string]*domain.CategoryBucket)
	for _, item := range items {
		bucket, ok := buckets[item.Category]
		if !ok {
			bucket = &domain.CategoryBucket{}
			buckets[item.Category] = bucket
		}
		bucket.Items = append(bucket.Items, item)
		bucket.Count++
	}

	categories := make(map[string]domain.CategoryAnalysis, len(buckets))
	for category, bucket := range buckets {
		categories[category] = domain.CategoryAnalysis{
			Retailers:   a.RankRetailers(category),
			ItemCount:   bucket.Count,
			SampleItems: head(bucket.Items, sampleItemLimit),
		}
	}

	return &domain.AnalysisResult{
		Type:          domain.ResultTypeWishlist,
		Categories:    categories,
		ItemCount:     len(items),
		CategoryCount: len(categories),
		PreviewItems:  head(items, previewItemLimit),
	}
}

// RankRetailers resolves the ordered retailer list for a category and
// decorates it with ethics ratings, best score first. The sort is stable so
// retailers with equal scores keep their table order.
func (a *Analyzer) RankRetailers(category string) []domain.RetailerRecommendation {
	names := a.retailers.RetailersFor(category)

	recommendations := make([]domain.RetailerRecommendation, 0, len(names))
	for _, name := range names {
		rating, ok := a.ethics.Rating(name)
		if !ok {
			rating = defaultRating
		}
		recommendations = append(recommendations, domain.RetailerRecommendation{
			Name:   name,
			Score:  rating.Score,
			Reason: rating.Reason,
			Color:  rating.Color,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return recommendations
}

// head returns the first n items, or all of them when fewer exist
func head(items []domain.Item, n int) []domain.Item {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
