package usecase

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
)

// stubEthics is a test double for the ethics directory
type stubEthics map[string]domain.RetailerRating

func (s stubEthics) Rating(name string) (domain.RetailerRating, bool) {
	rating, ok := s[strings.ToLower(name)]
	return rating, ok
}

// stubRetailers is a test double for the category retailer table
type stubRetailers map[string][]string

func (s stubRetailers) RetailersFor(category string) []string {
	if list, ok := s[category]; ok {
		return list
	}
	return s["general"]
}

func TestDedupe(t *testing.T) {
	t.Run("case-insensitive titles, first occurrence wins", func(t *testing.T) {
		items := []domain.Item{
			{Title: "Foo"},
			{Title: "bar"},
			{Title: "FOO"},
		}

		got := Dedupe(items)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Title != "Foo" || got[1].Title != "bar" {
			t.Errorf("titles = [%q, %q], want [Foo, bar]", got[0].Title, got[1].Title)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := Dedupe(nil); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("no duplicates preserved as-is", func(t *testing.T) {
		items := []domain.Item{{Title: "a book"}, {Title: "another book"}}
		got := Dedupe(items)
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})
}

func TestRankRetailers(t *testing.T) {
	ethics := stubEthics{
		"good shop": {Score: 90, Reason: "Great record", Color: "#44ff44"},
		"bad shop":  {Score: 20, Reason: "Poor record", Color: "#ff4444"},
	}
	retailers := stubRetailers{
		"books":   {"Bad Shop", "Good Shop"},
		"general": {"Somewhere"},
	}
	a := NewAnalyzer(ethics, retailers)

	t.Run("sorted by score descending", func(t *testing.T) {
		got := a.RankRetailers("books")
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Name != "Good Shop" || got[1].Name != "Bad Shop" {
			t.Errorf("order = [%s, %s], want [Good Shop, Bad Shop]", got[0].Name, got[1].Name)
		}
	})

	t.Run("unknown retailer gets the default rating", func(t *testing.T) {
		got := a.RankRetailers("unknown-category")
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Score != 50 || got[0].Reason != "No data" || got[0].Color != "#aaaaaa" {
			t.Errorf("default rating = %+v, want {50, No data, #aaaaaa}", got[0])
		}
	})
}

func TestRankRetailers_StableForEqualScores(t *testing.T) {
	// Neither retailer is rated, so both default to 50; their output order
	// must match the table order.
	ethics := stubEthics{}
	retailers := stubRetailers{
		"toys":    {"First Unrated", "Second Unrated"},
		"general": nil,
	}
	a := NewAnalyzer(ethics, retailers)

	got := a.RankRetailers("toys")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "First Unrated" || got[1].Name != "Second Unrated" {
		t.Errorf("order = [%s, %s], want table order preserved", got[0].Name, got[1].Name)
	}
}

func TestAggregate(t *testing.T) {
	ethics := stubEthics{}
	retailers := stubRetailers{"general": {"Somewhere"}}
	a := NewAnalyzer(ethics, retailers)

	t.Run("groups items and counts per category", func(t *testing.T) {
		items := []domain.Item{
			{Title: "Book One", Category: "books"},
			{Title: "Book Two", Category: "books"},
			{Title: "Charger", Category: "electronics"},
		}

		result := a.Aggregate(items)

		if result.Type != domain.ResultTypeWishlist {
			t.Errorf("Type = %q, want wishlist", result.Type)
		}
		if result.ItemCount != 3 {
			t.Errorf("ItemCount = %d, want 3", result.ItemCount)
		}
		if result.CategoryCount != 2 {
			t.Errorf("CategoryCount = %d, want 2", result.CategoryCount)
		}

		books, ok := result.Categories["books"]
		if !ok {
			t.Fatal("missing books category")
		}
		if books.ItemCount != 2 {
			t.Errorf("books.ItemCount = %d, want 2", books.ItemCount)
		}
		if len(books.SampleItems) != 2 {
			t.Errorf("len(books.SampleItems) = %d, want 2", len(books.SampleItems))
		}
	})

	t.Run("caps samples at 3 and preview at 10", func(t *testing.T) {
		var items []domain.Item
		for i := 0; i < 12; i++ {
			items = append(items, domain.Item{
				Title:    fmt.Sprintf("Item %d", i),
				Category: "books",
			})
		}

		result := a.Aggregate(items)

		if len(result.Categories["books"].SampleItems) != 3 {
			t.Errorf("len(SampleItems) = %d, want 3", len(result.Categories["books"].SampleItems))
		}
		if len(result.PreviewItems) != 10 {
			t.Errorf("len(PreviewItems) = %d, want 10", len(result.PreviewItems))
		}
		if result.ItemCount != 12 {
			t.Errorf("ItemCount = %d, want 12", result.ItemCount)
		}
	})

	t.Run("empty input yields an empty result", func(t *testing.T) {
		result := a.Aggregate(nil)
		if result.ItemCount != 0 || result.CategoryCount != 0 {
			t.Errorf("counts = %d/%d, want 0/0", result.ItemCount, result.CategoryCount)
		}
	})
}
