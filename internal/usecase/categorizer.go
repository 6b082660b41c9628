package usecase

import "strings"

// CategoryGeneral is the fallback category when no rule matches
const CategoryGeneral = "general"

// categoryRule binds one category tag to the keywords that select it
type categoryRule struct {
	category string
	keywords []string
}

// categoryRules are evaluated in a fixed priority order; the first rule with
// any keyword occurring in the text wins. Books outrank the later rules, so
// "Gardening Guide" lands in books, not garden.
var categoryRules = []categoryRule{
	{
		category: "books",
		keywords: []string{
			"book", "novel", "paperback", "hardcover", "kindle",
			"author", "read", "story", "tales", "guide",
		},
	},
	{
		category: "electronics",
		keywords: []string{
			"electronic", "phone", "cable", "charger", "usb",
			"computer", "laptop", "tablet", "camera", "headphone",
		},
	},
	{
		category: "toys",
		keywords: []string{
			"toy", "game", "puzzle", "play", "child", "kid", "lego", "board game",
		},
	},
	{
		category: "garden",
		keywords: []string{
			"garden", "plant", "seed", "outdoor", "flower", "lawn", "soil",
		},
	},
	{
		category: "home",
		keywords: []string{
			"kitchen", "home", "decor", "furniture", "lamp", "cushion", "table",
		},
	},
	{
		category: "health",
		keywords: []string{
			"beauty", "health", "care", "cosmetic", "skincare", "vitamin", "wellness",
		},
	},
	{
		category: "fashion",
		keywords: []string{
			"clothing", "shirt", "dress", "shoes", "jacket", "fashion", "wear",
		},
	},
}

// Categorizer maps free item text to one of a fixed set of category tags
type Categorizer struct{}

// NewCategorizer creates a new categorizer
func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize returns the first-priority category whose keyword set has a
// case-insensitive substring hit in text, or CategoryGeneral when none does.
// The rule table is fixed, so identical input always yields the same tag.
func (c *Categorizer) Categorize(text string) string {
	textLower := strings.ToLower(text)

	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(textLower, keyword) {
				return rule.category
			}
		}
	}

	return CategoryGeneral
}
