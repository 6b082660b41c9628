// Package ethics holds the static retailer data the recommender runs on.
// Both tables are fixed at build time; nothing here talks to the network.
package ethics

import (
	"strings"

	"github.com/bertiemoogle/ethical-gift-finder/internal/domain"
)

// ratings maps lowercase retailer names to their ethics entry
var ratings = map[string]domain.RetailerRating{
	"amazon":             {Score: 30, Reason: "Tax avoidance, labor issues", Color: "#ff4444"},
	"world of books":     {Score: 85, Reason: "Circular economy, B Corp", Color: "#44ff44"},
	"better world books": {Score: 90, Reason: "Funds literacy programs", Color: "#44ff44"},
	"thriftbooks":        {Score: 80, Reason: "Book reuse", Color: "#44ff44"},
	"waterstones":        {Score: 60, Reason: "UK company", Color: "#ffaa44"},
	"blackwells":         {Score: 65, Reason: "Academic focus", Color: "#ffaa44"},
	"hive":               {Score: 75, Reason: "Supports indie bookshops", Color: "#44ff44"},
	"john lewis":         {Score: 70, Reason: "Employee-owned", Color: "#ffaa44"},
	"currys":             {Score: 55, Reason: "UK company", Color: "#ffaa44"},
	"back market":        {Score: 85, Reason: "Refurbished electronics", Color: "#44ff44"},
	"charity shops":      {Score: 95, Reason: "Funds good causes", Color: "#44ff44"},
	"etsy":               {Score: 70, Reason: "Supports small creators", Color: "#ffaa44"},
	"local shops":        {Score: 80, Reason: "Community support", Color: "#44ff44"},
}

// retailersByCategory lists the retailers worth comparing per category, most
// relevant first. Amazon appears last in every list as the baseline
// comparator.
var retailersByCategory = map[string][]string{
	"books":       {"World of Books", "Better World Books", "ThriftBooks", "Hive", "Waterstones", "Amazon"},
	"electronics": {"Back Market", "John Lewis", "Currys", "Amazon"},
	"toys":        {"Local Shops", "John Lewis", "Charity Shops", "Amazon"},
	"garden":      {"Local Shops", "Charity Shops", "Amazon"},
	"home":        {"Charity Shops", "Local Shops", "John Lewis", "Amazon"},
	"health":      {"Local Shops", "John Lewis", "Amazon"},
	"fashion":     {"Charity Shops", "Local Shops", "Amazon"},
	"general":     {"Charity Shops", "Local Shops", "Etsy", "Amazon"},
}

// Directory serves the build-time ethics and retailer tables through the
// domain ports so tests can swap them out
type Directory struct{}

// NewDirectory creates the static directory
func NewDirectory() *Directory {
	return &Directory{}
}

// Rating looks up the ethics entry for a retailer, case-insensitively
func (d *Directory) Rating(name string) (domain.RetailerRating, bool) {
	rating, ok := ratings[strings.ToLower(name)]
	return rating, ok
}

// RetailersFor returns a copy of the ordered retailer list for a category,
// falling back to the general list for unknown categories
func (d *Directory) RetailersFor(category string) []string {
	list, ok := retailersByCategory[category]
	if !ok {
		list = retailersByCategory["general"]
	}

	out := make([]string, len(list))
	copy(out, list)
	return out
}
