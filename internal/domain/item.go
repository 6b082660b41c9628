package domain

// Item represents a single product candidate parsed from wishlist text
type Item struct {
	Title    string   `json:"title"`
	Author   string   `json:"author,omitempty"`
	Format   string   `json:"format,omitempty"` // e.g. "Paperback", "Kindle Edition"
	Price    *float64 `json:"price,omitempty"`
	Category string   `json:"category"` // assigned once, at parse time
}

// CategoryBucket groups the items sharing one category
type CategoryBucket struct {
	Items []Item `json:"items"`
	Count int    `json:"count"`
}
