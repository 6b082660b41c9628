package domain

// RetailerRating is a static ethics entry for one retailer
type RetailerRating struct {
	Score  int    `json:"score"` // 0-100
	Reason string `json:"reason"`
	Color  string `json:"color"`
}

// RetailerRecommendation is a retailer decorated with its ethics rating
type RetailerRecommendation struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
	Color  string `json:"color"`
}

// CategoryAnalysis holds the ranked retailers for one category of items
type CategoryAnalysis struct {
	Retailers   []RetailerRecommendation `json:"retailers"` // sorted by score, best first
	ItemCount   int                      `json:"itemCount"`
	SampleItems []Item                   `json:"sampleItems,omitempty"`
}

// Analysis result types
const (
	ResultTypeWishlist = "wishlist"
	ResultTypeSearch   = "search"
)

// AnalysisResult is the top-level output of one analysis run.
// It is immutable once produced; a new upload or search replaces it wholesale.
type AnalysisResult struct {
	Type          string                      `json:"type"` // "wishlist" or "search"
	Categories    map[string]CategoryAnalysis `json:"categories"`
	ItemCount     int                         `json:"itemCount"`
	CategoryCount int                         `json:"categoryCount"`
	PreviewItems  []Item                      `json:"previewItems,omitempty"`
	SearchTerm    string                      `json:"searchTerm,omitempty"`
}

// Phase identifies where the analysis pipeline currently is
type Phase string

// Pipeline phases
const (
	PhaseIdle       Phase = "idle"
	PhaseExtracting Phase = "extracting"
	PhaseParsing    Phase = "parsing"
	PhaseReady      Phase = "ready"
)

// Status is a snapshot of the pipeline state for progress display
type Status struct {
	Phase    Phase `json:"phase"`
	Progress int   `json:"progress"` // 0-100, advances while extracting
}
