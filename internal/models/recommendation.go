package models

type RecommendationType string

// Recommendation group tags. They drive caller-side styling only, never
// business logic.
const (
	RecComplement RecommendationType = "complement"
	RecSimilar    RecommendationType = "similar"
	RecSeasonal   RecommendationType = "seasonal"
	RecBodyFit    RecommendationType = "body-fit"
	RecPriceBased RecommendationType = "price-based"
	RecOccasion   RecommendationType = "occasion"
	RecLoyalty    RecommendationType = "loyalty"
	RecFirstTime  RecommendationType = "first-time"
	RecDefault    RecommendationType = "default"
)

type SuggestedItem struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Price  string `json:"price"`
}

// Recommendation is one merchandising suggestion group. Recommendations are
// ephemeral and never persisted.
type Recommendation struct {
	Type  RecommendationType `json:"type"`
	Title string             `json:"title"`
	Items []SuggestedItem    `json:"items"`
}
