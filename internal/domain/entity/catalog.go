package entity

// CatalogBook is the canonical book summary produced from an external catalog response,
// independent of the upstream format.
type CatalogBook struct {
	ExternalID    string   `json:"externalId"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Authors       []string `json:"authors"`
	Description   string   `json:"description"`
	ISBN          string   `json:"isbn"`
	CoverImage    string   `json:"coverImage"`
	PageCount     *int     `json:"pageCount"`
	Categories    []string `json:"categories"`
	AverageRating *float64 `json:"averageRating"`
	RatingsCount  int      `json:"ratingsCount"`
	Publisher     string   `json:"publisher"`
	PublishedDate string   `json:"publishedDate"`
	Language      string   `json:"language"`
}

// RecommendationType names the taste signal a candidate was derived from.
type RecommendationType string

const (
	RecommendationByAuthor   RecommendationType = "author"
	RecommendationByCategory RecommendationType = "category"
)

// Recommendation is a catalog candidate annotated with why it was suggested.
type Recommendation struct {
	CatalogBook

	RecommendationType   RecommendationType `json:"recommendationType"`
	RecommendationReason string             `json:"recommendationReason"`
}
