package types

// SearchDocumentType identifies which content source a search hit came from.
type SearchDocumentType string

const (
	SearchTypeActivity      SearchDocumentType = "activity"
	SearchTypeAccommodation SearchDocumentType = "accommodation"
	SearchTypeDining        SearchDocumentType = "dining"
	SearchTypeEvent         SearchDocumentType = "event"
	SearchTypeEditorial     SearchDocumentType = "editorial"
	SearchTypeAttraction    SearchDocumentType = "attraction"
)

// SearchDocument is an indexed content item. Text carries the full lowercase
// body used for matching and is not serialized; Snippet is the short display
// excerpt.
type SearchDocument struct {
	ID       string             `json:"id"`
	Type     SearchDocumentType `json:"type"`
	Title    string             `json:"title"`
	Href     string             `json:"href"`
	Text     string             `json:"-"`
	Snippet  string             `json:"snippet"`
	Tags     []string           `json:"tags,omitempty"`
	Location string             `json:"location,omitempty"`
}

// SearchResponse is the typeahead endpoint payload.
type SearchResponse struct {
	Query   string             `json:"query"`
	Type    SearchDocumentType `json:"type,omitempty"`
	Results []SearchDocument   `json:"results"`
	TookMs  int64              `json:"tookMs"`
}
