package types

// ContentLocation is a street address attached to an editorial item.
type ContentLocation struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// ContentActivity is a curated things-to-do listing.
type ContentActivity struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Excerpt    string          `json:"excerpt"`
	Category   string          `json:"category,omitempty"`
	SubHub     string          `json:"subHub,omitempty"`
	Duration   string          `json:"duration,omitempty"`
	PriceRange string          `json:"priceRange,omitempty"`
	Location   ContentLocation `json:"location,omitempty"`
}

// ContentAccommodation is a curated lodging listing.
type ContentAccommodation struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Slug     string          `json:"slug"`
	Excerpt  string          `json:"excerpt"`
	Category string          `json:"category,omitempty"`
	Location ContentLocation `json:"location,omitempty"`
}

// ContentDining is a curated restaurant listing.
type ContentDining struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Excerpt    string          `json:"excerpt"`
	Cuisine    string          `json:"cuisine,omitempty"`
	Category   string          `json:"category,omitempty"`
	PriceRange string          `json:"priceRange,omitempty"`
	Location   ContentLocation `json:"location,omitempty"`
}

// ContentEvent is a curated event listing.
type ContentEvent struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Slug     string          `json:"slug"`
	Excerpt  string          `json:"excerpt"`
	Category string          `json:"category,omitempty"`
	Date     string          `json:"date,omitempty"`
	Location ContentLocation `json:"location,omitempty"`
}

// ContentEditorial is a curated discover/story listing.
type ContentEditorial struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category,omitempty"`
}
