package types

// AttractionType is the closed set of catalog categories.
type AttractionType string

const (
	AttractionTrail         AttractionType = "trail"
	AttractionPark          AttractionType = "park"
	AttractionMuseum        AttractionType = "museum"
	AttractionHistoricSite  AttractionType = "historic-site"
	AttractionWinery        AttractionType = "winery"
	AttractionRestaurant    AttractionType = "restaurant"
	AttractionBrewery       AttractionType = "brewery"
	AttractionMarket        AttractionType = "market"
	AttractionViewpoint     AttractionType = "viewpoint"
	AttractionWaterActivity AttractionType = "water-activity"
	AttractionCultural      AttractionType = "cultural"
	AttractionShopping      AttractionType = "shopping"
	AttractionFamily        AttractionType = "family"
)

// LocationArea is the closed set of areas an attraction can sit in.
type LocationArea string

const (
	AreaOldTown      LocationArea = "old-town"
	AreaDowntown     LocationArea = "downtown"
	AreaAuburnSRA    LocationArea = "auburn-sra"
	AreaForesthill   LocationArea = "foresthill"
	AreaNorthAuburn  LocationArea = "north-auburn"
	AreaPlacerCounty LocationArea = "placer-county"
	AreaFoothills    LocationArea = "foothills"
)

// Difficulty rates the physical effort an attraction asks for.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

// Attraction is a catalog entry for a real-world point of interest. The
// catalog is built once at startup and never mutated; RelatedPages holds
// internal route identifiers with the canonical link target first.
type Attraction struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             AttractionType `json:"type"`
	ShortDescription string         `json:"shortDescription"`
	LongDescription  string         `json:"longDescription,omitempty"`
	LocationArea     LocationArea   `json:"locationArea"`
	Address          string         `json:"address,omitempty"`
	RelatedPages     []string       `json:"relatedPages"`
	ImageID          string         `json:"imageId"`
	Highlights       []string       `json:"highlights,omitempty"`
	BestFor          []string       `json:"bestFor,omitempty"`
	Duration         string         `json:"duration,omitempty"`
	Difficulty       Difficulty     `json:"difficulty,omitempty"`
	Featured         bool           `json:"featured,omitempty"`
	Seasonal         bool           `json:"seasonal,omitempty"`
	FamilyFriendly   bool           `json:"familyFriendly,omitempty"`
	PetFriendly      bool           `json:"petFriendly,omitempty"`
}

// AttractionGroup is a coarse grouping used by the hub listing pages.
type AttractionGroup string

const (
	AttractionGroupOutdoor        AttractionGroup = "outdoor"
	AttractionGroupHistoryCulture AttractionGroup = "history-culture"
	AttractionGroupFoodDrink      AttractionGroup = "food-drink"
)

// AttractionFilter narrows a catalog listing. Fields are alternatives, not
// conjunctions; the first populated one wins.
type AttractionFilter struct {
	Type           AttractionType  `json:"type,omitempty"`
	Area           LocationArea    `json:"area,omitempty"`
	Difficulty     Difficulty      `json:"difficulty,omitempty"`
	FamilyFriendly bool            `json:"familyFriendly,omitempty"`
	Group          AttractionGroup `json:"group,omitempty"`
}

// AttractionTypeLabels maps catalog categories to display labels.
var AttractionTypeLabels = map[AttractionType]string{
	AttractionTrail:         "Trail",
	AttractionPark:          "Park",
	AttractionMuseum:        "Museum",
	AttractionHistoricSite:  "Historic Site",
	AttractionWinery:        "Winery",
	AttractionRestaurant:    "Restaurant",
	AttractionBrewery:       "Brewery",
	AttractionMarket:        "Market",
	AttractionViewpoint:     "Viewpoint",
	AttractionWaterActivity: "Water Activity",
	AttractionCultural:      "Arts & Culture",
	AttractionShopping:      "Shopping",
	AttractionFamily:        "Family Fun",
}

// LocationAreaLabels maps location areas to display labels.
var LocationAreaLabels = map[LocationArea]string{
	AreaOldTown:      "Old Town Auburn",
	AreaDowntown:     "Downtown",
	AreaAuburnSRA:    "Auburn State Recreation Area",
	AreaForesthill:   "Foresthill",
	AreaNorthAuburn:  "North Auburn",
	AreaPlacerCounty: "Placer County",
	AreaFoothills:    "Sierra Foothills",
}
