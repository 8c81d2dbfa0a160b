package types

// TripDuration is how long the visitor plans to stay.
type TripDuration string

const (
	DurationOneDay        TripDuration = "1-day"
	DurationWeekend       TripDuration = "weekend"
	DurationThreePlusDays TripDuration = "3-plus-days"
)

// TripGroup is who is travelling.
type TripGroup string

const (
	GroupSolo   TripGroup = "solo"
	GroupCouple TripGroup = "couple"
	GroupFamily TripGroup = "family"
)

// TripVibe is the primary interest signal used for template selection.
type TripVibe string

const (
	VibeAdventure TripVibe = "adventure"
	VibeRelaxed   TripVibe = "relaxed"
	VibeFoodWine  TripVibe = "food-wine"
	VibeHistory   TripVibe = "history"
)

// TripPace controls how dense a generated day is.
type TripPace string

const (
	PaceLight    TripPace = "light"
	PaceBalanced TripPace = "balanced"
	PacePacked   TripPace = "packed"
)

// TripPreferences is the full input to the itinerary generator. Values
// outside the declared constants are accepted and resolved through default
// branches; the generator never rejects a preference set.
type TripPreferences struct {
	Duration TripDuration `json:"duration"`
	Group    TripGroup    `json:"group"`
	Vibe     TripVibe     `json:"vibe"`
	Pace     TripPace     `json:"pace"`
}

// MealType classifies a dining entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ItineraryActivity is a single scheduled activity within a day. IDs are
// unique within a day's activity list but may recur across days (breakfast
// repeats every morning).
type ItineraryActivity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ItineraryDining is a meal recommendation within a day.
type ItineraryDining struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Time        string   `json:"time"`
	MealType    MealType `json:"mealType"`
	Description string   `json:"description"`
	Cuisine     string   `json:"cuisine,omitempty"`
	PriceRange  string   `json:"priceRange,omitempty"`
	Link        string   `json:"link,omitempty"`
}

// ItineraryEvent is an optional scheduled event within a day.
type ItineraryEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ItineraryDay is one generated day. Activities and dining are ordered
// chronologically as two parallel lists; events are present only when
// populated.
type ItineraryDay struct {
	DayNumber  int                 `json:"dayNumber"`
	Title      string              `json:"title"`
	Activities []ItineraryActivity `json:"activities"`
	Dining     []ItineraryDining   `json:"dining"`
	Events     []ItineraryEvent    `json:"events,omitempty"`
}

// GeneratedItinerary is the full output of the generator: echoed
// preferences, one entry per day numbered 1..len(Days), and advisory tips.
type GeneratedItinerary struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    TripDuration   `json:"duration"`
	Group       TripGroup      `json:"group"`
	Vibe        TripVibe       `json:"vibe"`
	Pace        TripPace       `json:"pace"`
	Days        []ItineraryDay `json:"days"`
	Tips        []string       `json:"tips"`
}
