package itinerary

import "github.com/visitauburn/go-auburn-trips/internal/types"

// contentActivity is an authored activity slot. Description is the default
// wording; paceDescriptions override it for specific paces.
type contentActivity struct {
	ID               string
	Title            string
	Time             string
	Duration         string
	Description      string
	PaceDescriptions map[types.TripPace]string
	Location         string
	Category         string
}

type contentDining struct {
	ID          string
	Title       string
	Time        string
	Meal        types.MealType
	Description string
}

// dayContent is the authored block for one (template, position) cell.
// PackedExtra, when set, is appended for packed-pace non-first days.
type dayContent struct {
	Title       string
	Activities  []contentActivity
	Dining      []contentDining
	PackedExtra *contentActivity
}

// dayContentTable covers every template for every day position. Completeness
// over the full matrix is asserted by tests; activity IDs are unique within
// each block by authorship.
var dayContentTable = map[TemplateKey]map[DayPosition]dayContent{
	TemplateOutdoorAdventure: {
		PositionFirst: {
			Title: "Day 1: Arrival & Introduction",
			Activities: []contentActivity{
				{
					ID:          "arrival",
					Title:       "Check-In & Settle",
					Time:        "3:00 PM",
					Duration:    "30 min",
					Description: "Check into your accommodation and get ready for your Auburn adventure.",
				},
				{
					ID:          "old-town-walk",
					Title:       "Old Town Walking Tour",
					Time:        "4:00 PM",
					Duration:    "60 min",
					Description: "Explore historic Old Town Auburn with its Gold Rush-era buildings, shops, and galleries.",
					Location:    "Old Town Auburn",
					Category:    "Walking Tour",
				},
			},
			Dining: []contentDining{
				{
					ID:          "dinner-1",
					Title:       "Dinner in Old Town",
					Time:        "6:30 PM",
					Meal:        types.MealDinner,
					Description: "Enjoy farm-to-table dining in one of Old Town's historic restaurants.",
				},
			},
		},
		PositionMain: {
			Title: "Day 2: Main Adventure",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Early Breakfast",
					Time:        "7:00 AM",
					Duration:    "30 min",
					Description: "Fuel up for a day of hiking.",
				},
				{
					ID:          "lake-clementine",
					Title:       "Lake Clementine Trail",
					Time:        "8:00 AM",
					Duration:    "4 hours",
					Description: "6-mile scenic hike with plenty of photo stops and rest breaks.",
					PaceDescriptions: map[types.TripPace]string{
						types.PacePacked:   "Full 10-mile loop with canyon views, river access, and multiple swimming holes.",
						types.PaceBalanced: "8-mile out-and-back hike with stunning North Fork American River views.",
					},
					Location: "Lake Clementine Road",
					Category: "Hiking",
				},
				{
					ID:          "river-swim",
					Title:       "River Swimming & Lunch",
					Time:        "12:00 PM",
					Duration:    "90 min",
					Description: "Cool off in American River swimming holes and enjoy a riverside picnic.",
					Location:    "Lake Clementine",
					Category:    "Swimming",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-2",
					Title:       "Post-Hike Lunch",
					Time:        "2:00 PM",
					Meal:        types.MealLunch,
					Description: "Refuel at a local restaurant or brewery.",
				},
				{
					ID:          "dinner-2",
					Title:       "Celebration Dinner",
					Time:        "7:00 PM",
					Meal:        types.MealDinner,
					Description: "Well-deserved dinner after your hiking adventure.",
				},
			},
			PackedExtra: &contentActivity{
				ID:          "optional-bike",
				Title:       "Optional: Mountain Biking",
				Time:        "4:00 PM",
				Duration:    "2 hours",
				Description: "Explore Auburn's mountain bike trails if energy permits.",
				Category:    "Biking",
			},
		},
		PositionFinal: {
			Title: "Day 3: Final Exploration",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "8:00 AM",
					Duration:    "45 min",
					Description: "Early breakfast for your final hike.",
				},
				{
					ID:          "hidden-falls",
					Title:       "Hidden Falls Extended Loop",
					Time:        "9:00 AM",
					Duration:    "4-5 hours",
					Description: "6-mile loop to waterfall and back.",
					PaceDescriptions: map[types.TripPace]string{
						types.PacePacked: "Full 12-mile backcountry loop with waterfall and ridge views.",
					},
					Location: "7587 Mears Place",
					Category: "Hiking",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-3",
					Title:       "Trail Lunch",
					Time:        "12:00 PM",
					Meal:        types.MealLunch,
					Description: "Picnic lunch on the trail.",
				},
				{
					ID:          "dinner-3",
					Title:       "Farewell Dinner",
					Time:        "6:00 PM",
					Meal:        types.MealDinner,
					Description: "Final Auburn dinner before departure.",
				},
			},
		},
	},
	TemplateGoldRushHistory: {
		PositionFirst: {
			Title: "Day 1: Arrival & Introduction",
			Activities: []contentActivity{
				{
					ID:          "arrival",
					Title:       "Check-In",
					Time:        "2:00 PM",
					Duration:    "30 min",
					Description: "Check into your accommodation.",
				},
				{
					ID:          "visitor-center",
					Title:       "Auburn Visitor Center",
					Time:        "3:00 PM",
					Duration:    "45 min",
					Description: "Start at the Visitor Center for maps, walking tour guides, and Gold Rush history overview.",
					Location:    "601 Lincoln Way",
					Category:    "Museum",
				},
				{
					ID:          "old-town-tour",
					Title:       "Historic Old Town Walking Tour",
					Time:        "4:00 PM",
					Duration:    "90 min",
					Description: "Self-guided tour of 1850s buildings including Firehouse Tower, Union Bar Building, and historic markers.",
					Location:    "Old Town Auburn",
					Category:    "Walking Tour",
				},
			},
			Dining: []contentDining{
				{
					ID:          "dinner-1",
					Title:       "Historic Restaurant Dinner",
					Time:        "6:00 PM",
					Meal:        types.MealDinner,
					Description: "Dine in a Gold Rush-era building with California cuisine.",
				},
			},
		},
		PositionMain: {
			Title: "Day 2: Main Adventure",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "9:00 AM",
					Duration:    "45 min",
					Description: "Start your day with breakfast in Old Town.",
				},
				{
					ID:          "gold-museum",
					Title:       "Gold Country Museum",
					Time:        "10:00 AM",
					Duration:    "2 hours",
					Description: "Explore Gold Rush history with mine replica, gold panning, and authentic equipment.",
					Location:    "1273 High Street",
					Category:    "Museum",
				},
				{
					ID:          "bernhard-museum",
					Title:       "Bernhard Museum Complex",
					Time:        "1:00 PM",
					Duration:    "90 min",
					Description: "Visit 1851 Victorian hotel and winery with period furnishings.",
					Location:    "291 Auburn Folsom Road",
					Category:    "Museum",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-2",
					Title:       "Lunch",
					Time:        "12:00 PM",
					Meal:        types.MealLunch,
					Description: "Lunch break between museum visits.",
				},
				{
					ID:          "dinner-2",
					Title:       "Historic Dinner",
					Time:        "6:00 PM",
					Meal:        types.MealDinner,
					Description: "Dine in a historic Gold Rush building.",
				},
			},
		},
		PositionFinal: {
			Title: "Day 3: Final Exploration",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "9:00 AM",
					Duration:    "45 min",
					Description: "Final breakfast in Auburn.",
				},
				{
					ID:          "courthouse",
					Title:       "Placer County Courthouse",
					Time:        "10:00 AM",
					Duration:    "60 min",
					Description: "Historic courthouse with museum exhibits.",
					Location:    "101 Maple Street",
					Category:    "Museum",
				},
				{
					ID:          "final-stroll",
					Title:       "Final Old Town Stroll",
					Time:        "11:30 AM",
					Duration:    "60 min",
					Description: "Last exploration of Old Town before departure.",
					Location:    "Old Town Auburn",
					Category:    "Sightseeing",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-3",
					Title:       "Final Lunch",
					Time:        "12:30 PM",
					Meal:        types.MealLunch,
					Description: "Last meal in Auburn before heading home.",
				},
			},
		},
	},
	TemplateFamilyFun: {
		PositionFirst: {
			Title: "Day 1: Arrival & Introduction",
			Activities: []contentActivity{
				{
					ID:          "arrival",
					Title:       "Check-In",
					Time:        "2:00 PM",
					Duration:    "30 min",
					Description: "Check into your family-friendly accommodation.",
				},
				{
					ID:          "quarry-ponds",
					Title:       "Quarry Ponds Loop Trail",
					Time:        "3:00 PM",
					Duration:    "90 min",
					Description: "Easy 3-mile family-friendly trail with ponds, wildlife spotting, and picnic areas.",
					Location:    "Rock Creek Road",
					Category:    "Hiking",
				},
			},
			Dining: []contentDining{
				{
					ID:          "dinner-1",
					Title:       "Family-Friendly Dinner",
					Time:        "6:00 PM",
					Meal:        types.MealDinner,
					Description: "Kid-approved dining in Old Town with outdoor patios.",
				},
			},
		},
		PositionMain: {
			Title: "Day 2: Main Adventure",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "9:00 AM",
					Duration:    "45 min",
					Description: "Family breakfast to start the day.",
				},
				{
					ID:          "hidden-falls",
					Title:       "Hidden Falls Easy Trail",
					Time:        "10:00 AM",
					Duration:    "2 hours",
					Description: "Kid-friendly 2-mile hike to a beautiful waterfall with picnic tables.",
					Location:    "7587 Mears Place",
					Category:    "Hiking",
				},
				{
					ID:          "gold-panning",
					Title:       "Gold Country Museum",
					Time:        "1:00 PM",
					Duration:    "90 min",
					Description: "Kids love the mine replica and gold panning (they keep what they find!).",
					Location:    "1273 High Street",
					Category:    "Museum",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-2",
					Title:       "Family Lunch",
					Time:        "12:00 PM",
					Meal:        types.MealLunch,
					Description: "Kid-friendly lunch with outdoor seating.",
				},
				{
					ID:          "dinner-2",
					Title:       "Family Dinner",
					Time:        "6:00 PM",
					Meal:        types.MealDinner,
					Description: "Family-friendly restaurant with kids menu.",
				},
			},
		},
		PositionFinal: {
			Title: "Day 3: Final Exploration",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "9:00 AM",
					Duration:    "45 min",
					Description: "Family breakfast.",
				},
				{
					ID:          "old-town-scavenger",
					Title:       "Old Town Scavenger Hunt",
					Time:        "10:00 AM",
					Duration:    "90 min",
					Description: "Fun scavenger hunt through historic Old Town.",
					Location:    "Old Town Auburn",
					Category:    "Activity",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-3",
					Title:       "Final Family Lunch",
					Time:        "12:00 PM",
					Meal:        types.MealLunch,
					Description: "Last family meal in Auburn.",
				},
			},
		},
	},
	TemplateRomanticEscape: {
		PositionFirst: {
			Title: "Day 1: Arrival & Introduction",
			Activities: []contentActivity{
				{
					ID:          "arrival",
					Title:       "Check-In",
					Time:        "3:00 PM",
					Duration:    "30 min",
					Description: "Check into your romantic accommodation.",
				},
				{
					ID:          "old-town-stroll",
					Title:       "Old Town Stroll",
					Time:        "4:00 PM",
					Duration:    "60 min",
					Description: "Leisurely walk through Old Town, browse galleries, and enjoy the historic ambiance.",
					Location:    "Old Town Auburn",
					Category:    "Sightseeing",
				},
			},
			Dining: []contentDining{
				{
					ID:          "wine-tasting",
					Title:       "Wine Tasting",
					Time:        "5:00 PM",
					Meal:        types.MealSnack,
					Description: "Sierra Foothills wine tasting at a local winery.",
				},
				{
					ID:          "dinner-1",
					Title:       "Romantic Dinner",
					Time:        "7:00 PM",
					Meal:        types.MealDinner,
					Description: "Intimate farm-to-table dinner in a historic setting.",
				},
			},
		},
		PositionMain: {
			Title: "Day 2: Main Adventure",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Leisurely Breakfast",
					Time:        "9:00 AM",
					Duration:    "60 min",
					Description: "Relaxed breakfast together.",
				},
				{
					ID:          "scenic-hike",
					Title:       "Scenic Trail Walk",
					Time:        "10:30 AM",
					Duration:    "2 hours",
					Description: "Easy 3-mile walk with beautiful scenery.",
					PaceDescriptions: map[types.TripPace]string{
						types.PacePacked: "Moderate 6-mile hike with canyon views.",
					},
					Location: "Quarry Ponds or Lake Clementine",
					Category: "Hiking",
				},
				{
					ID:          "wine-tasting-2",
					Title:       "Winery Visit",
					Time:        "2:00 PM",
					Duration:    "90 min",
					Description: "Sierra Foothills winery tasting with scenic views.",
					Location:    "Local Winery",
					Category:    "Wine Tasting",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-2",
					Title:       "Lunch",
					Time:        "12:30 PM",
					Meal:        types.MealLunch,
					Description: "Light lunch at a local cafe.",
				},
				{
					ID:          "dinner-2",
					Title:       "Romantic Dinner",
					Time:        "7:00 PM",
					Meal:        types.MealDinner,
					Description: "Intimate dinner with Sierra Foothills wines.",
				},
			},
		},
		PositionFinal: {
			Title: "Day 3: Final Exploration",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Leisurely Breakfast",
					Time:        "9:00 AM",
					Duration:    "60 min",
					Description: "Final breakfast together.",
				},
				{
					ID:          "art-galleries",
					Title:       "Art Galleries & Shopping",
					Time:        "10:30 AM",
					Duration:    "2 hours",
					Description: "Browse Old Town galleries and shops.",
					Location:    "Old Town Auburn",
					Category:    "Shopping",
				},
			},
			Dining: []contentDining{
				{
					ID:          "brunch",
					Title:       "Brunch",
					Time:        "11:00 AM",
					Meal:        types.MealBreakfast,
					Description: "Extended brunch before departure.",
				},
			},
		},
	},
	TemplateWeekendGetaway: {
		PositionFirst: {
			Title: "Day 1: Arrival & Introduction",
			Activities: []contentActivity{
				{
					ID:          "arrival",
					Title:       "Check-In & Settle",
					Time:        "3:00 PM",
					Duration:    "30 min",
					Description: "Check into your Auburn accommodation.",
				},
				{
					ID:          "old-town",
					Title:       "Old Town Exploration",
					Time:        "4:00 PM",
					Duration:    "90 min",
					Description: "Explore Old Town Auburn's historic district, shops, and galleries.",
					Location:    "Old Town Auburn",
					Category:    "Sightseeing",
				},
			},
			Dining: []contentDining{
				{
					ID:          "dinner-1",
					Title:       "Dinner in Old Town",
					Time:        "6:00 PM",
					Meal:        types.MealDinner,
					Description: "Farm-to-table dining in a historic Gold Rush building.",
				},
			},
		},
		PositionMain: {
			Title: "Day 2: Main Adventure",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "8:00 AM",
					Duration:    "45 min",
					Description: "Fuel up for the day.",
				},
				{
					ID:          "lake-clementine",
					Title:       "Lake Clementine Trail",
					Time:        "9:00 AM",
					Duration:    "3-4 hours",
					Description: "6-mile scenic hike with photo stops.",
					PaceDescriptions: map[types.TripPace]string{
						types.PacePacked: "Full 8-mile hike with canyon views.",
					},
					Location: "Lake Clementine Road",
					Category: "Hiking",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-2",
					Title:       "Post-Hike Lunch",
					Time:        "1:00 PM",
					Meal:        types.MealLunch,
					Description: "Lunch in Auburn after your hike.",
				},
				{
					ID:          "dinner-2",
					Title:       "Special Dinner",
					Time:        "6:30 PM",
					Meal:        types.MealDinner,
					Description: "Celebrate your Auburn adventure.",
				},
			},
		},
		PositionFinal: {
			Title: "Day 3: Final Exploration",
			Activities: []contentActivity{
				{
					ID:          "breakfast",
					Title:       "Breakfast",
					Time:        "9:00 AM",
					Duration:    "45 min",
					Description: "Sunday breakfast.",
				},
				{
					ID:          "gold-museum",
					Title:       "Gold Country Museum",
					Time:        "10:00 AM",
					Duration:    "90 min",
					Description: "Explore Gold Rush history and try gold panning.",
					Location:    "1273 High Street",
					Category:    "Museum",
				},
				{
					ID:          "final-stroll",
					Title:       "Final Old Town Stroll",
					Time:        "12:00 PM",
					Duration:    "60 min",
					Description: "Last exploration of Old Town.",
					Location:    "Old Town Auburn",
					Category:    "Sightseeing",
				},
			},
			Dining: []contentDining{
				{
					ID:          "lunch-3",
					Title:       "Final Lunch",
					Time:        "1:00 PM",
					Meal:        types.MealLunch,
					Description: "Last meal before departure.",
				},
			},
		},
	},
}

// Templates lists every archetype, for completeness checks and docs.
func Templates() []TemplateKey {
	return []TemplateKey{
		TemplateWeekendGetaway,
		TemplateOutdoorAdventure,
		TemplateGoldRushHistory,
		TemplateFamilyFun,
		TemplateRomanticEscape,
	}
}

// Positions lists every authored day position.
func Positions() []DayPosition {
	return []DayPosition{PositionFirst, PositionMain, PositionFinal}
}

// description resolves the pace-sensitive wording for an activity slot.
func (a contentActivity) description(pace types.TripPace) string {
	if d, ok := a.PaceDescriptions[pace]; ok {
		return d
	}
	return a.Description
}

// maxActivitiesLight caps a light-pace day's activity list.
const maxActivitiesLight = 3

// BuildDay assembles one day from the content table. The block is picked by
// (template, day position); pace adjustments run afterwards and apply the
// same way no matter which block was chosen.
func BuildDay(dayNumber int, template TemplateKey, duration types.TripDuration, pace types.TripPace, group types.TripGroup, totalDays int) types.ItineraryDay {
	block, ok := dayContentTable[template][positionFor(dayNumber)]
	if !ok {
		// Unknown template: fall back to the weekend-getaway block for the
		// same position rather than producing an empty day.
		block = dayContentTable[TemplateWeekendGetaway][positionFor(dayNumber)]
	}

	title := block.Title
	if dayNumber == 1 && duration == types.DurationOneDay {
		title = "Your Auburn Day"
	}

	activities := make([]types.ItineraryActivity, 0, len(block.Activities)+1)
	for _, a := range block.Activities {
		activities = append(activities, types.ItineraryActivity{
			ID:          a.ID,
			Title:       a.Title,
			Time:        a.Time,
			Duration:    a.Duration,
			Description: a.description(pace),
			Location:    a.Location,
			Category:    a.Category,
		})
	}

	dining := make([]types.ItineraryDining, 0, len(block.Dining))
	for _, d := range block.Dining {
		dining = append(dining, types.ItineraryDining{
			ID:          d.ID,
			Title:       d.Title,
			Time:        d.Time,
			MealType:    d.Meal,
			Description: d.Description,
		})
	}

	if pace == types.PaceLight && len(activities) > maxActivitiesLight {
		activities = activities[:maxActivitiesLight]
	} else if pace == types.PacePacked && dayNumber != 1 && block.PackedExtra != nil {
		e := *block.PackedExtra
		activities = append(activities, types.ItineraryActivity{
			ID:          e.ID,
			Title:       e.Title,
			Time:        e.Time,
			Duration:    e.Duration,
			Description: e.Description,
			Location:    e.Location,
			Category:    e.Category,
		})
	}

	return types.ItineraryDay{
		DayNumber:  dayNumber,
		Title:      title,
		Activities: activities,
		Dining:     dining,
	}
}
