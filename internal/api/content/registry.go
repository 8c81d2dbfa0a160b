package content

import (
	"time"

	"github.com/visitauburn/go-auburn-trips/internal/types"
)

var auburnLocation = func(address string) types.ContentLocation {
	return types.ContentLocation{Address: address, City: "Auburn", State: "CA", Zip: "95603"}
}

// eventDate places registry events on a rolling calendar relative to startup
// so listings always show upcoming dates.
func eventDate(dayOffset, hour, minute int) string {
	now := time.Now()
	d := time.Date(now.Year(), now.Month(), now.Day()+dayOffset, hour, minute, 0, 0, time.Local)
	return d.Format(time.RFC3339)
}

var activities = []types.ContentActivity{
	{
		ID:         "mock-activity-1",
		Title:      "Lake Clementine Trail",
		Slug:       "lake-clementine-trail",
		Excerpt:    "Scenic hiking trail along Lake Clementine offering beautiful views of the American River and surrounding mountains.",
		Category:   "Hiking",
		SubHub:     "outdoor-adventures",
		Duration:   "2-3 hours",
		PriceRange: "Free",
		Location:   auburnLocation("Lake Clementine Access Road"),
	},
	{
		ID:         "mock-activity-2",
		Title:      "Hidden Falls Regional Park",
		Slug:       "hidden-falls-regional-park",
		Excerpt:    "Beautiful regional park featuring waterfalls, hiking trails, and picnic areas perfect for a day outdoors.",
		Category:   "Parks & Nature",
		SubHub:     "outdoor-adventures",
		Duration:   "2-4 hours",
		PriceRange: "Free",
		Location:   auburnLocation("7587 Mears Place"),
	},
	{
		ID:         "mock-activity-3",
		Title:      "Overlook Park",
		Slug:       "overlook-park",
		Excerpt:    "Scenic park offering panoramic views of Auburn and the American River canyon.",
		Category:   "Parks",
		SubHub:     "outdoor-adventures",
		Duration:   "1 hour",
		PriceRange: "Free",
		Location:   auburnLocation("490 Auburn Ravine Road"),
	},
	{
		ID:         "mock-activity-4",
		Title:      "Railhead Park",
		Slug:       "railhead-park",
		Excerpt:    "Community park featuring playgrounds, sports facilities, and beautiful open spaces in the heart of Auburn.",
		Category:   "Parks",
		SubHub:     "outdoor-adventures",
		Duration:   "1-2 hours",
		PriceRange: "Free",
		Location:   auburnLocation("400 Railhead Way"),
	},
	{
		ID:         "mock-activity-5",
		Title:      "Black Hole of Calcutta Falls & Quarry Road Trail",
		Slug:       "black-hole-of-calcutta-falls-quarry-road-trail",
		Excerpt:    "Unique natural swimming hole and hiking trail featuring a beautiful waterfall and historic quarry site.",
		Category:   "Hiking & Swimming",
		SubHub:     "outdoor-adventures",
		Duration:   "2-3 hours",
		PriceRange: "Free",
		Location:   auburnLocation("Quarry Road"),
	},
	{
		ID:         "mock-activity-6",
		Title:      "Auburn Swim Hole on American River",
		Slug:       "auburn-swim-hole-american-river",
		Excerpt:    "Popular swimming destination on the American River, perfect for cooling off on hot summer days.",
		Category:   "Swimming",
		SubHub:     "outdoor-adventures",
		Duration:   "2-4 hours",
		PriceRange: "Free",
		Location:   auburnLocation("American River"),
	},
	{
		ID:         "mock-activity-7",
		Title:      "Gold Rush Museum",
		Slug:       "gold-rush-museum",
		Excerpt:    "Discover the rich history of the California Gold Rush and Auburn's role in this historic era.",
		Category:   "Museum",
		SubHub:     "history-culture",
		Duration:   "1-2 hours",
		PriceRange: "$5-$10",
		Location:   auburnLocation("601 Lincoln Way"),
	},
	{
		ID:         "mock-activity-8",
		Title:      "Placer County Museum",
		Slug:       "placer-county-museum",
		Excerpt:    "Explore the history of Placer County and Auburn through engaging exhibits and artifacts.",
		Category:   "Museum",
		SubHub:     "history-culture",
		Duration:   "1-2 hours",
		PriceRange: "Free",
		Location:   auburnLocation("101 Maple Street"),
	},
	{
		ID:         "mock-activity-9",
		Title:      "Bernhard Museum",
		Slug:       "bernhard-museum",
		Excerpt:    "Historic museum complex featuring restored 19th-century buildings and exhibits on early Auburn life.",
		Category:   "Museum",
		SubHub:     "history-culture",
		Duration:   "1 hour",
		PriceRange: "Free",
		Location:   auburnLocation("291 Auburn-Folsom Road"),
	},
	{
		ID:         "mock-activity-10",
		Title:      "Old Town Auburn",
		Slug:       "old-town-auburn",
		Excerpt:    "Charming historic downtown featuring unique shops, restaurants, and Gold Rush-era architecture.",
		Category:   "Shopping & Dining",
		SubHub:     "arts-culture",
		Duration:   "2-3 hours",
		PriceRange: "Varies",
		Location:   auburnLocation("Lincoln Way"),
	},
	{
		ID:         "mock-activity-11",
		Title:      "Auburn Clock Tower",
		Slug:       "auburn-clock-tower",
		Excerpt:    "Iconic landmark and symbol of Auburn, located in the heart of Old Town.",
		Category:   "Landmark",
		SubHub:     "history-culture",
		Duration:   "15 minutes",
		PriceRange: "Free",
		Location:   auburnLocation("Lincoln Way & High Street"),
	},
	{
		ID:         "mock-activity-12",
		Title:      "Foresthill Bridge",
		Slug:       "foresthill-bridge",
		Excerpt:    "One of the tallest bridges in California, offering stunning views of the American River canyon.",
		Category:   "Scenic View",
		SubHub:     "outdoor-adventures",
		Duration:   "30 minutes",
		PriceRange: "Free",
		Location:   auburnLocation("Foresthill Road"),
	},
	{
		ID:         "mock-activity-13",
		Title:      "Ashford Park",
		Slug:       "ashford-park",
		Excerpt:    "Beautiful neighborhood park with playgrounds, sports facilities, and open green spaces for families to enjoy.",
		Category:   "Parks",
		SubHub:     "outdoor-adventures",
		Duration:   "1-2 hours",
		PriceRange: "Free",
		Location:   auburnLocation("Ashford Drive"),
	},
}

var accommodations = []types.ContentAccommodation{
	{
		ID:       "mock-accommodation-1",
		Title:    "Historic Auburn Hotel",
		Slug:     "historic-auburn-hotel",
		Excerpt:  "Charming historic hotel in the heart of Old Town Auburn, offering comfortable accommodations and period charm.",
		Category: "Hotel",
		Location: auburnLocation("1340 Lincoln Way"),
	},
	{
		ID:       "mock-accommodation-2",
		Title:    "Gold Country Inn",
		Slug:     "gold-country-inn",
		Excerpt:  "Convenient motel-style accommodations with modern amenities, located near major attractions.",
		Category: "Motel",
		Location: auburnLocation("13450 Lincoln Way"),
	},
}

var dining = []types.ContentDining{
	{
		ID:         "mock-dining-1",
		Title:      "Mt Vernon Winery",
		Slug:       "mt-vernon-winery",
		Excerpt:    "Local winery offering wine tastings, tours, and beautiful views of the Sierra foothills.",
		Cuisine:    "Wine Tasting",
		Category:   "Winery",
		PriceRange: "$$",
		Location:   auburnLocation("10850 Mount Vernon Road"),
	},
	{
		ID:         "mock-dining-2",
		Title:      "Auburn Old Town Farmer's Market",
		Slug:       "auburn-old-town-farmers-market",
		Excerpt:    "Weekly farmers market featuring local produce, artisan foods, and community gatherings.",
		Cuisine:    "Farm Fresh",
		Category:   "Market",
		PriceRange: "$",
		Location:   auburnLocation("Old Town Auburn"),
	},
	{
		ID:         "mock-dining-3",
		Title:      "Out of Order Arcade",
		Slug:       "out-of-order-arcade",
		Excerpt:    "Retro arcade bar featuring classic games, craft beer, and a fun atmosphere for all ages.",
		Cuisine:    "American",
		Category:   "Entertainment",
		PriceRange: "$$",
		Location:   auburnLocation("1205 High Street"),
	},
}

var events = []types.ContentEvent{
	{
		ID:       "mock-event-1",
		Title:    "Auburn Old Town Farmers Market",
		Slug:     "auburn-farmers-market-weekly",
		Excerpt:  "Weekly farmers market featuring fresh local produce, artisan foods, live music, and community events.",
		Category: "Market",
		Date:     eventDate(2, 8, 0),
		Location: auburnLocation("Old Town Auburn"),
	},
	{
		ID:       "mock-event-2",
		Title:    "Gold Rush Days",
		Slug:     "gold-rush-days",
		Excerpt:  "Annual festival celebrating Auburn's Gold Rush heritage with music, food, historical reenactments, and family activities.",
		Category: "Festival",
		Date:     eventDate(21, 10, 0),
		Location: auburnLocation("Old Town Auburn"),
	},
	{
		ID:       "mock-event-3",
		Title:    "Wine Walk in Old Town",
		Slug:     "wine-walk-old-town",
		Excerpt:  "Stroll through historic Old Town Auburn while sampling wines from local wineries and enjoying live music.",
		Category: "Wine & Food",
		Date:     eventDate(5, 17, 0),
		Location: auburnLocation("Old Town Auburn"),
	},
	{
		ID:       "mock-event-4",
		Title:    "Live Music at Bootleggers",
		Slug:     "live-music-bootleggers",
		Excerpt:  "Enjoy live local bands and craft cocktails at Bootleggers Old Town Tavern every Friday night.",
		Category: "Music",
		Date:     eventDate(3, 20, 0),
		Location: auburnLocation("210 Washington St"),
	},
	{
		ID:       "mock-event-5",
		Title:    "Auburn Symphony Concert",
		Slug:     "auburn-symphony-concert",
		Excerpt:  "The Auburn Symphony Orchestra presents a classical evening featuring works by Beethoven and Mozart.",
		Category: "Arts & Culture",
		Date:     eventDate(14, 19, 30),
		Location: auburnLocation("Auburn State Theatre"),
	},
	{
		ID:       "mock-event-6",
		Title:    "Trail Running Workshop",
		Slug:     "trail-running-workshop",
		Excerpt:  "Learn trail running techniques from experienced ultramarathoners on Auburn's famous Western States Trail.",
		Category: "Sports & Fitness",
		Date:     eventDate(10, 7, 0),
		Location: auburnLocation("Cool Staging Area"),
	},
	{
		ID:       "mock-event-7",
		Title:    "Art Walk First Friday",
		Slug:     "art-walk-first-friday",
		Excerpt:  "Explore Auburn's vibrant art scene with gallery openings, artist demonstrations, and live entertainment.",
		Category: "Arts & Culture",
		Date:     eventDate(7, 17, 0),
		Location: auburnLocation("Old Town Auburn"),
	},
	{
		ID:       "mock-event-8",
		Title:    "Farmers Market (Weekly)",
		Slug:     "farmers-market-weekly-2",
		Excerpt:  "Weekly farmers market featuring fresh local produce, artisan foods, live music, and community events.",
		Category: "Market",
		Date:     eventDate(9, 8, 0),
		Location: auburnLocation("Old Town Auburn"),
	},
}

var editorials = []types.ContentEditorial{
	{
		ID:       "mock-editorial-1",
		Title:    "Discovering Auburn's Gold Rush Heritage",
		Slug:     "auburn-gold-rush-heritage",
		Excerpt:  "Explore the rich history of the California Gold Rush and how it shaped Auburn into the community it is today.",
		Category: "History",
	},
}
