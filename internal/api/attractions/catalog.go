package attractions

import "github.com/visitauburn/go-auburn-trips/internal/types"

// catalog is the central registry of Auburn, CA attractions. Entries link to
// internal pages (not external URLs); the first related page is the canonical
// link target. The slice is built once and never mutated.
var catalog = []types.Attraction{
	// Outdoor adventures
	{
		ID:               "lake-clementine-trail",
		Name:             "Lake Clementine Trail",
		Type:             types.AttractionTrail,
		ShortDescription: "Auburn's signature canyon hike with stunning North Fork American River views and swimming holes.",
		LongDescription:  "This 8-mile round-trip trail follows the North Fork American River through dramatic canyon scenery. Popular with hikers, trail runners, and swimmers seeking refreshing river access.",
		LocationArea:     types.AreaAuburnSRA,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/outdoor-adventure-day", "/itineraries/weekend-in-auburn"},
		ImageID:          "outdoor-lake-clementine",
		Highlights:       []string{"River swimming holes", "Canyon views", "Wildflowers in spring"},
		BestFor:          []string{"Hikers", "Trail runners", "Swimmers"},
		Duration:         "3-4 hours",
		Difficulty:       types.DifficultyModerate,
		Featured:         true,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "hidden-falls",
		Name:             "Hidden Falls Regional Park",
		Type:             types.AttractionPark,
		ShortDescription: "Year-round waterfall destination with 30+ miles of trails through oak woodlands and canyons.",
		LocationArea:     types.AreaAuburnSRA,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/family-day"},
		ImageID:          "outdoor-hidden-falls",
		Highlights:       []string{"Waterfalls", "Wildlife viewing", "Multiple trail loops"},
		BestFor:          []string{"Families", "Hikers", "Nature lovers"},
		Duration:         "2-4 hours",
		Difficulty:       types.DifficultyEasy,
		Featured:         true,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "confluence-trails",
		Name:             "Auburn Confluence Trails",
		Type:             types.AttractionTrail,
		ShortDescription: "Where the North and Middle Forks of the American River meet—epic views and swimming.",
		LocationArea:     types.AreaAuburnSRA,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/outdoor-adventure-day"},
		ImageID:          "outdoor-confluence-trails",
		Highlights:       []string{"River confluence", "Swimming", "Dramatic canyon"},
		BestFor:          []string{"Adventurers", "Swimmers", "Photographers"},
		Duration:         "2-5 hours",
		Difficulty:       types.DifficultyModerate,
		Featured:         true,
		PetFriendly:      true,
	},
	{
		ID:               "foresthill-bridge",
		Name:             "Foresthill Bridge",
		Type:             types.AttractionViewpoint,
		ShortDescription: "California's highest bridge at 730 feet—stunning canyon overlook and photo opportunity.",
		LocationArea:     types.AreaForesthill,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/weekend-in-auburn"},
		ImageID:          "outdoor-foresthill-bridge",
		Highlights:       []string{"Panoramic views", "Photo spot", "Engineering marvel"},
		BestFor:          []string{"Photographers", "Sightseers", "Road trippers"},
		Duration:         "30 minutes",
		Difficulty:       types.DifficultyEasy,
		Featured:         true,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "quarry-ponds",
		Name:             "Quarry Road Ponds Trail",
		Type:             types.AttractionTrail,
		ShortDescription: "Easy 3-mile loop perfect for families, birdwatchers, and casual walkers.",
		LocationArea:     types.AreaAuburnSRA,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/family-day"},
		ImageID:          "outdoor-quarry-ponds",
		Highlights:       []string{"Bird watching", "Easy terrain", "Scenic ponds"},
		BestFor:          []string{"Families", "Beginners", "Birdwatchers"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "training-hill",
		Name:             "Training Hill",
		Type:             types.AttractionTrail,
		ShortDescription: "Legendary 1-mile climb used by Western States ultrarunners—Auburn's ultimate fitness challenge.",
		LocationArea:     types.AreaAuburnSRA,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/outdoor-adventure-day"},
		ImageID:          "outdoor-training-hill",
		Highlights:       []string{"700ft elevation gain", "Runner's benchmark", "Canyon views"},
		BestFor:          []string{"Trail runners", "Fitness enthusiasts", "Ultrarunners"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyChallenging,
		PetFriendly:      true,
	},
	{
		ID:               "american-river-rafting",
		Name:             "American River Rafting",
		Type:             types.AttractionWaterActivity,
		ShortDescription: "World-class whitewater from mellow floats to Class IV rapids on the American River.",
		LocationArea:     types.AreaAuburnSRA,
		RelatedPages:     []string{"/things-to-do/outdoor-adventures", "/itineraries/outdoor-adventure-day"},
		ImageID:          "outdoor-river-rafting",
		Highlights:       []string{"Class II-IV rapids", "Guided trips", "Scenic canyon"},
		BestFor:          []string{"Thrill seekers", "Families", "Groups"},
		Duration:         "Half to full day",
		Difficulty:       types.DifficultyModerate,
		Seasonal:         true,
		FamilyFriendly:   true,
	},

	// History & culture
	{
		ID:               "gold-country-museum",
		Name:             "Gold Country Museum",
		Type:             types.AttractionMuseum,
		ShortDescription: "Interactive Gold Rush exhibits, mine replica walkthrough, and hands-on gold panning.",
		LocationArea:     types.AreaPlacerCounty,
		RelatedPages:     []string{"/things-to-do/history-culture/gold-country-museum", "/itineraries/family-day", "/itineraries/history-and-wine"},
		ImageID:          "historic-gold-country-museum",
		Highlights:       []string{"Gold panning", "Mine replica", "Interactive exhibits"},
		BestFor:          []string{"Families", "History buffs", "Kids"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		Featured:         true,
		FamilyFriendly:   true,
	},
	{
		ID:               "old-town-auburn",
		Name:             "Old Town Auburn Historic District",
		Type:             types.AttractionHistoricSite,
		ShortDescription: "Walk through California's oldest continually operating post office town with 1850s buildings.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/things-to-do/history-culture/old-town-auburn", "/itineraries/weekend-in-auburn", "/itineraries/romantic-getaway"},
		ImageID:          "historic-old-town-street",
		Highlights:       []string{"Historic architecture", "Antique shops", "Restaurants"},
		BestFor:          []string{"History lovers", "Photographers", "Shoppers"},
		Duration:         "2-3 hours",
		Difficulty:       types.DifficultyEasy,
		Featured:         true,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "placer-county-courthouse",
		Name:             "Placer County Courthouse",
		Type:             types.AttractionHistoricSite,
		ShortDescription: "Stunning 1898 Classical Revival courthouse—one of California's most photographed buildings.",
		LocationArea:     types.AreaDowntown,
		RelatedPages:     []string{"/things-to-do/history-culture/placer-county-courthouse", "/itineraries/history-and-wine"},
		ImageID:          "historic-courthouse",
		Highlights:       []string{"Classical architecture", "Photo spot", "Historic landmark"},
		BestFor:          []string{"Architecture fans", "Photographers", "History buffs"},
		Duration:         "30 minutes",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "bernhard-museum",
		Name:             "Bernhard Museum Complex",
		Type:             types.AttractionMuseum,
		ShortDescription: "Victorian-era winery and residence showcasing 1800s California family life.",
		LocationArea:     types.AreaDowntown,
		RelatedPages:     []string{"/things-to-do/history-culture/bernhard-museum", "/itineraries/history-and-wine"},
		ImageID:          "historic-bernhard-museum",
		Highlights:       []string{"Victorian gardens", "Wine history", "Period furnishings"},
		BestFor:          []string{"History enthusiasts", "Wine lovers", "Photographers"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
	},
	{
		ID:               "firehouse-tower",
		Name:             "Auburn Firehouse Tower",
		Type:             types.AttractionHistoricSite,
		ShortDescription: "Auburn's iconic 1891 landmark—the most photographed building in Gold Country.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/things-to-do/history-culture/old-town-firehouse", "/itineraries/weekend-in-auburn"},
		ImageID:          "historic-old-town-clocktower",
		Highlights:       []string{"Iconic landmark", "Photo spot", "Historic firefighting"},
		BestFor:          []string{"Photographers", "History lovers", "First-time visitors"},
		Duration:         "15 minutes",
		Difficulty:       types.DifficultyEasy,
		Featured:         true,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "chinese-joss-house",
		Name:             "Chinese Joss House",
		Type:             types.AttractionHistoricSite,
		ShortDescription: "Rare surviving temple honoring Auburn's Chinese mining community heritage.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/things-to-do/history-culture/chinese-joss-house"},
		ImageID:          "historic-chinese-joss-house",
		Highlights:       []string{"Chinese heritage", "Religious history", "Mining community"},
		BestFor:          []string{"History enthusiasts", "Cultural explorers"},
		Duration:         "30 minutes",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
	},

	// Food & drink
	{
		ID:               "auburn-alehouse",
		Name:             "Auburn Alehouse",
		Type:             types.AttractionBrewery,
		ShortDescription: "Award-winning craft brewery in a historic Gold Rush building with elevated pub fare.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/dining", "/itineraries/weekend-in-auburn"},
		ImageID:          "dining-auburn-alehouse",
		Highlights:       []string{"Craft beer", "Historic building", "Local favorite"},
		BestFor:          []string{"Beer lovers", "Foodies", "Groups"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
	},
	{
		ID:               "bootleggers-old-town",
		Name:             "Bootleggers Old Town Tavern",
		Type:             types.AttractionRestaurant,
		ShortDescription: "Speakeasy-inspired gastropub with craft cocktails and elevated American cuisine.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/dining", "/itineraries/romantic-getaway"},
		ImageID:          "dining-bootleggers",
		Highlights:       []string{"Craft cocktails", "Historic atmosphere", "Upscale dining"},
		BestFor:          []string{"Date nights", "Cocktail enthusiasts", "Foodies"},
		Duration:         "1.5-2 hours",
		Difficulty:       types.DifficultyEasy,
	},
	{
		ID:               "auburn-farmers-market",
		Name:             "Auburn Farmers Market",
		Type:             types.AttractionMarket,
		ShortDescription: "Saturday morning tradition with local produce, artisan goods, and live music.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/dining", "/events", "/itineraries/family-day"},
		ImageID:          "dining-farmers-market",
		Highlights:       []string{"Local produce", "Artisan vendors", "Community vibe"},
		BestFor:          []string{"Foodies", "Families", "Locals"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		Seasonal:         true,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "sierra-foothills-wineries",
		Name:             "Sierra Foothills Wine Trail",
		Type:             types.AttractionWinery,
		ShortDescription: "California's original wine region—boutique tasting rooms with Old Vine Zinfandel.",
		LocationArea:     types.AreaFoothills,
		RelatedPages:     []string{"/dining", "/itineraries/history-and-wine", "/itineraries/romantic-getaway"},
		ImageID:          "wine-foothill-vineyard",
		Highlights:       []string{"Old Vine Zinfandel", "Barbera", "Vineyard views"},
		BestFor:          []string{"Wine lovers", "Couples", "Day trippers"},
		Duration:         "3-5 hours",
		Difficulty:       types.DifficultyEasy,
		Featured:         true,
	},
	{
		ID:               "knee-deep-brewing",
		Name:             "Knee Deep Brewing",
		Type:             types.AttractionBrewery,
		ShortDescription: "Beloved local brewery known for IPAs and creative seasonal releases.",
		LocationArea:     types.AreaNorthAuburn,
		RelatedPages:     []string{"/dining", "/itineraries/weekend-in-auburn"},
		ImageID:          "dining-knee-deep",
		Highlights:       []string{"IPA specialists", "Taproom", "Local favorite"},
		BestFor:          []string{"Beer enthusiasts", "Groups", "Locals"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
		PetFriendly:      true,
	},
	{
		ID:               "latitudes-restaurant",
		Name:             "Latitudes Restaurant",
		Type:             types.AttractionRestaurant,
		ShortDescription: "Fine dining with farm-to-table California cuisine and Sierra Foothills wine pairings.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/dining", "/itineraries/romantic-getaway", "/itineraries/history-and-wine"},
		ImageID:          "dining-farm-table",
		Highlights:       []string{"Farm-to-table", "Wine pairings", "Special occasions"},
		BestFor:          []string{"Couples", "Foodies", "Celebrations"},
		Duration:         "2-3 hours",
		Difficulty:       types.DifficultyEasy,
	},

	// Arts & culture
	{
		ID:               "old-town-galleries",
		Name:             "Old Town Art Galleries",
		Type:             types.AttractionCultural,
		ShortDescription: "Collection of artist-owned galleries featuring local and regional fine art.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/things-to-do/arts-culture", "/itineraries/weekend-in-auburn"},
		ImageID:          "arts-old-town-gallery",
		Highlights:       []string{"Local artists", "Fine art", "Monthly art walks"},
		BestFor:          []string{"Art lovers", "Collectors", "Browsers"},
		Duration:         "1-2 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
	},
	{
		ID:               "auburn-state-theatre",
		Name:             "Auburn State Theatre",
		Type:             types.AttractionCultural,
		ShortDescription: "Historic 1930 art deco theatre hosting live performances, concerts, and film screenings.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/things-to-do/arts-culture", "/events"},
		ImageID:          "arts-state-theatre",
		Highlights:       []string{"Live performances", "Art deco architecture", "Community events"},
		BestFor:          []string{"Music lovers", "Theatre fans", "Date nights"},
		Duration:         "2-3 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
	},
	{
		ID:               "placer-county-fair",
		Name:             "Placer County Fair",
		Type:             types.AttractionCultural,
		ShortDescription: "Annual summer celebration with rides, livestock, local exhibits, and live entertainment.",
		LocationArea:     types.AreaPlacerCounty,
		RelatedPages:     []string{"/events", "/itineraries/family-day"},
		ImageID:          "events-county-fair",
		Highlights:       []string{"Carnival rides", "Livestock shows", "Live music"},
		BestFor:          []string{"Families", "Kids", "Community"},
		Duration:         "4-6 hours",
		Difficulty:       types.DifficultyEasy,
		Seasonal:         true,
		FamilyFriendly:   true,
	},

	// Shopping & entertainment
	{
		ID:               "old-town-antiques",
		Name:             "Old Town Antique Shops",
		Type:             types.AttractionShopping,
		ShortDescription: "Treasure hunting through multi-dealer antique stores in historic Gold Rush buildings.",
		LocationArea:     types.AreaOldTown,
		RelatedPages:     []string{"/things-to-do/arts-culture", "/itineraries/weekend-in-auburn"},
		ImageID:          "shopping-antiques",
		Highlights:       []string{"Vintage finds", "Historic buildings", "Local vendors"},
		BestFor:          []string{"Collectors", "Decorators", "Browsers"},
		Duration:         "1-3 hours",
		Difficulty:       types.DifficultyEasy,
		FamilyFriendly:   true,
	},
}
