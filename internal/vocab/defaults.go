package vocab

import "github.com/roach88/catalogue/internal/catalogue"

// Default returns a fresh copy of the built-in vocabulary.
func Default() *Tables {
	return &Tables{
		BusinessTypes: map[catalogue.CategoryID][]BusinessType{
			catalogue.Food: {
				{Name: "Restaurant", Keywords: []string{"menu", "dining", "cuisine"}},
				{Name: "Cafe", Keywords: []string{"coffee", "pastry", "breakfast"}},
				{Name: "Bakery", Keywords: []string{"bread", "cakes", "pastries"}},
				{Name: "Bar", Keywords: []string{"drinks", "cocktails", "nightlife"}},
				{Name: "Food Truck", Keywords: []string{"street food", "mobile", "casual"}},
			},
			catalogue.RealEstate: {
				{Name: "Real Estate Agency", Keywords: []string{"property", "homes", "listings"}},
				{Name: "Property Management", Keywords: []string{"rentals", "leasing", "management"}},
				{Name: "Luxury Homes", Keywords: []string{"luxury", "estate", "premium"}},
			},
			catalogue.Fitness: {
				{Name: "Gym", Keywords: []string{"workout", "training", "fitness"}},
				{Name: "Yoga Studio", Keywords: []string{"yoga", "meditation", "wellness"}},
				{Name: "CrossFit", Keywords: []string{"crossfit", "strength", "conditioning"}},
				{Name: "Pilates", Keywords: []string{"pilates", "core", "flexibility"}},
			},
			catalogue.Beauty: {
				{Name: "Hair Salon", Keywords: []string{"hair", "styling", "cuts"}},
				{Name: "Spa", Keywords: []string{"massage", "relaxation", "treatments"}},
				{Name: "Nail Salon", Keywords: []string{"nails", "manicure", "pedicure"}},
				{Name: "Beauty Salon", Keywords: []string{"beauty", "makeup", "skincare"}},
			},
			catalogue.Services: {
				{Name: "Plumbing", Keywords: []string{"plumber", "pipes", "repairs"}},
				{Name: "Cleaning", Keywords: []string{"cleaning", "housekeeping", "janitorial"}},
				{Name: "Electrician", Keywords: []string{"electrical", "wiring", "installation"}},
				{Name: "HVAC", Keywords: []string{"heating", "cooling", "air conditioning"}},
			},
			catalogue.Education: {
				{Name: "Tutoring", Keywords: []string{"tutoring", "lessons", "education"}},
				{Name: "Music School", Keywords: []string{"music", "lessons", "instruments"}},
				{Name: "Language School", Keywords: []string{"language", "learning", "courses"}},
				{Name: "Coding Bootcamp", Keywords: []string{"coding", "programming", "tech"}},
			},
			catalogue.Portfolio: {
				{Name: "Photographer", Keywords: []string{"photography", "photos", "portfolio"}},
				{Name: "Designer", Keywords: []string{"design", "branding", "creative"}},
				{Name: "Artist", Keywords: []string{"art", "paintings", "gallery"}},
				{Name: "Writer", Keywords: []string{"writing", "content", "editorial"}},
			},
			catalogue.Events: {
				{Name: "Wedding Planner", Keywords: []string{"wedding", "events", "planning"}},
				{Name: "Event Venue", Keywords: []string{"venue", "events", "space"}},
				{Name: "Catering", Keywords: []string{"catering", "food", "events"}},
			},
			catalogue.Shop: {
				{Name: "Clothing Store", Keywords: []string{"fashion", "clothing", "apparel"}},
				{Name: "Gift Shop", Keywords: []string{"gifts", "products", "boutique"}},
				{Name: "Bookstore", Keywords: []string{"books", "reading", "literature"}},
			},
			catalogue.Tech: {
				{Name: "SaaS Startup", Keywords: []string{"software", "SaaS", "platform"}},
				{Name: "App Development", Keywords: []string{"app", "mobile", "development"}},
				{Name: "Web Agency", Keywords: []string{"web", "digital", "agency"}},
			},
		},

		Styles: []string{"Modern", "Minimal", "Bold", "Elegant", "Playful", "Corporate", "Luxury", "Editorial", "Neon", "Warm"},

		Palettes: []catalogue.Accent{
			{A: "#f97316", B: "#f43f5e", C: "#facc15"},
			{A: "#22c55e", B: "#06b6d4", C: "#a855f7"},
			{A: "#0ea5e9", B: "#1f2937", C: "#f59e0b"},
			{A: "#a855f7", B: "#06b6d4", C: "#111827"},
			{A: "#06b6d4", B: "#a78bfa", C: "#f1f5f9"},
			{A: "#111827", B: "#a855f7", C: "#06b6d4"},
			{A: "#f43f5e", B: "#facc15", C: "#22c55e"},
			{A: "#0ea5e9", B: "#f97316", C: "#111827"},
		},

		Prices: []int{49, 59, 69, 79, 89, 99, 109, 119, 129, 149},

		NamePrefixes: []string{
			"The", "Elite", "Premium", "Royal", "Modern", "Urban", "Coastal", "Sunset", "Golden", "Silver",
			"Blue", "Green", "Bright", "Fresh", "Pure", "Prime", "Zen", "Luxe", "Classic", "Artisan",
		},
		NameSuffixes: map[catalogue.CategoryID][]string{
			catalogue.Food:       {"Kitchen", "Bistro", "House", "Table", "Bar", "Grill", "Cafe", "Eatery"},
			catalogue.RealEstate: {"Realty", "Properties", "Estates", "Homes", "Group", "Partners"},
			catalogue.Fitness:    {"Fitness", "Gym", "Studio", "Club", "Center", "Zone", "Lab"},
			catalogue.Beauty:     {"Salon", "Spa", "Studio", "Lounge", "Bar", "Boutique"},
			catalogue.Services:   {"Services", "Solutions", "Pros", "Experts", "Co", "Works"},
			catalogue.Education:  {"Academy", "School", "Institute", "Learning", "Education", "Center"},
			catalogue.Portfolio:  {"Studio", "Creative", "Design", "Agency", "Works", "Co"},
			catalogue.Events:     {"Events", "Occasions", "Celebrations", "Planning", "Co"},
			catalogue.Shop:       {"Shop", "Store", "Boutique", "Market", "Emporium", "Collective"},
			catalogue.Tech:       {"Labs", "Tech", "Digital", "Solutions", "Systems", "Platform"},
		},

		Descriptions: map[catalogue.CategoryID][]string{
			catalogue.Food: {
				"Experience authentic {keyword} with fresh, locally-sourced ingredients and exceptional service.",
				"Discover the perfect blend of traditional {keyword} and modern culinary innovation.",
				"Your destination for delicious {keyword}, crafted with passion and served with care.",
			},
			catalogue.RealEstate: {
				"Find your dream property with our expert team and comprehensive listings.",
				"Trusted real estate professionals helping you navigate the property market with confidence.",
				"Your partner in finding the perfect home or investment property.",
			},
			catalogue.Fitness: {
				"Transform your fitness journey with expert trainers and state-of-the-art facilities.",
				"Achieve your wellness goals in a supportive, motivating environment.",
				"Where dedication meets results - your fitness transformation starts here.",
			},
			catalogue.Beauty: {
				"Indulge in premium beauty treatments and exceptional service.",
				"Expert stylists and therapists dedicated to enhancing your natural beauty.",
				"Luxury beauty experiences tailored to your unique style and needs.",
			},
			catalogue.Services: {
				"Professional, reliable service you can trust for all your needs.",
				"Expert solutions delivered with quality workmanship and customer care.",
				"Your local experts providing top-quality service and guaranteed satisfaction.",
			},
			catalogue.Education: {
				"Empowering students with knowledge, skills, and confidence for success.",
				"Expert instruction in a supportive learning environment.",
				"Quality education that inspires growth and achievement.",
			},
			catalogue.Portfolio: {
				"Creative excellence delivered through innovative design and strategic thinking.",
				"Bringing visions to life with artistic expertise and professional execution.",
				"Award-winning creative work that makes an impact.",
			},
			catalogue.Events: {
				"Creating unforgettable moments with meticulous planning and flawless execution.",
				"Your special occasions deserve extraordinary attention to detail.",
				"Making dreams come true, one celebration at a time.",
			},
			catalogue.Shop: {
				"Curated selection of quality products for every style and occasion.",
				"Discover unique finds and exceptional value at our boutique.",
				"Your destination for quality products and personalized shopping experience.",
			},
			catalogue.Tech: {
				"Innovative technology solutions that drive business growth and efficiency.",
				"Cutting-edge software built to solve real-world challenges.",
				"Transform your business with powerful, intuitive technology.",
			},
		},

		Pitches: []string{
			"Perfect for {keyword} businesses that want a {style} online presence. Clean layout with strong CTAs to convert visitors into customers.",
			"Built for {types} seeking a {style} aesthetic. Includes all essential sections to showcase services and capture leads effectively.",
			"Ideal {style} template for {keyword} professionals. Features optimized sections for conversions and customer engagement.",
		},

		CommonPages: []string{"Home", "About", "Contact"},
		Pages: map[catalogue.CategoryID][]string{
			catalogue.Food:       {"Menu", "Reservations", "Gallery", "Reviews"},
			catalogue.RealEstate: {"Listings", "Agents", "Services", "Testimonials"},
			catalogue.Fitness:    {"Programs", "Schedule", "Trainers", "Pricing"},
			catalogue.Beauty:     {"Services", "Pricing", "Gallery", "Booking"},
			catalogue.Services:   {"Services", "Pricing", "Quote", "Reviews"},
			catalogue.Education:  {"Courses", "Programs", "Enrollment", "FAQ"},
			catalogue.Portfolio:  {"Portfolio", "Work", "Case Studies", "Services"},
			catalogue.Events:     {"Services", "Gallery", "Packages", "RSVP"},
			catalogue.Shop:       {"Shop", "Products", "Categories", "Cart"},
			catalogue.Tech:       {"Features", "Pricing", "Demo", "Docs"},
		},
		PagesPicked: 3,

		Includes: []string{
			"Responsive layout (mobile-first)",
			"Modern sections & spacing",
			"SEO-friendly structure",
			"Fast load (no backend)",
			"Easy color + font swap",
		},
		Extras: []string{
			"Contact form integration",
			"Social media links",
			"Google Maps embed",
			"Image gallery system",
			"Testimonial sections",
			"Call-to-action blocks",
			"FAQ accordion",
			"Newsletter signup",
		},
		ExtrasPicked: 2,

		ShortLimit: 80,
	}
}
