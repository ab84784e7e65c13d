package catalogue

import "strings"

// CategoryID identifies one of the enumerated template categories.
type CategoryID string

// Enumerated categories, in display order.
const (
	Food       CategoryID = "food"
	RealEstate CategoryID = "realestate"
	Fitness    CategoryID = "fitness"
	Beauty     CategoryID = "beauty"
	Services   CategoryID = "services"
	Education  CategoryID = "education"
	Portfolio  CategoryID = "portfolio"
	Events     CategoryID = "events"
	Shop       CategoryID = "shop"
	Tech       CategoryID = "tech"
)

// AllCategories is the "no category filter" value used by the storefront.
const AllCategories = "all"

// Category pairs an ID with its storefront label.
type Category struct {
	ID   CategoryID `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
}

// Categories lists every category in display order. Grouping and the
// generator's uniform category pick both follow this order.
var Categories = []Category{
	{ID: Food, Name: "Food & Drink"},
	{ID: RealEstate, Name: "Real Estate"},
	{ID: Fitness, Name: "Fitness"},
	{ID: Beauty, Name: "Beauty & Wellness"},
	{ID: Services, Name: "Local Services"},
	{ID: Education, Name: "Education"},
	{ID: Portfolio, Name: "Portfolio"},
	{ID: Events, Name: "Events"},
	{ID: Shop, Name: "Shop"},
	{ID: Tech, Name: "Tech & SaaS"},
}

// Valid reports whether id is one of the enumerated categories.
func (id CategoryID) Valid() bool {
	return id.Index() >= 0
}

// Index returns the display position of id, or -1 if it is not enumerated.
func (id CategoryID) Index() int {
	for i, c := range Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Prefix returns the 4-letter SKU prefix for the category ("food" -> "FOOD",
// "realestate" -> "REAL").
func (id CategoryID) Prefix() string {
	s := string(id)
	if len(s) > 4 {
		s = s[:4]
	}
	return strings.ToUpper(s)
}

// Name returns the display label, falling back to the raw ID.
func (id CategoryID) Name() string {
	if i := id.Index(); i >= 0 {
		return Categories[i].Name
	}
	return string(id)
}

// ParseCategory converts user input into a CategoryID.
// Returns false for anything outside the enumerated set.
func ParseCategory(s string) (CategoryID, bool) {
	id := CategoryID(strings.ToLower(strings.TrimSpace(s)))
	return id, id.Valid()
}
