package slug

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugChars = regexp.MustCompile(`^[a-z0-9_]*$`)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"apostrophes ampersand accent", "Tom's & Jerry's Café", "toms_and_jerrys_cafe"},
		{"typographic apostrophe", "Bob’s Bistro", "bobs_bistro"},
		{"plain", "Golden Yoga Studio Club", "golden_yoga_studio_club"},
		{"runs collapse", "Urban -- HVAC // Pros", "urban_hvac_pros"},
		{"trim", "  !Royal Spa!  ", "royal_spa"},
		{"ampersand only", "&", "and"},
		{"empty", "", ""},
		{"degenerate", "!!! ???", ""},
		{"non-latin dropped", "東京 Cafe", "cafe"},
		{"digits kept", "Studio 54", "studio_54"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Make(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, slugChars, got)
		})
	}
}

func TestMake_AmpersandRenderedAsAnd(t *testing.T) {
	got := Make("Tom's & Jerry's Café")
	assert.Contains(t, got, "_and_")
	assert.NotRegexp(t, `^_|_$`, got)
}

func TestSKUSuffix(t *testing.T) {
	assert.Equal(t, "food_1234", SKUSuffix("FOOD-1234"))
	assert.Equal(t, "real_0001", SKUSuffix("REAL-0001"))
}

func TestRegistry_DefaultSlug(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, "the_cafe_house", r.Resolve("The Cafe House", "FOOD-1000"))
	owner, ok := r.Owner("the_cafe_house")
	assert.True(t, ok)
	assert.Equal(t, "FOOD-1000", owner)
}

func TestRegistry_SameOwnerIsStable(t *testing.T) {
	r := NewRegistry(nil)
	first := r.Resolve("The Cafe House", "FOOD-1000")
	again := r.Resolve("The Cafe House", "FOOD-1000")
	assert.Equal(t, first, again)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CollisionWithDifferentSKU(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, "the_cafe_house", r.Resolve("The Cafe House", "FOOD-1000"))
	assert.Equal(t, "the_cafe_house_food_2000", r.Resolve("The Cafe House", "FOOD-2000"))
	// Replaying both keeps each on its own slug.
	assert.Equal(t, "the_cafe_house", r.Resolve("The Cafe House", "FOOD-1000"))
	assert.Equal(t, "the_cafe_house_food_2000", r.Resolve("The Cafe House", "FOOD-2000"))
}

func TestRegistry_EmptySlugFallsBack(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, "template_tech_1234", r.Resolve("!!!", "TECH-1234"))
}

func TestRegistry_ReservedSlug(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, "shared", r.Resolve("Shared", "SHOP-1111"))

	r = NewRegistry([]string{"admin"})
	assert.Equal(t, "admin_shop_1111", r.Resolve("Admin", "SHOP-1111"))
}

func TestRegistry_NameSpellingAnotherSlug(t *testing.T) {
	r := NewRegistry(nil)
	assert.Equal(t, "a", r.Resolve("A", "FOOD-1000"))
	assert.Equal(t, "a_food_2000", r.Resolve("A", "FOOD-2000"))
	// A third template literally named "A Food 2000".
	got := r.Resolve("A Food 2000", "TECH-3000")
	assert.NotEqual(t, "a_food_2000", got)
	owner, _ := r.Owner(got)
	assert.Equal(t, "TECH-3000", owner)
}
