package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"footprint/internal/footprint"
)

func TestForCategory(t *testing.T) {
	for _, category := range footprint.Categories {
		assert.NotEmpty(t, ForCategory(category), "category %s should have tips", category)
	}

	assert.NotEmpty(t, ForCategory("ENERGY"), "matching is case-insensitive")
	assert.Nil(t, ForCategory("spaceflight"))
}

func TestRanked(t *testing.T) {
	breakdown := map[string]float64{
		footprint.CategoryTransport: 500,
		footprint.CategoryEnergy:    900,
		footprint.CategoryFood:      200,
		footprint.CategoryWaste:     -26,
		footprint.CategoryShopping:  200,
	}

	got := Ranked(breakdown)

	assert.Equal(t, footprint.CategoryEnergy, got[0])
	assert.Equal(t, footprint.CategoryTransport, got[1])
	assert.Equal(t, footprint.CategoryWaste, got[len(got)-1])
	// Equal contributions keep display order (food before shopping).
	assert.Equal(t, []string{footprint.CategoryFood, footprint.CategoryShopping}, got[2:4])
}

func TestRanked_PartialBreakdown(t *testing.T) {
	got := Ranked(map[string]float64{footprint.CategoryFood: 10})
	assert.Equal(t, []string{footprint.CategoryFood}, got)
}
