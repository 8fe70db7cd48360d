package equiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	const treesPerTonne = 16.5

	t.Run("typical footprint", func(t *testing.T) {
		got := Calculate(5.0, treesPerTonne)

		require.False(t, got.IsEmpty)
		assert.InDelta(t, 5000.0, got.InputKg, 1e-9)
		assert.InDelta(t, 82.5, got.Trees.Value, 1e-9)           // 5 * 16.5
		assert.InDelta(t, 26041.67, got.MilesDriven.Value, 0.01) // 5000 / 0.192
		assert.InDelta(t, 608272.5, got.SmartphonesCharged.Value, 1.0)
		assert.Contains(t, got.DisplayText, "miles")
		assert.Contains(t, got.DisplayText, "tree seedlings")
	})

	t.Run("below threshold is empty", func(t *testing.T) {
		got := Calculate(0.0005, treesPerTonne) // 0.5 kg
		assert.True(t, got.IsEmpty)
		assert.InDelta(t, 0.5, got.InputKg, 1e-9)
	})

	t.Run("zero is empty", func(t *testing.T) {
		assert.True(t, Calculate(0, treesPerTonne).IsEmpty)
	})

	t.Run("negative net footprint is empty", func(t *testing.T) {
		assert.True(t, Calculate(-0.026, treesPerTonne).IsEmpty)
	})

	t.Run("formatted values use separators", func(t *testing.T) {
		got := Calculate(5.0, treesPerTonne)
		assert.Equal(t, "26,042", got.MilesDriven.FormattedValue)
		assert.Equal(t, "608,273", got.SmartphonesCharged.FormattedValue)
	})
}

func TestFormatLarge(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234, "1,234"},
		{1_500_000, "~1.5 million"},
		{2_300_000_000, "~2.3 billion"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLarge(tt.in))
	}
}
