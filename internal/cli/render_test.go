package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"footprint/internal/equiv"
	"footprint/internal/footprint"
	"footprint/internal/history"
	"footprint/internal/store"
)

func TestSparkline(t *testing.T) {
	assert.Empty(t, sparkline(nil))

	t.Run("rises with values", func(t *testing.T) {
		got := sparkline([]float64{1, 2, 3})
		assert.Equal(t, "▁▄█", got)
	})

	t.Run("flat series renders mid blocks", func(t *testing.T) {
		got := sparkline([]float64{5, 5, 5})
		assert.Equal(t, strings.Repeat("▅", 3), got)
	})

	t.Run("long series keeps the tail", func(t *testing.T) {
		values := make([]float64, sparklineMaxWidth+10)
		for i := range values {
			values[i] = float64(i)
		}
		got := sparkline(values)
		assert.Equal(t, sparklineMaxWidth, len([]rune(got)))
	})
}

func TestRenderComparison(t *testing.T) {
	prev := store.Entry{ID: "p", CO2eTonnes: 4, Timestamp: time.Now()}

	t.Run("no history", func(t *testing.T) {
		got := renderComparison(history.Comparison{})
		assert.Contains(t, got, "No previous calculation")
	})

	t.Run("increase", func(t *testing.T) {
		cmp := history.Compare(footprint.Result{TotalTonnes: 5}, &prev)
		got := renderComparison(cmp)
		assert.Contains(t, got, "Up 1.00 t")
		assert.Contains(t, got, "25.0%")
	})

	t.Run("decrease", func(t *testing.T) {
		cmp := history.Compare(footprint.Result{TotalTonnes: 3}, &prev)
		got := renderComparison(cmp)
		assert.Contains(t, got, "Down 1.00 t")
	})

	t.Run("unchanged", func(t *testing.T) {
		cmp := history.Compare(footprint.Result{TotalTonnes: 4.005}, &prev)
		got := renderComparison(cmp)
		assert.Contains(t, got, "No significant change")
	})
}

func TestRenderBreakdown(t *testing.T) {
	breakdown := map[string]float64{
		footprint.CategoryTransport: 750,
		footprint.CategoryEnergy:    250,
		footprint.CategoryFood:      0,
		footprint.CategoryWaste:     -26,
		footprint.CategoryShopping:  0,
	}

	got := renderBreakdown(breakdown)

	assert.Contains(t, got, "transport")
	assert.Contains(t, got, "75.0%")
	assert.Contains(t, got, "25.0%")
	// Negative waste shows its raw value but contributes no share.
	assert.Contains(t, got, "-26.0 kg")
	assert.Contains(t, got, "( 0.0%)")
}

func TestRenderSummary(t *testing.T) {
	result := footprint.Result{
		TotalTonnes: 0.9114,
		BreakdownKg: map[string]float64{
			footprint.CategoryTransport: 492,
			footprint.CategoryEnergy:    419.4,
			footprint.CategoryFood:      0,
			footprint.CategoryWaste:     0,
			footprint.CategoryShopping:  0,
		},
		Category:  footprint.RecordCategory,
		Timestamp: time.Now(),
	}
	eq := equiv.Calculate(result.TotalTonnes, 16.5)

	got := renderSummary(result, history.Comparison{}, eq)

	assert.Contains(t, got, "0.91 tonnes CO2e")
	assert.Contains(t, got, "Low footprint")
	assert.Contains(t, got, "No previous calculation")
	assert.Contains(t, got, "tree seedlings")
}

func TestRenderHistoryTable(t *testing.T) {
	entries := []store.Entry{
		{ID: "01A", CO2eTonnes: 4.2, Timestamp: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Notes: "jan"},
		{ID: "01B", CO2eTonnes: 3.8, Timestamp: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC), Notes: "feb"},
	}

	got := renderHistoryTable(entries)

	assert.Contains(t, got, "Trend:")
	assert.Contains(t, got, "2026-02-05")
	// Newest first.
	assert.Less(t, strings.Index(got, "01B"), strings.Index(got, "01A"))
}
