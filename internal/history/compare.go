// Package history retrieves and ranks prior carbon calculations and
// compares a fresh estimate against the most recent one. It only ever
// borrows read access to the log; entries are never mutated here.
package history

import (
	"footprint/internal/footprint"
	"footprint/internal/store"
)

// SignificantChangeThresholdTonnes is the presentation contract for "no
// significant change": deltas with absolute value at or below this are
// rendered as unchanged rather than as an increase or decrease.
const SignificantChangeThresholdTonnes = 0.01

// Comparison relates a current estimate to the most recent prior entry.
//
// Previous is nil when no prior data exists. That shape is the contract:
// "no prior data" and "identical to prior" both carry zero numbers, and
// callers must distinguish them by Previous, not by the values.
type Comparison struct {
	Previous      *store.Entry `json:"previous"`
	DeltaTonnes   float64      `json:"delta_tonnes"`
	PercentChange float64      `json:"percent_change"`
}

// Direction classifies a comparison for presentation.
type Direction int

const (
	// DirectionNoHistory means there was no prior entry to compare against.
	DirectionNoHistory Direction = iota

	// DirectionUnchanged means the delta is within the significance threshold.
	DirectionUnchanged

	// DirectionIncrease means the footprint grew by more than the threshold.
	DirectionIncrease

	// DirectionDecrease means the footprint shrank by more than the threshold.
	DirectionDecrease
)

// Direction classifies the comparison against the significance threshold.
func (c Comparison) Direction() Direction {
	switch {
	case c.Previous == nil:
		return DirectionNoHistory
	case c.DeltaTonnes > SignificantChangeThresholdTonnes:
		return DirectionIncrease
	case c.DeltaTonnes < -SignificantChangeThresholdTonnes:
		return DirectionDecrease
	default:
		return DirectionUnchanged
	}
}

// MostRecent returns the entry with the maximum timestamp, or nil for an
// empty sequence. Ties keep the first-seen entry, matching the
// order-preserving behavior of the underlying log.
func MostRecent(entries []store.Entry) *store.Entry {
	if len(entries) == 0 {
		return nil
	}

	latest := &entries[0]
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(latest.Timestamp) {
			latest = &entries[i]
		}
	}
	return latest
}

// Compare computes the delta between a current estimate and a prior entry.
//
// A nil previous yields the defined null comparison: nil Previous and zero
// delta/percent. Percent change is relative to the previous total and is 0
// when the previous total is not positive (a zero baseline has no meaningful
// percentage). Compare never fails; absence of data is in the result shape.
func Compare(current footprint.Result, previous *store.Entry) Comparison {
	if previous == nil {
		return Comparison{Previous: nil, DeltaTonnes: 0, PercentChange: 0}
	}

	delta := current.TotalTonnes - previous.CO2eTonnes

	percent := 0.0
	if previous.CO2eTonnes > 0 {
		percent = (delta / previous.CO2eTonnes) * 100
	}

	return Comparison{
		Previous:      previous,
		DeltaTonnes:   delta,
		PercentChange: percent,
	}
}
