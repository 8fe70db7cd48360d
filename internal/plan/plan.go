// Package plan generates personalized three-month carbon reduction plans
// from a current annual footprint and a target reduction percentage.
package plan

import "fmt"

// DefaultTargetPercent is the reduction goal used when the user doesn't
// specify one.
const DefaultTargetPercent = 20.0

// Per-step expected reductions as fractions of the current footprint.
// Together the three steps deliver the default 20% target.
const (
	transportStepFraction = 0.05
	energyStepFraction    = 0.08
	foodStepFraction      = 0.07
)

// Step is one month of a reduction plan.
type Step struct {
	Month             int     `json:"month"`
	Focus             string  `json:"focus"`
	Action            string  `json:"action"`
	ExpectedReduction float64 `json:"expected_reduction"` // tonnes CO2e
}

// Plan is a stepped reduction plan toward a target footprint.
type Plan struct {
	TargetReductionPercent float64 `json:"target_reduction_percent"`
	CurrentTonnes          float64 `json:"current_tonnes"`
	TargetTonnes           float64 `json:"target_tonnes"`
	TimelineMonths         int     `json:"timeline_months"`
	Steps                  []Step  `json:"steps"`
}

// Build creates a three-month reduction plan for the given annual footprint.
//
// targetPercent is clamped into (0, 100]: non-positive values fall back to
// DefaultTargetPercent, values over 100 cap at 100. A zero or negative
// current footprint produces a plan with zero expected reductions rather
// than an error; there is simply nothing to reduce.
func Build(currentTonnes, targetPercent float64) Plan {
	if targetPercent <= 0 {
		targetPercent = DefaultTargetPercent
	}
	if targetPercent > 100 {
		targetPercent = 100
	}
	if currentTonnes < 0 {
		currentTonnes = 0
	}

	steps := []Step{
		{
			Month:             1,
			Focus:             "transport",
			Action:            "Reduce car travel by 10%",
			ExpectedReduction: currentTonnes * transportStepFraction,
		},
		{
			Month:             2,
			Focus:             "energy",
			Action:            "Switch 30% of electricity to renewable sources",
			ExpectedReduction: currentTonnes * energyStepFraction,
		},
		{
			Month:             3,
			Focus:             "food",
			Action:            "Replace 2 meat meals per week",
			ExpectedReduction: currentTonnes * foodStepFraction,
		},
	}

	return Plan{
		TargetReductionPercent: targetPercent,
		CurrentTonnes:          currentTonnes,
		TargetTonnes:           currentTonnes * (1 - targetPercent/100),
		TimelineMonths:         len(steps),
		Steps:                  steps,
	}
}

// Summary returns a one-line description of the plan goal.
func (p Plan) Summary() string {
	return fmt.Sprintf("reduce %.2f t to %.2f t CO2e (%.0f%%) over %d months",
		p.CurrentTonnes, p.TargetTonnes, p.TargetReductionPercent, p.TimelineMonths)
}
