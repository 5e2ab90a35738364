package burn

import "fmt"

// Calculator evaluates burn assessments against a fixed reference chart.
// It is stateless between calls; concurrent use is safe because the chart
// is read-only.
type Calculator struct {
	chart *Chart
}

func NewCalculator(chart *Chart) *Calculator {
	return &Calculator{chart: chart}
}

// Chart returns the reference chart the calculator was built with.
func (c *Calculator) Chart() *Chart {
	return c.chart
}

// TBSAResult is the outcome of one total-body-surface-area computation.
// Produced fresh on every call and never mutated afterwards.
type TBSAResult struct {
	TotalPct  float64                `json:"total_pct"`
	AgeGroup  AgeGroup               `json:"age_group"`
	Breakdown map[BodyRegion]float64 `json:"breakdown"`
	Warnings  []string               `json:"warnings,omitempty"`
}

// Clinical advisory thresholds.
const (
	majorBurnPct    = 60.0
	infantAgeMonths = 12.0
)

// TBSA computes the total body surface area burned from the patient's age
// and the set of region selections. Each contribution is the region's chart
// percentage for the resolved age band times the burned fraction, rounded to
// one decimal; the total is the rounded sum of contributions. An empty
// selection set yields zero with an all-zero breakdown.
func (c *Calculator) TBSA(ageMonths float64, selections []RegionSelection) (*TBSAResult, error) {
	group, err := ClassifyAge(ageMonths)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[BodyRegion]float64, len(Regions))
	for _, region := range c.chart.Regions() {
		breakdown[region] = 0
	}

	total := 0.0
	for _, sel := range selections {
		base, ok := c.chart.Percent(sel.Region, group)
		if !ok {
			return nil, &ValidationError{Field: "region", Value: string(sel.Region), Reason: "unknown body region"}
		}
		if !sel.Fraction.Valid() {
			return nil, &ValidationError{
				Field:  "fraction",
				Value:  fmt.Sprintf("%g", float64(sel.Fraction)),
				Reason: "must be one of 0, 0.25, 0.5, 0.75, 1",
			}
		}
		if !sel.Depth.Valid() {
			return nil, &ValidationError{Field: "depth", Value: string(sel.Depth), Reason: "unknown burn depth"}
		}
		contribution := round1(base * float64(sel.Fraction))
		breakdown[sel.Region] = contribution
		total += contribution
	}

	result := &TBSAResult{
		TotalPct:  round1(total),
		AgeGroup:  group,
		Breakdown: breakdown,
	}
	if result.TotalPct > majorBurnPct {
		result.Warnings = append(result.Warnings, "major burn (>60% TBSA): requires burn center care")
	}
	if ageMonths < infantAgeMonths {
		result.Warnings = append(result.Warnings, "infant patient: narrow fluid tolerance, reassess frequently")
	}
	return result, nil
}
