package burn

import (
	"fmt"
	"math"
)

// Chart is an age-stratified surface-area reference table mapping each body
// region to its percentage of total body surface per age band. It is built
// once, validated, and then only read; calculators receive it by reference.
//
// Earlier builds of the course material also shipped a coarser five-band
// chart with anterior/posterior limb splits. That layout is retired; this
// six-group, 19-region Lund-Browder chart is the only model.
type Chart struct {
	pct map[BodyRegion]map[AgeGroup]float64
}

// sumTolerance is the allowed rounding slack on the per-age-group total.
const sumTolerance = 1.0

// lundBrowderRows holds per-region percentages in AgeGroups order
// (0, 1, 5, 10, 15, Adult).
var lundBrowderRows = map[BodyRegion][6]float64{
	RegionHead:           {19, 17, 13, 11, 9, 7},
	RegionNeck:           {2, 2, 2, 2, 2, 2},
	RegionAnteriorTrunk:  {13, 13, 13, 13, 13, 13},
	RegionPosteriorTrunk: {13, 13, 13, 13, 13, 13},
	RegionRightButtock:   {2.5, 2.5, 2.5, 2.5, 2.5, 2.5},
	RegionLeftButtock:    {2.5, 2.5, 2.5, 2.5, 2.5, 2.5},
	RegionGenitalia:      {1, 1, 1, 1, 1, 1},
	RegionRightUpperArm:  {4, 4, 4, 4, 4, 4},
	RegionLeftUpperArm:   {4, 4, 4, 4, 4, 4},
	RegionRightLowerArm:  {3, 3, 3, 3, 3, 3},
	RegionLeftLowerArm:   {3, 3, 3, 3, 3, 3},
	RegionRightHand:      {2.5, 2.5, 2.5, 2.5, 2.5, 2.5},
	RegionLeftHand:       {2.5, 2.5, 2.5, 2.5, 2.5, 2.5},
	RegionRightThigh:     {5.5, 6.5, 8, 8.5, 9, 9.5},
	RegionLeftThigh:      {5.5, 6.5, 8, 8.5, 9, 9.5},
	RegionRightLeg:       {5, 5, 5.5, 6, 6.5, 7},
	RegionLeftLeg:        {5, 5, 5.5, 6, 6.5, 7},
	RegionRightFoot:      {3.5, 3.5, 3.5, 3.5, 3.5, 3.5},
	RegionLeftFoot:       {3.5, 3.5, 3.5, 3.5, 3.5, 3.5},
}

// LundBrowder returns the canonical Lund-Browder chart.
func LundBrowder() *Chart {
	pct := make(map[BodyRegion]map[AgeGroup]float64, len(lundBrowderRows))
	for region, row := range lundBrowderRows {
		byGroup := make(map[AgeGroup]float64, len(AgeGroups))
		for i, group := range AgeGroups {
			byGroup[group] = row[i]
		}
		pct[region] = byGroup
	}
	return &Chart{pct: pct}
}

// Percent returns the region's surface-area percentage for the given age
// band. The second return value is false for an unknown region.
func (c *Chart) Percent(region BodyRegion, group AgeGroup) (float64, bool) {
	row, ok := c.pct[region]
	if !ok {
		return 0, false
	}
	v, ok := row[group]
	return v, ok
}

// Regions returns the chart's regions in canonical order.
func (c *Chart) Regions() []BodyRegion {
	out := make([]BodyRegion, 0, len(Regions))
	for _, r := range Regions {
		if _, ok := c.pct[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// bilateralPairs are regions that must carry identical values within every
// age band.
var bilateralPairs = [][2]BodyRegion{
	{RegionRightButtock, RegionLeftButtock},
	{RegionRightUpperArm, RegionLeftUpperArm},
	{RegionRightLowerArm, RegionLeftLowerArm},
	{RegionRightHand, RegionLeftHand},
	{RegionRightThigh, RegionLeftThigh},
	{RegionRightLeg, RegionLeftLeg},
	{RegionRightFoot, RegionLeftFoot},
}

// Validate checks the chart's structural invariants: every region covers
// every age band, per-band totals are 100 within rounding tolerance,
// bilateral regions match, and the head shrinks while thighs and legs grow
// as the bands advance.
func (c *Chart) Validate() error {
	for _, region := range Regions {
		row, ok := c.pct[region]
		if !ok {
			return fmt.Errorf("chart: missing region %q", region)
		}
		for _, group := range AgeGroups {
			v, ok := row[group]
			if !ok {
				return fmt.Errorf("chart: region %q missing age group %q", region, group)
			}
			if v < 0 {
				return fmt.Errorf("chart: region %q age group %q has negative percent %g", region, group, v)
			}
		}
	}

	for _, group := range AgeGroups {
		sum := 0.0
		for _, region := range Regions {
			sum += c.pct[region][group]
		}
		if math.Abs(sum-100) > sumTolerance {
			return fmt.Errorf("chart: age group %q sums to %g, want 100 ± %g", group, sum, sumTolerance)
		}
	}

	for _, pair := range bilateralPairs {
		for _, group := range AgeGroups {
			if c.pct[pair[0]][group] != c.pct[pair[1]][group] {
				return fmt.Errorf("chart: bilateral mismatch between %q and %q in age group %q", pair[0], pair[1], group)
			}
		}
	}

	for i := 1; i < len(AgeGroups); i++ {
		prev, cur := AgeGroups[i-1], AgeGroups[i]
		if c.pct[RegionHead][cur] >= c.pct[RegionHead][prev] {
			return fmt.Errorf("chart: head percent must strictly decrease from age group %q to %q", prev, cur)
		}
		if c.pct[RegionRightThigh][cur] <= c.pct[RegionRightThigh][prev] {
			return fmt.Errorf("chart: thigh percent must strictly increase from age group %q to %q", prev, cur)
		}
		// Lower legs hold at 5% across the first two bands, so the growth
		// check is non-strict there.
		if c.pct[RegionRightLeg][cur] < c.pct[RegionRightLeg][prev] {
			return fmt.Errorf("chart: leg percent must not decrease from age group %q to %q", prev, cur)
		}
	}
	return nil
}
