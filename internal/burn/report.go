package burn

import (
	"fmt"
	"strings"
)

// Summary renders a completed assessment as the plain-text note used for
// documentation. Formatting only; all numbers arrive already rounded.
func Summary(attrs PatientAttributes, tbsa *TBSAResult, plan *FluidPlan) string {
	var b strings.Builder

	b.WriteString("BURN ASSESSMENT SUMMARY\n")
	fmt.Fprintf(&b, "Patient: %.0f months old, %.1f kg, %.1f h since injury\n",
		attrs.AgeMonths, attrs.WeightKg, attrs.HoursSinceInjury)
	fmt.Fprintf(&b, "Age group (Lund-Browder): %s\n\n", tbsa.AgeGroup)

	fmt.Fprintf(&b, "TBSA burned: %.1f%%\n", tbsa.TotalPct)
	for _, region := range Regions {
		if pct := tbsa.Breakdown[region]; pct > 0 {
			fmt.Fprintf(&b, "  %-16s %5.1f%%\n", region, pct)
		}
	}

	b.WriteString("\nFluid resuscitation (Parkland):\n")
	fmt.Fprintf(&b, "  24h total:        %.1f ml\n", plan.TotalMl)
	fmt.Fprintf(&b, "  First 8h:         %.1f ml (%.1f ml remaining)\n", plan.First8hMl, plan.RemainingFirst8hMl)
	fmt.Fprintf(&b, "  Next 16h:         %.1f ml (%.1f ml remaining)\n", plan.Next16hMl, plan.RemainingNext16hMl)
	fmt.Fprintf(&b, "  Current phase:    %s\n", plan.Phase)
	fmt.Fprintf(&b, "  Rate now:         %.1f ml/hr\n", plan.RateNowMlPerHr)
	fmt.Fprintf(&b, "  Maintenance rate: %.1f ml/hr\n", plan.MaintenanceMlPerHr)

	if len(tbsa.Warnings) > 0 || len(plan.Notices) > 0 {
		b.WriteString("\nAdvisories:\n")
		for _, w := range tbsa.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
		for _, n := range plan.Notices {
			fmt.Fprintf(&b, "  - %s\n", n)
		}
	}
	return b.String()
}
