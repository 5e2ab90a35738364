package burn

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateFluids_PediatricScenario(t *testing.T) {
	plan, err := CalculateFluids(8, 12, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TotalMl != 384 {
		t.Errorf("total = %g, want 384", plan.TotalMl)
	}
	if plan.First8hMl != 192 {
		t.Errorf("first 8h = %g, want 192", plan.First8hMl)
	}
	if plan.MaintenanceMlPerHr != 32 {
		t.Errorf("maintenance = %g, want 32", plan.MaintenanceMlPerHr)
	}
	if plan.Phase != PhaseFirst8 {
		t.Errorf("phase = %s, want first8", plan.Phase)
	}
}

func TestCalculateFluids_AdultScenario(t *testing.T) {
	plan, err := CalculateFluids(70, 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TotalMl != 8400 {
		t.Errorf("total = %g, want 8400", plan.TotalMl)
	}
	if plan.RateNowMlPerHr != 525 {
		t.Errorf("rate = %g, want 525", plan.RateNowMlPerHr)
	}
	if plan.DeliveredFirst8hMl != 0 {
		t.Errorf("delivered = %g, want 0 at hour zero", plan.DeliveredFirst8hMl)
	}
}

func TestCalculateFluids_TotalInvariantToElapsedTime(t *testing.T) {
	for _, hours := range []float64{0, 3, 7.5, 8, 12, 24, 48, 168} {
		plan, err := CalculateFluids(70, 30, hours)
		if err != nil {
			t.Fatalf("CalculateFluids(h=%g): %v", hours, err)
		}
		if plan.TotalMl != 8400 {
			t.Errorf("total at h=%g is %g, want invariant 8400", hours, plan.TotalMl)
		}
	}
}

func TestCalculateFluids_PhaseContinuityAtHour8(t *testing.T) {
	plan, err := CalculateFluids(70, 30, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.RemainingFirst8hMl != 0 {
		t.Errorf("remaining first 8h = %g, want 0 at hour 8", plan.RemainingFirst8hMl)
	}
	if plan.Phase != PhaseNext16 {
		t.Errorf("phase = %s, want next16", plan.Phase)
	}
	// Whole second phase still pending: 4200 over 16 hours.
	if plan.RateNowMlPerHr != 262.5 {
		t.Errorf("rate = %g, want 262.5", plan.RateNowMlPerHr)
	}
}

func TestCalculateFluids_SecondPhaseAccounting(t *testing.T) {
	plan, err := CalculateFluids(70, 30, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.DeliveredFirst8hMl != 4200 {
		t.Errorf("delivered first 8h = %g, want 4200", plan.DeliveredFirst8hMl)
	}
	if plan.DeliveredNext16hMl != 2100 {
		t.Errorf("delivered next 16h = %g, want 2100", plan.DeliveredNext16hMl)
	}
	if plan.RemainingNext16hMl != 2100 {
		t.Errorf("remaining next 16h = %g, want 2100", plan.RemainingNext16hMl)
	}
	if plan.RateNowMlPerHr != 262.5 {
		t.Errorf("rate = %g, want 262.5", plan.RateNowMlPerHr)
	}
}

func TestCalculateFluids_AfterWindow(t *testing.T) {
	plan, err := CalculateFluids(70, 30, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.RemainingFirst8hMl != 0 || plan.RemainingNext16hMl != 0 {
		t.Errorf("remaining = %g/%g, want 0/0 after 24h", plan.RemainingFirst8hMl, plan.RemainingNext16hMl)
	}
	if plan.RateNowMlPerHr != 0 {
		t.Errorf("rate = %g, want 0 after 24h", plan.RateNowMlPerHr)
	}
	if plan.Phase != PhaseNext16 {
		t.Errorf("phase = %s, want next16", plan.Phase)
	}
	found := false
	for _, n := range plan.Notices {
		if n == "delayed presentation (>24h since injury): resuscitation window has elapsed" {
			found = true
		}
	}
	if !found {
		t.Error("expected delayed presentation notice")
	}
}

func TestCalculateFluids_Timeline(t *testing.T) {
	plan, err := CalculateFluids(70, 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Timeline) != 25 {
		t.Fatalf("timeline has %d points, want 25", len(plan.Timeline))
	}
	if plan.Timeline[0].TargetMl != 0 {
		t.Errorf("hour 0 target = %g, want 0", plan.Timeline[0].TargetMl)
	}
	if plan.Timeline[8].TargetMl != plan.First8hMl {
		t.Errorf("hour 8 target = %g, want %g", plan.Timeline[8].TargetMl, plan.First8hMl)
	}
	if plan.Timeline[24].TargetMl != plan.TotalMl {
		t.Errorf("hour 24 target = %g, want %g", plan.Timeline[24].TargetMl, plan.TotalMl)
	}
	for i, point := range plan.Timeline {
		if point.Hour != i {
			t.Errorf("timeline[%d].Hour = %d", i, point.Hour)
		}
		wantPhase := PhaseNext16
		if i < 8 {
			wantPhase = PhaseFirst8
		}
		if point.Phase != wantPhase {
			t.Errorf("timeline[%d].Phase = %s, want %s", i, point.Phase, wantPhase)
		}
		if i > 0 && point.TargetMl < plan.Timeline[i-1].TargetMl {
			t.Errorf("timeline not monotonic at hour %d", i)
		}
	}
}

func TestCalculateFluids_SmallBurnNotice(t *testing.T) {
	plan, err := CalculateFluids(70, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Notices) == 0 {
		t.Error("expected advisory notice for TBSA below 10%")
	}
}

func TestCalculateFluids_InvalidInputs(t *testing.T) {
	cases := []struct {
		name                string
		weight, tbsa, hours float64
	}{
		{"zero weight", 0, 30, 0},
		{"negative weight", -70, 30, 0},
		{"tbsa above 100", 70, 101, 0},
		{"negative hours", 70, 30, -1},
		{"hours beyond a week", 70, 30, 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateFluids(tc.weight, tc.tbsa, tc.hours)
			if err == nil {
				t.Fatal("expected error")
			}
			var rErr *RangeError
			if !errors.As(err, &rErr) {
				t.Errorf("expected RangeError, got %T", err)
			}
		})
	}
}

func TestCalculateFluids_NonFiniteInput(t *testing.T) {
	_, err := CalculateFluids(math.NaN(), 30, 0)
	if err == nil {
		t.Fatal("expected error for NaN weight")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestMaintenanceRate(t *testing.T) {
	cases := []struct {
		weightKg float64
		want     float64
	}{
		{8, 32},    // 4 ml/kg tier only
		{10, 40},   // tier boundary
		{15, 50},   // 40 + 5x2
		{20, 60},   // 40 + 20
		{70, 110},  // 40 + 20 + 50
		{0.5, 2},
	}
	for _, tc := range cases {
		got, err := MaintenanceRate(tc.weightKg)
		if err != nil {
			t.Fatalf("MaintenanceRate(%g): %v", tc.weightKg, err)
		}
		if got != tc.want {
			t.Errorf("MaintenanceRate(%g) = %g, want %g", tc.weightKg, got, tc.want)
		}
	}
	if _, err := MaintenanceRate(0); err == nil {
		t.Error("expected error for weight below minimum")
	}
}
