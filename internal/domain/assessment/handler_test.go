package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/burncare/burncare/internal/burn"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	svc := newTestService(t)
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func jsonRequest(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_CreateAssessment(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"age_months":300,"weight_kg":70,"hours_since_injury":0,"regions":[{"region":"anteriorTrunk","fraction":1}]}`
	c, rec := jsonRequest(e, http.MethodPost, body)

	if err := h.CreateAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var a Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if a.TBSAPct != 13 {
		t.Errorf("tbsa = %g, want 13", a.TBSAPct)
	}
	if a.TotalMl != 3640 {
		t.Errorf("total = %g, want 3640", a.TotalMl)
	}
}

func TestHandler_CreateAssessment_BadRegion(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"age_months":300,"weight_kg":70,"hours_since_injury":0,"regions":[{"region":"tail","fraction":1}]}`
	c, _ := jsonRequest(e, http.MethodPost, body)

	err := h.CreateAssessment(c)
	if err == nil {
		t.Fatal("expected error for unknown region")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreateAssessment_OutOfRange(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"age_months":300,"weight_kg":500,"hours_since_injury":0}`
	c, _ := jsonRequest(e, http.MethodPost, body)

	err := h.CreateAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_GetAssessment(t *testing.T) {
	h, e := newTestHandler(t)
	a := &Assessment{AgeMonths: 300, WeightKg: 70, HoursSinceInjury: 0,
		Regions: []RegionEntry{{Region: string(burn.RegionHead), Fraction: 1}}}
	h.svc.CreateAssessment(nil, a)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.GetAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetAssessment_NotFound(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_DeleteAssessment(t *testing.T) {
	h, e := newTestHandler(t)
	a := &Assessment{AgeMonths: 300, WeightKg: 70, HoursSinceInjury: 0,
		Regions: []RegionEntry{{Region: string(burn.RegionHead), Fraction: 1}}}
	h.svc.CreateAssessment(nil, a)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.DeleteAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_GetSummary(t *testing.T) {
	h, e := newTestHandler(t)
	a := &Assessment{AgeMonths: 300, WeightKg: 70, HoursSinceInjury: 0,
		Regions: []RegionEntry{{Region: string(burn.RegionHead), Fraction: 1}}}
	h.svc.CreateAssessment(nil, a)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "BURN ASSESSMENT SUMMARY") {
		t.Error("expected plain-text summary body")
	}
}

func TestHandler_AddMonitoringEntry(t *testing.T) {
	h, e := newTestHandler(t)
	a := &Assessment{AgeMonths: 300, WeightKg: 70, HoursSinceInjury: 0,
		Regions: []RegionEntry{{Region: string(burn.RegionHead), Fraction: 1}}}
	h.svc.CreateAssessment(nil, a)

	body := `{"urine_output_ml_per_hr":60,"current_rate_ml_per_hr":100}`
	c, rec := jsonRequest(e, http.MethodPost, body)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.AddMonitoringEntry(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var entry MonitoringEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entry); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if entry.NewRateMlPerHr == nil || *entry.NewRateMlPerHr != 80 {
		t.Errorf("new rate = %v, want 80", entry.NewRateMlPerHr)
	}
}

func TestHandler_AddMonitoringEntry_UnknownAssessment(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"urine_output_ml_per_hr":60,"current_rate_ml_per_hr":100}`
	c, _ := jsonRequest(e, http.MethodPost, body)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.AddMonitoringEntry(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_CalculateTBSA(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"age_months":300,"regions":[{"region":"head","fraction":1}]}`
	c, rec := jsonRequest(e, http.MethodPost, body)

	if err := h.CalculateTBSA(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res burn.TBSAResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalPct != 7 {
		t.Errorf("total = %g, want 7", res.TotalPct)
	}
}

func TestHandler_CalculateFluids(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"weight_kg":70,"tbsa_pct":30,"hours_since_injury":0}`
	c, rec := jsonRequest(e, http.MethodPost, body)

	if err := h.CalculateFluids(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var plan burn.FluidPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if plan.TotalMl != 8400 || plan.RateNowMlPerHr != 525 {
		t.Errorf("got total %g rate %g, want 8400/525", plan.TotalMl, plan.RateNowMlPerHr)
	}
}

func TestHandler_CalculateFluids_BadInput(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"weight_kg":0,"tbsa_pct":30,"hours_since_injury":0}`
	c, _ := jsonRequest(e, http.MethodPost, body)

	err := h.CalculateFluids(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CalculateUrineAdjustment(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"current_rate_ml_per_hr":100,"urine_output_ml_per_hr":25}`
	c, rec := jsonRequest(e, http.MethodPost, body)

	if err := h.CalculateUrineAdjustment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var adj burn.RateAdjustment
	if err := json.Unmarshal(rec.Body.Bytes(), &adj); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if adj.NewRateMlPerHr != 120 || adj.Adjustment != "increase" {
		t.Errorf("got %+v, want 120/increase", adj)
	}
}

func TestHandler_CalculateVitalStability(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"systolic_bp":85}`
	c, rec := jsonRequest(e, http.MethodPost, body)

	if err := h.CalculateVitalStability(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out burn.StabilityAssessment
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Stable {
		t.Error("SBP 85 should report unstable")
	}
}

func TestHandler_CalculateUrineTarget(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"weight_kg":15,"age_months":60}`
	c, rec := jsonRequest(e, http.MethodPost, body)

	if err := h.CalculateUrineTarget(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var target burn.UrineTarget
	if err := json.Unmarshal(rec.Body.Bytes(), &target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if target.MinMlPerHr != 15 || target.MaxMlPerHr != 30 {
		t.Errorf("got %+v, want 15-30", target)
	}
}

func TestHandler_GetReferenceChart(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetReferenceChart(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out map[string]map[string]float64
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != len(burn.Regions) {
		t.Errorf("chart has %d regions, want %d", len(out), len(burn.Regions))
	}
	if out["head"]["Adult"] != 7 {
		t.Errorf("adult head = %g, want 7", out["head"]["Adult"])
	}
}
