package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/burncare/burncare/internal/burn"
	"github.com/burncare/burncare/internal/platform/auth"
	"github.com/burncare/burncare/internal/platform/metrics"
	"github.com/burncare/burncare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	records := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	records.POST("/assessments", h.CreateAssessment)
	records.GET("/assessments", h.ListAssessments)
	records.GET("/assessments/:id", h.GetAssessment)
	records.PUT("/assessments/:id", h.UpdateAssessment)
	records.DELETE("/assessments/:id", h.DeleteAssessment)
	records.GET("/assessments/:id/summary", h.GetSummary)
	records.GET("/assessments/:id/urine-target", h.GetUrineTarget)
	records.POST("/assessments/:id/monitoring", h.AddMonitoringEntry)
	records.GET("/assessments/:id/monitoring", h.ListMonitoringEntries)

	// Stateless calculators; any authenticated role may use them.
	api.POST("/calculate/tbsa", h.CalculateTBSA)
	api.POST("/calculate/fluids", h.CalculateFluids)
	api.POST("/calculate/urine-adjustment", h.CalculateUrineAdjustment)
	api.POST("/calculate/vital-stability", h.CalculateVitalStability)
	api.POST("/calculate/urine-target", h.CalculateUrineTarget)
	api.GET("/reference/chart", h.GetReferenceChart)
}

// domainError maps calculation errors to HTTP status codes: bad input is the
// caller's fault, everything else is ours.
func domainError(err error) error {
	var rangeErr *burn.RangeError
	var validationErr *burn.ValidationError
	switch {
	case errors.As(err, &rangeErr), errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, pgx.ErrNoRows):
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// -- Assessment Handlers --

func (h *Handler) CreateAssessment(c echo.Context) error {
	var a Assessment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateAssessment(c.Request().Context(), &a); err != nil {
		return domainError(err)
	}
	metrics.AssessmentsCreated.Inc()
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	pg := pagination.FromContext(c)
	if patientRef := c.QueryParam("patient_ref"); patientRef != "" {
		items, total, err := h.svc.ListAssessmentsByPatientRef(c.Request().Context(), patientRef, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}
	items, total, err := h.svc.ListAssessments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var a Assessment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.ID = id
	if err := h.svc.UpdateAssessment(c.Request().Context(), &a); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteAssessment(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetSummary(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	text, err := h.svc.Summary(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.String(http.StatusOK, text)
}

func (h *Handler) GetUrineTarget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	target, err := h.svc.UrineOutputTarget(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, target)
}

// -- Monitoring Handlers --

func (h *Handler) AddMonitoringEntry(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var e MonitoringEntry
	if err := c.Bind(&e); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e.AssessmentID = id
	if err := h.svc.AddMonitoringEntry(c.Request().Context(), &e); err != nil {
		return domainError(err)
	}
	metrics.MonitoringEntriesRecorded.Inc()
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) ListMonitoringEntries(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.ListMonitoringEntries(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// -- Stateless Calculator Handlers --

type tbsaRequest struct {
	AgeMonths float64                `json:"age_months"`
	Regions   []burn.RegionSelection `json:"regions"`
}

func (h *Handler) CalculateTBSA(c echo.Context) error {
	var req tbsaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Calculator().TBSA(req.AgeMonths, req.Regions)
	if err != nil {
		return domainError(err)
	}
	metrics.CalculationsTotal.WithLabelValues("tbsa").Inc()
	return c.JSON(http.StatusOK, res)
}

type fluidsRequest struct {
	WeightKg         float64 `json:"weight_kg"`
	TBSAPct          float64 `json:"tbsa_pct"`
	HoursSinceInjury float64 `json:"hours_since_injury"`
}

func (h *Handler) CalculateFluids(c echo.Context) error {
	var req fluidsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	plan, err := burn.CalculateFluids(req.WeightKg, req.TBSAPct, req.HoursSinceInjury)
	if err != nil {
		return domainError(err)
	}
	metrics.CalculationsTotal.WithLabelValues("fluids").Inc()
	return c.JSON(http.StatusOK, plan)
}

type urineAdjustmentRequest struct {
	CurrentRateMlPerHr float64 `json:"current_rate_ml_per_hr"`
	UrineOutputMlPerHr float64 `json:"urine_output_ml_per_hr"`
}

func (h *Handler) CalculateUrineAdjustment(c echo.Context) error {
	var req urineAdjustmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	adj, err := burn.AdjustRateByUrineOutput(req.CurrentRateMlPerHr, req.UrineOutputMlPerHr)
	if err != nil {
		return domainError(err)
	}
	metrics.CalculationsTotal.WithLabelValues("urine-adjustment").Inc()
	return c.JSON(http.StatusOK, adj)
}

func (h *Handler) CalculateVitalStability(c echo.Context) error {
	var vitals burn.Vitals
	if err := c.Bind(&vitals); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	metrics.CalculationsTotal.WithLabelValues("vital-stability").Inc()
	return c.JSON(http.StatusOK, burn.AssessVitalStability(vitals))
}

type urineTargetRequest struct {
	WeightKg  float64 `json:"weight_kg"`
	AgeMonths float64 `json:"age_months"`
}

func (h *Handler) CalculateUrineTarget(c echo.Context) error {
	var req urineTargetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	target, err := burn.UrineOutputTarget(req.WeightKg, req.AgeMonths)
	if err != nil {
		return domainError(err)
	}
	metrics.CalculationsTotal.WithLabelValues("urine-target").Inc()
	return c.JSON(http.StatusOK, target)
}

// GetReferenceChart returns the full age-adjusted percentage table.
func (h *Handler) GetReferenceChart(c echo.Context) error {
	chart := h.svc.Calculator().Chart()
	out := make(map[burn.BodyRegion]map[burn.AgeGroup]float64, len(burn.Regions))
	for _, region := range chart.Regions() {
		row := make(map[burn.AgeGroup]float64, len(burn.AgeGroups))
		for _, group := range burn.AgeGroups {
			if pct, ok := chart.Percent(region, group); ok {
				row[group] = pct
			}
		}
		out[region] = row
	}
	return c.JSON(http.StatusOK, out)
}
