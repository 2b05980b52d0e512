package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// InstallationAnalytics aggregates completed installations over a date range
// @Summary Installation analytics
// @Tags analytics
// @Produce json
// @Param start_date query string false "YYYY-MM-DD, defaults to the first day of the month"
// @Param end_date query string false "YYYY-MM-DD, defaults to today"
// @Param technician_id query int false "Technician ID"
// @Success 200 {object} entity.InstallationAnalytics
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Router /v1/analytics/installations [get]
// @Security BearerAuth
func (h *Handler) InstallationAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	start, err := queryDate(r, "start_date")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	end, err := queryDate(r, "end_date")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	techID, err := queryInt64(r, "technician_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	a, err := h.s.InstallationAnalytics(ctx, entity.AnalyticsFilter{
		Start:        deref(start),
		End:          deref(end),
		TechnicianID: techID,
	})
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las analíticas")
		return
	}

	SendJSON(ctx, w, http.StatusOK, a)
}
