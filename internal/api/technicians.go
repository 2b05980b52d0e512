package api

import (
	"net/http"
	"time"

	"github.com/zafesys/suite/internal/entity"
)

// Technicians lists technicians
// @Summary List technicians
// @Tags technicians
// @Produce json
// @Param active_only query bool false "Only active technicians" default(true)
// @Success 200 {array} entity.Technician
// @Router /v1/technicians [get]
// @Security BearerAuth
func (h *Handler) Technicians(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly, err := queryBool(r, "active_only", true)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	list, err := h.s.Technicians(ctx, activeOnly)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los técnicos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// AvailableTechnicians lists active technicians marked available
// @Summary Available technicians
// @Tags technicians
// @Produce json
// @Success 200 {array} entity.Technician
// @Router /v1/technicians/available [get]
// @Security BearerAuth
func (h *Handler) AvailableTechnicians(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.s.AvailableTechnicians(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los técnicos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// Technician returns a technician
// @Summary Get technician
// @Tags technicians
// @Produce json
// @Param id path int true "Technician ID"
// @Success 200 {object} entity.Technician
// @Failure 404 {object} ErrorResponse "Technician not found"
// @Router /v1/technicians/{id} [get]
// @Security BearerAuth
func (h *Handler) Technician(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	t, err := h.s.Technician(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el técnico")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}

// TechnicianSchedule returns a technician's open installations for a day
// @Summary Technician day schedule
// @Tags technicians
// @Produce json
// @Param id path int true "Technician ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} entity.TechnicianDaySchedule
// @Failure 404 {object} ErrorResponse "Technician not found"
// @Router /v1/technicians/{id}/schedule [get]
// @Security BearerAuth
func (h *Handler) TechnicianSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	date, err := queryDate(r, "date")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	schedule, err := h.s.TechnicianSchedule(ctx, id, deref(date))
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener la agenda")
		return
	}

	SendJSON(ctx, w, http.StatusOK, schedule)
}

// CreateTechnician creates a technician
// @Summary Create technician
// @Tags technicians
// @Accept json
// @Produce json
// @Param TechnicianCreate body entity.TechnicianCreate true "Technician"
// @Success 201 {object} entity.Technician
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Router /v1/technicians [post]
// @Security BearerAuth
func (h *Handler) CreateTechnician(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.TechnicianCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	t, err := h.s.CreateTechnician(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo crear el técnico")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, t)
}

// UpdateTechnician updates technician fields
// @Summary Update technician
// @Tags technicians
// @Accept json
// @Produce json
// @Param id path int true "Technician ID"
// @Param TechnicianUpdate body entity.TechnicianUpdate true "Fields to change"
// @Success 200 {object} entity.Technician
// @Failure 404 {object} ErrorResponse "Technician not found"
// @Router /v1/technicians/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateTechnician(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.TechnicianUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	t, err := h.s.UpdateTechnician(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el técnico")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}

type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

// SetTechnicianAvailability toggles whether a technician takes new work
// @Summary Set technician availability
// @Tags technicians
// @Accept json
// @Produce json
// @Param id path int true "Technician ID"
// @Param AvailabilityRequest body AvailabilityRequest true "Availability"
// @Success 200 {object} entity.Technician
// @Failure 404 {object} ErrorResponse "Technician not found"
// @Router /v1/technicians/{id}/availability [patch]
// @Security BearerAuth
func (h *Handler) SetTechnicianAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req AvailabilityRequest

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	t, err := h.s.SetTechnicianAvailability(ctx, id, req.IsAvailable)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar la disponibilidad")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}

// DeleteTechnician deactivates a technician
// @Summary Deactivate technician
// @Tags technicians
// @Param id path int true "Technician ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Technician not found"
// @Router /v1/technicians/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteTechnician(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteTechnician(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo desactivar el técnico")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LatestLocations returns the last known position of every active technician
// @Summary Latest technician locations
// @Tags locations
// @Produce json
// @Success 200 {array} entity.TechnicianPosition
// @Router /v1/technicians/locations/latest [get]
// @Security BearerAuth
func (h *Handler) LatestLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.s.LatestLocations(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las ubicaciones")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// LocationHistory returns a technician's positions, newest first
// @Summary Technician location history
// @Tags locations
// @Produce json
// @Param id path int true "Technician ID"
// @Param from query string false "RFC 3339 time"
// @Param to query string false "RFC 3339 time"
// @Param limit query int false "Limit" default(100)
// @Success 200 {array} entity.TechnicianLocation
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Router /v1/technicians/{id}/locations/history [get]
// @Security BearerAuth
func (h *Handler) LocationHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f := entity.LocationHistoryFilter{TechnicianID: id}

	f.From, err = queryTime(r, "from")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.To, err = queryTime(r, "to")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.Limit = page.Limit

	list, err := h.s.LocationHistory(ctx, f)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el historial")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

type LocationRequest struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// ReportLocation stores a GPS point sent by the technician app
// @Summary Report technician location
// @Tags locations
// @Accept json
// @Produce json
// @Param LocationRequest body LocationRequest true "GPS point"
// @Success 201 {object} entity.TechnicianLocation
// @Failure 400 {object} ErrorResponse "Coordinates out of range"
// @Router /v1/technicians/me/location [post]
// @Security TechnicianAuth
func (h *Handler) ReportLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, _ := entity.TechnicianFromCtx(ctx)

	var req LocationRequest

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	loc, err := h.s.RecordLocation(ctx, entity.TechnicianLocation{
		TechnicianID: claims.TechnicianID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Accuracy:     req.Accuracy,
		RecordedAt:   deref(req.RecordedAt),
	})
	if err != nil {
		SendErr(ctx, w, err, "No se pudo registrar la ubicación")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, loc)
}
