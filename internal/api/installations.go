package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Installations lists installations
// @Summary List installations
// @Tags installations
// @Produce json
// @Param status query string false "Installation status"
// @Param technician_id query int false "Technician ID"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {array} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /v1/installations [get]
// @Security BearerAuth
func (h *Handler) Installations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f := entity.InstallationFilter{Page: page}

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.InstallationStatus(v)
		f.Status = &status
	}

	f.TechnicianID, err = queryInt64(r, "technician_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.DateFrom, err = queryDate(r, "date_from")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.DateTo, err = queryDate(r, "date_to")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	list, err := h.s.Installations(ctx, f)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las instalaciones")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// PendingInstallations lists installations without a date or technician
// @Summary Pending installations
// @Tags installations
// @Produce json
// @Success 200 {array} entity.Installation
// @Router /v1/installations/pending [get]
// @Security BearerAuth
func (h *Handler) PendingInstallations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.s.PendingInstallations(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las instalaciones")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// InstallationsByDate lists the installations scheduled on a day
// @Summary Installations by date
// @Tags installations
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param technician_id query int false "Technician ID"
// @Success 200 {array} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Router /v1/installations/by-date [get]
// @Security BearerAuth
func (h *Handler) InstallationsByDate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, err := queryDate(r, "date")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	if date == nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, entity.ErrInvalidArgument, "Fecha requerida")
		return
	}

	techID, err := queryInt64(r, "technician_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	list, err := h.s.InstallationsByDate(ctx, *date, techID)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las instalaciones")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// InstallationCalendar returns a Monday to Sunday week of installations
// @Summary Installation calendar week
// @Tags installations
// @Produce json
// @Param date query string false "Any day of the week, defaults to today"
// @Param offset query int false "Weeks to move from date"
// @Param technician_id query int false "Technician ID"
// @Success 200 {object} entity.CalendarWeek
// @Router /v1/installations/calendar [get]
// @Security BearerAuth
func (h *Handler) InstallationCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, err := queryDate(r, "date")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	techID, err := queryInt64(r, "technician_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	week, err := h.s.InstallationCalendar(ctx, deref(date), offset, techID)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el calendario")
		return
	}

	SendJSON(ctx, w, http.StatusOK, week)
}

// InstallationStats counts installations per status
// @Summary Installation stats
// @Tags installations
// @Produce json
// @Success 200 {object} entity.InstallationStats
// @Router /v1/installations/stats [get]
// @Security BearerAuth
func (h *Handler) InstallationStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.InstallationStats(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las estadísticas")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}

// Installation returns an installation
// @Summary Get installation
// @Tags installations
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.Installation
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id} [get]
// @Security BearerAuth
func (h *Handler) Installation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	inst, err := h.s.Installation(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// CreateInstallation schedules an installation and takes its units from stock
// @Summary Create installation
// @Tags installations
// @Accept json
// @Produce json
// @Param InstallationCreate body entity.InstallationCreate true "Installation"
// @Success 201 {object} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid data or insufficient stock"
// @Router /v1/installations [post]
// @Security BearerAuth
func (h *Handler) CreateInstallation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.InstallationCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	inst, err := h.s.CreateInstallation(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo crear la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, inst)
}

type QuoteRequest struct {
	ProductID  int64             `json:"product_id"`
	Quantity   int               `json:"quantity"`
	Adjustment entity.Adjustment `json:"adjustment"`
}

// QuoteInstallation prices an installation without saving it
// @Summary Quote installation
// @Tags installations
// @Accept json
// @Produce json
// @Param QuoteRequest body QuoteRequest true "Product, quantity and adjustment"
// @Success 200 {object} entity.PriceBreakdown
// @Failure 400 {object} ErrorResponse "Invalid adjustment"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /v1/installations/quote [post]
// @Security BearerAuth
func (h *Handler) QuoteInstallation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuoteRequest

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	quote, err := h.s.QuoteInstallation(ctx, req.ProductID, req.Quantity, req.Adjustment)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo cotizar la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, quote)
}

// UpdateInstallation updates installation fields
// @Summary Update installation
// @Tags installations
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param InstallationUpdate body entity.InstallationUpdate true "Fields to change"
// @Success 200 {object} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateInstallation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.InstallationUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	inst, err := h.s.UpdateInstallation(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

type InstallationStatusRequest struct {
	Status entity.InstallationStatus `json:"status"`
}

// UpdateInstallationStatus changes the installation status
// @Summary Update installation status
// @Tags installations
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param InstallationStatusRequest body InstallationStatusRequest true "New status"
// @Success 200 {object} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id}/status [patch]
// @Security BearerAuth
func (h *Handler) UpdateInstallationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req InstallationStatusRequest

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	inst, err := h.s.UpdateInstallationStatus(ctx, id, req.Status)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el estado")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// UpdateInstallationPayment overwrites the payment fields
// @Summary Update installation payment
// @Tags installations
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param InstallationPaymentUpdate body entity.InstallationPaymentUpdate true "Payment"
// @Success 200 {object} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid payment"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id}/payment [patch]
// @Security BearerAuth
func (h *Handler) UpdateInstallationPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.InstallationPaymentUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	inst, err := h.s.UpdateInstallationPayment(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el pago")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// CompleteInstallation marks an installation as done
// @Summary Complete installation
// @Tags installations
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param InstallationComplete body entity.InstallationComplete false "Closing notes"
// @Success 200 {object} entity.Installation
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id}/complete [post]
// @Security BearerAuth
func (h *Handler) CompleteInstallation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.InstallationComplete

	if r.ContentLength != 0 {
		err = decode(w, r, &req)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
			return
		}
	}

	inst, err := h.s.CompleteInstallation(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo completar la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// StartTimer starts the installation work timer
// @Summary Start timer
// @Tags installations
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.TimerStatus
// @Failure 400 {object} ErrorResponse "Timer already finished"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id}/timer/start [post]
// @Security BearerAuth
func (h *Handler) StartTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	timer, err := h.s.StartTimer(ctx, id, entity.TimerByAdmin)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo iniciar el cronómetro")
		return
	}

	SendJSON(ctx, w, http.StatusOK, timer)
}

// StopTimer stops the installation work timer
// @Summary Stop timer
// @Tags installations
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.TimerStatus
// @Failure 400 {object} ErrorResponse "Timer not started"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id}/timer/stop [post]
// @Security BearerAuth
func (h *Handler) StopTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	timer, err := h.s.StopTimer(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo detener el cronómetro")
		return
	}

	SendJSON(ctx, w, http.StatusOK, timer)
}

// Timer returns the installation timer state
// @Summary Get timer
// @Tags installations
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.TimerStatus
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id}/timer [get]
// @Security BearerAuth
func (h *Handler) Timer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	timer, err := h.s.Timer(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el cronómetro")
		return
	}

	SendJSON(ctx, w, http.StatusOK, timer)
}

// DeleteInstallation deletes an installation and returns its units to stock
// @Summary Delete installation
// @Tags installations
// @Param id path int true "Installation ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/installations/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteInstallation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteInstallation(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo eliminar la instalación")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MediaUploadURL issues a presigned URL to upload installation media
// @Summary Media upload URL
// @Tags installations
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param MediaUploadRequest body entity.MediaUploadRequest true "foto_antes, foto_despues, firma or video"
// @Success 200 {object} entity.MediaUpload
// @Failure 400 {object} ErrorResponse "Invalid file type"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Router /v1/installations/{id}/media/upload-url [post]
// @Security BearerAuth
func (h *Handler) MediaUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.MediaUploadRequest

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	upload, err := h.s.MediaUploadURL(ctx, id, req.FileType)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo generar la URL de carga")
		return
	}

	SendJSON(ctx, w, http.StatusOK, upload)
}
