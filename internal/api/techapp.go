package api

import (
	"context"
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

func technicianID(ctx context.Context) int64 {
	c, _ := entity.TechnicianFromCtx(ctx)
	return c.TechnicianID
}

// MyInstallations returns the technician's open installations for a day
// @Summary My installations
// @Tags technician-app
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} entity.TechnicianDaySchedule
// @Router /v1/tech/my-installations [get]
// @Security TechnicianAuth
func (h *Handler) MyInstallations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	date, err := queryDate(r, "date")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	schedule, err := h.s.MyInstallations(ctx, technicianID(ctx), deref(date))
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las instalaciones")
		return
	}

	SendJSON(ctx, w, http.StatusOK, schedule)
}

// MyInstallation returns one of the technician's installations
// @Summary My installation
// @Tags technician-app
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.Installation
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/tech/installations/{id} [get]
// @Security TechnicianAuth
func (h *Handler) MyInstallation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	inst, err := h.s.MyInstallation(ctx, technicianID(ctx), id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// SetMyInstallationStatus moves an installation through the field states
// @Summary Update my installation status
// @Tags technician-app
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param InstallationStatusRequest body InstallationStatusRequest true "en_camino, en_progreso or completada"
// @Success 200 {object} entity.Installation
// @Failure 400 {object} ErrorResponse "Status not allowed"
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Router /v1/tech/installations/{id}/status [patch]
// @Security TechnicianAuth
func (h *Handler) SetMyInstallationStatus(w http.ResponseWriter, r *http.Request) {
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

	inst, err := h.s.SetMyInstallationStatus(ctx, technicianID(ctx), id, req.Status)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el estado")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// ConfirmPayment records a payment collected on site
// @Summary Confirm payment
// @Tags technician-app
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param PaymentConfirmation body entity.PaymentConfirmation true "Amount and method"
// @Success 200 {object} entity.Installation
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Router /v1/tech/installations/{id}/confirm-payment [post]
// @Security TechnicianAuth
func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.PaymentConfirmation

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	inst, err := h.s.ConfirmPayment(ctx, technicianID(ctx), id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo confirmar el pago")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// CompleteMyInstallation closes an installation from the field
// @Summary Complete my installation
// @Tags technician-app
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param InstallationComplete body entity.InstallationComplete false "Closing notes"
// @Success 200 {object} entity.Installation
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Router /v1/tech/installations/{id}/complete [post]
// @Security TechnicianAuth
func (h *Handler) CompleteMyInstallation(w http.ResponseWriter, r *http.Request) {
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

	inst, err := h.s.CompleteMyInstallation(ctx, technicianID(ctx), id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo completar la instalación")
		return
	}

	SendJSON(ctx, w, http.StatusOK, inst)
}

// StartMyTimer starts the work timer on an assigned installation
// @Summary Start my timer
// @Tags technician-app
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.TimerStatus
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Router /v1/tech/installations/{id}/timer/start [post]
// @Security TechnicianAuth
func (h *Handler) StartMyTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	timer, err := h.s.StartMyTimer(ctx, technicianID(ctx), id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo iniciar el cronómetro")
		return
	}

	SendJSON(ctx, w, http.StatusOK, timer)
}

// StopMyTimer stops the work timer on an assigned installation
// @Summary Stop my timer
// @Tags technician-app
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.TimerStatus
// @Failure 400 {object} ErrorResponse "Timer not started"
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Router /v1/tech/installations/{id}/timer/stop [post]
// @Security TechnicianAuth
func (h *Handler) StopMyTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	timer, err := h.s.StopMyTimer(ctx, technicianID(ctx), id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo detener el cronómetro")
		return
	}

	SendJSON(ctx, w, http.StatusOK, timer)
}

// MyTimer returns the timer of an assigned installation
// @Summary My timer
// @Tags technician-app
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.TimerStatus
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Router /v1/tech/installations/{id}/timer [get]
// @Security TechnicianAuth
func (h *Handler) MyTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	timer, err := h.s.MyTimer(ctx, technicianID(ctx), id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el cronómetro")
		return
	}

	SendJSON(ctx, w, http.StatusOK, timer)
}

// MyMediaUploadURL issues a presigned upload URL for an assigned installation
// @Summary My media upload URL
// @Tags technician-app
// @Accept json
// @Produce json
// @Param id path int true "Installation ID"
// @Param MediaUploadRequest body entity.MediaUploadRequest true "foto_antes, foto_despues, firma or video"
// @Success 200 {object} entity.MediaUpload
// @Failure 400 {object} ErrorResponse "Invalid file type"
// @Failure 403 {object} ErrorResponse "Installation assigned to someone else"
// @Failure 503 {object} ErrorResponse "Storage not configured"
// @Router /v1/tech/installations/{id}/media/upload-url [post]
// @Security TechnicianAuth
func (h *Handler) MyMediaUploadURL(w http.ResponseWriter, r *http.Request) {
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

	upload, err := h.s.MyMediaUploadURL(ctx, technicianID(ctx), id, req.FileType)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo generar la URL de carga")
		return
	}

	SendJSON(ctx, w, http.StatusOK, upload)
}

// SetMyAvailability toggles the technician's availability
// @Summary Set my availability
// @Tags technician-app
// @Accept json
// @Produce json
// @Param AvailabilityRequest body AvailabilityRequest true "Availability"
// @Success 200 {object} entity.Technician
// @Router /v1/tech/availability [patch]
// @Security TechnicianAuth
func (h *Handler) SetMyAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AvailabilityRequest

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	t, err := h.s.SetMyAvailability(ctx, technicianID(ctx), req.IsAvailable)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar la disponibilidad")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}

// MyProfile returns the authenticated technician
// @Summary My profile
// @Tags technician-app
// @Produce json
// @Success 200 {object} entity.Technician
// @Router /v1/tech/profile [get]
// @Security TechnicianAuth
func (h *Handler) MyProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	t, err := h.s.MyProfile(ctx, technicianID(ctx))
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el perfil")
		return
	}

	SendJSON(ctx, w, http.StatusOK, t)
}
