package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Leads lists leads
// @Summary List leads
// @Tags leads
// @Produce json
// @Param status query string false "Lead status"
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {array} entity.Lead
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /v1/leads [get]
// @Security BearerAuth
func (h *Handler) Leads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f := entity.LeadFilter{Page: page}

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.LeadStatus(v)
		f.Status = &status
	}

	leads, err := h.s.Leads(ctx, f)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los leads")
		return
	}

	SendJSON(ctx, w, http.StatusOK, leads)
}

// LeadKanban returns the lead board grouped by status
// @Summary Lead kanban board
// @Tags leads
// @Produce json
// @Success 200 {object} entity.KanbanBoard
// @Router /v1/leads/kanban [get]
// @Security BearerAuth
func (h *Handler) LeadKanban(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	board, err := h.s.LeadKanban(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el tablero")
		return
	}

	SendJSON(ctx, w, http.StatusOK, board)
}

type KanbanMoveRequest struct {
	LeadID int64             `json:"lead_id"`
	Status entity.LeadStatus `json:"status"`
}

// KanbanMoveFailure carries the current board so the client can discard its optimistic move.
type KanbanMoveFailure struct {
	ErrorResponse
	Board entity.KanbanBoard `json:"board,omitempty"`
}

// MoveLead moves a lead card to another column
// @Summary Move lead on kanban
// @Tags leads
// @Accept json
// @Produce json
// @Param KanbanMoveRequest body KanbanMoveRequest true "Lead and target status"
// @Success 200 {object} entity.KanbanBoard
// @Failure 400 {object} KanbanMoveFailure "Invalid status"
// @Failure 404 {object} KanbanMoveFailure "Lead not found"
// @Router /v1/leads/kanban/move [post]
// @Security BearerAuth
func (h *Handler) MoveLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req KanbanMoveRequest

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	board, err := h.s.MoveLead(ctx, req.LeadID, req.Status)
	if err != nil {
		code, msg := errStatus(err)
		if code == http.StatusInternalServerError {
			msg = "No se pudo mover el lead"
		}

		SendJSON(ctx, w, code, KanbanMoveFailure{
			ErrorResponse: ErrorResponse{Message: msg, Error: err.Error()},
			Board:         board,
		})

		return
	}

	SendJSON(ctx, w, http.StatusOK, board)
}

// LeadStats counts leads per status
// @Summary Lead stats
// @Tags leads
// @Produce json
// @Success 200 {object} entity.LeadStats
// @Router /v1/leads/stats [get]
// @Security BearerAuth
func (h *Handler) LeadStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.s.LeadStats(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las estadísticas")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stats)
}

// Lead returns a lead
// @Summary Get lead
// @Tags leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} entity.Lead
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Router /v1/leads/{id} [get]
// @Security BearerAuth
func (h *Handler) Lead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	lead, err := h.s.Lead(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el lead")
		return
	}

	SendJSON(ctx, w, http.StatusOK, lead)
}

// CreateLead creates a lead
// @Summary Create lead
// @Tags leads
// @Accept json
// @Produce json
// @Param LeadCreate body entity.LeadCreate true "Lead"
// @Success 201 {object} entity.Lead
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Router /v1/leads [post]
// @Security BearerAuth
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.LeadCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	lead, err := h.s.CreateLead(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo crear el lead")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, lead)
}

// UpdateLead updates lead fields
// @Summary Update lead
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param LeadUpdate body entity.LeadUpdate true "Fields to change"
// @Success 200 {object} entity.Lead
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Router /v1/leads/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.LeadUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	lead, err := h.s.UpdateLead(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el lead")
		return
	}

	SendJSON(ctx, w, http.StatusOK, lead)
}

type LeadStatusRequest struct {
	Status entity.LeadStatus `json:"status"`
}

// UpdateLeadStatus changes the lead status
// @Summary Update lead status
// @Tags leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param LeadStatusRequest body LeadStatusRequest true "New status"
// @Success 200 {object} entity.Lead
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Router /v1/leads/{id}/status [patch]
// @Security BearerAuth
func (h *Handler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req LeadStatusRequest

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	lead, err := h.s.UpdateLeadStatus(ctx, id, req.Status)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el estado")
		return
	}

	SendJSON(ctx, w, http.StatusOK, lead)
}

// DeleteLead deletes a lead
// @Summary Delete lead
// @Tags leads
// @Param id path int true "Lead ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Failure 409 {object} ErrorResponse "Lead has installations"
// @Router /v1/leads/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteLead(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo eliminar el lead")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConvertLead creates a customer from a lead
// @Summary Convert lead to customer
// @Tags customers
// @Produce json
// @Param id path int true "Lead ID"
// @Success 201 {object} entity.Customer
// @Failure 404 {object} ErrorResponse "Lead not found"
// @Router /v1/customers/from-lead/{id} [post]
// @Security BearerAuth
func (h *Handler) ConvertLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	customer, err := h.s.ConvertLead(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo convertir el lead")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, customer)
}
