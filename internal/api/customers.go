package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Customers lists customers
// @Summary List customers
// @Tags customers
// @Produce json
// @Param include_inactive query bool false "Include deactivated customers"
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {array} entity.Customer
// @Router /v1/customers [get]
// @Security BearerAuth
func (h *Handler) Customers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	includeInactive, err := queryBool(r, "include_inactive", false)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	customers, err := h.s.Customers(ctx, entity.CustomerFilter{IncludeInactive: includeInactive, Page: page})
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los clientes")
		return
	}

	SendJSON(ctx, w, http.StatusOK, customers)
}

// Customer returns a customer
// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} entity.Customer
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /v1/customers/{id} [get]
// @Security BearerAuth
func (h *Handler) Customer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	customer, err := h.s.Customer(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el cliente")
		return
	}

	SendJSON(ctx, w, http.StatusOK, customer)
}

// CreateCustomer creates a customer
// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param CustomerCreate body entity.CustomerCreate true "Customer"
// @Success 201 {object} entity.Customer
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Router /v1/customers [post]
// @Security BearerAuth
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.CustomerCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	customer, err := h.s.CreateCustomer(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo crear el cliente")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, customer)
}

// UpdateCustomer updates customer fields
// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param CustomerUpdate body entity.CustomerUpdate true "Fields to change"
// @Success 200 {object} entity.Customer
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /v1/customers/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.CustomerUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	customer, err := h.s.UpdateCustomer(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el cliente")
		return
	}

	SendJSON(ctx, w, http.StatusOK, customer)
}

// DeleteCustomer deactivates a customer
// @Summary Deactivate customer
// @Tags customers
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Customer not found"
// @Router /v1/customers/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteCustomer(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo desactivar el cliente")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
