package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// WarehouseStaff lists the users that can prepare and deliver orders
// @Summary Warehouse staff
// @Tags warehouse
// @Produce json
// @Success 200 {array} entity.User
// @Router /v1/warehouse/users [get]
// @Security BearerAuth
func (h *Handler) WarehouseStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.WarehouseStaff(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el personal de bodega")
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// WarehouseOrders lists the orders of open installations
// @Summary Warehouse orders
// @Tags warehouse
// @Produce json
// @Param start_date query string false "First day, YYYY-MM-DD. Defaults to today"
// @Param end_date query string false "Last day, YYYY-MM-DD. Defaults to start_date"
// @Param status query string false "Warehouse status"
// @Success 200 {array} entity.WarehouseOrder
// @Failure 400 {object} ErrorResponse "Invalid range"
// @Router /v1/warehouse/orders [get]
// @Security BearerAuth
func (h *Handler) WarehouseOrders(w http.ResponseWriter, r *http.Request) {
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

	f := entity.WarehouseOrderFilter{From: deref(start), To: deref(end)}

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.WarehouseStatus(v)
		f.Status = &status
	}

	orders, err := h.s.WarehouseOrders(ctx, f)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los pedidos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, orders)
}

// WarehouseOrder returns the order of an installation
// @Summary Get warehouse order
// @Tags warehouse
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.WarehouseOrder
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/warehouse/orders/{id} [get]
// @Security BearerAuth
func (h *Handler) WarehouseOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	order, err := h.s.WarehouseOrder(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el pedido")
		return
	}

	SendJSON(ctx, w, http.StatusOK, order)
}

// PrepareOrder marks an order as prepared by the caller
// @Summary Prepare order
// @Tags warehouse
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.WarehouseOrder
// @Failure 400 {object} ErrorResponse "Order already delivered"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/warehouse/orders/{id}/prepare [patch]
// @Security BearerAuth
func (h *Handler) PrepareOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	order, err := h.s.PrepareOrder(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo preparar el pedido")
		return
	}

	SendJSON(ctx, w, http.StatusOK, order)
}

// DeliverOrder marks a prepared order as delivered to the technician
// @Summary Deliver order
// @Tags warehouse
// @Produce json
// @Param id path int true "Installation ID"
// @Success 200 {object} entity.WarehouseOrder
// @Failure 400 {object} ErrorResponse "Order not prepared"
// @Failure 404 {object} ErrorResponse "Installation not found"
// @Router /v1/warehouse/orders/{id}/deliver [patch]
// @Security BearerAuth
func (h *Handler) DeliverOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	order, err := h.s.DeliverOrder(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo entregar el pedido")
		return
	}

	SendJSON(ctx, w, http.StatusOK, order)
}
