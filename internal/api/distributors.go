package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Distributors lists distributors with their sales totals
// @Summary List distributors
// @Tags distributors
// @Produce json
// @Param include_inactive query bool false "Include deactivated distributors"
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {array} entity.DistributorWithTotals
// @Router /v1/distributors [get]
// @Security BearerAuth
func (h *Handler) Distributors(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.s.Distributors(ctx, entity.DistributorFilter{IncludeInactive: includeInactive, Page: page})
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los distribuidores")
		return
	}

	SendJSON(ctx, w, http.StatusOK, list)
}

// Distributor returns a distributor with its sales
// @Summary Get distributor
// @Tags distributors
// @Produce json
// @Param id path int true "Distributor ID"
// @Success 200 {object} entity.DistributorWithSales
// @Failure 404 {object} ErrorResponse "Distributor not found"
// @Router /v1/distributors/{id} [get]
// @Security BearerAuth
func (h *Handler) Distributor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	d, err := h.s.Distributor(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el distribuidor")
		return
	}

	SendJSON(ctx, w, http.StatusOK, d)
}

// CreateDistributor creates a distributor
// @Summary Create distributor
// @Tags distributors
// @Accept json
// @Produce json
// @Param DistributorCreate body entity.DistributorCreate true "Distributor"
// @Success 201 {object} entity.Distributor
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Router /v1/distributors [post]
// @Security BearerAuth
func (h *Handler) CreateDistributor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.DistributorCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	d, err := h.s.CreateDistributor(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo crear el distribuidor")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, d)
}

// UpdateDistributor updates distributor fields
// @Summary Update distributor
// @Tags distributors
// @Accept json
// @Produce json
// @Param id path int true "Distributor ID"
// @Param DistributorUpdate body entity.DistributorUpdate true "Fields to change"
// @Success 200 {object} entity.Distributor
// @Failure 404 {object} ErrorResponse "Distributor not found"
// @Router /v1/distributors/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateDistributor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.DistributorUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	d, err := h.s.UpdateDistributor(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el distribuidor")
		return
	}

	SendJSON(ctx, w, http.StatusOK, d)
}

// DeleteDistributor deactivates a distributor
// @Summary Deactivate distributor
// @Tags distributors
// @Param id path int true "Distributor ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Distributor not found"
// @Router /v1/distributors/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteDistributor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteDistributor(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo desactivar el distribuidor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Sales lists distributor sales
// @Summary List distributor sales
// @Tags distributors
// @Produce json
// @Param distributor_id query int false "Distributor ID"
// @Param product_id query int false "Product ID"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {array} entity.DistributorSale
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /v1/distributors/sales [get]
// @Security BearerAuth
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f := entity.SaleFilter{Page: page}

	f.DistributorID, err = queryInt64(r, "distributor_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.ProductID, err = queryInt64(r, "product_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.From, err = queryDate(r, "from")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	f.To, err = queryDate(r, "to")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	sales, err := h.s.Sales(ctx, f)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las ventas")
		return
	}

	SendJSON(ctx, w, http.StatusOK, sales)
}

// CreateSale records a sale to a distributor and takes the units from stock
// @Summary Create distributor sale
// @Tags distributors
// @Accept json
// @Produce json
// @Param DistributorSaleCreate body entity.DistributorSaleCreate true "Sale"
// @Success 201 {object} entity.DistributorSale
// @Failure 400 {object} ErrorResponse "Invalid data or insufficient stock"
// @Router /v1/distributors/sales [post]
// @Security BearerAuth
func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.DistributorSaleCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	sale, err := h.s.CreateSale(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo registrar la venta")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, sale)
}

// UpdateSale updates a distributor sale
// @Summary Update distributor sale
// @Tags distributors
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param DistributorSaleUpdate body entity.DistributorSaleUpdate true "Fields to change"
// @Success 200 {object} entity.DistributorSale
// @Failure 400 {object} ErrorResponse "Insufficient stock"
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Router /v1/distributors/sales/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.DistributorSaleUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	sale, err := h.s.UpdateSale(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar la venta")
		return
	}

	SendJSON(ctx, w, http.StatusOK, sale)
}

// DeleteSale deletes a distributor sale and returns its units to stock
// @Summary Delete distributor sale
// @Tags distributors
// @Param id path int true "Sale ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Sale not found"
// @Router /v1/distributors/sales/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteSale(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo eliminar la venta")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MonthlySales returns the sales chart by month
// @Summary Monthly distributor sales
// @Tags distributors
// @Produce json
// @Param distributor_id query int false "Distributor ID"
// @Param months query int false "Months back, at most 24" default(6)
// @Success 200 {array} entity.MonthlySales
// @Router /v1/distributors/sales/monthly [get]
// @Security BearerAuth
func (h *Handler) MonthlySales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	distributorID, err := queryInt64(r, "distributor_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	months, err := queryInt(r, "months", 0)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	chart, err := h.s.MonthlySales(ctx, distributorID, months)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener las ventas")
		return
	}

	SendJSON(ctx, w, http.StatusOK, chart)
}
