package api

import (
	"net/http"

	"github.com/zafesys/suite/internal/entity"
)

// Products lists products
// @Summary List products
// @Tags products
// @Produce json
// @Param active_only query bool false "Only active products" default(true)
// @Param skip query int false "Skip"
// @Param limit query int false "Limit"
// @Success 200 {array} entity.Product
// @Router /v1/products [get]
// @Security BearerAuth
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	activeOnly, err := queryBool(r, "active_only", true)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	products, err := h.s.Products(ctx, entity.ProductFilter{ActiveOnly: activeOnly, Page: page})
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los productos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, products)
}

// SearchProducts searches products by name, model or SKU
// @Summary Search products
// @Tags products
// @Produce json
// @Param q query string true "At least 2 characters"
// @Success 200 {array} entity.Product
// @Failure 400 {object} ErrorResponse "Query too short"
// @Router /v1/products/search [get]
// @Security BearerAuth
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.SearchProducts(ctx, r.URL.Query().Get("q"))
	if err != nil {
		SendErr(ctx, w, err, "No se pudo buscar productos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, products)
}

// LowStockProducts lists products at or below their alert threshold
// @Summary Low stock products
// @Tags products
// @Produce json
// @Success 200 {array} entity.Product
// @Router /v1/products/low-stock [get]
// @Security BearerAuth
func (h *Handler) LowStockProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.s.LowStockProducts(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los productos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, products)
}

// Product returns a product
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} entity.Product
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /v1/products/{id} [get]
// @Security BearerAuth
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	product, err := h.s.Product(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el producto")
		return
	}

	SendJSON(ctx, w, http.StatusOK, product)
}

// CreateProduct creates a product
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param ProductCreate body entity.ProductCreate true "Product"
// @Success 201 {object} entity.Product
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Failure 409 {object} ErrorResponse "SKU already registered"
// @Router /v1/products [post]
// @Security BearerAuth
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.ProductCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	product, err := h.s.CreateProduct(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo crear el producto")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, product)
}

// UpdateProduct updates product fields
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param ProductUpdate body entity.ProductUpdate true "Fields to change"
// @Success 200 {object} entity.Product
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /v1/products/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req entity.ProductUpdate

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	product, err := h.s.UpdateProduct(ctx, id, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el producto")
		return
	}

	SendJSON(ctx, w, http.StatusOK, product)
}

type ProductStockRequest struct {
	Stock int `json:"stock"`
}

// SetProductStock overwrites the product stock
// @Summary Set product stock
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param ProductStockRequest body ProductStockRequest true "New stock"
// @Success 200 {object} entity.Product
// @Failure 400 {object} ErrorResponse "Negative stock"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Router /v1/products/{id}/stock [patch]
// @Security BearerAuth
func (h *Handler) SetProductStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	var req ProductStockRequest

	err = decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	product, err := h.s.SetProductStock(ctx, id, req.Stock)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo actualizar el stock")
		return
	}

	SendJSON(ctx, w, http.StatusOK, product)
}

// DeleteProduct deletes a product
// @Summary Delete product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 409 {object} ErrorResponse "Product is referenced"
// @Router /v1/products/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	err = h.s.DeleteProduct(ctx, id)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo eliminar el producto")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// InventorySummary returns stock totals for the dashboard
// @Summary Inventory summary
// @Tags inventory
// @Produce json
// @Success 200 {object} entity.InventorySummary
// @Router /v1/inventory/summary [get]
// @Security BearerAuth
func (h *Handler) InventorySummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.s.InventorySummary(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el resumen")
		return
	}

	SendJSON(ctx, w, http.StatusOK, summary)
}

// ProductInventory lists products with stock status, sales and alerts
// @Summary Product inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} entity.ProductInventory
// @Router /v1/inventory/products [get]
// @Security BearerAuth
func (h *Handler) ProductInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.s.ProductInventory(ctx)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo obtener el inventario")
		return
	}

	SendJSON(ctx, w, http.StatusOK, items)
}

// Movements lists stock movements, newest first
// @Summary Stock movements
// @Tags inventory
// @Produce json
// @Param product_id query int false "Product ID"
// @Param since query string false "RFC 3339 time"
// @Param limit query int false "Limit" default(50)
// @Success 200 {array} entity.InventoryMovement
// @Router /v1/inventory/movements [get]
// @Security BearerAuth
func (h *Handler) Movements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := queryInt64(r, "product_id")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	since, err := queryTime(r, "since")
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	page, err := queryPage(r)
	if err != nil {
		SendErr(ctx, w, err, "")
		return
	}

	movements, err := h.s.Movements(ctx, entity.MovementFilter{ProductID: productID, Since: since, Limit: page.Limit})
	if err != nil {
		SendErr(ctx, w, err, "No se pudieron obtener los movimientos")
		return
	}

	SendJSON(ctx, w, http.StatusOK, movements)
}

// CreateMovement records a manual stock movement
// @Summary Create stock movement
// @Tags inventory
// @Accept json
// @Produce json
// @Param MovementCreate body entity.MovementCreate true "Movement"
// @Success 201 {object} entity.InventoryMovement
// @Failure 400 {object} ErrorResponse "Insufficient stock"
// @Router /v1/inventory/movements [post]
// @Security BearerAuth
func (h *Handler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.MovementCreate

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	m, err := h.s.CreateMovement(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo registrar el movimiento")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, m)
}

// AdjustStock sets a product stock to a counted value
// @Summary Adjust stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param StockAdjustment body entity.StockAdjustment true "Adjustment"
// @Success 201 {object} entity.InventoryMovement
// @Failure 400 {object} ErrorResponse "Invalid data"
// @Router /v1/inventory/adjust [post]
// @Security BearerAuth
func (h *Handler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.StockAdjustment

	err := decode(w, r, &req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "JSON inválido")
		return
	}

	m, err := h.s.AdjustStock(ctx, req)
	if err != nil {
		SendErr(ctx, w, err, "No se pudo ajustar el stock")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, m)
}
