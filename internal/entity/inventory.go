package entity

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type StockStatus string

const (
	StockCritical StockStatus = "critical"
	StockLow      StockStatus = "low"
	StockOK       StockStatus = "ok"
)

func ClassifyStock(stock, minAlert int) StockStatus {
	switch {
	case stock <= 0:
		return StockCritical
	case stock <= minAlert:
		return StockLow
	}

	return StockOK
}

type MovementType string

const (
	MovementIn         MovementType = "entrada"
	MovementOut        MovementType = "salida"
	MovementAdjustment MovementType = "ajuste"
)

func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut || t == MovementAdjustment
}

// Movement reference types.
const (
	RefInstallation     = "installation"
	RefDistributorSale  = "distributor_sale"
	RefManual           = "manual"
	RefStockAdjustment  = "stock_adjustment"
	RefInstallationVoid = "installation_deleted"
)

type InventoryMovement struct {
	ID            int64        `json:"id"`
	ProductID     int64        `json:"product_id"`
	MovementType  MovementType `json:"movement_type"`
	Quantity      int          `json:"quantity"`
	StockBefore   int          `json:"stock_before"`
	StockAfter    int          `json:"stock_after"`
	ReferenceType *string      `json:"reference_type,omitempty"`
	ReferenceID   *int64       `json:"reference_id,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
	CreatedBy     *string      `json:"created_by,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ProductName   *string      `json:"product_name,omitempty"`
	ProductModel  *string      `json:"product_model,omitempty"`
}

// StockChange describes a stock mutation to be applied atomically with its movement record.
type StockChange struct {
	ProductID     int64
	Type          MovementType
	Quantity      int
	ReferenceType string
	ReferenceID   *int64
	Notes         *string
	CreatedBy     *string
}

// Apply computes the new stock and the signed quantity recorded on the movement.
// entrada adds, salida subtracts and may not go below zero, ajuste sets the stock.
func (c StockChange) Apply(stock int) (int, int, error) {
	switch c.Type {
	case MovementIn:
		q := abs(c.Quantity)
		return stock + q, q, nil
	case MovementOut:
		q := abs(c.Quantity)
		if stock-q < 0 {
			return stock, 0, fmt.Errorf("%w: available %d", ErrInsufficientStock, stock)
		}

		return stock - q, -q, nil
	case MovementAdjustment:
		if c.Quantity < 0 {
			return stock, 0, ErrInvalidArgument
		}

		return c.Quantity, c.Quantity - stock, nil
	}

	return stock, 0, ErrInvalidArgument
}

// InstallationStockChanges are the movements that keep stock in line when an
// installation moves from oldQty units of oldProduct to newQty units of newProduct.
func InstallationStockChanges(installationID, oldProduct int64, oldQty int, newProduct int64, newQty int) []StockChange {
	notes := fmt.Sprintf("Instalación #%d editada", installationID)
	ref := func(productID int64, t MovementType, qty int) StockChange {
		return StockChange{
			ProductID:     productID,
			Type:          t,
			Quantity:      qty,
			ReferenceType: RefInstallation,
			ReferenceID:   &installationID,
			Notes:         &notes,
		}
	}

	switch {
	case oldProduct != newProduct:
		return []StockChange{
			ref(oldProduct, MovementIn, oldQty),
			ref(newProduct, MovementOut, newQty),
		}
	case newQty > oldQty:
		return []StockChange{ref(newProduct, MovementOut, newQty-oldQty)}
	case newQty < oldQty:
		return []StockChange{ref(newProduct, MovementIn, oldQty-newQty)}
	}

	return nil
}

type MovementCreate struct {
	ProductID    int64        `json:"product_id"`
	MovementType MovementType `json:"movement_type"`
	Quantity     int          `json:"quantity"`
	Notes        *string      `json:"notes,omitempty"`
	CreatedBy    *string      `json:"created_by,omitempty"`
}

func (c MovementCreate) Validate() error {
	if c.ProductID <= 0 || !c.MovementType.IsValid() {
		return ErrInvalidArgument
	}

	if c.MovementType != MovementAdjustment && c.Quantity == 0 {
		return ErrInvalidQuantity
	}

	return nil
}

type StockAdjustment struct {
	ProductID int64   `json:"product_id"`
	NewStock  int     `json:"new_stock"`
	Reason    *string `json:"reason,omitempty"`
	CreatedBy *string `json:"created_by,omitempty"`
}

func (a StockAdjustment) Validate() error {
	if a.ProductID <= 0 || a.NewStock < 0 {
		return ErrInvalidArgument
	}

	return nil
}

type MovementFilter struct {
	ProductID *int64
	Since     *time.Time
	Limit     uint64
}

type AlertCode string

const (
	AlertOutOfStock AlertCode = "out_of_stock"
	AlertLowStock   AlertCode = "low_stock"
	AlertRestock    AlertCode = "restock"
	AlertNoSales    AlertCode = "no_sales"
	AlertSlowMoving AlertCode = "slow_moving"
)

type InventoryAlert struct {
	Code    AlertCode `json:"code"`
	Message string    `json:"message"`
}

// ProductSales counts completed installations of a product.
type ProductSales struct {
	ProductID int64
	Sold30d   int
	Sold7d    int
}

type ProductInventory struct {
	ID            int64            `json:"id"`
	SKU           string           `json:"sku"`
	Name          string           `json:"name"`
	Model         string           `json:"model"`
	Stock         int              `json:"stock"`
	MinStockAlert int              `json:"min_stock_alert"`
	Price         decimal.Decimal  `json:"price"`
	IsActive      bool             `json:"is_active"`
	ImageURL      *string          `json:"image_url,omitempty"`
	StockStatus   StockStatus      `json:"stock_status"`
	TotalSold30d  int              `json:"total_sold_30d"`
	TotalSold7d   int              `json:"total_sold_7d"`
	AvgDailySales float64          `json:"avg_daily_sales"`
	DaysOfStock   *int             `json:"days_of_stock,omitempty"`
	Alerts        []InventoryAlert `json:"alerts"`
}

func NewProductInventory(p Product, s ProductSales) ProductInventory {
	pi := ProductInventory{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Model:         p.Model,
		Stock:         p.Stock,
		MinStockAlert: p.MinStockAlert,
		Price:         p.Price,
		IsActive:      p.IsActive,
		ImageURL:      p.ImageURL,
		StockStatus:   p.StockStatus(),
		TotalSold30d:  s.Sold30d,
		TotalSold7d:   s.Sold7d,
		Alerts:        []InventoryAlert{},
	}

	avg := float64(s.Sold30d) / 30
	pi.AvgDailySales = roundTo(avg, 2)

	if avg > 0 && p.Stock > 0 {
		days := int(float64(p.Stock) / avg)
		pi.DaysOfStock = &days
	}

	switch pi.StockStatus {
	case StockCritical:
		pi.Alerts = append(pi.Alerts, InventoryAlert{Code: AlertOutOfStock, Message: "Sin stock: producto agotado"})
	case StockLow:
		pi.Alerts = append(pi.Alerts, InventoryAlert{
			Code:    AlertLowStock,
			Message: fmt.Sprintf("Stock bajo: solo quedan %d unidades", p.Stock),
		})
	}

	if pi.DaysOfStock != nil && *pi.DaysOfStock <= 7 {
		pi.Alerts = append(pi.Alerts, InventoryAlert{
			Code:    AlertRestock,
			Message: fmt.Sprintf("Reabastecimiento: stock para ~%d dias", *pi.DaysOfStock),
		})
	}

	switch {
	case s.Sold30d == 0 && p.Stock > 0:
		pi.Alerts = append(pi.Alerts, InventoryAlert{Code: AlertNoSales, Message: "Producto lento: sin ventas en 30 dias"})
	case s.Sold30d <= 2 && p.Stock > 10:
		pi.Alerts = append(pi.Alerts, InventoryAlert{
			Code:    AlertSlowMoving,
			Message: fmt.Sprintf("Movimiento lento: solo %d ventas en 30 dias", s.Sold30d),
		})
	}

	return pi
}

// SortInventory puts products with alerts first, then lower stock first.
func SortInventory(items []ProductInventory) {
	sort.SliceStable(items, func(i, j int) bool {
		ai, aj := len(items[i].Alerts) > 0, len(items[j].Alerts) > 0
		if ai != aj {
			return ai
		}

		return items[i].Stock < items[j].Stock
	})
}

type InventorySummary struct {
	TotalProducts       int             `json:"total_products"`
	TotalStockValue     decimal.Decimal `json:"total_stock_value"`
	ProductsLowStock    int             `json:"products_low_stock"`
	ProductsOutOfStock  int             `json:"products_out_of_stock"`
	ProductsSlowMoving  int             `json:"products_slow_moving"`
	TotalMovementsToday int             `json:"total_movements_today"`
	TotalMovementsWeek  int             `json:"total_movements_week"`
}

// BuildInventorySummary aggregates active products. sold maps product id to 30-day sales.
func BuildInventorySummary(products []Product, sold map[int64]int, movementsToday, movementsWeek int) InventorySummary {
	s := InventorySummary{
		TotalStockValue:     decimal.Zero,
		TotalMovementsToday: movementsToday,
		TotalMovementsWeek:  movementsWeek,
	}

	for _, p := range products {
		s.TotalProducts++
		s.TotalStockValue = s.TotalStockValue.Add(p.StockValue())

		switch p.StockStatus() {
		case StockCritical:
			s.ProductsOutOfStock++
		case StockLow:
			s.ProductsLowStock++
		}

		if p.Stock > 0 && sold[p.ID] <= 2 {
			s.ProductsSlowMoving++
		}
	}

	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
