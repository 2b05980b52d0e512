package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                int64            `json:"id"`
	SKU               string           `json:"sku"`
	Name              string           `json:"name"`
	Description       *string          `json:"description,omitempty"`
	Model             string           `json:"model"`
	Category          string           `json:"category"`
	Price             decimal.Decimal  `json:"price"`
	InstallationPrice decimal.Decimal  `json:"installation_price"`
	SupplierCost      *decimal.Decimal `json:"supplier_cost,omitempty"`
	Stock             int              `json:"stock"`
	MinStockAlert     int              `json:"min_stock_alert"`
	Features          *string          `json:"features,omitempty"`
	ImageURL          *string          `json:"image_url,omitempty"`
	IsActive          bool             `json:"is_active"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         *time.Time       `json:"updated_at,omitempty"`
}

const DefaultProductCategory = "silver"

type ProductCreate struct {
	SKU               string           `json:"sku"`
	Name              string           `json:"name"`
	Description       *string          `json:"description,omitempty"`
	Model             string           `json:"model"`
	Category          string           `json:"category"`
	Price             decimal.Decimal  `json:"price"`
	InstallationPrice decimal.Decimal  `json:"installation_price"`
	SupplierCost      *decimal.Decimal `json:"supplier_cost,omitempty"`
	Stock             int              `json:"stock"`
	MinStockAlert     *int             `json:"min_stock_alert,omitempty"`
	Features          *string          `json:"features,omitempty"`
	ImageURL          *string          `json:"image_url,omitempty"`
}

func (c *ProductCreate) Validate() error {
	if c.SKU == "" || c.Name == "" || c.Model == "" {
		return ErrInvalidArgument
	}

	if c.Price.IsNegative() || c.InstallationPrice.IsNegative() || c.Stock < 0 {
		return ErrInvalidArgument
	}

	if c.Category == "" {
		c.Category = DefaultProductCategory
	}

	if c.MinStockAlert == nil {
		def := 5
		c.MinStockAlert = &def
	}

	return nil
}

type ProductUpdate struct {
	SKU               *string          `json:"sku,omitempty"`
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Model             *string          `json:"model,omitempty"`
	Category          *string          `json:"category,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	InstallationPrice *decimal.Decimal `json:"installation_price,omitempty"`
	SupplierCost      *decimal.Decimal `json:"supplier_cost,omitempty"`
	MinStockAlert     *int             `json:"min_stock_alert,omitempty"`
	Features          *string          `json:"features,omitempty"`
	ImageURL          *string          `json:"image_url,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
}

func (u ProductUpdate) Validate() error {
	if u.Price != nil && u.Price.IsNegative() {
		return ErrInvalidArgument
	}

	if u.InstallationPrice != nil && u.InstallationPrice.IsNegative() {
		return ErrInvalidArgument
	}

	if u.MinStockAlert != nil && *u.MinStockAlert < 0 {
		return ErrInvalidArgument
	}

	return nil
}

func (u ProductUpdate) Apply(p *Product) {
	setIf(&p.SKU, u.SKU)
	setIf(&p.Name, u.Name)
	setPtrIf(&p.Description, u.Description)
	setIf(&p.Model, u.Model)
	setIf(&p.Category, u.Category)
	setIf(&p.Price, u.Price)
	setIf(&p.InstallationPrice, u.InstallationPrice)
	setPtrIf(&p.SupplierCost, u.SupplierCost)
	setIf(&p.MinStockAlert, u.MinStockAlert)
	setPtrIf(&p.Features, u.Features)
	setPtrIf(&p.ImageURL, u.ImageURL)
	setIf(&p.IsActive, u.IsActive)
}

type ProductFilter struct {
	ActiveOnly bool
	Search     string
	Page       Page
}

// StockStatus classifies the product stock level.
func (p Product) StockStatus() StockStatus {
	return ClassifyStock(p.Stock, p.MinStockAlert)
}

// StockValue is price × stock.
func (p Product) StockValue() decimal.Decimal {
	if p.Stock <= 0 {
		return decimal.Zero
	}

	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
