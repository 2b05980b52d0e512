package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Distributor struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	CompanyName        *string         `json:"company_name,omitempty"`
	NIT                *string         `json:"nit,omitempty"`
	Phone              string          `json:"phone"`
	Email              *string         `json:"email,omitempty"`
	Address            *string         `json:"address,omitempty"`
	City               *string         `json:"city,omitempty"`
	Zone               *string         `json:"zone,omitempty"`
	ContactPerson      *string         `json:"contact_person,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          *time.Time      `json:"updated_at,omitempty"`
}

// SalesTotals aggregates a distributor's ledger.
type SalesTotals struct {
	TotalSales decimal.Decimal `json:"total_sales"`
	TotalUnits int             `json:"total_units"`
}

type DistributorWithTotals struct {
	Distributor
	SalesTotals
}

type DistributorWithSales struct {
	Distributor
	Sales            []DistributorSale `json:"sales"`
	TotalSalesAmount decimal.Decimal   `json:"total_sales_amount"`
	TotalUnitsSold   int               `json:"total_units_sold"`
}

type DistributorCreate struct {
	Name               string          `json:"name"`
	CompanyName        *string         `json:"company_name,omitempty"`
	NIT                *string         `json:"nit,omitempty"`
	Phone              string          `json:"phone"`
	Email              *string         `json:"email,omitempty"`
	Address            *string         `json:"address,omitempty"`
	City               *string         `json:"city,omitempty"`
	Zone               *string         `json:"zone,omitempty"`
	ContactPerson      *string         `json:"contact_person,omitempty"`
	Notes              *string         `json:"notes,omitempty"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

func (c DistributorCreate) Validate() error {
	if c.Name == "" || c.Phone == "" {
		return ErrInvalidArgument
	}

	return validDiscount(c.DiscountPercentage)
}

type DistributorUpdate struct {
	Name               *string          `json:"name,omitempty"`
	CompanyName        *string          `json:"company_name,omitempty"`
	NIT                *string          `json:"nit,omitempty"`
	Phone              *string          `json:"phone,omitempty"`
	Email              *string          `json:"email,omitempty"`
	Address            *string          `json:"address,omitempty"`
	City               *string          `json:"city,omitempty"`
	Zone               *string          `json:"zone,omitempty"`
	ContactPerson      *string          `json:"contact_person,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

func (u DistributorUpdate) Validate() error {
	if u.DiscountPercentage != nil {
		return validDiscount(*u.DiscountPercentage)
	}

	return nil
}

func (u DistributorUpdate) Apply(d *Distributor) {
	setIf(&d.Name, u.Name)
	setPtrIf(&d.CompanyName, u.CompanyName)
	setPtrIf(&d.NIT, u.NIT)
	setIf(&d.Phone, u.Phone)
	setPtrIf(&d.Email, u.Email)
	setPtrIf(&d.Address, u.Address)
	setPtrIf(&d.City, u.City)
	setPtrIf(&d.Zone, u.Zone)
	setPtrIf(&d.ContactPerson, u.ContactPerson)
	setPtrIf(&d.Notes, u.Notes)
	setIf(&d.DiscountPercentage, u.DiscountPercentage)
	setIf(&d.IsActive, u.IsActive)
}

func validDiscount(v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return ErrInvalidArgument
	}

	return nil
}

type DistributorSale struct {
	ID              int64           `json:"id"`
	DistributorID   int64           `json:"distributor_id"`
	ProductID       int64           `json:"product_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	SaleDate        Date            `json:"sale_date"`
	InvoiceNumber   *string         `json:"invoice_number,omitempty"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
	ProductName     *string         `json:"product_name,omitempty"`
	ProductSKU      *string         `json:"product_sku,omitempty"`
	DistributorName *string         `json:"distributor_name,omitempty"`
}

// SaleTotal is unit price × quantity.
func SaleTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

type DistributorSaleCreate struct {
	DistributorID int64           `json:"distributor_id"`
	ProductID     int64           `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SaleDate      Date            `json:"sale_date"`
	InvoiceNumber *string         `json:"invoice_number,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

func (c DistributorSaleCreate) Validate() error {
	if c.DistributorID <= 0 || c.ProductID <= 0 || c.SaleDate.IsZero() {
		return ErrInvalidArgument
	}

	if c.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if c.UnitPrice.IsNegative() {
		return ErrInvalidArgument
	}

	return nil
}

type DistributorSaleUpdate struct {
	Quantity      *int             `json:"quantity,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	SaleDate      *Date            `json:"sale_date,omitempty"`
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
	PaymentStatus *PaymentStatus   `json:"payment_status,omitempty"`
	AmountPaid    *decimal.Decimal `json:"amount_paid,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (u DistributorSaleUpdate) Validate() error {
	if u.Quantity != nil && *u.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	if u.UnitPrice != nil && u.UnitPrice.IsNegative() {
		return ErrInvalidArgument
	}

	if u.PaymentStatus != nil && !u.PaymentStatus.IsValid() {
		return ErrInvalidStatus
	}

	if u.AmountPaid != nil && u.AmountPaid.IsNegative() {
		return ErrInvalidArgument
	}

	return nil
}

// Apply updates the sale and recomputes its total. It returns the change in
// quantity so the caller can move stock accordingly.
func (u DistributorSaleUpdate) Apply(s *DistributorSale) int {
	before := s.Quantity

	setIf(&s.Quantity, u.Quantity)
	setIf(&s.UnitPrice, u.UnitPrice)
	setIf(&s.SaleDate, u.SaleDate)
	setPtrIf(&s.InvoiceNumber, u.InvoiceNumber)
	setIf(&s.PaymentStatus, u.PaymentStatus)
	setIf(&s.AmountPaid, u.AmountPaid)
	setPtrIf(&s.Notes, u.Notes)

	s.TotalPrice = SaleTotal(s.UnitPrice, s.Quantity)

	return s.Quantity - before
}

type DistributorFilter struct {
	IncludeInactive bool
	Page            Page
}

type SaleFilter struct {
	DistributorID *int64
	ProductID     *int64
	From          *Date
	To            *Date
	Page          Page
}

// MonthlySales is one point of the sales chart.
type MonthlySales struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Units  int             `json:"units"`
}

// BuildMonthlySales buckets sales by YYYY-MM over the last months ending at
// the month of end. Months without sales are zero.
func BuildMonthlySales(sales []DistributorSale, end Date, months int) []MonthlySales {
	if months <= 0 {
		return []MonthlySales{}
	}

	first := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location()).AddDate(0, -(months - 1), 0)
	out := make([]MonthlySales, months)
	idx := make(map[string]int, months)

	for i := range out {
		key := first.AddDate(0, i, 0).Format("2006-01")
		idx[key] = i
		out[i] = MonthlySales{Month: key, Amount: decimal.Zero}
	}

	for _, s := range sales {
		i, ok := idx[s.SaleDate.Format("2006-01")]
		if !ok {
			continue
		}

		out[i].Amount = out[i].Amount.Add(s.TotalPrice)
		out[i].Units += s.Quantity
	}

	return out
}

// TotalsOf sums a list of sales.
func TotalsOf(sales []DistributorSale) SalesTotals {
	t := SalesTotals{TotalSales: decimal.Zero}
	for _, s := range sales {
		t.TotalSales = t.TotalSales.Add(s.TotalPrice)
		t.TotalUnits += s.Quantity
	}

	return t
}
