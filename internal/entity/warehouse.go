package entity

import (
	"fmt"
	"time"
)

// WarehouseStatus tracks the preparation of the products an installation takes.
type WarehouseStatus string

const (
	WarehousePending   WarehouseStatus = "pendiente"
	WarehousePrepared  WarehouseStatus = "preparado"
	WarehouseDelivered WarehouseStatus = "entregado"
)

func (s WarehouseStatus) IsValid() bool {
	switch s {
	case WarehousePending, WarehousePrepared, WarehouseDelivered:
		return true
	}

	return false
}

// CanMoveTo reports whether an order may go from s to next. Orders are
// prepared before they are handed to the technician.
func (s WarehouseStatus) CanMoveTo(next WarehouseStatus) bool {
	switch next {
	case WarehousePrepared:
		return s == WarehousePending
	case WarehouseDelivered:
		return s == WarehousePrepared
	}

	return false
}

// WarehouseOpenStatuses are the installation statuses that still need products.
var WarehouseOpenStatuses = []InstallationStatus{
	InstallationPending,
	InstallationScheduled,
	InstallationOnTheWay,
	InstallationInProgress,
}

const maxWarehouseRangeDays = 62

type OrderProduct struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"product_name"`
	Model     *string `json:"product_model,omitempty"`
	SKU       *string `json:"product_sku,omitempty"`
	ImageURL  *string `json:"product_image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// WarehouseOrder is an installation seen from the warehouse.
type WarehouseOrder struct {
	InstallationID  int64           `json:"installation_id"`
	ClientName      string          `json:"client_name"`
	Address         string          `json:"address"`
	City            *string         `json:"city,omitempty"`
	ScheduledDate   *Date           `json:"scheduled_date,omitempty"`
	ScheduledTime   *string         `json:"scheduled_time,omitempty"`
	TechnicianID    *int64          `json:"technician_id,omitempty"`
	TechnicianName  *string         `json:"technician_name,omitempty"`
	Products        []OrderProduct  `json:"products"`
	WarehouseStatus WarehouseStatus `json:"warehouse_status"`
	PreparedByID    *int64          `json:"prepared_by_id,omitempty"`
	PreparedBy      *string         `json:"prepared_by,omitempty"`
	PreparedAt      *time.Time      `json:"prepared_at,omitempty"`
	DeliveredByID   *int64          `json:"delivered_by_id,omitempty"`
	DeliveredBy     *string         `json:"delivered_by,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
}

type WarehouseOrderFilter struct {
	From   Date
	To     Date
	Status *WarehouseStatus
}

// Normalize defaults the range to the single day today and checks its bounds.
func (f *WarehouseOrderFilter) Normalize(today Date) error {
	if f.From.IsZero() {
		f.From = today
	}

	if f.To.IsZero() {
		f.To = f.From
	}

	if f.To.Before(f.From.Time) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidArgument)
	}

	if f.To.Sub(f.From.Time) > maxWarehouseRangeDays*24*time.Hour {
		return fmt.Errorf("%w: range longer than %d days", ErrInvalidArgument, maxWarehouseRangeDays)
	}

	if f.Status != nil && !f.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

// WarehouseStatusChange is published when an order is prepared or delivered.
type WarehouseStatusChange struct {
	InstallationID int64           `json:"installation_id"`
	From           WarehouseStatus `json:"from"`
	To             WarehouseStatus `json:"to"`
	UserID         int64           `json:"user_id"`
	At             time.Time       `json:"at"`
}
