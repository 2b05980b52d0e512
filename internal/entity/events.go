package entity

// Event types published to the events topic.
const (
	EventLeadCreated           = "lead.created"
	EventLeadStatusChanged     = "lead.status_changed"
	EventInstallationCreated   = "installation.created"
	EventInstallationStatus    = "installation.status_changed"
	EventInstallationCompleted = "installation.completed"
	EventPaymentReceived       = "installation.payment_received"
	EventInventoryLowStock     = "inventory.low_stock"
	EventDistributorSale       = "distributor.sale_created"
	EventWarehouseStatus       = "installation.warehouse_status_changed"
)

type LeadStatusChanged struct {
	LeadID int64      `json:"lead_id"`
	From   LeadStatus `json:"from"`
	To     LeadStatus `json:"to"`
}

type InstallationStatusChanged struct {
	InstallationID int64              `json:"installation_id"`
	TechnicianID   *int64             `json:"technician_id,omitempty"`
	From           InstallationStatus `json:"from"`
	To             InstallationStatus `json:"to"`
}

type LowStockAlert struct {
	ProductID     int64       `json:"product_id"`
	SKU           string      `json:"sku"`
	Name          string      `json:"name"`
	Stock         int         `json:"stock"`
	MinStockAlert int         `json:"min_stock_alert"`
	Status        StockStatus `json:"status"`
}
