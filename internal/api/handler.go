package api

import (
	"context"
	"net/http"
	"time"

	"github.com/zafesys/suite/internal/entity"
)

// @title ZAFESYS Suite API
// @version 1.0
// @description CRM, installations, inventory and technician app backend
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey TechnicianAuth
// @in header
// @name Authorization

type Service interface {
	Login(ctx context.Context, email, password string) (entity.Token, error)
	Register(ctx context.Context, c entity.UserCreate) (entity.User, error)
	Me(ctx context.Context) (entity.User, error)
	TechnicianLogin(ctx context.Context, documentID, pin string) (entity.TechnicianToken, error)
	SetTechnicianPIN(ctx context.Context, technicianID int64, pin string) error

	Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error)
	User(ctx context.Context, id int64) (entity.User, error)
	UpdateUser(ctx context.Context, id int64, u entity.UserUpdate) (entity.User, error)
	DeleteUser(ctx context.Context, id int64) error

	Leads(ctx context.Context, f entity.LeadFilter) ([]entity.Lead, error)
	LeadKanban(ctx context.Context) (entity.KanbanBoard, error)
	LeadStats(ctx context.Context) (entity.LeadStats, error)
	Lead(ctx context.Context, id int64) (entity.Lead, error)
	CreateLead(ctx context.Context, c entity.LeadCreate) (entity.Lead, error)
	UpdateLead(ctx context.Context, id int64, u entity.LeadUpdate) (entity.Lead, error)
	UpdateLeadStatus(ctx context.Context, id int64, status entity.LeadStatus) (entity.Lead, error)
	MoveLead(ctx context.Context, id int64, to entity.LeadStatus) (entity.KanbanBoard, error)
	DeleteLead(ctx context.Context, id int64) error

	HandleVoiceConversation(ctx context.Context, body []byte, signature string) (entity.Lead, error)
	VoiceWebhookStatus() entity.WebhookStatus

	Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, error)
	Customer(ctx context.Context, id int64) (entity.Customer, error)
	CreateCustomer(ctx context.Context, c entity.CustomerCreate) (entity.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, u entity.CustomerUpdate) (entity.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ConvertLead(ctx context.Context, leadID int64) (entity.Customer, error)

	Products(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error)
	SearchProducts(ctx context.Context, query string) ([]entity.Product, error)
	LowStockProducts(ctx context.Context) ([]entity.Product, error)
	Product(ctx context.Context, id int64) (entity.Product, error)
	CreateProduct(ctx context.Context, c entity.ProductCreate) (entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, u entity.ProductUpdate) (entity.Product, error)
	SetProductStock(ctx context.Context, id int64, stock int) (entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	InventorySummary(ctx context.Context) (entity.InventorySummary, error)
	ProductInventory(ctx context.Context) ([]entity.ProductInventory, error)
	Movements(ctx context.Context, f entity.MovementFilter) ([]entity.InventoryMovement, error)
	CreateMovement(ctx context.Context, c entity.MovementCreate) (entity.InventoryMovement, error)
	AdjustStock(ctx context.Context, a entity.StockAdjustment) (entity.InventoryMovement, error)

	Installations(ctx context.Context, f entity.InstallationFilter) ([]entity.Installation, error)
	PendingInstallations(ctx context.Context) ([]entity.Installation, error)
	InstallationsByDate(ctx context.Context, date entity.Date, technicianID *int64) ([]entity.Installation, error)
	InstallationCalendar(ctx context.Context, date entity.Date, offset int, technicianID *int64) (entity.CalendarWeek, error)
	InstallationStats(ctx context.Context) (entity.InstallationStats, error)
	Installation(ctx context.Context, id int64) (entity.Installation, error)
	CreateInstallation(ctx context.Context, c entity.InstallationCreate) (entity.Installation, error)
	QuoteInstallation(ctx context.Context, productID int64, quantity int, adj entity.Adjustment) (entity.PriceBreakdown, error)
	UpdateInstallation(ctx context.Context, id int64, u entity.InstallationUpdate) (entity.Installation, error)
	UpdateInstallationStatus(ctx context.Context, id int64, status entity.InstallationStatus) (entity.Installation, error)
	UpdateInstallationPayment(ctx context.Context, id int64, u entity.InstallationPaymentUpdate) (entity.Installation, error)
	CompleteInstallation(ctx context.Context, id int64, c entity.InstallationComplete) (entity.Installation, error)
	StartTimer(ctx context.Context, id int64, by entity.TimerStartedBy) (entity.TimerStatus, error)
	StopTimer(ctx context.Context, id int64) (entity.TimerStatus, error)
	Timer(ctx context.Context, id int64) (entity.TimerStatus, error)
	DeleteInstallation(ctx context.Context, id int64) error
	MediaUploadURL(ctx context.Context, id int64, m entity.MediaType) (entity.MediaUpload, error)

	Technicians(ctx context.Context, activeOnly bool) ([]entity.Technician, error)
	AvailableTechnicians(ctx context.Context) ([]entity.Technician, error)
	Technician(ctx context.Context, id int64) (entity.Technician, error)
	TechnicianSchedule(ctx context.Context, id int64, date entity.Date) (entity.TechnicianDaySchedule, error)
	CreateTechnician(ctx context.Context, c entity.TechnicianCreate) (entity.Technician, error)
	UpdateTechnician(ctx context.Context, id int64, u entity.TechnicianUpdate) (entity.Technician, error)
	SetTechnicianAvailability(ctx context.Context, id int64, available bool) (entity.Technician, error)
	DeleteTechnician(ctx context.Context, id int64) error
	RecordLocation(ctx context.Context, l entity.TechnicianLocation) (entity.TechnicianLocation, error)
	LatestLocations(ctx context.Context) ([]entity.TechnicianPosition, error)
	LocationHistory(ctx context.Context, f entity.LocationHistoryFilter) ([]entity.TechnicianLocation, error)

	MyInstallations(ctx context.Context, technicianID int64, date entity.Date) (entity.TechnicianDaySchedule, error)
	MyInstallation(ctx context.Context, technicianID, installationID int64) (entity.Installation, error)
	SetMyInstallationStatus(ctx context.Context, technicianID, installationID int64, status entity.InstallationStatus) (entity.Installation, error)
	ConfirmPayment(ctx context.Context, technicianID, installationID int64, p entity.PaymentConfirmation) (entity.Installation, error)
	CompleteMyInstallation(ctx context.Context, technicianID, installationID int64, c entity.InstallationComplete) (entity.Installation, error)
	StartMyTimer(ctx context.Context, technicianID, installationID int64) (entity.TimerStatus, error)
	StopMyTimer(ctx context.Context, technicianID, installationID int64) (entity.TimerStatus, error)
	MyTimer(ctx context.Context, technicianID, installationID int64) (entity.TimerStatus, error)
	SetMyAvailability(ctx context.Context, technicianID int64, available bool) (entity.Technician, error)
	MyProfile(ctx context.Context, technicianID int64) (entity.Technician, error)
	MyMediaUploadURL(ctx context.Context, technicianID, installationID int64, m entity.MediaType) (entity.MediaUpload, error)

	Distributors(ctx context.Context, f entity.DistributorFilter) ([]entity.DistributorWithTotals, error)
	Distributor(ctx context.Context, id int64) (entity.DistributorWithSales, error)
	CreateDistributor(ctx context.Context, c entity.DistributorCreate) (entity.Distributor, error)
	UpdateDistributor(ctx context.Context, id int64, u entity.DistributorUpdate) (entity.Distributor, error)
	DeleteDistributor(ctx context.Context, id int64) error
	Sales(ctx context.Context, f entity.SaleFilter) ([]entity.DistributorSale, error)
	CreateSale(ctx context.Context, c entity.DistributorSaleCreate) (entity.DistributorSale, error)
	UpdateSale(ctx context.Context, id int64, u entity.DistributorSaleUpdate) (entity.DistributorSale, error)
	DeleteSale(ctx context.Context, id int64) error
	MonthlySales(ctx context.Context, distributorID *int64, months int) ([]entity.MonthlySales, error)

	InstallationAnalytics(ctx context.Context, f entity.AnalyticsFilter) (entity.InstallationAnalytics, error)

	WarehouseStaff(ctx context.Context) ([]entity.User, error)
	WarehouseOrders(ctx context.Context, f entity.WarehouseOrderFilter) ([]entity.WarehouseOrder, error)
	WarehouseOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error)
	PrepareOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error)
	DeliverOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// HealthHandler reports that the service is up
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
}
