package service

import (
	"context"
	"strconv"
	"time"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	CreateUser(ctx context.Context, u entity.User) (entity.User, error)
	User(ctx context.Context, id int64) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error)
	UpdateUser(ctx context.Context, u entity.User) (entity.User, error)

	Leads(ctx context.Context, f entity.LeadFilter) ([]entity.Lead, error)
	KanbanLeads(ctx context.Context) ([]entity.Lead, error)
	LeadStats(ctx context.Context) (entity.LeadStats, error)
	Lead(ctx context.Context, id int64) (entity.Lead, error)
	LeadByPhone(ctx context.Context, phone string) (entity.Lead, error)
	LeadByConversationID(ctx context.Context, conversationID string) (entity.Lead, error)
	CreateLead(ctx context.Context, c entity.LeadCreate) (entity.Lead, error)
	UpdateLead(ctx context.Context, l entity.Lead) (entity.Lead, error)
	UpdateLeadStatus(ctx context.Context, id int64, status entity.LeadStatus, contactedAt *time.Time) (entity.Lead, error)
	DeleteLead(ctx context.Context, id int64) error

	Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, error)
	Customer(ctx context.Context, id int64) (entity.Customer, error)
	CustomerByPhone(ctx context.Context, phone string) (entity.Customer, error)
	CustomerByLead(ctx context.Context, leadID int64) (entity.Customer, error)
	CreateCustomer(ctx context.Context, c entity.CustomerCreate) (entity.Customer, error)
	ConvertLead(ctx context.Context, c entity.CustomerCreate) (entity.Customer, error)
	UpdateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error)
	DeactivateCustomer(ctx context.Context, id int64) error

	Products(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error)
	LowStockProducts(ctx context.Context) ([]entity.Product, error)
	Product(ctx context.Context, id int64) (entity.Product, error)
	CreateProduct(ctx context.Context, c entity.ProductCreate) (entity.Product, error)
	UpdateProduct(ctx context.Context, p entity.Product) (entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ApplyStockChange(ctx context.Context, c entity.StockChange) (entity.InventoryMovement, error)
	Movements(ctx context.Context, f entity.MovementFilter) ([]entity.InventoryMovement, error)
	CountMovementsSince(ctx context.Context, since time.Time) (int, error)
	ProductSales(ctx context.Context, since30d time.Time, since7d time.Time) (map[int64]entity.ProductSales, error)

	Installations(ctx context.Context, f entity.InstallationFilter) ([]entity.Installation, error)
	Installation(ctx context.Context, id int64) (entity.Installation, error)
	CreateInstallation(ctx context.Context, i entity.Installation, createdBy *string) (entity.Installation, error)
	UpdateInstallation(ctx context.Context, i entity.Installation, updatedBy *string) (entity.Installation, error)
	DeleteInstallation(ctx context.Context, id int64, deletedBy *string) error
	InstallationStats(ctx context.Context, today entity.Date) (entity.InstallationStats, error)

	Technicians(ctx context.Context, activeOnly bool) ([]entity.Technician, error)
	AvailableTechnicians(ctx context.Context) ([]entity.Technician, error)
	Technician(ctx context.Context, id int64) (entity.Technician, error)
	TechnicianByDocument(ctx context.Context, documentID string) (entity.Technician, error)
	TechnicianByPhone(ctx context.Context, phone string) (entity.Technician, error)
	CreateTechnician(ctx context.Context, c entity.TechnicianCreate) (entity.Technician, error)
	UpdateTechnician(ctx context.Context, t entity.Technician) (entity.Technician, error)
	SetTechnicianAvailability(ctx context.Context, id int64, available bool) (entity.Technician, error)
	SetTechnicianPIN(ctx context.Context, id int64, pinHash string) error
	DeleteTechnician(ctx context.Context, id int64) error
	SavePINAttempt(ctx context.Context, technicianID int64, at time.Time) error
	CountPINAttempts(ctx context.Context, technicianID int64, since time.Time) (int, error)
	ClearPINAttempts(ctx context.Context, technicianID int64) error
	SaveLocation(ctx context.Context, l entity.TechnicianLocation) (entity.TechnicianLocation, error)
	LatestLocations(ctx context.Context) ([]entity.TechnicianPosition, error)
	LocationHistory(ctx context.Context, f entity.LocationHistoryFilter) ([]entity.TechnicianLocation, error)
	DeleteLocationsBefore(ctx context.Context, before time.Time) (int64, error)

	Distributors(ctx context.Context, f entity.DistributorFilter) ([]entity.DistributorWithTotals, error)
	Distributor(ctx context.Context, id int64) (entity.Distributor, error)
	CreateDistributor(ctx context.Context, c entity.DistributorCreate) (entity.Distributor, error)
	UpdateDistributor(ctx context.Context, d entity.Distributor) (entity.Distributor, error)
	DeactivateDistributor(ctx context.Context, id int64) error
	Sales(ctx context.Context, f entity.SaleFilter) ([]entity.DistributorSale, error)
	Sale(ctx context.Context, id int64) (entity.DistributorSale, error)
	CreateSale(ctx context.Context, s entity.DistributorSale, createdBy *string) (entity.DistributorSale, error)
	UpdateSale(ctx context.Context, s entity.DistributorSale, quantityDelta int, updatedBy *string) (entity.DistributorSale, error)
	DeleteSale(ctx context.Context, id int64, deletedBy *string) error

	WarehouseOrders(ctx context.Context, f entity.WarehouseOrderFilter) ([]entity.WarehouseOrder, error)
	WarehouseOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error)
	SetWarehouseStatus(ctx context.Context, installationID int64, status entity.WarehouseStatus, userID int64, at time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, eventType string, key string, payload any)
}

type MediaStorage interface {
	PresignUpload(ctx context.Context, key string, ttl time.Duration) (string, string, error)
}

type Mailer interface {
	SendAlert(subject string, body string) error
}

type VoiceAgent interface {
	Conversation(ctx context.Context, conversationID string) (entity.VoiceConversation, error)
}

type Service struct {
	cfg    config.Config
	repo   Repository
	events Publisher
	media  MediaStorage
	mailer Mailer
	voice  VoiceAgent
	now    func() time.Time
}

// New builds the service. media and voice may be nil when the integration is not configured.
func New(cfg config.Config, repo Repository, events Publisher, media MediaStorage, mailer Mailer, voice VoiceAgent) *Service {
	return &Service{
		cfg:    cfg,
		repo:   repo,
		events: events,
		media:  media,
		mailer: mailer,
		voice:  voice,
		now:    time.Now,
	}
}

// actor names the authenticated caller for audit columns.
func actor(ctx context.Context) *string {
	if u, ok := entity.UserFromCtx(ctx); ok {
		s := "user:" + strconv.FormatInt(u.UserID, 10)
		return &s
	}

	if t, ok := entity.TechnicianFromCtx(ctx); ok {
		s := "technician:" + strconv.FormatInt(t.TechnicianID, 10)
		return &s
	}

	return nil
}
