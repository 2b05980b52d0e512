package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/internal/repository"
	"github.com/zafesys/suite/pkg/postgres"
)

func TestRepository_LeadLifecycle(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	lead, err := repo.CreateLead(ctx, entity.LeadCreate{
		Name:   "Juan Pérez",
		Phone:  uniquePhone(),
		Status: entity.LeadStatusNew,
		Source: entity.LeadSourceWebsite,
	})
	require.NoError(t, err)
	require.NotZero(t, lead.ID)
	require.Nil(t, lead.ContactedAt)

	got, err := repo.LeadByPhone(ctx, lead.Phone)
	require.NoError(t, err)
	require.Equal(t, lead.ID, got.ID)

	first := time.Now().Truncate(time.Millisecond)

	lead, err = repo.UpdateLeadStatus(ctx, lead.ID, entity.LeadStatusInConversation, &first)
	require.NoError(t, err)
	require.Equal(t, entity.LeadStatusInConversation, lead.Status)
	require.NotNil(t, lead.ContactedAt)

	later := first.Add(time.Hour)

	lead, err = repo.UpdateLeadStatus(ctx, lead.ID, entity.LeadStatusPotential, &later)
	require.NoError(t, err)
	require.True(t, first.Equal(*lead.ContactedAt))

	stats, err := repo.LeadStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, len(entity.LeadStatuses))
	require.Positive(t, stats[entity.LeadStatusPotential])

	require.NoError(t, repo.DeleteLead(ctx, lead.ID))

	_, err = repo.Lead(ctx, lead.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
	require.ErrorIs(t, repo.DeleteLead(ctx, lead.ID), entity.ErrNotFound)
}

func TestRepository_ProductDuplicateSKU(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	p := newProduct(t, repo, 3)

	_, err := repo.CreateProduct(ctx, entity.ProductCreate{
		SKU:           p.SKU,
		Name:          "Otra",
		Model:         "X",
		Category:      entity.DefaultProductCategory,
		Price:         decimal.NewFromInt(1),
		MinStockAlert: &p.MinStockAlert,
	})
	require.ErrorIs(t, err, entity.ErrAlreadyExists)
}

func TestRepository_ApplyStockChange(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	p := newProduct(t, repo, 3)

	m, err := repo.ApplyStockChange(ctx, entity.StockChange{
		ProductID:     p.ID,
		Type:          entity.MovementIn,
		Quantity:      7,
		ReferenceType: entity.RefManual,
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.StockBefore)
	require.Equal(t, 10, m.StockAfter)

	_, err = repo.ApplyStockChange(ctx, entity.StockChange{ProductID: p.ID, Type: entity.MovementOut, Quantity: 11})
	require.ErrorIs(t, err, entity.ErrInsufficientStock)

	got, err := repo.Product(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.Stock)

	movements, err := repo.Movements(ctx, entity.MovementFilter{ProductID: &p.ID})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	require.Equal(t, p.Name, *movements[0].ProductName)
}

func TestRepository_InstallationStock(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	p := newProduct(t, repo, 5)

	lead, err := repo.CreateLead(ctx, entity.LeadCreate{
		Name:   "Ana",
		Phone:  uniquePhone(),
		Status: entity.LeadStatusWon,
		Source: entity.LeadSourceReferral,
	})
	require.NoError(t, err)

	day := entity.NewDate(time.Now())

	inst, err := repo.CreateInstallation(ctx, entity.Installation{
		LeadID:            lead.ID,
		ProductID:         p.ID,
		Quantity:          2,
		ScheduledDate:     &day,
		EstimatedDuration: 60,
		Address:           "Calle 1 # 2-3",
		Status:            entity.InstallationScheduled,
		TotalPrice:        decimal.NewFromInt(789000),
		PaymentStatus:     entity.PaymentPending,
		AmountPaid:        decimal.Zero,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, day.String(), inst.ScheduledDate.String())
	require.Equal(t, "Ana", *inst.LeadName)
	require.Empty(t, inst.PhotosBefore)

	got, err := repo.Product(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.Stock)

	list, err := repo.Installations(ctx, entity.InstallationFilter{DateFrom: &day, DateTo: &day})
	require.NoError(t, err)
	require.Contains(t, installationIDs(list), inst.ID)

	_, err = repo.CreateInstallation(ctx, entity.Installation{
		LeadID:        lead.ID,
		ProductID:     p.ID,
		Quantity:      4,
		Address:       "Calle 1 # 2-3",
		Status:        entity.InstallationPending,
		TotalPrice:    decimal.NewFromInt(1),
		PaymentStatus: entity.PaymentPending,
	}, nil)
	require.ErrorIs(t, err, entity.ErrInsufficientStock)

	require.NoError(t, repo.DeleteInstallation(ctx, inst.ID, nil))

	got, err = repo.Product(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 5, got.Stock)
}

func TestRepository_InstallationEditMovesStock(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	a := newProduct(t, repo, 5)
	b := newProduct(t, repo, 5)

	lead, err := repo.CreateLead(ctx, entity.LeadCreate{
		Name:   "Carlos",
		Phone:  uniquePhone(),
		Status: entity.LeadStatusWon,
		Source: entity.LeadSourceReferral,
	})
	require.NoError(t, err)

	inst, err := repo.CreateInstallation(ctx, entity.Installation{
		LeadID:        lead.ID,
		ProductID:     a.ID,
		Quantity:      1,
		Address:       "Carrera 7 # 45-10",
		Status:        entity.InstallationPending,
		TotalPrice:    decimal.NewFromInt(450000),
		PaymentStatus: entity.PaymentPending,
		AmountPaid:    decimal.Zero,
	}, nil)
	require.NoError(t, err)

	stock := func(id int64) int {
		p, err := repo.Product(ctx, id)
		require.NoError(t, err)

		return p.Stock
	}

	require.Equal(t, 4, stock(a.ID))

	inst.Quantity = 3

	inst, err = repo.UpdateInstallation(ctx, inst, nil)
	require.NoError(t, err)
	require.Equal(t, 2, stock(a.ID))

	inst.ProductID = b.ID
	inst.Quantity = 1

	inst, err = repo.UpdateInstallation(ctx, inst, nil)
	require.NoError(t, err)
	require.Equal(t, 5, stock(a.ID))
	require.Equal(t, 4, stock(b.ID))

	inst.Quantity = 6

	_, err = repo.UpdateInstallation(ctx, inst, nil)
	require.ErrorIs(t, err, entity.ErrInsufficientStock)
	require.Equal(t, 4, stock(b.ID))

	require.NoError(t, repo.DeleteInstallation(ctx, inst.ID, nil))
	require.Equal(t, 5, stock(a.ID))
	require.Equal(t, 5, stock(b.ID))
}

func TestRepository_WarehouseOrders(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	keeper, err := repo.CreateUser(ctx, entity.User{
		Email:          "bodega-" + uuid.Must(uuid.NewV4()).String()[:8] + "@zafesys.co",
		HashedPassword: "hash",
		FullName:       "Bodega Central",
		Role:           entity.RoleWarehouse,
		IsActive:       true,
	})
	require.NoError(t, err)

	p := newProduct(t, repo, 5)

	lead, err := repo.CreateLead(ctx, entity.LeadCreate{
		Name:   "Marta",
		Phone:  uniquePhone(),
		Status: entity.LeadStatusWon,
		Source: entity.LeadSourceWebsite,
	})
	require.NoError(t, err)

	day, err := entity.ParseDate("2031-03-14")
	require.NoError(t, err)

	inst, err := repo.CreateInstallation(ctx, entity.Installation{
		LeadID:        lead.ID,
		ProductID:     p.ID,
		Quantity:      2,
		Address:       "Calle 80 # 12-30",
		ScheduledDate: &day,
		Status:        entity.InstallationScheduled,
		TotalPrice:    decimal.NewFromInt(900000),
		PaymentStatus: entity.PaymentPending,
		AmountPaid:    decimal.Zero,
	}, nil)
	require.NoError(t, err)

	pending := entity.WarehousePending

	orders, err := repo.WarehouseOrders(ctx, entity.WarehouseOrderFilter{From: day, To: day, Status: &pending})
	require.NoError(t, err)

	var found *entity.WarehouseOrder

	for i := range orders {
		if orders[i].InstallationID == inst.ID {
			found = &orders[i]
		}
	}

	require.NotNil(t, found)
	require.Equal(t, "Marta", found.ClientName)
	require.Len(t, found.Products, 1)
	require.Equal(t, 2, found.Products[0].Quantity)

	at := time.Date(2031, 3, 14, 13, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetWarehouseStatus(ctx, inst.ID, entity.WarehousePrepared, keeper.ID, at))

	order, err := repo.WarehouseOrder(ctx, inst.ID)
	require.NoError(t, err)
	require.Equal(t, entity.WarehousePrepared, order.WarehouseStatus)
	require.Equal(t, keeper.ID, *order.PreparedByID)
	require.Equal(t, "Bodega Central", *order.PreparedBy)
	require.True(t, at.Equal(*order.PreparedAt))
	require.Nil(t, order.DeliveredAt)

	keeper.IsActive = false

	_, err = repo.UpdateUser(ctx, keeper)
	require.NoError(t, err)

	role := entity.RoleWarehouse
	active := true

	staff, err := repo.Users(ctx, entity.UserFilter{Role: &role, IsActive: &active})
	require.NoError(t, err)

	for _, u := range staff {
		require.NotEqual(t, keeper.ID, u.ID)
	}

	require.ErrorIs(t, repo.SetWarehouseStatus(ctx, 0, entity.WarehousePrepared, keeper.ID, at), entity.ErrNotFound)
}

func TestRepository_DistributorSales(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	p := newProduct(t, repo, 10)

	d, err := repo.CreateDistributor(ctx, entity.DistributorCreate{
		Name:               "Ferretería El Tornillo",
		Phone:              uniquePhone(),
		DiscountPercentage: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	sale, err := repo.CreateSale(ctx, entity.DistributorSale{
		DistributorID: d.ID,
		ProductID:     p.ID,
		Quantity:      4,
		UnitPrice:     decimal.NewFromInt(250000),
		TotalPrice:    decimal.NewFromInt(1000000),
		SaleDate:      entity.NewDate(time.Now()),
		PaymentStatus: entity.PaymentPending,
		AmountPaid:    decimal.Zero,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, d.Name, *sale.DistributorName)

	qty := 6
	delta := entity.DistributorSaleUpdate{Quantity: &qty}.Apply(&sale)

	sale, err = repo.UpdateSale(ctx, sale, delta, nil)
	require.NoError(t, err)
	require.Equal(t, "1500000", sale.TotalPrice.StringFixed(0))

	got, err := repo.Product(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 4, got.Stock)

	distributors, err := repo.Distributors(ctx, entity.DistributorFilter{IncludeInactive: true})
	require.NoError(t, err)

	for _, item := range distributors {
		if item.ID == d.ID {
			require.Equal(t, 6, item.TotalUnits)
		}
	}

	require.NoError(t, repo.DeleteSale(ctx, sale.ID, nil))

	got, err = repo.Product(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.Stock)
}

func TestRepository_PINAttempts(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	doc := uuid.Must(uuid.NewV4()).String()[:12]

	tech, err := repo.CreateTechnician(ctx, entity.TechnicianCreate{
		FullName:   "Pedro Gómez",
		Phone:      uniquePhone(),
		DocumentID: &doc,
	})
	require.NoError(t, err)
	require.False(t, tech.HasPIN())

	require.NoError(t, repo.SetTechnicianPIN(ctx, tech.ID, "hash"))

	tech, err = repo.TechnicianByDocument(ctx, doc)
	require.NoError(t, err)
	require.True(t, tech.HasPIN())

	now := time.Now()
	for range 3 {
		require.NoError(t, repo.SavePINAttempt(ctx, tech.ID, now))
	}

	count, err := repo.CountPINAttempts(ctx, tech.ID, now.Add(-time.Minute))
	require.NoError(t, err)
	require.Equal(t, 3, count)

	require.NoError(t, repo.ClearPINAttempts(ctx, tech.ID))

	count, err = repo.CountPINAttempts(ctx, tech.ID, now.Add(-time.Minute))
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = repo.SaveLocation(ctx, entity.TechnicianLocation{
		TechnicianID: tech.ID,
		Latitude:     4.711,
		Longitude:    -74.072,
		RecordedAt:   now.Add(-time.Minute),
	})
	require.NoError(t, err)

	last, err := repo.SaveLocation(ctx, entity.TechnicianLocation{
		TechnicianID: tech.ID,
		Latitude:     4.7,
		Longitude:    -74.05,
		RecordedAt:   now,
	})
	require.NoError(t, err)

	positions, err := repo.LatestLocations(ctx)
	require.NoError(t, err)

	for _, p := range positions {
		if p.TechnicianID == tech.ID {
			require.NotNil(t, p.Location)
			require.Equal(t, last.ID, p.Location.ID)
		}
	}

	history, err := repo.LocationHistory(ctx, entity.LocationHistoryFilter{TechnicianID: tech.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, history, 2)
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() {
		migrateErr = postgres.UpMigrations(dsn)
	})
	require.NoError(t, migrateErr)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool)
}

func newProduct(t *testing.T, repo *repository.Repository, stock int) entity.Product {
	t.Helper()

	minAlert := 2

	p, err := repo.CreateProduct(context.Background(), entity.ProductCreate{
		SKU:               "SKU-" + uuid.Must(uuid.NewV4()).String()[:8],
		Name:              "Cerradura OS566F",
		Model:             "OS566F",
		Category:          entity.DefaultProductCategory,
		Price:             decimal.NewFromInt(300000),
		InstallationPrice: decimal.NewFromInt(189000),
		Stock:             stock,
		MinStockAlert:     &minAlert,
	})
	require.NoError(t, err)

	return p
}

func uniquePhone() string {
	return "+57" + uuid.Must(uuid.NewV4()).String()[:10]
}

func installationIDs(list []entity.Installation) []int64 {
	ids := make([]int64, 0, len(list))
	for _, i := range list {
		ids = append(ids, i.ID)
	}

	return ids
}
