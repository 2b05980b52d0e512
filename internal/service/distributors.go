package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/zafesys/suite/internal/entity"
)

const defaultSalesMonths = 6

func (s *Service) Distributors(ctx context.Context, f entity.DistributorFilter) ([]entity.DistributorWithTotals, error) {
	f.Page = f.Page.Normalize()

	list, err := s.repo.Distributors(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get distributors: %w", err)
	}

	return list, nil
}

// Distributor returns the distributor with its whole sales ledger.
func (s *Service) Distributor(ctx context.Context, id int64) (entity.DistributorWithSales, error) {
	d, err := s.repo.Distributor(ctx, id)
	if err != nil {
		return entity.DistributorWithSales{}, fmt.Errorf("get distributor %d: %w", id, err)
	}

	sales, err := s.repo.Sales(ctx, entity.SaleFilter{DistributorID: &id})
	if err != nil {
		return entity.DistributorWithSales{}, fmt.Errorf("get sales of distributor %d: %w", id, err)
	}

	totals := entity.TotalsOf(sales)

	return entity.DistributorWithSales{
		Distributor:      d,
		Sales:            sales,
		TotalSalesAmount: totals.TotalSales,
		TotalUnitsSold:   totals.TotalUnits,
	}, nil
}

func (s *Service) CreateDistributor(ctx context.Context, c entity.DistributorCreate) (entity.Distributor, error) {
	err := c.Validate()
	if err != nil {
		return entity.Distributor{}, err
	}

	d, err := s.repo.CreateDistributor(ctx, c)
	if err != nil {
		return entity.Distributor{}, fmt.Errorf("create distributor: %w", err)
	}

	slog.InfoContext(ctx, "distributor created", "distributor_id", d.ID)

	return d, nil
}

func (s *Service) UpdateDistributor(ctx context.Context, id int64, u entity.DistributorUpdate) (entity.Distributor, error) {
	err := u.Validate()
	if err != nil {
		return entity.Distributor{}, err
	}

	d, err := s.repo.Distributor(ctx, id)
	if err != nil {
		return entity.Distributor{}, fmt.Errorf("get distributor %d: %w", id, err)
	}

	u.Apply(&d)

	d, err = s.repo.UpdateDistributor(ctx, d)
	if err != nil {
		return entity.Distributor{}, fmt.Errorf("update distributor %d: %w", id, err)
	}

	return d, nil
}

func (s *Service) DeleteDistributor(ctx context.Context, id int64) error {
	err := s.repo.DeactivateDistributor(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivate distributor %d: %w", id, err)
	}

	slog.InfoContext(ctx, "distributor deactivated", "distributor_id", id)

	return nil
}

func (s *Service) Sales(ctx context.Context, f entity.SaleFilter) ([]entity.DistributorSale, error) {
	if f.From != nil && f.To != nil && f.To.Before(f.From.Time) {
		return nil, fmt.Errorf("%w: sales range ends before it starts", entity.ErrInvalidArgument)
	}

	f.Page = f.Page.Normalize()

	sales, err := s.repo.Sales(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get sales: %w", err)
	}

	return sales, nil
}

// CreateSale records a sale to a distributor and takes the units out of stock.
func (s *Service) CreateSale(ctx context.Context, c entity.DistributorSaleCreate) (entity.DistributorSale, error) {
	err := c.Validate()
	if err != nil {
		return entity.DistributorSale{}, err
	}

	_, err = s.repo.Distributor(ctx, c.DistributorID)
	if err != nil {
		return entity.DistributorSale{}, fmt.Errorf("get distributor %d: %w", c.DistributorID, asInvalid(err))
	}

	sale, err := s.repo.CreateSale(ctx, entity.DistributorSale{
		DistributorID: c.DistributorID,
		ProductID:     c.ProductID,
		Quantity:      c.Quantity,
		UnitPrice:     c.UnitPrice,
		TotalPrice:    entity.SaleTotal(c.UnitPrice, c.Quantity),
		SaleDate:      c.SaleDate,
		InvoiceNumber: c.InvoiceNumber,
		PaymentStatus: entity.PaymentPending,
		AmountPaid:    decimal.Zero,
		Notes:         c.Notes,
	}, actor(ctx))
	if err != nil {
		return entity.DistributorSale{}, fmt.Errorf("create sale for distributor %d: %w", c.DistributorID, err)
	}

	slog.InfoContext(ctx, "distributor sale created",
		"sale_id", sale.ID, "distributor_id", sale.DistributorID, "product_id", sale.ProductID, "quantity", sale.Quantity)
	s.events.Publish(ctx, entity.EventDistributorSale, saleKey(sale.ID), sale)

	return sale, nil
}

// UpdateSale edits a sale. A quantity change moves the difference in or out of stock.
func (s *Service) UpdateSale(ctx context.Context, id int64, u entity.DistributorSaleUpdate) (entity.DistributorSale, error) {
	err := u.Validate()
	if err != nil {
		return entity.DistributorSale{}, err
	}

	sale, err := s.repo.Sale(ctx, id)
	if err != nil {
		return entity.DistributorSale{}, fmt.Errorf("get sale %d: %w", id, err)
	}

	delta := u.Apply(&sale)

	sale, err = s.repo.UpdateSale(ctx, sale, delta, actor(ctx))
	if err != nil {
		return entity.DistributorSale{}, fmt.Errorf("update sale %d: %w", id, err)
	}

	return sale, nil
}

func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	err := s.repo.DeleteSale(ctx, id, actor(ctx))
	if err != nil {
		return fmt.Errorf("delete sale %d: %w", id, err)
	}

	slog.InfoContext(ctx, "distributor sale deleted", "sale_id", id)

	return nil
}

// MonthlySales buckets sales of the last months, the current Colombia month
// included, optionally for one distributor.
func (s *Service) MonthlySales(ctx context.Context, distributorID *int64, months int) ([]entity.MonthlySales, error) {
	if months <= 0 {
		months = defaultSalesMonths
	}

	if months > 24 {
		return nil, fmt.Errorf("%w: at most 24 months", entity.ErrInvalidArgument)
	}

	today := entity.NewDate(s.now())
	from := entity.FromCivil(today.AddDate(0, 1-months, 1-today.Day()))

	sales, err := s.repo.Sales(ctx, entity.SaleFilter{DistributorID: distributorID, From: &from, To: &today})
	if err != nil {
		return nil, fmt.Errorf("get sales since %s: %w", from, err)
	}

	return entity.BuildMonthlySales(sales, today, months), nil
}

func saleKey(id int64) string {
	return "sale-" + strconv.FormatInt(id, 10)
}
