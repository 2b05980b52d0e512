package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/timezone"
)

const (
	defaultMovementsLimit = 50
	week                  = 7 * 24 * time.Hour
	month                 = 30 * 24 * time.Hour
)

func (s *Service) InventorySummary(ctx context.Context) (entity.InventorySummary, error) {
	products, err := s.repo.Products(ctx, entity.ProductFilter{ActiveOnly: true, Page: entity.Page{Limit: entity.MaxLimit}})
	if err != nil {
		return entity.InventorySummary{}, fmt.Errorf("get products: %w", err)
	}

	now := s.now()

	sales, err := s.repo.ProductSales(ctx, now.Add(-month), now.Add(-week))
	if err != nil {
		return entity.InventorySummary{}, fmt.Errorf("get product sales: %w", err)
	}

	sold := make(map[int64]int, len(sales))
	for id, ps := range sales {
		sold[id] = ps.Sold30d
	}

	dayStart, _ := timezone.DayRangeUTC(now)

	today, err := s.repo.CountMovementsSince(ctx, dayStart)
	if err != nil {
		return entity.InventorySummary{}, fmt.Errorf("count movements today: %w", err)
	}

	lastWeek, err := s.repo.CountMovementsSince(ctx, now.Add(-week))
	if err != nil {
		return entity.InventorySummary{}, fmt.Errorf("count movements this week: %w", err)
	}

	return entity.BuildInventorySummary(products, sold, today, lastWeek), nil
}

// ProductInventory lists active products with stock status, sales velocity and alerts,
// alerted products first.
func (s *Service) ProductInventory(ctx context.Context) ([]entity.ProductInventory, error) {
	products, err := s.repo.Products(ctx, entity.ProductFilter{ActiveOnly: true, Page: entity.Page{Limit: entity.MaxLimit}})
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	now := s.now()

	sales, err := s.repo.ProductSales(ctx, now.Add(-month), now.Add(-week))
	if err != nil {
		return nil, fmt.Errorf("get product sales: %w", err)
	}

	items := make([]entity.ProductInventory, 0, len(products))
	for _, p := range products {
		items = append(items, entity.NewProductInventory(p, sales[p.ID]))
	}

	entity.SortInventory(items)

	return items, nil
}

func (s *Service) Movements(ctx context.Context, f entity.MovementFilter) ([]entity.InventoryMovement, error) {
	if f.Limit == 0 {
		f.Limit = defaultMovementsLimit
	}

	if f.Limit > entity.MaxLimit {
		f.Limit = entity.MaxLimit
	}

	movements, err := s.repo.Movements(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get movements: %w", err)
	}

	return movements, nil
}

// CreateMovement records a manual entrada, salida or ajuste.
func (s *Service) CreateMovement(ctx context.Context, c entity.MovementCreate) (entity.InventoryMovement, error) {
	err := c.Validate()
	if err != nil {
		return entity.InventoryMovement{}, err
	}

	if c.CreatedBy == nil {
		c.CreatedBy = actor(ctx)
	}

	m, err := s.repo.ApplyStockChange(ctx, entity.StockChange{
		ProductID:     c.ProductID,
		Type:          c.MovementType,
		Quantity:      c.Quantity,
		ReferenceType: entity.RefManual,
		Notes:         c.Notes,
		CreatedBy:     c.CreatedBy,
	})
	if err != nil {
		return entity.InventoryMovement{}, fmt.Errorf("apply stock change to product %d: %w", c.ProductID, err)
	}

	s.logMovement(ctx, m)

	return m, nil
}

// AdjustStock sets the stock of a product to an absolute value.
func (s *Service) AdjustStock(ctx context.Context, a entity.StockAdjustment) (entity.InventoryMovement, error) {
	err := a.Validate()
	if err != nil {
		return entity.InventoryMovement{}, err
	}

	if a.CreatedBy == nil {
		a.CreatedBy = actor(ctx)
	}

	m, err := s.repo.ApplyStockChange(ctx, entity.StockChange{
		ProductID:     a.ProductID,
		Type:          entity.MovementAdjustment,
		Quantity:      a.NewStock,
		ReferenceType: entity.RefStockAdjustment,
		Notes:         a.Reason,
		CreatedBy:     a.CreatedBy,
	})
	if err != nil {
		return entity.InventoryMovement{}, fmt.Errorf("adjust stock of product %d: %w", a.ProductID, err)
	}

	s.logMovement(ctx, m)

	return m, nil
}

func (s *Service) logMovement(ctx context.Context, m entity.InventoryMovement) {
	slog.InfoContext(ctx, "stock changed",
		"product_id", m.ProductID,
		"movement_type", m.MovementType,
		"quantity", m.Quantity,
		"stock_before", m.StockBefore,
		"stock_after", m.StockAfter,
	)
}
