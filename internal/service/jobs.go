package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zafesys/suite/internal/entity"
)

// CheckLowStock mails the alert recipients the products at or below their
// alert threshold and publishes one inventory.low_stock event per product.
func (s *Service) CheckLowStock(ctx context.Context) error {
	products, err := s.repo.LowStockProducts(ctx)
	if err != nil {
		return fmt.Errorf("get low stock products: %w", err)
	}

	if len(products) == 0 {
		return nil
	}

	for _, p := range products {
		s.events.Publish(ctx, entity.EventInventoryLowStock, "product-"+strconv.FormatInt(p.ID, 10), entity.LowStockAlert{
			ProductID:     p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Stock:         p.Stock,
			MinStockAlert: p.MinStockAlert,
			Status:        p.StockStatus(),
		})
	}

	subject := fmt.Sprintf("Inventario: %d productos con stock bajo", len(products))

	err = s.mailer.SendAlert(subject, lowStockBody(products, entity.NewDate(s.now())))
	if err != nil {
		return fmt.Errorf("send low stock alert: %w", err)
	}

	slog.InfoContext(ctx, "low stock alert sent", "products", len(products))

	return nil
}

func lowStockBody(products []entity.Product, day entity.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Productos con stock bajo al %s:\n\n", day)

	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%s): %d unidades, alerta en %d [%s]\n",
			p.Name, p.SKU, p.Stock, p.MinStockAlert, p.StockStatus())
	}

	return b.String()
}

// PurgeOldLocations applies the configured GPS history retention.
func (s *Service) PurgeOldLocations(ctx context.Context) error {
	return s.PurgeLocations(ctx, s.cfg.Jobs.LocationRetention)
}
