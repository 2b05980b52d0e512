package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/zafesys/suite/internal/entity"
)

const minSearchLen = 2

func (s *Service) Products(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	f.Page = f.Page.Normalize()

	products, err := s.repo.Products(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return products, nil
}

// SearchProducts matches name, model or SKU of active products.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLen {
		return nil, entity.ErrSearchQueryTooShort
	}

	return s.Products(ctx, entity.ProductFilter{ActiveOnly: true, Search: query})
}

func (s *Service) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.repo.LowStockProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get low stock products: %w", err)
	}

	return products, nil
}

func (s *Service) Product(ctx context.Context, id int64) (entity.Product, error) {
	p, err := s.repo.Product(ctx, id)
	if err != nil {
		return entity.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	return p, nil
}

func (s *Service) CreateProduct(ctx context.Context, c entity.ProductCreate) (entity.Product, error) {
	err := c.Validate()
	if err != nil {
		return entity.Product{}, err
	}

	p, err := s.repo.CreateProduct(ctx, c)
	if err != nil {
		return entity.Product{}, fmt.Errorf("create product %s: %w", c.SKU, err)
	}

	slog.InfoContext(ctx, "product created", "product_id", p.ID, "sku", p.SKU)

	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id int64, u entity.ProductUpdate) (entity.Product, error) {
	err := u.Validate()
	if err != nil {
		return entity.Product{}, err
	}

	p, err := s.repo.Product(ctx, id)
	if err != nil {
		return entity.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}

	u.Apply(&p)

	p, err = s.repo.UpdateProduct(ctx, p)
	if err != nil {
		return entity.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}

	return p, nil
}

// SetProductStock overwrites the stock and records an ajuste movement.
func (s *Service) SetProductStock(ctx context.Context, id int64, stock int) (entity.Product, error) {
	_, err := s.AdjustStock(ctx, entity.StockAdjustment{ProductID: id, NewStock: stock})
	if err != nil {
		return entity.Product{}, err
	}

	return s.Product(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	slog.InfoContext(ctx, "product deleted", "product_id", id)

	return nil
}
