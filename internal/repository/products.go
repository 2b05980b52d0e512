package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var productColumns = []string{
	"id",
	"sku",
	"name",
	"description",
	"model",
	"category",
	"price",
	"installation_price",
	"supplier_cost",
	"stock",
	"min_stock_alert",
	"features",
	"image_url",
	"is_active",
	"created_at",
	"updated_at",
}

func (r *Repository) Products(ctx context.Context, f entity.ProductFilter) ([]entity.Product, error) {
	stmt := psql.Select(productColumns...).From("products").OrderBy("name", "id")

	if f.ActiveOnly {
		stmt = stmt.Where(sq.Eq{"is_active": true})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		stmt = stmt.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"model": pattern},
			sq.ILike{"sku": pattern},
		})
	}

	return r.queryProducts(ctx, page(stmt, f.Page))
}

// LowStockProducts lists active products at or below their alert threshold.
func (r *Repository) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	stmt := psql.Select(productColumns...).
		From("products").
		Where(sq.Eq{"is_active": true}).
		Where("stock <= min_stock_alert").
		OrderBy("stock", "name")

	return r.queryProducts(ctx, stmt)
}

func (r *Repository) Product(ctx context.Context, id int64) (entity.Product, error) {
	q, args, err := psql.Select(productColumns...).From("products").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entity.Product{}, err
	}

	return scanProduct(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) CreateProduct(ctx context.Context, c entity.ProductCreate) (entity.Product, error) {
	q, args, err := psql.Insert("products").
		Columns(
			"sku",
			"name",
			"description",
			"model",
			"category",
			"price",
			"installation_price",
			"supplier_cost",
			"stock",
			"min_stock_alert",
			"features",
			"image_url",
		).
		Values(
			c.SKU,
			c.Name,
			c.Description,
			c.Model,
			c.Category,
			c.Price,
			c.InstallationPrice,
			c.SupplierCost,
			c.Stock,
			c.MinStockAlert,
			c.Features,
			c.ImageURL,
		).
		Suffix("RETURNING " + joinColumns(productColumns)).
		ToSql()
	if err != nil {
		return entity.Product{}, err
	}

	return scanProduct(r.db.QueryRow(ctx, q, args...))
}

// UpdateProduct stores every column except stock, which only moves through ApplyStockChange.
func (r *Repository) UpdateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	q, args, err := psql.Update("products").
		SetMap(map[string]any{
			"sku":                p.SKU,
			"name":               p.Name,
			"description":        p.Description,
			"model":              p.Model,
			"category":           p.Category,
			"price":              p.Price,
			"installation_price": p.InstallationPrice,
			"supplier_cost":      p.SupplierCost,
			"min_stock_alert":    p.MinStockAlert,
			"features":           p.Features,
			"image_url":          p.ImageURL,
			"is_active":          p.IsActive,
			"updated_at":         sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + joinColumns(productColumns)).
		ToSql()
	if err != nil {
		return entity.Product{}, err
	}

	return scanProduct(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, `DELETE FROM products WHERE id = $1`, id)
}

func (r *Repository) queryProducts(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Product, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]entity.Product, 0)

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func scanProduct(row pgx.Row) (p entity.Product, err error) {
	err = row.Scan(
		&p.ID,
		&p.SKU,
		&p.Name,
		&p.Description,
		&p.Model,
		&p.Category,
		&p.Price,
		&p.InstallationPrice,
		&p.SupplierCost,
		&p.Stock,
		&p.MinStockAlert,
		&p.Features,
		&p.ImageURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return entity.Product{}, mapErr(err)
	}

	return p, nil
}
