package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

// ApplyStockChange locks the product row, moves its stock and records the movement.
func (r *Repository) ApplyStockChange(ctx context.Context, c entity.StockChange) (entity.InventoryMovement, error) {
	var m entity.InventoryMovement

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var err error

		m, err = applyStockChange(ctx, tx, c)

		return err
	})
	if err != nil {
		return entity.InventoryMovement{}, err
	}

	return m, nil
}

func applyStockChange(ctx context.Context, tx pgx.Tx, c entity.StockChange) (entity.InventoryMovement, error) {
	var stock int

	err := tx.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1 FOR UPDATE`, c.ProductID).Scan(&stock)
	if err != nil {
		return entity.InventoryMovement{}, mapErr(err)
	}

	newStock, qty, err := c.Apply(stock)
	if err != nil {
		return entity.InventoryMovement{}, err
	}

	_, err = tx.Exec(ctx, `UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`, newStock, c.ProductID)
	if err != nil {
		return entity.InventoryMovement{}, mapErr(err)
	}

	m := entity.InventoryMovement{
		ProductID:    c.ProductID,
		MovementType: c.Type,
		Quantity:     qty,
		StockBefore:  stock,
		StockAfter:   newStock,
		ReferenceID:  c.ReferenceID,
		Notes:        c.Notes,
		CreatedBy:    c.CreatedBy,
	}

	if c.ReferenceType != "" {
		ref := c.ReferenceType
		m.ReferenceType = &ref
	}

	const q = `
	INSERT INTO inventory_movements
		(product_id, movement_type, quantity, stock_before, stock_after, reference_type, reference_id, notes, created_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at
	`

	err = tx.QueryRow(
		ctx,
		q,
		m.ProductID,
		m.MovementType,
		m.Quantity,
		m.StockBefore,
		m.StockAfter,
		m.ReferenceType,
		m.ReferenceID,
		m.Notes,
		m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return entity.InventoryMovement{}, mapErr(err)
	}

	return m, nil
}

func (r *Repository) Movements(ctx context.Context, f entity.MovementFilter) ([]entity.InventoryMovement, error) {
	stmt := psql.Select(
		"m.id",
		"m.product_id",
		"m.movement_type",
		"m.quantity",
		"m.stock_before",
		"m.stock_after",
		"m.reference_type",
		"m.reference_id",
		"m.notes",
		"m.created_by",
		"m.created_at",
		"p.name",
		"p.model",
	).
		From("inventory_movements m").
		LeftJoin("products p ON p.id = m.product_id").
		OrderBy("m.created_at DESC", "m.id DESC")

	if f.ProductID != nil {
		stmt = stmt.Where(sq.Eq{"m.product_id": *f.ProductID})
	}

	if f.Since != nil {
		stmt = stmt.Where(sq.GtOrEq{"m.created_at": *f.Since})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]entity.InventoryMovement, 0)

	for rows.Next() {
		var m entity.InventoryMovement

		err = rows.Scan(
			&m.ID,
			&m.ProductID,
			&m.MovementType,
			&m.Quantity,
			&m.StockBefore,
			&m.StockAfter,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.Notes,
			&m.CreatedBy,
			&m.CreatedAt,
			&m.ProductName,
			&m.ProductModel,
		)
		if err != nil {
			return nil, err
		}

		movements = append(movements, m)
	}

	return movements, rows.Err()
}

func (r *Repository) CountMovementsSince(ctx context.Context, since time.Time) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_movements WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ProductSales counts completed installations per product created since the two cut-offs.
func (r *Repository) ProductSales(ctx context.Context, since30d, since7d time.Time) (map[int64]entity.ProductSales, error) {
	const q = `
	SELECT product_id,
		COUNT(*) FILTER (WHERE created_at >= $2),
		COUNT(*) FILTER (WHERE created_at >= $3)
	FROM installations
	WHERE status = $1 AND created_at >= $2
	GROUP BY product_id
	`

	rows, err := r.db.Query(ctx, q, entity.InstallationCompleted, since30d, since7d)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make(map[int64]entity.ProductSales)

	for rows.Next() {
		var s entity.ProductSales

		err = rows.Scan(&s.ProductID, &s.Sold30d, &s.Sold7d)
		if err != nil {
			return nil, err
		}

		sales[s.ProductID] = s
	}

	return sales, rows.Err()
}
