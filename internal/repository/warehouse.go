package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var warehouseOrderColumns = []string{
	"i.id",
	"COALESCE(l.name, 'Cliente')",
	"i.address",
	"i.city",
	"i.scheduled_date",
	"i.scheduled_time",
	"i.technician_id",
	"t.full_name",
	"i.product_id",
	"p.name",
	"p.model",
	"p.sku",
	"p.image_url",
	"i.quantity",
	"i.warehouse_status",
	"i.prepared_by_id",
	"pu.full_name",
	"i.prepared_at",
	"i.delivered_by_id",
	"du.full_name",
	"i.delivered_at",
	"i.customer_notes",
}

func selectWarehouseOrders() sq.SelectBuilder {
	return psql.Select(warehouseOrderColumns...).
		From("installations i").
		LeftJoin("leads l ON l.id = i.lead_id").
		LeftJoin("products p ON p.id = i.product_id").
		LeftJoin("technicians t ON t.id = i.technician_id").
		LeftJoin("users pu ON pu.id = i.prepared_by_id").
		LeftJoin("users du ON du.id = i.delivered_by_id")
}

// WarehouseOrders lists open installations scheduled inside the range, by schedule.
func (r *Repository) WarehouseOrders(ctx context.Context, f entity.WarehouseOrderFilter) ([]entity.WarehouseOrder, error) {
	stmt := selectWarehouseOrders().
		Where(sq.GtOrEq{"i.scheduled_date": f.From.Civil()}).
		Where(sq.LtOrEq{"i.scheduled_date": f.To.Civil()}).
		Where(sq.Eq{"i.status": entity.WarehouseOpenStatuses}).
		OrderBy("i.scheduled_date", "i.scheduled_time NULLS LAST", "i.id")

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"i.warehouse_status": *f.Status})
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

	orders := make([]entity.WarehouseOrder, 0)

	for rows.Next() {
		o, err := scanWarehouseOrder(rows)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *Repository) WarehouseOrder(ctx context.Context, installationID int64) (entity.WarehouseOrder, error) {
	q, args, err := selectWarehouseOrders().Where(sq.Eq{"i.id": installationID}).ToSql()
	if err != nil {
		return entity.WarehouseOrder{}, err
	}

	return scanWarehouseOrder(r.db.QueryRow(ctx, q, args...))
}

// SetWarehouseStatus records who prepared or delivered the order and when.
func (r *Repository) SetWarehouseStatus(
	ctx context.Context,
	installationID int64,
	status entity.WarehouseStatus,
	userID int64,
	at time.Time,
) error {
	set := map[string]any{
		"warehouse_status": status,
		"updated_at":       sq.Expr("NOW()"),
	}

	switch status {
	case entity.WarehousePrepared:
		set["prepared_by_id"] = userID
		set["prepared_at"] = at
	case entity.WarehouseDelivered:
		set["delivered_by_id"] = userID
		set["delivered_at"] = at
	}

	q, args, err := psql.Update("installations").SetMap(set).Where(sq.Eq{"id": installationID}).ToSql()
	if err != nil {
		return err
	}

	return execAffected(ctx, r.db, q, args...)
}

func scanWarehouseOrder(row pgx.Row) (o entity.WarehouseOrder, err error) {
	var (
		scheduledDate *time.Time
		p             entity.OrderProduct
		productName   *string
	)

	err = row.Scan(
		&o.InstallationID,
		&o.ClientName,
		&o.Address,
		&o.City,
		&scheduledDate,
		&o.ScheduledTime,
		&o.TechnicianID,
		&o.TechnicianName,
		&p.ProductID,
		&productName,
		&p.Model,
		&p.SKU,
		&p.ImageURL,
		&p.Quantity,
		&o.WarehouseStatus,
		&o.PreparedByID,
		&o.PreparedBy,
		&o.PreparedAt,
		&o.DeliveredByID,
		&o.DeliveredBy,
		&o.DeliveredAt,
		&o.Notes,
	)
	if err != nil {
		return entity.WarehouseOrder{}, mapErr(err)
	}

	o.ScheduledDate = fromCivil(scheduledDate)
	o.Products = []entity.OrderProduct{}

	if productName != nil {
		p.Name = *productName
		o.Products = append(o.Products, p)
	}

	return o, nil
}
