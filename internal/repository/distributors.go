package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var distributorColumns = []string{
	"d.id",
	"d.name",
	"d.company_name",
	"d.nit",
	"d.phone",
	"d.email",
	"d.address",
	"d.city",
	"d.zone",
	"d.contact_person",
	"d.notes",
	"d.discount_percentage",
	"d.is_active",
	"d.created_at",
	"d.updated_at",
}

var saleColumns = []string{
	"s.id",
	"s.distributor_id",
	"s.product_id",
	"s.quantity",
	"s.unit_price",
	"s.total_price",
	"s.sale_date",
	"s.invoice_number",
	"s.payment_status",
	"s.amount_paid",
	"s.notes",
	"s.created_at",
	"s.updated_at",
	"p.name",
	"p.sku",
	"d.name",
}

// Distributors lists distributors with the totals of their sales ledger.
func (r *Repository) Distributors(ctx context.Context, f entity.DistributorFilter) ([]entity.DistributorWithTotals, error) {
	stmt := psql.Select(distributorColumns...).
		Columns("COALESCE(SUM(s.total_price), 0)", "COALESCE(SUM(s.quantity), 0)").
		From("distributors d").
		LeftJoin("distributor_sales s ON s.distributor_id = d.id").
		GroupBy("d.id").
		OrderBy("d.name", "d.id")

	if !f.IncludeInactive {
		stmt = stmt.Where(sq.Eq{"d.is_active": true})
	}

	q, args, err := page(stmt, f.Page).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distributors := make([]entity.DistributorWithTotals, 0)

	for rows.Next() {
		var d entity.DistributorWithTotals

		err = rows.Scan(append(distributorDest(&d.Distributor), &d.TotalSales, &d.TotalUnits)...)
		if err != nil {
			return nil, err
		}

		distributors = append(distributors, d)
	}

	return distributors, rows.Err()
}

func (r *Repository) Distributor(ctx context.Context, id int64) (entity.Distributor, error) {
	q, args, err := psql.Select(distributorColumns...).From("distributors d").Where(sq.Eq{"d.id": id}).ToSql()
	if err != nil {
		return entity.Distributor{}, err
	}

	return scanDistributor(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) CreateDistributor(ctx context.Context, c entity.DistributorCreate) (entity.Distributor, error) {
	q, args, err := psql.Insert("distributors AS d").
		Columns(
			"name",
			"company_name",
			"nit",
			"phone",
			"email",
			"address",
			"city",
			"zone",
			"contact_person",
			"notes",
			"discount_percentage",
		).
		Values(
			c.Name,
			c.CompanyName,
			c.NIT,
			c.Phone,
			c.Email,
			c.Address,
			c.City,
			c.Zone,
			c.ContactPerson,
			c.Notes,
			c.DiscountPercentage,
		).
		Suffix("RETURNING " + joinColumns(distributorColumns)).
		ToSql()
	if err != nil {
		return entity.Distributor{}, err
	}

	return scanDistributor(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) UpdateDistributor(ctx context.Context, d entity.Distributor) (entity.Distributor, error) {
	q, args, err := psql.Update("distributors d").
		SetMap(map[string]any{
			"name":                d.Name,
			"company_name":        d.CompanyName,
			"nit":                 d.NIT,
			"phone":               d.Phone,
			"email":               d.Email,
			"address":             d.Address,
			"city":                d.City,
			"zone":                d.Zone,
			"contact_person":      d.ContactPerson,
			"notes":               d.Notes,
			"discount_percentage": d.DiscountPercentage,
			"is_active":           d.IsActive,
			"updated_at":          sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"d.id": d.ID}).
		Suffix("RETURNING " + joinColumns(distributorColumns)).
		ToSql()
	if err != nil {
		return entity.Distributor{}, err
	}

	return scanDistributor(r.db.QueryRow(ctx, q, args...))
}

// DeactivateDistributor is a soft delete. The sales ledger is kept.
func (r *Repository) DeactivateDistributor(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, `UPDATE distributors SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
}

func (r *Repository) Sales(ctx context.Context, f entity.SaleFilter) ([]entity.DistributorSale, error) {
	stmt := selectSales().OrderBy("s.sale_date DESC", "s.id DESC")

	if f.DistributorID != nil {
		stmt = stmt.Where(sq.Eq{"s.distributor_id": *f.DistributorID})
	}

	if f.ProductID != nil {
		stmt = stmt.Where(sq.Eq{"s.product_id": *f.ProductID})
	}

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"s.sale_date": f.From.Civil()})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.LtOrEq{"s.sale_date": f.To.Civil()})
	}

	q, args, err := page(stmt, f.Page).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]entity.DistributorSale, 0)

	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}

		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func (r *Repository) Sale(ctx context.Context, id int64) (entity.DistributorSale, error) {
	q, args, err := selectSales().Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return entity.DistributorSale{}, err
	}

	return scanSale(r.db.QueryRow(ctx, q, args...))
}

// CreateSale records the sale and takes the units out of stock.
func (r *Repository) CreateSale(ctx context.Context, s entity.DistributorSale, createdBy *string) (entity.DistributorSale, error) {
	var id int64

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		const q = `
		INSERT INTO distributor_sales
			(distributor_id, product_id, quantity, unit_price, total_price, sale_date, invoice_number,
			 payment_status, amount_paid, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
		`

		err := tx.QueryRow(
			ctx,
			q,
			s.DistributorID,
			s.ProductID,
			s.Quantity,
			s.UnitPrice,
			s.TotalPrice,
			s.SaleDate.Civil(),
			s.InvoiceNumber,
			s.PaymentStatus,
			s.AmountPaid,
			s.Notes,
		).Scan(&id)
		if err != nil {
			return mapErr(err)
		}

		notes := "Venta distribuidor #" + itoa(id)

		_, err = applyStockChange(ctx, tx, entity.StockChange{
			ProductID:     s.ProductID,
			Type:          entity.MovementOut,
			Quantity:      s.Quantity,
			ReferenceType: entity.RefDistributorSale,
			ReferenceID:   &id,
			Notes:         &notes,
			CreatedBy:     createdBy,
		})

		return err
	})
	if err != nil {
		return entity.DistributorSale{}, err
	}

	return r.Sale(ctx, id)
}

// UpdateSale stores the sale. A positive quantityDelta takes more units out of
// stock, a negative one returns them.
func (r *Repository) UpdateSale(
	ctx context.Context,
	s entity.DistributorSale,
	quantityDelta int,
	updatedBy *string,
) (entity.DistributorSale, error) {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		const q = `
		UPDATE distributor_sales
		SET quantity = $1, unit_price = $2, total_price = $3, sale_date = $4, invoice_number = $5,
			payment_status = $6, amount_paid = $7, notes = $8, updated_at = NOW()
		WHERE id = $9
		`

		err := execAffected(
			ctx,
			tx,
			q,
			s.Quantity,
			s.UnitPrice,
			s.TotalPrice,
			s.SaleDate.Civil(),
			s.InvoiceNumber,
			s.PaymentStatus,
			s.AmountPaid,
			s.Notes,
			s.ID,
		)
		if err != nil {
			return err
		}

		if quantityDelta == 0 {
			return nil
		}

		change := entity.StockChange{
			ProductID:     s.ProductID,
			Type:          entity.MovementOut,
			Quantity:      quantityDelta,
			ReferenceType: entity.RefDistributorSale,
			ReferenceID:   &s.ID,
			CreatedBy:     updatedBy,
		}

		if quantityDelta < 0 {
			change.Type = entity.MovementIn
		}

		_, err = applyStockChange(ctx, tx, change)

		return err
	})
	if err != nil {
		return entity.DistributorSale{}, err
	}

	return r.Sale(ctx, s.ID)
}

// DeleteSale removes the sale and returns its units to stock.
func (r *Repository) DeleteSale(ctx context.Context, id int64, deletedBy *string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		var (
			productID int64
			quantity  int
		)

		err := tx.QueryRow(ctx, `DELETE FROM distributor_sales WHERE id = $1 RETURNING product_id, quantity`, id).
			Scan(&productID, &quantity)
		if err != nil {
			return mapErr(err)
		}

		notes := "Venta distribuidor #" + itoa(id) + " eliminada"

		_, err = applyStockChange(ctx, tx, entity.StockChange{
			ProductID:     productID,
			Type:          entity.MovementIn,
			Quantity:      quantity,
			ReferenceType: entity.RefDistributorSale,
			ReferenceID:   &id,
			Notes:         &notes,
			CreatedBy:     deletedBy,
		})

		return err
	})
}

func selectSales() sq.SelectBuilder {
	return psql.Select(saleColumns...).
		From("distributor_sales s").
		LeftJoin("products p ON p.id = s.product_id").
		LeftJoin("distributors d ON d.id = s.distributor_id")
}

func distributorDest(d *entity.Distributor) []any {
	return []any{
		&d.ID,
		&d.Name,
		&d.CompanyName,
		&d.NIT,
		&d.Phone,
		&d.Email,
		&d.Address,
		&d.City,
		&d.Zone,
		&d.ContactPerson,
		&d.Notes,
		&d.DiscountPercentage,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}

func scanDistributor(row pgx.Row) (d entity.Distributor, err error) {
	err = row.Scan(distributorDest(&d)...)
	if err != nil {
		return entity.Distributor{}, mapErr(err)
	}

	return d, nil
}

func scanSale(row pgx.Row) (s entity.DistributorSale, err error) {
	var saleDate time.Time

	err = row.Scan(
		&s.ID,
		&s.DistributorID,
		&s.ProductID,
		&s.Quantity,
		&s.UnitPrice,
		&s.TotalPrice,
		&saleDate,
		&s.InvoiceNumber,
		&s.PaymentStatus,
		&s.AmountPaid,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.ProductName,
		&s.ProductSKU,
		&s.DistributorName,
	)
	if err != nil {
		return entity.DistributorSale{}, mapErr(err)
	}

	s.SaleDate = entity.FromCivil(saleDate)

	return s, nil
}
