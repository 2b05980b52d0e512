package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var customerColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"document_type",
	"document_number",
	"address",
	"city",
	"notes",
	"lead_id",
	"is_active",
	"created_at",
	"updated_at",
}

func (r *Repository) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, error) {
	stmt := psql.Select(customerColumns...).From("customers").OrderBy("created_at DESC", "id DESC")

	if !f.IncludeInactive {
		stmt = stmt.Where(sq.Eq{"is_active": true})
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

	customers := make([]entity.Customer, 0)

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (r *Repository) Customer(ctx context.Context, id int64) (entity.Customer, error) {
	return r.customer(ctx, sq.Eq{"id": id})
}

func (r *Repository) CustomerByPhone(ctx context.Context, phone string) (entity.Customer, error) {
	return r.customer(ctx, sq.Eq{"phone": phone})
}

func (r *Repository) CustomerByLead(ctx context.Context, leadID int64) (entity.Customer, error) {
	return r.customer(ctx, sq.Eq{"lead_id": leadID})
}

func (r *Repository) CreateCustomer(ctx context.Context, c entity.CustomerCreate) (entity.Customer, error) {
	q, args, err := psql.Insert("customers").
		Columns("name", "phone", "email", "document_type", "document_number", "address", "city", "notes", "lead_id").
		Values(c.Name, c.Phone, c.Email, c.DocumentType, c.DocumentNumber, c.Address, c.City, c.Notes, c.LeadID).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return entity.Customer{}, err
	}

	return scanCustomer(r.db.QueryRow(ctx, q, args...))
}

// ConvertLead creates the customer and closes the lead in one transaction.
func (r *Repository) ConvertLead(ctx context.Context, c entity.CustomerCreate) (entity.Customer, error) {
	var customer entity.Customer

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		q, args, err := psql.Insert("customers").
			Columns("name", "phone", "email", "address", "city", "lead_id").
			Values(c.Name, c.Phone, c.Email, c.Address, c.City, c.LeadID).
			Suffix("RETURNING " + joinColumns(customerColumns)).
			ToSql()
		if err != nil {
			return err
		}

		customer, err = scanCustomer(tx.QueryRow(ctx, q, args...))
		if err != nil {
			return err
		}

		return execAffected(ctx, tx,
			`UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`,
			entity.LeadStatusWon, c.LeadID,
		)
	})
	if err != nil {
		return entity.Customer{}, err
	}

	return customer, nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	q, args, err := psql.Update("customers").
		SetMap(map[string]any{
			"name":            c.Name,
			"phone":           c.Phone,
			"email":           c.Email,
			"document_type":   c.DocumentType,
			"document_number": c.DocumentNumber,
			"address":         c.Address,
			"city":            c.City,
			"notes":           c.Notes,
			"is_active":       c.IsActive,
			"updated_at":      sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return entity.Customer{}, err
	}

	return scanCustomer(r.db.QueryRow(ctx, q, args...))
}

// DeactivateCustomer is a soft delete.
func (r *Repository) DeactivateCustomer(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, `UPDATE customers SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
}

func (r *Repository) customer(ctx context.Context, where sq.Sqlizer) (entity.Customer, error) {
	q, args, err := psql.Select(customerColumns...).
		From("customers").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return entity.Customer{}, err
	}

	return scanCustomer(r.db.QueryRow(ctx, q, args...))
}

func scanCustomer(row pgx.Row) (c entity.Customer, err error) {
	err = row.Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.DocumentType,
		&c.DocumentNumber,
		&c.Address,
		&c.City,
		&c.Notes,
		&c.LeadID,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return entity.Customer{}, mapErr(err)
	}

	return c, nil
}
