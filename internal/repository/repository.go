package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zafesys/suite/internal/entity"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// withTx runs fn inside a transaction and commits when it returns nil.
func (r *Repository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	err = fn(tx)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// mapErr translates driver errors into entity errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return entity.ErrAlreadyExists
		case pgForeignKeyViolation:
			return entity.ErrConflict
		case pgCheckViolation:
			return entity.ErrInvalidArgument
		}
	}

	return err
}

func execAffected(ctx context.Context, db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}, q string, args ...any) error {
	result, err := db.Exec(ctx, q, args...)
	if err != nil {
		return mapErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func page(stmt sq.SelectBuilder, p entity.Page) sq.SelectBuilder {
	if p.Limit > 0 {
		stmt = stmt.Limit(p.Limit)
	}

	if p.Skip > 0 {
		stmt = stmt.Offset(p.Skip)
	}

	return stmt
}

func civil(d *entity.Date) *time.Time {
	if d == nil {
		return nil
	}

	t := d.Civil()

	return &t
}

func fromCivil(t *time.Time) *entity.Date {
	if t == nil {
		return nil
	}

	d := entity.FromCivil(*t)

	return &d
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
