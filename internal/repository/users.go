package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

const selectUser = `SELECT id, email, hashed_password, full_name, phone, role, is_active, created_at, updated_at FROM users`

func (r *Repository) CreateUser(ctx context.Context, u entity.User) (entity.User, error) {
	const q = `
	INSERT INTO users (email, hashed_password, full_name, phone, role, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, q, u.Email, u.HashedPassword, u.FullName, u.Phone, u.Role, u.IsActive).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return entity.User{}, mapErr(err)
	}

	return u, nil
}

func (r *Repository) User(ctx context.Context, id int64) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+" WHERE id = $1", id))
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	return scanUser(r.db.QueryRow(ctx, selectUser+" WHERE LOWER(email) = LOWER($1)", email))
}

func scanUser(row pgx.Row) (u entity.User, err error) {
	err = row.Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.FullName,
		&u.Phone,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return entity.User{}, mapErr(err)
	}

	return u, nil
}

// Users lists staff users by name.
func (r *Repository) Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error) {
	stmt := psql.Select("id", "email", "hashed_password", "full_name", "phone", "role", "is_active", "created_at", "updated_at").
		From("users").
		OrderBy("full_name", "id")

	if f.Role != nil {
		stmt = stmt.Where(sq.Eq{"role": *f.Role})
	}

	if f.IsActive != nil {
		stmt = stmt.Where(sq.Eq{"is_active": *f.IsActive})
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

	users := make([]entity.User, 0)

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *Repository) UpdateUser(ctx context.Context, u entity.User) (entity.User, error) {
	const q = `
	UPDATE users
	SET email = $1, hashed_password = $2, full_name = $3, phone = $4, role = $5, is_active = $6, updated_at = NOW()
	WHERE id = $7
	`

	err := execAffected(ctx, r.db, q, u.Email, u.HashedPassword, u.FullName, u.Phone, u.Role, u.IsActive, u.ID)
	if err != nil {
		return entity.User{}, err
	}

	return r.User(ctx, u.ID)
}
