package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var technicianColumns = []string{
	"id",
	"user_id",
	"full_name",
	"phone",
	"email",
	"document_id",
	"zone",
	"specialties",
	"pin_hash",
	"is_available",
	"is_active",
	"created_at",
	"updated_at",
}

func (r *Repository) Technicians(ctx context.Context, activeOnly bool) ([]entity.Technician, error) {
	stmt := psql.Select(technicianColumns...).From("technicians").OrderBy("full_name", "id")

	if activeOnly {
		stmt = stmt.Where(sq.Eq{"is_active": true})
	}

	return r.queryTechnicians(ctx, stmt)
}

// AvailableTechnicians lists active technicians that take new work.
func (r *Repository) AvailableTechnicians(ctx context.Context) ([]entity.Technician, error) {
	stmt := psql.Select(technicianColumns...).
		From("technicians").
		Where(sq.Eq{"is_active": true, "is_available": true}).
		OrderBy("full_name", "id")

	return r.queryTechnicians(ctx, stmt)
}

func (r *Repository) Technician(ctx context.Context, id int64) (entity.Technician, error) {
	return r.technician(ctx, sq.Eq{"id": id})
}

func (r *Repository) TechnicianByDocument(ctx context.Context, documentID string) (entity.Technician, error) {
	return r.technician(ctx, sq.Eq{"document_id": documentID})
}

func (r *Repository) TechnicianByPhone(ctx context.Context, phone string) (entity.Technician, error) {
	return r.technician(ctx, sq.Eq{"phone": phone})
}

func (r *Repository) CreateTechnician(ctx context.Context, c entity.TechnicianCreate) (entity.Technician, error) {
	q, args, err := psql.Insert("technicians").
		Columns("user_id", "full_name", "phone", "email", "document_id", "zone", "specialties").
		Values(c.UserID, c.FullName, c.Phone, c.Email, c.DocumentID, c.Zone, c.Specialties).
		Suffix("RETURNING " + joinColumns(technicianColumns)).
		ToSql()
	if err != nil {
		return entity.Technician{}, err
	}

	return scanTechnician(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) UpdateTechnician(ctx context.Context, t entity.Technician) (entity.Technician, error) {
	q, args, err := psql.Update("technicians").
		SetMap(map[string]any{
			"full_name":    t.FullName,
			"phone":        t.Phone,
			"email":        t.Email,
			"document_id":  t.DocumentID,
			"zone":         t.Zone,
			"specialties":  t.Specialties,
			"is_available": t.IsAvailable,
			"is_active":    t.IsActive,
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": t.ID}).
		Suffix("RETURNING " + joinColumns(technicianColumns)).
		ToSql()
	if err != nil {
		return entity.Technician{}, err
	}

	return scanTechnician(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) SetTechnicianAvailability(ctx context.Context, id int64, available bool) (entity.Technician, error) {
	q := `UPDATE technicians SET is_available = $1, updated_at = NOW() WHERE id = $2 RETURNING ` +
		joinColumns(technicianColumns)

	return scanTechnician(r.db.QueryRow(ctx, q, available, id))
}

func (r *Repository) SetTechnicianPIN(ctx context.Context, id int64, pinHash string) error {
	return execAffected(ctx, r.db, `UPDATE technicians SET pin_hash = $1, updated_at = NOW() WHERE id = $2`, pinHash, id)
}

func (r *Repository) DeleteTechnician(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, `DELETE FROM technicians WHERE id = $1`, id)
}

func (r *Repository) SavePINAttempt(ctx context.Context, technicianID int64, at time.Time) error {
	_, err := r.db.Exec(ctx, `INSERT INTO pin_attempts (technician_id, created_at) VALUES ($1, $2)`, technicianID, at)
	if err != nil {
		return mapErr(err)
	}

	return nil
}

func (r *Repository) CountPINAttempts(ctx context.Context, technicianID int64, since time.Time) (int, error) {
	var count int

	const q = `SELECT COUNT(*) FROM pin_attempts WHERE technician_id = $1 AND created_at > $2`

	err := r.db.QueryRow(ctx, q, technicianID, since).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) ClearPINAttempts(ctx context.Context, technicianID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pin_attempts WHERE technician_id = $1`, technicianID)
	return err
}

func (r *Repository) SaveLocation(ctx context.Context, l entity.TechnicianLocation) (entity.TechnicianLocation, error) {
	const q = `
	INSERT INTO technician_locations (technician_id, latitude, longitude, accuracy, recorded_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	err := r.db.QueryRow(ctx, q, l.TechnicianID, l.Latitude, l.Longitude, l.Accuracy, l.RecordedAt).Scan(&l.ID)
	if err != nil {
		return entity.TechnicianLocation{}, mapErr(err)
	}

	return l, nil
}

// LatestLocations returns every active technician with its last known location, if any.
func (r *Repository) LatestLocations(ctx context.Context) ([]entity.TechnicianPosition, error) {
	const q = `
	SELECT t.id, t.full_name, t.is_available, l.id, l.latitude, l.longitude, l.accuracy, l.recorded_at
	FROM technicians t
	LEFT JOIN LATERAL (
		SELECT id, latitude, longitude, accuracy, recorded_at
		FROM technician_locations
		WHERE technician_id = t.id
		ORDER BY recorded_at DESC
		LIMIT 1
	) l ON TRUE
	WHERE t.is_active
	ORDER BY t.full_name, t.id
	`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]entity.TechnicianPosition, 0)

	for rows.Next() {
		var (
			p          entity.TechnicianPosition
			locID      *int64
			lat, lon   *float64
			accuracy   *float64
			recordedAt *time.Time
		)

		err = rows.Scan(&p.TechnicianID, &p.TechnicianName, &p.IsAvailable, &locID, &lat, &lon, &accuracy, &recordedAt)
		if err != nil {
			return nil, err
		}

		if locID != nil {
			p.Location = &entity.TechnicianLocation{
				ID:           *locID,
				TechnicianID: p.TechnicianID,
				Latitude:     *lat,
				Longitude:    *lon,
				Accuracy:     accuracy,
				RecordedAt:   *recordedAt,
			}
		}

		positions = append(positions, p)
	}

	return positions, rows.Err()
}

func (r *Repository) LocationHistory(ctx context.Context, f entity.LocationHistoryFilter) ([]entity.TechnicianLocation, error) {
	stmt := psql.Select("id", "technician_id", "latitude", "longitude", "accuracy", "recorded_at").
		From("technician_locations").
		Where(sq.Eq{"technician_id": f.TechnicianID}).
		OrderBy("recorded_at DESC")

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"recorded_at": *f.From})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.Lt{"recorded_at": *f.To})
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

	locations := make([]entity.TechnicianLocation, 0)

	for rows.Next() {
		var l entity.TechnicianLocation

		err = rows.Scan(&l.ID, &l.TechnicianID, &l.Latitude, &l.Longitude, &l.Accuracy, &l.RecordedAt)
		if err != nil {
			return nil, err
		}

		locations = append(locations, l)
	}

	return locations, rows.Err()
}

// DeleteLocationsBefore removes GPS history older than before and reports how many rows went.
func (r *Repository) DeleteLocationsBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM technician_locations WHERE recorded_at < $1`, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *Repository) technician(ctx context.Context, where sq.Sqlizer) (entity.Technician, error) {
	q, args, err := psql.Select(technicianColumns...).From("technicians").Where(where).Limit(1).ToSql()
	if err != nil {
		return entity.Technician{}, err
	}

	return scanTechnician(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) queryTechnicians(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Technician, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	technicians := make([]entity.Technician, 0)

	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, err
		}

		technicians = append(technicians, t)
	}

	return technicians, rows.Err()
}

func scanTechnician(row pgx.Row) (t entity.Technician, err error) {
	err = row.Scan(
		&t.ID,
		&t.UserID,
		&t.FullName,
		&t.Phone,
		&t.Email,
		&t.DocumentID,
		&t.Zone,
		&t.Specialties,
		&t.PINHash,
		&t.IsAvailable,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return entity.Technician{}, mapErr(err)
	}

	return t, nil
}
