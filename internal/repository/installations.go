package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var installationColumns = []string{
	"i.id",
	"i.lead_id",
	"i.customer_id",
	"i.product_id",
	"i.quantity",
	"i.technician_id",
	"i.scheduled_date",
	"i.scheduled_time",
	"i.estimated_duration",
	"i.address",
	"i.city",
	"i.address_notes",
	"i.status",
	"i.total_price",
	"i.payment_status",
	"i.payment_method",
	"i.amount_paid",
	"i.customer_notes",
	"i.technician_notes",
	"i.internal_notes",
	"i.timer_started_at",
	"i.timer_ended_at",
	"i.timer_started_by",
	"i.installation_duration_minutes",
	"i.completed_at",
	"i.photo_proof_url",
	"i.signature_url",
	"i.photos_before",
	"i.photos_after",
	"i.video_url",
	"i.created_at",
	"i.updated_at",
	"l.name",
	"l.phone",
	"p.name",
	"p.model",
	"p.image_url",
	"t.full_name",
	"t.phone",
}

func selectInstallations() sq.SelectBuilder {
	return psql.Select(installationColumns...).
		From("installations i").
		LeftJoin("leads l ON l.id = i.lead_id").
		LeftJoin("products p ON p.id = i.product_id").
		LeftJoin("technicians t ON t.id = i.technician_id")
}

func (r *Repository) Installations(ctx context.Context, f entity.InstallationFilter) ([]entity.Installation, error) {
	stmt := selectInstallations()

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"i.status": *f.Status})
	}

	if f.TechnicianID != nil {
		stmt = stmt.Where(sq.Eq{"i.technician_id": *f.TechnicianID})
	}

	if f.DateFrom != nil {
		stmt = stmt.Where(sq.GtOrEq{"i.scheduled_date": f.DateFrom.Civil()})
	}

	if f.DateTo != nil {
		stmt = stmt.Where(sq.LtOrEq{"i.scheduled_date": f.DateTo.Civil()})
	}

	if f.ExcludeClosed {
		stmt = stmt.Where(sq.NotEq{"i.status": []entity.InstallationStatus{
			entity.InstallationCompleted,
			entity.InstallationCancelled,
		}})
	}

	if f.DateFrom != nil || f.DateTo != nil {
		stmt = stmt.OrderBy("i.scheduled_date", "i.scheduled_time NULLS LAST", "i.id")
	} else {
		stmt = stmt.OrderBy("i.created_at DESC", "i.id DESC")
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

	installations := make([]entity.Installation, 0)

	for rows.Next() {
		i, err := scanInstallation(rows)
		if err != nil {
			return nil, err
		}

		installations = append(installations, i)
	}

	return installations, rows.Err()
}

func (r *Repository) Installation(ctx context.Context, id int64) (entity.Installation, error) {
	q, args, err := selectInstallations().Where(sq.Eq{"i.id": id}).ToSql()
	if err != nil {
		return entity.Installation{}, err
	}

	return scanInstallation(r.db.QueryRow(ctx, q, args...))
}

// CreateInstallation inserts the installation and takes its products out of stock.
func (r *Repository) CreateInstallation(ctx context.Context, i entity.Installation, createdBy *string) (entity.Installation, error) {
	var id int64

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		q, args, err := psql.Insert("installations").
			Columns(
				"lead_id",
				"customer_id",
				"product_id",
				"quantity",
				"technician_id",
				"scheduled_date",
				"scheduled_time",
				"estimated_duration",
				"address",
				"city",
				"address_notes",
				"status",
				"total_price",
				"payment_status",
				"amount_paid",
				"customer_notes",
				"photos_before",
				"photos_after",
			).
			Values(
				i.LeadID,
				i.CustomerID,
				i.ProductID,
				i.Quantity,
				i.TechnicianID,
				civil(i.ScheduledDate),
				i.ScheduledTime,
				i.EstimatedDuration,
				i.Address,
				i.City,
				i.AddressNotes,
				i.Status,
				i.TotalPrice,
				i.PaymentStatus,
				i.AmountPaid,
				i.CustomerNotes,
				nonNil(i.PhotosBefore),
				nonNil(i.PhotosAfter),
			).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, q, args...).Scan(&id)
		if err != nil {
			return mapErr(err)
		}

		notes := "Instalación #" + itoa(id)

		_, err = applyStockChange(ctx, tx, entity.StockChange{
			ProductID:     i.ProductID,
			Type:          entity.MovementOut,
			Quantity:      i.Quantity,
			ReferenceType: entity.RefInstallation,
			ReferenceID:   &id,
			Notes:         &notes,
			CreatedBy:     createdBy,
		})

		return err
	})
	if err != nil {
		return entity.Installation{}, err
	}

	return r.Installation(ctx, id)
}

// UpdateInstallation stores every mutable column. A change of product or
// quantity moves the held units in the same transaction.
func (r *Repository) UpdateInstallation(
	ctx context.Context,
	i entity.Installation,
	updatedBy *string,
) (entity.Installation, error) {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		var (
			productID int64
			quantity  int
		)

		const lock = `SELECT product_id, quantity FROM installations WHERE id = $1 FOR UPDATE`

		err := tx.QueryRow(ctx, lock, i.ID).Scan(&productID, &quantity)
		if err != nil {
			return mapErr(err)
		}

		q, args, err := psql.Update("installations").
			SetMap(map[string]any{
				"customer_id":                   i.CustomerID,
				"product_id":                    i.ProductID,
				"quantity":                      i.Quantity,
				"technician_id":                 i.TechnicianID,
				"scheduled_date":                civil(i.ScheduledDate),
				"scheduled_time":                i.ScheduledTime,
				"estimated_duration":            i.EstimatedDuration,
				"address":                       i.Address,
				"city":                          i.City,
				"address_notes":                 i.AddressNotes,
				"status":                        i.Status,
				"total_price":                   i.TotalPrice,
				"payment_status":                i.PaymentStatus,
				"payment_method":                i.PaymentMethod,
				"amount_paid":                   i.AmountPaid,
				"customer_notes":                i.CustomerNotes,
				"technician_notes":              i.TechnicianNotes,
				"internal_notes":                i.InternalNotes,
				"timer_started_at":              i.TimerStartedAt,
				"timer_ended_at":                i.TimerEndedAt,
				"timer_started_by":              i.TimerStartedBy,
				"installation_duration_minutes": i.DurationMinutes,
				"completed_at":                  i.CompletedAt,
				"photo_proof_url":               i.PhotoProofURL,
				"signature_url":                 i.SignatureURL,
				"photos_before":                 nonNil(i.PhotosBefore),
				"photos_after":                  nonNil(i.PhotosAfter),
				"video_url":                     i.VideoURL,
				"updated_at":                    sq.Expr("NOW()"),
			}).
			Where(sq.Eq{"id": i.ID}).
			ToSql()
		if err != nil {
			return err
		}

		err = execAffected(ctx, tx, q, args...)
		if err != nil {
			return err
		}

		for _, c := range entity.InstallationStockChanges(i.ID, productID, quantity, i.ProductID, i.Quantity) {
			c.CreatedBy = updatedBy

			_, err = applyStockChange(ctx, tx, c)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return entity.Installation{}, err
	}

	return r.Installation(ctx, i.ID)
}

// DeleteInstallation removes the installation. Stock taken by an installation
// that never completed goes back to the product.
func (r *Repository) DeleteInstallation(ctx context.Context, id int64, deletedBy *string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		var (
			productID int64
			quantity  int
			status    entity.InstallationStatus
		)

		const q = `DELETE FROM installations WHERE id = $1 RETURNING product_id, quantity, status`

		err := tx.QueryRow(ctx, q, id).Scan(&productID, &quantity, &status)
		if err != nil {
			return mapErr(err)
		}

		if status == entity.InstallationCompleted {
			return nil
		}

		notes := "Instalación #" + itoa(id) + " eliminada"

		_, err = applyStockChange(ctx, tx, entity.StockChange{
			ProductID:     productID,
			Type:          entity.MovementIn,
			Quantity:      quantity,
			ReferenceType: entity.RefInstallationVoid,
			ReferenceID:   &id,
			Notes:         &notes,
			CreatedBy:     deletedBy,
		})

		return err
	})
}

// InstallationStats counts installations per status and those scheduled for today.
func (r *Repository) InstallationStats(ctx context.Context, today entity.Date) (entity.InstallationStats, error) {
	stats := entity.InstallationStats{
		ByStatus: make(map[entity.InstallationStatus]int, len(entity.InstallationStatuses)),
	}

	for _, s := range entity.InstallationStatuses {
		stats.ByStatus[s] = 0
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM installations GROUP BY status`)
	if err != nil {
		return entity.InstallationStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status entity.InstallationStatus
			count  int
		)

		err = rows.Scan(&status, &count)
		if err != nil {
			return entity.InstallationStats{}, err
		}

		stats.ByStatus[status] = count
		stats.Total += count
	}

	err = rows.Err()
	if err != nil {
		return entity.InstallationStats{}, err
	}

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM installations WHERE scheduled_date = $1`, today.Civil()).
		Scan(&stats.Today)
	if err != nil {
		return entity.InstallationStats{}, err
	}

	return stats, nil
}

func scanInstallation(row pgx.Row) (i entity.Installation, err error) {
	var scheduledDate *time.Time

	err = row.Scan(
		&i.ID,
		&i.LeadID,
		&i.CustomerID,
		&i.ProductID,
		&i.Quantity,
		&i.TechnicianID,
		&scheduledDate,
		&i.ScheduledTime,
		&i.EstimatedDuration,
		&i.Address,
		&i.City,
		&i.AddressNotes,
		&i.Status,
		&i.TotalPrice,
		&i.PaymentStatus,
		&i.PaymentMethod,
		&i.AmountPaid,
		&i.CustomerNotes,
		&i.TechnicianNotes,
		&i.InternalNotes,
		&i.TimerStartedAt,
		&i.TimerEndedAt,
		&i.TimerStartedBy,
		&i.DurationMinutes,
		&i.CompletedAt,
		&i.PhotoProofURL,
		&i.SignatureURL,
		&i.PhotosBefore,
		&i.PhotosAfter,
		&i.VideoURL,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.LeadName,
		&i.LeadPhone,
		&i.ProductName,
		&i.ProductModel,
		&i.ProductImage,
		&i.TechnicianName,
		&i.TechnicianPhone,
	)
	if err != nil {
		return entity.Installation{}, mapErr(err)
	}

	i.ScheduledDate = fromCivil(scheduledDate)
	i.PhotosBefore = nonNil(i.PhotosBefore)
	i.PhotosAfter = nonNil(i.PhotosAfter)

	return i, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}

	return v
}
