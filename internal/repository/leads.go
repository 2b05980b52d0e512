package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/zafesys/suite/internal/entity"
)

var leadColumns = []string{
	"id",
	"name",
	"phone",
	"email",
	"address",
	"city",
	"status",
	"source",
	"notes",
	"product_interest",
	"assigned_to_id",
	"voice_conversation_id",
	"conversation_transcript",
	"created_at",
	"updated_at",
	"contacted_at",
}

func (r *Repository) Leads(ctx context.Context, f entity.LeadFilter) ([]entity.Lead, error) {
	stmt := psql.Select(leadColumns...).From("leads").OrderBy("created_at DESC", "id DESC")

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	return r.queryLeads(ctx, page(stmt, f.Page))
}

// KanbanLeads returns every lead, newest first. The board is never paginated.
func (r *Repository) KanbanLeads(ctx context.Context) ([]entity.Lead, error) {
	return r.queryLeads(ctx, psql.Select(leadColumns...).From("leads").OrderBy("created_at DESC", "id DESC"))
}

// LeadStats counts leads per status, with every status present.
func (r *Repository) LeadStats(ctx context.Context) (entity.LeadStats, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make(entity.LeadStats, len(entity.LeadStatuses))
	for _, s := range entity.LeadStatuses {
		stats[s] = 0
	}

	for rows.Next() {
		var (
			status entity.LeadStatus
			count  int
		)

		err = rows.Scan(&status, &count)
		if err != nil {
			return nil, err
		}

		stats[status] = count
	}

	return stats, rows.Err()
}

func (r *Repository) Lead(ctx context.Context, id int64) (entity.Lead, error) {
	return r.lead(ctx, sq.Eq{"id": id})
}

// LeadByPhone returns the most recent lead with the phone.
func (r *Repository) LeadByPhone(ctx context.Context, phone string) (entity.Lead, error) {
	return r.lead(ctx, sq.Eq{"phone": phone})
}

func (r *Repository) LeadByConversationID(ctx context.Context, conversationID string) (entity.Lead, error) {
	return r.lead(ctx, sq.Eq{"voice_conversation_id": conversationID})
}

func (r *Repository) CreateLead(ctx context.Context, c entity.LeadCreate) (entity.Lead, error) {
	q, args, err := psql.Insert("leads").
		Columns(
			"name",
			"phone",
			"email",
			"address",
			"city",
			"status",
			"source",
			"notes",
			"product_interest",
			"voice_conversation_id",
			"conversation_transcript",
		).
		Values(
			c.Name,
			c.Phone,
			c.Email,
			c.Address,
			c.City,
			c.Status,
			c.Source,
			c.Notes,
			c.ProductInterest,
			c.VoiceConversationID,
			c.ConversationTranscript,
		).
		Suffix("RETURNING " + joinColumns(leadColumns)).
		ToSql()
	if err != nil {
		return entity.Lead{}, err
	}

	return scanLead(r.db.QueryRow(ctx, q, args...))
}

// UpdateLead stores every mutable column of the lead.
func (r *Repository) UpdateLead(ctx context.Context, l entity.Lead) (entity.Lead, error) {
	q, args, err := psql.Update("leads").
		SetMap(map[string]any{
			"name":                    l.Name,
			"phone":                   l.Phone,
			"email":                   l.Email,
			"address":                 l.Address,
			"city":                    l.City,
			"status":                  l.Status,
			"source":                  l.Source,
			"notes":                   l.Notes,
			"product_interest":        l.ProductInterest,
			"assigned_to_id":          l.AssignedToID,
			"voice_conversation_id":   l.VoiceConversationID,
			"conversation_transcript": l.ConversationTranscript,
			"contacted_at":            l.ContactedAt,
			"updated_at":              sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": l.ID}).
		Suffix("RETURNING " + joinColumns(leadColumns)).
		ToSql()
	if err != nil {
		return entity.Lead{}, err
	}

	return scanLead(r.db.QueryRow(ctx, q, args...))
}

// UpdateLeadStatus sets the status. contacted_at is stamped only once.
func (r *Repository) UpdateLeadStatus(
	ctx context.Context,
	id int64,
	status entity.LeadStatus,
	contactedAt *time.Time,
) (entity.Lead, error) {
	q := `
	UPDATE leads
	SET status = $1, contacted_at = COALESCE(contacted_at, $2), updated_at = NOW()
	WHERE id = $3
	RETURNING ` + joinColumns(leadColumns)

	return scanLead(r.db.QueryRow(ctx, q, status, contactedAt, id))
}

func (r *Repository) DeleteLead(ctx context.Context, id int64) error {
	return execAffected(ctx, r.db, `DELETE FROM leads WHERE id = $1`, id)
}

func (r *Repository) lead(ctx context.Context, where sq.Sqlizer) (entity.Lead, error) {
	q, args, err := psql.Select(leadColumns...).
		From("leads").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return entity.Lead{}, err
	}

	return scanLead(r.db.QueryRow(ctx, q, args...))
}

func (r *Repository) queryLeads(ctx context.Context, stmt sq.SelectBuilder) ([]entity.Lead, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]entity.Lead, 0)

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}

		leads = append(leads, l)
	}

	return leads, rows.Err()
}

func scanLead(row pgx.Row) (l entity.Lead, err error) {
	err = row.Scan(
		&l.ID,
		&l.Name,
		&l.Phone,
		&l.Email,
		&l.Address,
		&l.City,
		&l.Status,
		&l.Source,
		&l.Notes,
		&l.ProductInterest,
		&l.AssignedToID,
		&l.VoiceConversationID,
		&l.ConversationTranscript,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.ContactedAt,
	)
	if err != nil {
		return entity.Lead{}, mapErr(err)
	}

	return l, nil
}
