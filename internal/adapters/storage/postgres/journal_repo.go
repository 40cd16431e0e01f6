package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"animal-zoo/internal/domain/journal"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Create(ctx context.Context, e journal.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (
			id, resident_id,
			action, message,
			recorded_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		e.ID,
		e.ResidentID,
		e.Action,
		e.Message,
		e.RecordedAt,
	)
	return err
}

func (r *JournalRepo) ListByResident(ctx context.Context, residentID string, filter journal.ListFilter) ([]journal.Entry, error) {
	residentID = strings.TrimSpace(residentID)
	if residentID == "" {
		return nil, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, resident_id,
			action, message,
			recorded_at
		FROM journal_entries
		WHERE resident_id = $1
	`)

	args := []any{residentID}
	argN := 2

	if len(filter.Actions) > 0 {
		placeholders := make([]string, 0, len(filter.Actions))
		for _, a := range filter.Actions {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, a)
			argN++
		}
		sb.WriteString(" AND action IN (" + strings.Join(placeholders, ",") + ")")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = journal.DefaultLimit
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0)
	for rows.Next() {
		var e journal.Entry
		if err := rows.Scan(
			&e.ID,
			&e.ResidentID,
			&e.Action,
			&e.Message,
			&e.RecordedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
