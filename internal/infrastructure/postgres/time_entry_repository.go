package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
	"github.com/jhoicas/timeflow-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

// TimeEntryRepo consultas read-only sobre registros de horas.
type TimeEntryRepo struct {
	pool *pgxpool.Pool
}

// NewTimeEntryRepository construye el adaptador.
func NewTimeEntryRepository(pool *pgxpool.Pool) *TimeEntryRepo {
	return &TimeEntryRepo{pool: pool}
}

// FetchByRange trae los registros del rango en una sola consulta. El ORDER
// BY (date, created_at, id) fija el orden de inserción como desempate
// estable: la agregación aguas arriba depende de ese orden.
func (r *TimeEntryRepo) FetchByRange(ctx context.Context, start, end time.Time, filter repository.EntryFilter) ([]entity.TimeEntry, error) {
	const query = `
		SELECT id, user_id, project_id, date, actual_hours, billable_hours,
		       task, status, is_billable, created_at, updated_at
		FROM time_entries
		WHERE date >= $1 AND date <= $2
		  AND ($3::text[] IS NULL OR user_id = ANY($3))
		  AND ($4::text = '' OR project_id = $4)
		ORDER BY date, created_at, id`

	var userIDs []string
	if filter.UserIDs != nil {
		userIDs = filter.UserIDs
	}
	rows, err := r.pool.Query(ctx, query, start, end, userIDs, filter.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("fetch time entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.TimeEntry
	for rows.Next() {
		var e entity.TimeEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ProjectID, &e.Date, &e.ActualHours, &e.BillableHours,
			&e.Task, &e.Status, &e.Billable, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch time entries: %w", err)
	}
	return entries, nil
}
