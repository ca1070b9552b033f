package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
	"github.com/jhoicas/timeflow-api/internal/domain/repository"
)

var _ repository.TeamRepository = (*TeamRepo)(nil)

// TeamRepo consultas read-only sobre equipos y membresía.
type TeamRepo struct {
	pool *pgxpool.Pool
}

// NewTeamRepository construye el adaptador.
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{pool: pool}
}

// GetByID obtiene un equipo. (nil, nil) si no existe.
func (r *TeamRepo) GetByID(ctx context.Context, id string) (*entity.Team, error) {
	const query = `
		SELECT id, name, description, department_id, COALESCE(leader_id, ''), created_at, updated_at
		FROM teams WHERE id = $1`
	var t entity.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.DepartmentID, &t.LeaderID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team by id: %w", err)
	}
	return &t, nil
}

// MemberIDs devuelve la unión de miembros de los equipos dados: una sola
// consulta, sin duplicados, orden estable.
func (r *TeamRepo) MemberIDs(ctx context.Context, teamIDs []string) ([]string, error) {
	const query = `
		SELECT DISTINCT user_id FROM team_members
		WHERE team_id = ANY($1)
		ORDER BY user_id`
	rows, err := r.pool.Query(ctx, query, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("team member ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan member id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("team member ids: %w", err)
	}
	return ids, nil
}
