package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/timeflow-api/internal/domain/repository"
)

var _ repository.Directory = (*DirectoryRepo)(nil)

// DirectoryRepo resuelve ids a nombres legibles para las claves de
// agrupación de los reportes.
type DirectoryRepo struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository construye el adaptador.
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepo {
	return &DirectoryRepo{pool: pool}
}

// ResolveNames resuelve nombres de usuarios y proyectos en dos consultas en
// lote, independientemente del número de ids. Nunca una consulta por fila:
// un reporte de n registros debe costar O(1) viajes al store, no O(n).
func (r *DirectoryRepo) ResolveNames(ctx context.Context, userIDs, projectIDs []string) (map[string]string, map[string]string, error) {
	users, err := r.namesOf(ctx, `SELECT id, name FROM users WHERE id = ANY($1)`, userIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve user names: %w", err)
	}
	projects, err := r.namesOf(ctx, `SELECT id, name FROM projects WHERE id = ANY($1)`, projectIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve project names: %w", err)
	}
	return users, projects, nil
}

func (r *DirectoryRepo) namesOf(ctx context.Context, query string, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}
