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

var (
	_ repository.ReportTemplateRepository = (*TemplateRepo)(nil)
	_ repository.SavedReportRepository    = (*SavedReportRepo)(nil)
)

// TemplateRepo persistencia de plantillas de reporte.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository construye el adaptador.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

// Create persiste una plantilla nueva.
func (r *TemplateRepo) Create(ctx context.Context, t *entity.ReportTemplate) error {
	const query = `
		INSERT INTO report_templates (id, name, description, type, configuration, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		t.ID, t.Name, t.Description, t.Type, t.Configuration, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla. (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.ReportTemplate, error) {
	const query = `
		SELECT id, name, description, type, configuration, created_by, created_at, updated_at
		FROM report_templates WHERE id = $1`
	var t entity.ReportTemplate
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.Type, &t.Configuration, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report template: %w", err)
	}
	return &t, nil
}

// List devuelve todas las plantillas.
func (r *TemplateRepo) List(ctx context.Context) ([]*entity.ReportTemplate, error) {
	const query = `
		SELECT id, name, description, type, configuration, created_by, created_at, updated_at
		FROM report_templates ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list report templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.ReportTemplate
	for rows.Next() {
		var t entity.ReportTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Type, &t.Configuration, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan report template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una plantilla existente.
func (r *TemplateRepo) Update(ctx context.Context, t *entity.ReportTemplate) error {
	const query = `
		UPDATE report_templates
		SET name = $2, description = $3, type = $4, configuration = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, t.ID, t.Name, t.Description, t.Type, t.Configuration, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update report template: %w", err)
	}
	return nil
}

// Delete borra una plantilla; reporta si existía.
func (r *TemplateRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM report_templates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete report template: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SavedReportRepo persistencia de reportes guardados.
type SavedReportRepo struct {
	pool *pgxpool.Pool
}

// NewSavedReportRepository construye el adaptador.
func NewSavedReportRepository(pool *pgxpool.Pool) *SavedReportRepo {
	return &SavedReportRepo{pool: pool}
}

// Create persiste un reporte guardado nuevo.
func (r *SavedReportRepo) Create(ctx context.Context, s *entity.SavedReport) error {
	const query = `
		INSERT INTO saved_reports (id, name, description, template_id, parameters, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Description, s.TemplateID, s.Parameters, s.UserID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert saved report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte guardado. (nil, nil) si no existe.
func (r *SavedReportRepo) GetByID(ctx context.Context, id string) (*entity.SavedReport, error) {
	const query = `
		SELECT id, name, description, COALESCE(template_id, ''), parameters, user_id, created_at, updated_at
		FROM saved_reports WHERE id = $1`
	var s entity.SavedReport
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Description, &s.TemplateID, &s.Parameters, &s.UserID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get saved report: %w", err)
	}
	return &s, nil
}

// ListByUser devuelve los reportes guardados de un usuario.
func (r *SavedReportRepo) ListByUser(ctx context.Context, userID string) ([]*entity.SavedReport, error) {
	const query = `
		SELECT id, name, description, COALESCE(template_id, ''), parameters, user_id, created_at, updated_at
		FROM saved_reports WHERE user_id = $1 ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved reports: %w", err)
	}
	defer rows.Close()

	var list []*entity.SavedReport
	for rows.Next() {
		var s entity.SavedReport
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.TemplateID, &s.Parameters, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan saved report: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un reporte guardado existente.
func (r *SavedReportRepo) Update(ctx context.Context, s *entity.SavedReport) error {
	const query = `
		UPDATE saved_reports
		SET name = $2, description = $3, template_id = NULLIF($4, ''), parameters = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, s.ID, s.Name, s.Description, s.TemplateID, s.Parameters, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update saved report: %w", err)
	}
	return nil
}

// Delete borra un reporte guardado; reporta si existía.
func (r *SavedReportRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM saved_reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete saved report: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
