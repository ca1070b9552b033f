package repository

import (
	"context"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
)

// ReportTemplateRepository persistencia de plantillas de reporte.
// Los Get devuelven (nil, nil) si el id no existe; el use case lo traduce a
// domain.ErrNotFound.
type ReportTemplateRepository interface {
	Create(ctx context.Context, t *entity.ReportTemplate) error
	GetByID(ctx context.Context, id string) (*entity.ReportTemplate, error)
	List(ctx context.Context) ([]*entity.ReportTemplate, error)
	Update(ctx context.Context, t *entity.ReportTemplate) error
	Delete(ctx context.Context, id string) (bool, error)
}

// SavedReportRepository persistencia de reportes guardados por usuario.
type SavedReportRepository interface {
	Create(ctx context.Context, r *entity.SavedReport) error
	GetByID(ctx context.Context, id string) (*entity.SavedReport, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.SavedReport, error)
	Update(ctx context.Context, r *entity.SavedReport) error
	Delete(ctx context.Context, id string) (bool, error)
}
