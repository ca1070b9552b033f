// Package usecase contiene los casos de uso CRUD de configuración con
// nombre: plantillas de reporte y reportes guardados.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/timeflow-api/internal/application/dto"
	"github.com/jhoicas/timeflow-api/internal/domain"
	"github.com/jhoicas/timeflow-api/internal/domain/entity"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
	"github.com/jhoicas/timeflow-api/internal/domain/repository"
)

// TemplateUseCase CRUD de plantillas de reporte y reportes guardados.
//
// Las plantillas son visibles para todos y editables por owner/manager (eso
// lo impone la capa HTTP con RequireRole). Los reportes guardados pertenecen
// a un usuario: solo el dueño, un manager o el owner pueden leerlos,
// actualizarlos o borrarlos.
type TemplateUseCase struct {
	templates repository.ReportTemplateRepository
	saved     repository.SavedReportRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(templates repository.ReportTemplateRepository, saved repository.SavedReportRepository) *TemplateUseCase {
	return &TemplateUseCase{templates: templates, saved: saved}
}

// ── Plantillas ────────────────────────────────────────────────────────────────

// CreateTemplate crea una plantilla; el creador es el caller.
func (uc *TemplateUseCase) CreateTemplate(ctx context.Context, caller report.Caller, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	now := time.Now().UTC()
	t := &entity.ReportTemplate{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Type:          in.Type,
		Configuration: in.Configuration,
		CreatedBy:     caller.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// GetTemplate obtiene una plantilla por id. ErrNotFound si no existe.
func (uc *TemplateUseCase) GetTemplate(ctx context.Context, id string) (*dto.TemplateResponse, error) {
	t, err := uc.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTemplateResponse(t), nil
}

// ListTemplates lista todas las plantillas.
func (uc *TemplateUseCase) ListTemplates(ctx context.Context) ([]dto.TemplateResponse, error) {
	list, err := uc.templates.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTemplateResponse(t))
	}
	return items, nil
}

// UpdateTemplate actualiza los campos presentes. ErrNotFound si no existe.
func (uc *TemplateUseCase) UpdateTemplate(ctx context.Context, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	t, err := uc.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Configuration != nil {
		t.Configuration = *in.Configuration
	}
	t.UpdatedAt = time.Now().UTC()
	if err := uc.templates.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTemplateResponse(t), nil
}

// DeleteTemplate borra una plantilla. ErrNotFound si no existe.
func (uc *TemplateUseCase) DeleteTemplate(ctx context.Context, id string) error {
	deleted, err := uc.templates.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// ── Reportes guardados ────────────────────────────────────────────────────────

// CreateSavedReport crea un reporte guardado del caller.
func (uc *TemplateUseCase) CreateSavedReport(ctx context.Context, caller report.Caller, in dto.CreateSavedReportRequest) (*dto.SavedReportResponse, error) {
	now := time.Now().UTC()
	r := &entity.SavedReport{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		TemplateID:  in.TemplateID,
		Parameters:  in.Parameters,
		UserID:      caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.saved.Create(ctx, r); err != nil {
		return nil, err
	}
	return toSavedReportResponse(r), nil
}

// GetSavedReport obtiene un reporte guardado. ErrNotFound si no existe;
// ErrForbidden si el caller no es el dueño ni owner/manager.
func (uc *TemplateUseCase) GetSavedReport(ctx context.Context, caller report.Caller, id string) (*dto.SavedReportResponse, error) {
	r, err := uc.fetchOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return toSavedReportResponse(r), nil
}

// ListSavedReports lista los reportes guardados del caller.
func (uc *TemplateUseCase) ListSavedReports(ctx context.Context, caller report.Caller) ([]dto.SavedReportResponse, error) {
	list, err := uc.saved.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SavedReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toSavedReportResponse(r))
	}
	return items, nil
}

// UpdateSavedReport actualiza los campos presentes. El dueño original se
// conserva aunque actualice un manager.
func (uc *TemplateUseCase) UpdateSavedReport(ctx context.Context, caller report.Caller, id string, in dto.UpdateSavedReportRequest) (*dto.SavedReportResponse, error) {
	r, err := uc.fetchOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.TemplateID != nil {
		r.TemplateID = *in.TemplateID
	}
	if in.Parameters != nil {
		r.Parameters = *in.Parameters
	}
	r.UpdatedAt = time.Now().UTC()
	if err := uc.saved.Update(ctx, r); err != nil {
		return nil, err
	}
	return toSavedReportResponse(r), nil
}

// DeleteSavedReport borra un reporte guardado del caller (o de cualquiera si
// el caller es owner/manager).
func (uc *TemplateUseCase) DeleteSavedReport(ctx context.Context, caller report.Caller, id string) error {
	if _, err := uc.fetchOwned(ctx, caller, id); err != nil {
		return err
	}
	deleted, err := uc.saved.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// fetchOwned trae un reporte guardado verificando propiedad: member solo el
// suyo, owner/manager cualquiera.
func (uc *TemplateUseCase) fetchOwned(ctx context.Context, caller report.Caller, id string) (*entity.SavedReport, error) {
	r, err := uc.saved.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.UserID != caller.ID && caller.Role != entity.RoleOwner && caller.Role != entity.RoleManager {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

const timestampLayout = time.RFC3339

func toTemplateResponse(t *entity.ReportTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Type:          t.Type,
		Configuration: t.Configuration,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:     t.UpdatedAt.UTC().Format(timestampLayout),
	}
}

func toSavedReportResponse(r *entity.SavedReport) *dto.SavedReportResponse {
	return &dto.SavedReportResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		TemplateID:  r.TemplateID,
		Parameters:  r.Parameters,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:   r.UpdatedAt.UTC().Format(timestampLayout),
	}
}
