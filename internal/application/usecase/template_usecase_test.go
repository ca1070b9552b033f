package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timeflow-api/internal/application/dto"
	"github.com/jhoicas/timeflow-api/internal/application/usecase"
	"github.com/jhoicas/timeflow-api/internal/domain"
	"github.com/jhoicas/timeflow-api/internal/domain/entity"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memTemplates struct {
	byID map[string]*entity.ReportTemplate
}

func (m *memTemplates) Create(_ context.Context, t *entity.ReportTemplate) error {
	cp := *t
	m.byID[t.ID] = &cp
	return nil
}

func (m *memTemplates) GetByID(_ context.Context, id string) (*entity.ReportTemplate, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memTemplates) List(_ context.Context) ([]*entity.ReportTemplate, error) {
	out := make([]*entity.ReportTemplate, 0, len(m.byID))
	for _, t := range m.byID {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memTemplates) Update(_ context.Context, t *entity.ReportTemplate) error {
	cp := *t
	m.byID[t.ID] = &cp
	return nil
}

func (m *memTemplates) Delete(_ context.Context, id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

type memSaved struct {
	byID map[string]*entity.SavedReport
}

func (m *memSaved) Create(_ context.Context, r *entity.SavedReport) error {
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memSaved) GetByID(_ context.Context, id string) (*entity.SavedReport, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memSaved) ListByUser(_ context.Context, userID string) ([]*entity.SavedReport, error) {
	var out []*entity.SavedReport
	for _, r := range m.byID {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memSaved) Update(_ context.Context, r *entity.SavedReport) error {
	cp := *r
	m.byID[r.ID] = &cp
	return nil
}

func (m *memSaved) Delete(_ context.Context, id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func newUC() *usecase.TemplateUseCase {
	return usecase.NewTemplateUseCase(
		&memTemplates{byID: map[string]*entity.ReportTemplate{}},
		&memSaved{byID: map[string]*entity.SavedReport{}},
	)
}

var (
	manager = report.Caller{ID: "m1", Role: entity.RoleManager}
	ana     = report.Caller{ID: "u1", Role: entity.RoleMember}
	bruno   = report.Caller{ID: "u2", Role: entity.RoleMember}
)

// ──────────────────────────────────────────────────────────────────────────────
// Plantillas
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplates_CicloCompleto(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	created, err := uc.CreateTemplate(ctx, manager, dto.CreateTemplateRequest{
		Name:          "Semanal por equipo",
		Type:          "team",
		Configuration: `{"group_by":"user"}`,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "m1", created.CreatedBy)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := uc.GetTemplate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Semanal por equipo", got.Name)

	list, err := uc.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	newName := "Semanal"
	updated, err := uc.UpdateTemplate(ctx, created.ID, dto.UpdateTemplateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Semanal", updated.Name)
	assert.Equal(t, "team", updated.Type, "los campos ausentes se conservan")

	require.NoError(t, uc.DeleteTemplate(ctx, created.ID))
	_, err = uc.GetTemplate(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTemplates_NoExisteRetornaNotFound(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	_, err := uc.GetTemplate(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpdateTemplate(ctx, "nope", dto.UpdateTemplateRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteTemplate(ctx, "nope"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes guardados — propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestSavedReports_PropiedadPorUsuario(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	created, err := uc.CreateSavedReport(ctx, ana, dto.CreateSavedReportRequest{
		Name:       "Mis horas de marzo",
		Parameters: `{"start_date":"2026-03-01","end_date":"2026-03-31"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)

	// El dueño lo ve; otro member no; un manager sí.
	_, err = uc.GetSavedReport(ctx, ana, created.ID)
	assert.NoError(t, err)

	_, err = uc.GetSavedReport(ctx, bruno, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un member no accede a reportes guardados ajenos")

	_, err = uc.GetSavedReport(ctx, manager, created.ID)
	assert.NoError(t, err, "manager accede a cualquier reporte guardado")
}

func TestSavedReports_ListSoloLosPropios(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	_, err := uc.CreateSavedReport(ctx, ana, dto.CreateSavedReportRequest{Name: "A"})
	require.NoError(t, err)
	_, err = uc.CreateSavedReport(ctx, bruno, dto.CreateSavedReportRequest{Name: "B"})
	require.NoError(t, err)

	list, err := uc.ListSavedReports(ctx, ana)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
}

func TestSavedReports_UpdateConservaElDueno(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	created, err := uc.CreateSavedReport(ctx, ana, dto.CreateSavedReportRequest{Name: "A"})
	require.NoError(t, err)

	newName := "A2"
	updated, err := uc.UpdateSavedReport(ctx, manager, created.ID, dto.UpdateSavedReportRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Name)
	assert.Equal(t, "u1", updated.UserID, "actualizar como manager no roba la propiedad")
}

func TestSavedReports_DeleteAjenoDenegado(t *testing.T) {
	uc := newUC()
	ctx := context.Background()

	created, err := uc.CreateSavedReport(ctx, ana, dto.CreateSavedReportRequest{Name: "A"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteSavedReport(ctx, bruno, created.ID), domain.ErrForbidden)
	assert.NoError(t, uc.DeleteSavedReport(ctx, ana, created.ID))
	assert.ErrorIs(t, uc.DeleteSavedReport(ctx, ana, created.ID), domain.ErrNotFound)
}
