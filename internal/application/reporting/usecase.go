// Package reporting contiene los casos de uso de reportería: el ensamblador
// de reportes (scope → fetch → agregación → totales) y la exportación a
// csv/xlsx/pdf.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/timeflow-api/internal/application/dto"
	"github.com/jhoicas/timeflow-api/internal/domain"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
	"github.com/jhoicas/timeflow-api/internal/domain/repository"
	"github.com/jhoicas/timeflow-api/pkg/logger"
)

// UseCase ensambla reportes agregados sobre el record store.
//
// Fuente de datos: puertos read-only del record store. Por reporte emite un
// número acotado de consultas: registros una vez, membresía una o dos veces
// según el scope y nombres una vez. Nunca consulta por fila.
type UseCase struct {
	entries     repository.TimeEntryRepository
	teams       repository.TeamRepository
	departments repository.DepartmentRepository
	directory   repository.Directory
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	entries repository.TimeEntryRepository,
	teams repository.TeamRepository,
	departments repository.DepartmentRepository,
	directory repository.Directory,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		entries:     entries,
		teams:       teams,
		departments: departments,
		directory:   directory,
		log:         log,
	}
}

// BuildReport genera el reporte agregado para el scope y período pedidos.
//
// Orden estricto: primero validación de rango y autorización (sin tocar el
// store), después la expansión del scope a conjuntos de filtro, una sola
// consulta de registros ordenada por fecha, resolución de nombres en lote y
// agregación. Los totales del reporte son la suma de los nodos de primer
// nivel.
//
// Un target de scope inexistente (equipo o departamento desconocido, o sin
// miembros) produce un reporte con cero registros, no un error: un reporte
// sobre una población vacía es una respuesta válida.
func (uc *UseCase) BuildReport(
	ctx context.Context,
	caller report.Caller,
	requested report.Scope,
	period report.Period,
) (*report.Report, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidRange
	}

	scope, err := report.ResolveScope(caller, requested)
	if err != nil {
		return nil, err
	}

	filter, scopeName, empty, err := uc.expandScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	if empty {
		return emptyReport(scope, scopeName, period), nil
	}

	resolved, err := uc.fetchResolved(ctx, period, filter, &scope, &scopeName)
	if err != nil {
		return nil, err
	}

	// Reportes por departamento, equipo o usuario agrupan usuario→proyecto;
	// los de proyecto solo por usuario (el proyecto ya es el scope).
	var secondary report.KeyFunc
	if scope.Kind != report.ScopeProject {
		secondary = report.ByProject
	}
	groups := report.Aggregate(resolved, report.ByUser, secondary)

	r := &report.Report{
		Scope:     scope,
		ScopeName: scopeName,
		Period:    period,
		Groups:    groups,
		Totals:    report.SumNodes(groups),
	}

	uc.log.Debug().
		Str("scope", string(scope.Kind)).
		Str("target", scope.TargetID).
		Int("entries", r.Totals.EntryCount).
		Msg("reporte generado")

	return r, nil
}

// GetTimesheet devuelve el listado plano de registros del período para un
// usuario (el propio por defecto), con estadísticas del período. Es la vista
// sin agregar del mismo conjunto de datos que BuildReport.
func (uc *UseCase) GetTimesheet(
	ctx context.Context,
	caller report.Caller,
	userID string,
	period report.Period,
) (*dto.TimesheetReportDTO, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidRange
	}

	requested := report.Scope{Kind: report.ScopeSelf}
	if userID != "" {
		requested = report.Scope{Kind: report.ScopeUser, TargetID: userID}
	}
	scope, err := report.ResolveScope(caller, requested)
	if err != nil {
		return nil, err
	}

	resolved, err := uc.fetchResolved(ctx, period, repository.EntryFilter{UserIDs: []string{scope.TargetID}}, nil, nil)
	if err != nil {
		return nil, err
	}

	return timesheetDTO(scope.TargetID, period, resolved), nil
}

// expandScope traduce el scope efectivo a un filtro concreto de usuarios o
// proyecto. Devuelve empty=true cuando la población es vacía de antemano
// (equipo sin miembros, departamento sin equipos) para no lanzar una
// consulta de registros sin filtro.
func (uc *UseCase) expandScope(ctx context.Context, scope report.Scope) (repository.EntryFilter, string, bool, error) {
	switch scope.Kind {
	case report.ScopeUser:
		return repository.EntryFilter{UserIDs: []string{scope.TargetID}}, "", false, nil

	case report.ScopeProject:
		return repository.EntryFilter{ProjectID: scope.TargetID}, "", false, nil

	case report.ScopeTeam:
		name := ""
		if team, err := uc.teams.GetByID(ctx, scope.TargetID); err != nil {
			return repository.EntryFilter{}, "", false, fmt.Errorf("reporte: equipo %s: %w", scope.TargetID, err)
		} else if team != nil {
			name = team.Name
		}
		members, err := uc.teams.MemberIDs(ctx, []string{scope.TargetID})
		if err != nil {
			return repository.EntryFilter{}, "", false, fmt.Errorf("reporte: miembros del equipo %s: %w", scope.TargetID, err)
		}
		return repository.EntryFilter{UserIDs: members}, name, len(members) == 0, nil

	case report.ScopeDepartment:
		name := ""
		if dept, err := uc.departments.GetByID(ctx, scope.TargetID); err != nil {
			return repository.EntryFilter{}, "", false, fmt.Errorf("reporte: departamento %s: %w", scope.TargetID, err)
		} else if dept != nil {
			name = dept.Name
		}
		teamIDs, err := uc.departments.TeamIDs(ctx, scope.TargetID)
		if err != nil {
			return repository.EntryFilter{}, "", false, fmt.Errorf("reporte: equipos del departamento %s: %w", scope.TargetID, err)
		}
		if len(teamIDs) == 0 {
			return repository.EntryFilter{}, name, true, nil
		}
		members, err := uc.teams.MemberIDs(ctx, teamIDs)
		if err != nil {
			return repository.EntryFilter{}, "", false, fmt.Errorf("reporte: miembros del departamento %s: %w", scope.TargetID, err)
		}
		return repository.EntryFilter{UserIDs: members}, name, len(members) == 0, nil

	default:
		return repository.EntryFilter{}, "", false, domain.ErrInvalidInput
	}
}

// fetchResolved trae los registros del período (una consulta, orden fecha
// ascendente estable) y resuelve los nombres de usuarios y proyectos en un
// solo lote. Si scope/scopeName no son nil, completa el nombre del scope
// user/project desde el mismo lote.
func (uc *UseCase) fetchResolved(
	ctx context.Context,
	period report.Period,
	filter repository.EntryFilter,
	scope *report.Scope,
	scopeName *string,
) ([]report.Entry, error) {
	rows, err := uc.entries.FetchByRange(ctx, period.Start, period.End, filter)
	if err != nil {
		return nil, fmt.Errorf("reporte: registros de horas: %w", err)
	}

	userIDs := make([]string, 0, len(rows))
	projectIDs := make([]string, 0, len(rows))
	seenUsers := make(map[string]bool, len(rows))
	seenProjects := make(map[string]bool, len(rows))
	for _, e := range rows {
		if !seenUsers[e.UserID] {
			seenUsers[e.UserID] = true
			userIDs = append(userIDs, e.UserID)
		}
		if !seenProjects[e.ProjectID] {
			seenProjects[e.ProjectID] = true
			projectIDs = append(projectIDs, e.ProjectID)
		}
	}
	// Incluir el target del scope aunque no tenga registros, para poder
	// nombrarlo en la respuesta.
	if scope != nil {
		switch scope.Kind {
		case report.ScopeUser:
			if !seenUsers[scope.TargetID] {
				userIDs = append(userIDs, scope.TargetID)
			}
		case report.ScopeProject:
			if !seenProjects[scope.TargetID] {
				projectIDs = append(projectIDs, scope.TargetID)
			}
		}
	}

	users, projects, err := uc.directory.ResolveNames(ctx, userIDs, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("reporte: resolver nombres: %w", err)
	}
	if scope != nil && scopeName != nil && *scopeName == "" {
		switch scope.Kind {
		case report.ScopeUser:
			*scopeName = users[scope.TargetID]
		case report.ScopeProject:
			*scopeName = projects[scope.TargetID]
		}
	}

	resolved := make([]report.Entry, 0, len(rows))
	for _, e := range rows {
		resolved = append(resolved, report.Entry{
			TimeEntry:   e,
			UserName:    users[e.UserID],
			ProjectName: projects[e.ProjectID],
		})
	}
	return resolved, nil
}

func emptyReport(scope report.Scope, scopeName string, period report.Period) *report.Report {
	groups := []report.RollupNode{}
	return &report.Report{
		Scope:     scope,
		ScopeName: scopeName,
		Period:    period,
		Groups:    groups,
		Totals:    report.SumNodes(groups),
	}
}

func timesheetDTO(userID string, period report.Period, entries []report.Entry) *dto.TimesheetReportDTO {
	items := make([]dto.TimeEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.TimeEntryDTO{
			ID:            e.ID,
			UserID:        e.UserID,
			UserName:      e.UserName,
			ProjectID:     e.ProjectID,
			ProjectName:   e.ProjectName,
			Date:          e.Date.UTC().Format("2006-01-02"),
			ActualHours:   e.ActualHours,
			BillableHours: e.BillableHours,
			Task:          e.Task,
			Status:        e.Status,
			Billable:      e.Billable,
		})
	}
	totals := report.Sum(entries)
	return &dto.TimesheetReportDTO{
		StartDate: period.Start.UTC().Format("2006-01-02"),
		EndDate:   period.End.UTC().Format("2006-01-02"),
		UserID:    userID,
		Entries:   items,
		Statistics: dto.TimesheetStatisticsDTO{
			TotalHours:       totals.TotalHours,
			BillableHours:    totals.BillableHours,
			NonBillableHours: totals.NonBillableHours,
			TotalEntries:     totals.EntryCount,
			PendingEntries:   totals.PendingCount,
			ApprovedEntries:  totals.ApprovedCount,
			RejectedEntries:  totals.RejectedCount,
		},
	}
}

// ParsePeriod interpreta fechas YYYY-MM-DD como límites de día completos en
// UTC. No valida el orden; eso lo decide BuildReport (ErrInvalidRange).
func ParsePeriod(startDate, endDate string) (report.Period, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, time.UTC)
	if err != nil {
		return report.Period{}, domain.ErrInvalidInput
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.UTC)
	if err != nil {
		return report.Period{}, domain.ErrInvalidInput
	}
	return report.Period{Start: start, End: end}, nil
}
