package repository

import (
	"context"
	"time"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
)

// Puertos de lectura del record store para reportería (DIP). El núcleo los
// consume en un número acotado de llamadas por reporte: una para los
// registros, una para la membresía y una para los nombres; nunca por fila.

// EntryFilter restringe la consulta de registros de horas. UserIDs nil
// significa "sin filtro por usuario" (distinto de vacío, que no matchea
// nada); ProjectID vacío significa "sin filtro por proyecto".
type EntryFilter struct {
	UserIDs   []string
	ProjectID string
}

// TimeEntryRepository consultas read-only sobre registros de horas.
type TimeEntryRepository interface {
	// FetchByRange devuelve los registros con fecha en [start, end]
	// inclusive que cumplen el filtro, ordenados por fecha ascendente y,
	// a igual fecha, por orden de inserción (estable). El motor de
	// agregación depende de ese orden para ser determinista.
	FetchByRange(ctx context.Context, start, end time.Time, filter EntryFilter) ([]entity.TimeEntry, error)
}

// TeamRepository consultas sobre equipos y su membresía.
type TeamRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Team, error)
	// MemberIDs devuelve la unión (sin duplicados) de los miembros de los
	// equipos dados, en una sola consulta.
	MemberIDs(ctx context.Context, teamIDs []string) ([]string, error)
}

// DepartmentRepository consultas sobre departamentos.
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	// TeamIDs devuelve los equipos del departamento.
	TeamIDs(ctx context.Context, departmentID string) ([]string, error)
}

// Directory resuelve ids a nombres legibles para las claves de agrupación.
type Directory interface {
	// ResolveNames resuelve en lote los nombres de usuarios y proyectos.
	// Un id desconocido simplemente no aparece en el mapa resultante.
	ResolveNames(ctx context.Context, userIDs, projectIDs []string) (users map[string]string, projects map[string]string, err error)
}
