package entity

import "time"

// ReportTemplate es una configuración de reporte con nombre, reutilizable
// por cualquier usuario. Configuration es JSON opaco para el backend.
type ReportTemplate struct {
	ID            string
	Name          string
	Description   string
	Type          string // timesheet, team, department, project
	Configuration string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SavedReport es un reporte guardado por un usuario: una referencia opcional
// a un template más los parámetros concretos (JSON opaco).
type SavedReport struct {
	ID          string
	Name        string
	Description string
	TemplateID  string // vacío si no referencia un template
	Parameters  string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
