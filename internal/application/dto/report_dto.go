package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportQuery parámetros comunes de los endpoints de reporte.
// Las fechas son calendario (YYYY-MM-DD), rango inclusivo, UTC.
type ReportQuery struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
	UserID    string `query:"user_id"`       // opcional: por defecto el usuario del token
	TeamID    string `query:"team_id"`       // solo rutas de equipo
	DeptID    string `query:"department_id"` // solo rutas de departamento
	ProjectID string `query:"project_id"`    // solo rutas de proyecto
	Format    string `query:"format"`        // exportación: csv (default), xlsx, pdf
}

// ── Timesheet (listado plano) ─────────────────────────────────────────────────

// TimeEntryDTO registro de horas con nombres resueltos.
type TimeEntryDTO struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name"`
	ProjectID     string          `json:"project_id"`
	ProjectName   string          `json:"project_name"`
	Date          string          `json:"date"` // YYYY-MM-DD
	ActualHours   decimal.Decimal `json:"actual_hours"`
	BillableHours decimal.Decimal `json:"billable_hours"`
	Task          string          `json:"task"`
	Status        string          `json:"status"`
	Billable      bool            `json:"billable"`
}

// TimesheetStatisticsDTO totales del período para el listado plano.
type TimesheetStatisticsDTO struct {
	TotalHours       decimal.Decimal `json:"total_hours"`
	BillableHours    decimal.Decimal `json:"billable_hours"`
	NonBillableHours decimal.Decimal `json:"non_billable_hours"`
	TotalEntries     int             `json:"total_entries"`
	PendingEntries   int             `json:"pending_entries"`
	ApprovedEntries  int             `json:"approved_entries"`
	RejectedEntries  int             `json:"rejected_entries"`
}

// TimesheetReportDTO respuesta de GET /api/reports/timesheet.
type TimesheetReportDTO struct {
	StartDate  string                 `json:"start_date"`
	EndDate    string                 `json:"end_date"`
	UserID     string                 `json:"user_id"`
	Entries    []TimeEntryDTO         `json:"entries"`
	Statistics TimesheetStatisticsDTO `json:"statistics"`
}
