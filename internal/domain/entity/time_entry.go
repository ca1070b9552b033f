package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para TimeEntry.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// TimeEntry es un registro de horas imputadas por un usuario a un proyecto
// en una fecha. Inmutable para efectos de reporte.
//
// Invariantes: ActualHours >= 0 y BillableHours <= ActualHours.
type TimeEntry struct {
	ID            string
	UserID        string
	ProjectID     string
	Date          time.Time       // fecha calendario, interpretada en UTC a nivel de día
	ActualHours   decimal.Decimal // horas trabajadas
	BillableHours decimal.Decimal // porción facturable (<= ActualHours)
	Task          string          // etiqueta de la tarea, texto libre
	Status        string          // pending, approved, rejected
	Billable      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate verifica los invariantes de horas del registro.
func (e TimeEntry) Validate() bool {
	if e.ActualHours.IsNegative() || e.BillableHours.IsNegative() {
		return false
	}
	return !e.BillableHours.GreaterThan(e.ActualHours)
}
