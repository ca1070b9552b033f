package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project representa un proyecto al que se imputan horas.
type Project struct {
	ID          string
	Name        string
	Description string
	BillingRate decimal.Decimal // tarifa de facturación del proyecto
	Billable    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
