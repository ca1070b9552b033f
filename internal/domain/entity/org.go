package entity

import "time"

// Team agrupa usuarios dentro de un Department. La membresía usuario↔equipo
// es una relación N:M (tabla team_members), no pertenece a ninguno de los dos.
type Team struct {
	ID           string
	Name         string
	Description  string
	DepartmentID string
	LeaderID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Department agrupa equipos.
type Department struct {
	ID          string
	Name        string
	Description string
	ManagerID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
