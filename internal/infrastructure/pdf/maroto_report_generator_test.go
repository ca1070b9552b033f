package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
	"github.com/jhoicas/timeflow-api/internal/infrastructure/pdf"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func mkEntry(id, userID, userName, projectID, projectName string, date time.Time, hours, billable string) report.Entry {
	return report.Entry{
		TimeEntry: entity.TimeEntry{
			ID:            id,
			UserID:        userID,
			ProjectID:     projectID,
			Date:          date,
			ActualHours:   decimal.RequireFromString(hours),
			BillableHours: decimal.RequireFromString(billable),
			Status:        entity.StatusApproved,
		},
		UserName:    userName,
		ProjectName: projectName,
	}
}

func sampleReport() *report.Report {
	entries := []report.Entry{
		mkEntry("e1", "u1", "Ana", "p1", "Atlas", day(2), "3", "2"),
		mkEntry("e2", "u1", "Ana", "p2", "Borealis", day(3), "4", "4"),
		mkEntry("e3", "u2", "Bruno", "p1", "Atlas", day(4), "2", "2"),
	}
	groups := report.Aggregate(entries, report.ByUser, report.ByProject)
	return &report.Report{
		Scope:     report.Scope{Kind: report.ScopeTeam, TargetID: "t1"},
		ScopeName: "Plataforma",
		Period:    report.Period{Start: day(1), End: day(7)},
		Groups:    groups,
		Totals:    report.SumNodes(groups),
	}
}

func TestGenerateRollupPDF_DocumentoValido(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()

	data, err := g.GenerateRollupPDF(context.Background(), sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")),
		"la salida debe ser un documento PDF")
}

func TestGenerateRollupPDF_ReporteVacio(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	r := &report.Report{
		Scope:  report.Scope{Kind: report.ScopeDepartment, TargetID: "d9"},
		Period: report.Period{Start: day(1), End: day(7)},
		Groups: []report.RollupNode{},
	}

	data, err := g.GenerateRollupPDF(context.Background(), r)
	require.NoError(t, err, "un reporte sin grupos también genera documento")
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateTimesheetPDF_DocumentoValido(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()
	entries := []report.Entry{
		mkEntry("e1", "u1", "Ana", "p1", "Atlas", day(2), "3", "2"),
		mkEntry("e2", "u1", "Ana", "p2", "Borealis", day(3), "4.5", "4"),
	}

	data, err := g.GenerateTimesheetPDF(context.Background(),
		report.Period{Start: day(1), End: day(7)}, entries, report.Sum(entries))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")),
		"la salida debe ser un documento PDF")
}
