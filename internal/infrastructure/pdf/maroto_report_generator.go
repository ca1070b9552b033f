// Package pdf implementa la representación PDF de los reportes de horas:
// una portada con scope y período, la tabla del rollup (usuario → proyecto)
// o del timesheet plano, y la fila de totales.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/timeflow-api/internal/application/reporting"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRollupPDF genera el PDF del reporte agregado y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRollupPDF(_ context.Context, r *report.Report) ([]byte, error) {
	m := newDocument("Reporte de horas")

	m.AddRows(titleRow(scopeTitle(r), periodLabel(r.Period)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow("Usuario", "Proyecto", "Horas", "Facturables", "No facturables"))
	for _, n := range r.Groups {
		m.AddRows(dataRow([5]string{n.Key.Name, "", n.Totals.TotalHours.String(), n.Totals.BillableHours.String(), n.Totals.NonBillableHours.String()}, 2, true))
		for _, c := range n.Children {
			m.AddRows(dataRow([5]string{"", c.Key.Name, c.Totals.TotalHours.String(), c.Totals.BillableHours.String(), c.Totals.NonBillableHours.String()}, 2, false))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r.Totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateTimesheetPDF genera el PDF del listado plano de un usuario.
func (g *MarotoReportGenerator) GenerateTimesheetPDF(
	_ context.Context,
	period report.Period,
	entries []report.Entry,
	totals report.Totals,
) ([]byte, error) {
	m := newDocument("Timesheet")

	m.AddRows(titleRow("Timesheet", periodLabel(period)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow("Fecha", "Proyecto", "Tarea", "Horas", "Facturables"))
	for _, e := range entries {
		m.AddRows(dataRow([5]string{
			e.Date.UTC().Format("2006-01-02"),
			e.ProjectName,
			e.Task,
			e.ActualHours.String(),
			e.BillableHours.String(),
		}, 3, false))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totals))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func scopeTitle(r *report.Report) string {
	label := map[report.ScopeKind]string{
		report.ScopeUser:       "Reporte de usuario",
		report.ScopeTeam:       "Reporte de equipo",
		report.ScopeDepartment: "Reporte de departamento",
		report.ScopeProject:    "Reporte de proyecto",
	}[r.Scope.Kind]
	if label == "" {
		label = "Reporte de horas"
	}
	if r.ScopeName != "" {
		return label + ": " + r.ScopeName
	}
	return label
}

func periodLabel(p report.Period) string {
	return p.Start.UTC().Format("2006-01-02") + " – " + p.End.UTC().Format("2006-01-02")
}

func titleRow(title, period string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New(period, props.Text{Size: 9, Top: 4, Align: align.Right, Color: colorGray}),
		),
	)
}

// Anchos de columna (suma 12, la grilla de maroto): dos columnas de texto
// anchas y tres numéricas estrechas.
var columnWidths = [5]int{3, 3, 2, 2, 2}

func headerRow(labels ...string) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(columnWidths[i]).Add(
			text.New(l, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}),
		))
	}
	return row.New(7).Add(cols...)
}

// dataRow emite una fila de 5 celdas; las celdas desde alignFrom en
// adelante son numéricas y van alineadas a la derecha.
func dataRow(values [5]string, alignFrom int, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		p := props.Text{Size: 8, Style: style}
		if i >= alignFrom {
			p.Align = align.Right
		}
		cols = append(cols, col.New(columnWidths[i]).Add(text.New(v, p)))
	}
	return row.New(6).Add(cols...)
}

func totalsRow(t report.Totals) core.Row {
	label := fmt.Sprintf("Total: %s h · facturables: %s h · registros: %d",
		t.TotalHours.String(), t.BillableHours.String(), t.EntryCount)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}),
		),
	)
}
