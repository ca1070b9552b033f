package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/timeflow-api/internal/domain"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
	"github.com/jhoicas/timeflow-api/internal/domain/repository"
)

// ExportFormat formato de salida de un reporte exportado.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
	FormatPDF  ExportFormat = "pdf"
)

// normalizeFormat resuelve el formato pedido. Un formato no reconocido cae
// en silencio a CSV: así se comporta el sistema desde el origen y los
// consumidores existentes dependen de ello.
func normalizeFormat(s string) ExportFormat {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX:
		return FormatXLSX
	case FormatPDF:
		return FormatPDF
	default:
		return FormatCSV
	}
}

// ContentType devuelve el media type HTTP del formato.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// PDFGenerator puerto para la representación PDF de los reportes.
// Lo implementa internal/infrastructure/pdf.
type PDFGenerator interface {
	GenerateRollupPDF(ctx context.Context, r *report.Report) ([]byte, error)
	GenerateTimesheetPDF(ctx context.Context, period report.Period, entries []report.Entry, totals report.Totals) ([]byte, error)
}

// Exporter serializa reportes a csv, xlsx o pdf. La construcción del reporte
// es la misma que en UseCase; aquí solo cambia la serialización final.
type Exporter struct {
	uc  *UseCase
	pdf PDFGenerator
}

// NewExporter construye el exportador.
func NewExporter(uc *UseCase, pdf PDFGenerator) *Exporter {
	return &Exporter{uc: uc, pdf: pdf}
}

// ExportReport genera y serializa un reporte agregado (layout escalonado en
// csv/xlsx). Devuelve los bytes y el formato efectivo.
func (ex *Exporter) ExportReport(
	ctx context.Context,
	caller report.Caller,
	requested report.Scope,
	period report.Period,
	format string,
) ([]byte, ExportFormat, error) {
	f := normalizeFormat(format)
	r, err := ex.uc.BuildReport(ctx, caller, requested, period)
	if err != nil {
		return nil, f, err
	}

	switch f {
	case FormatXLSX:
		data, err := rollupXLSX(r.Groups)
		return data, f, err
	case FormatPDF:
		data, err := ex.pdf.GenerateRollupPDF(ctx, r)
		return data, f, err
	default:
		return report.RollupCSV(r.Groups), FormatCSV, nil
	}
}

// ExportTimesheet genera y serializa el listado plano de un usuario.
func (ex *Exporter) ExportTimesheet(
	ctx context.Context,
	caller report.Caller,
	userID string,
	period report.Period,
	format string,
) ([]byte, ExportFormat, error) {
	f := normalizeFormat(format)
	if !period.Valid() {
		return nil, f, domain.ErrInvalidRange
	}

	requested := report.Scope{Kind: report.ScopeSelf}
	if userID != "" {
		requested = report.Scope{Kind: report.ScopeUser, TargetID: userID}
	}
	scope, err := report.ResolveScope(caller, requested)
	if err != nil {
		return nil, f, err
	}

	entries, err := ex.uc.fetchResolved(ctx, period, repository.EntryFilter{UserIDs: []string{scope.TargetID}}, nil, nil)
	if err != nil {
		return nil, f, err
	}

	switch f {
	case FormatXLSX:
		data, err := entriesXLSX(entries)
		return data, f, err
	case FormatPDF:
		data, err := ex.pdf.GenerateTimesheetPDF(ctx, period, entries, report.Sum(entries))
		return data, f, err
	default:
		return report.EntriesCSV(entries), FormatCSV, nil
	}
}

// ── XLSX ──────────────────────────────────────────────────────────────────────

// Los libros xlsx replican columna a columna los layouts del CSV, incluido
// el escalonado del rollup, para que ambos formatos sean intercambiables en
// las hojas de cálculo de los consumidores.

func entriesXLSX(entries []report.Entry) ([]byte, error) {
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, []string{"Date", "User", "Project", "Task", "Total Hours", "Billable Hours", "Status"})
	for _, e := range entries {
		rows = append(rows, []string{
			e.Date.UTC().Format("2006-01-02"),
			e.UserName,
			e.ProjectName,
			e.Task,
			e.ActualHours.String(),
			e.BillableHours.String(),
			e.Status,
		})
	}
	return writeXLSX(rows)
}

func rollupXLSX(nodes []report.RollupNode) ([]byte, error) {
	rows := [][]string{{"User", "Total Hours", "Billable Hours", "Project", "Project Total Hours", "Project Billable Hours"}}
	for _, n := range nodes {
		parent := []string{n.Key.Name, n.Totals.TotalHours.String(), n.Totals.BillableHours.String()}
		if len(n.Children) == 0 {
			rows = append(rows, append(parent, "", "", ""))
			continue
		}
		for i, c := range n.Children {
			child := []string{c.Key.Name, c.Totals.TotalHours.String(), c.Totals.BillableHours.String()}
			if i == 0 {
				rows = append(rows, append(parent, child...))
			} else {
				rows = append(rows, append([]string{"", "", ""}, child...))
			}
		}
	}
	return writeXLSX(rows)
}

func writeXLSX(rows [][]string) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("exportar xlsx: celda %s: %w", cell, err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("exportar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
