package reporting_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/timeflow-api/internal/application/reporting"
	"github.com/jhoicas/timeflow-api/internal/domain"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
)

type stubPDF struct {
	rollupCalls    int
	timesheetCalls int
}

func (s *stubPDF) GenerateRollupPDF(_ context.Context, _ *report.Report) ([]byte, error) {
	s.rollupCalls++
	return []byte("%PDF-rollup"), nil
}

func (s *stubPDF) GenerateTimesheetPDF(_ context.Context, _ report.Period, _ []report.Entry, _ report.Totals) ([]byte, error) {
	s.timesheetCalls++
	return []byte("%PDF-timesheet"), nil
}

func newExporterFixture() (*reporting.Exporter, *fixture, *stubPDF) {
	f := newFixture()
	pdf := &stubPDF{}
	return reporting.NewExporter(f.uc, pdf), f, pdf
}

func TestExportReport_CSVPorDefecto(t *testing.T) {
	ex, _, _ := newExporterFixture()

	data, format, err := ex.ExportReport(context.Background(), owner,
		report.Scope{Kind: report.ScopeTeam, TargetID: "t1"}, week, "")
	require.NoError(t, err)

	assert.Equal(t, reporting.FormatCSV, format)
	assert.Equal(t, "text/csv", format.ContentType())
	assert.True(t, bytes.HasPrefix(data, []byte("User,Total Hours,Billable Hours")))
}

func TestExportReport_FormatoDesconocidoCaeACSV(t *testing.T) {
	ex, _, _ := newExporterFixture()

	for _, format := range []string{"html", "docx", "CSV ", "json"} {
		data, got, err := ex.ExportReport(context.Background(), owner,
			report.Scope{Kind: report.ScopeTeam, TargetID: "t1"}, week, format)
		require.NoError(t, err)
		assert.Equal(t, reporting.FormatCSV, got,
			"formato %q no reconocido debe caer a csv sin error", format)
		assert.NotEmpty(t, data)
	}
}

func TestExportReport_XLSXReplicaElLayout(t *testing.T) {
	ex, _, _ := newExporterFixture()

	data, format, err := ex.ExportReport(context.Background(), owner,
		report.Scope{Kind: report.ScopeTeam, TargetID: "t1"}, week, "xlsx")
	require.NoError(t, err)
	assert.Equal(t, reporting.FormatXLSX, format)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "la salida debe ser un libro xlsx legible")
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "User", rows[0][0])
	assert.Equal(t, "Ana", rows[1][0], "misma estructura escalonada que el csv")
	assert.Equal(t, "Atlas", rows[1][3])
}

func TestExportReport_PDFDelegaAlGenerador(t *testing.T) {
	ex, _, pdf := newExporterFixture()

	data, format, err := ex.ExportReport(context.Background(), owner,
		report.Scope{Kind: report.ScopeTeam, TargetID: "t1"}, week, "pdf")
	require.NoError(t, err)

	assert.Equal(t, reporting.FormatPDF, format)
	assert.Equal(t, "application/pdf", format.ContentType())
	assert.Equal(t, []byte("%PDF-rollup"), data)
	assert.Equal(t, 1, pdf.rollupCalls)
}

func TestExportReport_PropagaDenegacion(t *testing.T) {
	ex, f, _ := newExporterFixture()

	_, _, err := ex.ExportReport(context.Background(), member,
		report.Scope{Kind: report.ScopeTeam, TargetID: "t1"}, week, "csv")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.entries.calls)
}

func TestExportTimesheet_CSV(t *testing.T) {
	ex, _, _ := newExporterFixture()

	data, format, err := ex.ExportTimesheet(context.Background(), member, "", week, "csv")
	require.NoError(t, err)

	assert.Equal(t, reporting.FormatCSV, format)
	lines := bytes.Count(data, []byte("\n"))
	assert.Equal(t, 4, lines, "encabezado + tres registros de u1 en la semana")
	assert.Contains(t, string(data), "2026-03-02,Ana,Atlas")
}

func TestExportTimesheet_PDF(t *testing.T) {
	ex, _, pdf := newExporterFixture()

	data, format, err := ex.ExportTimesheet(context.Background(), member, "", week, "pdf")
	require.NoError(t, err)

	assert.Equal(t, reporting.FormatPDF, format)
	assert.Equal(t, []byte("%PDF-timesheet"), data)
	assert.Equal(t, 1, pdf.timesheetCalls)
}

func TestExportTimesheet_RangoInvalido(t *testing.T) {
	ex, f, _ := newExporterFixture()

	_, _, err := ex.ExportTimesheet(context.Background(), member, "",
		report.Period{Start: day(7), End: day(1)}, "csv")

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Zero(t, f.entries.calls)
}
