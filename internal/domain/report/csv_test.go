package report_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
)

func TestEntriesCSV_LayoutYEncabezado(t *testing.T) {
	entries := []report.Entry{
		mkEntry("e1", "u1", "Ana", "p1", "Atlas", day(2), "3", "2", entity.StatusApproved),
		mkEntry("e2", "u1", "Ana", "p2", "Borealis", day(3), "4.5", "4", entity.StatusPending),
	}

	got := string(report.EntriesCSV(entries))
	want := "Date,User,Project,Task,Total Hours,Billable Hours,Status\n" +
		"2026-03-02,Ana,Atlas,,3,2,approved\n" +
		"2026-03-03,Ana,Borealis,,4.5,4,pending\n"
	assert.Equal(t, want, got)
}

func TestEntriesCSV_CitadoDeCamposEspeciales(t *testing.T) {
	e := mkEntry("e1", "u1", `Ana "Ruiz", QA`, "p1", "Atlas", day(2), "3", "2", entity.StatusApproved)
	e.Task = `a,b"c`

	got := string(report.EntriesCSV([]report.Entry{e}))

	// Solo los campos con coma o comilla van citados, con comillas duplicadas.
	assert.Contains(t, got, `"Ana ""Ruiz"", QA"`)
	assert.Contains(t, got, `"a,b""c"`)
	assert.Contains(t, got, "Atlas,", "los campos simples quedan sin citar")

	// Round-trip: un lector CSV estándar recupera los valores originales.
	rows, err := csv.NewReader(bytes.NewReader([]byte(got))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, `Ana "Ruiz", QA`, rows[1][1])
	assert.Equal(t, `a,b"c`, rows[1][3])
}

func TestEntriesCSV_TerminaEnSaltoDeLinea(t *testing.T) {
	got := report.EntriesCSV([]report.Entry{
		mkEntry("e1", "u1", "Ana", "p1", "Atlas", day(2), "1", "1", entity.StatusApproved),
	})
	assert.True(t, bytes.HasSuffix(got, []byte("\n")),
		"cada fila, incluida la última, termina en \\n")
	assert.False(t, bytes.Contains(got, []byte("\r\n")), "separador \\n, no CRLF")
}

func TestEntriesCSV_SinRegistrosSoloEncabezado(t *testing.T) {
	got := string(report.EntriesCSV(nil))
	assert.Equal(t, "Date,User,Project,Task,Total Hours,Billable Hours,Status\n", got)
}

func TestRollupCSV_LayoutEscalonado(t *testing.T) {
	entries := []report.Entry{
		mkEntry("e1", "u1", "Ana", "p1", "Atlas", day(2), "3", "2", entity.StatusApproved),
		mkEntry("e2", "u1", "Ana", "p1", "Atlas", day(3), "5", "4", entity.StatusApproved),
		mkEntry("e3", "u1", "Ana", "p2", "Borealis", day(4), "4", "4", entity.StatusPending),
		mkEntry("e4", "u2", "Bruno", "p1", "Atlas", day(4), "2", "2", entity.StatusApproved),
	}
	nodes := report.Aggregate(entries, report.ByUser, report.ByProject)

	got := string(report.RollupCSV(nodes))
	want := "User,Total Hours,Billable Hours,Project,Project Total Hours,Project Billable Hours\n" +
		"Ana,12,10,Atlas,8,6\n" +
		",,,Borealis,4,4\n" +
		"Bruno,2,2,Atlas,2,2\n"
	assert.Equal(t, want, got,
		"el primer hijo comparte fila con el padre; los siguientes son filas de continuación")
}

func TestRollupCSV_PadreSinHijosEmiteUnaFila(t *testing.T) {
	nodes := report.Aggregate([]report.Entry{
		mkEntry("e1", "u1", "Ana", "p1", "Atlas", day(2), "3", "3", entity.StatusApproved),
	}, report.ByUser, nil)

	got := string(report.RollupCSV(nodes))
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 2, "encabezado + una fila por el padre sin hijos")
	assert.Equal(t, "Ana,3,3,,,", lines[1],
		"las columnas de hijo quedan en blanco")
}

func TestRollupCSV_VacioSoloEncabezado(t *testing.T) {
	got := string(report.RollupCSV(nil))
	assert.Equal(t, "User,Total Hours,Billable Hours,Project,Project Total Hours,Project Billable Hours\n", got)
}
