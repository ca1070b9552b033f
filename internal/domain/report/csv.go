package report

import (
	"bytes"
	"encoding/csv"
)

// Serialización CSV de reportes: text/csv estricto, UTF-8, separador coma,
// '\n' tras cada fila incluida la última. encoding/csv aplica la regla de
// citado requerida: un campo se envuelve en comillas dobles solo si contiene
// coma, comilla o salto de línea, con las comillas internas duplicadas; los
// campos numéricos y de texto simple quedan sin citar.

const dateLayout = "2006-01-02"

var entriesHeader = []string{"Date", "User", "Project", "Task", "Total Hours", "Billable Hours", "Status"}

var rollupHeader = []string{"User", "Total Hours", "Billable Hours", "Project", "Project Total Hours", "Project Billable Hours"}

// EntriesCSV serializa la lista plana de registros de un reporte timesheet,
// en el orden recibido (fecha ascendente). Función pura: no hace I/O más
// allá de devolver los bytes.
func EntriesCSV(entries []Entry) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(entriesHeader)
	for _, e := range entries {
		_ = w.Write([]string{
			e.Date.UTC().Format(dateLayout),
			e.UserName,
			e.ProjectName,
			e.Task,
			e.ActualHours.String(),
			e.BillableHours.String(),
			e.Status,
		})
	}
	w.Flush()
	return buf.Bytes()
}

// RollupCSV serializa un rollup de dos niveles en el layout escalonado que
// consumen las hojas de cálculo existentes: el primer hijo comparte fila con
// las columnas del padre y los hijos siguientes salen como filas de
// continuación con las columnas del padre en blanco. Un padre sin hijos
// emite exactamente una fila con las columnas finales en blanco. Este layout
// desnormalizado es un contrato de compatibilidad externa; no cambiarlo.
func RollupCSV(nodes []RollupNode) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(rollupHeader)
	for _, n := range nodes {
		parent := []string{n.Key.Name, n.Totals.TotalHours.String(), n.Totals.BillableHours.String()}
		if len(n.Children) == 0 {
			_ = w.Write(append(parent, "", "", ""))
			continue
		}
		for i, c := range n.Children {
			child := []string{c.Key.Name, c.Totals.TotalHours.String(), c.Totals.BillableHours.String()}
			if i == 0 {
				_ = w.Write(append(parent, child...))
			} else {
				_ = w.Write(append([]string{"", "", ""}, child...))
			}
		}
	}
	w.Flush()
	return buf.Bytes()
}
