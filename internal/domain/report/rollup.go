package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/timeflow-api/internal/domain/entity"
)

// Entry es un TimeEntry ya resuelto a nombres legibles vía el grafo
// organizacional. El ensamblador resuelve los nombres en lote antes de
// agregar; el motor nunca consulta el store.
type Entry struct {
	entity.TimeEntry
	UserName    string
	ProjectName string
}

// GroupKey identifica un grupo del rollup: id + nombre legible.
type GroupKey struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Totals agregados numéricos de un nodo o de un reporte completo.
// Las sumas usan decimal exacto: los reportes alimentan facturación y la
// deriva de redondeo de float64 sobre muchos registros pequeños no es
// aceptable.
type Totals struct {
	TotalHours       decimal.Decimal `json:"total_hours"`
	BillableHours    decimal.Decimal `json:"billable_hours"`
	NonBillableHours decimal.Decimal `json:"non_billable_hours"`
	EntryCount       int             `json:"entry_count"`
	PendingCount     int             `json:"pending_count"`
	ApprovedCount    int             `json:"approved_count"`
	RejectedCount    int             `json:"rejected_count"`
}

// RollupNode es un nivel del rollup jerárquico: clave de agrupación, totales
// y nodos hijos (ej. proyectos bajo un usuario). Se construye por petición y
// nunca se persiste.
type RollupNode struct {
	Key      GroupKey     `json:"key"`
	Totals   Totals       `json:"totals"`
	Children []RollupNode `json:"children,omitempty"`
}

// KeyFunc extrae la clave de agrupación de un registro.
type KeyFunc func(Entry) GroupKey

// ByUser agrupa por usuario.
func ByUser(e Entry) GroupKey { return GroupKey{ID: e.UserID, Name: e.UserName} }

// ByProject agrupa por proyecto.
func ByProject(e Entry) GroupKey { return GroupKey{ID: e.ProjectID, Name: e.ProjectName} }

// Aggregate particiona los registros por la clave primaria y, si secondary
// no es nil, vuelve a particionar cada grupo como nodos hijos.
//
// El orden de salida es el de primera aparición de cada clave en la
// secuencia de entrada: función pura del orden de entrada, sin depender del
// orden de iteración de mapas, de modo que entradas idénticas producen
// reportes byte a byte idénticos. El ensamblador entrega los registros
// ordenados por fecha ascendente.
//
// Entrada vacía produce un slice vacío, no un error. No muta los registros.
func Aggregate(entries []Entry, primary KeyFunc, secondary KeyFunc) []RollupNode {
	index := make(map[string]int, len(entries))
	order := make([]GroupKey, 0)
	buckets := make(map[string][]Entry)

	for _, e := range entries {
		key := primary(e)
		if _, ok := index[key.ID]; !ok {
			index[key.ID] = len(order)
			order = append(order, key)
		}
		buckets[key.ID] = append(buckets[key.ID], e)
	}

	nodes := make([]RollupNode, 0, len(order))
	for _, key := range order {
		group := buckets[key.ID]
		node := RollupNode{Key: key, Totals: Sum(group)}
		if secondary != nil {
			node.Children = Aggregate(group, secondary, nil)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// Sum calcula los totales de una secuencia de registros. Un grupo sin horas
// facturables reporta BillableHours = 0, nunca ausente. Las horas de
// registros rechazados sí cuentan en los totales; los contadores por estado
// permiten descontarlas aguas arriba si hace falta.
func Sum(entries []Entry) Totals {
	t := Totals{
		TotalHours:    decimal.Zero,
		BillableHours: decimal.Zero,
	}
	for _, e := range entries {
		t.TotalHours = t.TotalHours.Add(e.ActualHours)
		t.BillableHours = t.BillableHours.Add(e.BillableHours)
		t.EntryCount++
		switch e.Status {
		case entity.StatusPending:
			t.PendingCount++
		case entity.StatusApproved:
			t.ApprovedCount++
		case entity.StatusRejected:
			t.RejectedCount++
		}
	}
	t.NonBillableHours = t.TotalHours.Sub(t.BillableHours)
	return t
}

// SumNodes suma los totales de los nodos de primer nivel. Para cualquier
// reporte el resultado debe igualar la suma directa de todos los registros
// incluidos (invariante verificado en tests).
func SumNodes(nodes []RollupNode) Totals {
	t := Totals{
		TotalHours:    decimal.Zero,
		BillableHours: decimal.Zero,
	}
	for _, n := range nodes {
		t.TotalHours = t.TotalHours.Add(n.Totals.TotalHours)
		t.BillableHours = t.BillableHours.Add(n.Totals.BillableHours)
		t.EntryCount += n.Totals.EntryCount
		t.PendingCount += n.Totals.PendingCount
		t.ApprovedCount += n.Totals.ApprovedCount
		t.RejectedCount += n.Totals.RejectedCount
	}
	t.NonBillableHours = t.TotalHours.Sub(t.BillableHours)
	return t
}

// Period rango de fechas inclusivo [Start, End], fechas calendario en UTC.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reporta si Start <= End.
func (p Period) Valid() bool { return !p.Start.After(p.End) }

// Report es el resultado de un reporte agregado: scope efectivo, período,
// rollup y totales a nivel de reporte. Pertenece en exclusiva a la respuesta
// que lo contiene.
type Report struct {
	Scope     Scope        `json:"-"`
	ScopeName string       `json:"scope_name,omitempty"`
	Period    Period       `json:"period"`
	Groups    []RollupNode `json:"groups"`
	Totals    Totals       `json:"totals"`
}
