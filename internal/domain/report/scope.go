// Package report contiene el núcleo puro de reportería: resolución de
// alcance (scope), agregación jerárquica de registros de horas y
// serialización CSV. Ninguna función de este paquete hace I/O ni guarda
// estado compartido; todas son seguras para invocarse concurrentemente.
package report

import (
	"github.com/jhoicas/timeflow-api/internal/domain"
	"github.com/jhoicas/timeflow-api/internal/domain/entity"
)

// Caller identifica a quien solicita un reporte. Se pasa explícitamente a
// cada operación; el núcleo nunca lee credenciales de estado ambiente.
type Caller struct {
	ID   string
	Role string // owner, manager, member
}

// ScopeKind clases de alcance de un reporte.
type ScopeKind string

const (
	ScopeSelf       ScopeKind = "self"
	ScopeUser       ScopeKind = "user"
	ScopeTeam       ScopeKind = "team"
	ScopeDepartment ScopeKind = "department"
	ScopeProject    ScopeKind = "project"
)

// Scope es el subconjunto de la organización sobre el que se calcula un
// reporte. TargetID identifica al usuario/equipo/departamento/proyecto;
// queda vacío para ScopeSelf.
type Scope struct {
	Kind     ScopeKind
	TargetID string
}

// ResolveScope decide si el caller puede consultar el scope solicitado y lo
// normaliza. Reglas:
//
//   - self (o scope vacío) siempre se resuelve a user = caller.ID, sin
//     importar el rol.
//   - owner y manager pueden consultar cualquier scope.
//   - member solo puede consultar user = caller.ID; cualquier otro scope
//     devuelve domain.ErrForbidden.
//
// Es una función de decisión pura: determinista y sin efectos secundarios.
// Denegar es distinto de "no encontrado": un target inexistente no se
// verifica aquí y produce un reporte vacío más adelante, nunca un 403.
func ResolveScope(caller Caller, requested Scope) (Scope, error) {
	if requested.Kind == "" || requested.Kind == ScopeSelf {
		return Scope{Kind: ScopeUser, TargetID: caller.ID}, nil
	}

	switch caller.Role {
	case entity.RoleOwner, entity.RoleManager:
		return requested, nil
	case entity.RoleMember:
		if requested.Kind == ScopeUser && requested.TargetID == caller.ID {
			return requested, nil
		}
		return Scope{}, domain.ErrForbidden
	default:
		return Scope{}, domain.ErrForbidden
	}
}
