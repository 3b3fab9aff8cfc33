// internal/core/domain/tool.go
package domain

import "strings"

// RequiredTools es el conjunto de herramientas que la cadena necesita, en orden de ejecución.
var RequiredTools = []string{"subfinder", "dnsx", "naabu", "httpx", "katana"}

// ToolState es el estado de instalación que reporta pdtm para una herramienta.
type ToolState string

const (
	StateLatest       ToolState = "latest"
	StateOutdated     ToolState = "outdated"
	StateNotInstalled ToolState = "not installed"
	StateNotSupported ToolState = "not supported"
)

// ParseToolState convierte la palabra clave del listado en un ToolState.
func ParseToolState(s string) (ToolState, bool) {
	state := ToolState(strings.ToLower(strings.TrimSpace(s)))
	return state, state.IsValid()
}

// IsValid verifica si el estado es uno de los conocidos.
func (s ToolState) IsValid() bool {
	switch s {
	case StateLatest, StateOutdated, StateNotInstalled, StateNotSupported:
		return true
	default:
		return false
	}
}

func (s ToolState) String() string {
	return string(s)
}

// Version es un token de versión opcional. Un token ausente es Valid=false.
type Version struct {
	Value string
	Valid bool
}

// NewVersion crea una versión presente; "" produce una versión ausente.
func NewVersion(v string) Version {
	if v == "" {
		return Version{}
	}
	return Version{Value: v, Valid: true}
}

// String retorna el valor o "-" si está ausente.
func (v Version) String() string {
	if !v.Valid {
		return "-"
	}
	return v.Value
}

// ToolStatus es una entrada del listado de pdtm.
type ToolStatus struct {
	Name    string
	State   ToolState
	Current Version
	Latest  Version
}

// ActionKind es el tipo de remediación.
type ActionKind string

const (
	ActionInstall ActionKind = "install"
	ActionUpdate  ActionKind = "update"
)

func (k ActionKind) String() string {
	return string(k)
}

// Action es una remediación pendiente para una herramienta.
type Action struct {
	Tool    string
	Kind    ActionKind
	Current Version
	Latest  Version
}

// String formatea la acción para mostrarla en la cola.
func (a Action) String() string {
	if a.Kind == ActionUpdate {
		return a.Tool + " (update " + a.Current.String() + " -> " + a.Latest.String() + ")"
	}
	return a.Tool + " (install)"
}

// Plan es el resultado de reconciliar el listado contra las herramientas requeridas.
type Plan struct {
	Actions []Action

	// Missing lista herramientas requeridas que no aparecen en el listado
	Missing []string
}

// Empty reporta si no hay nada que remediar.
func (p Plan) Empty() bool {
	return len(p.Actions) == 0
}
