// internal/toolcheck/reconcile.go
package toolcheck

import (
	"webchain/internal/core/domain"
)

// PortScanner se instala con el gestor de paquetes del sistema, no con pdtm.
const PortScanner = "naabu"

// Reconcile calcula el plan de remediación. Es una función pura: los mismos
// estados y la misma lista producen el mismo plan, en el orden de required.
func Reconcile(statuses map[string]domain.ToolStatus, required []string) domain.Plan {
	var plan domain.Plan

	for _, tool := range required {
		st, ok := statuses[tool]
		if !ok {
			plan.Missing = append(plan.Missing, tool)
			continue
		}

		switch st.State {
		case domain.StateNotInstalled:
			plan.Actions = append(plan.Actions, domain.Action{Tool: tool, Kind: domain.ActionInstall})
		case domain.StateOutdated:
			plan.Actions = append(plan.Actions, domain.Action{
				Tool:    tool,
				Kind:    domain.ActionUpdate,
				Current: st.Current,
				Latest:  st.Latest,
			})
		case domain.StateLatest, domain.StateNotSupported:
			// nada que hacer
		}
	}
	return plan
}

// InstallCommand retorna el argv que instala tool.
func InstallCommand(tool string) []string {
	if tool == PortScanner {
		return []string{"sudo", "apt", "install", PortScanner, "-y"}
	}
	return []string{"pdtm", "-i", tool}
}

// UpdateCommand retorna el argv que actualiza tool.
func UpdateCommand(tool string) []string {
	if tool == PortScanner {
		return []string{PortScanner, "-up"}
	}
	return []string{"pdtm", "-u", tool}
}

// CommandFor retorna el argv que ejecuta la acción a.
func CommandFor(a domain.Action) []string {
	if a.Kind == domain.ActionUpdate {
		return UpdateCommand(a.Tool)
	}
	return InstallCommand(a.Tool)
}
