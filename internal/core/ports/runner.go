// internal/core/ports/runner.go
package ports

import (
	"context"

	"webchain/internal/core/domain"
)

// CommandRunner ejecuta (o simula, en dry-run) una herramienta externa.
// Los fallos de la herramienta se reportan en el CommandResult, nunca como panic.
type CommandRunner interface {
	Run(argv []string, dryRun bool) domain.CommandResult
}

// Confirmer pide una confirmación sí/no al operador.
// Retorna errors.ErrInterrupted si el contexto se cancela mientras espera.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
