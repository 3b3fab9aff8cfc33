// internal/toolcheck/probe.go
package toolcheck

import (
	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
)

// DefaultManager es el binario que gestiona las versiones de las herramientas.
const DefaultManager = "pdtm"

// Probe ejecuta el gestor de verdad incluso en dry-run: listar no modifica nada.
// Se leen ambos flujos porque pdtm escribe el listado en stderr.
func Probe(runner ports.CommandRunner, manager string) (map[string]domain.ToolStatus, error) {
	if manager == "" {
		manager = DefaultManager
	}

	res := runner.Run([]string{manager}, false)
	if errors.IsToolNotFound(res.Err) {
		return nil, errors.Wrapf(errors.ErrToolNotFound, "%s", manager)
	}

	statuses := Parse(res.Stdout + "\n" + res.Stderr)
	if !res.Succeeded && len(statuses) == 0 {
		err := res.Err
		if err == nil {
			err = errors.Errorf("exit code %d", res.ExitCode)
		}
		return nil, errors.Wrapf(err, "%s listing", manager)
	}
	return statuses, nil
}
