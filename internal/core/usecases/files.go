// internal/core/usecases/files.go
package usecases

import (
	"os"

	"webchain/internal/stages"
)

// countLines cuenta las líneas no vacías de path; un error cuenta como 0.
func countLines(path string) int {
	n, _, _ := stages.ScanFile(path, 0, nil)
	return n
}

// ensureArtifact crea path vacío si la etapa no lo dejó, para que la
// siguiente etapa siempre reciba un archivo existente.
func ensureArtifact(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	return true, f.Close()
}
