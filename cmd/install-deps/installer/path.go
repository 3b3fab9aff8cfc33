// cmd/install-deps/installer/path.go

// Package installer agrupa los auxiliares de install-deps que no forman parte
// de la reconciliación: verificación del PATH y sugerencias de remediación manual.
package installer

import (
	"os"
	"os/exec"
	"path/filepath"
)

// PdtmBinDir es el directorio donde pdtm deja los binarios instalados.
func PdtmBinDir(home string) string {
	return filepath.Join(home, ".pdtm", "go", "bin")
}

// LookPathFunc resuelve un binario; exec.LookPath en producción.
type LookPathFunc func(file string) (string, error)

// PathReport describe qué herramientas requeridas resuelve el PATH actual.
type PathReport struct {
	Found    map[string]string
	NotFound []string

	// BinDir es el directorio de pdtm y BinDirInPath si figura en PATH
	BinDir       string
	BinDirInPath bool
}

// OK reporta si todas las herramientas se resolvieron.
func (r PathReport) OK() bool {
	return len(r.NotFound) == 0
}

// CheckPath resuelve cada herramienta con lookPath y verifica si el
// directorio de pdtm está en pathEntries.
func CheckPath(tools []string, home string, pathEntries []string, lookPath LookPathFunc) PathReport {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	report := PathReport{
		Found:  make(map[string]string, len(tools)),
		BinDir: PdtmBinDir(home),
	}
	report.BinDirInPath = IsInPath(report.BinDir, pathEntries)

	for _, tool := range tools {
		path, err := lookPath(tool)
		if err != nil {
			report.NotFound = append(report.NotFound, tool)
			continue
		}
		report.Found[tool] = path
	}
	return report
}

// SystemPath retorna las entradas de $PATH.
func SystemPath() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}

// IsInPath indica si dir figura entre las entradas del PATH.
func IsInPath(dir string, pathEntries []string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}

	for _, entry := range pathEntries {
		if entry == "" {
			continue
		}
		absEntry, err := filepath.Abs(entry)
		if err != nil {
			continue
		}
		if absEntry == absDir {
			return true
		}
	}
	return false
}
