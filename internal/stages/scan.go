// internal/stages/scan.go
package stages

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// maxLineSize acota una línea del artefacto (katana puede emitir URLs muy largas).
const maxLineSize = 10 * 1024 * 1024

// ScanLines recorre r línea por línea ignorando las vacías. Retorna cuántas
// líneas no vacías hay y las primeras sampleSize; visit, si no es nil, recibe
// cada línea contada.
func ScanLines(r io.Reader, sampleSize int, visit func(line string)) (int, []string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	count := 0
	var sample []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		count++
		if len(sample) < sampleSize {
			sample = append(sample, line)
		}
		if visit != nil {
			visit(line)
		}
	}
	return count, sample, scanner.Err()
}

// ScanFile aplica ScanLines a un archivo. Un archivo inexistente cuenta como vacío.
func ScanFile(path string, sampleSize int, visit func(line string)) (int, []string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()
	return ScanLines(f, sampleSize, visit)
}

// containsLine indica si path tiene una línea igual a want, sin distinguir mayúsculas.
func containsLine(path, want string) (bool, error) {
	found := false
	_, _, err := ScanFile(path, 0, func(line string) {
		if strings.EqualFold(line, want) {
			found = true
		}
	})
	return found, err
}

// appendLine agrega line al final de path (creándolo si hace falta) y deja
// el archivo terminado en salto de línea.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	prefix := ""
	if info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return err
		}
		if last[0] != '\n' {
			prefix = "\n"
		}
	}
	_, err = f.WriteString(prefix + line + "\n")
	return err
}
