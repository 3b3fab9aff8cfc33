// internal/platform/config/targets.go
package config

import (
	"bufio"
	"os"
	"strings"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/validator"
)

// Rejected es una entrada descartada al resolver los objetivos.
type Rejected struct {
	Line  int // 0 para -d
	Input string
	Err   error
}

// Targets resuelve los objetivos de la corrida desde -d o desde el archivo.
// Las entradas inválidas no abortan: se retornan en rejected. Un archivo
// inexistente retorna ErrNotFound.
func (c Config) Targets() (targets []domain.Target, rejected []Rejected, err error) {
	if c.Domain != "" {
		t, terr := domain.NewTarget(c.Domain)
		if terr != nil {
			return nil, []Rejected{{Input: c.Domain, Err: terr}}, nil
		}
		return []domain.Target{t}, nil, nil
	}

	lines, err := ReadTargetFile(c.InputFile)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		t, terr := domain.NewTarget(l.Text)
		if terr != nil {
			rejected = append(rejected, Rejected{Line: l.Number, Input: l.Text, Err: terr})
			continue
		}
		// duplicados colapsan al primero
		if _, dup := seen[t.Name]; dup {
			continue
		}
		seen[t.Name] = struct{}{}
		targets = append(targets, t)
	}
	return targets, rejected, nil
}

// TargetLine es una línea útil del archivo de objetivos.
type TargetLine struct {
	Number int
	Text   string
}

// ReadTargetFile lee path ignorando líneas vacías y comentarios (#).
func ReadTargetFile(path string) ([]TargetLine, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(errors.ErrNotFound, "input file %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open input file %s", path)
	}
	defer f.Close()

	var out []TargetLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if validator.IsEmpty(line) || validator.IsComment(line) {
			continue
		}
		out = append(out, TargetLine{Number: n, Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read input file %s", path)
	}
	return out, nil
}
