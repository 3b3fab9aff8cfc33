// internal/runner/runnertest/fake.go

// Package runnertest provee un ports.CommandRunner programable para tests.
package runnertest

import (
	"os"
	"strings"
	"sync"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
)

// Call es una invocación registrada.
type Call struct {
	Argv   []string
	DryRun bool

	// InputExists indica si el archivo de -l/-list existía al momento de la llamada
	InputExists bool
}

// Fake registra cada llamada y simula que las herramientas escriben su archivo -o.
type Fake struct {
	mu    sync.Mutex
	calls []Call

	// Outputs son las líneas que "descubre" una herramienta; se escriben en -o y en stdout
	Outputs map[string][]string

	// Stdout reemplaza lo que imprime una herramienta (ej: el listado de pdtm)
	Stdout map[string]string

	// Stderr se retorna como stderr de la herramienta
	Stderr map[string]string

	// Fail hace que la herramienta termine con código 1
	Fail map[string]bool

	// Missing simula una herramienta ausente del PATH
	Missing map[string]bool

	// Quiet suprime el eco en stdout para forzar la lectura del archivo
	Quiet bool
}

// New crea un Fake vacío.
func New() *Fake {
	return &Fake{
		Outputs: map[string][]string{},
		Stdout:  map[string]string{},
		Stderr:  map[string]string{},
		Fail:    map[string]bool{},
		Missing: map[string]bool{},
	}
}

// Run implementa ports.CommandRunner.
func (f *Fake) Run(argv []string, dryRun bool) domain.CommandResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{
		Argv:        append([]string(nil), argv...),
		DryRun:      dryRun,
		InputExists: inputExists(argv),
	})
	res := domain.CommandResult{Argv: argv, DryRun: dryRun}
	if len(argv) == 0 {
		res.ExitCode = -1
		res.Err = errors.Wrap(errors.ErrInvalidInput, "empty command")
		return res
	}
	if dryRun {
		res.Succeeded = true
		return res
	}

	tool := argv[0]
	if f.Missing[tool] {
		res.ExitCode = -1
		res.Err = errors.Wrapf(errors.ErrToolNotFound, "%s", tool)
		return res
	}

	res.Stderr = f.Stderr[tool]
	if f.Fail[tool] {
		res.ExitCode = 1
		res.Err = errors.Errorf("%s: exit status 1", tool)
		return res
	}

	if lines, ok := f.Outputs[tool]; ok {
		if out := flagValue(argv, "-o"); out != "" {
			content := strings.Join(lines, "\n")
			if len(lines) > 0 {
				content += "\n"
			}
			if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
				res.ExitCode = 1
				res.Err = err
				return res
			}
		}
		if !f.Quiet {
			res.Stdout = strings.Join(lines, "\n")
		}
	}
	if s, ok := f.Stdout[tool]; ok {
		res.Stdout = s
	}

	res.Succeeded = true
	return res
}

// Calls retorna una copia de las invocaciones registradas.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Commands retorna cada argv registrado unido por espacios.
func (f *Fake) Commands() []string {
	calls := f.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = strings.Join(c.Argv, " ")
	}
	return out
}

// Tools retorna argv[0] de cada llamada, en orden.
func (f *Fake) Tools() []string {
	calls := f.Calls()
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		if len(c.Argv) > 0 {
			out = append(out, c.Argv[0])
		}
	}
	return out
}

func inputExists(argv []string) bool {
	path := flagValue(argv, "-list")
	if path == "" {
		path = flagValue(argv, "-l")
	}
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func flagValue(argv []string, flag string) string {
	for i := 0; i+1 < len(argv); i++ {
		if argv[i] == flag {
			return argv[i+1]
		}
	}
	return ""
}
