// internal/runner/runner.go

// Package runner ejecuta las herramientas externas de reconocimiento, o las simula en dry-run.
package runner

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/ui"
)

const (
	// excerptMaxLines y excerptMaxBytes acotan el stderr que ve el operador.
	excerptMaxLines = 20
	excerptMaxBytes = 2048
)

// Runner implementa ports.CommandRunner sobre os/exec.
// Un comando iniciado nunca se cancela, por eso no recibe context.
type Runner struct {
	logger    logx.Logger
	presenter ui.Presenter

	// lookPath se reemplaza en tests
	lookPath func(file string) (string, error)
}

// New crea un Runner.
func New(logger logx.Logger, presenter ui.Presenter) *Runner {
	return &Runner{
		logger:    logger.With("component", "runner"),
		presenter: presenter,
		lookPath:  exec.LookPath,
	}
}

// Run ejecuta argv (o solo lo anuncia en dry-run). El fallo de la herramienta
// es un valor: Succeeded=false con el stdout que haya producido.
func (r *Runner) Run(argv []string, dryRun bool) domain.CommandResult {
	res := domain.CommandResult{Argv: argv, DryRun: dryRun}
	if len(argv) == 0 {
		res.Err = errors.Wrap(errors.ErrInvalidInput, "empty command")
		res.ExitCode = -1
		return res
	}

	cmdline := FormatCommand(argv)
	tool := argv[0]

	if dryRun {
		r.presenter.Command(cmdline, true)
		r.logger.Debug("dry-run command", "argv", argv)
		res.Succeeded = true
		return res
	}

	r.presenter.Command(cmdline, false)

	path, err := r.lookPath(tool)
	if err != nil {
		res.ExitCode = -1
		res.Err = errors.Wrapf(errors.ErrToolNotFound, "%s", tool)
		r.logger.Warn("executable not found", "tool", tool)
		r.presenter.CommandFailed(tool, -1, res.Err.Error())
		return res
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	res.Duration = time.Since(start)
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()

	if runErr != nil {
		res.Err = errors.Wrapf(runErr, "run %s", tool)
		res.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		}
		r.logger.Warn("command failed",
			"tool", tool,
			"exit_code", res.ExitCode,
			"duration", res.Duration.String(),
		)
		r.presenter.CommandFailed(tool, res.ExitCode, Excerpt(res.Stderr))
		return res
	}

	res.Succeeded = true
	r.logger.Debug("command finished",
		"tool", tool,
		"duration", res.Duration.String(),
		"stdout_bytes", stdout.Len(),
	)
	return res
}

// FormatCommand muestra argv como una línea de shell, citando los argumentos que lo requieren.
func FormatCommand(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'\\$`|&;<>()*?") {
			parts[i] = strconv.Quote(a)
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

// Excerpt conserva el final de s: como máximo 20 líneas y 2 KiB.
func Excerpt(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) > excerptMaxLines {
		lines = lines[len(lines)-excerptMaxLines:]
	}
	out := strings.Join(lines, "\n")

	if len(out) > excerptMaxBytes {
		out = out[len(out)-excerptMaxBytes:]
		// no cortar a mitad de línea si se puede evitar
		if i := strings.IndexByte(out, '\n'); i >= 0 && i < len(out)-1 {
			out = out[i+1:]
		}
	}
	return out
}
