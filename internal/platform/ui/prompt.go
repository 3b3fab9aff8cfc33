// internal/platform/ui/prompt.go
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"webchain/internal/platform/errors"
)

// LinePrompter lee respuestas del operador línea a línea.
// La lectura corre en una goroutine para que una interrupción pueda
// abandonar un prompt bloqueado.
type LinePrompter struct {
	out io.Writer

	mu      sync.Mutex
	reader  *bufio.Reader
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLinePrompter crea un prompter sobre in/out (normalmente stdin/stdout)
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Ask muestra question y retorna la línea leída sin espacios alrededor.
// EOF sin datos retorna "" sin error.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(errors.ErrInterrupted, "prompt")
	}

	fmt.Fprint(p.out, question)

	// Una lectura abandonada por interrupción se reutiliza en la siguiente llamada
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.reader.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", errors.Wrap(errors.ErrInterrupted, "prompt")
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil && res.err != io.EOF {
			return "", errors.Wrap(res.err, "read answer")
		}
		return strings.TrimSpace(res.line), nil
	}
}

// Confirm pregunta y reporta si la respuesta es afirmativa (y/yes).
func (p *LinePrompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	answer, err := p.Ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	return IsAffirmative(answer), nil
}

// IsAffirmative reporta si answer es "y" o "yes" sin distinguir mayúsculas.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
