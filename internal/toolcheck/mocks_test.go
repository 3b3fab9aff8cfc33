// internal/toolcheck/mocks_test.go
package toolcheck

import (
	"context"
	"testing"
)

// scriptedConfirmer responde un valor fijo y cuenta las llamadas.
type scriptedConfirmer struct {
	answer bool
	err    error
	calls  int
}

func (c *scriptedConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.calls++
	return c.answer, c.err
}

// forbiddenConfirmer hace fallar el test si alguna vez se le pregunta.
type forbiddenConfirmer struct {
	t *testing.T
}

func (c forbiddenConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.t.Helper()
	c.t.Fatal("confirmer must not be consulted")
	return false, nil
}
