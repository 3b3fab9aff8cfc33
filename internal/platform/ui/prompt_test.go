// internal/platform/ui/prompt_test.go
package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"webchain/internal/platform/errors"
	"webchain/internal/testutil"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{" YES ", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"yep", false},
		{"si", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			testutil.AssertEqual(t, IsAffirmative(tt.answer), tt.want, "affirmative")
		})
	}
}

func TestLinePrompter_Confirm(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("yes\nno\n"), &out)

	ok, err := p.Confirm(context.Background(), "Proceed? [y/N]: ")
	testutil.AssertNoError(t, err, "first confirm")
	testutil.AssertTrue(t, ok, "yes accepted")

	ok, err = p.Confirm(context.Background(), "Again? [y/N]: ")
	testutil.AssertNoError(t, err, "second confirm")
	testutil.AssertFalse(t, ok, "no rejected")

	testutil.AssertContains(t, out.String(), "Proceed? [y/N]: ", "prompt written")
}

func TestLinePrompter_EOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), io.Discard)

	ok, err := p.Confirm(context.Background(), "Proceed? ")
	testutil.AssertNoError(t, err, "EOF is not an error")
	testutil.AssertFalse(t, ok, "EOF is a refusal")
}

func TestLinePrompter_AskWithoutNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("  AIzaKey  "), io.Discard)

	answer, err := p.Ask(context.Background(), "Key: ")
	testutil.AssertNoError(t, err, "ask")
	testutil.AssertEqual(t, answer, "AIzaKey", "trimmed answer")
}

func TestLinePrompter_Interrupted(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	p := NewLinePrompter(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Ask(ctx, "Key: ")
	testutil.AssertTrue(t, errors.IsInterrupted(err), "cancelled context interrupts the prompt")
}

func TestLinePrompter_InterruptWhileBlocked(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	p := NewLinePrompter(r, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.Confirm(ctx, "Proceed? ")
		done <- err
	}()

	cancel()
	err := <-done
	testutil.AssertTrue(t, errors.IsInterrupted(err), "blocked prompt abandoned on cancel")
}
