package main

import (
	"bytes"
	"context"
	"testing"

	"webchain/internal/platform/errors"
	"webchain/internal/testutil"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--check", "--manager", "pdtm2", "--settings", "s.yaml", "-v"})

	testutil.AssertNoError(t, err, "parse")
	testutil.AssertTrue(t, opts.CheckOnly, "check")
	testutil.AssertEqual(t, opts.Manager, "pdtm2", "manager")
	testutil.AssertEqual(t, opts.SettingsPath, "s.yaml", "settings")
	testutil.AssertTrue(t, opts.Verbose, "verbose")
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--force"}},
		{"positional", []string{"subfinder"}},
		{"check with dry-run", []string{"--check", "--dry-run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			testutil.AssertTrue(t, errors.IsInvalidInput(err), "invalid input")
		})
	}
}

func TestAutoConfirm(t *testing.T) {
	ok, err := autoConfirm{}.Confirm(context.Background(), "?")
	testutil.AssertNoError(t, err, "confirm")
	testutil.AssertTrue(t, ok, "always yes")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = autoConfirm{}.Confirm(ctx, "?")
	testutil.AssertTrue(t, errors.IsInterrupted(err), "interrupted")
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)

	testutil.AssertContains(t, buf.String(), "subfinder, dnsx, naabu, httpx, katana", "lists tools")
	testutil.AssertContains(t, buf.String(), "--check", "check flag")
}
