// internal/core/usecases/pipeline_integration_test.go
package usecases

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"webchain/internal/platform/ui"
	"webchain/internal/runner"
	"webchain/internal/stages"
	"webchain/internal/testutil"
)

// TestDryRunEndToEnd usa el runner real: en dry-run nada se ejecuta.
func TestDryRunEndToEnd(t *testing.T) {
	pterm.DisableStyling()
	var buf bytes.Buffer
	presenter := ui.NewPTermPresenterWithWriter(&buf)
	logger := testutil.NewTestLogger()
	base := t.TempDir()
	out := filepath.Join(base, "recon-output")

	r := runner.New(logger, presenter)
	o := NewPipelineOrchestrator(PipelineOrchestratorOptions{
		Stages:    stages.All(r, stages.DefaultSettings(), logger),
		OutputDir: out,
		Proxy:     "127.0.0.1:8080",
		DryRun:    true,
		Logger:    logger,
		Presenter: presenter,
	})
	b := NewBatchRunner(BatchRunnerOptions{
		Orchestrator: o,
		Exporter:     &mockExporter{},
		DryRun:       true,
		Logger:       logger,
		Presenter:    presenter,
	})

	_, err := b.Run(context.Background(), targets(t, "example.com"))
	testutil.AssertNoError(t, err, "dry-run batch")

	var lines []string
	for _, line := range strings.Split(pterm.RemoveColorFromString(buf.String()), "\n") {
		if i := strings.Index(line, "[DRY-RUN] Would execute: "); i >= 0 {
			lines = append(lines, line[i+len("[DRY-RUN] Would execute: "):])
		}
	}

	dir := filepath.Join(out, "example.com")
	want := []string{
		"subfinder -silent -d example.com -o " + filepath.Join(dir, "subfinder.txt"),
		"dnsx -silent -r 8.8.8.8 -l " + filepath.Join(dir, "subfinder.txt") + " -o " + filepath.Join(dir, "dnsx.txt"),
		"naabu -silent -list " + filepath.Join(dir, "dnsx.txt") + " -o " + filepath.Join(dir, "naabu.txt"),
		"httpx -silent -list " + filepath.Join(dir, "naabu.txt") + " -o " + filepath.Join(dir, "httpx.txt") + " -proxy http://127.0.0.1:8080",
		"katana -silent -jc -kf all -list " + filepath.Join(dir, "httpx.txt") + " -o " + filepath.Join(dir, "katana.txt") + " -proxy http://127.0.0.1:8080",
	}
	testutil.AssertEqual(t, lines, want, "five simulated commands in order")
	testutil.AssertNoFiles(t, base, "dry-run creates no files")
}
