// internal/platform/ui/pterm_presenter_test.go
package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"

	"webchain/internal/testutil"
)

func newTestPresenter() (*bytes.Buffer, *PTermPresenter) {
	pterm.DisableStyling()
	var buf bytes.Buffer
	return &buf, NewPTermPresenterWithWriter(&buf)
}

func TestPTermPresenter_Command(t *testing.T) {
	buf, p := newTestPresenter()

	p.Command("subfinder -silent -d example.com -o out/subfinder.txt", true)
	p.Command("dnsx -silent -r 8.8.8.8 -l a -o b", false)

	output := pterm.RemoveColorFromString(buf.String())
	testutil.AssertContains(t, output, "[DRY-RUN] Would execute: subfinder -silent -d example.com -o out/subfinder.txt", "dry-run line")
	testutil.AssertContains(t, output, "Executing: dnsx -silent -r 8.8.8.8 -l a -o b", "real line")
}

func TestPTermPresenter_CommandFailed(t *testing.T) {
	buf, p := newTestPresenter()

	p.CommandFailed("naabu", 2, "[FTL] permission denied\nrun as root")
	p.CommandFailed("katana", -1, "")

	output := pterm.RemoveColorFromString(buf.String())
	testutil.AssertContains(t, output, "naabu failed (exit code 2)", "exit code reported")
	testutil.AssertContains(t, output, "run as root", "stderr excerpt shown")
	testutil.AssertContains(t, output, "katana could not be started", "start failure")
}

func TestPTermPresenter_FinishStage(t *testing.T) {
	buf, p := newTestPresenter()

	p.FinishStage(StageSummary{
		Name:       "naabu",
		Status:     StatusSuccess,
		Duration:   1500 * time.Millisecond,
		OutputPath: "recon-output/example.com/naabu.txt",
		Metrics: []MetricLine{
			{Label: "Open ports", Value: 3},
			{Label: "Hosts with open ports", Value: 2},
		},
		Sample: []string{"a.example.com:80", "a.example.com:443"},
	})

	output := pterm.RemoveColorFromString(buf.String())
	for _, want := range []string{"naabu (1.5s)", "Open ports: 3", "Hosts with open ports: 2", "Sample (2):", "a.example.com:443", "naabu.txt"} {
		testutil.AssertContains(t, output, want, "stage summary")
	}
}

func TestPTermPresenter_FinishStage_DryRun(t *testing.T) {
	buf, p := newTestPresenter()

	p.FinishStage(StageSummary{Name: "katana", Status: StatusDryRun, OutputPath: "x/katana.txt"})

	output := pterm.RemoveColorFromString(buf.String())
	testutil.AssertContains(t, output, "katana (simulated)", "dry-run marker")
	testutil.AssertFalse(t, strings.Contains(output, "x/katana.txt"), "dry-run hides output path")
}

func TestPTermPresenter_ToolStatus(t *testing.T) {
	buf, p := newTestPresenter()

	p.ToolStatus([]ToolRow{
		{Name: "subfinder", Status: StatusWarning, Detail: "2.9.0 -> 2.10.0 (minor)"},
		{Name: "dnsx", Status: StatusSuccess, Detail: "1.2.2"},
		{Name: "katana", Status: StatusError},
	})

	output := pterm.RemoveColorFromString(buf.String())
	testutil.AssertContains(t, output, "[OUTDATED]", "outdated tag")
	testutil.AssertContains(t, output, "2.9.0 -> 2.10.0 (minor)", "outdated detail")
	testutil.AssertContains(t, output, "[OK]", "ok tag")
	testutil.AssertContains(t, output, "[MISSING]", "missing tag")
}

func TestPTermPresenter_StartAndFinish(t *testing.T) {
	buf, p := newTestPresenter()

	p.Start(RunInfo{Targets: 2, OutputDir: "recon-output", Proxy: "127.0.0.1:8080", DryRun: true})
	p.StartDomain("example.com", 1, 2)
	p.StartStage(StageInfo{Number: 1, TotalStages: 5, Name: "subfinder"})
	p.Finish(RunStats{Domains: 2, StagesOK: 9, StagesFailed: 1, Interrupted: true})

	output := pterm.RemoveColorFromString(buf.String())
	for _, want := range []string{"Targets: 2", "Proxy: 127.0.0.1:8080", "[1/2] example.com", "Stage 1/5: subfinder", "Recon Interrupted", "Stages Failed: 1"} {
		testutil.AssertContains(t, output, want, "run output")
	}
}

func TestFormatDuration(t *testing.T) {
	testutil.AssertEqual(t, formatDuration(250*time.Millisecond), "250ms", "milliseconds")
	testutil.AssertEqual(t, formatDuration(2500*time.Millisecond), "2.5s", "seconds")
	testutil.AssertEqual(t, formatDuration(125*time.Second), "2m5s", "minutes")
}

func TestNoopPresenter(t *testing.T) {
	var p Presenter = NewNoopPresenter()
	p.Command("anything", true)
	testutil.AssertNoError(t, p.Close(), "close")
}
