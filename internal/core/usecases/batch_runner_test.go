// internal/core/usecases/batch_runner_test.go
package usecases

import (
	"context"
	"testing"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
	"webchain/internal/testutil"
)

func targets(t *testing.T, inputs ...string) []domain.Target {
	t.Helper()
	out := make([]domain.Target, len(inputs))
	for i, in := range inputs {
		out[i] = mustTarget(t, in)
	}
	return out
}

func TestBatchRunner_Sequential(t *testing.T) {
	fake := chainFake()
	exporter := &mockExporter{}
	overviewer := &mockOverviewer{}
	b := NewBatchRunner(BatchRunnerOptions{
		Orchestrator: newOrchestrator(fake, PipelineOrchestratorOptions{OutputDir: t.TempDir()}),
		Exporter:     exporter,
		Overviewer:   overviewer,
		Logger:       testutil.NewTestLogger(),
	})

	batch, err := b.Run(context.Background(), targets(t, "example.com", "example.org"))

	testutil.AssertNoError(t, err, "batch")
	testutil.AssertEqual(t, len(batch.Domains), 2, "two domains")
	testutil.AssertEqual(t, len(fake.Calls()), 10, "five tools per domain")
	testutil.AssertEqual(t, fake.Tools()[5], "subfinder", "second domain starts after the first finished")
	testutil.AssertEqual(t, len(exporter.reports), 2, "summary per domain")
	testutil.AssertEqual(t, overviewer.domains, []string{"example.com", "example.org"}, "overview per domain")
}

func TestBatchRunner_DryRunSkipsArtifacts(t *testing.T) {
	fake := chainFake()
	exporter := &mockExporter{}
	overviewer := &mockOverviewer{}
	b := NewBatchRunner(BatchRunnerOptions{
		Orchestrator: newOrchestrator(fake, PipelineOrchestratorOptions{OutputDir: t.TempDir(), DryRun: true}),
		Exporter:     exporter,
		Overviewer:   overviewer,
		DryRun:       true,
		Logger:       testutil.NewTestLogger(),
	})

	_, err := b.Run(context.Background(), targets(t, "example.com"))

	testutil.AssertNoError(t, err, "batch")
	testutil.AssertEqual(t, len(exporter.reports), 0, "no summary in dry-run")
	testutil.AssertEqual(t, len(overviewer.domains), 0, "no overview in dry-run")
}

func TestBatchRunner_InterruptedBetweenDomains(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fake := chainFake()
	overviewer := &mockOverviewer{cancel: cancel}
	b := NewBatchRunner(BatchRunnerOptions{
		Orchestrator: newOrchestrator(fake, PipelineOrchestratorOptions{OutputDir: t.TempDir()}),
		Overviewer:   overviewer,
		Logger:       testutil.NewTestLogger(),
	})

	batch, err := b.Run(ctx, targets(t, "example.com", "example.org"))

	testutil.AssertTrue(t, errors.IsInterrupted(err), "interrupted")
	testutil.AssertTrue(t, batch.Interrupted, "batch flag")
	testutil.AssertEqual(t, len(batch.Domains), 1, "second domain never started")
	testutil.AssertEqual(t, len(fake.Calls()), 5, "only the first chain ran")
}

func TestBatchRunner_AbortPolicyMovesToNextDomain(t *testing.T) {
	fake := chainFake()
	fake.Fail["subfinder"] = true
	exporter := &mockExporter{}
	b := NewBatchRunner(BatchRunnerOptions{
		Orchestrator: newOrchestrator(fake, PipelineOrchestratorOptions{OutputDir: t.TempDir(), Failure: AbortOnFailure}),
		Exporter:     exporter,
		Logger:       testutil.NewTestLogger(),
	})

	batch, err := b.Run(context.Background(), targets(t, "example.com", "example.org"))

	testutil.AssertNoError(t, err, "abort is per domain")
	testutil.AssertEqual(t, fake.Tools(), []string{"subfinder", "subfinder"}, "each chain stopped at subfinder")
	testutil.AssertTrue(t, batch.Domains[0].Aborted, "first aborted")
	testutil.AssertEqual(t, len(exporter.reports), 2, "aborted runs still summarized")
}

func TestBatchRunner_NoURLsIsWarning(t *testing.T) {
	fake := chainFake()
	overviewer := &mockOverviewer{err: errors.ErrNoURLs}
	b := NewBatchRunner(BatchRunnerOptions{
		Orchestrator: newOrchestrator(fake, PipelineOrchestratorOptions{OutputDir: t.TempDir()}),
		Overviewer:   overviewer,
		Logger:       testutil.NewTestLogger(),
	})

	_, err := b.Run(context.Background(), targets(t, "example.com"))
	testutil.AssertNoError(t, err, "missing URLs never fail the batch")
}

func TestStats(t *testing.T) {
	batch := domain.BatchReport{
		Domains: []domain.DomainReport{
			{Stages: []domain.StageResult{
				{Succeeded: true},
				{Succeeded: true, Skipped: true},
				{Succeeded: false},
			}},
			{Stages: []domain.StageResult{{Succeeded: true}}},
		},
		Interrupted: true,
	}

	stats := Stats(batch)
	testutil.AssertEqual(t, stats.Domains, 2, "domains")
	testutil.AssertEqual(t, stats.StagesOK, 2, "ok")
	testutil.AssertEqual(t, stats.StagesSkipped, 1, "skipped")
	testutil.AssertEqual(t, stats.StagesFailed, 1, "failed")
	testutil.AssertTrue(t, stats.Interrupted, "interrupted")
}
