// internal/core/usecases/batch_runner.go
package usecases

import (
	"context"
	"fmt"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/ui"
)

// BatchRunner recorre los objetivos uno por uno, nunca en paralelo.
type BatchRunner struct {
	orchestrator *PipelineOrchestrator
	exporter     ports.Exporter
	overviewer   ports.Overviewer
	dryRun       bool

	logger    logx.Logger
	presenter ui.Presenter
}

// BatchRunnerOptions configura el batch runner.
type BatchRunnerOptions struct {
	Orchestrator *PipelineOrchestrator

	// Exporter escribe summary.json tras cada corrida real (opcional)
	Exporter ports.Exporter

	// Overviewer genera el informe de IA tras cada corrida real (opcional)
	Overviewer ports.Overviewer

	DryRun    bool
	Logger    logx.Logger
	Presenter ui.Presenter
}

// NewBatchRunner crea un BatchRunner.
func NewBatchRunner(opts BatchRunnerOptions) *BatchRunner {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	return &BatchRunner{
		orchestrator: opts.Orchestrator,
		exporter:     opts.Exporter,
		overviewer:   opts.Overviewer,
		dryRun:       opts.DryRun,
		logger:       opts.Logger.With("component", "batch_runner"),
		presenter:    opts.Presenter,
	}
}

// Run ejecuta la cadena para cada objetivo. Retorna ErrInterrupted si el
// contexto se cancela, y ErrOutputDir si un directorio no se puede crear.
// Los fallos de etapas no se propagan: quedan en el reporte.
func (b *BatchRunner) Run(ctx context.Context, targets []domain.Target) (domain.BatchReport, error) {
	var batch domain.BatchReport

	for i, target := range targets {
		if ctx.Err() != nil {
			batch.Interrupted = true
			return batch, errors.Wrap(errors.ErrInterrupted, "batch")
		}

		b.presenter.StartDomain(target.Name, i+1, len(targets))
		report, err := b.orchestrator.Run(ctx, target)
		batch.Domains = append(batch.Domains, report)

		switch {
		case errors.IsInterrupted(err):
			batch.Interrupted = true
			return batch, err
		case errors.Is(err, errors.ErrOutputDir):
			b.presenter.Error(err.Error())
			return batch, err
		case err != nil:
			// AbortOnFailure: el dominio se detuvo, el lote sigue
			b.logger.Warn("domain chain stopped", "domain", target.Name, "error", err.Error())
		}

		if b.dryRun {
			continue
		}
		b.afterRun(ctx, report)
	}
	return batch, nil
}

// afterRun escribe el resumen y, si corresponde, el informe de IA.
func (b *BatchRunner) afterRun(ctx context.Context, report domain.DomainReport) {
	if b.exporter != nil {
		path, err := b.exporter.Export(report)
		if err != nil {
			b.logger.Err(err, "exporter", b.exporter.Name(), "domain", report.Target.Name)
			b.presenter.Warning(fmt.Sprintf("could not write summary for %s: %v", report.Target.Name, err))
		} else {
			b.presenter.Info("Summary written to " + path)
		}
	}

	if b.overviewer == nil || ctx.Err() != nil {
		return
	}
	path, err := b.overviewer.Generate(ctx, report)
	switch {
	case errors.Is(err, errors.ErrNoURLs):
		b.presenter.Warning(fmt.Sprintf("no URLs found for %s; skipping AI overview", report.Target.Name))
	case err != nil:
		b.logger.Err(err, "domain", report.Target.Name)
		b.presenter.Warning(fmt.Sprintf("AI overview failed for %s: %v", report.Target.Name, err))
	default:
		b.presenter.Success("AI overview written to " + path)
	}
}

// Stats resume un BatchReport para la pantalla final.
func Stats(batch domain.BatchReport) ui.RunStats {
	stats := ui.RunStats{
		Domains:     len(batch.Domains),
		Interrupted: batch.Interrupted,
	}
	for _, d := range batch.Domains {
		stats.TotalDuration += d.Duration()
		for _, st := range d.Stages {
			switch {
			case st.Skipped:
				stats.StagesSkipped++
			case st.Succeeded:
				stats.StagesOK++
			default:
				stats.StagesFailed++
			}
		}
	}
	return stats
}
