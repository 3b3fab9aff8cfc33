// internal/core/usecases/pipeline_orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/ui"
)

// FailurePolicy decide qué pasa con la cadena cuando una etapa falla.
type FailurePolicy string

const (
	// ContinueOnFailure registra el fallo y sigue con la siguiente etapa
	ContinueOnFailure FailurePolicy = "continue"

	// AbortOnFailure detiene la cadena del dominio con ErrStageFailed
	AbortOnFailure FailurePolicy = "abort"
)

// IsValid verifica si la política es conocida.
func (p FailurePolicy) IsValid() bool {
	return p == ContinueOnFailure || p == AbortOnFailure
}

// PipelineOrchestrator ejecuta las cinco etapas para un dominio, en orden
// estricto, pasando el artefacto de cada etapa como entrada de la siguiente.
type PipelineOrchestrator struct {
	stages    []ports.Stage
	outputDir string
	proxy     string
	dryRun    bool
	resume    bool
	failure   FailurePolicy

	logger    logx.Logger
	presenter ui.Presenter
	now       func() time.Time
	newRunID  func() string
}

// PipelineOrchestratorOptions configura el pipeline orchestrator.
type PipelineOrchestratorOptions struct {
	Stages    []ports.Stage
	OutputDir string

	// Proxy "host:port"; solo llega a las etapas HTTP
	Proxy string

	DryRun  bool
	Resume  bool
	Failure FailurePolicy

	Logger    logx.Logger
	Presenter ui.Presenter

	// Now y NewRunID son reemplazables en tests
	Now      func() time.Time
	NewRunID func() string
}

// NewPipelineOrchestrator crea una nueva instancia del pipeline orchestrator.
func NewPipelineOrchestrator(opts PipelineOrchestratorOptions) *PipelineOrchestrator {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	if !opts.Failure.IsValid() {
		opts.Failure = ContinueOnFailure
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}

	return &PipelineOrchestrator{
		stages:    opts.Stages,
		outputDir: opts.OutputDir,
		proxy:     opts.Proxy,
		dryRun:    opts.DryRun,
		resume:    opts.Resume,
		failure:   opts.Failure,
		logger:    opts.Logger.With("component", "pipeline_orchestrator"),
		presenter: opts.Presenter,
		now:       opts.Now,
		newRunID:  opts.NewRunID,
	}
}

// DomainDir es el directorio de artefactos del objetivo.
func (p *PipelineOrchestrator) DomainDir(target domain.Target) string {
	return filepath.Join(p.outputDir, target.Dir)
}

// Run ejecuta la cadena completa para target. Las interrupciones se observan
// solo entre etapas: una herramienta en curso nunca se cancela.
func (p *PipelineOrchestrator) Run(ctx context.Context, target domain.Target) (domain.DomainReport, error) {
	dir := p.DomainDir(target)
	report := domain.DomainReport{
		RunID:     p.newRunID(),
		Target:    target,
		OutputDir: dir,
		Proxy:     p.proxy,
		DryRun:    p.dryRun,
		StartedAt: p.now(),
	}
	logger := p.logger.With("domain", target.Name)

	if !p.dryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			report.FinishedAt = p.now()
			return report, errors.Wrapf(errors.ErrOutputDir, "create %s: %v", dir, err)
		}
	}

	inputPath := ""
	for i, stage := range p.stages {
		if ctx.Err() != nil {
			report.Interrupted = true
			report.FinishedAt = p.now()
			logger.Warn("interrupted between stages", "next", stage.Name().String())
			return report, errors.Wrap(errors.ErrInterrupted, "pipeline")
		}

		name := stage.Name()
		outputPath := filepath.Join(dir, name.OutputFile())

		p.presenter.StartStage(ui.StageInfo{
			Number:      i + 1,
			TotalStages: len(p.stages),
			Name:        name.String(),
			Domain:      target.Name,
		})

		var result domain.StageResult
		if p.shouldSkip(outputPath) {
			result = skippedResult(name, outputPath)
			logger.Info("stage skipped, output present", "stage", name.String(), "path", outputPath)
		} else {
			result = stage.Run(ports.StageInput{
				Target:     target,
				InputPath:  inputPath,
				OutputPath: outputPath,
				Proxy:      p.proxyFor(name),
				DryRun:     p.dryRun,
			})
			if !p.dryRun {
				// una etapa fallida entrega un artefacto vacío
				created, err := ensureArtifact(outputPath)
				if err != nil {
					logger.Warn("could not create empty artifact", "stage", name.String(), "path", outputPath, "error", err.Error())
				} else if created {
					logger.Debug("empty artifact created", "stage", name.String(), "path", outputPath)
				}
			}
		}

		report.Stages = append(report.Stages, result)
		p.presenter.FinishStage(stageSummary(result))

		if !result.Succeeded {
			logger.Warn("stage failed", "stage", name.String(), "policy", string(p.failure))
			if p.failure == AbortOnFailure {
				report.Aborted = true
				report.FinishedAt = p.now()
				p.presenter.Error(fmt.Sprintf("%s failed; aborting the chain for %s", name, target.Name))
				return report, errors.Wrapf(errors.ErrStageFailed, "%s", name)
			}
			p.presenter.Warning(fmt.Sprintf("%s failed; continuing with the next stage", name))
		}

		inputPath = outputPath
	}

	report.FinishedAt = p.now()
	logger.Debug("chain finished", "failed", report.Failed(), "duration", report.Duration().String())
	return report, nil
}

// proxyFor devuelve el proxy solo para las etapas que hablan HTTP.
func (p *PipelineOrchestrator) proxyFor(name domain.StageName) string {
	if name == domain.StageHttpx || name == domain.StageKatana {
		return p.proxy
	}
	return ""
}

// shouldSkip aplica la política de resume: salida existente y no vacía.
func (p *PipelineOrchestrator) shouldSkip(outputPath string) bool {
	if !p.resume || p.dryRun {
		return false
	}
	info, err := os.Stat(outputPath)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

func skippedResult(name domain.StageName, outputPath string) domain.StageResult {
	return domain.StageResult{
		Stage:      name,
		Tool:       name.String(),
		OutputPath: outputPath,
		LineCount:  countLines(outputPath),
		Succeeded:  true,
		Skipped:    true,
	}
}

// stageSummary adapta un StageResult al formato del presenter.
func stageSummary(r domain.StageResult) ui.StageSummary {
	status := ui.StatusSuccess
	switch {
	case r.DryRun:
		status = ui.StatusDryRun
	case r.Skipped:
		status = ui.StatusSkipped
	case !r.Succeeded:
		status = ui.StatusError
	}

	metrics := make([]ui.MetricLine, len(r.Metrics))
	for i, m := range r.Metrics {
		metrics[i] = ui.MetricLine{Label: m.Label, Value: m.Value}
	}

	return ui.StageSummary{
		Name:       r.Stage.String(),
		Status:     status,
		Duration:   r.Duration,
		OutputPath: r.OutputPath,
		Metrics:    metrics,
		Sample:     r.Sample,
	}
}
