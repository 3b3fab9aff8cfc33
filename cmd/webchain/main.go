// cmd/webchain/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"webchain/internal/adapters/ai"
	"webchain/internal/adapters/output"
	"webchain/internal/core/ports"
	"webchain/internal/core/usecases"
	"webchain/internal/platform/config"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/resilience"
	"webchain/internal/platform/ui"
	"webchain/internal/runner"
	"webchain/internal/stages"
	"webchain/internal/toolcheck"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Config: defaults -> settings -> env -> flags
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: webchain -h for help")
		return exitError
	}
	if cfg.ShowHelp {
		config.PrintHelp(os.Stdout)
		return exitOK
	}
	if cfg.PrintVersion {
		config.PrintVersion(os.Stdout, version, commit, date)
		return exitOK
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: webchain -d <domain> | -i <file>")
		return exitError
	}

	if cfg.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		ui.DisableStyling()
	}

	// 2. Logger: diagnósticos en stderr, la consola queda para el presenter
	level := logx.LevelFromEnv(logx.LevelWarn)
	if cfg.Verbose {
		level = logx.LevelDebug
	}
	logger := logx.NewWithWriter(os.Stderr, level)
	logger.Debug("webchain starting", "version", version, "config", cfg.String())

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	presenter := ui.NewPTermPresenter()
	defer presenter.Close()

	// 4. Objetivos
	targets, rejected, err := cfg.Targets()
	if err != nil {
		presenter.Error(err.Error())
		return exitError
	}
	for _, r := range rejected {
		where := ""
		if r.Line > 0 {
			where = fmt.Sprintf(" (line %d)", r.Line)
		}
		presenter.Warning(fmt.Sprintf("skipping %q%s: %v", r.Input, where, r.Err))
	}
	if len(targets) == 0 {
		presenter.Error("no valid targets to process")
		return exitError
	}

	presenter.Start(ui.RunInfo{
		Version:    version,
		Targets:    len(targets),
		OutputDir:  cfg.OutputDir,
		Proxy:      cfg.Proxy,
		DryRun:     cfg.DryRun,
		Resume:     cfg.Settings.Policy.Resume,
		AIOverview: cfg.AIOverview,
	})

	cmdRunner := runner.New(logger, presenter)
	prompter := ui.NewLinePrompter(os.Stdin, os.Stdout)

	// 5. Inventario de herramientas (antes de cualquier etapa)
	if !cfg.SkipToolCheck {
		checker := toolcheck.NewChecker(cmdRunner, prompter, presenter, logger, cfg.Settings.Tools.Required)
		checker.Manager = cfg.Settings.Tools.Manager
		if _, _, err := checker.Check(ctx, cfg.DryRun); err != nil {
			if errors.IsInterrupted(err) {
				return interrupted(presenter)
			}
			logger.Err(err, "phase", "toolcheck")
			presenter.Warning("tool remediation did not complete: " + err.Error())
		}
	}

	// 6. Informe de IA (opcional, nunca en dry-run)
	var overviewer ports.Overviewer
	if cfg.AIOverview && !cfg.DryRun {
		ov, err := buildOverviewer(ctx, cfg, prompter, presenter, logger)
		if errors.IsInterrupted(err) {
			return interrupted(presenter)
		}
		if err != nil {
			logger.Err(err, "phase", "ai-setup")
			presenter.Warning("AI overview disabled: " + err.Error())
		}
		overviewer = ov
	}

	// 7. Cadena por dominio, secuencial
	orch := usecases.NewPipelineOrchestrator(usecases.PipelineOrchestratorOptions{
		Stages:    stages.All(cmdRunner, cfg.Settings.Stages, logger),
		OutputDir: cfg.OutputDir,
		Proxy:     cfg.Proxy,
		DryRun:    cfg.DryRun,
		Resume:    cfg.Settings.Policy.Resume,
		Failure:   cfg.Settings.Policy.Failure,
		Logger:    logger,
		Presenter: presenter,
	})

	batchRunner := usecases.NewBatchRunner(usecases.BatchRunnerOptions{
		Orchestrator: orch,
		Exporter:     output.NewJSONExporter(),
		Overviewer:   overviewer,
		DryRun:       cfg.DryRun,
		Logger:       logger,
		Presenter:    presenter,
	})

	start := time.Now()
	batch, runErr := batchRunner.Run(ctx, targets)
	logger.Debug("batch finished", "elapsed_ms", time.Since(start).Milliseconds(), "domains", len(batch.Domains))

	if len(targets) > 1 {
		if err := output.WriteTable(os.Stdout, batch); err != nil {
			logger.Err(err, "phase", "table")
		}
	}
	presenter.Finish(usecases.Stats(batch))

	switch {
	case errors.IsInterrupted(runErr):
		return interrupted(presenter)
	case runErr != nil:
		logger.Err(runErr, "phase", "run")
		return exitError
	}
	return exitOK
}

// buildOverviewer resuelve la API key (entorno o ~/.recon_config.json) y
// arma el cliente de Gemini. Sin key retorna nil sin error.
func buildOverviewer(ctx context.Context, cfg config.Config, asker config.Asker, presenter ui.Presenter, logger logx.Logger) (ports.Overviewer, error) {
	key := cfg.Settings.AI.APIKey
	if key == "" {
		k, err := config.EnsureAPIKey(ctx, config.UserConfigPath(), asker, presenter)
		if err != nil {
			return nil, err
		}
		key = k
	}
	if key == "" {
		return nil, nil
	}

	client, err := ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:     key,
		Model:      cfg.Settings.AI.Model,
		Endpoint:   cfg.Settings.AI.Endpoint,
		Timeout:    cfg.Settings.AI.Timeout(),
		MaxRetries: cfg.Settings.AI.Retries,
		RateLimit:  cfg.Settings.AI.RateLimit,
	}, logger)
	if err != nil {
		return nil, err
	}
	// tres dominios seguidos sin respuesta desactivan la IA para el resto del lote
	guarded := ai.Guard(client, resilience.NewCircuitBreaker(3, 0), logger)
	return ai.NewOverviewer(guarded, cfg.Settings.AI.MaxURLs, logger), nil
}

func interrupted(presenter ui.Presenter) int {
	presenter.Warning("Interrupted by user. Exiting.")
	return exitInterrupted
}

// rootContextWithSignals creates a root context cancelled by SIGINT/SIGTERM.
// The running tool is never killed by it: stages observe it at their boundaries.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}
	return base, cleanup
}

// asegura en compilación que los adaptadores cumplen los puertos
var (
	_ ports.Exporter      = (*output.JSONExporter)(nil)
	_ ports.Overviewer    = (*ai.Overviewer)(nil)
	_ ports.Summarizer    = (*ai.GeminiClient)(nil)
	_ ports.Summarizer    = (*ai.GuardedSummarizer)(nil)
	_ ports.Confirmer     = (*ui.LinePrompter)(nil)
	_ ports.CommandRunner = (*runner.Runner)(nil)
	_ ports.Stage         = (*stages.Stage)(nil)
)
