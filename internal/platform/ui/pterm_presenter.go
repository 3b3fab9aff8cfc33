// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar headers, secciones y prefijos en la terminal.
// Todo se escribe en un io.Writer inyectable.
type PTermPresenter struct {
	mu  sync.Mutex
	out io.Writer

	startTime time.Time
	info      RunInfo
}

// NewPTermPresenter crea un presenter que escribe en stdout
func NewPTermPresenter() *PTermPresenter {
	return NewPTermPresenterWithWriter(os.Stdout)
}

// NewPTermPresenterWithWriter crea un presenter que escribe en w
func NewPTermPresenterWithWriter(w io.Writer) *PTermPresenter {
	return &PTermPresenter{out: w}
}

// DisableStyling desactiva colores y estilos de pterm para toda la salida.
// Se usa con --no-color o cuando stdout no es una terminal.
func DisableStyling() {
	pterm.DisableStyling()
}

func (p *PTermPresenter) println(a ...any) {
	pterm.Fprintln(p.out, a...)
}

// Start inicia la presentación mostrando el header de la corrida
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.startTime = time.Now()

	p.println(StylePrimary.Sprint(BannerCompact))

	panel := pterm.DefaultBox.
		WithTitle("Run Configuration").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan))

	content := fmt.Sprintf("%s Targets: %d\n", IconTarget, info.Targets)
	content += fmt.Sprintf("%s Output: %s\n", IconOutput, info.OutputDir)
	content += fmt.Sprintf("%s Proxy: %s\n", IconProxy, valueOr(info.Proxy, "none"))
	content += fmt.Sprintf("   Dry-run: %s\n", boolToString(info.DryRun))
	content += fmt.Sprintf("   Resume: %s\n", boolToString(info.Resume))
	content += fmt.Sprintf("   AI overview: %s", boolToString(info.AIOverview))
	if info.Version != "" {
		content += fmt.Sprintf("\n   Version: %s", info.Version)
	}

	p.println(panel.Sprint(content))
	p.println()
}

// StartDomain muestra el header de un objetivo
func (p *PTermPresenter) StartDomain(name string, index, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.LightBlue(SeparatorHeavy))
	title := fmt.Sprintf("%s %s", IconTarget, name)
	if total > 1 {
		title = fmt.Sprintf("%s [%d/%d] %s", IconTarget, index, total, name)
	}
	p.println(pterm.DefaultSection.Sprint(title))
}

// StartStage muestra el título de una etapa
func (p *PTermPresenter) StartStage(stage StageInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	title := fmt.Sprintf("%s Stage %d/%d: %s",
		IconStage,
		stage.Number,
		stage.TotalStages,
		pterm.Cyan(stage.Name),
	)
	p.println(pterm.DefaultSection.WithLevel(2).Sprint(title))
}

// Command muestra la línea de comando. En dry-run usa el prefijo [DRY-RUN].
func (p *PTermPresenter) Command(cmdline string, dryRun bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if dryRun {
		p.println(StyleMuted.Sprint("[DRY-RUN] Would execute: " + cmdline))
		return
	}
	p.println(StyleSecondary.Sprint("Executing: ") + cmdline)
}

// CommandFailed reporta una herramienta fallida con un extracto de stderr
func (p *PTermPresenter) CommandFailed(tool string, exitCode int, stderr string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	msg := fmt.Sprintf("%s failed (exit code %d)", tool, exitCode)
	if exitCode < 0 {
		msg = fmt.Sprintf("%s could not be started", tool)
	}
	p.println(pterm.Error.Sprint(msg))

	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return
	}
	for _, line := range strings.Split(stderr, "\n") {
		p.println(StyleMuted.Sprint("    " + line))
	}
}

// FinishStage muestra métricas, muestra de líneas y estado de la etapa
func (p *PTermPresenter) FinishStage(summary StageSummary) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := fmt.Sprintf("  %s %s", summary.Status.Symbol(), summary.Name)
	switch summary.Status {
	case StatusDryRun:
		line += " (simulated)"
	case StatusSkipped:
		line += " (skipped, output already present)"
	default:
		if summary.Duration > 0 {
			line += fmt.Sprintf(" (%s)", formatDuration(summary.Duration))
		}
	}
	p.println(summary.Status.Style().Sprint(line))

	for _, m := range summary.Metrics {
		p.println(fmt.Sprintf("    %s: %s", m.Label, pterm.Cyan(fmt.Sprintf("%d", m.Value))))
	}

	if len(summary.Sample) > 0 {
		p.println(StyleSecondary.Sprint(fmt.Sprintf("    Sample (%d):", len(summary.Sample))))
		for _, s := range summary.Sample {
			p.println(StyleMuted.Sprint("      " + s))
		}
	}

	if summary.OutputPath != "" && summary.Status != StatusDryRun {
		p.println(StyleSecondary.Sprint(fmt.Sprintf("    %s %s", IconOutput, summary.OutputPath)))
	}
	p.println()
}

// ToolStatus muestra una línea por herramienta requerida
func (p *PTermPresenter) ToolStatus(rows []ToolRow) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.DefaultSection.WithLevel(2).Sprint(IconTools + " Tool status"))
	for _, row := range rows {
		line := fmt.Sprintf("  %-10s %-12s %s", row.Name, toolTag(row.Status), row.Detail)
		p.println(row.Status.Style().Sprint(strings.TrimRight(line, " ")))
	}
	p.println()
}

// toolTag traduce el estado al tag del reporte de herramientas
func toolTag(s Status) string {
	switch s {
	case StatusSuccess:
		return "[OK]"
	case StatusWarning:
		return "[OUTDATED]"
	case StatusError:
		return "[MISSING]"
	default:
		return "[SKIP]"
	}
}

// Queue muestra la cola de remediación
func (p *PTermPresenter) Queue(items []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Info.Sprint("The following actions are pending:"))
	for _, item := range items {
		p.println("  - " + item)
	}
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Info.Sprint(msg))
}

// Success muestra un mensaje de éxito
func (p *PTermPresenter) Success(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Success.Sprint(msg))
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Warning.Sprint(msg))
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.Error.Sprint(msg))
}

// Finish finaliza la presentación con estadísticas finales
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.println(pterm.LightBlue(SeparatorHeavy))

	title := "Recon Completed"
	boxStyle := pterm.NewStyle(pterm.FgGreen)
	if stats.Interrupted {
		title = "Recon Interrupted"
		boxStyle = pterm.NewStyle(pterm.FgYellow)
	}

	panel := pterm.DefaultBox.
		WithTitle(title).
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(boxStyle)

	content := fmt.Sprintf("%s Total Duration: %s\n", IconTime, formatDuration(stats.TotalDuration))
	content += fmt.Sprintf("%s Domains: %d\n", IconTarget, stats.Domains)
	content += fmt.Sprintf("   Stages OK: %d", stats.StagesOK)
	if stats.StagesSkipped > 0 {
		content += fmt.Sprintf("\n   Stages Skipped: %d", stats.StagesSkipped)
	}
	if stats.StagesFailed > 0 {
		content += fmt.Sprintf("\n   Stages Failed: %s", StyleError.Sprint(fmt.Sprintf("%d", stats.StagesFailed)))
	}

	p.println(panel.Sprint(content))
	p.println()
}

// Close no retiene recursos; existe para cumplir la interfaz
func (p *PTermPresenter) Close() error {
	return nil
}
