// internal/toolcheck/remediator.go
package toolcheck

import (
	"context"
	"fmt"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/ui"
)

// ConfirmPrompt se pregunta una sola vez antes de cualquier comando de remediación.
const ConfirmPrompt = "Do you want to automatically install/update these tools? [y/N]: "

// ApplyReport resume lo que hizo Apply.
type ApplyReport struct {
	Succeeded []domain.Action
	Failed    []domain.Action

	// Declined es true si el operador no confirmó
	Declined bool

	// Simulated es true si los comandos solo se anunciaron (dry-run)
	Simulated bool
}

// Remediator ejecuta los comandos de instalación y actualización de un plan.
type Remediator struct {
	runner    ports.CommandRunner
	confirmer ports.Confirmer
	presenter ui.Presenter
	logger    logx.Logger
}

// NewRemediator crea un Remediator.
func NewRemediator(runner ports.CommandRunner, confirmer ports.Confirmer, presenter ui.Presenter, logger logx.Logger) *Remediator {
	return &Remediator{
		runner:    runner,
		confirmer: confirmer,
		presenter: presenter,
		logger:    logger.With("component", "remediator"),
	}
}

// Apply muestra el plan y, tras la confirmación, lo ejecuta. En dry-run
// nunca se consulta al confirmer. Una interrupción durante la pregunta o
// entre comandos retorna errors.ErrInterrupted.
func (r *Remediator) Apply(ctx context.Context, plan domain.Plan, dryRun bool) (ApplyReport, error) {
	var report ApplyReport

	for _, tool := range plan.Missing {
		r.presenter.Warning(fmt.Sprintf("%s is required but was not listed by pdtm", tool))
	}

	if plan.Empty() {
		r.presenter.Success("All required tools are installed and up-to-date.")
		return report, nil
	}

	items := make([]string, len(plan.Actions))
	for i, a := range plan.Actions {
		items[i] = a.String()
	}
	r.presenter.Queue(items)

	if dryRun {
		report.Simulated = true
		for _, a := range plan.Actions {
			r.runner.Run(CommandFor(a), true)
		}
		return report, nil
	}

	ok, err := r.confirmer.Confirm(ctx, ConfirmPrompt)
	if err != nil {
		return report, errors.Wrap(err, "confirm remediation")
	}
	if !ok {
		report.Declined = true
		r.presenter.Info("Skipping automatic installation/update.")
		return report, nil
	}

	for _, a := range plan.Actions {
		if ctx.Err() != nil {
			return report, errors.Wrap(errors.ErrInterrupted, "remediation")
		}

		res := r.runner.Run(CommandFor(a), false)
		if !res.Succeeded {
			report.Failed = append(report.Failed, a)
			r.logger.Warn("remediation failed", "tool", a.Tool, "kind", a.Kind.String(), "exit_code", res.ExitCode)
			r.presenter.Error(fmt.Sprintf("Could not %s %s", a.Kind, a.Tool))
			continue
		}
		report.Succeeded = append(report.Succeeded, a)
		r.presenter.Success(fmt.Sprintf("%s: %s done", a.Tool, a.Kind))
	}
	return report, nil
}
