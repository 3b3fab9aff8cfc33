// internal/toolcheck/checker.go
package toolcheck

import (
	"context"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/ui"
)

// Checker une el listado del gestor, el reporte de estado, la reconciliación y la remediación.
type Checker struct {
	Manager  string
	Required []string

	runner     ports.CommandRunner
	presenter  ui.Presenter
	remediator *Remediator
	logger     logx.Logger
}

// NewChecker crea un Checker para las herramientas requeridas.
func NewChecker(runner ports.CommandRunner, confirmer ports.Confirmer, presenter ui.Presenter, logger logx.Logger, required []string) *Checker {
	if len(required) == 0 {
		required = domain.RequiredTools
	}
	return &Checker{
		Manager:    DefaultManager,
		Required:   required,
		runner:     runner,
		presenter:  presenter,
		remediator: NewRemediator(runner, confirmer, presenter, logger),
		logger:     logger.With("component", "toolcheck"),
	}
}

// Inspect consulta al gestor, muestra el reporte de estado y retorna el plan.
// Si el gestor no está instalado retorna errors.ErrToolNotFound.
func (c *Checker) Inspect() (domain.Plan, error) {
	statuses, err := Probe(c.runner, c.Manager)
	if err != nil {
		if errors.IsToolNotFound(err) {
			c.presenter.Warning(c.Manager + " is not installed; skipping tool reconciliation")
		} else {
			c.presenter.Warning("could not read the " + c.Manager + " listing; skipping tool reconciliation")
		}
		c.logger.Err(err, "manager", c.Manager)
		return domain.Plan{}, err
	}

	c.logger.Debug("tool listing parsed", "entries", len(statuses))
	c.presenter.ToolStatus(StatusRows(statuses, c.Required))
	return Reconcile(statuses, c.Required), nil
}

// Check ejecuta Inspect y luego aplica el plan. Un fallo al consultar el
// gestor no es fatal: el llamador sigue sin reconciliar.
func (c *Checker) Check(ctx context.Context, dryRun bool) (domain.Plan, ApplyReport, error) {
	plan, err := c.Inspect()
	if err != nil {
		return plan, ApplyReport{}, nil
	}

	report, err := c.remediator.Apply(ctx, plan, dryRun)
	return plan, report, err
}
