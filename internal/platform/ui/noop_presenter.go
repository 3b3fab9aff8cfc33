// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para tests o modo headless.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)                                {}
func (n *NoopPresenter) StartDomain(name string, index, total int)         {}
func (n *NoopPresenter) StartStage(stage StageInfo)                        {}
func (n *NoopPresenter) Command(cmdline string, dryRun bool)               {}
func (n *NoopPresenter) CommandFailed(tool string, exitCode int, s string) {}
func (n *NoopPresenter) FinishStage(summary StageSummary)                  {}
func (n *NoopPresenter) ToolStatus(rows []ToolRow)                         {}
func (n *NoopPresenter) Queue(items []string)                              {}
func (n *NoopPresenter) Info(msg string)                                   {}
func (n *NoopPresenter) Success(msg string)                                {}
func (n *NoopPresenter) Warning(msg string)                                {}
func (n *NoopPresenter) Error(msg string)                                  {}
func (n *NoopPresenter) Finish(stats RunStats)                             {}

// Close no hace nada
func (n *NoopPresenter) Close() error {
	return nil
}
