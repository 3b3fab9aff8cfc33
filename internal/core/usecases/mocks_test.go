// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"
	"time"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
)

// mockExporter registra los reportes exportados
type mockExporter struct {
	mu      sync.Mutex
	reports []domain.DomainReport
	err     error
}

func (m *mockExporter) Name() string { return "mock" }

func (m *mockExporter) Export(report domain.DomainReport) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.reports = append(m.reports, report)
	return report.OutputDir + "/summary.json", nil
}

// mockOverviewer registra los dominios para los que se pidió informe
type mockOverviewer struct {
	domains []string
	err     error
	cancel  context.CancelFunc
}

func (m *mockOverviewer) Generate(ctx context.Context, report domain.DomainReport) (string, error) {
	m.domains = append(m.domains, report.Target.Name)
	if m.cancel != nil {
		m.cancel()
	}
	if m.err != nil {
		return "", m.err
	}
	return report.OutputDir + "/ai_overview.json", nil
}

// fixedClock avanza un segundo por llamada
func fixedClock() func() time.Time {
	t := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// cancelAfter ejecuta la etapa envuelta y luego cancela el contexto
type cancelAfter struct {
	ports.Stage
	cancel context.CancelFunc
}

func (c cancelAfter) Run(in ports.StageInput) domain.StageResult {
	res := c.Stage.Run(in)
	c.cancel()
	return res
}
