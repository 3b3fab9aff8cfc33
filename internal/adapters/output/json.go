// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
)

// SummaryFile es el nombre del resumen por dominio.
const SummaryFile = "summary.json"

// Summary es el documento que se escribe en <out>/<dominio>/summary.json.
type Summary struct {
	Target      string         `json:"target"`
	Apex        string         `json:"apex"`
	RunID       string         `json:"run_id"`
	StartedAt   time.Time      `json:"started_at"`
	FinishedAt  time.Time      `json:"finished_at"`
	Duration    string         `json:"duration"`
	Proxy       string         `json:"proxy,omitempty"`
	Aborted     bool           `json:"aborted,omitempty"`
	Interrupted bool           `json:"interrupted,omitempty"`
	Stages      []StageSummary `json:"stages"`
}

// StageSummary resume una etapa dentro del summary.json.
type StageSummary struct {
	Stage      string          `json:"stage"`
	Status     string          `json:"status"`
	Output     string          `json:"output"`
	Count      int             `json:"count"`
	Metrics    []domain.Metric `json:"metrics,omitempty"`
	DurationMs int64           `json:"duration_ms"`
	Error      string          `json:"error,omitempty"`
}

// BuildSummary construye el resumen desde un DomainReport.
// Las rutas de salida quedan relativas al directorio del dominio.
func BuildSummary(report domain.DomainReport) Summary {
	s := Summary{
		Target:      report.Target.Name,
		Apex:        report.Target.Apex,
		RunID:       report.RunID,
		StartedAt:   report.StartedAt.UTC(),
		FinishedAt:  report.FinishedAt.UTC(),
		Duration:    report.Duration().Round(time.Millisecond).String(),
		Proxy:       report.Proxy,
		Aborted:     report.Aborted,
		Interrupted: report.Interrupted,
		Stages:      make([]StageSummary, 0, len(report.Stages)),
	}

	for _, st := range report.Stages {
		entry := StageSummary{
			Stage:      st.Stage.String(),
			Status:     st.Status(),
			Output:     filepath.Base(st.OutputPath),
			Count:      st.LineCount,
			Metrics:    st.Metrics,
			DurationMs: st.Duration.Milliseconds(),
		}
		if st.Err != nil {
			entry.Error = st.Err.Error()
		}
		s.Stages = append(s.Stages, entry)
	}
	return s
}

// JSONExporter escribe summary.json en el directorio del dominio.
type JSONExporter struct{}

// NewJSONExporter crea el exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Name implementa ports.Exporter.
func (e *JSONExporter) Name() string {
	return "json"
}

// Export implementa ports.Exporter. Retorna la ruta escrita.
func (e *JSONExporter) Export(report domain.DomainReport) (string, error) {
	if report.OutputDir == "" {
		return "", errors.Wrap(errors.ErrInvalidInput, "report without output directory")
	}
	if err := os.MkdirAll(report.OutputDir, 0o755); err != nil {
		return "", errors.Wrapf(errors.ErrOutputDir, "create %s: %v", report.OutputDir, err)
	}

	path := filepath.Join(report.OutputDir, SummaryFile)
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to create summary file")
	}
	defer f.Close()

	// Codificar JSON con indentación
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildSummary(report)); err != nil {
		return "", errors.Wrap(err, "failed to encode summary")
	}

	return path, nil
}
