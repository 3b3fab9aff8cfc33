// internal/core/domain/report.go
package domain

import "time"

// DomainReport agrupa los resultados de la cadena para un objetivo.
type DomainReport struct {
	RunID      string
	Target     Target
	OutputDir  string
	Proxy      string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Stages     []StageResult

	// Aborted indica que la política de fallos detuvo la cadena
	Aborted bool

	// Interrupted indica que el operador interrumpió entre etapas
	Interrupted bool
}

// Stage retorna el resultado de una etapa, si se ejecutó.
func (r DomainReport) Stage(name StageName) (StageResult, bool) {
	for _, st := range r.Stages {
		if st.Stage == name {
			return st, true
		}
	}
	return StageResult{}, false
}

// Failed cuenta las etapas que fallaron.
func (r DomainReport) Failed() int {
	n := 0
	for _, st := range r.Stages {
		if !st.Succeeded {
			n++
		}
	}
	return n
}

// Duration es el tiempo total de la cadena.
func (r DomainReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// BatchReport agrupa los reportes de todos los objetivos de una corrida.
type BatchReport struct {
	Domains     []DomainReport
	Interrupted bool
}
