// internal/core/domain/stage.go
package domain

import "time"

// StageName identifica una etapa de la cadena.
type StageName string

const (
	StageSubfinder StageName = "subfinder"
	StageDnsx      StageName = "dnsx"
	StageNaabu     StageName = "naabu"
	StageHttpx     StageName = "httpx"
	StageKatana    StageName = "katana"
)

// StageOrder es el orden fijo de ejecución.
var StageOrder = []StageName{StageSubfinder, StageDnsx, StageNaabu, StageHttpx, StageKatana}

func (s StageName) String() string {
	return string(s)
}

// OutputFile es el nombre del artefacto de la etapa dentro del directorio del dominio.
func (s StageName) OutputFile() string {
	return string(s) + ".txt"
}

// IsValid verifica si la etapa pertenece a la cadena.
func (s StageName) IsValid() bool {
	for _, st := range StageOrder {
		if st == s {
			return true
		}
	}
	return false
}

// Metric es un contador etiquetado ("Alive hosts", 12).
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// StageResult resume la ejecución de una etapa. Es efímero.
type StageResult struct {
	Stage      StageName
	Tool       string
	OutputPath string
	LineCount  int
	Sample     []string
	Metrics    []Metric
	Succeeded  bool
	Skipped    bool
	DryRun     bool
	Duration   time.Duration
	Err        error
}

// Status retorna una etiqueta corta para reportes.
func (r StageResult) Status() string {
	switch {
	case r.DryRun:
		return "dry-run"
	case r.Skipped:
		return "skipped"
	case r.Succeeded:
		return "ok"
	default:
		return "failed"
	}
}

// CommandResult es el resultado de invocar una herramienta externa.
// Un fallo de la herramienta es un valor, nunca un panic.
type CommandResult struct {
	Argv      []string
	Stdout    string
	Stderr    string
	Succeeded bool
	DryRun    bool
	ExitCode  int
	Err       error
	Duration  time.Duration
}
