// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// Presenter define la interfaz para presentar al operador el progreso de la
// cadena de reconocimiento. El logger lleva diagnósticos; el presenter lleva
// todo lo que el operador debe leer.
type Presenter interface {
	// Start muestra el header con la configuración de la corrida
	Start(info RunInfo)

	// StartDomain notifica el inicio de la cadena para un objetivo
	StartDomain(name string, index, total int)

	// StartStage notifica el inicio de una etapa
	StartStage(stage StageInfo)

	// Command muestra la línea de comando que se ejecuta (o se simularía)
	Command(cmdline string, dryRun bool)

	// CommandFailed reporta una herramienta que terminó con error
	CommandFailed(tool string, exitCode int, stderr string)

	// FinishStage muestra el resumen de una etapa
	FinishStage(summary StageSummary)

	// ToolStatus muestra el estado de las herramientas requeridas
	ToolStatus(rows []ToolRow)

	// Queue muestra las acciones de remediación pendientes
	Queue(items []string)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Success muestra un mensaje de éxito
	Success(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con estadísticas finales
	Finish(stats RunStats)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene información inicial de la corrida
type RunInfo struct {
	Version    string
	Targets    int
	OutputDir  string
	Proxy      string
	DryRun     bool
	Resume     bool
	AIOverview bool
}

// StageInfo contiene información de una etapa
type StageInfo struct {
	Number      int
	TotalStages int
	Name        string
	Domain      string
}

// MetricLine es un contador etiquetado ya listo para mostrar
type MetricLine struct {
	Label string
	Value int
}

// StageSummary es el resumen de una etapa terminada
type StageSummary struct {
	Name       string
	Status     Status
	Duration   time.Duration
	OutputPath string
	Metrics    []MetricLine
	Sample     []string
}

// ToolRow es una fila del reporte de herramientas
type ToolRow struct {
	Name   string
	Status Status
	Detail string
}

// RunStats contiene estadísticas finales de la corrida
type RunStats struct {
	TotalDuration time.Duration
	Domains       int
	StagesOK      int
	StagesFailed  int
	StagesSkipped int
	Interrupted   bool
}
