// internal/core/ports/stage.go
package ports

import "webchain/internal/core/domain"

// StageInput es todo lo que una etapa necesita para una corrida.
type StageInput struct {
	Target domain.Target

	// InputPath es el artefacto de la etapa anterior (vacío para subfinder)
	InputPath string

	// OutputPath es el artefacto que esta etapa debe producir
	OutputPath string

	// Proxy es "host:port"; solo lo usan las etapas HTTP
	Proxy string

	DryRun bool
}

// Stage es una de las cinco funciones de la cadena.
type Stage interface {
	// Name retorna la etapa que implementa
	Name() domain.StageName

	// Run construye el comando, lo ejecuta y resume el artefacto
	Run(in StageInput) domain.StageResult
}
