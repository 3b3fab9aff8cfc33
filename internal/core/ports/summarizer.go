// internal/core/ports/summarizer.go
package ports

import (
	"context"

	"webchain/internal/core/domain"
)

// Summarizer es el colaborador de IA que prioriza URLs descubiertas.
// El texto retornado se persiste tal cual.
type Summarizer interface {
	Summarize(ctx context.Context, urls []string) (string, error)
}

// Overviewer genera el informe de IA de un dominio a partir de sus artefactos.
type Overviewer interface {
	// Generate escribe el informe y retorna su ruta
	Generate(ctx context.Context, report domain.DomainReport) (string, error)
}
