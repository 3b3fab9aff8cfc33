// internal/core/ports/exporter.go
package ports

import "webchain/internal/core/domain"

// Exporter es el port para persistir el resumen de una corrida por dominio.
type Exporter interface {
	// Name retorna el nombre del exporter (ej: "json")
	Name() string

	// Export escribe el reporte y retorna la ruta del archivo generado
	Export(report domain.DomainReport) (string, error)
}
