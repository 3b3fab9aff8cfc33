// internal/stages/settings.go
package stages

import "webchain/internal/core/domain"

// Settings agrupa los parámetros de las cinco etapas.
type Settings struct {
	// Binaries asocia cada etapa con su ejecutable
	Binaries map[domain.StageName]string `yaml:"binaries"`

	// Resolver es el servidor DNS que recibe dnsx
	Resolver string `yaml:"resolver"`

	// NaabuPorts se pasa como -p si no está vacío (ej: "80,443")
	NaabuPorts string `yaml:"naabu_ports"`

	// SampleSize es cuántas líneas muestra cada etapa
	SampleSize int `yaml:"sample_size"`

	// KatanaSampleSize reemplaza a SampleSize para katana
	KatanaSampleSize int `yaml:"katana_sample_size"`
}

// DefaultSettings retorna la configuración por defecto de las etapas.
func DefaultSettings() Settings {
	return Settings{
		Binaries: map[domain.StageName]string{
			domain.StageSubfinder: "subfinder",
			domain.StageDnsx:      "dnsx",
			domain.StageNaabu:     "naabu",
			domain.StageHttpx:     "httpx",
			domain.StageKatana:    "katana",
		},
		Resolver:         "8.8.8.8",
		SampleSize:       10,
		KatanaSampleSize: 15,
	}
}

// Binary retorna el ejecutable de stage; por defecto, el nombre de la etapa.
func (s Settings) Binary(stage domain.StageName) string {
	if b := s.Binaries[stage]; b != "" {
		return b
	}
	return string(stage)
}

// Sample retorna el tamaño de muestra de stage.
func (s Settings) Sample(stage domain.StageName) int {
	if stage == domain.StageKatana && s.KatanaSampleSize > 0 {
		return s.KatanaSampleSize
	}
	if s.SampleSize > 0 {
		return s.SampleSize
	}
	return 10
}
