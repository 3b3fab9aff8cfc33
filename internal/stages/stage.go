// internal/stages/stage.go

// Package stages implementa los cinco eslabones de la cadena de reconocimiento.
// Cada etapa arma el comando de su herramienta, lo ejecuta con el runner y
// resume el artefacto contando y muestreando sus líneas.
package stages

import (
	"strings"
	"time"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
)

// collector observa cada línea del artefacto y convierte los totales en métricas.
type collector interface {
	observe(line string)
	metrics(count int) []domain.Metric
}

type definition struct {
	name      domain.StageName
	usesProxy bool
	args      func(s Settings, in ports.StageInput) []string
	collector func() collector
}

// Stage implementa ports.Stage para una definición.
type Stage struct {
	def      definition
	runner   ports.CommandRunner
	settings Settings
	logger   logx.Logger
}

// New retorna la etapa de nombre name.
func New(name domain.StageName, runner ports.CommandRunner, settings Settings, logger logx.Logger) (*Stage, error) {
	def, ok := definitions[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown stage %q", name)
	}
	return &Stage{
		def:      def,
		runner:   runner,
		settings: settings,
		logger:   logger.With("stage", string(name)),
	}, nil
}

// All retorna las cinco etapas en el orden de la cadena.
func All(runner ports.CommandRunner, settings Settings, logger logx.Logger) []ports.Stage {
	out := make([]ports.Stage, 0, len(domain.StageOrder))
	for _, name := range domain.StageOrder {
		st, _ := New(name, runner, settings, logger)
		out = append(out, st)
	}
	return out
}

// Name implementa ports.Stage.
func (s *Stage) Name() domain.StageName {
	return s.def.name
}

// Command retorna el argv que la etapa ejecutaría para in.
func (s *Stage) Command(in ports.StageInput) []string {
	argv := append([]string{s.settings.Binary(s.def.name)}, s.def.args(s.settings, in)...)
	if s.def.usesProxy && in.Proxy != "" {
		argv = append(argv, "-proxy", ProxyURL(in.Proxy))
	}
	return argv
}

// Run implementa ports.Stage.
func (s *Stage) Run(in ports.StageInput) domain.StageResult {
	argv := s.Command(in)
	result := domain.StageResult{
		Stage:      s.def.name,
		Tool:       argv[0],
		OutputPath: in.OutputPath,
		DryRun:     in.DryRun,
	}

	start := time.Now()
	res := s.runner.Run(argv, in.DryRun)
	result.Duration = time.Since(start)
	result.Succeeded = res.Succeeded
	result.Err = res.Err

	if in.DryRun {
		return result
	}

	// la raíz siempre alimenta a dnsx aunque subfinder falle
	rootAdded := false
	if s.def.name == domain.StageSubfinder {
		added, err := ensureRoot(in.OutputPath, in.Target.Name)
		if err != nil {
			s.logger.Warn("could not append root domain", "path", in.OutputPath, "error", err.Error())
		}
		rootAdded = added
	}

	s.summarize(&result, res.Stdout, in.Target.Name, rootAdded)
	s.logger.Debug("stage finished",
		"succeeded", result.Succeeded,
		"lines", result.LineCount,
		"duration", result.Duration.String(),
	)
	return result
}

// summarize cuenta y muestrea stdout, o el archivo de salida si stdout está vacío.
func (s *Stage) summarize(result *domain.StageResult, stdout, root string, rootAdded bool) {
	size := s.settings.Sample(s.def.name)
	col := s.def.collector()

	var (
		count  int
		sample []string
		err    error
	)
	if strings.TrimSpace(stdout) != "" && !rootAdded {
		count, sample, err = ScanLines(strings.NewReader(stdout), size, col.observe)
	} else {
		// el archivo ya incluye la raíz añadida
		count, sample, err = ScanFile(result.OutputPath, size, col.observe)
	}
	if err != nil {
		s.logger.Warn("could not read stage output", "path", result.OutputPath, "error", err.Error())
	}

	// la raíz añadida queda al final del archivo, fuera de la muestra si hay muchas líneas
	if rootAdded && !containsFold(sample, root) {
		sample = append(sample, root)
	}

	result.LineCount = count
	result.Sample = sample
	result.Metrics = col.metrics(count)
}

func containsFold(lines []string, want string) bool {
	for _, l := range lines {
		if strings.EqualFold(l, want) {
			return true
		}
	}
	return false
}

// ensureRoot agrega root a la salida de subfinder si todavía no está.
func ensureRoot(path, root string) (bool, error) {
	if path == "" || root == "" {
		return false, nil
	}
	found, err := containsLine(path, root)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}
	if err := appendLine(path, root); err != nil {
		return false, err
	}
	return true, nil
}

// ProxyURL convierte "host:port" en la URL de proxy que esperan las herramientas HTTP.
func ProxyURL(proxy string) string {
	if strings.Contains(proxy, "://") {
		return proxy
	}
	return "http://" + proxy
}
