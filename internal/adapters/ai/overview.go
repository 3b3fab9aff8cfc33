// internal/adapters/ai/overview.go
package ai

import (
	"context"
	"os"
	"path/filepath"

	"webchain/internal/core/domain"
	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/urlfilter"
	"webchain/internal/stages"
)

// OverviewFile es el nombre del informe de IA por dominio.
const OverviewFile = "ai_overview.json"

// Overviewer implementa ports.Overviewer: lee las URLs de katana, las envía
// al Summarizer y escribe la respuesta tal cual.
type Overviewer struct {
	summarizer ports.Summarizer
	maxURLs    int
	logger     logx.Logger
}

// NewOverviewer crea el overviewer. maxURLs <= 0 envía todas las URLs.
func NewOverviewer(summarizer ports.Summarizer, maxURLs int, logger logx.Logger) *Overviewer {
	return &Overviewer{
		summarizer: summarizer,
		maxURLs:    maxURLs,
		logger:     logger.With("component", "overviewer"),
	}
}

// Generate implementa ports.Overviewer.
func (o *Overviewer) Generate(ctx context.Context, report domain.DomainReport) (string, error) {
	input := filepath.Join(report.OutputDir, domain.StageKatana.OutputFile())

	urls, err := o.readURLs(input)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", input)
	}
	if len(urls) == 0 {
		// sin llamar al colaborador
		return "", errors.Wrapf(errors.ErrNoURLs, "%s", input)
	}

	text, err := o.summarizer.Summarize(ctx, urls)
	if err != nil {
		return "", err
	}

	path := filepath.Join(report.OutputDir, OverviewFile)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write overview")
	}

	o.logger.Debug("overview written", "domain", report.Target.Name, "urls", len(urls), "path", path)
	return path, nil
}

// readURLs lee las URLs no vacías. Si superan maxURLs se colapsan las
// duplicadas estructurales y se envían las de mayor prioridad.
func (o *Overviewer) readURLs(path string) ([]string, error) {
	var urls []string
	if _, _, err := stages.ScanFile(path, 0, func(line string) {
		urls = append(urls, line)
	}); err != nil {
		return nil, err
	}

	res := urlfilter.Select(urls, o.maxURLs, urlfilter.DefaultScoreWeights())
	if res.Collapsed > 0 || res.Dropped > 0 {
		o.logger.Warn("url list reduced",
			"total", res.Input,
			"collapsed", res.Collapsed,
			"dropped", res.Dropped,
			"sent", len(res.URLs),
		)
	}
	return res.URLs, nil
}
