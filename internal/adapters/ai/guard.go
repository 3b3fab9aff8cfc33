// internal/adapters/ai/guard.go
package ai

import (
	"context"

	"webchain/internal/core/ports"
	"webchain/internal/platform/errors"
	"webchain/internal/platform/logx"
	"webchain/internal/platform/resilience"
)

// GuardedSummarizer evita seguir llamando a la IA cuando falla en varios
// dominios seguidos. Un 401/403 abre el circuito de inmediato.
type GuardedSummarizer struct {
	next    ports.Summarizer
	breaker *resilience.CircuitBreaker
	logger  logx.Logger
}

// Guard envuelve next con breaker.
func Guard(next ports.Summarizer, breaker *resilience.CircuitBreaker, logger logx.Logger) *GuardedSummarizer {
	return &GuardedSummarizer{
		next:    next,
		breaker: breaker,
		logger:  logger.With("component", "ai_guard"),
	}
}

// Summarize implementa ports.Summarizer.
func (g *GuardedSummarizer) Summarize(ctx context.Context, urls []string) (string, error) {
	if !g.breaker.Allow() {
		return "", errors.Wrap(errors.ErrServiceUnavailable, "AI overview disabled after repeated failures")
	}

	text, err := g.next.Summarize(ctx, urls)
	switch {
	case err == nil:
		g.breaker.RecordSuccess()
	case errors.Is(err, errors.ErrUnauthorized):
		g.breaker.Trip()
		g.logger.Warn("api key rejected, disabling AI overview")
	case errors.Is(err, errors.ErrNoURLs), errors.IsInterrupted(err), ctx.Err() != nil:
		// no dicen nada sobre la salud del servicio
	default:
		g.breaker.RecordFailure()
		g.logger.Debug("summarizer failure recorded", "state", g.breaker.State().String())
	}
	return text, err
}
