// internal/adapters/ai/gemini.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"webchain/internal/platform/errors"
	"webchain/internal/platform/httpclient"
	"webchain/internal/platform/logx"
)

const (
	// DefaultEndpoint es la API pública de Gemini
	DefaultEndpoint = "https://generativelanguage.googleapis.com"

	// DefaultModel es el modelo usado para el informe
	DefaultModel = "gemini-2.5-flash"

	endpointGenerate = "/v1beta/models/%s:generateContent"
)

// GeminiConfig configura el cliente de Gemini.
type GeminiConfig struct {
	APIKey   string
	Model    string
	Endpoint string

	Timeout    time.Duration
	MaxRetries int

	// RateLimit en peticiones por segundo; 0 sin límite
	RateLimit float64
}

// GeminiClient implementa ports.Summarizer sobre la API REST de Gemini.
type GeminiClient struct {
	apiKey   string
	model    string
	endpoint string
	client   *httpclient.Client
	logger   logx.Logger
}

// NewGeminiClient crea el cliente. Sin API key retorna ErrInvalidInput.
func NewGeminiClient(cfg GeminiConfig, logger logx.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "gemini API key is empty")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	httpConfig := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		httpConfig.Timeout = cfg.Timeout
	}
	httpConfig.MaxRetries = cfg.MaxRetries
	httpConfig.RetryBackoff = 2 * time.Second
	httpConfig.RateLimit = cfg.RateLimit

	return &GeminiClient{
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		client:   httpclient.New(httpConfig, logger),
		logger:   logger.With("component", "gemini"),
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

// Summarize implementa ports.Summarizer. Una lista vacía retorna ErrNoURLs
// sin llamar a la API.
func (c *GeminiClient) Summarize(ctx context.Context, urls []string) (string, error) {
	if len(urls) == 0 {
		return "", errors.ErrNoURLs
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(urls)}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode gemini request")
	}

	c.logger.Debug("requesting overview", "model", c.model, "urls", len(urls))

	resp, err := c.client.Request(ctx, "POST", c.buildURL(), body, map[string]string{
		"Content-Type":   "application/json",
		"Accept":         "application/json",
		"x-goog-api-key": c.apiKey,
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrServiceUnavailable, err.Error())
	}

	if err := httpclient.CheckStatus(resp); err != nil {
		resp.Body.Close()
		return "", errors.Wrap(err, "gemini request failed")
	}

	raw, err := httpclient.ReadBody(resp)
	if err != nil {
		return "", err
	}

	return parseResponse(raw)
}

// parseResponse concatena las partes de texto del primer candidato.
func parseResponse(raw []byte) (string, error) {
	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrapf(errors.ErrInvalidResponse, "decode: %v", err)
	}

	if len(out.Candidates) == 0 {
		if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
			return "", errors.Wrapf(errors.ErrInvalidResponse, "prompt blocked: %s", out.PromptFeedback.BlockReason)
		}
		return "", errors.Wrap(errors.ErrInvalidResponse, "no candidates returned")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", errors.Wrap(errors.ErrInvalidResponse, "empty response text")
	}
	return sb.String(), nil
}

func (c *GeminiClient) buildURL() string {
	return c.endpoint + fmt.Sprintf(endpointGenerate, url.PathEscape(c.model))
}
