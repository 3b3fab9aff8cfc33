package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"webchain/internal/platform/errors"
	"webchain/internal/testutil"
)

const okResponse = `{"candidates":[{"content":{"parts":[{"text":"{\"summary\":\"ok\"}"}]},"finishReason":"STOP"}]}`

func newTestClient(t *testing.T, endpoint string, retries int) *GeminiClient {
	t.Helper()
	c, err := NewGeminiClient(GeminiConfig{
		APIKey:     "test-key",
		Endpoint:   endpoint,
		Timeout:    5 * time.Second,
		MaxRetries: retries,
	}, testutil.NewTestLogger())
	testutil.AssertNoError(t, err, "client")
	return c
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(GeminiConfig{APIKey: "  "}, testutil.NewTestLogger())
	testutil.AssertTrue(t, errors.IsInvalidInput(err), "empty key rejected")
}

func TestGeminiClient_Summarize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.Method, http.MethodPost, "method")
		testutil.AssertEqual(t, r.URL.Path, "/v1beta/models/gemini-2.5-flash:generateContent", "path")
		testutil.AssertEqual(t, r.Header.Get("x-goog-api-key"), "test-key", "key header")
		testutil.AssertEqual(t, r.URL.RawQuery, "", "key never travels in the query")

		var req generateRequest
		raw, _ := io.ReadAll(r.Body)
		testutil.AssertNoError(t, json.Unmarshal(raw, &req), "request body")
		testutil.AssertLen(t, req.Contents, 1, "one content")
		testutil.AssertContains(t, req.Contents[0].Parts[0].Text, "https://example.com/login", "urls in prompt")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(okResponse))
	}))
	defer server.Close()

	text, err := newTestClient(t, server.URL, 0).Summarize(context.Background(), []string{"https://example.com/login"})

	testutil.AssertNoError(t, err, "summarize")
	testutil.AssertEqual(t, text, `{"summary":"ok"}`, "text returned verbatim")
}

func TestGeminiClient_EmptyURLs(t *testing.T) {
	calls := int32(0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, 0).Summarize(context.Background(), nil)

	testutil.AssertTrue(t, errors.Is(err, errors.ErrNoURLs), "ErrNoURLs")
	testutil.AssertEqual(t, atomic.LoadInt32(&calls), int32(0), "API never called")
}

func TestGeminiClient_RetriesServerErrors(t *testing.T) {
	calls := int32(0)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(okResponse))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL, 1)

	text, err := c.Summarize(context.Background(), []string{"https://example.com/"})
	testutil.AssertNoError(t, err, "succeeds on retry")
	testutil.AssertEqual(t, text, `{"summary":"ok"}`, "text")
	testutil.AssertEqual(t, atomic.LoadInt32(&calls), int32(2), "one retry")
}

func TestGeminiClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusForbidden, `{"error":{}}`, errors.ErrUnauthorized},
		{"unavailable", http.StatusServiceUnavailable, ``, errors.ErrServiceUnavailable},
		{"malformed", http.StatusOK, `not json`, errors.ErrInvalidResponse},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, errors.ErrInvalidResponse},
		{"blocked", http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`, errors.ErrInvalidResponse},
		{"empty text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":" "}]}}]}`, errors.ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, 0).Summarize(context.Background(), []string{"https://example.com/"})
			testutil.AssertTrue(t, errors.Is(err, tt.wantErr), "unexpected error: "+errString(err))
		})
	}
}

func TestParseResponse_JoinsParts(t *testing.T) {
	text, err := parseResponse([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"a\":"},{"text":"1}"}]}}]}`))
	testutil.AssertNoError(t, err, "parse")
	testutil.AssertEqual(t, text, `{"a":1}`, "parts concatenated")
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt([]string{"https://a.example.com/admin", "https://b.example.com/api/v1"})

	testutil.AssertTrue(t, strings.Contains(prompt, "https://a.example.com/admin\nhttps://b.example.com/api/v1\n"), "one url per line")
	testutil.AssertContains(t, prompt, `"high_value_endpoints"`, "output format")
	testutil.AssertContains(t, prompt, `"summary"`, "summary key")
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
