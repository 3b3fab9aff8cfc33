// internal/adapters/ai/prompt.go
package ai

import "strings"

const promptHeader = `You are a security analysis assistant.
You will receive a list of URLs/endpoints discovered during reconnaissance.

### Your Task
- Analyze the URLs.
- Identify which endpoints are **potentially high-value** for manual security testing.
- High-value examples include:
  - Authentication interfaces (e.g., /login, /signin, /auth)
  - Administrative panels (e.g., /admin, /dashboard)
  - File upload points (e.g., /upload, /file/upload)
  - API endpoints (e.g., /api/*)
  - Sensitive configuration or debug pages (e.g., /debug, /config)

### Input URLs:
`

const promptFooter = `
### Output Format (JSON exactly like this):
{
  "high_value_endpoints": [
    {
      "url": "<full-url>",
      "reason": "<why this endpoint might be important>"
    }
  ],
  "summary": "<short and simple textual summary>"
}
`

// BuildPrompt arma la instrucción con una URL por línea.
func BuildPrompt(urls []string) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	for _, u := range urls {
		sb.WriteString(u)
		sb.WriteByte('\n')
	}
	sb.WriteString(promptFooter)
	return sb.String()
}
