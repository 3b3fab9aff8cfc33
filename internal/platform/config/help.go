// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
webchain - ProjectDiscovery recon chain (subfinder -> dnsx -> naabu -> httpx -> katana)

USAGE:
  webchain -d <domain> [options]
  webchain -i <file> [options]

INPUT (one of them is required):
  -d, --domain string       Single target domain (e.g., example.com)
  -i, --input-file string   File with one domain per line ('#' comments allowed)

OUTPUT:
  -o, --out string          Output directory (default: "recon-output")
                            Artifacts land in <out>/<domain>/{subfinder,dnsx,naabu,httpx,katana}.txt
                            plus summary.json and, with -a, ai_overview.json

EXECUTION:
      --proxy [host:port]   Route httpx and katana through an HTTP proxy
                            (bare flag: 127.0.0.1:8080)
      --dry-run             Print every command without executing anything
  -a, --ai-overview         Send katana URLs to Google Gemini for analysis
      --resume              Skip stages whose output file already has content
      --abort-on-failure    Stop a domain's chain on the first failed stage
      --skip-tool-check     Do not inspect or remediate the pdtm tool inventory
      --settings string     YAML settings file (binaries, resolver, ports, policies, AI)

INFO:
  -v, --verbose             Debug logging on stderr
      --no-color            Disable colored output
      --version             Print version information and exit
  -h, --help                Show this help message

EXAMPLES:
  Single domain:
    webchain -d example.com

  Batch through Burp:
    webchain -i scope.txt --proxy

  See what would run:
    webchain -d example.com --dry-run

  Continue an interrupted batch:
    webchain -i scope.txt --resume

ENVIRONMENT VARIABLES:
  WEBCHAIN_DOMAIN, WEBCHAIN_INPUT_FILE, WEBCHAIN_OUTPUT_DIR, WEBCHAIN_PROXY
  WEBCHAIN_DRY_RUN, WEBCHAIN_AI_OVERVIEW, WEBCHAIN_RESUME, WEBCHAIN_SKIP_TOOL_CHECK
  WEBCHAIN_FAILURE_POLICY=continue|abort
  WEBCHAIN_RESOLVER, WEBCHAIN_NAABU_PORTS, WEBCHAIN_SETTINGS
  WEBCHAIN_GEMINI_API_KEY, WEBCHAIN_GEMINI_MODEL, WEBCHAIN_GEMINI_TIMEOUT
  WEBCHAIN_LOG_LEVEL=debug|info|warn|error, NO_COLOR

  Note: CLI flags override environment variables, which override the settings file.

AI KEY:
  Stored in ~/.recon_config.json (mode 0600). Asked once when -a is used
  and no key is configured.
`

// PrintHelp escribe la ayuda en w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion escribe la información de versión en w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "webchain %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
}
