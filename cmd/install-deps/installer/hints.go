// cmd/install-deps/installer/hints.go
package installer

import (
	"fmt"
	"strings"

	"webchain/internal/core/domain"
	"webchain/internal/toolcheck"
)

// Hint agrupa el motivo probable de un problema y los pasos manuales para resolverlo.
type Hint struct {
	Tool      string
	Reason    string
	Solutions []string
	DocsURL   string
}

// String formatea la sugerencia para mostrarla.
func (h Hint) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", h.Tool, h.Reason)
	for i, s := range h.Solutions {
		fmt.Fprintf(&b, "    %d) %s\n", i+1, s)
	}
	if h.DocsURL != "" {
		fmt.Fprintf(&b, "    For more help: %s\n", h.DocsURL)
	}
	return b.String()
}

// ManagerHint explica cómo instalar el gestor de herramientas.
func ManagerHint(manager string) Hint {
	return Hint{
		Tool:   manager,
		Reason: "the tool manager is not installed or not in PATH",
		Solutions: []string{
			"go install -v github.com/projectdiscovery/pdtm/cmd/pdtm@latest",
			"Make sure $(go env GOPATH)/bin is in PATH",
		},
		DocsURL: DocsURL(manager),
	}
}

// ActionHint explica cómo repetir a mano una remediación fallida.
func ActionHint(a domain.Action) Hint {
	h := Hint{
		Tool:    a.Tool,
		Reason:  fmt.Sprintf("automatic %s failed", a.Kind),
		DocsURL: DocsURL(a.Tool),
	}
	h.Solutions = append(h.Solutions, "Retry manually: "+strings.Join(toolcheck.CommandFor(a), " "))

	// naabu enlaza contra libpcap
	if a.Tool == "naabu" {
		h.Solutions = append(h.Solutions, "Install libpcap first: sudo apt install -y libpcap-dev")
	}
	h.Solutions = append(h.Solutions, "Run with --verbose to see the manager output")
	return h
}

// UnlistedHint cubre una herramienta requerida que el gestor no conoce.
func UnlistedHint(tool, manager string) Hint {
	return Hint{
		Tool:   tool,
		Reason: fmt.Sprintf("not listed by %s", manager),
		Solutions: []string{
			fmt.Sprintf("Update %s: %s -self-update", manager, manager),
			fmt.Sprintf("Install it from source: go install -v github.com/projectdiscovery/%s/cmd/%s@latest", sourcePath(tool), tool),
		},
		DocsURL: DocsURL(tool),
	}
}

// PathHint explica cómo exponer el directorio de binarios de pdtm.
func PathHint(binDir string, missing []string) Hint {
	return Hint{
		Tool:   strings.Join(missing, ", "),
		Reason: "not found in PATH",
		Solutions: []string{
			fmt.Sprintf("export PATH=\"$PATH:%s\"", binDir),
			"Add the line above to your shell profile (~/.bashrc or ~/.zshrc)",
		},
	}
}

// sourcePath es el repo de cada herramienta; naabu vive en v2.
func sourcePath(tool string) string {
	switch tool {
	case "subfinder", "dnsx", "naabu", "httpx":
		return tool + "/v2"
	default:
		return tool
	}
}

// DocsURL retorna la URL de documentación de una herramienta.
func DocsURL(tool string) string {
	urls := map[string]string{
		"pdtm":      "https://github.com/projectdiscovery/pdtm",
		"subfinder": "https://github.com/projectdiscovery/subfinder",
		"dnsx":      "https://github.com/projectdiscovery/dnsx",
		"naabu":     "https://github.com/projectdiscovery/naabu",
		"httpx":     "https://github.com/projectdiscovery/httpx",
		"katana":    "https://github.com/projectdiscovery/katana",
	}

	if url, ok := urls[strings.ToLower(tool)]; ok {
		return url
	}
	return "https://github.com/search?q=" + tool
}
