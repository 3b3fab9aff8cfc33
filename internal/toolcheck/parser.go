// internal/toolcheck/parser.go

// Package toolcheck interpreta el listado de herramientas de pdtm, planifica
// la remediación de las faltantes o desactualizadas y la ejecuta tras la
// confirmación del operador.
package toolcheck

import (
	"regexp"
	"strings"

	"webchain/internal/core/domain"
)

var (
	ansiRe     = regexp.MustCompile(`\x1B(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)
	numberedRe = regexp.MustCompile(`^\s*\d+\.\s+\S`)
	entryRe    = regexp.MustCompile(`^\s*\d+\.\s+(?P<name>[A-Za-z0-9_-]+)\s+\((?P<state>latest|outdated|not installed|not supported)\)(?:\s+\((?P<current>[\d.]+)\))?(?:\s+➡\s+\((?P<latest>[\d.]+)\))?`)

	nameIdx    = entryRe.SubexpIndex("name")
	stateIdx   = entryRe.SubexpIndex("state")
	currentIdx = entryRe.SubexpIndex("current")
	latestIdx  = entryRe.SubexpIndex("latest")
)

// StripANSI elimina las secuencias de escape de terminal.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// FilterEntries quita los escapes ANSI, normaliza los fines de línea y deja
// solo las entradas numeradas del listado. Es idempotente.
func FilterEntries(raw string) string {
	clean := StripANSI(raw)
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\r", "\n")

	var kept []string
	for _, line := range strings.Split(clean, "\n") {
		if numberedRe.MatchString(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Parse extrae un ToolStatus por entrada reconocida. Las líneas que no
// coinciden se descartan; ante un nombre repetido gana la última entrada.
func Parse(raw string) map[string]domain.ToolStatus {
	statuses := make(map[string]domain.ToolStatus)

	entries := FilterEntries(raw)
	if entries == "" {
		return statuses
	}

	for _, line := range strings.Split(entries, "\n") {
		m := entryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		state, ok := domain.ParseToolState(m[stateIdx])
		if !ok {
			continue
		}
		statuses[m[nameIdx]] = domain.ToolStatus{
			Name:    m[nameIdx],
			State:   state,
			Current: domain.NewVersion(m[currentIdx]),
			Latest:  domain.NewVersion(m[latestIdx]),
		}
	}
	return statuses
}
