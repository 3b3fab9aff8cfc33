// internal/toolcheck/report.go
package toolcheck

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"webchain/internal/core/domain"
	"webchain/internal/platform/ui"
)

// BumpKind clasifica el salto entre dos versiones como "major", "minor" o
// "patch". Retorna "" si falta alguna o no es semver.
func BumpKind(current, latest domain.Version) string {
	if !current.Valid || !latest.Valid {
		return ""
	}
	cur, err := semver.NewVersion(current.Value)
	if err != nil {
		return ""
	}
	lat, err := semver.NewVersion(latest.Value)
	if err != nil {
		return ""
	}
	if !lat.GreaterThan(cur) {
		return ""
	}

	switch {
	case lat.Major() != cur.Major():
		return "major"
	case lat.Minor() != cur.Minor():
		return "minor"
	default:
		return "patch"
	}
}

// StatusRows arma una fila del reporte por herramienta requerida, en orden.
func StatusRows(statuses map[string]domain.ToolStatus, required []string) []ui.ToolRow {
	rows := make([]ui.ToolRow, 0, len(required))

	for _, tool := range required {
		st, ok := statuses[tool]
		if !ok {
			rows = append(rows, ui.ToolRow{Name: tool, Status: ui.StatusError, Detail: "not listed by pdtm"})
			continue
		}

		switch st.State {
		case domain.StateLatest:
			rows = append(rows, ui.ToolRow{Name: tool, Status: ui.StatusSuccess, Detail: versionDetail(st.Current)})
		case domain.StateOutdated:
			detail := fmt.Sprintf("%s -> %s", st.Current, st.Latest)
			if kind := BumpKind(st.Current, st.Latest); kind != "" {
				detail += " (" + kind + ")"
			}
			rows = append(rows, ui.ToolRow{Name: tool, Status: ui.StatusWarning, Detail: detail})
		case domain.StateNotInstalled:
			rows = append(rows, ui.ToolRow{Name: tool, Status: ui.StatusError, Detail: "not installed"})
		default:
			rows = append(rows, ui.ToolRow{Name: tool, Status: ui.StatusSkipped, Detail: "not supported on this platform"})
		}
	}
	return rows
}

func versionDetail(v domain.Version) string {
	if !v.Valid {
		return ""
	}
	return v.Value
}
