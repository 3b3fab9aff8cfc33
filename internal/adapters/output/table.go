// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
)

// WriteTable imprime una tabla legible con el conteo por etapa de cada dominio.
func WriteTable(out io.Writer, batch domain.BatchReport) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	if len(batch.Domains) == 0 {
		fmt.Fprintln(w, "No domains processed.")
		return w.Flush()
	}

	fmt.Fprintln(w, "DOMAIN\tSTAGE\tSTATUS\tLINES")
	fmt.Fprintln(w, "------\t-----\t------\t-----")

	for _, d := range batch.Domains {
		for _, st := range d.Stages {
			lines := fmt.Sprintf("%d", st.LineCount)
			if st.DryRun {
				lines = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				d.Target.Name,
				st.Stage,
				st.Status(),
				lines,
			)
		}
		if d.Aborted {
			fmt.Fprintf(w, "%s\t-\taborted\t-\n", d.Target.Name)
		}
		if d.Interrupted {
			fmt.Fprintf(w, "%s\t-\tinterrupted\t-\n", d.Target.Name)
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush table")
	}
	return nil
}
