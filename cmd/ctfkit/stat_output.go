package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ctfkit/ctf"
)

var statHeaderColor = color.New(color.Bold)

// renderStatsTable prints one row per trace, columns padded to the widest
// cell so multi-byte trace paths stay aligned.
func renderStatsTable(out io.Writer, spec ctf.FieldSpec[ctf.Integer], rows []fieldStats) {
	header := []string{"trace", "count", "min", "max", "mean"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.Count == 0 {
			cells = append(cells, []string{r.Root, "0", "-", "-", "-"})
			continue
		}
		cells = append(cells, []string{
			r.Root,
			fmt.Sprintf("%d", r.Count),
			fmt.Sprintf("%d", r.Min),
			fmt.Sprintf("%d", r.Max),
			fmt.Sprintf("%.1f", r.mean()),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	fmt.Fprintf(out, "%s.%s\n", spec.Scope(), statHeaderColor.Sprint(spec.Name()))
	fmt.Fprintln(out, padRow(header, widths))
	for _, row := range cells {
		fmt.Fprintln(out, padRow(row, widths))
	}
}

func padRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
