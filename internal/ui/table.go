package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cwbudde/binafft/internal/bench"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// BenchmarkTable renders one row per benchmarked size.
func BenchmarkTable(results []bench.Result) string {
	rows := make([][]string, 0, len(results))

	for _, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(r.N),
			r.Kernel,
			FormatDuration(r.Forward),
			FormatDuration(r.Inverse),
			fmt.Sprintf("%.1f", r.MFLOPS),
			fmt.Sprintf("%.2e", r.RoundTripError),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("N", "kernel", "forward", "inverse", "MFLOPS", "round trip").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return cellStyle
			default:
				return numberStyle
			}
		})

	return t.String()
}

// VerifyTable renders the outcome of a shared-table verification run.
func VerifyTable(res bench.VerifyResult) string {
	status := "ok"
	if res.MaxError > res.Tolerance {
		status = "FAILED"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("N", "workers", "kernel", "max error", "tolerance", "status").
		Row(
			strconv.Itoa(res.N),
			strconv.Itoa(res.Workers),
			res.Kernel,
			fmt.Sprintf("%.2e", res.MaxError),
			fmt.Sprintf("%.2e", res.Tolerance),
			status,
		).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	return t.String()
}
