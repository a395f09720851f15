// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/setdiff/setdiff/internal/runner"
)

// Summary writes one table row per result: name, status, the counts of
// added, removed and changed keys and both blob sizes.
func Summary(w io.Writer, results []runner.Result, opts Options) error {
	if len(results) == 0 {
		return nil
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Align(lipgloss.Left)
		numberStyle = lipgloss.NewStyle().Align(lipgloss.Right)
	)

	pal := newPalette(opts.Color)
	statusStyle := map[runner.Status]lipgloss.Style{
		runner.Changed: pal.key,
		runner.Skipped: pal.added,
		runner.Failed:  pal.removed,
	}

	var rows [][]string
	var total [3]int
	for _, res := range results {
		counts := [3]int{len(res.Report.Added), len(res.Report.Removed), len(res.Report.Changes)}
		for i := range counts {
			total[i] += counts[i]
		}

		status := res.Status.String()
		if s, ok := statusStyle[res.Status]; ok {
			status = pal.render(s, status)
		}

		rows = append(rows, []string{
			res.Name,
			status,
			strconv.Itoa(counts[0]),
			strconv.Itoa(counts[1]),
			strconv.Itoa(counts[2]),
			size(res.ReferenceSize),
			size(res.CandidateSize),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case col >= 2:
				style = numberStyle
			default:
				style = cellStyle
			}
			if col > 0 {
				style = style.PaddingLeft(1)
			}
			return style
		}).
		Headers("SET", "STATUS", "ADDED", "REMOVED", "CHANGED", "REFERENCE", "CANDIDATE").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, t); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d set(s): %d added, %d removed, %d changed\n",
		len(results), total[0], total[1], total[2])
	return err
}

func size(n int) string {
	if n == 0 {
		return "-"
	}
	return humanize.Bytes(uint64(n))
}
