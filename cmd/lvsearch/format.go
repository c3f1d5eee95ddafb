package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// writeOutcomes renders outs as a table or as indented JSON.
func writeOutcomes(w io.Writer, format string, outs []search.Outcome) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(outs) == 1 {
			return enc.Encode(outs[0])
		}

		return enc.Encode(outs)
	}

	headers := []string{"ALGORITHM", "START", "GOAL", "FOUND", "COST", "PATH"}
	rows := make([][]string, 0, len(outs))
	for _, out := range outs {
		path := "-"
		if out.Found {
			path = out.Path.String()
		}
		cost := "-"
		if out.Found {
			cost = strconv.FormatFloat(out.Cost, 'g', -1, 64)
		}
		rows = append(rows, []string{
			out.Query.Algorithm.String(),
			out.Query.Start,
			out.Query.Goal,
			strconv.FormatBool(out.Found),
			cost,
			path,
		})
	}
	formatTable(w, headers, rows)

	return nil
}

func formatTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			// the last column is left unpadded
			if i == len(cells)-1 {
				parts[i] = cell
				continue
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}
