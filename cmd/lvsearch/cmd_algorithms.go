package main

import (
	"github.com/katalvlaran/lvsearch/search"
	"github.com/spf13/cobra"
)

var algorithmNotes = map[search.Algorithm]string{
	search.BFS:           "fewest edges; complete",
	search.DFS:           "first path in neighbor order; not shortest",
	search.UCS:           "minimum total weight; needs non-negative weights",
	search.DLS:           "at most --depth edges; no visited set",
	search.IDDFS:         "fewest edges up to --depth; O(depth) memory",
	search.Bidirectional: "two BFS frontiers meeting in the middle",
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"NAME", "NOTES"}
			var rows [][]string
			for _, algo := range search.Algorithms() {
				rows = append(rows, []string{algo.String(), algorithmNotes[algo]})
			}
			formatTable(cmd.OutOrStdout(), headers, rows)

			return nil
		},
	}
}
