package main

import (
	"github.com/katalvlaran/lvsearch/search"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) newRunCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "run <algorithm> <start> <goal>",
		Short: "Answer one path query",
		Long: "Answer one path query. <algorithm> is one of: bfs, dfs, ucs, dls, iddfs, bidirectional.\n" +
			"--depth is the limit for dls and the maximum depth for iddfs.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := search.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}
			doc, err := a.loadGraph()
			if err != nil {
				return err
			}

			q := search.Query{Algorithm: algo, Start: args[1], Goal: args[2], Depth: depth}
			out, err := search.Run(cmd.Context(), doc.Graphs(), q)
			if err != nil {
				return err
			}
			a.logOutcome(out)

			return writeOutcomes(cmd.OutOrStdout(), a.format, []search.Outcome{out})
		},
	}
	cmd.Flags().IntVar(&depth, "depth", search.DefaultDepth, "Depth limit for dls / max depth for iddfs")

	return cmd
}

func (a *app) logOutcome(out search.Outcome) {
	a.log.WithFields(logrus.Fields{
		"algorithm": out.Query.Algorithm.String(),
		"start":     out.Query.Start,
		"goal":      out.Query.Goal,
		"found":     out.Found,
		"elapsed":   out.Elapsed,
	}).Info("query answered")
}
