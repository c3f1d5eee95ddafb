package main

import (
	"runtime"

	"github.com/katalvlaran/lvsearch/graphio"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) newBatchCmd() *cobra.Command {
	var parallel int
	cmd := &cobra.Command{
		Use:   "batch <queries-file>",
		Short: "Answer every query of a query document concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := graphio.LoadQueries(args[0])
			if err != nil {
				return err
			}
			doc, err := a.loadGraph()
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"queries":  len(queries),
				"parallel": parallel,
			}).Debug("running batch")
			outs, err := search.RunBatch(cmd.Context(), doc.Graphs(), queries, parallel)
			if err != nil {
				return err
			}
			for _, out := range outs {
				a.logOutcome(out)
			}

			return writeOutcomes(cmd.OutOrStdout(), a.format, outs)
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", runtime.GOMAXPROCS(0), "Maximum queries in flight (0 = unbounded)")

	return cmd
}
