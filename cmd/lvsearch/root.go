package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvsearch/graphio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// envGraph names the environment variable consulted when --graph is unset.
const envGraph = "LVSEARCH_GRAPH"

// app carries flag values and the logger shared by every subcommand.
type app struct {
	graphPath string
	format    string
	logLevel  string

	log *logrus.Logger
}

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("lvsearch version %s (commit: %s)", version, commit)
	}

	return fmt.Sprintf("lvsearch version %s-dev", version)
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:           "lvsearch",
		Short:         "Uninformed graph search: BFS, DFS, UCS, DLS, IDDFS, bidirectional",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.graphPath, "graph", "", "Graph document, YAML or JSON (env: "+envGraph+")")
	root.PersistentFlags().StringVar(&a.format, "format", "table", "Output format: table|json")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	root.AddCommand(a.newRunCmd())
	root.AddCommand(a.newBatchCmd())
	root.AddCommand(newAlgorithmsCmd())

	return root
}

// setup configures logging and validates shared flags.
func (a *app) setup(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch a.format {
	case "table", "json":
	default:
		return fmt.Errorf("--format: unsupported %q (want table or json)", a.format)
	}

	if a.graphPath == "" {
		a.graphPath = os.Getenv(envGraph)
	}

	return nil
}

// loadGraph reads the --graph document.
func (a *app) loadGraph() (*graphio.Document, error) {
	if a.graphPath == "" {
		return nil, fmt.Errorf("no graph document: pass --graph or set %s", envGraph)
	}
	doc, err := graphio.Load(a.graphPath)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"path":     a.graphPath,
		"nodes":    len(doc.Graph.Nodes()),
		"directed": doc.Directed,
	}).Debug("graph loaded")

	return doc, nil
}
