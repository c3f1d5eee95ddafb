// Command lvsearch answers path queries over a graph document with the
// uninformed search algorithms of this module.
//
//	lvsearch --graph g.yaml run bfs A D
//	lvsearch --graph g.yaml run iddfs A D --depth 5
//	lvsearch --graph g.yaml batch queries.yaml --parallel 4 --format table
//	lvsearch algorithms
package main

import (
	"os"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
