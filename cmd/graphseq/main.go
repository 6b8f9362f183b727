// Command graphseq reports the diameter and longest shortest-paths of
// undirected graphs stored as YAML/JSON edge lists.
//
//	graphseq diameter graph.yaml
//	graphseq sequences graph.yaml --mode component --format json
//	graphseq generate cycle 6 > ring.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "graphseq:", err)
		os.Exit(1)
	}
}
