package reporter

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/aptgraph/internal/graph"
)

// DOTReporter renders the graph as a Graphviz digraph.
//
// The closing brace has no trailing newline. Identifiers are wrapped in double quotes as-is; names containing a quote
// character produce invalid DOT.
type DOTReporter struct{}

// Report generates DOT output for the given graph
func (r *DOTReporter) Report(g *graph.Graph, root string) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("digraph G {\n")
	sb.WriteString(fmt.Sprintf("    label=\"%s dependencies\";\n", root))
	sb.WriteString("    labelloc=\"t\";\n")

	for _, pkg := range g.Nodes() {
		for _, dep := range g.Neighbors(pkg) {
			sb.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\";\n", pkg, dep))
		}
	}

	sb.WriteString("}")

	return []byte(sb.String()), nil
}
