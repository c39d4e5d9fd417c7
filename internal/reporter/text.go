package reporter

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/aptgraph/internal/graph"
)

// TextReporter outputs the graph as an indented tree rooted at the root package
type TextReporter struct{}

// Report generates tree output for the given graph
func (r *TextReporter) Report(g *graph.Graph, root string) ([]byte, error) {
	var sb strings.Builder

	stats := g.Stats()
	sb.WriteString(fmt.Sprintf("%s dependencies\n", root))
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Packages expanded: %d | Edges: %d | Unexpanded: %d\n\n",
		stats.Nodes, stats.Edges, stats.Unexpanded))

	shown := make(map[string]bool)
	r.writeNode(&sb, g, root, 0, shown)

	return []byte(sb.String()), nil
}

func (r *TextReporter) writeNode(sb *strings.Builder, g *graph.Graph, pkg string, level int, shown map[string]bool) {
	indent := strings.Repeat("  ", level)

	switch {
	case shown[pkg]:
		sb.WriteString(fmt.Sprintf("%s%s (already shown)\n", indent, pkg))
		return
	case !g.Has(pkg):
		sb.WriteString(fmt.Sprintf("%s%s ...\n", indent, pkg))
		return
	}

	sb.WriteString(indent + pkg + "\n")
	shown[pkg] = true

	for _, dep := range g.Neighbors(pkg) {
		r.writeNode(sb, g, dep, level+1, shown)
	}
}
