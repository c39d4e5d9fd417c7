package reporter

import (
	"encoding/json"

	"github.com/ethanolivertroy/aptgraph/internal/graph"
)

// JSONReporter outputs the graph in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Root  string      `json:"root"`
	Stats graph.Stats `json:"stats"`
	Nodes []jsonNode  `json:"nodes"`
}

type jsonNode struct {
	ID           string   `json:"id"`
	Dependencies []string `json:"dependencies"`
}

// Report generates JSON output for the given graph
func (r *JSONReporter) Report(g *graph.Graph, root string) ([]byte, error) {
	output := jsonOutput{
		Root:  root,
		Stats: g.Stats(),
		Nodes: make([]jsonNode, 0, g.Len()),
	}

	for _, pkg := range g.Nodes() {
		output.Nodes = append(output.Nodes, jsonNode{
			ID:           pkg,
			Dependencies: g.Neighbors(pkg),
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
