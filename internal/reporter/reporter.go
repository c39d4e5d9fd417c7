package reporter

import (
	"fmt"

	"github.com/ethanolivertroy/aptgraph/internal/graph"
)

// Reporter is the interface for output formatters
type Reporter interface {
	// Report renders the dependency graph rooted at root
	Report(g *graph.Graph, root string) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) (Reporter, error) {
	switch format {
	case "dot", "":
		return &DOTReporter{}, nil
	case "json":
		return &JSONReporter{}, nil
	case "text":
		return &TextReporter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
