// Package graph holds the package dependency graph and the depth-bounded
// traversal that builds it.
package graph

// Graph maps each expanded package to the set of packages it directly
// depends on. Nodes and neighbors iterate in insertion order.
//
// Only expanded packages are nodes. A dependency that was never expanded
// (because the depth bound was hit) appears as an edge target only.
type Graph struct {
	nodes []string
	adj   map[string][]string
	edges map[string]map[string]struct{}
}

// Stats summarizes a graph
type Stats struct {
	Nodes      int `json:"nodes"`
	Edges      int `json:"edges"`
	Leaves     int `json:"leaves"`
	Unexpanded int `json:"unexpanded"`
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		adj:   make(map[string][]string),
		edges: make(map[string]map[string]struct{}),
	}
}

// AddNode records id as an expanded package. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.nodes = append(g.nodes, id)
	g.adj[id] = []string{}
	g.edges[id] = make(map[string]struct{})
}

// AddEdge records that source directly depends on target. source becomes a
// node if it is not one already; target does not. Duplicate edges collapse.
func (g *Graph) AddEdge(source, target string) {
	g.AddNode(source)
	if _, ok := g.edges[source][target]; ok {
		return
	}
	g.edges[source][target] = struct{}{}
	g.adj[source] = append(g.adj[source], target)
}

// Has reports whether id is a node
func (g *Graph) Has(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether source directly depends on target
func (g *Graph) HasEdge(source, target string) bool {
	_, ok := g.edges[source][target]
	return ok
}

// Nodes returns the expanded packages in the order they were added
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Neighbors returns the direct dependencies of id in the order they were added
func (g *Graph) Neighbors(id string) []string {
	deps := g.adj[id]
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges
func (g *Graph) EdgeCount() int {
	n := 0
	for _, deps := range g.adj {
		n += len(deps)
	}
	return n
}

// Stats returns node, edge, leaf and unexpanded target counts
func (g *Graph) Stats() Stats {
	stats := Stats{
		Nodes: len(g.nodes),
		Edges: g.EdgeCount(),
	}

	unexpanded := make(map[string]struct{})
	for _, id := range g.nodes {
		if len(g.adj[id]) == 0 {
			stats.Leaves++
		}
		for _, dep := range g.adj[id] {
			if !g.Has(dep) {
				unexpanded[dep] = struct{}{}
			}
		}
	}
	stats.Unexpanded = len(unexpanded)

	return stats
}
