package reporter

import (
	"encoding/json"
	"testing"

	"github.com/ethanolivertroy/aptgraph/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() *graph.Graph {
	g := graph.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddNode("B")
	g.AddEdge("C", "D")
	g.AddNode("D")
	return g
}

func TestGet(t *testing.T) {
	tests := []struct {
		format   string
		expected Reporter
	}{
		{"dot", &DOTReporter{}},
		{"", &DOTReporter{}},
		{"json", &JSONReporter{}},
		{"text", &TextReporter{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			rep, err := Get(tt.format)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, rep)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := Get("sarif")
		assert.Error(t, err)
	})
}

func TestDOTReporter(t *testing.T) {
	t.Run("contains title and edges", func(t *testing.T) {
		out, err := (&DOTReporter{}).Report(sampleGraph(), "A")
		require.NoError(t, err)

		dot := string(out)
		assert.Contains(t, dot, "digraph G")
		assert.Contains(t, dot, `"A" -> "B";`)
		assert.Contains(t, dot, `"A" -> "C";`)
		assert.Contains(t, dot, `"C" -> "D";`)
		assert.Contains(t, dot, `label="A dependencies";`)
	})

	t.Run("exact layout", func(t *testing.T) {
		out, err := (&DOTReporter{}).Report(sampleGraph(), "A")
		require.NoError(t, err)

		expected := "digraph G {\n" +
			"    label=\"A dependencies\";\n" +
			"    labelloc=\"t\";\n" +
			"    \"A\" -> \"B\";\n" +
			"    \"A\" -> \"C\";\n" +
			"    \"C\" -> \"D\";\n" +
			"}"
		assert.Equal(t, expected, string(out))
	})

	t.Run("rendering is idempotent", func(t *testing.T) {
		g := sampleGraph()
		r := &DOTReporter{}

		first, err := r.Report(g, "A")
		require.NoError(t, err)
		second, err := r.Report(g, "A")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("root without dependencies", func(t *testing.T) {
		g := graph.New()
		g.AddNode("base-files")

		out, err := (&DOTReporter{}).Report(g, "base-files")
		require.NoError(t, err)

		assert.NotContains(t, string(out), "->")
	})
}

func TestJSONReporter(t *testing.T) {
	out, err := (&JSONReporter{}).Report(sampleGraph(), "A")
	require.NoError(t, err)

	var decoded jsonOutput
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "A", decoded.Root)
	assert.Equal(t, graph.Stats{Nodes: 4, Edges: 3, Leaves: 2, Unexpanded: 0}, decoded.Stats)
	require.Len(t, decoded.Nodes, 4)
	assert.Equal(t, "A", decoded.Nodes[0].ID)
	assert.Equal(t, []string{"B", "C"}, decoded.Nodes[0].Dependencies)
	assert.Equal(t, []string{}, decoded.Nodes[1].Dependencies)
}

func TestTextReporter(t *testing.T) {
	t.Run("tree with repeats and unexpanded packages", func(t *testing.T) {
		g := graph.New()
		g.AddEdge("A", "B")
		g.AddEdge("A", "C")
		g.AddEdge("B", "C")
		g.AddEdge("C", "D")

		out, err := (&TextReporter{}).Report(g, "A")
		require.NoError(t, err)

		text := string(out)
		assert.Contains(t, text, "A dependencies\n")
		assert.Contains(t, text, "Packages expanded: 3 | Edges: 4 | Unexpanded: 1\n")
		assert.Contains(t, text, "\nA\n  B\n    C\n      D ...\n  C (already shown)\n")
	})
}
