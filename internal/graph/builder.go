package graph

import (
	"context"
	"log/slog"
)

// DependencyResolver returns the direct dependencies of a package
type DependencyResolver interface {
	Resolve(ctx context.Context, pkg string) []string
}

// Builder performs a depth-first, depth-bounded traversal from a root
// package. Each package is expanded at most once per Build.
type Builder struct {
	resolver DependencyResolver
	maxDepth int
	logger   *slog.Logger

	graph   *Graph
	visited map[string]struct{}
}

// NewBuilder creates a Builder expanding packages up to maxDepth hops from the
// root. The root is depth 0. A nil logger uses slog.Default().
func NewBuilder(resolver DependencyResolver, maxDepth int, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		resolver: resolver,
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Build traverses from root and returns the resulting graph. The only error
// is a cancelled or expired context.
func (b *Builder) Build(ctx context.Context, root string) (*Graph, error) {
	b.graph = New()
	b.visited = make(map[string]struct{})

	if err := b.expand(ctx, root, 0); err != nil {
		return nil, err
	}

	return b.graph, nil
}

func (b *Builder) expand(ctx context.Context, pkg string, depth int) error {
	if depth > b.maxDepth {
		return nil
	}
	if _, ok := b.visited[pkg]; ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.visited[pkg] = struct{}{}

	deps := b.resolver.Resolve(ctx, pkg)

	b.logger.Debug("Expanding package",
		slog.String("package", pkg),
		slog.Int("depth", depth),
		slog.Int("dependencies", len(deps)),
	)

	b.graph.AddNode(pkg)
	for _, dep := range deps {
		b.graph.AddEdge(pkg, dep)
	}

	for _, dep := range deps {
		if err := b.expand(ctx, dep, depth+1); err != nil {
			return err
		}
	}

	return nil
}
