// Package resolver turns package manager queries into direct dependency lists.
package resolver

import (
	"context"
	"log/slog"

	"github.com/ethanolivertroy/aptgraph/internal/models"
	"github.com/ethanolivertroy/aptgraph/internal/parsers"
)

// Querier returns the raw relationship listing for a package
type Querier interface {
	Depends(ctx context.Context, pkg string) ([]byte, error)
}

// Resolver resolves the direct mandatory dependencies of a package
type Resolver struct {
	querier Querier
	parser  parsers.Parser
	logger  *slog.Logger
}

// New creates a Resolver. A nil logger uses slog.Default().
func New(querier Querier, parser parsers.Parser, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		querier: querier,
		parser:  parser,
		logger:  logger,
	}
}

// Resolve returns the names of pkg's direct dependencies in the order the
// package manager listed them. A failed query is logged and yields no
// dependencies so the caller can treat pkg as a leaf.
func (r *Resolver) Resolve(ctx context.Context, pkg string) []string {
	output, err := r.querier.Depends(ctx, pkg)
	if err != nil {
		r.logger.Warn("Dependency query failed",
			slog.String("package", pkg),
			slog.String("error", err.Error()),
		)
		return nil
	}

	deps := r.parser.Parse(pkg, output)

	r.logger.Debug("Resolved dependencies",
		slog.String("package", pkg),
		slog.Int("count", len(deps)),
		slog.Any("dependencies", dependencyStrings(deps)),
	)

	result := make([]string, 0, len(deps))
	for _, d := range deps {
		result = append(result, d.Name)
	}
	return result
}

func dependencyStrings(deps []models.Dependency) []string {
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		out = append(out, d.String())
	}
	return out
}
