package scanner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethanolivertroy/aptgraph/internal/clients"
	"github.com/ethanolivertroy/aptgraph/internal/graph"
	"github.com/ethanolivertroy/aptgraph/internal/models"
	"github.com/ethanolivertroy/aptgraph/internal/parsers"
	"github.com/ethanolivertroy/aptgraph/internal/resolver"
)

// Scanner orchestrates dependency discovery for the configured root package
type Scanner struct {
	config  *models.Config
	runner  clients.Runner
	logger  *slog.Logger
	builder *graph.Builder
}

// Option configures the Scanner
type Option func(*Scanner)

// WithRunner sets the command runner used for package manager queries
func WithRunner(runner clients.Runner) Option {
	return func(s *Scanner) {
		s.runner = runner
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a new Scanner with the given configuration
func New(config *models.Config, opts ...Option) (*Scanner, error) {
	if config == nil {
		return nil, fmt.Errorf("config is nil")
	}

	s := &Scanner{
		config: config,
		runner: clients.ExecRunner{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	aptClient := clients.NewAptClient(s.runner, config.QueryCommand, config.QueryTimeout)
	parser := parsers.NewAptDependsParser(config.DependencyLabels)
	res := resolver.New(aptClient, parser, s.logger)
	s.builder = graph.NewBuilder(res, config.MaxDepth, s.logger)

	return s, nil
}

// Scan builds the dependency graph of the configured root package
func (s *Scanner) Scan(ctx context.Context) (*graph.Graph, error) {
	s.logger.Info("Building dependency graph",
		slog.String("package", s.config.PackageName),
		slog.Int("max_depth", s.config.MaxDepth),
		slog.String("repository", s.config.RepositoryURL),
	)

	g, err := s.builder.Build(ctx, s.config.PackageName)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}

	stats := g.Stats()
	s.logger.Info("Dependency graph built",
		slog.Int("packages", stats.Nodes),
		slog.Int("edges", stats.Edges),
		slog.Int("unexpanded", stats.Unexpanded),
	)

	return g, nil
}
