package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ethanolivertroy/aptgraph/internal/clients"
	"github.com/ethanolivertroy/aptgraph/internal/config"
	"github.com/ethanolivertroy/aptgraph/internal/reporter"
	"github.com/ethanolivertroy/aptgraph/internal/scanner"
	"github.com/spf13/cobra"
)

// commandRunner executes package manager queries and the graph tool
var commandRunner clients.Runner = clients.ExecRunner{}

type options struct {
	format  string
	render  string
	verbose bool
	quiet   bool
}

// rootCmd represents the base command
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "aptgraph <config>",
		Short: "Visualize the dependency closure of a system package",
		Long: `aptgraph asks the system package manager (apt-cache depends) for the
direct dependencies of a package, follows them recursively up to max_depth
hops, and writes the result as a Graphviz DOT graph.

Only mandatory relationships (Depends, PreDepends) become edges. Recommends,
Suggests and other relationship kinds are ignored.

The settings document may be JSON, TOML or YAML:
  {
    "graph_tool_path": "/usr/bin/dot",
    "package_name": "curl",
    "output_file": "curl.dot",
    "max_depth": 2,
    "repository_url": "http://archive.ubuntu.com/ubuntu"
  }

Examples:
  # Write curl.dot and print it
  aptgraph config.json

  # Also render curl.png with graph_tool_path
  aptgraph config.json --render png

  # Print an indented tree instead of DOT
  aptgraph config.toml --format text`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "Output format: dot, json, text")
	cmd.Flags().StringVar(&opts.render, "render", "", "Render the DOT output with graph_tool_path to this image format (e.g. png, svg)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Don't print the graph to stdout")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runGraph(cmd *cobra.Command, configPath string, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.OutputFormat = opts.format
	cfg.Quiet = opts.quiet
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if opts.render != "" && cfg.OutputFormat != "dot" {
		return fmt.Errorf("--render requires dot output, got %q", cfg.OutputFormat)
	}

	// Build the graph
	s, err := scanner.New(cfg, scanner.WithRunner(commandRunner), scanner.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize scanner: %w", err)
	}

	g, err := s.Scan(cmd.Context())
	if err != nil {
		return err
	}

	// Render
	rep, err := reporter.Get(cfg.OutputFormat)
	if err != nil {
		return err
	}
	output, err := rep.Report(g, cfg.PackageName)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	// Write output
	if err := os.WriteFile(cfg.OutputFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("Graph written", slog.String("file", cfg.OutputFile))

	if !cfg.Quiet {
		out := string(output)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}

	if opts.render != "" {
		gv := clients.NewGraphvizClient(commandRunner, cfg.GraphToolPath)
		image, err := gv.Render(cmd.Context(), cfg.OutputFile, opts.render)
		if err != nil {
			return err
		}
		logger.Info("Image rendered", slog.String("file", image))
	}

	return nil
}
