package models

import "time"

// DefaultMaxDepth is used when the settings document omits max_depth
const DefaultMaxDepth = 1

// Config holds configuration for a graph run
type Config struct {
	// Root package to start the traversal from
	PackageName string `validate:"required"`

	// Output settings
	OutputFile   string `validate:"required"`
	OutputFormat string `validate:"oneof=dot json text"` // "dot", "json", "text"
	Quiet        bool   // Don't echo the rendered graph to stdout

	// Traversal settings
	MaxDepth int `validate:"min=0"`

	// Query settings
	QueryCommand     []string `validate:"min=1,dive,required"` // argv prefix, package name is appended
	DependencyLabels []string `validate:"min=1,dive,required"` // Mandatory relationship labels
	QueryTimeout     time.Duration

	// Passed through, not used by the traversal
	GraphToolPath string
	RepositoryURL string `validate:"omitempty,url"`
}

// DefaultQueryCommand is the package manager query used when none is configured
func DefaultQueryCommand() []string {
	return []string{"apt-cache", "depends"}
}

// DefaultDependencyLabels are the relationship labels treated as mandatory.
// Only the English and Russian apt locales are known here; output in any
// other locale loses its edges unless the labels are configured.
func DefaultDependencyLabels() []string {
	return []string{"Depends:", "Зависит:", "PreDepends:"}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputFormat:     "dot",
		MaxDepth:         DefaultMaxDepth,
		QueryCommand:     DefaultQueryCommand(),
		DependencyLabels: DefaultDependencyLabels(),
	}
}
