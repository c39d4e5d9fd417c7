package parsers

import "github.com/ethanolivertroy/aptgraph/internal/models"

// Parser is the interface for package manager output parsers
type Parser interface {
	// Parse extracts the direct dependencies of pkg from the query output
	Parse(pkg string, output []byte) []models.Dependency
}
