package parsers

import (
	"strings"

	"github.com/ethanolivertroy/aptgraph/internal/models"
)

// AptDependsParser parses `apt-cache depends` output
type AptDependsParser struct {
	Labels []string // Mandatory relationship labels, e.g. "Depends:"
}

// NewAptDependsParser creates a parser for the given labels, falling back to
// the default label set when none are given.
func NewAptDependsParser(labels []string) *AptDependsParser {
	if len(labels) == 0 {
		labels = models.DefaultDependencyLabels()
	}
	return &AptDependsParser{Labels: labels}
}

// Parse extracts the mandatory dependencies of pkg. Lines under any other
// label (Recommends, Suggests, Conflicts...) are ignored, as are empty names
// and self references.
func (p *AptDependsParser) Parse(pkg string, output []byte) []models.Dependency {
	var deps []models.Dependency

	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)

		// Or-group alternatives ("|Depends: x") don't start with a label and are skipped
		label, ok := p.match(line)
		if !ok {
			continue
		}

		_, rest, _ := strings.Cut(line, ":")
		rest = strings.TrimSpace(rest)

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		if name == "" || name == pkg {
			continue
		}

		deps = append(deps, models.Dependency{
			Name:       name,
			Relation:   strings.TrimSuffix(label, ":"),
			Constraint: parseConstraint(strings.TrimSpace(strings.TrimPrefix(rest, name))),
		})
	}

	return deps
}

func (p *AptDependsParser) match(line string) (string, bool) {
	for _, label := range p.Labels {
		if strings.HasPrefix(line, label) {
			return label, true
		}
	}
	return "", false
}

// parseConstraint strips the parentheses around a version annotation like "(>= 1.2)"
func parseConstraint(s string) string {
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	return strings.TrimSpace(s)
}
