package models

// Dependency represents a single direct dependency reported by the package manager
type Dependency struct {
	Name       string
	Relation   string // Label the line was reported under, e.g. "Depends"
	Constraint string // Version annotation without parentheses, e.g. ">= 1.2"
}

// String returns a human-readable representation
func (d Dependency) String() string {
	if d.Constraint == "" {
		return d.Name
	}
	return d.Name + " (" + d.Constraint + ")"
}
