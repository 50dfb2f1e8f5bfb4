package fca

// Enumerator produces the complete list of formal concepts of a context.
type Enumerator interface {
	// Name identifies the algorithm in logs and consistency reports.
	Name() string
	// Enumerate returns every concept exactly once.
	Enumerate() ([]Concept, error)
}

var (
	_ Enumerator = (*BruteForceEnumerator)(nil)
	_ Enumerator = (*NextClosureEnumerator)(nil)
)
