// Package gofca provides Formal Concept Analysis for Go: formal contexts,
// the Galois connection between object and attribute sets, concept
// enumeration and the concept lattice.
//
// gofca is built for tooling and services that need to mine the closed
// itemsets of a binary relation and want a second, independent algorithm to
// cross-check the result.
//
// # Features
//
//   - Index sets backed by Roaring bitmaps
//   - Two enumerators: exhaustive brute force and Ganter's Next-Closure
//   - Consistency check between the enumerators, surfaced as a typed warning
//   - CPU-parallel brute force with deterministic output order
//   - Concept lattice as a gonum graph, with DOT export
//   - Terminal tables and PNG/SVG charts
//   - Structured errors (cockroachdb/errors) and logging (slog or zerolog)
//
// # Installation
//
//	go get github.com/YuminosukeSato/gofca
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gofca/datasets"
//	    "github.com/YuminosukeSato/gofca/fca"
//	)
//
//	func main() {
//	    c := datasets.Animals()
//
//	    a, err := fca.Analyze(c)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, concept := range a.Concepts {
//	        fmt.Println(c.Label(concept))
//	    }
//	}
//
// # Packages
//
//   - fca: formal contexts, closure operators, enumerators, Analyze
//   - lattice: covering relation, levels, meet and join, DOT export
//   - datasets: built-in contexts and the YAML context file format
//   - report: lipgloss tables and gonum/plot charts
//   - core/indexset: immutable index sets
//   - core/parallel: chunked fan-out used by brute force
//   - pkg/errors: typed errors and warnings
//   - pkg/log: logger interface with slog and zerolog backends
//   - cmd/fca: command line interface
//
// # Verification
//
// Analyze always runs both enumerators. When their concept sets differ the
// analysis carries a Report with Equal set to false and a
// *errors.ConsistencyViolation is passed to errors.Warn:
//
//	errors.SetWarningHandler(func(w error) {
//	    var v *errors.ConsistencyViolation
//	    if errors.As(w, &v) {
//	        alert(v)
//	    }
//	})
//
// WithStrictConsistency turns the violation into a returned error as well.
//
// # Performance
//
// Brute force tests all 2^|G| object subsets and is refused above 24 objects
// unless WithMaxBruteForceObjects says otherwise (hard limit 62). Subsets are
// split across CPU cores once there are more than 4096 of them.
// Next-Closure computes at most |G| closures per concept.
//
// # License
//
// gofca is released under the MIT License.
package gofca
