// Package fca implements Formal Concept Analysis over a binary object-attribute
// relation.
//
// A FormalContext (G, M, I) holds an ordered list of object labels G, an
// ordered list of attribute labels M and an immutable incidence relation
// I ⊆ G × M. Objects and attributes are identified by index; labels are for
// presentation only. Subsets of G and M are indexset.Set values.
//
// # Galois connection
//
//	Up(A)   = {m ∈ M | ∀g ∈ A: (g, m) ∈ I}    Up(∅) = M
//	Down(B) = {g ∈ G | ∀m ∈ B: (g, m) ∈ I}    Down(∅) = G
//	Closure(A) = Down(Up(A))
//
// A formal concept is a pair (A, B) with Up(A) = B and Down(B) = A. Every
// closed object set A = Closure(A) is the extent of exactly one concept,
// (A, Up(A)).
//
// # Enumerators
//
// Two independent enumerators produce the full concept list:
//
//   - BruteForceEnumerator tests every one of the 2^|G| object subsets. It is
//     exponential and serves as an oracle for small contexts.
//   - NextClosureEnumerator implements Ganter's Next-Closure algorithm, which
//     visits exactly the closed sets in lectic order starting from Closure(∅).
//
// Verify and Check compare both outputs as sets of (extent, intent) pairs.
// Analyze runs the whole pipeline: both enumerators, the consistency check and
// summary statistics.
//
// # Quick start
//
//	ctx, err := fca.NewFormalContext(
//	    []string{"Cat", "Dog"},
//	    []string{"Mammal", "Has_Fur", "Can_Swim"},
//	    [][]bool{
//	        {true, true, false},
//	        {true, true, true},
//	    },
//	)
//	if err != nil {
//	    return err
//	}
//	analysis, err := fca.Analyze(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, c := range analysis.Concepts {
//	    fmt.Println(ctx.Label(c))
//	}
//
// A FormalContext is read-only after construction, so enumerators may run on
// separate goroutines against the same context (see WithConcurrentRun).
package fca
