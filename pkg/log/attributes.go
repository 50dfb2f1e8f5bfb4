// Package log defines standard attribute keys for formal concept analysis.
//
// Using these keys across the fca, lattice and report packages keeps log
// records filterable: every enumeration run carries the algorithm name, the
// context shape and the resulting concept count under the same keys.

package log

// Operation context
const (
	// ComponentKey identifies which package is logging.
	// Examples: "fca", "lattice", "report", "cli"
	ComponentKey = "fca.component"

	// OperationKey names the operation being performed.
	// Standard values: see the Operation* constants below.
	OperationKey = "fca.operation"

	// AlgorithmKey names the concept enumeration algorithm.
	AlgorithmKey = "fca.algorithm"

	// ContextNameKey is a human readable name of the formal context,
	// e.g. the dataset name or the file it was loaded from.
	ContextNameKey = "context.name"
)

// Context shape
const (
	// ObjectsKey is |G|.
	ObjectsKey = "context.objects"

	// AttributesKey is |M|.
	AttributesKey = "context.attributes"

	// DensityKey is |I| / (|G|·|M|).
	DensityKey = "context.density"

	// SubsetsKey is the number of object subsets the brute-force enumerator visits.
	SubsetsKey = "context.subsets"
)

// Results
const (
	// ConceptsKey is the number of concepts produced.
	ConceptsKey = "concepts.count"

	// ExtentKey and IntentKey carry a formatted index set.
	ExtentKey = "concept.extent"
	IntentKey = "concept.intent"

	// StepKey counts Next-Closure transitions.
	StepKey = "nextclosure.step"

	// ConsistentKey reports whether both enumerators agreed.
	ConsistentKey = "verify.consistent"

	// EdgesKey is the number of covering pairs in the concept lattice.
	EdgesKey = "lattice.edges"

	// WorkersKey is the number of goroutines used by a chunked enumeration.
	WorkersKey = "perf.workers"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// ErrorDetailKey carries the structured fields of a typed error.
	ErrorDetailKey = "error.detail"

	// StacktraceKey contains stack trace information for debugging.
	StacktraceKey = "error.stacktrace"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationBuild        = "build_context"
	OperationEnumerate    = "enumerate"
	OperationVerify       = "verify"
	OperationAnalyze      = "analyze"
	OperationBuildLattice = "build_lattice"
	OperationRender       = "render"

	AlgorithmBruteForce  = "brute-force"
	AlgorithmNextClosure = "next-closure"

	ErrorInvalidContext       = "INVALID_CONTEXT"
	ErrorConsistencyViolation = "CONSISTENCY_VIOLATION"
	ErrorConceptInvariant     = "CONCEPT_INVARIANT"
)
