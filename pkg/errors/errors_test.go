package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewInvalidContextError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "without cell",
			err:     NewInvalidContextError("NewFormalContext", "duplicate object label \"Cat\""),
			wantMsg: "gofca: NewFormalContext: invalid context: duplicate object label \"Cat\"",
		},
		{
			name:    "with cell",
			err:     NewInvalidCellError("NewFormalContextFromMatrix", "entry 0.5 is not boolean", 1, 3),
			wantMsg: "gofca: NewFormalContextFromMatrix: invalid context: entry 0.5 is not boolean at (1, 3)",
		},
		{
			name:    "with cause",
			err:     WrapInvalidContext("NewFormalContext", "ragged incidence", NewDimensionError("row 2", 5, 4, 1)),
			wantMsg: "gofca: NewFormalContext: invalid context: ragged incidence: gofca: row 2: dimension mismatch on axis 1 (attributes). Expected 5, got 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.wantMsg)
			}

			// センチネルとの比較はcockroachdb/errorsでも標準errorsでも成立する
			if !Is(tt.err, ErrInvalidContext) {
				t.Error("Expected Is(err, ErrInvalidContext) to be true")
			}
			if !stderrors.Is(tt.err, ErrInvalidContext) {
				t.Error("Expected stdlib errors.Is to match ErrInvalidContext")
			}

			var ctxErr *InvalidContextError
			if !As(tt.err, &ctxErr) {
				t.Error("Error should be castable to *InvalidContextError")
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", tt.err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}
		})
	}
}

func TestInvalidContextErrorUnwrapsCause(t *testing.T) {
	err := WrapInvalidContext("NewFormalContext", "ragged incidence", NewDimensionError("row 0", 3, 2, 1))

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatal("Expected cause to be reachable as *DimensionError")
	}
	if dimErr.Expected != 3 || dimErr.Got != 2 || dimErr.Axis != 1 {
		t.Errorf("unexpected DimensionError %+v", dimErr)
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("NewFormalContext", 5, 4, 0)

	want := "gofca: NewFormalContext: dimension mismatch on axis 0 (objects). Expected 5, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
	if Is(err, ErrInvalidContext) {
		t.Error("A bare DimensionError is not an InvalidContext")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("objects", "index out of range", 7)

	want := "gofca: validation failed for parameter 'objects': index out of range (got: 7)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("Verify", "nil concept list")
	if err.Error() != "gofca: Verify: nil concept list" {
		t.Errorf("Error() = %v", err.Error())
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestNewConceptInvariantError(t *testing.T) {
	err := NewConceptInvariantError("next-closure", stringer("{0, 1}"), stringer("{2}"))

	want := "gofca: next-closure: ({0, 1}, {2}) is not a formal concept"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var invErr *ConceptInvariantError
	if !As(err, &invErr) {
		t.Fatal("Error should be castable to *ConceptInvariantError")
	}
	if invErr.Algorithm != "next-closure" {
		t.Errorf("Algorithm = %q", invErr.Algorithm)
	}
}

func TestConsistencyViolation(t *testing.T) {
	w := NewConsistencyViolation("brute-force", 13, "next-closure", 12)

	want := "gofca: concept sets disagree: brute-force produced 13 concepts, next-closure produced 12"
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}

	var cv *ConsistencyViolation
	if !As(Wrap(w, "verify"), &cv) {
		t.Error("Warning should be castable to *ConsistencyViolation through a wrap")
	}
}

func TestWarnUsesHandlers(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	w := NewConsistencyViolation("a", 1, "b", 2)
	Warn(w)
	if len(got) != 1 || got[0] != w {
		t.Fatalf("warning handler received %v", got)
	}

	var zl []error
	SetZerologWarnFunc(func(w error) { zl = append(zl, w) })
	Warn(w)
	SetZerologWarnFunc(nil)

	if len(zl) != 1 {
		t.Errorf("zerolog warn func should take precedence, got %d calls", len(zl))
	}
	if len(got) != 1 {
		t.Errorf("fallback handler should not be called while zerolog func is set, got %d calls", len(got))
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "in lattice.Build")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in lattice.Build") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidContext, "in %s: %d objects", "Enumerate", 70)

	if !Is(wrapped, ErrInvalidContext) {
		t.Error("Expected Is(wrapped, ErrInvalidContext) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in Enumerate: 70 objects") {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}
