package fca

import (
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

// Verify reports whether left and right contain the same concepts, compared
// as sets of (extent, intent) pairs. Order and multiplicity are ignored.
func Verify(left, right []Concept) bool {
	l := keySet(left)
	r := keySet(right)
	if len(l) != len(r) {
		return false
	}
	for k := range l {
		if _, ok := r[k]; !ok {
			return false
		}
	}
	return true
}

func keySet(concepts []Concept) map[string]struct{} {
	keys := make(map[string]struct{}, len(concepts))
	for _, c := range concepts {
		keys[c.Key()] = struct{}{}
	}
	return keys
}

// Report is the outcome of comparing two enumerations.
type Report struct {
	Left       string `json:"left" yaml:"left"`
	Right      string `json:"right" yaml:"right"`
	LeftCount  int    `json:"left_count" yaml:"left_count"`
	RightCount int    `json:"right_count" yaml:"right_count"`
	Equal      bool   `json:"equal" yaml:"equal"`

	// Missing holds concepts of Left absent from Right, Extra the reverse.
	Missing []Concept `json:"-" yaml:"-"`
	Extra   []Concept `json:"-" yaml:"-"`
}

// Check compares two named enumerations. Counts are the raw list lengths.
func Check(leftName string, left []Concept, rightName string, right []Concept) Report {
	r := Report{
		Left:       leftName,
		Right:      rightName,
		LeftCount:  len(left),
		RightCount: len(right),
		Equal:      Verify(left, right),
	}
	if !r.Equal {
		r.Missing = difference(left, right)
		r.Extra = difference(right, left)
	}
	return r
}

func difference(a, b []Concept) []Concept {
	keys := keySet(b)
	var out []Concept
	for _, c := range a {
		if _, ok := keys[c.Key()]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// Err returns a *errors.ConsistencyViolation when the enumerations disagree
// and nil otherwise.
func (r Report) Err() error {
	if r.Equal {
		return nil
	}
	return errors.NewConsistencyViolation(r.Left, r.LeftCount, r.Right, r.RightCount)
}
