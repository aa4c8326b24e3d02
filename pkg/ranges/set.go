package ranges

import (
	"errors"
	"fmt"

	"github.com/henderiw/contrange/pkg/value"
)

// Set is a possibly non-contiguous subset of an ordered domain. It is
// implemented by Range, RangeSet and the Empty singleton. Every
// operator reduces its result: no members yields Empty, a single
// member yields a bare Range, two or more yield a RangeSet.
type Set interface {
	Union(other Set) (Set, error)
	Intersect(other Set) (Set, error)
	SymDiff(other Set) (Set, error)
	Complement() (Set, error)
	Diff(other Set) (Set, error)

	Contains(v value.Value) (bool, error)
	Length() (value.Value, error)
	// Ranges lists the members in sorted order. It is nil for Empty
	// and has a single member for a bare Range.
	Ranges() []Range
	IsEmpty() bool
	String() string
}

var ErrUnsupportedOperand = errors.New("operation not supported for this operand")

func supported(s Set) bool {
	switch s.(type) {
	case Range, RangeSet, empty:
		return true
	}
	return false
}

func unsupported(s Set) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedOperand, s)
}

// Empty is the set with no points. Operations that would produce no
// points return it rather than failing.
var Empty Set = empty{}

type empty struct{}

func (empty) Union(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	return other, nil
}

func (empty) Intersect(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	return Empty, nil
}

func (empty) SymDiff(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	return other, nil
}

func (empty) Complement() (Set, error) {
	return BigRange, nil
}

func (empty) Diff(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	return Empty, nil
}

func (empty) Contains(v value.Value) (bool, error) {
	return false, nil
}

// Length of the empty set is zero by convention.
func (empty) Length() (value.Value, error) {
	return value.Int(0), nil
}

func (empty) Ranges() []Range {
	return nil
}

func (empty) IsEmpty() bool {
	return true
}

func (empty) String() string {
	return "{}"
}

// Equal reports whether a and b cover exactly the same points, i.e.
// their canonical members are pairwise equal. A bare Range and a
// single-member set compare equal.
func Equal(a, b Set) bool {
	ra, rb := a.Ranges(), b.Ranges()
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if !ra[i].Equal(rb[i]) {
			return false
		}
	}
	return true
}
