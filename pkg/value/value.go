package value

import (
	"errors"
	"fmt"
	"strconv"
)

// Value is a point in a totally ordered domain. Implementations only
// need to order values of their own kind; the unbounded sentinels are
// resolved by the package-level Compare before a domain value ever
// sees them.
type Value interface {
	Compare(other Value) (int, error)
	String() string
}

// Subtractable is implemented by domains that can measure the distance
// between two of their values. It is required for range lengths.
type Subtractable interface {
	Value
	Sub(other Value) (Value, error)
}

// Adder is implemented by domains whose distances can be summed. It is
// required for the total length of a non-contiguous range set.
type Adder interface {
	Value
	Add(other Value) (Value, error)
}

var (
	ErrIncomparable    = errors.New("values are not comparable")
	ErrNotSubtractable = errors.New("value does not support subtraction")
	ErrNotAddable      = errors.New("value does not support addition")
)

type inf struct {
	neg bool
}

var (
	// Inf sorts above every finite value and is equal only to itself.
	Inf Value = inf{}
	// NegInf sorts below every finite value and is equal only to itself.
	NegInf Value = inf{neg: true}
)

func (i inf) Compare(other Value) (int, error) {
	if o, ok := other.(inf); ok {
		switch {
		case i.neg == o.neg:
			return 0, nil
		case i.neg:
			return -1, nil
		default:
			return 1, nil
		}
	}
	if i.neg {
		return -1, nil
	}
	return 1, nil
}

func (i inf) String() string {
	if i.neg {
		return "-inf"
	}
	return "inf"
}

// IsInf reports whether v is one of the two unbounded sentinels.
func IsInf(v Value) bool {
	_, ok := v.(inf)
	return ok
}

// Compare orders a against b, resolving the unbounded sentinels before
// delegating to the domain's own ordering.
func Compare(a, b Value) (int, error) {
	if ia, ok := a.(inf); ok {
		return ia.Compare(b)
	}
	if ib, ok := b.(inf); ok {
		cmp, err := ib.Compare(a)
		return -cmp, err
	}
	return a.Compare(b)
}

// Int is the integer domain.
type Int int64

func (v Int) Compare(other Value) (int, error) {
	o, ok := other.(Int)
	if !ok {
		return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, v, other)
	}
	switch {
	case v < o:
		return -1, nil
	case v > o:
		return 1, nil
	}
	return 0, nil
}

func (v Int) Sub(other Value) (Value, error) {
	o, ok := other.(Int)
	if !ok {
		return nil, fmt.Errorf("%w: %T and %T", ErrNotSubtractable, v, other)
	}
	return v - o, nil
}

func (v Int) Add(other Value) (Value, error) {
	o, ok := other.(Int)
	if !ok {
		return nil, fmt.Errorf("%w: %T and %T", ErrNotAddable, v, other)
	}
	return v + o, nil
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Float is the floating point domain.
type Float float64

func (v Float) Compare(other Value) (int, error) {
	o, ok := other.(Float)
	if !ok {
		return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, v, other)
	}
	switch {
	case v < o:
		return -1, nil
	case v > o:
		return 1, nil
	}
	return 0, nil
}

func (v Float) Sub(other Value) (Value, error) {
	o, ok := other.(Float)
	if !ok {
		return nil, fmt.Errorf("%w: %T and %T", ErrNotSubtractable, v, other)
	}
	return v - o, nil
}

func (v Float) Add(other Value) (Value, error) {
	o, ok := other.(Float)
	if !ok {
		return nil, fmt.Errorf("%w: %T and %T", ErrNotAddable, v, other)
	}
	return v + o, nil
}

func (v Float) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// Str is the string domain. It is ordered but not subtractable, so
// ranges over it have no length.
type Str string

func (v Str) Compare(other Value) (int, error) {
	o, ok := other.(Str)
	if !ok {
		return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, v, other)
	}
	switch {
	case v < o:
		return -1, nil
	case v > o:
		return 1, nil
	}
	return 0, nil
}

func (v Str) String() string {
	return string(v)
}
