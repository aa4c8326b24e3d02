package ranges

import (
	"fmt"
	"sort"
	"strings"

	"github.com/henderiw/contrange/pkg/value"
)

// RangeSet is a canonical, sorted sequence of pairwise disjoint,
// non-mergeable ranges. It always holds two or more members; smaller
// results reduce to a bare Range or Empty.
type RangeSet struct {
	members []Range
}

// NewSet merges the given ranges into canonical form and reduces the
// result. The inputs may overlap and be out of order.
func NewSet(members ...Range) (Set, error) {
	merged, err := merge(members)
	if err != nil {
		return nil, err
	}
	return reduce(merged), nil
}

func reduce(members []Range) Set {
	switch len(members) {
	case 0:
		return Empty
	case 1:
		return members[0]
	}
	return RangeSet{members: members}
}

// merge sorts by comparison key and folds neighbours together
// whenever their union is contiguous.
func merge(members []Range) ([]Range, error) {
	// always copy, to avoid aliasing slice memory in the caller
	rr := append([]Range(nil), members...)
	var sortErr error
	sort.Slice(rr, func(i, j int) bool {
		cmp, err := rr[i].Compare(rr[j])
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return cmp < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}
	if len(rr) < 2 {
		return rr, nil
	}
	out := make([]Range, 1, len(rr))
	out[0] = rr[0]
	for _, r := range rr[1:] {
		prev := &out[len(out)-1]
		join, err := prev.willJoin(r)
		if err != nil {
			return nil, err
		}
		if !join {
			out = append(out, r)
			continue
		}
		u, err := unionRanges(*prev, r)
		if err != nil {
			return nil, err
		}
		// willJoin guarantees a contiguous union
		*prev = u.(Range)
	}
	return out, nil
}

// Ranges returns a copy of the members in sorted order.
func (s RangeSet) Ranges() []Range {
	return append([]Range(nil), s.members...)
}

func (s RangeSet) IsEmpty() bool {
	return false
}

func (s RangeSet) Union(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	return NewSet(append(s.Ranges(), other.Ranges()...)...)
}

func (s RangeSet) Intersect(other Set) (Set, error) {
	switch o := other.(type) {
	case Range:
		return s.intersectRange(o)
	case RangeSet:
		var parts []Range
		for _, m := range o.members {
			part, err := s.intersectRange(m)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part.Ranges()...)
		}
		return NewSet(parts...)
	case empty:
		return Empty, nil
	default:
		return nil, unsupported(other)
	}
}

func (s RangeSet) intersectRange(r Range) (Set, error) {
	var parts []Range
	for _, m := range s.members {
		// members are sorted, nothing after m can overlap once every
		// point of r lies below m
		done, err := r.Before(m.start)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		x, err := intersectRanges(m, r)
		if err != nil {
			return nil, err
		}
		parts = append(parts, x.Ranges()...)
	}
	return NewSet(parts...)
}

// SymDiff computes the points covered by exactly one operand as the
// union minus the intersection.
func (s RangeSet) SymDiff(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	u, err := s.Union(other)
	if err != nil {
		return nil, err
	}
	x, err := s.Intersect(other)
	if err != nil {
		return nil, err
	}
	return u.Diff(x)
}

// Complement starts from the universal range and subtracts each
// member in turn.
func (s RangeSet) Complement() (Set, error) {
	res := Set(BigRange)
	for _, m := range s.members {
		var err error
		res, err = res.Diff(m)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Diff computes s minus other as complement(other) intersected with
// s, the same identity the Range level uses.
func (s RangeSet) Diff(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	c, err := other.Complement()
	if err != nil {
		return nil, err
	}
	return c.Intersect(s)
}

func (s RangeSet) Contains(v value.Value) (bool, error) {
	for _, m := range s.members {
		ok, err := m.Contains(v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		after, err := m.After(v)
		if err != nil {
			return false, err
		}
		if after {
			break
		}
	}
	return false, nil
}

// Overlaps reports whether r strictly overlaps any member.
func (s RangeSet) Overlaps(r Range) (bool, error) {
	for _, m := range s.members {
		ok, err := m.Intersects(r)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		done, err := r.Before(m.start)
		if err != nil {
			return false, err
		}
		if done {
			break
		}
	}
	return false, nil
}

// Length is the sum of the member lengths, or the unbounded sentinel
// when any member is unbounded.
func (s RangeSet) Length() (value.Value, error) {
	total, err := s.members[0].Length()
	if err != nil {
		return nil, err
	}
	for _, m := range s.members[1:] {
		l, err := m.Length()
		if err != nil {
			return nil, err
		}
		if total == value.Inf || l == value.Inf {
			total = value.Inf
			continue
		}
		a, ok := total.(value.Adder)
		if !ok {
			return nil, fmt.Errorf("%w: %T", value.ErrNotAddable, total)
		}
		total, err = a.Add(l)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func (s RangeSet) String() string {
	parts := make([]string, 0, len(s.members))
	for _, m := range s.members {
		parts = append(parts, m.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
