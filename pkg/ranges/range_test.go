package ranges

import (
	"errors"
	"testing"

	"github.com/henderiw/contrange/pkg/value"
	"github.com/stretchr/testify/assert"
)

func mustSet(t *testing.T, members ...Range) Set {
	t.Helper()
	s, err := NewSet(members...)
	assert.NoError(t, err)
	return s
}

// setOf builds expected values in table literals, where no *testing.T
// is in scope yet.
func setOf(members ...Range) Set {
	s, err := NewSet(members...)
	if err != nil {
		panic(err)
	}
	return s
}

func TestContains(t *testing.T) {
	cases := map[string]struct {
		r        Range
		v        value.Value
		expected bool
	}{
		"Interior":          {r: IntRange(0, 5), v: value.Int(3), expected: true},
		"InclusiveStart":    {r: IntRange(0, 5), v: value.Int(0), expected: true},
		"ExclusiveEnd":      {r: IntRange(0, 5), v: value.Int(5), expected: false},
		"ExclusiveStart":    {r: NewBounds(value.Int(0), value.Int(5), false, false), v: value.Int(0), expected: false},
		"InclusiveEnd":      {r: NewBounds(value.Int(0), value.Int(5), false, true), v: value.Int(5), expected: true},
		"Outside":           {r: IntRange(0, 5), v: value.Int(7), expected: false},
		"UnboundedBelow":    {r: New(nil, value.Int(5)), v: value.Int(-1000000), expected: true},
		"UnboundedAbove":    {r: New(value.Int(5), nil), v: value.Int(1000000), expected: true},
		"BigRangeAnything":  {r: BigRange, v: value.Float(-1e300), expected: true},
		"SinglePoint":       {r: NewBounds(value.Int(5), value.Int(5), true, true), v: value.Int(5), expected: true},
		"SinglePointMiss":   {r: NewBounds(value.Int(5), value.Int(5), true, true), v: value.Int(6), expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.r.Contains(tc.v)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCompare(t *testing.T) {
	cases := map[string]struct {
		a        Range
		b        Range
		expected int
	}{
		"ByStart":             {a: IntRange(0, 5), b: IntRange(3, 8), expected: -1},
		"Equal":               {a: IntRange(0, 5), b: IntRange(0, 5), expected: 0},
		"InclusiveStartFirst": {a: IntRange(5, 10), b: NewBounds(value.Int(5), value.Int(10), false, false), expected: -1},
		"ByEnd":               {a: IntRange(0, 5), b: IntRange(0, 8), expected: -1},
		"InclusiveEndLast":    {a: IntRange(0, 5), b: NewBounds(value.Int(0), value.Int(5), true, true), expected: -1},
		"UnboundedBelowFirst": {a: New(nil, value.Int(5)), b: IntRange(0, 5), expected: -1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cmp, err := tc.a.Compare(tc.b)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, cmp)

			// ordering totality, the reversed comparison flips sign
			rev, err := tc.b.Compare(tc.a)
			assert.NoError(t, err)
			assert.Equal(t, -tc.expected, rev)
		})
	}
}

func TestBeforeAfter(t *testing.T) {
	r := IntRange(0, 5)

	before, err := r.Before(value.Int(5))
	assert.NoError(t, err)
	assert.True(t, before, "exclusive end admits nothing at 5")

	before, err = r.Before(value.Int(3))
	assert.NoError(t, err)
	assert.False(t, before)

	inc := NewBounds(value.Int(0), value.Int(5), true, true)
	before, err = inc.Before(value.Int(5))
	assert.NoError(t, err)
	assert.False(t, before, "inclusive end reaches 5")

	unbounded := New(value.Int(0), nil)
	before, err = unbounded.Before(value.Int(1000000))
	assert.NoError(t, err)
	assert.False(t, before, "unbounded-above is never before a value")

	after, err := r.After(value.Int(-1))
	assert.NoError(t, err)
	assert.True(t, after)

	after, err = r.After(value.Int(0))
	assert.NoError(t, err)
	assert.False(t, after, "inclusive start reaches 0")

	exc := NewBounds(value.Int(0), value.Int(5), false, false)
	after, err = exc.After(value.Int(0))
	assert.NoError(t, err)
	assert.True(t, after)
}

func TestPredicates(t *testing.T) {
	cases := map[string]struct {
		a          Range
		b          Range
		willJoin   bool
		continues  bool
		intersects bool
	}{
		"Overlap":            {a: IntRange(0, 5), b: IntRange(3, 8), willJoin: true, continues: false, intersects: true},
		"TouchComplementary": {a: IntRange(0, 5), b: IntRange(5, 10), willJoin: true, continues: true, intersects: false},
		"TouchBothExclusive": {a: IntRange(0, 5), b: NewBounds(value.Int(5), value.Int(10), false, false), willJoin: false, continues: false, intersects: false},
		"TouchBothInclusive": {a: NewBounds(value.Int(0), value.Int(5), true, true), b: IntRange(5, 10), willJoin: true, continues: false, intersects: true},
		"Disjoint":           {a: IntRange(0, 5), b: IntRange(10, 20), willJoin: false, continues: false, intersects: false},
		"EqualExclusive":     {a: NewBounds(value.Int(0), value.Int(3), false, false), b: NewBounds(value.Int(0), value.Int(3), false, false), willJoin: true, continues: false, intersects: true},
		"Covered":            {a: IntRange(0, 10), b: IntRange(2, 5), willJoin: true, continues: false, intersects: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, pair := range [][2]Range{{tc.a, tc.b}, {tc.b, tc.a}} {
				join, err := pair[0].WillJoin(pair[1])
				assert.NoError(t, err)
				assert.Equal(t, tc.willJoin, join)

				cont, err := pair[0].Continues(pair[1])
				assert.NoError(t, err)
				assert.Equal(t, tc.continues, cont)

				its, err := pair[0].Intersects(pair[1])
				assert.NoError(t, err)
				assert.Equal(t, tc.intersects, its)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	cases := map[string]struct {
		a        Range
		b        Range
		expected Set
	}{
		"Overlap":         {a: IntRange(0, 5), b: IntRange(3, 8), expected: IntRange(3, 5)},
		"Disjoint":        {a: IntRange(0, 5), b: IntRange(10, 20), expected: Empty},
		"Touching":        {a: IntRange(0, 5), b: IntRange(5, 10), expected: Empty},
		"TouchInclusive":  {a: NewBounds(value.Int(0), value.Int(5), true, true), b: IntRange(5, 10), expected: NewBounds(value.Int(5), value.Int(5), true, true)},
		"Covered":         {a: IntRange(0, 10), b: IntRange(2, 5), expected: IntRange(2, 5)},
		"Same":            {a: IntRange(0, 5), b: IntRange(0, 5), expected: IntRange(0, 5)},
		"UnboundedBoth":   {a: New(nil, value.Int(7)), b: New(value.Int(2), nil), expected: IntRange(2, 7)},
		"BigRange":        {a: BigRange, b: IntRange(2, 7), expected: IntRange(2, 7)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, pair := range [][2]Range{{tc.a, tc.b}, {tc.b, tc.a}} {
				got, err := pair[0].Intersect(pair[1])
				assert.NoError(t, err)
				assert.True(t, Equal(tc.expected, got), "want %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	cases := map[string]struct {
		a        Range
		b        Range
		expected Set
	}{
		"Overlap":  {a: IntRange(0, 5), b: IntRange(3, 8), expected: IntRange(0, 8)},
		"Touching": {a: IntRange(0, 5), b: IntRange(5, 10), expected: IntRange(0, 10)},
		"Covered":  {a: IntRange(0, 10), b: IntRange(2, 5), expected: IntRange(0, 10)},
		"Disjoint": {a: IntRange(0, 5), b: IntRange(10, 20), expected: setOf(IntRange(0, 5), IntRange(10, 20))},
		"TouchBothExclusive": {
			a:        IntRange(0, 5),
			b:        NewBounds(value.Int(5), value.Int(10), false, false),
			expected: setOf(IntRange(0, 5), NewBounds(value.Int(5), value.Int(10), false, false)),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, pair := range [][2]Range{{tc.a, tc.b}, {tc.b, tc.a}} {
				got, err := pair[0].Union(pair[1])
				assert.NoError(t, err)
				assert.True(t, Equal(tc.expected, got), "want %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestSymDiff(t *testing.T) {
	cases := map[string]struct {
		a        Range
		b        Range
		expected Set
	}{
		"PartialOverlap": {
			a:        IntRange(0, 5),
			b:        IntRange(3, 8),
			expected: setOf(IntRange(0, 3), IntRange(5, 8)),
		},
		"Equal": {a: IntRange(0, 5), b: IntRange(0, 5), expected: Empty},
		"EqualExclusive": {
			a:        NewBounds(value.Int(0), value.Int(3), false, false),
			b:        NewBounds(value.Int(0), value.Int(3), false, false),
			expected: Empty,
		},
		"SameLower": {
			a:        IntRange(0, 5),
			b:        IntRange(0, 8),
			expected: IntRange(5, 8),
		},
		"SameLowerFlagged": {
			a:        IntRange(0, 5),
			b:        NewBounds(value.Int(0), value.Int(5), true, true),
			expected: NewBounds(value.Int(5), value.Int(5), true, true),
		},
		"SameUpper": {
			a:        IntRange(0, 8),
			b:        IntRange(3, 8),
			expected: IntRange(0, 3),
		},
		"Disjoint": {
			a:        IntRange(0, 5),
			b:        IntRange(10, 20),
			expected: setOf(IntRange(0, 5), IntRange(10, 20)),
		},
		"Touching": {a: IntRange(0, 5), b: IntRange(5, 10), expected: IntRange(0, 10)},
		"Covered": {
			a:        IntRange(0, 10),
			b:        IntRange(3, 5),
			expected: setOf(IntRange(0, 3), IntRange(5, 10)),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, pair := range [][2]Range{{tc.a, tc.b}, {tc.b, tc.a}} {
				got, err := pair[0].SymDiff(pair[1])
				assert.NoError(t, err)
				assert.True(t, Equal(tc.expected, got), "want %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestComplement(t *testing.T) {
	cases := map[string]struct {
		r        Range
		expected Set
	}{
		"Bounded": {
			r:        IntRange(2, 7),
			expected: setOf(New(nil, value.Int(2)), New(value.Int(7), nil)),
		},
		"UnboundedBelow": {r: New(nil, value.Int(2)), expected: New(value.Int(2), nil)},
		"UnboundedAbove": {r: New(value.Int(7), nil), expected: New(nil, value.Int(7))},
		"BigRange":       {r: BigRange, expected: Empty},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.r.Complement()
			assert.NoError(t, err)
			assert.True(t, Equal(tc.expected, got), "want %s, got %s", tc.expected, got)
		})
	}
}

func TestDiff(t *testing.T) {
	cases := map[string]struct {
		a        Range
		b        Range
		expected Set
	}{
		"Interior": {
			a:        IntRange(0, 10),
			b:        IntRange(3, 5),
			expected: setOf(IntRange(0, 3), IntRange(5, 10)),
		},
		"Overlap":  {a: IntRange(0, 5), b: IntRange(3, 8), expected: IntRange(0, 3)},
		"Disjoint": {a: IntRange(0, 5), b: IntRange(10, 20), expected: IntRange(0, 5)},
		"Covered":  {a: IntRange(3, 5), b: IntRange(0, 10), expected: Empty},
		"Same":     {a: IntRange(0, 5), b: IntRange(0, 5), expected: Empty},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.a.Diff(tc.b)
			assert.NoError(t, err)
			assert.True(t, Equal(tc.expected, got), "want %s, got %s", tc.expected, got)

			// difference identity: a - b == a & ~b
			cb, err := tc.b.Complement()
			assert.NoError(t, err)
			alt, err := cb.Intersect(tc.a)
			assert.NoError(t, err)
			assert.True(t, Equal(got, alt), "want %s, got %s", got, alt)
		})
	}
}

func TestLength(t *testing.T) {
	l, err := IntRange(0, 5).Length()
	assert.NoError(t, err)
	assert.Equal(t, value.Int(5), l)

	l, err = FloatRange(1, 2.5).Length()
	assert.NoError(t, err)
	assert.Equal(t, value.Float(1.5), l)

	l, err = New(nil, value.Int(5)).Length()
	assert.NoError(t, err)
	assert.Equal(t, value.Inf, l)

	l, err = New(value.Int(5), nil).Length()
	assert.NoError(t, err)
	assert.Equal(t, value.Inf, l)

	l, err = Empty.Length()
	assert.NoError(t, err)
	assert.Equal(t, value.Int(0), l)

	_, err = New(value.Str("a"), value.Str("b")).Length()
	assert.ErrorIs(t, err, value.ErrNotSubtractable)
}

func TestHash(t *testing.T) {
	a := IntRange(0, 5)
	b := New(value.Int(0), value.Int(5))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := NewBounds(value.Int(0), value.Int(5), true, true)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestBounds(t *testing.T) {
	r := NewBounds(value.Int(0), value.Int(5), true, true)
	bounds := r.Bounds()
	assert.Len(t, bounds, 2)
	assert.Equal(t, Bound{Value: value.Int(0), Inclusive: true}, bounds[0])
	assert.Equal(t, Bound{Value: value.Int(5), Inclusive: true}, bounds[1])
	assert.Equal(t, bounds[0], r.Lower())
	assert.Equal(t, bounds[1], r.Upper())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[0, 5)", IntRange(0, 5).String())
	assert.Equal(t, "(0, 5]", NewBounds(value.Int(0), value.Int(5), false, true).String())
	assert.Equal(t, "[-inf, inf)", BigRange.String())
	assert.Equal(t, "{}", Empty.String())
}

type bogus struct {
	Set
}

func TestUnsupportedOperand(t *testing.T) {
	r := IntRange(0, 5)
	s := mustSet(t, IntRange(0, 5), IntRange(10, 20)).(RangeSet)

	for _, op := range []func(Set) (Set, error){
		r.Union, r.Intersect, r.SymDiff, r.Diff,
		s.Union, s.Intersect, s.SymDiff, s.Diff,
		Empty.Union, Empty.Intersect, Empty.SymDiff, Empty.Diff,
	} {
		_, err := op(bogus{})
		assert.True(t, errors.Is(err, ErrUnsupportedOperand), "expected unsupported operand, got %v", err)
	}
}

func TestIncomparableDomains(t *testing.T) {
	a := IntRange(0, 5)
	b := New(value.Str("a"), value.Str("z"))

	_, err := a.Compare(b)
	assert.ErrorIs(t, err, value.ErrIncomparable)

	_, err = a.Union(b)
	assert.ErrorIs(t, err, value.ErrIncomparable)

	_, err = a.Contains(value.Str("a"))
	assert.ErrorIs(t, err, value.ErrIncomparable)
}

func TestProperties(t *testing.T) {
	rs := []Range{
		IntRange(0, 5),
		NewBounds(value.Int(0), value.Int(5), false, true),
		NewBounds(value.Int(0), value.Int(3), false, false),
		IntRange(3, 8),
		IntRange(10, 20),
		New(nil, value.Int(2)),
		New(value.Int(7), nil),
		NewBounds(value.Int(5), value.Int(5), true, true),
		BigRange,
	}

	for _, a := range rs {
		// self-inverse
		x, err := a.SymDiff(a)
		assert.NoError(t, err)
		assert.True(t, x.IsEmpty(), "%s ^ %s should be empty, got %s", a, a, x)

		// double complement is identity
		c, err := a.Complement()
		assert.NoError(t, err)
		cc, err := c.Complement()
		assert.NoError(t, err)
		assert.True(t, Equal(a, cc), "~~%s should be %s, got %s", a, a, cc)

		for _, b := range rs {
			// commutativity
			ab, err := a.Union(b)
			assert.NoError(t, err)
			ba, err := b.Union(a)
			assert.NoError(t, err)
			assert.True(t, Equal(ab, ba), "%s | %s != %s | %s", a, b, b, a)

			ab, err = a.Intersect(b)
			assert.NoError(t, err)
			ba, err = b.Intersect(a)
			assert.NoError(t, err)
			assert.True(t, Equal(ab, ba), "%s & %s != %s & %s", a, b, b, a)

			ab, err = a.SymDiff(b)
			assert.NoError(t, err)
			ba, err = b.SymDiff(a)
			assert.NoError(t, err)
			assert.True(t, Equal(ab, ba), "%s ^ %s != %s ^ %s", a, b, b, a)

			// De Morgan
			u, err := a.Union(b)
			assert.NoError(t, err)
			lhs, err := u.Complement()
			assert.NoError(t, err)
			ca, err := a.Complement()
			assert.NoError(t, err)
			cb, err := b.Complement()
			assert.NoError(t, err)
			rhs, err := ca.Intersect(cb)
			assert.NoError(t, err)
			assert.True(t, Equal(lhs, rhs), "~(%s | %s) != ~%s & ~%s", a, b, a, b)

			i, err := a.Intersect(b)
			assert.NoError(t, err)
			lhs, err = i.Complement()
			assert.NoError(t, err)
			rhs, err = ca.Union(cb)
			assert.NoError(t, err)
			assert.True(t, Equal(lhs, rhs), "~(%s & %s) != ~%s | ~%s", a, b, a, b)

			// difference identity
			d, err := a.Diff(b)
			assert.NoError(t, err)
			alt, err := cb.Intersect(a)
			assert.NoError(t, err)
			assert.True(t, Equal(d, alt), "%s - %s != %s & ~%s", a, b, a, b)
		}
	}
}
