package ranges

import (
	"fmt"
	"hash/fnv"

	"github.com/henderiw/contrange/pkg/value"
)

// Range is an immutable interval with independently inclusive or
// exclusive bounds. The zero inclusivity convention is half-open,
// [start, end). Ranges order by the key (start, !startInc, end,
// endInc): at equal start the inclusive lower bound admits the tie
// point, so it sorts first.
type Range struct {
	start    value.Value
	end      value.Value
	startInc bool
	endInc   bool
	hash     uint64
}

// BigRange spans every finite value of any domain.
var BigRange = New(nil, nil)

// New returns the half-open range [start, end). A nil start or end
// leaves that side unbounded.
func New(start, end value.Value) Range {
	return NewBounds(start, end, true, false)
}

// NewBounds returns a range with explicit bound inclusivity. A nil
// start or end leaves that side unbounded.
func NewBounds(start, end value.Value, startInc, endInc bool) Range {
	if start == nil {
		start = value.NegInf
	}
	if end == nil {
		end = value.Inf
	}
	r := Range{
		start:    start,
		end:      end,
		startInc: startInc,
		endInc:   endInc,
	}
	r.hash = hashBounds(start, end, startInc, endInc)
	return r
}

// hashBounds digests the comparison key so that equal ranges always
// hash equally.
func hashBounds(start, end value.Value, startInc, endInc bool) uint64 {
	h := fnv.New64a()
	h.Write([]byte(start.String()))
	h.Write([]byte{0, incByte(startInc)})
	h.Write([]byte(end.String()))
	h.Write([]byte{0, incByte(endInc)})
	return h.Sum64()
}

func incByte(inc bool) byte {
	if inc {
		return 1
	}
	return 0
}

func (r Range) Start() value.Value { return r.start }
func (r Range) End() value.Value   { return r.end }
func (r Range) StartInc() bool     { return r.startInc }
func (r Range) EndInc() bool       { return r.endInc }

// Bound is one endpoint record of a range.
type Bound struct {
	Value     value.Value
	Inclusive bool
}

// Lower returns the start endpoint record.
func (r Range) Lower() Bound {
	return Bound{Value: r.start, Inclusive: r.startInc}
}

// Upper returns the end endpoint record.
func (r Range) Upper() Bound {
	return Bound{Value: r.end, Inclusive: r.endInc}
}

// Bounds returns the two endpoint records, lower first.
func (r Range) Bounds() []Bound {
	return []Bound{r.Lower(), r.Upper()}
}

// Hash is a pure function of the comparison key, derived once at
// construction.
func (r Range) Hash() uint64 { return r.hash }

// Compare is the total order over the comparison key.
func (r Range) Compare(other Range) (int, error) {
	if cmp, err := value.Compare(r.start, other.start); err != nil || cmp != 0 {
		return cmp, err
	}
	if r.startInc != other.startInc {
		if r.startInc {
			return -1, nil
		}
		return 1, nil
	}
	if cmp, err := value.Compare(r.end, other.end); err != nil || cmp != 0 {
		return cmp, err
	}
	if r.endInc != other.endInc {
		if r.endInc {
			return 1, nil
		}
		return -1, nil
	}
	return 0, nil
}

func (r Range) Less(other Range) (bool, error) {
	cmp, err := r.Compare(other)
	return cmp < 0, err
}

// Equal reports whether the comparison keys are equal. Ranges over
// incomparable domains are never equal.
func (r Range) Equal(other Range) bool {
	cmp, err := r.Compare(other)
	return err == nil && cmp == 0
}

// Before reports whether every point of r lies strictly below v. An
// unbounded-above range is never before any value.
func (r Range) Before(v value.Value) (bool, error) {
	cmp, err := value.Compare(r.end, v)
	if err != nil {
		return false, err
	}
	if cmp < 0 {
		return true, nil
	}
	return cmp == 0 && !r.endInc && r.end != value.Inf, nil
}

// After reports whether every point of r lies strictly above v. An
// unbounded-below range is never after any value.
func (r Range) After(v value.Value) (bool, error) {
	cmp, err := value.Compare(r.start, v)
	if err != nil {
		return false, err
	}
	if cmp > 0 {
		return true, nil
	}
	return cmp == 0 && !r.startInc && r.start != value.NegInf, nil
}

func (r Range) Contains(v value.Value) (bool, error) {
	sc, err := value.Compare(r.start, v)
	if err != nil {
		return false, err
	}
	ec, err := value.Compare(r.end, v)
	if err != nil {
		return false, err
	}
	if sc < 0 && ec > 0 {
		return true, nil
	}
	if sc == 0 && r.startInc {
		return true, nil
	}
	return ec == 0 && r.endInc, nil
}

// order returns the pair with the earlier range first so that each
// binary operator only needs an algorithm for one operand order.
func order(a, b Range) (Range, Range, error) {
	cmp, err := a.Compare(b)
	if err != nil {
		return a, b, err
	}
	if cmp > 0 {
		return b, a, nil
	}
	return a, b, nil
}

// WillJoin reports whether the union of r and other is a single
// contiguous range.
func (r Range) WillJoin(other Range) (bool, error) {
	a, b, err := order(r, other)
	if err != nil {
		return false, err
	}
	return a.willJoin(b)
}

func (a Range) willJoin(b Range) (bool, error) {
	// equal ranges trivially union into one range; the boundary checks
	// below miss this when both bounds are exclusive
	if a.Equal(b) {
		return true, nil
	}
	ok, err := a.Contains(b.start)
	if err != nil || ok {
		return ok, err
	}
	return b.Contains(a.end)
}

// Continues reports whether r and other are exactly touching with
// complementary inclusivity, partitioning the touch point between
// them without overlapping.
func (r Range) Continues(other Range) (bool, error) {
	a, b, err := order(r, other)
	if err != nil {
		return false, err
	}
	return a.continues(b)
}

func (a Range) continues(b Range) (bool, error) {
	if a.endInc == b.startInc {
		return false, nil
	}
	cmp, err := value.Compare(a.end, b.start)
	return cmp == 0, err
}

// Intersects reports whether the intersection with other is not
// empty. Mere adjacency does not count.
func (r Range) Intersects(other Range) (bool, error) {
	a, b, err := order(r, other)
	if err != nil {
		return false, err
	}
	return a.intersects(b)
}

func (a Range) intersects(b Range) (bool, error) {
	join, err := a.willJoin(b)
	if err != nil || !join {
		return false, err
	}
	cont, err := a.continues(b)
	return !cont, err
}

// scalarAbove reports whether v is greater than every point of b,
// i.e. b ends within an interval bounded above by v. The
// unbounded-above sentinel is greater than any range.
func scalarAbove(v value.Value, b Range) (bool, error) {
	if v == value.Inf {
		return true, nil
	}
	return b.Before(v)
}

func (r Range) Union(other Set) (Set, error) {
	switch o := other.(type) {
	case Range:
		return unionRanges(r, o)
	case RangeSet:
		return o.Union(r)
	case empty:
		return r, nil
	default:
		return nil, unsupported(other)
	}
}

func unionRanges(a, b Range) (Set, error) {
	a, b, err := order(a, b)
	if err != nil {
		return nil, err
	}
	covered, err := scalarAbove(a.end, b)
	if err != nil {
		return nil, err
	}
	if covered {
		return a, nil
	}
	join, err := a.willJoin(b)
	if err != nil {
		return nil, err
	}
	if !join {
		return NewSet(a, b)
	}
	return NewBounds(a.start, b.end, a.startInc, b.endInc), nil
}

func (r Range) Intersect(other Set) (Set, error) {
	switch o := other.(type) {
	case Range:
		return intersectRanges(r, o)
	case RangeSet:
		return o.Intersect(r)
	case empty:
		return Empty, nil
	default:
		return nil, unsupported(other)
	}
}

func intersectRanges(a, b Range) (Set, error) {
	a, b, err := order(a, b)
	if err != nil {
		return nil, err
	}
	covered, err := scalarAbove(a.end, b)
	if err != nil {
		return nil, err
	}
	if covered {
		return b, nil
	}
	its, err := a.intersects(b)
	if err != nil {
		return nil, err
	}
	if !its {
		return Empty, nil
	}
	// each bound keeps the inclusivity of the range that supplies it
	return NewBounds(b.start, a.end, b.startInc, a.endInc), nil
}

func (r Range) SymDiff(other Set) (Set, error) {
	switch o := other.(type) {
	case Range:
		return symDiffRanges(r, o)
	case RangeSet:
		return o.SymDiff(r)
	case empty:
		return r, nil
	default:
		return nil, unsupported(other)
	}
}

func symDiffRanges(a, b Range) (Set, error) {
	a, b, err := order(a, b)
	if err != nil {
		return nil, err
	}
	its, err := a.intersects(b)
	if err != nil {
		return nil, err
	}
	if !its {
		return unionRanges(a, b)
	}
	if a.Equal(b) {
		return Empty, nil
	}
	lowEq, err := boundsEqual(a.start, a.startInc, b.start, b.startInc)
	if err != nil {
		return nil, err
	}
	if lowEq {
		return NewBounds(a.end, b.end, !a.endInc, b.endInc), nil
	}
	upEq, err := boundsEqual(a.end, a.endInc, b.end, b.endInc)
	if err != nil {
		return nil, err
	}
	if upEq {
		return NewBounds(a.start, b.start, a.startInc, !b.startInc), nil
	}
	left := NewBounds(a.start, b.start, a.startInc, !b.startInc)
	// reorder by end position so the earlier-ending range supplies the
	// inverted flag of the right fragment
	less, err := upperLess(a, b)
	if err != nil {
		return nil, err
	}
	if less {
		a, b = b, a
	}
	right := NewBounds(b.end, a.end, !b.endInc, a.endInc)
	return NewSet(left, right)
}

func boundsEqual(v1 value.Value, inc1 bool, v2 value.Value, inc2 bool) (bool, error) {
	if inc1 != inc2 {
		return false, nil
	}
	cmp, err := value.Compare(v1, v2)
	return cmp == 0, err
}

// upperLess orders upper bounds by (end, endInc): an inclusive upper
// bound reaches further than an exclusive one at the same end.
func upperLess(a, b Range) (bool, error) {
	cmp, err := value.Compare(a.end, b.end)
	if err != nil {
		return false, err
	}
	if cmp != 0 {
		return cmp < 0, nil
	}
	return !a.endInc && b.endInc, nil
}

// Complement is the symmetric difference with the universal range.
func (r Range) Complement() (Set, error) {
	return symDiffRanges(BigRange, r)
}

// Diff computes r minus other as complement(other) intersected with
// r. The complement runs first so that the intersection's own operand
// dispatch resolves a RangeSet complement.
func (r Range) Diff(other Set) (Set, error) {
	if !supported(other) {
		return nil, unsupported(other)
	}
	c, err := other.Complement()
	if err != nil {
		return nil, err
	}
	return c.Intersect(r)
}

// Length is the domain's own subtraction of end minus start, or the
// unbounded sentinel when either side is unbounded.
func (r Range) Length() (value.Value, error) {
	if r.start == value.NegInf || r.end == value.Inf {
		return value.Inf, nil
	}
	s, ok := r.end.(value.Subtractable)
	if !ok {
		return nil, fmt.Errorf("%w: %T", value.ErrNotSubtractable, r.end)
	}
	return s.Sub(r.start)
}

func (r Range) Ranges() []Range {
	return []Range{r}
}

func (r Range) IsEmpty() bool {
	return false
}

func (r Range) String() string {
	lb := "("
	if r.startInc {
		lb = "["
	}
	rb := ")"
	if r.endInc {
		rb = "]"
	}
	return fmt.Sprintf("%s%s, %s%s", lb, r.start, r.end, rb)
}
