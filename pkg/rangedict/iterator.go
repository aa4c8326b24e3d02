package rangedict

import (
	"github.com/henderiw/contrange/pkg/ranges"
)

type Iterator[T1 any] struct {
	current int
	entries Entries[T1]
}

func (r *Iterator[T1]) Value() Entry[T1] {
	return r.entries[r.current]
}

func (r *Iterator[T1]) Key() ranges.Range {
	return r.entries[r.current].Key()
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < len(r.entries)
}
