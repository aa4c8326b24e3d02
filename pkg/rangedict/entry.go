package rangedict

import (
	"github.com/henderiw/contrange/pkg/ranges"
)

type Entry[T1 any] interface {
	Key() ranges.Range
	Data() T1
}

type entry[T1 any] struct {
	key  ranges.Range
	data T1
}

type Entries[T1 any] []Entry[T1]

func (r entry[T1]) Key() ranges.Range { return r.key }
func (r entry[T1]) Data() T1          { return r.data }

func NewEntry[T1 any](key ranges.Range, d T1) Entry[T1] {
	return entry[T1]{
		key:  key,
		data: d,
	}
}
