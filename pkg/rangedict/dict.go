package rangedict

import (
	"errors"
	"fmt"
	"sync"

	"github.com/henderiw/contrange/pkg/ranges"
	"github.com/henderiw/contrange/pkg/value"
)

// Dict maps non-overlapping range keys to values. A key whose range
// strictly overlaps an existing key is rejected; keys that merely
// touch with complementary inclusivity are allowed.
type Dict[T1 any] interface {
	Get(v value.Value) (T1, error)
	GetRange(key ranges.Range) (T1, error)
	Add(key ranges.Range, d T1) error
	Update(key ranges.Range, d T1) error
	Delete(key ranges.Range) error

	Iterate() *Iterator[T1]

	Count() int
	Has(v value.Value) bool
	HasOverlap(key ranges.Range) bool

	Keys() []ranges.Range
	GetAll() Entries[T1]
}

func New[T1 any](initEntries Entries[T1]) (Dict[T1], error) {
	r := &dict[T1]{
		m: new(sync.RWMutex),
	}

	var errm error
	for _, e := range initEntries {
		if err := r.add(e.Key(), e.Data()); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type dict[T1 any] struct {
	m       *sync.RWMutex
	entries Entries[T1]
}

func (r *dict[T1]) Get(v value.Value) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	for _, e := range r.entries {
		ok, err := e.Key().Contains(v)
		if err != nil {
			return d, err
		}
		if ok {
			return e.Data(), nil
		}
		// entries are sorted, stop once every remaining key is above v
		after, err := e.Key().After(v)
		if err != nil {
			return d, err
		}
		if after {
			break
		}
	}
	return d, fmt.Errorf("no match found for: %v", v)
}

func (r *dict[T1]) GetRange(key ranges.Range) (T1, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	var d T1

	for _, e := range r.entries {
		if e.Key().Equal(key) {
			return e.Data(), nil
		}
	}
	return d, fmt.Errorf("no match found for: %v", key)
}

func (r *dict[T1]) Add(key ranges.Range, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(key, d)
}

func (r *dict[T1]) add(key ranges.Range, d T1) error {
	idx := 0
	for _, e := range r.entries {
		its, err := e.Key().Intersects(key)
		if err != nil {
			return err
		}
		if its {
			return fmt.Errorf("key %s overlaps existing key %s", key, e.Key())
		}
		less, err := e.Key().Less(key)
		if err != nil {
			return err
		}
		if less {
			idx++
		}
	}
	r.entries = append(r.entries, nil)
	copy(r.entries[idx+1:], r.entries[idx:])
	r.entries[idx] = NewEntry(key, d)
	return nil
}

func (r *dict[T1]) Update(key ranges.Range, d T1) error {
	r.m.Lock()
	defer r.m.Unlock()

	for i, e := range r.entries {
		if e.Key().Equal(key) {
			r.entries[i] = NewEntry(key, d)
			return nil
		}
	}
	return fmt.Errorf("entry %s not found", key)
}

func (r *dict[T1]) Delete(key ranges.Range) error {
	r.m.Lock()
	defer r.m.Unlock()

	for i, e := range r.entries {
		if e.Key().Equal(key) {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *dict[T1]) Iterate() *Iterator[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return &Iterator[T1]{current: -1, entries: append(Entries[T1](nil), r.entries...)}
}

func (r *dict[T1]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *dict[T1]) Has(v value.Value) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		ok, err := e.Key().Contains(v)
		if err != nil {
			return false
		}
		if ok {
			return true
		}
	}
	return false
}

func (r *dict[T1]) HasOverlap(key ranges.Range) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	for _, e := range r.entries {
		its, err := e.Key().Intersects(key)
		if err != nil {
			return false
		}
		if its {
			return true
		}
	}
	return false
}

func (r *dict[T1]) Keys() []ranges.Range {
	r.m.RLock()
	defer r.m.RUnlock()

	keys := make([]ranges.Range, 0, len(r.entries))
	for _, e := range r.entries {
		keys = append(keys, e.Key())
	}
	return keys
}

func (r *dict[T1]) GetAll() Entries[T1] {
	r.m.RLock()
	defer r.m.RUnlock()

	return append(Entries[T1](nil), r.entries...)
}
