package ipranges

import (
	"fmt"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/contrange/pkg/rangedict"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// Dict maps non-overlapping IP address ranges to routes. Ranges use
// the "10.0.0.10-10.0.0.20" notation.
type Dict interface {
	Get(addr string) (table.Route, error)
	GetRange(rng string) (table.Route, error)
	Claim(rng string, d table.Route) error
	Release(rng string) error

	Count() int
	Has(addr string) bool
	HasOverlap(rng string) bool

	Keys() ([]netipx.IPRange, error)
	GetAll() table.Routes
	GetByLabel(selector labels.Selector) table.Routes
}

func New() (Dict, error) {
	d, err := rangedict.New[table.Route](nil)
	if err != nil {
		return nil, err
	}
	return &ipDict{dict: d}, nil
}

type ipDict struct {
	dict rangedict.Dict[table.Route]
}

func (r *ipDict) Get(addr string) (table.Route, error) {
	var route table.Route
	ip, err := ParseIP(addr)
	if err != nil {
		return route, err
	}
	return r.dict.Get(ip)
}

func (r *ipDict) GetRange(rng string) (table.Route, error) {
	var route table.Route
	key, err := ParseRange(rng)
	if err != nil {
		return route, err
	}
	return r.dict.GetRange(key)
}

func (r *ipDict) Claim(rng string, d table.Route) error {
	key, err := ParseRange(rng)
	if err != nil {
		return err
	}
	if r.dict.HasOverlap(key) {
		return fmt.Errorf("claim failed range %s overlaps a claimed range", rng)
	}
	return r.dict.Add(key, d)
}

func (r *ipDict) Release(rng string) error {
	key, err := ParseRange(rng)
	if err != nil {
		return err
	}
	return r.dict.Delete(key)
}

func (r *ipDict) Count() int {
	return r.dict.Count()
}

func (r *ipDict) Has(addr string) bool {
	ip, err := ParseIP(addr)
	if err != nil {
		return false
	}
	return r.dict.Has(ip)
}

func (r *ipDict) HasOverlap(rng string) bool {
	key, err := ParseRange(rng)
	if err != nil {
		return false
	}
	return r.dict.HasOverlap(key)
}

func (r *ipDict) Keys() ([]netipx.IPRange, error) {
	keys := make([]netipx.IPRange, 0, r.dict.Count())
	for _, key := range r.dict.Keys() {
		ipRange, err := ToIPRange(key)
		if err != nil {
			return nil, err
		}
		keys = append(keys, ipRange)
	}
	return keys, nil
}

func (r *ipDict) GetAll() table.Routes {
	var routes table.Routes
	for _, e := range r.dict.GetAll() {
		routes = append(routes, e.Data())
	}
	return routes
}

func (r *ipDict) GetByLabel(selector labels.Selector) table.Routes {
	var routes table.Routes

	iter := r.dict.Iterate()

	for iter.Next() {
		route := iter.Value().Data()
		if selector.Matches(route.Labels()) {
			routes = append(routes, route)
		}
	}

	return routes
}
